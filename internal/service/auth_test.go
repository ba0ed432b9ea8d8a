package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/haseebk/dev-net/internal/queue"
	"github.com/haseebk/dev-net/internal/security"
	"github.com/haseebk/dev-net/internal/service"
	"github.com/haseebk/dev-net/internal/service/servicetest"
)

func newAuthService(f *servicetest.FakeStore) *service.AuthService {
	return service.NewAuthService(f, queue.NewNoop(), "test_secret", time.Hour, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	f := servicetest.New()
	svc := newAuthService(f)
	ctx := context.Background()

	tok, err := svc.Register(ctx, service.RegisterInput{
		Name: "John", Email: "John@Example.com", Password: "s3cret99",
	}, "")
	require.NoError(t, err)

	claims, err := security.ParseAccess("test_secret", tok)
	require.NoError(t, err)

	// email is stored lowercased and the login works with it
	tok2, err := svc.Login(ctx, service.LoginInput{Email: "john@example.com", Password: "s3cret99"}, "")
	require.NoError(t, err)
	claims2, err := security.ParseAccess("test_secret", tok2)
	require.NoError(t, err)
	assert.Equal(t, claims.UID, claims2.UID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := servicetest.New()
	svc := newAuthService(f)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterInput{Name: "John", Email: "j@e.com", Password: "s3cret99"}, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, service.RegisterInput{Name: "Jane", Email: "j@e.com", Password: "s3cret99"}, "")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	f := servicetest.New()
	svc := newAuthService(f)

	_, err := svc.Register(context.Background(), service.RegisterInput{Email: "not-an-email", Password: "123"}, "")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3, "name, email and password violations reported together")
}

func TestLoginBadCredentials(t *testing.T) {
	f := servicetest.New()
	svc := newAuthService(f)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterInput{Name: "John", Email: "j@e.com", Password: "s3cret99"}, "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, service.LoginInput{Email: "j@e.com", Password: "wrong-pass"}, "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login(ctx, service.LoginInput{Email: "nobody@e.com", Password: "s3cret99"}, "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
