package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/haseebk/dev-net/internal/http"
	"github.com/haseebk/dev-net/internal/queue"
	"github.com/haseebk/dev-net/internal/service"
	"github.com/haseebk/dev-net/internal/service/servicetest"
)

const testSecret = "test_secret"

type testEnv struct {
	Store    *servicetest.FakeStore
	Handler  *api.Handler
	Router   *gin.Engine
	Profiles *service.ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := servicetest.New()
	log := zap.NewNop()
	pub := queue.NewNoop()

	auth := service.NewAuthService(store, pub, testSecret, time.Hour, log)
	profiles := service.NewProfileService(store, store, store, pub, log)

	// no mongo pinger, no redis, no rate limit in tests
	h := api.NewHandler(auth, profiles, nil, nil, testSecret, nil, 0)
	return &testEnv{Store: store, Handler: h, Router: api.NewRouter(h), Profiles: profiles}
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	e.Router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns its token.
func (e *testEnv) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, "POST", "/api/users",
		`{"name":"John","email":"`+email+`","password":"s3cret99"}`, "")
	if w.Code != 201 {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	var resp struct{ Token string }
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("register resp: %v %s", err, w.Body.String())
	}
	return resp.Token
}
