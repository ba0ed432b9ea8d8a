package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/haseebk/dev-net/internal/domain"
	"github.com/haseebk/dev-net/internal/helper"
	"github.com/haseebk/dev-net/internal/log"
	"github.com/haseebk/dev-net/internal/queue"
	"github.com/haseebk/dev-net/internal/repo"
	"github.com/haseebk/dev-net/internal/security"
)

type AuthService struct {
	users     UserStore
	events    queue.Publisher
	jwtSecret string
	accessTTL time.Duration
	log       *zap.Logger
}

func NewAuthService(users UserStore, events queue.Publisher, jwtSecret string, accessTTL time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{users: users, events: events, jwtSecret: jwtSecret, accessTTL: accessTTL, log: log}
}

// Register creates a user with a bcrypt digest and gravatar avatar and returns
// a fresh access token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput, reqID string) (string, error) {
	if errs := checkStruct(in); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if u, err := s.users.FindUserByEmail(ctx, email); err != nil {
		log.WithDD(ctx, s.log).Error("register: lookup email", zap.Error(err))
		return "", ErrInternal
	} else if u != nil {
		return "", ErrEmailTaken
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		log.WithDD(ctx, s.log).Error("register: hash password", zap.Error(err))
		return "", ErrInternal
	}
	u := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Avatar:       helper.GravatarURL(email),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			return "", ErrEmailTaken
		}
		log.WithDD(ctx, s.log).Error("register: create user", zap.Error(err))
		return "", ErrInternal
	}

	tok, err := security.MakeAccess(s.jwtSecret, u.ID.Hex(), s.accessTTL)
	if err != nil {
		log.WithDD(ctx, s.log).Error("register: sign token", zap.Error(err))
		return "", ErrInternal
	}

	if err := s.events.Publish(ctx, queue.Exchange, "user.registered",
		queue.UserRegistered{UserID: u.ID, Email: u.Email, Name: u.Name}, reqID); err != nil {
		s.log.Warn("publish user.registered", zap.Error(err))
	}
	return tok, nil
}

// Login verifies credentials and returns an access token. Unknown email and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput, reqID string) (string, error) {
	if errs := checkStruct(in); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		log.WithDD(ctx, s.log).Error("login: lookup email", zap.Error(err))
		return "", ErrInternal
	}
	if u == nil || !security.CheckPassword(u.PasswordHash, in.Password) {
		return "", ErrInvalidCredentials
	}

	tok, err := security.MakeAccess(s.jwtSecret, u.ID.Hex(), s.accessTTL)
	if err != nil {
		log.WithDD(ctx, s.log).Error("login: sign token", zap.Error(err))
		return "", ErrInternal
	}

	if err := s.events.Publish(ctx, queue.Exchange, "user.loggedin",
		queue.UserLoggedIn{UserID: u.ID, Email: u.Email}, reqID); err != nil {
		s.log.Warn("publish user.loggedin", zap.Error(err))
	}
	return tok, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id Identity) (*domain.User, error) {
	u, err := s.users.FindUserByID(ctx, id.UserID)
	if err != nil {
		log.WithDD(ctx, s.log).Error("current user", zap.String("user_id", id.UserID.Hex()), zap.Error(err))
		return nil, ErrInternal
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
