package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
	"github.com/serikkalibeknur/project-clothesstore/pkg/validator"
)

// LoginInput holds the login form fields.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterInput holds the registration form fields. Validation mirrors the
// original form: all names required, password length at least 8, matching
// confirmation, and the terms box ticked.
type RegisterInput struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AcceptTerms     bool   `validate:"required"`
}

// authPayload is the envelope data of login and registration responses.
type authPayload struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// SessionService implements login, registration and session persistence.
type SessionService struct {
	sessions repository.SessionRepository
	backend  Backend
	logger   *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessions repository.SessionRepository, backend Backend, logger *slog.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		backend:  backend,
		logger:   logger,
	}
}

// Login validates the form, authenticates against the backend and persists
// the returned credentials.
func (s *SessionService) Login(ctx context.Context, input LoginInput) (domain.Session, error) {
	if err := validator.Validate(input); err != nil {
		return domain.Session{}, apperrors.InvalidInput(err.Error())
	}

	env, err := s.backend.Post(ctx, "/auth/login", map[string]string{
		"email":    input.Email,
		"password": input.Password,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if err := env.Err(); err != nil {
		return domain.Session{}, err
	}

	var payload authPayload
	if err := env.Decode(&payload); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	session := domain.Session{Token: payload.Token, User: payload.User}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.InfoContext(ctx, "logged in",
		slog.String("user_id", session.User.ID),
		slog.String("role", session.User.Role),
	)

	return session, nil
}

// Register validates the form, creates the account and persists the returned
// credentials. The backend receives the combined display name and a fixed
// user role.
func (s *SessionService) Register(ctx context.Context, input RegisterInput) (domain.Session, error) {
	if err := validator.Validate(input); err != nil {
		return domain.Session{}, apperrors.InvalidInput(err.Error())
	}

	env, err := s.backend.Post(ctx, "/auth/register", map[string]string{
		"name":     strings.TrimSpace(input.FirstName + " " + input.LastName),
		"email":    input.Email,
		"phone":    input.Phone,
		"password": input.Password,
		"role":     domain.RoleUser,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}
	if err := env.Err(); err != nil {
		return domain.Session{}, err
	}

	var payload authPayload
	if err := env.Decode(&payload); err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}

	session := domain.Session{Token: payload.Token, User: payload.User}
	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("user_id", session.User.ID),
	)

	return session, nil
}

// Logout wipes the persisted credentials.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.InfoContext(ctx, "logged out")
	return nil
}

// Current returns the persisted session; a logged-out session has no token.
func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// IsAdmin reports whether the persisted session belongs to an admin.
func (s *SessionService) IsAdmin(ctx context.Context) (bool, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	return session.IsAdmin(), nil
}

// TokenClaims parses the stored token without verifying its signature, for
// display purposes only. Login state never depends on the claims.
func (s *SessionService) TokenClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}
