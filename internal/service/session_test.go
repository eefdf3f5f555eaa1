package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
)

func newTestSessionService(sessions *mockSessionRepository, backend *mockBackend) *SessionService {
	return NewSessionService(sessions, backend, newTestLogger())
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "john@example.com",
		Password:        "SecurePass123",
		ConfirmPassword: "SecurePass123",
		AcceptTerms:     true,
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	sessions := new(mockSessionRepository)
	backend := new(mockBackend)
	svc := newTestSessionService(sessions, backend)
	ctx := context.Background()

	backend.On("Post", ctx, "/auth/login", map[string]string{
		"email":    "john@example.com",
		"password": "SecurePass123",
	}).Return(okEnvelope(`{"token":"jwt-token","user":{"id":"u1","name":"John Doe","role":"user"}}`), nil)
	sessions.On("Save", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.Token == "jwt-token" && s.User.ID == "u1"
	})).Return(nil)

	session, err := svc.Login(ctx, LoginInput{Email: "john@example.com", Password: "SecurePass123"})

	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "John Doe", session.User.Name)
	sessions.AssertExpectations(t)
}

func TestLogin_InvalidEmailRejectedLocally(t *testing.T) {
	backend := new(mockBackend)
	svc := newTestSessionService(new(mockSessionRepository), backend)

	_, err := svc.Login(context.Background(), LoginInput{Email: "not-an-email", Password: "x"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	backend.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_BadCredentialsPassThrough(t *testing.T) {
	sessions := new(mockSessionRepository)
	backend := new(mockBackend)
	svc := newTestSessionService(sessions, backend)
	ctx := context.Background()

	backend.On("Post", ctx, "/auth/login", mock.Anything).
		Return(failEnvelope("invalid credentials"), nil)

	_, err := svc.Login(ctx, LoginInput{Email: "john@example.com", Password: "wrong-pass"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_CombinesNameAndFixesRole(t *testing.T) {
	sessions := new(mockSessionRepository)
	backend := new(mockBackend)
	svc := newTestSessionService(sessions, backend)
	ctx := context.Background()

	backend.On("Post", ctx, "/auth/register", mock.MatchedBy(func(body any) bool {
		payload, ok := body.(map[string]string)
		return ok && payload["name"] == "John Doe" && payload["role"] == domain.RoleUser
	})).Return(okEnvelope(`{"token":"jwt-token","user":{"id":"u1","role":"user"}}`), nil)
	sessions.On("Save", ctx, mock.AnythingOfType("domain.Session")).Return(nil)

	session, err := svc.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn())
	backend.AssertExpectations(t)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	backend := new(mockBackend)
	svc := newTestSessionService(new(mockSessionRepository), backend)

	input := validRegisterInput()
	input.ConfirmPassword = "Different123"

	_, err := svc.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	backend.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc := newTestSessionService(new(mockSessionRepository), new(mockBackend))

	input := validRegisterInput()
	input.Password = "short"
	input.ConfirmPassword = "short"

	_, err := svc.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegister_TermsNotAccepted(t *testing.T) {
	svc := newTestSessionService(new(mockSessionRepository), new(mockBackend))

	input := validRegisterInput()
	input.AcceptTerms = false

	_, err := svc.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLogout_ClearsSession(t *testing.T) {
	sessions := new(mockSessionRepository)
	svc := newTestSessionService(sessions, new(mockBackend))
	ctx := context.Background()

	sessions.On("Clear", ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	sessions.AssertExpectations(t)
}

func TestIsAdmin_ReflectsStoredRole(t *testing.T) {
	sessions := new(mockSessionRepository)
	svc := newTestSessionService(sessions, new(mockBackend))
	ctx := context.Background()

	sessions.On("Get", ctx).Return(loggedInSession(domain.RoleAdmin), nil)

	isAdmin, err := svc.IsAdmin(ctx)

	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestIsAdmin_LoggedOut(t *testing.T) {
	sessions := new(mockSessionRepository)
	svc := newTestSessionService(sessions, new(mockBackend))
	ctx := context.Background()

	sessions.On("Get", ctx).Return(domain.Session{}, nil)

	isAdmin, err := svc.IsAdmin(ctx)

	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestTokenClaims_ParsesWithoutVerifying(t *testing.T) {
	svc := newTestSessionService(new(mockSessionRepository), new(mockBackend))

	// {"alg":"HS256","typ":"JWT"}.{"sub":"u1","role":"admin"} with a garbage
	// signature; claims still parse because nothing is verified.
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJ1MSIsInJvbGUiOiJhZG1pbiJ9." +
		"invalid-signature"

	claims, err := svc.TokenClaims(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestTokenClaims_Malformed(t *testing.T) {
	svc := newTestSessionService(new(mockSessionRepository), new(mockBackend))

	_, err := svc.TokenClaims("not-a-jwt")

	assert.Error(t, err)
}
