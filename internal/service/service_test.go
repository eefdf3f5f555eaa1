package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/serikkalibeknur/project-clothesstore/internal/api"
	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
)

// --- Mock Backend ---

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Get(ctx context.Context, path string) (*api.Envelope, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Envelope), args.Error(1)
}

func (m *mockBackend) Post(ctx context.Context, path string, body any) (*api.Envelope, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Envelope), args.Error(1)
}

func (m *mockBackend) Delete(ctx context.Context, path string) (*api.Envelope, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Envelope), args.Error(1)
}

// --- Mock Cart Repository ---

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Get(ctx context.Context) (domain.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Wishlist Repository ---

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) Get(ctx context.Context) (domain.Wishlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Wishlist), args.Error(1)
}

func (m *mockWishlistRepository) Save(ctx context.Context, wishlist domain.Wishlist) error {
	args := m.Called(ctx, wishlist)
	return args.Error(0)
}

func (m *mockWishlistRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Session Repository ---

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Get(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *mockSessionRepository) Save(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Settings Repository ---

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) Get(ctx context.Context) (domain.StoreSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StoreSettings), args.Error(1)
}

func (m *mockSettingsRepository) Save(ctx context.Context, settings domain.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func okEnvelope(data string) *api.Envelope {
	env := &api.Envelope{Success: true}
	if data != "" {
		env.Data = json.RawMessage(data)
	}
	return env
}

func failEnvelope(message string) *api.Envelope {
	return &api.Envelope{Success: false, Message: message}
}

func loggedInSession(role string) domain.Session {
	return domain.Session{
		Token: "jwt-token",
		User:  domain.User{ID: "u1", Name: "John Doe", Email: "john@example.com", Role: role},
	}
}
