// Package app wires configuration, storage, the backend client and the
// services into a single application object the command layer runs against.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/serikkalibeknur/project-clothesstore/internal/api"
	"github.com/serikkalibeknur/project-clothesstore/internal/config"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository/local"
	"github.com/serikkalibeknur/project-clothesstore/internal/service"
	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
	"github.com/serikkalibeknur/project-clothesstore/pkg/logger"
)

// App holds the wired application.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Cart     *service.CartService
	Wishlist *service.WishlistService
	Catalog  *service.CatalogService
	Session  *service.SessionService
	Admin    *service.AdminService

	store storage.Store
}

// New builds the application: opens the state store, constructs the
// repositories and backend client, and wires the services.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Open(filepath.Join(cfg.StateDir, "state"))
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	carts := local.NewCartRepository(store)
	wishlists := local.NewWishlistRepository(store)
	sessions := local.NewSessionRepository(store)
	settings := local.NewSettingsRepository(store)

	apiCfg := api.DefaultConfig()
	apiCfg.Timeout = time.Duration(cfg.HTTPTimeout) * time.Second
	backend := api.New(cfg.APIBaseURL, apiCfg, &sessionSource{sessions: sessions}, log)

	return &App{
		Config:   cfg,
		Logger:   log,
		Cart:     service.NewCartService(carts, sessions, backend, log),
		Wishlist: service.NewWishlistService(wishlists, carts, log),
		Catalog:  service.NewCatalogService(backend, log),
		Session:  service.NewSessionService(sessions, backend, log),
		Admin:    service.NewAdminService(backend, sessions, settings, log),
		store:    store,
	}, nil
}

// Close releases the state store.
func (a *App) Close() error {
	return a.store.Close()
}

// sessionSource adapts the session repository to the backend client's needs.
type sessionSource struct {
	sessions repository.SessionRepository
}

func (s *sessionSource) Token(ctx context.Context) string {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "failed to load session",
			slog.String("error", err.Error()))
		return ""
	}
	return session.Token
}

func (s *sessionSource) ClearSession(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
