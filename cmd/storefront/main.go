package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/serikkalibeknur/project-clothesstore/internal/app"
	"github.com/serikkalibeknur/project-clothesstore/internal/cli"
	"github.com/serikkalibeknur/project-clothesstore/internal/config"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
	"github.com/serikkalibeknur/project-clothesstore/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintln(os.Stderr, appErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode folds the error taxonomy into shell-friendly codes: 2 for rejected
// or unresolvable input, 3 for auth failures, 1 for everything else.
func exitCode(err error) int {
	switch apperrors.HTTPStatus(err) {
	case http.StatusBadRequest, http.StatusNotFound:
		return 2
	case http.StatusUnauthorized, http.StatusForbidden:
		return 3
	default:
		return 1
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("storefront", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Every invocation carries a correlation id so backend calls can be
	// traced end to end.
	ctx = logger.WithCorrelationID(ctx, uuid.NewString())

	a, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Warn("failed to close state store", "error", cerr)
		}
	}()

	if session, serr := a.Session.Current(ctx); serr == nil && session.IsLoggedIn() {
		ctx = logger.WithUserID(ctx, session.User.ID)
	}
	ctx = logger.NewContext(ctx, logger.WithContext(ctx, log))

	return cli.NewRootCmd(a).ExecuteContext(ctx)
}
