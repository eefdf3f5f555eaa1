// Package service implements the storefront's business logic: cart and
// wishlist mutations over the local state, catalog reads, auth flows and the
// admin surface, all against the backend's envelope API.
package service

import (
	"context"

	"github.com/serikkalibeknur/project-clothesstore/internal/api"
)

// Backend is the slice of the API client the services depend on.
type Backend interface {
	Get(ctx context.Context, path string) (*api.Envelope, error)
	Post(ctx context.Context, path string, body any) (*api.Envelope, error)
	Delete(ctx context.Context, path string) (*api.Envelope, error)
}
