package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
)

// relatedLimit caps the related-products strip.
const relatedLimit = 4

// CatalogService reads products from the backend and filters in-memory
// snapshots of them.
type CatalogService struct {
	backend Backend
	logger  *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(backend Backend, logger *slog.Logger) *CatalogService {
	return &CatalogService{backend: backend, logger: logger}
}

// List fetches the product list, optionally narrowed by category on the
// backend side.
func (s *CatalogService) List(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	env, err := s.backend.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := env.Err(); err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := env.Decode(&products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get fetches a single product. A backend-reported failure maps to NotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, apperrors.InvalidInput("product id is required")
	}

	env, err := s.backend.Get(ctx, "/products/"+url.PathEscape(id))
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	if !env.Success {
		return domain.Product{}, apperrors.NotFound("product", id)
	}

	var product domain.Product
	if err := env.Decode(&product); err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Related fetches up to four other products from the same category.
func (s *CatalogService) Related(ctx context.Context, category, excludeID string) ([]domain.Product, error) {
	products, err := s.List(ctx, category)
	if err != nil {
		// A missing related strip is not worth failing the page for.
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "related products unavailable",
			slog.String("category", category),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	related := make([]domain.Product, 0, relatedLimit)
	for _, p := range products {
		if p.ID == excludeID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedLimit {
			break
		}
	}
	return related, nil
}

// Filter narrows an already-fetched snapshot without touching the backend.
func (s *CatalogService) Filter(snapshot []domain.Product, category, search string) []domain.Product {
	return domain.FilterProducts(snapshot, category, search)
}
