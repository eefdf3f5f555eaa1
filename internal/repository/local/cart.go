package local

import (
	"context"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
)

// CartRepository implements repository.CartRepository over the state store.
type CartRepository struct {
	store storage.Store
}

// NewCartRepository creates a cart repository on the given store.
func NewCartRepository(store storage.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get loads the cart. Absent or malformed state loads as an empty cart.
func (r *CartRepository) Get(ctx context.Context) (domain.Cart, error) {
	cart := domain.Cart{}
	if _, err := loadJSON(r.store, keyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Save persists the full cart.
func (r *CartRepository) Save(ctx context.Context, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	return saveJSON(r.store, keyCart, cart)
}

// Clear removes the persisted cart.
func (r *CartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(keyCart)
}
