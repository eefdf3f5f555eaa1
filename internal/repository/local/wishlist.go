package local

import (
	"context"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
)

// WishlistRepository implements repository.WishlistRepository over the state store.
type WishlistRepository struct {
	store storage.Store
}

// NewWishlistRepository creates a wishlist repository on the given store.
func NewWishlistRepository(store storage.Store) *WishlistRepository {
	return &WishlistRepository{store: store}
}

// Get loads the wishlist. Absent or malformed state loads as empty.
func (r *WishlistRepository) Get(ctx context.Context) (domain.Wishlist, error) {
	wishlist := domain.Wishlist{}
	if _, err := loadJSON(r.store, keyWishlist, &wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// Save persists the full wishlist.
func (r *WishlistRepository) Save(ctx context.Context, wishlist domain.Wishlist) error {
	if wishlist == nil {
		wishlist = domain.Wishlist{}
	}
	return saveJSON(r.store, keyWishlist, wishlist)
}

// Clear removes the persisted wishlist.
func (r *WishlistRepository) Clear(ctx context.Context) error {
	return r.store.Delete(keyWishlist)
}
