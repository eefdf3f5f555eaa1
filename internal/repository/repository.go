// Package repository defines the persistence interfaces for the client's
// local state: cart, wishlist, session credentials and store settings.
package repository

import (
	"context"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
)

// CartRepository persists the cart collection as a whole.
type CartRepository interface {
	// Get loads the cart. Absent or malformed state loads as an empty cart.
	Get(ctx context.Context) (domain.Cart, error)

	// Save persists the full cart, replacing the previous state.
	Save(ctx context.Context, cart domain.Cart) error

	// Clear removes the persisted cart.
	Clear(ctx context.Context) error
}

// WishlistRepository persists the wishlist collection as a whole.
type WishlistRepository interface {
	// Get loads the wishlist. Absent or malformed state loads as empty.
	Get(ctx context.Context) (domain.Wishlist, error)

	// Save persists the full wishlist, replacing the previous state.
	Save(ctx context.Context, wishlist domain.Wishlist) error

	// Clear removes the persisted wishlist.
	Clear(ctx context.Context) error
}

// SessionRepository persists the login credentials.
type SessionRepository interface {
	// Get loads the session. An absent token loads as a logged-out session.
	Get(ctx context.Context) (domain.Session, error)

	// Save persists the token and user profile together.
	Save(ctx context.Context, session domain.Session) error

	// Clear wipes the token and user profile.
	Clear(ctx context.Context) error
}

// SettingsRepository persists the admin store settings locally.
type SettingsRepository interface {
	// Get loads the settings. Absent or malformed state loads as zero settings.
	Get(ctx context.Context) (domain.StoreSettings, error)

	// Save persists the settings.
	Save(ctx context.Context, settings domain.StoreSettings) error
}
