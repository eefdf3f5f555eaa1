package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/repository"
	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
)

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	wishlists repository.WishlistRepository
	carts     repository.CartRepository
	logger    *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlists repository.WishlistRepository, carts repository.CartRepository, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		carts:     carts,
		logger:    logger,
	}
}

// List returns the current wishlist.
func (s *WishlistService) List(ctx context.Context) (domain.Wishlist, error) {
	wishlist, err := s.wishlists.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return wishlist, nil
}

// Toggle adds the product to the wishlist, or removes it when already saved.
// The returned flag reports whether the product ended up saved.
func (s *WishlistService) Toggle(ctx context.Context, product domain.Product) (bool, error) {
	if product.ID == "" {
		return false, apperrors.InvalidInput("product is required")
	}

	wishlist, err := s.wishlists.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}

	added := false
	if i := wishlist.FindIndex(product.ID); i >= 0 {
		wishlist = append(wishlist[:i], wishlist[i+1:]...)
	} else {
		wishlist = append(wishlist, product.WishlistEntry())
		added = true
	}

	if err := s.wishlists.Save(ctx, wishlist); err != nil {
		return false, fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("product_id", product.ID),
		slog.Bool("added", added),
	)

	return added, nil
}

// Remove deletes the entry with the given product id and returns its name
// for the confirmation message.
func (s *WishlistService) Remove(ctx context.Context, productID string) (string, error) {
	wishlist, err := s.wishlists.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("get wishlist: %w", err)
	}

	i := wishlist.FindIndex(productID)
	if i < 0 {
		return "", apperrors.NotFound("wishlist item", productID)
	}

	name := wishlist[i].Name
	wishlist = append(wishlist[:i], wishlist[i+1:]...)

	if err := s.wishlists.Save(ctx, wishlist); err != nil {
		return "", fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "item removed from wishlist",
		slog.String("product_id", productID),
	)

	return name, nil
}

// MoveToCart moves a saved product into the cart as a single unit of the
// default variant, then drops it from the wishlist.
func (s *WishlistService) MoveToCart(ctx context.Context, productID string) (string, error) {
	wishlist, err := s.wishlists.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("get wishlist: %w", err)
	}

	i := wishlist.FindIndex(productID)
	if i < 0 {
		return "", apperrors.NotFound("wishlist item", productID)
	}
	entry := wishlist[i]

	cart, err := s.carts.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("get cart: %w", err)
	}

	line := entry.CartLine(1)
	if j := cart.FindIndex(line.Key()); j >= 0 {
		cart[j].Quantity++
	} else {
		cart = append(cart, line)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return "", fmt.Errorf("save cart: %w", err)
	}

	wishlist = append(wishlist[:i], wishlist[i+1:]...)
	if err := s.wishlists.Save(ctx, wishlist); err != nil {
		return "", fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "wishlist item moved to cart",
		slog.String("product_id", productID),
	)

	return entry.Name, nil
}
