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

func newTestWishlistService(wishlists *mockWishlistRepository, carts *mockCartRepository) *WishlistService {
	return NewWishlistService(wishlists, carts, newTestLogger())
}

func TestWishlistToggle_AddsWhenAbsent(t *testing.T) {
	wishlists := new(mockWishlistRepository)
	svc := newTestWishlistService(wishlists, new(mockCartRepository))
	ctx := context.Background()

	wishlists.On("Get", ctx).Return(domain.Wishlist{}, nil)
	wishlists.On("Save", ctx, mock.MatchedBy(func(w domain.Wishlist) bool {
		return len(w) == 1 && w[0].ProductID == "p1"
	})).Return(nil)

	added, err := svc.Toggle(ctx, testProduct())

	require.NoError(t, err)
	assert.True(t, added)
	wishlists.AssertExpectations(t)
}

func TestWishlistToggle_RemovesWhenPresent(t *testing.T) {
	wishlists := new(mockWishlistRepository)
	svc := newTestWishlistService(wishlists, new(mockCartRepository))
	ctx := context.Background()

	wishlists.On("Get", ctx).Return(domain.Wishlist{testProduct().WishlistEntry()}, nil)
	wishlists.On("Save", ctx, mock.MatchedBy(func(w domain.Wishlist) bool {
		return len(w) == 0
	})).Return(nil)

	added, err := svc.Toggle(ctx, testProduct())

	require.NoError(t, err)
	assert.False(t, added)
}

func TestWishlistRemove_UnknownProduct(t *testing.T) {
	wishlists := new(mockWishlistRepository)
	svc := newTestWishlistService(wishlists, new(mockCartRepository))
	ctx := context.Background()

	wishlists.On("Get", ctx).Return(domain.Wishlist{}, nil)

	_, err := svc.Remove(ctx, "p9")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWishlistMoveToCart_AppendsDefaultVariant(t *testing.T) {
	wishlists := new(mockWishlistRepository)
	carts := new(mockCartRepository)
	svc := newTestWishlistService(wishlists, carts)
	ctx := context.Background()

	wishlists.On("Get", ctx).Return(domain.Wishlist{testProduct().WishlistEntry()}, nil)
	carts.On("Get", ctx).Return(domain.Cart{}, nil)
	carts.On("Save", ctx, mock.MatchedBy(func(c domain.Cart) bool {
		return len(c) == 1 && c[0].Size == domain.DefaultSize &&
			c[0].Color == domain.DefaultColor && c[0].Quantity == 1
	})).Return(nil)
	wishlists.On("Save", ctx, mock.MatchedBy(func(w domain.Wishlist) bool {
		return len(w) == 0
	})).Return(nil)

	name, err := svc.MoveToCart(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, "Classic Tee", name)
	carts.AssertExpectations(t)
	wishlists.AssertExpectations(t)
}

func TestWishlistMoveToCart_MergesExistingDefaultLine(t *testing.T) {
	wishlists := new(mockWishlistRepository)
	carts := new(mockCartRepository)
	svc := newTestWishlistService(wishlists, carts)
	ctx := context.Background()

	wishlists.On("Get", ctx).Return(domain.Wishlist{testProduct().WishlistEntry()}, nil)
	carts.On("Get", ctx).Return(domain.Cart{
		testProduct().CartLine(1, domain.DefaultSize, domain.DefaultColor),
	}, nil)
	carts.On("Save", ctx, mock.MatchedBy(func(c domain.Cart) bool {
		return len(c) == 1 && c[0].Quantity == 2
	})).Return(nil)
	wishlists.On("Save", ctx, mock.AnythingOfType("domain.Wishlist")).Return(nil)

	_, err := svc.MoveToCart(ctx, "p1")

	require.NoError(t, err)
	carts.AssertExpectations(t)
}
