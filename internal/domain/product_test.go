package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Classic Tee", Description: "A plain cotton t-shirt", Category: "men", Price: decimal.RequireFromString("19.99")},
		{ID: "p2", Name: "Summer Dress", Description: "Light and airy", Category: "women", Price: decimal.RequireFromString("49.99")},
		{ID: "p3", Name: "Denim Jacket", Description: "Classic fit denim", Category: "men", Price: decimal.RequireFromString("79.99")},
	}
}

func TestFilterProducts_NoFilters(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "", "")
	assert.Len(t, filtered, 3)
}

func TestFilterProducts_ByCategory(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "men", "")

	require.Len(t, filtered, 2)
	assert.Equal(t, "p1", filtered[0].ID)
	assert.Equal(t, "p3", filtered[1].ID)
}

func TestFilterProducts_SearchMatchesNameCaseInsensitive(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "", "DENIM")

	require.Len(t, filtered, 1)
	assert.Equal(t, "p3", filtered[0].ID)
}

func TestFilterProducts_SearchMatchesDescription(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "", "airy")

	require.Len(t, filtered, 1)
	assert.Equal(t, "p2", filtered[0].ID)
}

func TestFilterProducts_CategoryAndSearchCombine(t *testing.T) {
	filtered := FilterProducts(sampleProducts(), "men", "classic")

	// "classic" hits both the tee's name and the jacket's description.
	require.Len(t, filtered, 2)

	filtered = FilterProducts(sampleProducts(), "women", "classic")
	assert.Empty(t, filtered)
}

func TestProduct_CartLine(t *testing.T) {
	p := sampleProducts()[0]
	line := p.CartLine(2, "L", "White")

	assert.Equal(t, "p1", line.ProductID)
	assert.Equal(t, "Classic Tee", line.Name)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "L", line.Size)
	assert.Equal(t, "White", line.Color)
	assert.True(t, line.UnitPrice.Equal(p.Price))
}

func TestWishlistItem_CartLine_DefaultVariant(t *testing.T) {
	entry := sampleProducts()[1].WishlistEntry()
	line := entry.CartLine(1)

	assert.Equal(t, DefaultSize, line.Size)
	assert.Equal(t, DefaultColor, line.Color)
	assert.Equal(t, 1, line.Quantity)
}

func TestWishlist_FindIndex(t *testing.T) {
	wishlist := Wishlist{
		sampleProducts()[0].WishlistEntry(),
		sampleProducts()[2].WishlistEntry(),
	}

	assert.Equal(t, 0, wishlist.FindIndex("p1"))
	assert.Equal(t, 1, wishlist.FindIndex("p3"))
	assert.Equal(t, -1, wishlist.FindIndex("p2"))
}
