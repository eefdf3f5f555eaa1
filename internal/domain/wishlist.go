package domain

import "github.com/shopspring/decimal"

// WishlistItem represents a product saved for later. Identity is the product
// id alone; the wishlist has no variant dimension.
type WishlistItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageURL,omitempty"`
}

// Wishlist is the ordered collection of saved products.
type Wishlist []WishlistItem

// FindIndex returns the index of the entry with the given product id.
// Returns -1 if not found.
func (w Wishlist) FindIndex(productID string) int {
	for i := range w {
		if w[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// CartLine converts a wishlist entry to a cart line in the default variant.
func (i WishlistItem) CartLine(quantity int) LineItem {
	return LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		ImageURL:  i.ImageURL,
		Quantity:  quantity,
		Size:      DefaultSize,
		Color:     DefaultColor,
	}
}
