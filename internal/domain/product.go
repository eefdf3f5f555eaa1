package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product as served by the backend.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Sizes       []string        `json:"size,omitempty"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageURL,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
}

// CartLine converts the product to a cart line.
func (p Product) CartLine(quantity int, size, color string) LineItem {
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	}
}

// WishlistEntry converts the product to a wishlist entry.
func (p Product) WishlistEntry() WishlistItem {
	return WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
	}
}

// FilterProducts narrows an in-memory product snapshot by exact category and a
// case-insensitive substring match over name and description. Empty filters
// match everything.
func FilterProducts(products []Product, category, search string) []Product {
	search = strings.ToLower(search)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
