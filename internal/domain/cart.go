package domain

import "github.com/shopspring/decimal"

// Money travels as JSON numbers, both on the wire and in persisted state.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Default variant used by one-click adds from product lists and the wishlist.
const (
	DefaultSize  = "M"
	DefaultColor = "Black"
)

// ItemKey identifies a cart line. Two lines are the same only when product,
// size and color all match, so the same product in another size or color
// occupies its own line.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string
}

// LineItem represents a single cart line. JSON field names match the persisted
// storefront state, so existing stored carts keep decoding.
type LineItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageURL,omitempty"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
}

// Key returns the identity key of the line.
func (i LineItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// LineTotal returns unit price multiplied by quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered, insertion-preserving collection of line items.
type Cart []LineItem

// FindIndex returns the index of the line matching the given identity key.
// Returns -1 if not found.
func (c Cart) FindIndex(key ItemKey) int {
	for i := range c {
		if c[i].Key() == key {
			return i
		}
	}
	return -1
}

// FindProductIndex returns the index of the first line with the given product
// id regardless of size and color. Quick adds match on product alone.
func (c Cart) FindProductIndex(productID string) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ItemCount returns the total number of units across all lines. A line whose
// stored quantity is missing or non-positive counts as a single unit.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c {
		if item.Quantity < 1 {
			count++
			continue
		}
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of line totals.
func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}
