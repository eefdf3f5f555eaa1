package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an order record as listed by the backend.
type Order struct {
	ID        string          `json:"id"`
	UserName  string          `json:"user_name,omitempty"`
	Items     []LineItem      `json:"items,omitempty"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderRequest is the payload checkout submits to the order-creation endpoint.
type OrderRequest struct {
	Items    Cart            `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// NewOrderRequest builds the checkout payload for a cart.
func NewOrderRequest(cart Cart) OrderRequest {
	totals := ComputeTotals(cart)
	return OrderRequest{
		Items:    cart,
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
}
