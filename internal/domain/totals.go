package domain

import "github.com/shopspring/decimal"

var (
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingRate      = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
)

// Totals holds the derived amounts for a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, shipping, tax and total for the cart.
// Shipping is free only when the subtotal strictly exceeds the threshold:
// a 50.00 subtotal still pays the flat rate, 50.01 ships free.
func ComputeTotals(c Cart) Totals {
	subtotal := c.Subtotal()

	shipping := flatShippingRate
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FreeShipping reports whether the shipping amount is zero.
func (t Totals) FreeShipping() bool {
	return t.Shipping.IsZero()
}
