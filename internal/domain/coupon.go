package domain

import "github.com/shopspring/decimal"

// couponDiscounts maps accepted coupon codes to fractional discounts.
var couponDiscounts = map[string]decimal.Decimal{
	"SAVE10":   decimal.RequireFromString("0.10"),
	"SAVE20":   decimal.RequireFromString("0.20"),
	"FREESHIP": decimal.Zero,
}

// LookupCoupon returns the discount fraction for a code. Codes carrying a zero
// discount are rejected along with unknown ones. The discount is informational
// only; ComputeTotals never applies it.
func LookupCoupon(code string) (decimal.Decimal, bool) {
	pct, ok := couponDiscounts[code]
	if !ok || pct.IsZero() {
		return decimal.Decimal{}, false
	}
	return pct, true
}
