package cart

import (
	"github.com/shopspring/decimal"

	"github.com/hrc-store/storefront/internal/domain"
)

// Pricing is the storefront discount policy: a flat rate applied to the
// whole cart once the subtotal reaches the threshold.
type Pricing struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// DefaultPricing is the production policy: 5% off subtotals of 500 or more.
func DefaultPricing() Pricing {
	return Pricing{
		Threshold: decimal.NewFromInt(500),
		Rate:      decimal.RequireFromString("0.05"),
	}
}

// Totals computes the pricing summary for a cart. It is a pure function of
// the cart state; the discount is rounded to 2 decimal places.
func (p Pricing) Totals(c Cart) domain.Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}

	discount := decimal.Zero
	if subtotal.GreaterThanOrEqual(p.Threshold) {
		discount = subtotal.Mul(p.Rate).Round(2)
	}

	return domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

// Totals computes the pricing summary under the default policy.
func (c Cart) Totals() domain.Totals {
	return DefaultPricing().Totals(c)
}
