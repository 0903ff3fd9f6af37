package domain

import "github.com/shopspring/decimal"

// UnitType is the purchase granularity of a cart line.
type UnitType string

const (
	UnitSingle UnitType = "single"
	UnitDozen  UnitType = "dozen"
)

const dozenCount = 12

// Price derives the unit price for a product at this purchase granularity.
func (u UnitType) Price(p Product) decimal.Decimal {
	if u == UnitDozen {
		return p.Price.Mul(decimal.NewFromInt(dozenCount))
	}
	return p.Price
}

// Label is the short unit name shown next to a line item.
func (u UnitType) Label() string {
	if u == UnitDozen {
		return "Dozen"
	}
	return "Single"
}

// DisplayName decorates a product name for notifications, matching the
// storefront's "(1 Dozen)" suffix for dozen purchases.
func (u UnitType) DisplayName(name string) string {
	if u == UnitDozen {
		return name + " (1 Dozen)"
	}
	return name
}

// CartLine is one (product, unit type) entry. UnitPrice is a snapshot captured
// when the line was first added; later catalog price changes never alter it.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      UnitType        `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Total is the line total, unit price times quantity.
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the cart pricing summary. Total is always Subtotal minus Discount.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}
