package domain

import "github.com/shopspring/decimal"

// ItemAdded describes a successful cart add, for the presentation layer's
// confirmation toast. Name carries the unit-decorated display name.
type ItemAdded struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      UnitType        `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
