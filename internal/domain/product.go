package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the FilterCriteria sentinel meaning no category restriction.
const CategoryAll = "All"

// Product is a catalog record as delivered by the backend store. The core
// never mutates it.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Category      string          `json:"category"`
	Discount      int             `json:"discount"`
	InStock       bool            `json:"in_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Category is a catalog grouping. DisplayOrder defines the storefront's
// intrinsic category ordering; the filter itself does not use it.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// FilterCriteria is one filter invocation's input. Price bounds are inclusive.
// An inverted range (min > max) is not an error; it simply matches nothing.
type FilterCriteria struct {
	Category string
	Search   string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}
