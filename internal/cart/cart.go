// Package cart maintains a shopping cart as an immutable value: every
// operation returns a new snapshot and leaves its receiver untouched.
package cart

import (
	"maps"
	"slices"

	"github.com/hrc-store/storefront/internal/domain"
)

// Key identifies a cart line. At most one line exists per key.
type Key struct {
	ProductID string
	Unit      domain.UnitType
}

// Cart is an ordered collection of lines, keyed by (product, unit type).
// Line order is the insertion order of distinct keys. The zero value is an
// empty, usable cart.
type Cart struct {
	lines []domain.CartLine
	index map[Key]int
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	next := Cart{
		lines: slices.Clone(c.lines),
		index: maps.Clone(c.index),
	}
	if next.index == nil {
		next.index = make(map[Key]int)
	}
	return next
}

// Add puts one unit of product into the cart at the given purchase
// granularity. An existing line for the same key has its quantity
// incremented; its price snapshot is kept even if the product's catalog
// price changed since the first add. Otherwise a new line is appended with
// quantity 1 and the unit price captured now.
func (c Cart) Add(p domain.Product, unit domain.UnitType) (Cart, domain.ItemAdded) {
	next := c.clone()
	key := Key{ProductID: p.ID, Unit: unit}

	if i, ok := next.index[key]; ok {
		next.lines[i].Quantity++
		return next, added(next.lines[i])
	}

	line := domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Unit:      unit,
		Quantity:  1,
		UnitPrice: unit.Price(p),
	}
	next.index[key] = len(next.lines)
	next.lines = append(next.lines, line)
	return next, added(line)
}

func added(line domain.CartLine) domain.ItemAdded {
	return domain.ItemAdded{
		ProductID: line.ProductID,
		Name:      line.Unit.DisplayName(line.Name),
		Unit:      line.Unit,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
	}
}

// Adjust changes a line's quantity by delta, clamped at zero. A line whose
// quantity reaches zero is removed entirely; no zero-quantity line ever
// persists. Adjusting an absent key is a no-op, not an error.
func (c Cart) Adjust(productID string, unit domain.UnitType, delta int) Cart {
	key := Key{ProductID: productID, Unit: unit}
	i, ok := c.index[key]
	if !ok {
		return c
	}

	next := c.clone()
	quantity := next.lines[i].Quantity + delta
	if quantity <= 0 {
		next.lines = slices.Delete(next.lines, i, i+1)
		delete(next.index, key)
		for k, j := range next.index {
			if j > i {
				next.index[k] = j - 1
			}
		}
		return next
	}

	next.lines[i].Quantity = quantity
	return next
}

// Lines returns the cart lines in insertion order. The returned slice is a
// copy; mutating it does not affect the cart.
func (c Cart) Lines() []domain.CartLine {
	return slices.Clone(c.lines)
}

// Line returns the line for the given key, if present.
func (c Cart) Line(productID string, unit domain.UnitType) (domain.CartLine, bool) {
	if i, ok := c.index[Key{ProductID: productID, Unit: unit}]; ok {
		return c.lines[i], true
	}
	return domain.CartLine{}, false
}

// Len is the number of distinct lines.
func (c Cart) Len() int {
	return len(c.lines)
}

// Units is the total quantity across all lines, the cart badge count.
func (c Cart) Units() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}
