// Package receipt turns a cart into the order summary fed to the
// outbound-messaging collaborator: per-line data in cart order plus the
// pricing totals, and a plain-text rendering for the call-to-order flow.
package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrc-store/storefront/internal/cart"
)

// StoreInfo identifies the storefront on the rendered message.
type StoreInfo struct {
	Name         string
	ContactPhone string
	Currency     string
}

// Line is one receipt entry. Name carries the unit label, e.g.
// "Silver Rakhi (Dozen)".
type Line struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// Receipt is the order summary. Lines appear in cart line order.
type Receipt struct {
	Store    StoreInfo
	Lines    []Line
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Rate     decimal.Decimal
	Total    decimal.Decimal
}

// Build summarizes the cart under the given pricing policy.
func Build(c cart.Cart, pricing cart.Pricing, store StoreInfo) Receipt {
	totals := pricing.Totals(c)

	lines := make([]Line, 0, c.Len())
	for _, l := range c.Lines() {
		lines = append(lines, Line{
			Name:     fmt.Sprintf("%s (%s)", l.Name, l.Unit.Label()),
			Quantity: l.Quantity,
			Total:    l.Total(),
		})
	}

	return Receipt{
		Store:    store,
		Lines:    lines,
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Rate:     pricing.Rate,
		Total:    totals.Total,
	}
}

// String renders the human-readable order message. Link construction
// (tel:, chat links) is left to the messaging collaborator.
func (r Receipt) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order - %s\n", r.Store.Name)
	for i, line := range r.Lines {
		fmt.Fprintf(&b, "%d. %s x%d = %s%s\n",
			i+1, line.Name, line.Quantity, r.Store.Currency, line.Total.StringFixed(2))
	}

	fmt.Fprintf(&b, "Subtotal: %s%s\n", r.Store.Currency, r.Subtotal.StringFixed(2))
	if r.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount (%s%%): -%s%s\n",
			r.Rate.Mul(decimal.NewFromInt(100)).String(), r.Store.Currency, r.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s%s\n", r.Store.Currency, r.Total.StringFixed(2))
	fmt.Fprintf(&b, "Call to order: %s\n", r.Store.ContactPhone)

	return b.String()
}
