// Package session owns the cart state for a single shopper.
package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/hrc-store/storefront/internal/cart"
	"github.com/hrc-store/storefront/internal/domain"
)

// Notifier receives cart notifications for the presentation layer. A nil
// notifier disables notifications.
type Notifier interface {
	ItemAdded(event domain.ItemAdded)
}

// Session holds the current cart snapshot for one shopping session. A
// session is owned by a single goroutine; callers needing concurrent access
// must serialize it themselves.
type Session struct {
	id       string
	cart     cart.Cart
	pricing  cart.Pricing
	notifier Notifier
	logger   *slog.Logger
}

// New starts an empty session.
func New(pricing cart.Pricing, notifier Notifier, logger *slog.Logger) *Session {
	return &Session{
		id:       uuid.NewString(),
		cart:     cart.New(),
		pricing:  pricing,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Session) ID() string {
	return s.id
}

// AddItem adds one unit of product to the cart and emits the item-added
// notification.
func (s *Session) AddItem(p domain.Product, unit domain.UnitType) domain.ItemAdded {
	next, event := s.cart.Add(p, unit)
	s.cart = next

	s.logger.Info("item added",
		"session_id", s.id, "product_id", p.ID, "unit", unit, "quantity", event.Quantity)

	if s.notifier != nil {
		s.notifier.ItemAdded(event)
	}
	return event
}

// AdjustQuantity changes a line's quantity by delta. Adjusting a line that
// is no longer in the cart is a no-op; the UI may race its own removals.
func (s *Session) AdjustQuantity(productID string, unit domain.UnitType, delta int) {
	s.cart = s.cart.Adjust(productID, unit, delta)

	s.logger.Info("quantity adjusted",
		"session_id", s.id, "product_id", productID, "unit", unit, "delta", delta)
}

// Cart returns the current cart snapshot.
func (s *Session) Cart() cart.Cart {
	return s.cart
}

// Totals computes the pricing summary under the session's policy.
func (s *Session) Totals() domain.Totals {
	return s.pricing.Totals(s.cart)
}
