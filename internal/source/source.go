// Package source is the catalog data-fetch collaborator consumed by the
// storefront core. The collaborator owns availability filtering and ordering
// policy; the core receives its output as-is.
package source

import (
	"context"

	"github.com/hrc-store/storefront/internal/domain"
)

// Source yields the sellable catalog.
type Source interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
