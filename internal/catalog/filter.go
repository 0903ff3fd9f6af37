// Package catalog filters and orders the product listing.
package catalog

import (
	"sort"
	"strings"

	"github.com/hrc-store/storefront/internal/domain"
)

// Filter applies filter criteria to a product set and orders the result by
// the merchandising rule: products whose name contains one of the configured
// priority fragments surface first, in fragment-list order; the rest keep
// their input order.
type Filter struct {
	fragments []string
}

// New builds a Filter from an ordered list of priority name fragments.
// Fragment matching is a case-insensitive substring test; ties between
// products matching the same fragment keep their relative input order.
func New(fragments []string) *Filter {
	f := &Filter{fragments: make([]string, len(fragments))}
	for i, fragment := range fragments {
		f.fragments[i] = strings.ToLower(fragment)
	}
	return f
}

// Apply returns the products matching criteria, reordered by the priority
// rule. The input slice is never modified. Apply cannot fail: unknown
// categories and inverted price bounds simply yield an empty result.
func (f *Filter) Apply(products []domain.Product, criteria domain.FilterCriteria) []domain.Product {
	var priority, regular []domain.Product
	for _, p := range products {
		if !matches(p, criteria) {
			continue
		}
		if f.fragmentIndex(p.Name) >= 0 {
			priority = append(priority, p)
		} else {
			regular = append(regular, p)
		}
	}

	sort.SliceStable(priority, func(i, j int) bool {
		return f.fragmentIndex(priority[i].Name) < f.fragmentIndex(priority[j].Name)
	})

	return append(priority, regular...)
}

// fragmentIndex returns the position of the first configured fragment
// contained in name, or -1 when none match.
func (f *Filter) fragmentIndex(name string) int {
	lower := strings.ToLower(name)
	for i, fragment := range f.fragments {
		if strings.Contains(lower, fragment) {
			return i
		}
	}
	return -1
}

func matches(p domain.Product, criteria domain.FilterCriteria) bool {
	if criteria.Category != domain.CategoryAll && p.Category != criteria.Category {
		return false
	}

	if criteria.Search != "" {
		search := strings.ToLower(criteria.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
	}

	if p.Price.LessThan(criteria.MinPrice) || p.Price.GreaterThan(criteria.MaxPrice) {
		return false
	}

	return true
}
