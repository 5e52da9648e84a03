package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"shoaib/models"
)

// SortKey orders search results.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSort maps a query value to a SortKey. Unknown values sort as featured.
func ParseSort(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	}
	return SortFeatured
}

// ParseCategory normalises a category filter value: surrounding space is
// dropped, case is ignored and blank means "all". Unknown names come back
// lowercased and match no product.
func ParseCategory(s string) models.Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return models.CategoryAll
	}
	return models.Category(s)
}

// Query is the listing page's combined search, filter and sort.
type Query struct {
	Text     string
	Category string // "" and "all" match every category
	MinPrice decimal.NullDecimal
	MaxPrice decimal.NullDecimal
	Sort     SortKey
}

// Search returns the products matching q. Price bounds are inclusive and the
// price sorts are stable, so equal prices keep catalog order.
func (c *Catalog) Search(q Query) []models.Product {
	fold := cases.Fold()
	text := fold.String(q.Text)

	out := c.filter(func(p models.Product) bool {
		if q.Category != "" && models.Category(q.Category) != models.CategoryAll &&
			string(p.Category) != q.Category {
			return false
		}
		if q.MinPrice.Valid && p.Price.LessThan(q.MinPrice.Decimal) {
			return false
		}
		if q.MaxPrice.Valid && p.Price.GreaterThan(q.MaxPrice.Decimal) {
			return false
		}
		if text == "" {
			return true
		}
		return strings.Contains(fold.String(p.Name), text) ||
			strings.Contains(fold.String(p.Description), text)
	})

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	}
	return out
}
