// Package catalog holds the read-only product list and the queries the
// storefront runs over it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"shoaib/models"
)

var (
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrEmptyID         = errors.New("product id is required")
	ErrInvalidCategory = errors.New("invalid product category")
	ErrNegativePrice   = errors.New("product price is negative")
	ErrNegativeStock   = errors.New("product stock is negative")
)

//go:embed products.json
var embeddedProducts []byte

// Catalog is an immutable, ordered product list with an id index.
type Catalog struct {
	products []models.Product
	index    map[string]int
}

// New validates products and builds a catalog. The slice is copied.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, clone(p))
	}
	return c, nil
}

// Load parses a JSON array of products.
func Load(data []byte) (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(products)
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Load(embeddedProducts)
}

func validate(p models.Product) error {
	switch {
	case p.ID == "":
		return ErrEmptyID
	case !p.Category.Valid():
		return ErrInvalidCategory
	case p.Price.IsNegative():
		return ErrNegativePrice
	case p.Stock < 0:
		return ErrNegativeStock
	}
	return nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	return c.filter(func(models.Product) bool { return true })
}

// FindByID looks a product up by exact id. The bool is false when absent.
func (c *Catalog) FindByID(id string) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return clone(c.products[i]), true
}

// FilterByCategory returns the products in category, or all of them for "all".
func (c *Catalog) FilterByCategory(category string) []models.Product {
	if models.Category(category) == models.CategoryAll {
		return c.All()
	}
	return c.filter(func(p models.Product) bool {
		return string(p.Category) == category
	})
}

// Featured returns the featured products in catalog order.
func (c *Catalog) Featured() []models.Product {
	return c.filter(func(p models.Product) bool { return p.Featured })
}

// Related returns up to limit other products from the same category.
func (c *Catalog) Related(id string, limit int) []models.Product {
	p, ok := c.FindByID(id)
	if !ok || limit <= 0 {
		return []models.Product{}
	}
	out := make([]models.Product, 0, limit)
	for _, other := range c.products {
		if len(out) == limit {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, clone(other))
		}
	}
	return out
}

func (c *Catalog) filter(keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	return out
}

// clone gives the caller its own Specs so writes cannot reach the catalog.
func clone(p models.Product) models.Product {
	p.Specs = slices.Clone(p.Specs)
	return p
}
