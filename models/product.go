package models

import "github.com/shopspring/decimal"

// Category is one of the fixed occasion groups a lehenga belongs to.
type Category string

const (
	CategoryBridal    Category = "bridal"
	CategoryReception Category = "reception"
	CategorySangeet   Category = "sangeet"
	CategoryMehendi   Category = "mehendi"

	// CategoryAll is a filter value, never a product's category.
	CategoryAll Category = "all"
)

// Valid reports whether c is a real product category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBridal, CategoryReception, CategorySangeet, CategoryMehendi:
		return true
	}
	return false
}

// Product is an immutable catalog record.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Specs       []string        `json:"specs"`
	Featured    bool            `json:"featured"`
	Stock       int             `json:"stock"`
}

// CategoryInfo is a display entry for the category picker.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
	Icon string   `json:"icon"`
}

// Categories lists the picker entries in display order.
var Categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Lehengas", Icon: "Sparkles"},
	{ID: CategoryBridal, Name: "Bridal", Icon: "Crown"},
	{ID: CategoryReception, Name: "Reception", Icon: "Heart"},
	{ID: CategorySangeet, Name: "Sangeet", Icon: "Music"},
	{ID: CategoryMehendi, Name: "Mehendi", Icon: "Flower2"},
}
