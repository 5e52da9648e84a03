package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine pairs a product with a positive quantity.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price * quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is a read-only copy of a cart at one point in time.
type CartSnapshot struct {
	Items        []CartLine      `json:"items"`
	TotalItems   int             `json:"totalItems"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	TotalDisplay string          `json:"totalDisplay,omitempty"`
	IsOpen       bool            `json:"isOpen"`
}

// OrderDetails carries the optional customer fields of a detailed checkout.
type OrderDetails struct {
	CustomerName    string `json:"customerName,omitempty"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
}

// CheckoutLink is what the checkout endpoints hand back to the browser.
type CheckoutLink struct {
	Mode    string          `json:"mode"` // "detailed", "quick" or "buy-now"
	Message string          `json:"message"`
	URL     string          `json:"url"`
	Total   decimal.Decimal `json:"total"`
	Items   int             `json:"items"`
}

// CheckoutEvent is published when a checkout link is generated.
type CheckoutEvent struct {
	SessionID string          `json:"sessionId"`
	Mode      string          `json:"mode"`
	Lines     int             `json:"lines"`
	Items     int             `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
