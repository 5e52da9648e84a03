// Package cart keeps the shopping cart of a browser session and serves it
// over HTTP.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"shoaib/models"
)

// Store is one session's cart. Lines keep first-add order, hold at most one
// entry per product id and never carry a quantity below one.
//
// The drawer flag is display state only and is independent of the lines.
type Store struct {
	mu    sync.Mutex
	lines []models.CartLine
	open  bool
}

// NewStore returns an empty cart with a closed drawer.
func NewStore() *Store {
	return &Store{}
}

// AddItem merges quantity into the product's line, appending a new line if
// the product is not in the cart yet. Quantities below one are ignored.
// The line keeps the product record it was last given, so totals follow the
// current catalog price.
func (s *Store) AddItem(p models.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(p.ID); i >= 0 {
		s.lines[i].Product = p
		s.lines[i].Quantity += quantity
		return
	}
	s.lines = append(s.lines, models.CartLine{Product: p, Quantity: quantity})
}

// UpdateQuantity sets the line's quantity. Zero or less removes the line.
// Unknown ids are ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.removeAt(i)
		return
	}
	s.lines[i].Quantity = quantity
}

// RemoveItem drops the product's line if there is one.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(productID); i >= 0 {
		s.removeAt(i)
	}
}

// Clear empties the cart without touching the drawer.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

func (s *Store) Open() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

func (s *Store) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}

func (s *Store) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Lines returns a copy of the lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLines()
}

// Len is the number of distinct products in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalItems is the sum of all quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

// TotalPrice is the sum of price * quantity, recomputed on every call.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.lines)
}

// Snapshot copies lines, totals and the drawer flag under one lock.
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartSnapshot{
		Items:      s.copyLines(),
		TotalItems: totalItems(s.lines),
		TotalPrice: totalPrice(s.lines),
		IsOpen:     s.open,
	}
}

func (s *Store) find(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

func (s *Store) copyLines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func totalItems(lines []models.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func totalPrice(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TotalItems sums the quantities of a line slice.
func TotalItems(lines []models.CartLine) int { return totalItems(lines) }

// TotalPrice sums the subtotals of a line slice.
func TotalPrice(lines []models.CartLine) decimal.Decimal { return totalPrice(lines) }
