// Package cart maintains the quantity-keyed cart collection and its derived
// totals. Every mutation persists the full collection as its last step so a
// restart reconstructs identical state.
package cart

import (
	"log"
	"sync"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
)

type Service struct {
	mu    sync.Mutex
	items []domain.CartItem
	store storage.Store
}

// New restores the cart from the store. Missing or corrupt data starts an
// empty cart; that is not an error.
func New(store storage.Store) *Service {
	s := &Service{store: store}
	if _, err := store.Load(storage.KeyCart, &s.items); err != nil {
		log.Printf("cart: restore failed, starting empty: %v", err)
		s.items = nil
	}
	return s
}

// Add increments the quantity of an existing line or appends a new line with
// quantity 1. New lines go to the end so the display order stays stable. The
// resulting line is returned for the confirmation message.
func (s *Service) Add(b domain.Bouquet) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Bouquet.ID == b.ID {
			s.items[i].Quantity++
			s.persist()
			return s.items[i]
		}
	}
	item := domain.CartItem{Bouquet: b, Quantity: 1}
	s.items = append(s.items, item)
	s.persist()
	return item
}

// Remove deletes the line for the given bouquet ID. Removing an absent line
// is a no-op.
func (s *Service) Remove(bouquetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(bouquetID)
	s.persist()
}

// UpdateQuantity sets the line quantity to an absolute value. A quantity of
// zero or less behaves exactly like Remove. Updating an absent line is a
// no-op.
func (s *Service) UpdateQuantity(bouquetID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(bouquetID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].Bouquet.ID == bouquetID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems is the sum of quantities, recomputed on every call.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of line subtotals, recomputed on every call.
func (s *Service) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

func (s *Service) removeLocked(bouquetID string) {
	for i, item := range s.items {
		if item.Bouquet.ID == bouquetID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Service) persist() {
	if err := s.store.Save(storage.KeyCart, s.items); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
}
