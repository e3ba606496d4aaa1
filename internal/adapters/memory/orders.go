package memory

import (
	"context"
	"sync"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// OrderStore implements ports.OrderStore in memory.
// Safe for concurrent use.
type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderStore creates a new in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Insert appends the order. Duplicate (name, phone) pairs are allowed, same
// as the relational table.
func (s *OrderStore) Insert(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

// ExistsByNamePhone reports whether any order matches (name, phone) exactly.
func (s *OrderStore) ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.Name == name && o.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

// DeleteByNamePhone removes every order matching (name, phone) exactly.
func (s *OrderStore) DeleteByNamePhone(ctx context.Context, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.Name != name || o.Phone != phone {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	return nil
}

// Len reports the number of stored orders. Test helper.
func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
