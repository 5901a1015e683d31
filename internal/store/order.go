package store

import (
	"sync"
	"time"

	"github.com/efreitasn/minidesk/internal/domain"
)

// OrderStore is a thread-safe in-memory ledger for orders, keyed by
// order_id. Orders are stored by value and Get returns snapshot copies,
// so readers never race with a status transition in progress.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]domain.Order),
	}
}

// Create inserts an order into the ledger.
func (s *OrderStore) Create(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[o.OrderID] = o
}

// Get retrieves a snapshot of an order by ID. It returns
// domain.ErrOrderNotFound if the order does not exist.
func (s *OrderStore) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

// Transition moves an order to the next status, enforcing the state
// machine: only PLACED→EXECUTED and PLACED→CANCELLED are legal. Any
// other transition returns domain.ErrInvalidStateTransition. On
// cancellation the CancelledAt timestamp is set. Returns the updated
// snapshot.
func (s *OrderStore) Transition(id string, next domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(next) {
		return domain.Order{}, domain.ErrInvalidStateTransition
	}

	o.Status = next
	if next == domain.OrderStatusCancelled {
		now := time.Now()
		o.CancelledAt = &now
	}
	s.orders[id] = o
	return o, nil
}

// Count returns the number of orders in the ledger.
func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders)
}
