package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/efreitasn/minidesk/internal/domain"
)

func newTestOrder(id string) domain.Order {
	return domain.Order{
		OrderID:   id,
		Symbol:    "TCS",
		Side:      domain.OrderSideBuy,
		Style:     domain.OrderStyleMarket,
		Quantity:  10,
		Status:    domain.OrderStatusPlaced,
		CreatedAt: time.Now(),
	}
}

func TestOrderStore_Create_and_Get(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("order-1"))

	got, err := s.Get("order-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.OrderID != "order-1" {
		t.Fatalf("expected order-1, got %s", got.OrderID)
	}
	if got.Status != domain.OrderStatusPlaced {
		t.Fatalf("expected PLACED, got %s", got.Status)
	}
}

func TestOrderStore_Get_NotFound(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Get("no-such-order")
	if err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStore_Get_ReturnsSnapshot(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("order-1"))

	before, _ := s.Get("order-1")
	if _, err := s.Transition("order-1", domain.OrderStatusExecuted); err != nil {
		t.Fatalf("transition failed: %v", err)
	}

	// The earlier snapshot must be unaffected by the transition.
	if before.Status != domain.OrderStatusPlaced {
		t.Errorf("snapshot mutated: %s", before.Status)
	}
	after, _ := s.Get("order-1")
	if after.Status != domain.OrderStatusExecuted {
		t.Errorf("stored order not updated: %s", after.Status)
	}
}

func TestOrderStore_Transition_PlacedToExecuted(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("order-1"))

	got, err := s.Transition("order-1", domain.OrderStatusExecuted)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != domain.OrderStatusExecuted {
		t.Fatalf("expected EXECUTED, got %s", got.Status)
	}
}

func TestOrderStore_Transition_PlacedToCancelled_SetsTimestamp(t *testing.T) {
	s := NewOrderStore()
	s.Create(newTestOrder("order-1"))

	got, err := s.Transition("order-1", domain.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != domain.OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", got.Status)
	}
	if got.CancelledAt == nil {
		t.Fatal("CancelledAt should be set on cancellation")
	}
}

func TestOrderStore_Transition_TerminalStatesRejected(t *testing.T) {
	tests := []struct {
		name  string
		first domain.OrderStatus
		then  domain.OrderStatus
	}{
		{"executed then cancelled", domain.OrderStatusExecuted, domain.OrderStatusCancelled},
		{"executed then executed", domain.OrderStatusExecuted, domain.OrderStatusExecuted},
		{"cancelled then executed", domain.OrderStatusCancelled, domain.OrderStatusExecuted},
		{"cancelled then cancelled", domain.OrderStatusCancelled, domain.OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOrderStore()
			s.Create(newTestOrder("order-1"))
			if _, err := s.Transition("order-1", tt.first); err != nil {
				t.Fatalf("first transition failed: %v", err)
			}
			if _, err := s.Transition("order-1", tt.then); err != domain.ErrInvalidStateTransition {
				t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
			}
		})
	}
}

func TestOrderStore_Transition_UnknownOrder(t *testing.T) {
	s := NewOrderStore()

	_, err := s.Transition("no-such-order", domain.OrderStatusExecuted)
	if err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderStore_Count(t *testing.T) {
	s := NewOrderStore()
	for i := 0; i < 3; i++ {
		s.Create(newTestOrder(fmt.Sprintf("order-%d", i)))
	}
	if got := s.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestOrderStore_ConcurrentAccess(t *testing.T) {
	s := NewOrderStore()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			s.Create(newTestOrder(id))
		}(fmt.Sprintf("order-%d", i))
		go func(id string) {
			defer wg.Done()
			_, _ = s.Get(id)
		}(fmt.Sprintf("order-%d", i))
	}
	wg.Wait()

	if got := s.Count(); got != 100 {
		t.Fatalf("Count() = %d, want 100", got)
	}
}
