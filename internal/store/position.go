package store

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
)

// PositionStore is a thread-safe in-memory ledger of per-symbol net
// positions derived from the trade stream. Positions are never deleted:
// a position that nets to zero keeps its record with quantity 0.
type PositionStore struct {
	mu        sync.RWMutex
	positions map[string]domain.Position
}

// NewPositionStore creates an empty PositionStore.
func NewPositionStore() *PositionStore {
	return &PositionStore{
		positions: make(map[string]domain.Position),
	}
}

// ApplyTrade folds a signed trade quantity (BUY positive, SELL negative)
// at the given price into the symbol's position, creating the position on
// the first buy. A sell with no position, or one exceeding the held
// quantity, returns domain.ErrInsufficientHoldings without mutating
// anything. Returns the updated position.
func (s *PositionStore) ApplyTrade(symbol string, signedQty int64, price decimal.Decimal) (domain.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.positions[symbol]
	if !ok {
		if signedQty < 0 {
			return domain.Position{}, domain.ErrInsufficientHoldings
		}
		p = domain.Position{Symbol: symbol}
	}

	next, err := p.Apply(signedQty, price)
	if err != nil {
		return domain.Position{}, err
	}
	s.positions[symbol] = next
	return next, nil
}

// Get retrieves the position for a symbol. It returns
// domain.ErrPositionNotFound if no trade has ever created one.
func (s *PositionStore) Get(symbol string) (domain.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.positions[symbol]
	if !ok {
		return domain.Position{}, domain.ErrPositionNotFound
	}
	return p, nil
}

// Quantity returns the held quantity for a symbol, or 0 if no position
// exists. Used by the execution engine's holdings check.
func (s *PositionStore) Quantity(symbol string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.positions[symbol].Quantity
}

// List returns all positions ordered by symbol.
func (s *PositionStore) List() []domain.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Position, 0, len(s.positions))
	for _, p := range s.positions {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// Count returns the number of position records, including flat ones.
func (s *PositionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.positions)
}
