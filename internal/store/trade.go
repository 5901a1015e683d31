package store

import (
	"sync"

	"github.com/efreitasn/minidesk/internal/domain"
)

// TradeStore is a thread-safe append-only log of executions, with
// secondary indexes by trade ID and by symbol. Insertion order is
// execution order.
type TradeStore struct {
	mu       sync.RWMutex
	trades   []domain.Trade
	byID     map[string]int   // trade_id → index into trades
	bySymbol map[string][]int // symbol → indexes into trades (chronological)
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{
		byID:     make(map[string]int),
		bySymbol: make(map[string][]int),
	}
}

// Append adds a trade to the log. It always succeeds.
func (s *TradeStore) Append(t domain.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := len(s.trades)
	s.trades = append(s.trades, t)
	s.byID[t.TradeID] = idx
	s.bySymbol[t.Symbol] = append(s.bySymbol[t.Symbol], idx)
}

// Get retrieves a trade by ID. It returns domain.ErrTradeNotFound if the
// trade does not exist.
func (s *TradeStore) Get(id string) (domain.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.Trade{}, domain.ErrTradeNotFound
	}
	return s.trades[idx], nil
}

// List returns all trades in execution order.
func (s *TradeStore) List() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Trade, len(s.trades))
	copy(result, s.trades)
	return result
}

// ListBySymbol returns all trades for a symbol in execution order.
// Returns an empty slice if no trades exist for the symbol.
func (s *TradeStore) ListBySymbol(symbol string) []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.bySymbol[symbol]
	result := make([]domain.Trade, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, s.trades[i])
	}
	return result
}

// Count returns the number of trades in the log.
func (s *TradeStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trades)
}
