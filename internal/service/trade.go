package service

import (
	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/store"
)

// TradeService exposes the trade log.
type TradeService struct {
	tradeStore *store.TradeStore
}

// NewTradeService creates a new TradeService.
func NewTradeService(tradeStore *store.TradeStore) *TradeService {
	return &TradeService{tradeStore: tradeStore}
}

// List returns all trades in execution order, optionally filtered by
// symbol.
func (s *TradeService) List(symbol string) []domain.Trade {
	if symbol != "" {
		return s.tradeStore.ListBySymbol(symbol)
	}
	return s.tradeStore.List()
}

// Get returns a trade by ID.
func (s *TradeService) Get(tradeID string) (domain.Trade, error) {
	return s.tradeStore.Get(tradeID)
}
