package service

import (
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/store"
)

// PositionView is a position decorated with its current market value,
// recomputed from the catalog's latest price at read time rather than
// cached. Quantity and average price are as fresh as the last applied
// trade.
type PositionView struct {
	Symbol       string
	Quantity     int64
	AveragePrice decimal.Decimal
	CurrentValue decimal.Decimal
}

// PortfolioSummary aggregates the whole portfolio.
type PortfolioSummary struct {
	Positions     []PositionView
	TotalValue    decimal.Decimal
	TotalCost     decimal.Decimal
	UnrealizedPnL decimal.Decimal
	PositionCount int
}

// PortfolioService composes the position ledger with the instrument
// catalog to value holdings.
type PortfolioService struct {
	positions *store.PositionStore
	catalog   *store.InstrumentStore
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(positions *store.PositionStore, catalog *store.InstrumentStore) *PortfolioService {
	return &PortfolioService{
		positions: positions,
		catalog:   catalog,
	}
}

// Get returns the valued position for a symbol.
func (s *PortfolioService) Get(symbol string) (PositionView, error) {
	p, err := s.positions.Get(symbol)
	if err != nil {
		return PositionView{}, err
	}
	return s.value(p), nil
}

// List returns all valued positions ordered by symbol.
func (s *PortfolioService) List() []PositionView {
	positions := s.positions.List()
	views := make([]PositionView, len(positions))
	for i, p := range positions {
		views[i] = s.value(p)
	}
	return views
}

// Summary returns the valued positions plus portfolio totals: market
// value, cost basis, and unrealized profit and loss.
func (s *PortfolioService) Summary() PortfolioSummary {
	views := s.List()

	summary := PortfolioSummary{
		Positions:     views,
		TotalValue:    decimal.Zero,
		TotalCost:     decimal.Zero,
		PositionCount: len(views),
	}
	for _, v := range views {
		summary.TotalValue = summary.TotalValue.Add(v.CurrentValue)
		summary.TotalCost = summary.TotalCost.Add(v.AveragePrice.Mul(decimal.NewFromInt(v.Quantity)))
	}
	summary.UnrealizedPnL = summary.TotalValue.Sub(summary.TotalCost)
	return summary
}

func (s *PortfolioService) value(p domain.Position) PositionView {
	view := PositionView{
		Symbol:       p.Symbol,
		Quantity:     p.Quantity,
		AveragePrice: p.AveragePrice,
		CurrentValue: decimal.Zero,
	}
	if inst, err := s.catalog.Get(p.Symbol); err == nil {
		view.CurrentValue = inst.LastTradedPrice.Mul(decimal.NewFromInt(p.Quantity))
	}
	return view
}
