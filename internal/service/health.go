package service

import "github.com/efreitasn/minidesk/internal/store"

// HealthSnapshot reports how much state each ledger holds.
type HealthSnapshot struct {
	Instruments int
	Orders      int
	Trades      int
	Positions   int
}

// HealthService assembles the health snapshot from the ledgers.
type HealthService struct {
	catalog   *store.InstrumentStore
	orders    *store.OrderStore
	trades    *store.TradeStore
	positions *store.PositionStore
}

// NewHealthService creates a new HealthService.
func NewHealthService(
	catalog *store.InstrumentStore,
	orders *store.OrderStore,
	trades *store.TradeStore,
	positions *store.PositionStore,
) *HealthService {
	return &HealthService{
		catalog:   catalog,
		orders:    orders,
		trades:    trades,
		positions: positions,
	}
}

// Snapshot returns the current entity counts.
func (s *HealthService) Snapshot() HealthSnapshot {
	return HealthSnapshot{
		Instruments: s.catalog.Count(),
		Orders:      s.orders.Count(),
		Trades:      s.trades.Count(),
		Positions:   s.positions.Count(),
	}
}
