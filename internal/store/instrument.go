package store

import (
	"github.com/google/btree"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
)

// instrumentLess orders catalog entries by symbol ascending, so Ascend
// yields a deterministic listing.
func instrumentLess(a, b domain.Instrument) bool {
	return a.Symbol < b.Symbol
}

// InstrumentStore is the seeded instrument catalog. It is read-only after
// construction, so it is safe for concurrent use without locking.
type InstrumentStore struct {
	bySymbol map[string]domain.Instrument
	sorted   *btree.BTreeG[domain.Instrument]
}

// NewInstrumentStore creates a catalog from the given seed instruments.
func NewInstrumentStore(seed []domain.Instrument) *InstrumentStore {
	const degree = 32
	s := &InstrumentStore{
		bySymbol: make(map[string]domain.Instrument, len(seed)),
		sorted:   btree.NewG[domain.Instrument](degree, instrumentLess),
	}
	for _, inst := range seed {
		s.bySymbol[inst.Symbol] = inst
		s.sorted.ReplaceOrInsert(inst)
	}
	return s
}

// Get retrieves an instrument by symbol. It returns
// domain.ErrInstrumentNotFound if the symbol is unknown.
func (s *InstrumentStore) Get(symbol string) (domain.Instrument, error) {
	inst, ok := s.bySymbol[symbol]
	if !ok {
		return domain.Instrument{}, domain.ErrInstrumentNotFound
	}
	return inst, nil
}

// List returns all instruments ordered by symbol.
func (s *InstrumentStore) List() []domain.Instrument {
	result := make([]domain.Instrument, 0, s.sorted.Len())
	s.sorted.Ascend(func(inst domain.Instrument) bool {
		result = append(result, inst)
		return true
	})
	return result
}

// Count returns the number of instruments in the catalog.
func (s *InstrumentStore) Count() int {
	return s.sorted.Len()
}

// SeedInstruments returns the default catalog loaded at startup.
func SeedInstruments() []domain.Instrument {
	return []domain.Instrument{
		{Symbol: "TCS", Exchange: "NSE", Kind: domain.InstrumentKindStock, LastTradedPrice: decimal.RequireFromString("3450.25")},
		{Symbol: "INFY", Exchange: "NSE", Kind: domain.InstrumentKindStock, LastTradedPrice: decimal.RequireFromString("1520.40")},
		{Symbol: "RELIANCE", Exchange: "NSE", Kind: domain.InstrumentKindStock, LastTradedPrice: decimal.RequireFromString("2850.10")},
		{Symbol: "HDFC", Exchange: "NSE", Kind: domain.InstrumentKindStock, LastTradedPrice: decimal.RequireFromString("1680.75")},
		{Symbol: "ICICIBANK", Exchange: "NSE", Kind: domain.InstrumentKindStock, LastTradedPrice: decimal.RequireFromString("950.30")},
	}
}
