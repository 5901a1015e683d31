package service

import (
	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/store"
)

// InstrumentService exposes the seeded catalog.
type InstrumentService struct {
	catalog *store.InstrumentStore
}

// NewInstrumentService creates a new InstrumentService.
func NewInstrumentService(catalog *store.InstrumentStore) *InstrumentService {
	return &InstrumentService{catalog: catalog}
}

// List returns all instruments ordered by symbol.
func (s *InstrumentService) List() []domain.Instrument {
	return s.catalog.List()
}

// Get returns the instrument for a symbol.
func (s *InstrumentService) Get(symbol string) (domain.Instrument, error) {
	return s.catalog.Get(symbol)
}
