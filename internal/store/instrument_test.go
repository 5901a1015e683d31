package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
)

func TestInstrumentStore_Get(t *testing.T) {
	s := NewInstrumentStore(SeedInstruments())

	inst, err := s.Get("TCS")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if inst.Exchange != "NSE" {
		t.Errorf("Exchange = %s, want NSE", inst.Exchange)
	}
	if inst.Kind != domain.InstrumentKindStock {
		t.Errorf("Kind = %s, want STOCK", inst.Kind)
	}
	if !inst.LastTradedPrice.Equal(decimal.RequireFromString("3450.25")) {
		t.Errorf("LastTradedPrice = %s, want 3450.25", inst.LastTradedPrice)
	}
}

func TestInstrumentStore_Get_NotFound(t *testing.T) {
	s := NewInstrumentStore(SeedInstruments())

	_, err := s.Get("UNKNOWN")
	if err != domain.ErrInstrumentNotFound {
		t.Fatalf("expected ErrInstrumentNotFound, got %v", err)
	}
}

func TestInstrumentStore_List_OrderedBySymbol(t *testing.T) {
	s := NewInstrumentStore(SeedInstruments())

	instruments := s.List()
	if len(instruments) != 5 {
		t.Fatalf("expected 5 instruments, got %d", len(instruments))
	}
	for i := 0; i < len(instruments)-1; i++ {
		if instruments[i].Symbol >= instruments[i+1].Symbol {
			t.Fatalf("instruments not sorted by symbol at index %d: %s >= %s",
				i, instruments[i].Symbol, instruments[i+1].Symbol)
		}
	}
}

func TestInstrumentStore_Count(t *testing.T) {
	s := NewInstrumentStore(SeedInstruments())
	if got := s.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}

	empty := NewInstrumentStore(nil)
	if got := empty.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}
