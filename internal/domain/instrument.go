package domain

import "github.com/shopspring/decimal"

// InstrumentKind classifies a tradable instrument.
type InstrumentKind string

const (
	InstrumentKindStock  InstrumentKind = "STOCK"
	InstrumentKindBond   InstrumentKind = "BOND"
	InstrumentKindETF    InstrumentKind = "ETF"
	InstrumentKindOption InstrumentKind = "OPTION"
)

// Instrument represents a tradable security. Instruments are immutable
// after the catalog is seeded, so values are shared freely.
type Instrument struct {
	Symbol          string
	Exchange        string
	Kind            InstrumentKind
	LastTradedPrice decimal.Decimal
}
