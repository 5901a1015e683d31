package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents the execution of an order at a price. Trades are
// immutable once created and the trade log is append-only.
type Trade struct {
	TradeID    string
	OrderID    string
	Symbol     string
	Quantity   int64
	Price      decimal.Decimal
	ExecutedAt time.Time
}
