package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide indicates whether an order buys or sells the instrument.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// OrderStyle distinguishes market orders from limit orders.
type OrderStyle string

const (
	OrderStyleMarket OrderStyle = "MARKET"
	OrderStyleLimit  OrderStyle = "LIMIT"
)

// OrderStatus represents the lifecycle state of an order.
//
// NEW exists only before the order is persisted; the ledger stores
// PLACED and later. EXECUTED and CANCELLED are terminal.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusExecuted  OrderStatus = "EXECUTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// CanTransitionTo reports whether the status may move to next. The only
// legal transitions are PLACED→EXECUTED and PLACED→CANCELLED.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusPlaced {
		return false
	}
	return next == OrderStatusExecuted || next == OrderStatusCancelled
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusExecuted || s == OrderStatusCancelled
}

// Order represents a buy or sell instruction for a single instrument.
type Order struct {
	OrderID     string
	Symbol      string
	Side        OrderSide
	Style       OrderStyle
	Quantity    int64
	LimitPrice  *decimal.Decimal // nil for market orders
	Status      OrderStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// SignedQuantity returns the order quantity with BUY positive and
// SELL negative.
func (o *Order) SignedQuantity() int64 {
	if o.Side == OrderSideSell {
		return -o.Quantity
	}
	return o.Quantity
}
