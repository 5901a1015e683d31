package domain

import "github.com/shopspring/decimal"

// Position is the net holding in a single instrument derived from the
// trade stream. Quantity never goes negative: a SELL that would exceed
// the held quantity is rejected before any trade is recorded. A position
// that nets to zero keeps its record with Quantity 0 and a zero
// AveragePrice.
type Position struct {
	Symbol       string
	Quantity     int64
	AveragePrice decimal.Decimal
}

// Apply returns the position after a signed trade quantity (BUY positive,
// SELL negative) executed at the given price.
//
// An increasing trade recomputes the weighted-average cost basis:
//
//	new_avg = (old_qty·old_avg + qty·price) / (old_qty + qty)
//
// A decreasing trade reduces the quantity and leaves the average price
// untouched; selling does not alter cost basis. Decreasing below zero
// returns ErrInsufficientHoldings and leaves the position unchanged.
func (p Position) Apply(signedQty int64, price decimal.Decimal) (Position, error) {
	if signedQty >= 0 {
		oldCost := p.AveragePrice.Mul(decimal.NewFromInt(p.Quantity))
		addCost := price.Mul(decimal.NewFromInt(signedQty))
		newQty := p.Quantity + signedQty
		next := Position{Symbol: p.Symbol, Quantity: newQty}
		if newQty > 0 {
			next.AveragePrice = oldCost.Add(addCost).Div(decimal.NewFromInt(newQty))
		}
		return next, nil
	}

	sold := -signedQty
	if sold > p.Quantity {
		return p, ErrInsufficientHoldings
	}
	next := Position{
		Symbol:       p.Symbol,
		Quantity:     p.Quantity - sold,
		AveragePrice: p.AveragePrice,
	}
	if next.Quantity == 0 {
		next.AveragePrice = decimal.Zero
	}
	return next, nil
}

// CostBasis returns quantity × average price.
func (p Position) CostBasis() decimal.Decimal {
	return p.AveragePrice.Mul(decimal.NewFromInt(p.Quantity))
}
