package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/efreitasn/minidesk/internal/domain"
)

// Property: a request with a non-positive quantity is always rejected
// with a ValidationError and never creates an order, trade, or position,
// whatever the rest of the request looks like.
func TestProperty_NonPositiveQuantityAlwaysRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newFixture()

		req := PlaceOrderRequest{
			Symbol:   rapid.SampledFrom([]string{"TCS", "INFY", "RELIANCE", "WIPRO"}).Draw(t, "symbol"),
			Side:     rapid.SampledFrom([]domain.OrderSide{domain.OrderSideBuy, domain.OrderSideSell}).Draw(t, "side"),
			Style:    rapid.SampledFrom([]domain.OrderStyle{domain.OrderStyleMarket, domain.OrderStyleLimit}).Draw(t, "style"),
			Quantity: rapid.Int64Range(-1000, 0).Draw(t, "quantity"),
		}
		if req.Style == domain.OrderStyleLimit {
			p := decimal.NewFromInt(rapid.Int64Range(1, 5000).Draw(t, "price"))
			req.Price = &p
		}

		_, err := f.orderSvc.PlaceOrder(req)
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError for quantity %d, got %v", req.Quantity, err)
		}
		if f.orders.Count() != 0 || f.trades.Count() != 0 || f.positions.Count() != 0 {
			t.Fatal("rejected request mutated a ledger")
		}
	})
}

// Property: the price rule is exclusive: limit orders demand a positive
// price, market orders refuse any price, and violations mutate nothing.
func TestProperty_PriceStyleMismatchAlwaysRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newFixture()

		style := rapid.SampledFrom([]domain.OrderStyle{domain.OrderStyleMarket, domain.OrderStyleLimit}).Draw(t, "style")
		req := PlaceOrderRequest{
			Symbol:   "TCS",
			Side:     domain.OrderSideBuy,
			Style:    style,
			Quantity: rapid.Int64Range(1, 100).Draw(t, "quantity"),
		}
		if style == domain.OrderStyleMarket {
			// Market order carrying a price: rejected, not ignored.
			p := decimal.NewFromInt(rapid.Int64Range(1, 5000).Draw(t, "price"))
			req.Price = &p
		} else if rapid.Bool().Draw(t, "nonpositive") {
			p := decimal.NewFromInt(rapid.Int64Range(-5000, 0).Draw(t, "badPrice"))
			req.Price = &p
		} // else: limit without price

		_, err := f.orderSvc.PlaceOrder(req)
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if f.orders.Count() != 0 || f.trades.Count() != 0 || f.positions.Count() != 0 {
			t.Fatal("rejected request mutated a ledger")
		}
	})
}
