package service

import (
	"errors"
	"testing"

	"github.com/efreitasn/minidesk/internal/domain"
)

func TestPortfolioService_Get_ValuesAtLatestPrice(t *testing.T) {
	f := newFixture()

	_, _ = f.positions.ApplyTrade("TCS", 10, dec("3450.25"))

	view, err := f.portfolioSvc.Get("TCS")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", view.Quantity)
	}
	if !view.AveragePrice.Equal(dec("3450.25")) {
		t.Errorf("AveragePrice = %s, want 3450.25", view.AveragePrice)
	}
	// Current value = quantity × catalog's last traded price.
	if !view.CurrentValue.Equal(dec("34502.50")) {
		t.Errorf("CurrentValue = %s, want 34502.50", view.CurrentValue)
	}
}

func TestPortfolioService_Get_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.portfolioSvc.Get("TCS")
	if !errors.Is(err, domain.ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestPortfolioService_CurrentValueNotCostBasis(t *testing.T) {
	f := newFixture()

	// Position acquired below the catalog price: current value follows
	// the catalog, not the average price.
	_, _ = f.positions.ApplyTrade("INFY", 4, dec("1500.00"))

	view, err := f.portfolioSvc.Get("INFY")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.CurrentValue.Equal(dec("6081.60")) { // 4 × 1520.40
		t.Errorf("CurrentValue = %s, want 6081.60", view.CurrentValue)
	}
}

func TestPortfolioService_List_SortedWithValues(t *testing.T) {
	f := newFixture()

	_, _ = f.positions.ApplyTrade("TCS", 2, dec("3450.25"))
	_, _ = f.positions.ApplyTrade("HDFC", 3, dec("1680.75"))

	views := f.portfolioSvc.List()
	if len(views) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(views))
	}
	if views[0].Symbol != "HDFC" || views[1].Symbol != "TCS" {
		t.Fatalf("positions out of order: %s, %s", views[0].Symbol, views[1].Symbol)
	}
	if !views[0].CurrentValue.Equal(dec("5042.25")) { // 3 × 1680.75
		t.Errorf("HDFC CurrentValue = %s, want 5042.25", views[0].CurrentValue)
	}
}

func TestPortfolioService_Summary(t *testing.T) {
	f := newFixture()

	_, _ = f.positions.ApplyTrade("TCS", 10, dec("3400.00")) // cost 34000.00, value 34502.50
	_, _ = f.positions.ApplyTrade("INFY", 5, dec("1520.40")) // cost 7602.00, value 7602.00

	summary := f.portfolioSvc.Summary()
	if summary.PositionCount != 2 {
		t.Fatalf("PositionCount = %d, want 2", summary.PositionCount)
	}
	if !summary.TotalValue.Equal(dec("42104.50")) {
		t.Errorf("TotalValue = %s, want 42104.50", summary.TotalValue)
	}
	if !summary.TotalCost.Equal(dec("41602.00")) {
		t.Errorf("TotalCost = %s, want 41602.00", summary.TotalCost)
	}
	if !summary.UnrealizedPnL.Equal(dec("502.50")) {
		t.Errorf("UnrealizedPnL = %s, want 502.50", summary.UnrealizedPnL)
	}
}

func TestPortfolioService_Summary_Empty(t *testing.T) {
	f := newFixture()

	summary := f.portfolioSvc.Summary()
	if summary.PositionCount != 0 {
		t.Errorf("PositionCount = %d, want 0", summary.PositionCount)
	}
	if !summary.TotalValue.IsZero() || !summary.TotalCost.IsZero() || !summary.UnrealizedPnL.IsZero() {
		t.Error("empty portfolio totals should be zero")
	}
}

func TestHealthService_Snapshot(t *testing.T) {
	f := newFixture()

	snap := f.healthSvc.Snapshot()
	if snap.Instruments != 5 {
		t.Errorf("Instruments = %d, want 5", snap.Instruments)
	}
	if snap.Orders != 0 || snap.Trades != 0 || snap.Positions != 0 {
		t.Errorf("fresh desk should have no orders/trades/positions: %+v", snap)
	}

	_, err := f.orderSvc.PlaceOrder(PlaceOrderRequest{
		Symbol:   "TCS",
		Side:     domain.OrderSideBuy,
		Style:    domain.OrderStyleMarket,
		Quantity: 10,
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	snap = f.healthSvc.Snapshot()
	if snap.Orders != 1 || snap.Trades != 1 || snap.Positions != 1 {
		t.Errorf("after one market buy: %+v, want 1/1/1", snap)
	}
}
