package service

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/engine"
	"github.com/efreitasn/minidesk/internal/store"
)

var orderSymbolRegex = regexp.MustCompile(`^[A-Z]{1,10}$`)

// PlaceOrderRequest represents the input for order placement.
type PlaceOrderRequest struct {
	Symbol   string
	Side     domain.OrderSide
	Style    domain.OrderStyle
	Quantity int64
	Price    *decimal.Decimal // required for limit, must be nil for market
}

// OrderService validates placement requests and drives the execution
// engine. All validation failures surface before any state mutation.
type OrderService struct {
	executor   *engine.Executor
	orderStore *store.OrderStore
}

// NewOrderService creates a new OrderService with the given dependencies.
func NewOrderService(executor *engine.Executor, orderStore *store.OrderStore) *OrderService {
	return &OrderService{
		executor:   executor,
		orderStore: orderStore,
	}
}

// PlaceOrder validates the request and submits it to the execution
// engine. Market orders come back EXECUTED, limit orders PLACED.
func (s *OrderService) PlaceOrder(req PlaceOrderRequest) (domain.Order, error) {
	if err := validatePlaceOrder(req); err != nil {
		return domain.Order{}, err
	}

	return s.executor.Submit(engine.SubmitRequest{
		Symbol:     req.Symbol,
		Side:       req.Side,
		Style:      req.Style,
		Quantity:   req.Quantity,
		LimitPrice: req.Price,
	})
}

func validatePlaceOrder(req PlaceOrderRequest) error {
	if req.Side != domain.OrderSideBuy && req.Side != domain.OrderSideSell {
		return &domain.ValidationError{
			Message: fmt.Sprintf("Unknown order side: %s. Must be one of: BUY, SELL", req.Side),
		}
	}
	if req.Style != domain.OrderStyleMarket && req.Style != domain.OrderStyleLimit {
		return &domain.ValidationError{
			Message: fmt.Sprintf("Unknown order style: %s. Must be one of: MARKET, LIMIT", req.Style),
		}
	}
	if !orderSymbolRegex.MatchString(req.Symbol) {
		return &domain.ValidationError{
			Message: "symbol must match ^[A-Z]{1,10}$",
		}
	}
	if req.Quantity <= 0 {
		return &domain.ValidationError{
			Message: "quantity must be a positive integer",
		}
	}

	if req.Style == domain.OrderStyleLimit {
		if req.Price == nil {
			return &domain.ValidationError{
				Message: "price is required for limit orders",
			}
		}
		if !req.Price.IsPositive() {
			return &domain.ValidationError{
				Message: "price must be greater than 0",
			}
		}
		if !req.Price.Equal(req.Price.Round(2)) {
			return &domain.ValidationError{
				Message: "price must have at most 2 decimal places",
			}
		}
		return nil
	}

	// Market orders must not carry a price; it is rejected, not ignored.
	if req.Price != nil {
		return &domain.ValidationError{
			Message: "market orders must not include price",
		}
	}
	return nil
}

// GetOrder retrieves an order by ID.
func (s *OrderService) GetOrder(orderID string) (domain.Order, error) {
	return s.orderStore.Get(orderID)
}

// CancelOrder cancels a PLACED order.
func (s *OrderService) CancelOrder(orderID string) (domain.Order, error) {
	return s.executor.Cancel(orderID)
}

// Sweep executes every resting limit order that is marketable against the
// catalog's reference price and returns the resulting trades.
func (s *OrderService) Sweep() ([]domain.Trade, error) {
	return s.executor.Sweep()
}
