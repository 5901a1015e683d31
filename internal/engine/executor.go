package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/store"
)

// SubmitRequest is the input for order submission. The service layer has
// already validated its shape: side and style are legal enum values,
// quantity is positive, and the limit price is present and positive
// exactly when the style is LIMIT.
type SubmitRequest struct {
	Symbol     string
	Side       domain.OrderSide
	Style      domain.OrderStyle
	Quantity   int64
	LimitPrice *decimal.Decimal
}

// Executor orchestrates the order lifecycle: validate → place → for
// market orders, execute into a trade and fold it into the portfolio →
// mark executed. All mutations for a symbol are serialized on that
// symbol's ladder mutex, so concurrent readers observe the market-order
// unit of work as all-or-nothing.
type Executor struct {
	catalog   *store.InstrumentStore
	orders    *store.OrderStore
	trades    *store.TradeStore
	positions *store.PositionStore
	ladders   *LadderSet
}

// NewExecutor creates a new Executor with the given dependencies.
func NewExecutor(
	catalog *store.InstrumentStore,
	orders *store.OrderStore,
	trades *store.TradeStore,
	positions *store.PositionStore,
	ladders *LadderSet,
) *Executor {
	return &Executor{
		catalog:   catalog,
		orders:    orders,
		trades:    trades,
		positions: positions,
		ladders:   ladders,
	}
}

// Submit places an order. Market orders execute immediately at the
// instrument's last traded price for the full quantity. Limit orders rest
// PLACED on the symbol's ladder; nothing executes them until a sweep.
//
// Failures (unknown symbol, insufficient holdings for a market sell) are
// detected before any state mutation. The order ID is not published until
// Submit returns, so no caller ever observes a market order at PLACED.
func (e *Executor) Submit(req SubmitRequest) (domain.Order, error) {
	inst, err := e.catalog.Get(req.Symbol)
	if err != nil {
		return domain.Order{}, err
	}

	ladder := e.ladders.GetOrCreate(req.Symbol)
	ladder.mu.Lock()
	defer ladder.mu.Unlock()

	// A market sell must be covered by the current position. Checked
	// under the symbol lock, before anything is written.
	if req.Style == domain.OrderStyleMarket && req.Side == domain.OrderSideSell {
		if e.positions.Quantity(req.Symbol) < req.Quantity {
			return domain.Order{}, domain.ErrInsufficientHoldings
		}
	}

	order := domain.Order{
		OrderID:    uuid.New().String(),
		Symbol:     req.Symbol,
		Side:       req.Side,
		Style:      req.Style,
		Quantity:   req.Quantity,
		LimitPrice: req.LimitPrice,
		Status:     domain.OrderStatusPlaced,
		CreatedAt:  time.Now(),
	}
	e.orders.Create(order)

	if req.Style == domain.OrderStyleLimit {
		entry := LadderEntry{
			Limit:     *req.LimitPrice,
			CreatedAt: order.CreatedAt,
			OrderID:   order.OrderID,
		}
		if req.Side == domain.OrderSideBuy {
			ladder.InsertBid(entry)
		} else {
			ladder.InsertAsk(entry)
		}
		return order, nil
	}

	if _, err := e.execute(order, inst.LastTradedPrice); err != nil {
		return domain.Order{}, err
	}
	return e.orders.Get(order.OrderID)
}

// Cancel transitions a PLACED order to CANCELLED and removes it from the
// symbol's ladder. Terminal orders fail with ErrInvalidStateTransition.
func (e *Executor) Cancel(orderID string) (domain.Order, error) {
	o, err := e.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	ladder := e.ladders.GetOrCreate(o.Symbol)
	ladder.mu.Lock()
	defer ladder.mu.Unlock()

	// The transition re-checks the status under the ledger lock, so a
	// concurrent sweep that executed the order first wins cleanly.
	updated, err := e.orders.Transition(orderID, domain.OrderStatusCancelled)
	if err != nil {
		return domain.Order{}, err
	}
	ladder.Remove(orderID)
	return updated, nil
}

// Sweep walks every symbol's ladder best-first and executes each resting
// limit order that is marketable against the catalog's reference price: a
// buy whose limit is at or above it, a sell whose limit is at or below
// it. Execution happens at the order's limit price. Sells whose position
// no longer covers the quantity are skipped and remain PLACED on the
// ladder. Returns the executed trades in execution order.
func (e *Executor) Sweep() ([]domain.Trade, error) {
	var executed []domain.Trade

	for _, symbol := range e.ladders.Symbols() {
		inst, err := e.catalog.Get(symbol)
		if err != nil {
			return executed, err
		}

		ladder := e.ladders.GetOrCreate(symbol)
		ladder.mu.Lock()

		// Collect the marketable prefix of each side before mutating
		// the trees.
		var candidates []LadderEntry
		ladder.WalkBids(func(entry LadderEntry) bool {
			if entry.Limit.LessThan(inst.LastTradedPrice) {
				return false
			}
			candidates = append(candidates, entry)
			return true
		})
		ladder.WalkAsks(func(entry LadderEntry) bool {
			if entry.Limit.GreaterThan(inst.LastTradedPrice) {
				return false
			}
			candidates = append(candidates, entry)
			return true
		})

		for _, entry := range candidates {
			order, err := e.orders.Get(entry.OrderID)
			if err != nil || order.Status != domain.OrderStatusPlaced {
				ladder.Remove(entry.OrderID)
				continue
			}
			if order.Side == domain.OrderSideSell && e.positions.Quantity(symbol) < order.Quantity {
				// Stays PLACED on the ladder for a later sweep.
				continue
			}
			trade, err := e.execute(order, entry.Limit)
			if err != nil {
				ladder.mu.Unlock()
				return executed, err
			}
			ladder.Remove(entry.OrderID)
			executed = append(executed, trade)
		}

		ladder.mu.Unlock()
	}

	return executed, nil
}

// execute synthesizes exactly one trade for the full order quantity at
// the given price, folds it into the portfolio, appends it to the trade
// log, and marks the order EXECUTED, in that order. The portfolio is the
// only fallible write, so a failure there leaves no trade behind and the
// order stays PLACED; a reader that observes a trade also observes the
// position. The caller holds the symbol's ladder lock and has verified
// holdings, so any failure here is an internal invariant violation.
func (e *Executor) execute(order domain.Order, price decimal.Decimal) (domain.Trade, error) {
	trade := domain.Trade{
		TradeID:    uuid.New().String(),
		OrderID:    order.OrderID,
		Symbol:     order.Symbol,
		Quantity:   order.Quantity,
		Price:      price,
		ExecutedAt: time.Now(),
	}

	if _, err := e.positions.ApplyTrade(order.Symbol, order.SignedQuantity(), price); err != nil {
		return domain.Trade{}, fmt.Errorf("%w: portfolio update for order %s: %v", domain.ErrTradeExecution, order.OrderID, err)
	}
	e.trades.Append(trade)
	if _, err := e.orders.Transition(order.OrderID, domain.OrderStatusExecuted); err != nil {
		return domain.Trade{}, fmt.Errorf("%w: status transition for order %s: %v", domain.ErrTradeExecution, order.OrderID, err)
	}
	return trade, nil
}
