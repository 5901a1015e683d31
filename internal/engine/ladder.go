package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/shopspring/decimal"
)

// LadderEntry represents a single limit order resting on the ladder.
type LadderEntry struct {
	Limit     decimal.Decimal
	CreatedAt time.Time
	OrderID   string
}

// bidLess defines ordering for resting buy orders: limit descending, then
// created_at ascending, then order_id ascending. Ascend visits the most
// marketable buy (highest limit, earliest time) first.
func bidLess(a, b LadderEntry) bool {
	if c := a.Limit.Cmp(b.Limit); c != 0 {
		return c > 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.OrderID < b.OrderID
}

// askLess defines ordering for resting sell orders: limit ascending, then
// created_at ascending, then order_id ascending. Ascend visits the most
// marketable sell (lowest limit, earliest time) first.
func askLess(a, b LadderEntry) bool {
	if c := a.Limit.Cmp(b.Limit); c != 0 {
		return c < 0
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.OrderID < b.OrderID
}

// Ladder holds the resting limit orders for a single symbol, one B-tree
// per side, with a secondary index for O(log n) removal by order ID. Its
// mutex doubles as the symbol's serialization point: the executor holds
// it for the whole place→execute→record→apply unit of work.
type Ladder struct {
	mu    sync.Mutex
	bids  *btree.BTreeG[LadderEntry]
	asks  *btree.BTreeG[LadderEntry]
	index map[string]LadderEntry // order_id → entry
}

// NewLadder creates an empty ladder.
func NewLadder() *Ladder {
	const degree = 32
	return &Ladder{
		bids:  btree.NewG[LadderEntry](degree, bidLess),
		asks:  btree.NewG[LadderEntry](degree, askLess),
		index: make(map[string]LadderEntry),
	}
}

// InsertBid adds a resting buy order to the ladder.
func (l *Ladder) InsertBid(entry LadderEntry) {
	l.bids.ReplaceOrInsert(entry)
	l.index[entry.OrderID] = entry
}

// InsertAsk adds a resting sell order to the ladder.
func (l *Ladder) InsertAsk(entry LadderEntry) {
	l.asks.ReplaceOrInsert(entry)
	l.index[entry.OrderID] = entry
}

// Remove deletes a resting order by ID using the secondary index. It
// tries both sides since the caller may not know which side the order
// is on. Removing an unknown ID is a no-op.
func (l *Ladder) Remove(orderID string) {
	entry, ok := l.index[orderID]
	if !ok {
		return
	}
	delete(l.index, orderID)
	l.bids.Delete(entry)
	l.asks.Delete(entry)
}

// Contains reports whether an order is resting on the ladder.
func (l *Ladder) Contains(orderID string) bool {
	_, ok := l.index[orderID]
	return ok
}

// WalkBids iterates resting buys best-first (highest limit). The callback
// returns true to continue, false to stop.
func (l *Ladder) WalkBids(fn func(LadderEntry) bool) {
	l.bids.Ascend(fn)
}

// WalkAsks iterates resting sells best-first (lowest limit). The callback
// returns true to continue, false to stop.
func (l *Ladder) WalkAsks(fn func(LadderEntry) bool) {
	l.asks.Ascend(fn)
}

// BidCount returns the number of resting buy orders.
func (l *Ladder) BidCount() int {
	return l.bids.Len()
}

// AskCount returns the number of resting sell orders.
func (l *Ladder) AskCount() int {
	return l.asks.Len()
}

// LadderSet is a thread-safe map of symbol → Ladder.
type LadderSet struct {
	mu      sync.RWMutex
	ladders map[string]*Ladder
}

// NewLadderSet creates a new LadderSet.
func NewLadderSet() *LadderSet {
	return &LadderSet{
		ladders: make(map[string]*Ladder),
	}
}

// GetOrCreate returns the ladder for the given symbol, creating one if it
// doesn't already exist.
func (ls *LadderSet) GetOrCreate(symbol string) *Ladder {
	ls.mu.RLock()
	ladder, ok := ls.ladders[symbol]
	ls.mu.RUnlock()
	if ok {
		return ladder
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	// Double-check after acquiring write lock.
	if ladder, ok = ls.ladders[symbol]; ok {
		return ladder
	}
	ladder = NewLadder()
	ls.ladders[symbol] = ladder
	return ladder
}

// Symbols returns the symbols with a ladder, sorted for deterministic
// sweep order.
func (ls *LadderSet) Symbols() []string {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	symbols := make([]string, 0, len(ls.ladders))
	for s := range ls.ladders {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
