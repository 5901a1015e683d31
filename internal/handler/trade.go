package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/service"
)

// TradeHandler handles HTTP requests for trade endpoints.
type TradeHandler struct {
	tradeSvc *service.TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeSvc *service.TradeService) *TradeHandler {
	return &TradeHandler{tradeSvc: tradeSvc}
}

// tradeResponse is the JSON shape of a trade.
type tradeResponse struct {
	TradeID    string          `json:"trade_id"`
	OrderID    string          `json:"order_id"`
	Symbol     string          `json:"symbol"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	ExecutedAt string          `json:"executed_at"`
}

func buildTradeResponse(t domain.Trade) tradeResponse {
	return tradeResponse{
		TradeID:    t.TradeID,
		OrderID:    t.OrderID,
		Symbol:     t.Symbol,
		Quantity:   t.Quantity,
		Price:      t.Price,
		ExecutedAt: t.ExecutedAt.UTC().Format(timeLayout),
	}
}

func buildTradeResponses(trades []domain.Trade) []tradeResponse {
	result := make([]tradeResponse, len(trades))
	for i, t := range trades {
		result[i] = buildTradeResponse(t)
	}
	return result
}

// ListTrades handles GET /trades with an optional ?symbol= filter.
func (h *TradeHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	trades := h.tradeSvc.List(symbol)
	WriteJSON(w, http.StatusOK, buildTradeResponses(trades))
}

// GetTrade handles GET /trades/{trade_id}.
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "trade_id")

	trade, err := h.tradeSvc.Get(tradeID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildTradeResponse(trade))
}
