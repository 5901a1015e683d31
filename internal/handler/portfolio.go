package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio endpoints.
type PortfolioHandler struct {
	portfolioSvc *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioSvc *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioSvc: portfolioSvc}
}

// positionResponse is the JSON shape of a valued position. current_value
// is recomputed from the catalog's latest price at read time.
type positionResponse struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	CurrentValue decimal.Decimal `json:"current_value"`
}

// summaryResponse is the JSON shape of the portfolio summary.
type summaryResponse struct {
	Positions     []positionResponse `json:"positions"`
	TotalValue    decimal.Decimal    `json:"total_value"`
	TotalCost     decimal.Decimal    `json:"total_cost"`
	UnrealizedPnL decimal.Decimal    `json:"unrealized_pnl"`
	PositionCount int                `json:"position_count"`
}

func buildPositionResponse(v service.PositionView) positionResponse {
	return positionResponse{
		Symbol:       v.Symbol,
		Quantity:     v.Quantity,
		AveragePrice: v.AveragePrice,
		CurrentValue: v.CurrentValue,
	}
}

func buildPositionResponses(views []service.PositionView) []positionResponse {
	result := make([]positionResponse, len(views))
	for i, v := range views {
		result[i] = buildPositionResponse(v)
	}
	return result
}

// ListPortfolio handles GET /portfolio.
func (h *PortfolioHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, buildPositionResponses(h.portfolioSvc.List()))
}

// GetPosition handles GET /portfolio/{symbol}.
func (h *PortfolioHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	view, err := h.portfolioSvc.Get(symbol)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildPositionResponse(view))
}

// GetSummary handles GET /portfolio/summary.
func (h *PortfolioHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := h.portfolioSvc.Summary()
	WriteJSON(w, http.StatusOK, summaryResponse{
		Positions:     buildPositionResponses(s.Positions),
		TotalValue:    s.TotalValue,
		TotalCost:     s.TotalCost,
		UnrealizedPnL: s.UnrealizedPnL,
		PositionCount: s.PositionCount,
	})
}
