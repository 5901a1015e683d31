package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	orderSvc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// placeOrderRequest is the JSON request body for POST /orders.
type placeOrderRequest struct {
	Symbol   string           `json:"symbol"`
	Side     string           `json:"side"`
	Style    string           `json:"style"`
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// orderResponse is the JSON shape of an order. Price fields render as
// decimal strings; nullable fields use pointers.
type orderResponse struct {
	OrderID     string           `json:"order_id"`
	Symbol      string           `json:"symbol"`
	Side        string           `json:"side"`
	Style       string           `json:"style"`
	Quantity    int64            `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"created_at"`
	CancelledAt *string          `json:"cancelled_at"`
}

const timeLayout = "2006-01-02T15:04:05Z"

func buildOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		OrderID:   o.OrderID,
		Symbol:    o.Symbol,
		Side:      string(o.Side),
		Style:     string(o.Style),
		Quantity:  o.Quantity,
		Price:     o.LimitPrice,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(timeLayout),
	}
	if o.CancelledAt != nil {
		s := o.CancelledAt.UTC().Format(timeLayout)
		resp.CancelledAt = &s
	}
	return resp
}

// PlaceOrder handles POST /orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	order, err := h.orderSvc.PlaceOrder(service.PlaceOrderRequest{
		Symbol:   req.Symbol,
		Side:     domain.OrderSide(req.Side),
		Style:    domain.OrderStyle(req.Style),
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, buildOrderResponse(order))
}

// GetOrder handles GET /orders/{order_id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orderSvc.GetOrder(orderID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

// CancelOrder handles DELETE /orders/{order_id}.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orderSvc.CancelOrder(orderID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildOrderResponse(order))
}

// Sweep handles POST /orders/sweep: it executes every resting limit order
// that is marketable against the catalog's reference price.
func (h *OrderHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	trades, err := h.orderSvc.Sweep()
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"executed_count": len(trades),
		"trades":         buildTradeResponses(trades),
	})
}
