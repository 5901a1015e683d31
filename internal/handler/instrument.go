package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/efreitasn/minidesk/internal/domain"
	"github.com/efreitasn/minidesk/internal/service"
)

// InstrumentHandler handles HTTP requests for catalog endpoints.
type InstrumentHandler struct {
	instrumentSvc *service.InstrumentService
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(instrumentSvc *service.InstrumentService) *InstrumentHandler {
	return &InstrumentHandler{instrumentSvc: instrumentSvc}
}

// instrumentResponse is the JSON shape of a catalog instrument.
type instrumentResponse struct {
	Symbol          string          `json:"symbol"`
	Exchange        string          `json:"exchange"`
	Kind            string          `json:"kind"`
	LastTradedPrice decimal.Decimal `json:"last_traded_price"`
}

func buildInstrumentResponse(i domain.Instrument) instrumentResponse {
	return instrumentResponse{
		Symbol:          i.Symbol,
		Exchange:        i.Exchange,
		Kind:            string(i.Kind),
		LastTradedPrice: i.LastTradedPrice,
	}
}

// ListInstruments handles GET /instruments.
func (h *InstrumentHandler) ListInstruments(w http.ResponseWriter, r *http.Request) {
	instruments := h.instrumentSvc.List()
	result := make([]instrumentResponse, len(instruments))
	for i, inst := range instruments {
		result[i] = buildInstrumentResponse(inst)
	}
	WriteJSON(w, http.StatusOK, result)
}

// GetInstrument handles GET /instruments/{symbol}.
func (h *InstrumentHandler) GetInstrument(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	inst, err := h.instrumentSvc.Get(symbol)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, buildInstrumentResponse(inst))
}
