package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/efreitasn/minidesk/internal/service"
)

// NewRouter creates a chi router with all routes registered, request
// logging, CORS, and Content-Type validation middleware.
func NewRouter(
	instrumentSvc *service.InstrumentService,
	orderSvc *service.OrderService,
	tradeSvc *service.TradeService,
	portfolioSvc *service.PortfolioService,
	healthSvc *service.HealthService,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(cors.AllowAll().Handler)
	r.Use(contentTypeJSON)

	// Create handlers.
	instrumentH := NewInstrumentHandler(instrumentSvc)
	orderH := NewOrderHandler(orderSvc)
	tradeH := NewTradeHandler(tradeSvc)
	portfolioH := NewPortfolioHandler(portfolioSvc)

	// Health check with ledger counts.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		snap := healthSvc.Snapshot()
		WriteJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"counts": map[string]int{
				"instruments": snap.Instruments,
				"orders":      snap.Orders,
				"trades":      snap.Trades,
				"positions":   snap.Positions,
			},
		})
	})

	// Instrument routes.
	r.Get("/instruments", instrumentH.ListInstruments)
	r.Get("/instruments/{symbol}", instrumentH.GetInstrument)

	// Order routes.
	r.Post("/orders", orderH.PlaceOrder)
	r.Post("/orders/sweep", orderH.Sweep)
	r.Get("/orders/{order_id}", orderH.GetOrder)
	r.Delete("/orders/{order_id}", orderH.CancelOrder)

	// Trade routes.
	r.Get("/trades", tradeH.ListTrades)
	r.Get("/trades/{trade_id}", tradeH.GetTrade)

	// Portfolio routes.
	r.Get("/portfolio", portfolioH.ListPortfolio)
	r.Get("/portfolio/summary", portfolioH.GetSummary)
	r.Get("/portfolio/{symbol}", portfolioH.GetPosition)

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON is middleware that validates Content-Type for POST, PUT,
// and PATCH requests carrying a body. If the Content-Type header doesn't
// start with "application/json", it returns 400 Bad Request before the
// handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) && r.ContentLength > 0 {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
