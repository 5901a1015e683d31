package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/efreitasn/minidesk/internal/config"
	"github.com/efreitasn/minidesk/internal/engine"
	"github.com/efreitasn/minidesk/internal/handler"
	"github.com/efreitasn/minidesk/internal/service"
	"github.com/efreitasn/minidesk/internal/store"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil {
			os.Exit(1)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Instantiate ledgers. The instrument catalog is seeded with the
	// tradeable universe at startup; everything else starts empty.
	catalog := store.NewInstrumentStore(store.SeedInstruments())
	orderStore := store.NewOrderStore()
	tradeStore := store.NewTradeStore()
	positionStore := store.NewPositionStore()
	logger.Info("catalog seeded", slog.Int("instruments", catalog.Count()))

	// Engine.
	ladders := engine.NewLadderSet()
	executor := engine.NewExecutor(catalog, orderStore, tradeStore, positionStore, ladders)

	// Services.
	instrumentSvc := service.NewInstrumentService(catalog)
	orderSvc := service.NewOrderService(executor, orderStore)
	tradeSvc := service.NewTradeService(tradeStore)
	portfolioSvc := service.NewPortfolioService(positionStore, catalog)
	healthSvc := service.NewHealthService(catalog, orderStore, tradeStore, positionStore)

	// Router.
	router := handler.NewRouter(instrumentSvc, orderSvc, tradeSvc, portfolioSvc, healthSvc, logger)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
