package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/splitsphere/backend/internal/api"
	"github.com/splitsphere/backend/internal/api/handler"
	"github.com/splitsphere/backend/internal/auth"
	"github.com/splitsphere/backend/internal/config"
	"github.com/splitsphere/backend/internal/metrics"
	"github.com/splitsphere/backend/internal/service"
	"github.com/splitsphere/backend/internal/storage/sqlite"
	"github.com/splitsphere/backend/pkg/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics("splitsphere")
	if err := httpMetrics.Register(registry); err != nil {
		slog.Error("Failed to register metrics", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	handlers := api.Handlers{
		Auth:        handler.NewAuthHandler(service.NewAuthService(authenticator, jwtManager)),
		Group:       handler.NewGroupHandler(service.NewGroupService(store)),
		Expense:     handler.NewExpenseHandler(service.NewExpenseService(store)),
		Settlement:  handler.NewSettlementHandler(service.NewSettlementService(store)),
		Balance:     handler.NewBalanceHandler(service.NewBalanceService(store)),
		Transaction: handler.NewTransactionHandler(service.NewTransactionService(store)),
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           api.NewRouter(handlers, jwtManager, httpMetrics, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
