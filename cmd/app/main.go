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

	"github.com/mangapulse/economy-engine/internal/config"
	"github.com/mangapulse/economy-engine/internal/database"
	"github.com/mangapulse/economy-engine/internal/database/postgres"
	"github.com/mangapulse/economy-engine/internal/droprate"
	"github.com/mangapulse/economy-engine/internal/gacha"
	"github.com/mangapulse/economy-engine/internal/handler"
	"github.com/mangapulse/economy-engine/internal/logger"
	"github.com/mangapulse/economy-engine/internal/market"
	"github.com/mangapulse/economy-engine/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "economy-engine", cfg.Version, cfg.Environment, false)
	logger.Init(logCfg)

	handler.InitValidator()

	pool, err := database.NewPool(context.Background(), cfg.DBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	dropRateRepo := postgres.NewDropRateRepository(pool)
	gachaRepo := postgres.NewGachaRepository(pool)
	marketRepo := postgres.NewMarketRepository(pool)

	dropRateService := droprate.NewService(dropRateRepo)
	gachaService := gacha.NewService(gachaRepo)
	marketService := market.NewService(marketRepo)

	srv := server.NewServer(cfg.Port, cfg.AdminAPIKey, nil, pool, dropRateService, gachaService, marketService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
