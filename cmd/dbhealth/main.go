package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/carbux/fuel-receipts/internal/common"
	"github.com/carbux/fuel-receipts/internal/repository"
)

// dbhealth opens the configured database, pings it and prints a count of
// import jobs. Useful as a deploy smoke check.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, time.Second, logger); err != nil {
		logger.Error("database health: FAIL", "error", err)
		os.Exit(1)
	}
	logger.Info("database health: OK")

	n, err := entc.ImportJob.Query().Count(ctx)
	if err != nil {
		logger.Error("counting import jobs failed", "error", err)
		os.Exit(1)
	}
	logger.Info("import jobs", "count", n)
}
