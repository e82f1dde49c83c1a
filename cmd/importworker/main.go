package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/common"
	"github.com/carbux/fuel-receipts/internal/ocr"
	"github.com/carbux/fuel-receipts/internal/pipeline"
	"github.com/carbux/fuel-receipts/internal/repository"
	"github.com/carbux/fuel-receipts/internal/storage"
)

// importworker consumes the broker-backed import-jobs queue. It is only
// needed when QUEUE_MODE=rabbitmq; the inproc mode processes inside the
// server binary.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Queue.Mode != "rabbitmq" {
		logger.Error("importworker requires QUEUE_MODE=rabbitmq")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewImportJobRepository(entc, logger)

	composite := storage.NewComposite()
	fsLocator := storage.NewFSLocator(cfg.Storage.FSRoots, logger)
	for name := range cfg.Storage.FSRoots {
		composite.Register(name, fsLocator)
	}
	if cfg.Storage.MinioEndpoint != "" {
		minioLocator, err := storage.NewMinioLocator(storage.MinioConfig{
			Endpoint:   cfg.Storage.MinioEndpoint,
			AccessKey:  cfg.Storage.MinioAccessKey,
			SecretKey:  cfg.Storage.MinioSecretKey,
			UseSSL:     cfg.Storage.MinioUseSSL,
			ScratchDir: cfg.Storage.ScratchDir,
		}, logger)
		if err != nil {
			logger.Error("minio setup failed", "error", err)
			os.Exit(1)
		}
		for _, bucket := range cfg.Storage.MinioBuckets {
			composite.Register(bucket, minioLocator)
		}
	}

	extractor := ocr.NewClient(ocr.Config{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, nil, logger)

	processor := pipeline.NewProcessor(logger, jobsRepo, composite, extractor)

	rabbit, err := async.NewRabbit(async.RabbitConfig{
		URL:         cfg.Queue.URL,
		QueueName:   cfg.Queue.Name,
		DLQName:     cfg.Queue.DLQName,
		Workers:     cfg.Queue.Workers,
		MaxAttempts: cfg.Queue.MaxAttempts,
		JobTimeout:  cfg.Queue.JobTimeout,
	}, logger)
	if err != nil {
		logger.Error("rabbitmq setup failed", "error", err)
		os.Exit(1)
	}

	logger.Info("importworker consuming", "queue", cfg.Queue.Name, "workers", cfg.Queue.Workers)
	if err := rabbit.Consume(ctx, processor); err != nil && ctx.Err() == nil {
		logger.Error("consume failed", "error", err)
		os.Exit(1)
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	rabbit.Shutdown(drainCtx)
	logger.Info("stopped")
}
