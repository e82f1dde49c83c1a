package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/carbux/fuel-receipts/gen/proto/fuelreceipts/v1"
	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/common"
	"github.com/carbux/fuel-receipts/internal/export"
	"github.com/carbux/fuel-receipts/internal/finalize"
	"github.com/carbux/fuel-receipts/internal/ingest"
	"github.com/carbux/fuel-receipts/internal/ocr"
	"github.com/carbux/fuel-receipts/internal/pipeline"
	"github.com/carbux/fuel-receipts/internal/repository"
	"github.com/carbux/fuel-receipts/internal/server"
	"github.com/carbux/fuel-receipts/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
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

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewImportJobRepository(entc, logger)
	stationsRepo := repository.NewStationRepository(entc, logger)
	receiptsRepo := repository.NewReceiptRepository(entc, logger)

	locator, err := buildLocator(cfg, logger)
	if err != nil {
		logger.Error("storage setup failed", "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewClient(ocr.Config{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, nil, logger)

	processor := pipeline.NewProcessor(logger, jobsRepo, locator, extractor)

	var queue async.Queue
	switch cfg.Queue.Mode {
	case "rabbitmq":
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
		// consumption runs in cmd/importworker; this process only publishes
		queue = rabbit
	default:
		queue = async.NewProcessorQueue(processor, logger,
			async.WithWorkers(cfg.Queue.Workers),
			async.WithMaxAttempts(cfg.Queue.MaxAttempts),
			async.WithProcessTimeout(cfg.Queue.JobTimeout),
		)
	}

	ingestSvc := ingest.NewService(logger, jobsRepo, locator, queue)
	finalizeSvc := finalize.NewService(logger, jobsRepo, stationsRepo, receiptsRepo)
	exportSvc := export.NewService(receiptsRepo, stationsRepo, logger)

	if cfg.Watcher.Enabled {
		startWatcher(ctx, cfg, ingestSvc, logger)
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewFuelReceiptsService(ingestSvc, finalizeSvc, exportSvc, jobsRepo, logger)
	v1.RegisterFuelReceiptsServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr, "queue_mode", cfg.Queue.Mode)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}

func buildLocator(cfg *common.Config, logger *slog.Logger) (storage.Locator, error) {
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
			return nil, err
		}
		for _, bucket := range cfg.Storage.MinioBuckets {
			composite.Register(bucket, minioLocator)
		}
	}
	return composite, nil
}

func startWatcher(ctx context.Context, cfg *common.Config, svc *ingest.Service, logger *slog.Logger) {
	ownerID, err := uuid.Parse(cfg.Watcher.OwnerID)
	if err != nil {
		logger.Error("watcher disabled: WATCH_OWNER_ID must be a UUID", "error", err)
		return
	}
	root, ok := cfg.Storage.FSRoots[cfg.Watcher.StorageName]
	if !ok {
		logger.Error("watcher disabled: storage name has no FS root", "storage", cfg.Watcher.StorageName)
		return
	}
	w := ingest.NewWatcher(logger, svc, ingest.WatchConfig{
		Root:        root,
		StorageName: cfg.Watcher.StorageName,
		OwnerID:     ownerID,
		InitialScan: true,
		Debounce:    cfg.Watcher.Debounce,
	})
	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("watcher stopped", "error", err)
		}
	}()
}
