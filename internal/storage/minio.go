package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds object-store connection settings. Each storage name is a
// bucket; objects are staged into ScratchDir before OCR reads them.
type MinioConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	ScratchDir string
}

// MinioLocator resolves (bucket, object) pairs by downloading the object to a
// local scratch path.
type MinioLocator struct {
	client     *minio.Client
	scratchDir string
	logger     *slog.Logger
}

func NewMinioLocator(cfg MinioConfig, logger *slog.Logger) (*MinioLocator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	scratch := cfg.ScratchDir
	if scratch == "" {
		scratch = os.TempDir()
	}
	return &MinioLocator{client: client, scratchDir: scratch, logger: logger}, nil
}

func (l *MinioLocator) Locate(ctx context.Context, storageName, path string) (string, error) {
	exists, err := l.client.BucketExists(ctx, storageName)
	if err != nil {
		return "", fmt.Errorf("bucket check %s: %w", storageName, err)
	}
	if !exists {
		return "", fmt.Errorf("unknown storage name %q", storageName)
	}

	local := filepath.Join(l.scratchDir, storageName, strings.ReplaceAll(path, "/", "_"))
	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}
	if err := l.client.FGetObject(ctx, storageName, path, local, minio.GetObjectOptions{}); err != nil {
		l.logger.Error("storage.locate.fetch_failed", "bucket", storageName, "object", path, "error", err)
		return "", fmt.Errorf("fetch %s/%s: %w", storageName, path, err)
	}
	l.logger.Debug("storage.locate.fetched", "bucket", storageName, "object", path, "local", local)
	return local, nil
}
