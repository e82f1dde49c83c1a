package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownStorage marks a storage name no backend is registered for.
var ErrUnknownStorage = errors.New("unknown storage name")

// Locator resolves an opaque (storage name, path) pair to a readable local
// path. It fails when the storage name is unrecognized or the file is
// unreadable; callers treat those failures as infrastructure errors.
type Locator interface {
	Locate(ctx context.Context, storageName, path string) (string, error)
}

// FSLocator maps storage names to local root directories.
type FSLocator struct {
	roots  map[string]string
	logger *slog.Logger
}

func NewFSLocator(roots map[string]string, logger *slog.Logger) *FSLocator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSLocator{roots: roots, logger: logger}
}

func (l *FSLocator) Locate(_ context.Context, storageName, path string) (string, error) {
	root, ok := l.roots[storageName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStorage, storageName)
	}
	abs := filepath.Join(root, filepath.Clean("/"+path))
	if !strings.HasPrefix(abs, filepath.Clean(root)+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		l.logger.Error("storage.locate.stat_failed", "storage", storageName, "path", path, "error", err)
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", abs)
	}
	return abs, nil
}

// Composite dispatches by storage name to registered backends.
type Composite struct {
	backends map[string]Locator
}

func NewComposite() *Composite {
	return &Composite{backends: map[string]Locator{}}
}

// Register binds a storage name to a backend. The backend still receives the
// storage name, so one backend may serve several names.
func (c *Composite) Register(storageName string, backend Locator) {
	c.backends[storageName] = backend
}

func (c *Composite) Locate(ctx context.Context, storageName, path string) (string, error) {
	backend, ok := c.backends[storageName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStorage, storageName)
	}
	return backend.Locate(ctx, storageName, path)
}
