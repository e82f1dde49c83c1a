package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
)

// WatchConfig configures the inbox watcher. Root must be the local directory
// backing StorageName, so a discovered file's path relative to Root is its
// storage path.
type WatchConfig struct {
	Root        string
	StorageName string
	OwnerID     uuid.UUID
	InitialScan bool
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// Watcher submits receipt files dropped into a local inbox directory.
type Watcher struct {
	logger *slog.Logger
	svc    *Service
	cfg    WatchConfig
}

func NewWatcher(logger *slog.Logger, svc *Service, cfg WatchConfig) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{logger: logger, svc: svc, cfg: cfg}
}

// Run watches the inbox until ctx is canceled. Submits are best-effort: a
// failed submit is logged and the file stays in place for a later retry.
func (w *Watcher) Run(ctx context.Context) error {
	if w.cfg.Root == "" {
		return errors.New("watch root not configured")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// add the root and its subdirectories; emit existing files on initial scan
	err = filepath.WalkDir(w.cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		if w.cfg.InitialScan && w.allowed(path) {
			w.submit(ctx, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending = map[string]struct{}{}
	)
	// flush runs on the debounce timer goroutine, so pending is locked
	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
			delete(pending, p)
		}
		mu.Unlock()
		for _, p := range paths {
			w.submit(ctx, p)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// a new subdirectory needs its own watch; non-dirs fail harmlessly
				_ = fsw.Add(ev.Name)
			}
			if !w.allowed(ev.Name) || !ev.Op.Has(fsnotify.Create|fsnotify.Write|fsnotify.Rename) {
				continue
			}
			mu.Lock()
			pending[ev.Name] = struct{}{}
			mu.Unlock()
			if w.cfg.Debounce <= 0 {
				flush()
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.cfg.Debounce, flush)
		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher.error", "error", werr)
		}
	}
}

func (w *Watcher) allowed(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

func (w *Watcher) submit(ctx context.Context, path string) {
	rel, err := filepath.Rel(w.cfg.Root, path)
	if err != nil {
		w.logger.Warn("watcher.relpath_failed", "path", path, "error", err)
		return
	}
	job, err := w.svc.Submit(ctx, w.cfg.OwnerID, w.cfg.StorageName, filepath.ToSlash(rel))
	if err != nil {
		w.logger.Error("watcher.submit_failed", "path", path, "error", err)
		return
	}
	w.logger.Info("watcher.submitted", "path", path, "job_id", job.ID)
}
