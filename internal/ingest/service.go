package ingest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/common"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/repository"
	"github.com/carbux/fuel-receipts/internal/storage"
)

// Service registers stored receipt files as QUEUED import jobs and hands them
// to the queue. The file must already sit in a configured storage backend;
// intake never moves bytes, only records and fingerprints them.
type Service struct {
	logger  *slog.Logger
	jobs    repository.ImportJobRepository
	locator storage.Locator
	queue   async.Queue
}

func NewService(
	logger *slog.Logger,
	jobs repository.ImportJobRepository,
	locator storage.Locator,
	queue async.Queue,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:  logger,
		jobs:    jobs,
		locator: locator,
		queue:   queue,
	}
}

// Submit validates the stored file, computes its checksum and creates the
// import job. The returned job is already enqueued for processing.
func (s *Service) Submit(ctx context.Context, ownerID uuid.UUID, storageName, storagePath string) (*entity.ImportJob, error) {
	filename := filepath.Base(storagePath)
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	localPath, err := s.locator.Locate(ctx, storageName, storagePath)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownStorage) {
			return nil, common.InvalidArgumentErrorf("unknown storage %q", storageName)
		}
		return nil, common.NotFoundError(fmt.Sprintf("stored file not found: %s/%s", storageName, storagePath))
	}

	checksum, size, err := checksumFile(localPath)
	if err != nil {
		return nil, common.WrapError(err, "checksum stored file")
	}

	job, err := s.jobs.Create(ctx, repository.CreateImportJobRequest{
		OwnerID:     ownerID,
		StorageName: storageName,
		StoragePath: storagePath,
		Filename:    filename,
		MIMEType:    constants.MIMEForPath(filename),
		FileSize:    size,
		Checksum:    checksum,
	})
	if err != nil {
		return nil, common.WrapError(err, "create import job")
	}

	if err := s.queue.Enqueue(ctx, async.ProcessImportJobMessage{
		ImportJobID: job.ID,
		Attempt:     1,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		// the job stays QUEUED; an operator requeue pushes it again
		s.logger.Error("ingest.enqueue_failed", "job_id", job.ID, "error", err)
		return job, nil
	}

	s.logger.Info("ingest.submitted",
		"job_id", job.ID,
		"owner_id", ownerID,
		"storage", storageName,
		"filename", filename,
		"size", size,
	)
	return job, nil
}

// Requeue resets a FAILED job to QUEUED and re-enqueues it. QUEUED jobs
// are accepted as well, covering jobs whose initial publish failed.
func (s *Service) Requeue(ctx context.Context, ownerID, jobID uuid.UUID) (*entity.ImportJob, error) {
	if err := s.jobs.Requeue(ctx, ownerID, jobID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, common.NotFoundError("import job not found")
		case errors.Is(err, repository.ErrStaleStatus):
			return nil, common.FailedPreconditionError("only FAILED or QUEUED import jobs can be requeued")
		default:
			return nil, err
		}
	}
	job, err := s.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.queue.Enqueue(ctx, async.ProcessImportJobMessage{
		ImportJobID: job.ID,
		Attempt:     1,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("ingest.requeue.enqueue_failed", "job_id", job.ID, "error", err)
	}
	s.logger.Info("ingest.requeued", "job_id", job.ID, "owner_id", ownerID)
	return job, nil
}

func checksumFile(path string) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), size, nil
}
