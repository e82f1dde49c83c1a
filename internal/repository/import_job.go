package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/gen/ent"
	"github.com/carbux/fuel-receipts/gen/ent/importjob"
	"github.com/carbux/fuel-receipts/internal/entity"
)

// CreateImportJobRequest wraps the intake parameters for a new QUEUED job.
type CreateImportJobRequest struct {
	OwnerID     uuid.UUID
	StorageName string
	StoragePath string
	Filename    string
	MIMEType    string
	FileSize    int64
	Checksum    []byte
}

// ImportJobRepository persists import jobs. Status transitions take the
// expected pre-state and match it in the WHERE clause, so concurrent workers
// lose the race benignly (ErrStaleStatus) instead of clobbering each other.
type ImportJobRepository interface {
	Create(ctx context.Context, req CreateImportJobRequest) (*entity.ImportJob, error)
	// Get is system-scoped: the background worker is not an owner.
	Get(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.ImportJob, error)
	List(ctx context.Context, ownerID uuid.UUID, status *constants.JobStatus, limit int) ([]*entity.ImportJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, from constants.JobStatus) error
	MarkNeedsReview(ctx context.Context, id uuid.UUID, result *entity.JobResult) error
	MarkDuplicate(ctx context.Context, id uuid.UUID, result *entity.JobResult) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	MarkProcessed(ctx context.Context, id uuid.UUID, result *entity.JobResult) error
	Requeue(ctx context.Context, ownerID, id uuid.UUID) error
	// FindLatestByOwnerAndChecksum returns the most recent non-FAILED job for
	// the owner with the same checksum, excluding the given id; nil when none.
	FindLatestByOwnerAndChecksum(ctx context.Context, ownerID uuid.UUID, checksum []byte, exclude uuid.UUID) (*entity.ImportJob, error)
}

type importJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, log *slog.Logger) ImportJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &importJobRepo{ent: entc, log: log}
}

func (r *importJobRepo) Create(ctx context.Context, req CreateImportJobRequest) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.
		Create().
		SetOwnerID(req.OwnerID).
		SetStatus(string(constants.JobStatusQueued)).
		SetStorageName(req.StorageName).
		SetStoragePath(req.StoragePath).
		SetFilename(req.Filename).
		SetMimeType(req.MIMEType).
		SetFileSize(req.FileSize).
		SetChecksum(req.Checksum).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job create failed", "owner_id", req.OwnerID, "filename", req.Filename, "err", err)
		return nil, err
	}
	r.log.Info("import_job created", "job_id", row.ID, "owner_id", req.OwnerID, "filename", req.Filename)
	return toImportJob(row), nil
}

func (r *importJobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepo) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Query().
		Where(importjob.ID(id), importjob.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toImportJob(row), nil
}

func (r *importJobRepo) List(ctx context.Context, ownerID uuid.UUID, status *constants.JobStatus, limit int) ([]*entity.ImportJob, error) {
	q := r.ent.ImportJob.Query().Where(importjob.OwnerID(ownerID))
	if status != nil {
		q = q.Where(importjob.StatusEQ(string(*status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(ent.Desc(importjob.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.log.Error("import_job list failed", "owner_id", ownerID, "err", err)
		return nil, err
	}
	out := make([]*entity.ImportJob, len(rows))
	for i, row := range rows {
		out[i] = toImportJob(row)
	}
	return out, nil
}

// MarkProcessing transitions into PROCESSING: sets started_at, clears prior
// terminal timestamps and result.
func (r *importJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID, from constants.JobStatus) error {
	n, err := r.ent.ImportJob.Update().
		Where(importjob.ID(id), importjob.StatusEQ(string(from))).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now().UTC()).
		ClearCompletedAt().
		ClearFailedAt().
		ClearResult().
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark(PROCESSING) failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *importJobRepo) MarkNeedsReview(ctx context.Context, id uuid.UUID, result *entity.JobResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	n, err := r.ent.ImportJob.Update().
		Where(importjob.ID(id), importjob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusNeedsReview)).
		SetResult(raw).
		ClearCompletedAt().
		ClearFailedAt().
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark(NEEDS_REVIEW) failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	r.log.Info("import_job needs review", "job_id", id)
	return nil
}

func (r *importJobRepo) MarkDuplicate(ctx context.Context, id uuid.UUID, result *entity.JobResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	n, err := r.ent.ImportJob.Update().
		Where(importjob.ID(id), importjob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusDuplicate)).
		SetResult(raw).
		SetCompletedAt(time.Now().UTC()).
		ClearFailedAt().
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark(DUPLICATE) failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	r.log.Info("import_job marked duplicate", "job_id", id)
	return nil
}

func (r *importJobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	raw, err := json.Marshal(&entity.JobResult{FailureMessage: message})
	if err != nil {
		return err
	}
	n, err := r.ent.ImportJob.Update().
		Where(importjob.ID(id), importjob.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusFailed)).
		SetResult(raw).
		SetFailedAt(time.Now().UTC()).
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark(FAILED) failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	r.log.Warn("import_job failed", "job_id", id, "error", message)
	return nil
}

func (r *importJobRepo) MarkProcessed(ctx context.Context, id uuid.UUID, result *entity.JobResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	n, err := r.ent.ImportJob.Update().
		Where(importjob.ID(id), importjob.StatusEQ(string(constants.JobStatusNeedsReview))).
		SetStatus(string(constants.JobStatusProcessed)).
		SetResult(raw).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job mark(PROCESSED) failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	r.log.Info("import_job processed", "job_id", id)
	return nil
}

// Requeue resets a FAILED job to QUEUED for another attempt, clearing
// timestamps and payload. QUEUED jobs are accepted too, so a job whose
// publish never reached the queue can be pushed again. Owner-scoped:
// requeue is an owner/operator action.
func (r *importJobRepo) Requeue(ctx context.Context, ownerID, id uuid.UUID) error {
	n, err := r.ent.ImportJob.Update().
		Where(
			importjob.ID(id),
			importjob.OwnerID(ownerID),
			importjob.StatusIn(
				string(constants.JobStatusFailed),
				string(constants.JobStatusQueued),
			),
		).
		SetStatus(string(constants.JobStatusQueued)).
		ClearStartedAt().
		ClearCompletedAt().
		ClearFailedAt().
		ClearResult().
		Save(ctx)
	if err != nil {
		r.log.Error("import_job requeue failed", "job_id", id, "err", err)
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	r.log.Info("import_job requeued", "job_id", id)
	return nil
}

func (r *importJobRepo) FindLatestByOwnerAndChecksum(ctx context.Context, ownerID uuid.UUID, checksum []byte, exclude uuid.UUID) (*entity.ImportJob, error) {
	row, err := r.ent.ImportJob.Query().
		Where(
			importjob.OwnerID(ownerID),
			importjob.ChecksumEQ(checksum),
			importjob.StatusNEQ(string(constants.JobStatusFailed)),
			importjob.IDNEQ(exclude),
		).
		Order(ent.Desc(importjob.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toImportJob(row), nil
}

func toImportJob(row *ent.ImportJob) *entity.ImportJob {
	job := &entity.ImportJob{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Status:      constants.JobStatus(row.Status),
		StorageName: row.StorageName,
		StoragePath: row.StoragePath,
		Filename:    row.Filename,
		MIMEType:    row.MimeType,
		FileSize:    row.FileSize,
		Checksum:    row.Checksum,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		FailedAt:    row.FailedAt,
		RetainUntil: row.RetainUntil,
	}
	if len(row.Result) > 0 {
		var res entity.JobResult
		if err := json.Unmarshal(row.Result, &res); err == nil {
			job.Result = &res
		}
	}
	return job
}
