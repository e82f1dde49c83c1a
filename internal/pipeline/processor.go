package pipeline

import (
	"context"
	"log/slog"

	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/ocr"
	"github.com/carbux/fuel-receipts/internal/parser"
	"github.com/carbux/fuel-receipts/internal/repository"
	"github.com/carbux/fuel-receipts/internal/storage"
)

// maxErrorLen bounds the failure message stored on a FAILED job.
const maxErrorLen = 5000

// Processor runs the linear pipeline for one import job: locate file, OCR,
// parse, fingerprint, duplicate check, transition. It consumes at-least-once
// from the delivery layer and therefore tolerates redelivery.
type Processor struct {
	logger    *slog.Logger
	jobs      repository.ImportJobRepository
	locator   storage.Locator
	extractor ocr.Extractor
}

func NewProcessor(
	logger *slog.Logger,
	jobs repository.ImportJobRepository,
	locator storage.Locator,
	extractor ocr.Extractor,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		jobs:      jobs,
		locator:   locator,
		extractor: extractor,
	}
}

// Handle processes one delivery. Errors returned to the caller are the
// delivery layer's retry signal: retryable OCR and infrastructure errors
// propagate unchanged; permanent OCR errors are recorded on the job first and
// then returned tagged so the delivery layer acks instead of redelivering.
func (p *Processor) Handle(ctx context.Context, msg async.ProcessImportJobMessage) error {
	job, err := p.jobs.Get(ctx, msg.ImportJobID)
	if err != nil {
		if err == repository.ErrNotFound {
			// the job may have been deleted by its owner since enqueue
			p.logger.Warn("processor.job_missing", "job_id", msg.ImportJobID)
			return nil
		}
		return err
	}

	// idempotence guard: a repeat delivery for a job past PROCESSING is a no-op
	if !job.Status.Processable() {
		p.logger.Info("processor.skip_settled", "job_id", job.ID, "status", job.Status)
		return nil
	}

	if err := p.jobs.MarkProcessing(ctx, job.ID, job.Status); err != nil {
		if err == repository.ErrStaleStatus {
			// another worker won the race; its outcome stands
			p.logger.Info("processor.skip_stale", "job_id", job.ID)
			return nil
		}
		return err
	}

	path, err := p.locator.Locate(ctx, job.StorageName, job.StoragePath)
	if err != nil {
		p.logger.Error("processor.locate.failed", "job_id", job.ID, "storage", job.StorageName, "error", err)
		return err
	}

	extraction, err := p.extractor.Extract(ctx, path, job.MIMEType)
	if err != nil {
		if ocr.IsPermanent(err) {
			p.logger.Error("processor.ocr.permanent", "job_id", job.ID, "error", err)
			if mErr := p.jobs.MarkFailed(ctx, job.ID, truncate(err.Error(), maxErrorLen)); mErr != nil {
				return mErr
			}
			return err
		}
		// retryable: leave the job in PROCESSING and let the delivery layer redeliver
		p.logger.Warn("processor.ocr.retryable", "job_id", job.ID, "error", err)
		return err
	}

	draft := parser.Parse(extraction)
	fingerprint := parser.Fingerprint(draft)

	p.logger.Debug("processor.parsed",
		"job_id", job.ID,
		"provider", extraction.Provider,
		"lines", len(draft.Lines),
		"issues", len(draft.Issues),
	)

	prior, err := p.findDuplicate(ctx, job)
	if err != nil {
		return err
	}
	if prior != nil {
		p.logger.Info("processor.duplicate", "job_id", job.ID, "duplicate_of", prior.ID)
		return p.jobs.MarkDuplicate(ctx, job.ID, &entity.JobResult{
			ParsedDraft:            draft,
			Fingerprint:            fingerprint,
			DuplicateOfImportJobID: &prior.ID,
		})
	}

	result := &entity.JobResult{
		ParsedDraft:     draft,
		CreationPayload: draft.BuildCreationPayload(),
		Fingerprint:     fingerprint,
	}
	if err := p.jobs.MarkNeedsReview(ctx, job.ID, result); err != nil {
		return err
	}
	p.logger.Info("processor.needs_review",
		"job_id", job.ID,
		"issues", len(draft.Issues),
		"auto_finalizable", result.CreationPayload != nil,
	)
	return nil
}

// Exhausted converts a spent retry budget into a terminal failure.
func (p *Processor) Exhausted(ctx context.Context, msg async.ProcessImportJobMessage, cause error) {
	msgText := truncate("retries exhausted: "+cause.Error(), maxErrorLen)
	if err := p.jobs.MarkFailed(ctx, msg.ImportJobID, msgText); err != nil {
		p.logger.Error("processor.exhaust.mark_failed", "job_id", msg.ImportJobID, "error", err)
	}
}

// findDuplicate looks for an earlier live job with the same owner and file
// checksum. FAILED jobs do not count, so re-uploading after a failure gets a
// fresh attempt.
func (p *Processor) findDuplicate(ctx context.Context, job *entity.ImportJob) (*entity.ImportJob, error) {
	prior, err := p.jobs.FindLatestByOwnerAndChecksum(ctx, job.OwnerID, job.Checksum, job.ID)
	if err != nil {
		return nil, err
	}
	return prior, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

var _ async.Handler = (*Processor)(nil)
