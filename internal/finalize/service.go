package finalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/common"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/parser"
	"github.com/carbux/fuel-receipts/internal/repository"
)

// Service turns a reviewed import job into a receipt. Finalize is the only
// path that writes receipts; it runs exactly once per job because the closing
// status transition is optimistic.
type Service struct {
	logger   *slog.Logger
	jobs     repository.ImportJobRepository
	stations repository.StationRepository
	receipts repository.ReceiptRepository
}

func NewService(
	logger *slog.Logger,
	jobs repository.ImportJobRepository,
	stations repository.StationRepository,
	receipts repository.ReceiptRepository,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:   logger,
		jobs:     jobs,
		stations: stations,
		receipts: receipts,
	}
}

// Finalize creates the receipt for a NEEDS_REVIEW job. When override is
// non-nil it replaces the parsed payload entirely after schema validation.
// Without an override the job's own creation payload must exist; if parsing
// left gaps the error names the missing fields and nothing is written.
func (s *Service) Finalize(ctx context.Context, ownerID, jobID uuid.UUID, override []byte) (*entity.Receipt, error) {
	job, err := s.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, common.NotFoundError("import job not found")
		}
		return nil, err
	}
	if job.Status != constants.JobStatusNeedsReview {
		return nil, common.FailedPreconditionError(
			fmt.Sprintf("import job is %s, only NEEDS_REVIEW jobs can be finalized", job.Status))
	}

	payload, err := s.resolvePayload(job, override)
	if err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	station, err := s.ensureStation(ctx, ownerID, entity.StationIdentity{
		Name:       payload.StationName,
		StreetName: payload.StationStreetName,
		PostalCode: payload.StationPostalCode,
		City:       payload.StationCity,
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entity.ReceiptLine, 0, len(payload.Lines))
	for _, ln := range payload.Lines {
		lines = append(lines, entity.ReceiptLine{
			FuelType:            ln.FuelType,
			QuantityMilliLiters: ln.QuantityMilliLiters,
			UnitPriceDeciCents:  ln.UnitPriceDeciCents,
			VATRatePercent:      ln.VATRatePercent,
			LineTotalCents:      ln.LineTotalCents,
		})
	}
	receipt, err := s.receipts.Create(ctx, &repository.CreateReceiptRequest{
		OwnerID:        ownerID,
		StationID:      station.ID,
		IssuedAt:       payload.IssuedAt,
		TotalCents:     payload.TotalCents,
		VATAmountCents: payload.VATAmountCents,
		Lines:          lines,
	})
	if err != nil {
		return nil, common.WrapError(err, "create receipt")
	}

	result := &entity.JobResult{
		CreationPayload:    payload,
		FinalizedReceiptID: &receipt.ID,
	}
	if job.Result != nil {
		result.ParsedDraft = job.Result.ParsedDraft
		result.Fingerprint = job.Result.Fingerprint
	}
	if err := s.jobs.MarkProcessed(ctx, job.ID, result); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, common.FailedPreconditionError("import job was finalized concurrently")
		}
		return nil, err
	}

	s.logger.Info("finalize.done",
		"job_id", job.ID,
		"receipt_id", receipt.ID,
		"station_id", station.ID,
		"overridden", override != nil,
	)
	return receipt, nil
}

func (s *Service) resolvePayload(job *entity.ImportJob, override []byte) (*parser.CreationPayload, error) {
	if len(override) > 0 {
		payload, err := decodeOverride(override)
		if err != nil {
			return nil, common.InvalidArgumentError(err.Error())
		}
		return payload, nil
	}
	if job.Result != nil && job.Result.CreationPayload != nil {
		return job.Result.CreationPayload, nil
	}
	missing := []string{"parsed draft"}
	if job.Result != nil && job.Result.ParsedDraft != nil {
		missing = job.Result.ParsedDraft.MissingForCreation()
	}
	return nil, common.FailedPreconditionError(
		"parsed draft is incomplete, supply an override or re-import; missing: " + strings.Join(missing, ", "))
}

// validatePayload re-checks line invariants on the decoded payload. Overrides
// already passed the schema; parsed payloads are checked here as well so both
// paths hold the same guarantees.
func validatePayload(p *parser.CreationPayload) error {
	if p.IssuedAt.IsZero() {
		return common.InvalidArgumentError("issued_at must be set")
	}
	if len(p.Lines) == 0 {
		return common.InvalidArgumentError("at least one fuel line is required")
	}
	for i, ln := range p.Lines {
		if !ln.FuelType.Valid() {
			return common.InvalidArgumentErrorf("line %d: unknown fuel type %q", i, ln.FuelType)
		}
		if ln.QuantityMilliLiters <= 0 {
			return common.InvalidArgumentErrorf("line %d: quantity must be positive", i)
		}
		if ln.UnitPriceDeciCents < 0 {
			return common.InvalidArgumentErrorf("line %d: unit price must not be negative", i)
		}
		if ln.VATRatePercent < 0 || ln.VATRatePercent > 100 {
			return common.InvalidArgumentErrorf("line %d: VAT rate must be between 0 and 100", i)
		}
	}
	return nil
}

// ensureStation finds or creates the station for an exact identity. A unique
// violation on create means a concurrent finalize created the same station,
// so one re-fetch settles it; a second miss is a genuine fault.
func (s *Service) ensureStation(ctx context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error) {
	station, err := s.stations.FindByIdentity(ctx, ownerID, ident)
	if err == nil {
		return station, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	station, err = s.stations.Create(ctx, ownerID, ident)
	if err == nil {
		return station, nil
	}
	if !errors.Is(err, repository.ErrIdentityConflict) {
		return nil, err
	}

	station, err = s.stations.FindByIdentity(ctx, ownerID, ident)
	if err != nil {
		s.logger.Error("finalize.station.refetch_failed", "owner_id", ownerID, "name", ident.Name, "error", err)
		return nil, common.InternalError("station create conflicted but identity cannot be found")
	}
	return station, nil
}
