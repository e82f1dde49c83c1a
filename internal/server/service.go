package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carbux/fuel-receipts/constants"
	v1 "github.com/carbux/fuel-receipts/gen/proto/fuelreceipts/v1"
	"github.com/carbux/fuel-receipts/internal/export"
	"github.com/carbux/fuel-receipts/internal/finalize"
	"github.com/carbux/fuel-receipts/internal/ingest"
	"github.com/carbux/fuel-receipts/internal/repository"
)

// FuelReceiptsService is the gRPC front for the import pipeline. It validates
// request shape; domain rules live in the services it delegates to.
type FuelReceiptsService struct {
	v1.UnimplementedFuelReceiptsServiceServer
	ingestSvc   *ingest.Service
	finalizeSvc *finalize.Service
	exportSvc   *export.Service
	jobs        repository.ImportJobRepository
	logger      *slog.Logger
}

func NewFuelReceiptsService(
	ingestSvc *ingest.Service,
	finalizeSvc *finalize.Service,
	exportSvc *export.Service,
	jobs repository.ImportJobRepository,
	logger *slog.Logger,
) *FuelReceiptsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FuelReceiptsService{
		ingestSvc:   ingestSvc,
		finalizeSvc: finalizeSvc,
		exportSvc:   exportSvc,
		jobs:        jobs,
		logger:      logger,
	}
}

func (s *FuelReceiptsService) SubmitImportJob(ctx context.Context, req *v1.SubmitImportJobRequest) (*v1.SubmitImportJobResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	storageName := strings.TrimSpace(req.GetStorageName())
	if storageName == "" {
		return nil, status.Error(codes.InvalidArgument, "storage_name is required")
	}
	storagePath := strings.TrimSpace(req.GetStoragePath())
	if storagePath == "" {
		return nil, status.Error(codes.InvalidArgument, "storage_path is required")
	}

	job, err := s.ingestSvc.Submit(ctx, ownerID, storageName, storagePath)
	if err != nil {
		return nil, asStatus(err, s.logger, "submit failed")
	}
	return &v1.SubmitImportJobResponse{Job: toProtoJob(job)}, nil
}

func (s *FuelReceiptsService) GetImportJob(ctx context.Context, req *v1.GetImportJobRequest) (*v1.GetImportJobResponse, error) {
	ownerID, jobID, err := parseJobRef(req.GetOwnerId(), req.GetImportJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetForOwner(ctx, ownerID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "import job not found")
		}
		return nil, asStatus(err, s.logger, "get import job failed")
	}
	return &v1.GetImportJobResponse{Job: toProtoJob(job)}, nil
}

func (s *FuelReceiptsService) ListImportJobs(ctx context.Context, req *v1.ListImportJobsRequest) (*v1.ListImportJobsResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	var statusFilter *constants.JobStatus
	if raw := strings.TrimSpace(req.GetStatus()); raw != "" {
		st := constants.JobStatus(raw)
		valid := false
		for _, known := range constants.AllStatuses {
			if known == raw {
				valid = true
				break
			}
		}
		if !valid {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", raw)
		}
		statusFilter = &st
	}
	limit := int(req.GetLimit())
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	jobs, err := s.jobs.List(ctx, ownerID, statusFilter, limit)
	if err != nil {
		return nil, asStatus(err, s.logger, "list import jobs failed")
	}
	out := make([]*v1.ImportJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toProtoJob(j))
	}
	return &v1.ListImportJobsResponse{Jobs: out}, nil
}

func (s *FuelReceiptsService) RequeueImportJob(ctx context.Context, req *v1.RequeueImportJobRequest) (*v1.RequeueImportJobResponse, error) {
	ownerID, jobID, err := parseJobRef(req.GetOwnerId(), req.GetImportJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.ingestSvc.Requeue(ctx, ownerID, jobID)
	if err != nil {
		return nil, asStatus(err, s.logger, "requeue failed")
	}
	return &v1.RequeueImportJobResponse{Job: toProtoJob(job)}, nil
}

func (s *FuelReceiptsService) FinalizeImportJob(ctx context.Context, req *v1.FinalizeImportJobRequest) (*v1.FinalizeImportJobResponse, error) {
	ownerID, jobID, err := parseJobRef(req.GetOwnerId(), req.GetImportJobId())
	if err != nil {
		return nil, err
	}
	var override []byte
	if raw := strings.TrimSpace(req.GetOverrideJson()); raw != "" {
		override = []byte(raw)
	}

	receipt, err := s.finalizeSvc.Finalize(ctx, ownerID, jobID, override)
	if err != nil {
		return nil, asStatus(err, s.logger, "finalize failed")
	}
	return &v1.FinalizeImportJobResponse{Receipt: toProtoReceipt(receipt)}, nil
}

func parseOwnerID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	return id, nil
}

func parseJobRef(rawOwner, rawJob string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := parseOwnerID(rawOwner)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	jobID, err := uuid.Parse(strings.TrimSpace(rawJob))
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "import_job_id must be a UUID")
	}
	return ownerID, jobID, nil
}

// asStatus passes through errors that already carry a gRPC code and logs the
// rest as internal.
func asStatus(err error, logger *slog.Logger, msg string) error {
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}
	logger.Error(msg, "error", err)
	return status.Error(codes.Internal, msg)
}
