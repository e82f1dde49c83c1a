package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/parser"
)

// ImportJob represents one uploaded file's lifecycle for data transfer
// between layers.
type ImportJob struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     uuid.UUID           `json:"owner_id"`
	Status      constants.JobStatus `json:"status"`
	StorageName string              `json:"storage_name"`
	StoragePath string              `json:"storage_path"`
	Filename    string              `json:"filename"`
	MIMEType    string              `json:"mime_type"`
	FileSize    int64               `json:"file_size"`
	Checksum    []byte              `json:"checksum"`
	Result      *JobResult          `json:"result,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	FailedAt    *time.Time          `json:"failed_at,omitempty"`
	RetainUntil time.Time           `json:"retain_until"`
}

// JobResult is the structured payload carried on a job. Writers populate
// exactly one branch: the draft-shaped fields on NEEDS_REVIEW and later, a
// duplicate pointer on DUPLICATE, or a failure message on FAILED.
type JobResult struct {
	ParsedDraft            *parser.Draft           `json:"parsed_draft,omitempty"`
	CreationPayload        *parser.CreationPayload `json:"creation_payload,omitempty"`
	Fingerprint            string                  `json:"fingerprint,omitempty"`
	DuplicateOfImportJobID *uuid.UUID              `json:"duplicate_of_import_job_id,omitempty"`
	FinalizedReceiptID     *uuid.UUID              `json:"finalized_receipt_id,omitempty"`
	FailureMessage         string                  `json:"failure_message,omitempty"`
}
