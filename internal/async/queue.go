package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProcessImportJobMessage asks a worker to run the pipeline for one job.
// Delivery is at-least-once; the handler must tolerate redelivery.
type ProcessImportJobMessage struct {
	ImportJobID uuid.UUID `json:"import_job_id"`
	Attempt     int       `json:"attempt"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Queue publishes processing messages.
type Queue interface {
	Enqueue(ctx context.Context, msg ProcessImportJobMessage) error
	Shutdown(ctx context.Context)
}

// Handler is the consuming side's contract. Handle returns nil on success; a
// permanent-tagged error means the handler already resolved the job terminally
// and the message must not be redelivered; any other error requests
// redelivery. Exhausted is invoked by the delivery layer once the retry
// budget is spent.
type Handler interface {
	Handle(ctx context.Context, msg ProcessImportJobMessage) error
	Exhausted(ctx context.Context, msg ProcessImportJobMessage, cause error)
}
