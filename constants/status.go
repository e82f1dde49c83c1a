package constants

// JobStatus is the canonical status for rows in import_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"       // waiting for a worker
	JobStatusProcessing  JobStatus = "PROCESSING"   // picked up by a worker
	JobStatusNeedsReview JobStatus = "NEEDS_REVIEW" // parsed; awaiting review/finalize
	JobStatusFailed      JobStatus = "FAILED"       // terminal unless requeued by an operator
	JobStatusDuplicate   JobStatus = "DUPLICATE"    // terminal; same file already ingested
	JobStatusProcessed   JobStatus = "PROCESSED"    // terminal; receipt created
)

// Terminal reports whether no further automatic transition applies.
// FAILED is excluded: an operator requeue resets it to QUEUED.
func (s JobStatus) Terminal() bool {
	return s == JobStatusProcessed || s == JobStatusDuplicate
}

// Processable reports whether a worker may pick the job up. PROCESSING is
// included because a retryable redelivery finds the row still in PROCESSING.
func (s JobStatus) Processable() bool {
	return s == JobStatusQueued || s == JobStatusProcessing
}

// AllStatuses holds every valid job status, for schema validation.
var AllStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusNeedsReview),
	string(JobStatusFailed),
	string(JobStatusDuplicate),
	string(JobStatusProcessed),
}
