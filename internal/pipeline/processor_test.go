package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/ocr"
	"github.com/carbux/fuel-receipts/internal/repository"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

// memJobs is an in-memory ImportJobRepository with the same optimistic
// transition semantics as the real one.
type memJobs struct {
	jobs map[uuid.UUID]*entity.ImportJob
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: map[uuid.UUID]*entity.ImportJob{}}
}

func (m *memJobs) add(job *entity.ImportJob) {
	m.jobs[job.ID] = job
}

func (m *memJobs) Create(_ context.Context, req repository.CreateImportJobRequest) (*entity.ImportJob, error) {
	job := &entity.ImportJob{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Status:      constants.JobStatusQueued,
		StorageName: req.StorageName,
		StoragePath: req.StoragePath,
		Filename:    req.Filename,
		MIMEType:    req.MIMEType,
		FileSize:    req.FileSize,
		Checksum:    req.Checksum,
		CreatedAt:   time.Now(),
	}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *memJobs) Get(_ context.Context, id uuid.UUID) (*entity.ImportJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memJobs) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.ImportJob, error) {
	job, err := m.Get(ctx, id)
	if err != nil || job.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return job, nil
}

func (m *memJobs) List(_ context.Context, ownerID uuid.UUID, status *constants.JobStatus, _ int) ([]*entity.ImportJob, error) {
	var out []*entity.ImportJob
	for _, j := range m.jobs {
		if j.OwnerID == ownerID && (status == nil || j.Status == *status) {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memJobs) transition(id uuid.UUID, from, to constants.JobStatus, result *entity.JobResult) error {
	job, ok := m.jobs[id]
	if !ok || job.Status != from {
		return repository.ErrStaleStatus
	}
	job.Status = to
	job.Result = result
	return nil
}

func (m *memJobs) MarkProcessing(_ context.Context, id uuid.UUID, from constants.JobStatus) error {
	return m.transition(id, from, constants.JobStatusProcessing, nil)
}

func (m *memJobs) MarkNeedsReview(_ context.Context, id uuid.UUID, result *entity.JobResult) error {
	return m.transition(id, constants.JobStatusProcessing, constants.JobStatusNeedsReview, result)
}

func (m *memJobs) MarkDuplicate(_ context.Context, id uuid.UUID, result *entity.JobResult) error {
	return m.transition(id, constants.JobStatusProcessing, constants.JobStatusDuplicate, result)
}

func (m *memJobs) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	job, ok := m.jobs[id]
	if !ok {
		return repository.ErrStaleStatus
	}
	job.Status = constants.JobStatusFailed
	job.Result = &entity.JobResult{FailureMessage: message}
	return nil
}

func (m *memJobs) MarkProcessed(_ context.Context, id uuid.UUID, result *entity.JobResult) error {
	return m.transition(id, constants.JobStatusNeedsReview, constants.JobStatusProcessed, result)
}

func (m *memJobs) Requeue(_ context.Context, ownerID, id uuid.UUID) error {
	job, ok := m.jobs[id]
	if !ok || job.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	if job.Status != constants.JobStatusFailed && job.Status != constants.JobStatusQueued {
		return repository.ErrStaleStatus
	}
	job.Status = constants.JobStatusQueued
	job.Result = nil
	return nil
}

func (m *memJobs) FindLatestByOwnerAndChecksum(_ context.Context, ownerID uuid.UUID, checksum []byte, exclude uuid.UUID) (*entity.ImportJob, error) {
	var latest *entity.ImportJob
	for _, j := range m.jobs {
		if j.ID == exclude || j.OwnerID != ownerID || j.Status == constants.JobStatusFailed {
			continue
		}
		if !bytes.Equal(j.Checksum, checksum) {
			continue
		}
		if latest == nil || j.CreatedAt.After(latest.CreatedAt) {
			cp := *j
			latest = &cp
		}
	}
	return latest, nil
}

type stubLocator struct {
	path string
	err  error
}

func (l *stubLocator) Locate(context.Context, string, string) (string, error) {
	return l.path, l.err
}

type stubExtractor struct {
	extraction ocr.Extraction
	err        error
	calls      int
}

func (e *stubExtractor) Extract(context.Context, string, string) (ocr.Extraction, error) {
	e.calls++
	return e.extraction, e.err
}

var _ = Describe("Processor", func() {
	var (
		jobs      *memJobs
		locator   *stubLocator
		extractor *stubExtractor
		proc      *Processor
		ownerID   uuid.UUID
		job       *entity.ImportJob
		handleErr error
	)

	receiptText := "TOTAL ENERGIES\n" +
		"1 Rue de Rivoli\n" +
		"75001 Paris\n" +
		"21/02/2026 10:45\n" +
		"GAZOLE 40,00 L x 1,879 €/L 75,16 €\n" +
		"TOTAL TTC 75,16 €\n" +
		"TVA 20% 12,53 €\n"

	newJob := func(status constants.JobStatus, checksum []byte) *entity.ImportJob {
		j := &entity.ImportJob{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			Status:      status,
			StorageName: "uploads",
			StoragePath: "r/receipt.jpg",
			MIMEType:    "image/jpeg",
			Checksum:    checksum,
			CreatedAt:   time.Now(),
		}
		jobs.add(j)
		return j
	}

	BeforeEach(func() {
		jobs = newMemJobs()
		locator = &stubLocator{path: "/tmp/receipt.jpg"}
		extractor = &stubExtractor{extraction: ocr.Extraction{Text: receiptText}}
		proc = NewProcessor(nil, jobs, locator, extractor)
		ownerID = uuid.New()
		job = newJob(constants.JobStatusQueued, []byte{0x01})
	})

	handle := func(id uuid.UUID) {
		handleErr = proc.Handle(context.Background(), async.ProcessImportJobMessage{
			ImportJobID: id,
			Attempt:     1,
		})
	}

	When("processing a queued job with a clean extraction", func() {
		JustBeforeEach(func() { handle(job.ID) })

		It("succeeds", func() {
			Expect(handleErr).NotTo(HaveOccurred())
		})

		It("transitions to NEEDS_REVIEW with a populated result", func() {
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusNeedsReview))
			Expect(got.Result).NotTo(BeNil())
			Expect(got.Result.ParsedDraft).NotTo(BeNil())
			Expect(got.Result.CreationPayload).NotTo(BeNil())
			Expect(got.Result.Fingerprint).To(HaveLen(64))
		})
	})

	When("the same message is delivered twice", func() {
		It("is a no-op the second time", func() {
			handle(job.ID)
			Expect(extractor.calls).To(Equal(1))
			handle(job.ID)
			Expect(handleErr).NotTo(HaveOccurred())
			Expect(extractor.calls).To(Equal(1))
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusNeedsReview))
		})
	})

	When("the job no longer exists", func() {
		It("acks without error", func() {
			handle(uuid.New())
			Expect(handleErr).NotTo(HaveOccurred())
		})
	})

	When("extraction fails permanently", func() {
		BeforeEach(func() {
			extractor.err = &ocr.Error{Kind: ocr.KindPermanent, Op: "provider", Err: errors.New("unsupported media")}
		})

		JustBeforeEach(func() { handle(job.ID) })

		It("marks the job FAILED with the cause", func() {
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusFailed))
			Expect(got.Result.FailureMessage).To(ContainSubstring("unsupported media"))
		})

		It("returns the permanent error so the delivery layer acks", func() {
			Expect(ocr.IsPermanent(handleErr)).To(BeTrue())
		})
	})

	When("extraction fails transiently", func() {
		BeforeEach(func() {
			extractor.err = &ocr.Error{Kind: ocr.KindRetryable, Op: "send", Err: errors.New("connection refused")}
		})

		JustBeforeEach(func() { handle(job.ID) })

		It("propagates the error for redelivery", func() {
			Expect(handleErr).To(HaveOccurred())
			Expect(ocr.IsRetryable(handleErr)).To(BeTrue())
		})

		It("leaves the job in PROCESSING", func() {
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusProcessing))
		})

		It("can be processed again after the provider recovers", func() {
			extractor.err = nil
			handle(job.ID)
			Expect(handleErr).NotTo(HaveOccurred())
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusNeedsReview))
		})
	})

	When("an earlier job already ingested the same file", func() {
		var prior *entity.ImportJob

		BeforeEach(func() {
			prior = newJob(constants.JobStatusProcessed, []byte{0x01})
			prior.CreatedAt = time.Now().Add(-time.Hour)
		})

		JustBeforeEach(func() { handle(job.ID) })

		It("marks the new job DUPLICATE pointing at the earlier one", func() {
			Expect(handleErr).NotTo(HaveOccurred())
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusDuplicate))
			Expect(got.Result.DuplicateOfImportJobID).To(HaveValue(Equal(prior.ID)))
		})
	})

	When("the only earlier job with the same checksum FAILED", func() {
		BeforeEach(func() {
			failed := newJob(constants.JobStatusFailed, []byte{0x01})
			failed.CreatedAt = time.Now().Add(-time.Hour)
		})

		JustBeforeEach(func() { handle(job.ID) })

		It("processes normally", func() {
			Expect(handleErr).NotTo(HaveOccurred())
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusNeedsReview))
		})
	})

	When("another owner ingested the same file", func() {
		BeforeEach(func() {
			other := &entity.ImportJob{
				ID:        uuid.New(),
				OwnerID:   uuid.New(),
				Status:    constants.JobStatusProcessed,
				Checksum:  []byte{0x01},
				CreatedAt: time.Now().Add(-time.Hour),
			}
			jobs.add(other)
		})

		JustBeforeEach(func() { handle(job.ID) })

		It("is not a duplicate", func() {
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusNeedsReview))
		})
	})

	When("the retry budget is spent", func() {
		It("fails the job with the cause", func() {
			proc.Exhausted(context.Background(), async.ProcessImportJobMessage{ImportJobID: job.ID},
				errors.New("provider kept timing out"))
			got, _ := jobs.Get(context.Background(), job.ID)
			Expect(got.Status).To(Equal(constants.JobStatusFailed))
			Expect(got.Result.FailureMessage).To(ContainSubstring("retries exhausted"))
			Expect(got.Result.FailureMessage).To(ContainSubstring("provider kept timing out"))
		})
	})
})
