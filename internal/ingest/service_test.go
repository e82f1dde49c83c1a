package ingest

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/async"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/repository"
	"github.com/carbux/fuel-receipts/internal/storage"
)

func TestIngest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ingest Suite")
}

type fakeJobs struct {
	repository.ImportJobRepository
	created    []repository.CreateImportJobRequest
	requeued   []uuid.UUID
	requeueErr error
	job        *entity.ImportJob
}

func (f *fakeJobs) Create(_ context.Context, req repository.CreateImportJobRequest) (*entity.ImportJob, error) {
	f.created = append(f.created, req)
	f.job = &entity.ImportJob{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Status:      constants.JobStatusQueued,
		StorageName: req.StorageName,
		StoragePath: req.StoragePath,
		Filename:    req.Filename,
		MIMEType:    req.MIMEType,
		FileSize:    req.FileSize,
		Checksum:    req.Checksum,
	}
	return f.job, nil
}

func (f *fakeJobs) Requeue(_ context.Context, _, id uuid.UUID) error {
	if f.requeueErr != nil {
		return f.requeueErr
	}
	f.requeued = append(f.requeued, id)
	return nil
}

func (f *fakeJobs) GetForOwner(context.Context, uuid.UUID, uuid.UUID) (*entity.ImportJob, error) {
	return f.job, nil
}

type fakeQueue struct {
	messages []async.ProcessImportJobMessage
	err      error
}

func (q *fakeQueue) Enqueue(_ context.Context, msg async.ProcessImportJobMessage) error {
	if q.err != nil {
		return q.err
	}
	q.messages = append(q.messages, msg)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

var _ = Describe("Service.Submit", func() {
	var (
		root    string
		jobs    *fakeJobs
		queue   *fakeQueue
		svc     *Service
		ownerID uuid.UUID
		content []byte

		job *entity.ImportJob
		err error
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		content = []byte("receipt image bytes")
		Expect(os.MkdirAll(filepath.Join(root, "in"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "in", "receipt.jpg"), content, 0o600)).To(Succeed())

		jobs = &fakeJobs{}
		queue = &fakeQueue{}
		locator := storage.NewFSLocator(map[string]string{"uploads": root}, nil)
		svc = NewService(nil, jobs, locator, queue)
		ownerID = uuid.New()
	})

	submit := func(path string) {
		job, err = svc.Submit(context.Background(), ownerID, "uploads", path)
	}

	When("submitting a stored jpg", func() {
		JustBeforeEach(func() { submit("in/receipt.jpg") })

		It("creates a QUEUED job with checksum, size and mime type", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(jobs.created).To(HaveLen(1))
			req := jobs.created[0]
			Expect(req.OwnerID).To(Equal(ownerID))
			Expect(req.Filename).To(Equal("receipt.jpg"))
			Expect(req.MIMEType).To(Equal("image/jpeg"))
			Expect(req.FileSize).To(Equal(int64(len(content))))
			sum := sha256.Sum256(content)
			Expect(req.Checksum).To(Equal(sum[:]))
		})

		It("enqueues a first-attempt message for the job", func() {
			Expect(queue.messages).To(HaveLen(1))
			Expect(queue.messages[0].ImportJobID).To(Equal(job.ID))
			Expect(queue.messages[0].Attempt).To(Equal(1))
		})
	})

	When("the extension is not allowed", func() {
		JustBeforeEach(func() {
			Expect(os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600)).To(Succeed())
			submit("notes.txt")
		})

		It("rejects without creating anything", func() {
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
			Expect(jobs.created).To(BeEmpty())
			Expect(queue.messages).To(BeEmpty())
		})
	})

	When("the file does not exist", func() {
		JustBeforeEach(func() { submit("in/missing.jpg") })

		It("rejects with not found", func() {
			Expect(status.Code(err)).To(Equal(codes.NotFound))
			Expect(jobs.created).To(BeEmpty())
		})
	})

	When("the storage name is unknown", func() {
		JustBeforeEach(func() {
			job, err = svc.Submit(context.Background(), ownerID, "nope", "in/receipt.jpg")
		})

		It("rejects with invalid argument", func() {
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})
	})

	When("the queue rejects the message", func() {
		BeforeEach(func() {
			queue.err = context.DeadlineExceeded
		})

		JustBeforeEach(func() { submit("in/receipt.jpg") })

		It("still returns the created QUEUED job", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(job).NotTo(BeNil())
			Expect(job.Status).To(Equal(constants.JobStatusQueued))
		})

		It("recovers the QUEUED job through a later requeue", func() {
			Expect(queue.messages).To(BeEmpty())

			queue.err = nil
			requeued, rerr := svc.Requeue(context.Background(), ownerID, job.ID)
			Expect(rerr).NotTo(HaveOccurred())
			Expect(requeued.ID).To(Equal(job.ID))
			Expect(jobs.requeued).To(ConsistOf(Equal(job.ID)))
			Expect(queue.messages).To(HaveLen(1))
			Expect(queue.messages[0].ImportJobID).To(Equal(job.ID))
			Expect(queue.messages[0].Attempt).To(Equal(1))
		})
	})
})

var _ = Describe("Service.Requeue", func() {
	var (
		jobs  *fakeJobs
		queue *fakeQueue
		svc   *Service
	)

	BeforeEach(func() {
		jobs = &fakeJobs{job: &entity.ImportJob{ID: uuid.New(), Status: constants.JobStatusQueued}}
		queue = &fakeQueue{}
		svc = NewService(nil, jobs, storage.NewComposite(), queue)
	})

	It("resets the job and enqueues a fresh attempt", func() {
		job, err := svc.Requeue(context.Background(), uuid.New(), jobs.job.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(jobs.requeued).To(HaveLen(1))
		Expect(queue.messages).To(HaveLen(1))
		Expect(queue.messages[0].ImportJobID).To(Equal(job.ID))
		Expect(queue.messages[0].Attempt).To(Equal(1))
	})

	It("maps a stale status to failed precondition", func() {
		jobs.requeueErr = repository.ErrStaleStatus
		_, err := svc.Requeue(context.Background(), uuid.New(), uuid.New())
		Expect(status.Code(err)).To(Equal(codes.FailedPrecondition))
		Expect(queue.messages).To(BeEmpty())
	})

	It("maps a missing job to not found", func() {
		jobs.requeueErr = repository.ErrNotFound
		_, err := svc.Requeue(context.Background(), uuid.New(), uuid.New())
		Expect(status.Code(err)).To(Equal(codes.NotFound))
	})
})
