package finalize

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/parser"
	"github.com/carbux/fuel-receipts/internal/repository"
)

func TestFinalize(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Finalize Suite")
}

type fakeJobs struct {
	repository.ImportJobRepository
	job          *entity.ImportJob
	processed    *entity.JobResult
	processedErr error
}

func (f *fakeJobs) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (*entity.ImportJob, error) {
	if f.job == nil || f.job.ID != id || f.job.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := *f.job
	return &cp, nil
}

func (f *fakeJobs) MarkProcessed(_ context.Context, _ uuid.UUID, result *entity.JobResult) error {
	if f.processedErr != nil {
		return f.processedErr
	}
	f.processed = result
	return nil
}

type fakeStations struct {
	existing    *entity.Station
	createErr   error
	conflictSet *entity.Station // appears on re-fetch after a conflict
	created     []entity.StationIdentity
	finds       int
}

func (f *fakeStations) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Station, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeStations) FindByIdentity(_ context.Context, _ uuid.UUID, _ entity.StationIdentity) (*entity.Station, error) {
	f.finds++
	if f.existing != nil {
		return f.existing, nil
	}
	if f.conflictSet != nil && f.finds > 1 {
		return f.conflictSet, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStations) Create(_ context.Context, ownerID uuid.UUID, ident entity.StationIdentity) (*entity.Station, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, ident)
	return &entity.Station{ID: uuid.New(), OwnerID: ownerID, StationIdentity: ident}, nil
}

type fakeReceipts struct {
	created *repository.CreateReceiptRequest
}

func (f *fakeReceipts) Create(_ context.Context, req *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	f.created = req
	return &entity.Receipt{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		StationID:      req.StationID,
		IssuedAt:       req.IssuedAt,
		TotalCents:     req.TotalCents,
		VATAmountCents: req.VATAmountCents,
		Lines:          req.Lines,
	}, nil
}

func (f *fakeReceipts) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func completePayload() *parser.CreationPayload {
	total := int64(7516)
	vat := int64(1253)
	return &parser.CreationPayload{
		StationName:       "TOTAL ENERGIES",
		StationStreetName: "1 Rue de Rivoli",
		StationPostalCode: "75001",
		StationCity:       "Paris",
		IssuedAt:          time.Date(2026, 2, 21, 10, 45, 0, 0, time.UTC),
		TotalCents:        &total,
		VATAmountCents:    &vat,
		Lines: []parser.PayloadLine{{
			FuelType:            constants.FuelDiesel,
			QuantityMilliLiters: 40000,
			UnitPriceDeciCents:  1879,
			VATRatePercent:      20,
		}},
	}
}

var _ = Describe("Service.Finalize", func() {
	var (
		jobs     *fakeJobs
		stations *fakeStations
		receipts *fakeReceipts
		svc      *Service
		ownerID  uuid.UUID
		jobID    uuid.UUID
		override []byte

		receipt *entity.Receipt
		err     error
	)

	BeforeEach(func() {
		ownerID = uuid.New()
		jobID = uuid.New()
		jobs = &fakeJobs{job: &entity.ImportJob{
			ID:      jobID,
			OwnerID: ownerID,
			Status:  constants.JobStatusNeedsReview,
			Result: &entity.JobResult{
				CreationPayload: completePayload(),
				Fingerprint:     "abc123",
			},
		}}
		stations = &fakeStations{}
		receipts = &fakeReceipts{}
		override = nil
		svc = NewService(nil, jobs, stations, receipts)
	})

	JustBeforeEach(func() {
		receipt, err = svc.Finalize(context.Background(), ownerID, jobID, override)
	})

	When("the job has a complete parsed payload", func() {
		It("creates the receipt with the payload's values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt).NotTo(BeNil())
			Expect(receipts.created).NotTo(BeNil())
			Expect(*receipts.created.TotalCents).To(Equal(int64(7516)))
			Expect(receipts.created.Lines).To(HaveLen(1))
		})

		It("creates the station from the payload identity", func() {
			Expect(stations.created).To(HaveLen(1))
			Expect(stations.created[0].Name).To(Equal("TOTAL ENERGIES"))
		})

		It("marks the job PROCESSED with the receipt id", func() {
			Expect(jobs.processed).NotTo(BeNil())
			Expect(jobs.processed.FinalizedReceiptID).To(HaveValue(Equal(receipt.ID)))
			Expect(jobs.processed.Fingerprint).To(Equal("abc123"))
		})
	})

	When("the station already exists", func() {
		BeforeEach(func() {
			stations.existing = &entity.Station{ID: uuid.New(), OwnerID: ownerID}
		})

		It("reuses it instead of creating", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(stations.created).To(BeEmpty())
			Expect(receipts.created.StationID).To(Equal(stations.existing.ID))
		})
	})

	When("a concurrent finalize creates the same station first", func() {
		BeforeEach(func() {
			stations.createErr = repository.ErrIdentityConflict
			stations.conflictSet = &entity.Station{ID: uuid.New(), OwnerID: ownerID}
		})

		It("re-fetches once and proceeds", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(stations.finds).To(Equal(2))
			Expect(receipts.created.StationID).To(Equal(stations.conflictSet.ID))
		})
	})

	When("the conflicting station cannot be re-fetched", func() {
		BeforeEach(func() {
			stations.createErr = repository.ErrIdentityConflict
		})

		It("fails without creating a receipt", func() {
			Expect(err).To(HaveOccurred())
			Expect(status.Code(err)).To(Equal(codes.Internal))
			Expect(receipts.created).To(BeNil())
		})
	})

	When("the job is not NEEDS_REVIEW", func() {
		BeforeEach(func() {
			jobs.job.Status = constants.JobStatusProcessed
		})

		It("rejects with failed precondition and mutates nothing", func() {
			Expect(status.Code(err)).To(Equal(codes.FailedPrecondition))
			Expect(receipts.created).To(BeNil())
			Expect(stations.created).To(BeEmpty())
			Expect(jobs.processed).To(BeNil())
		})
	})

	When("the parsed draft is incomplete and no override is given", func() {
		BeforeEach(func() {
			draft := &parser.Draft{}
			jobs.job.Result = &entity.JobResult{ParsedDraft: draft}
		})

		It("names the missing fields and mutates nothing", func() {
			Expect(status.Code(err)).To(Equal(codes.FailedPrecondition))
			Expect(err.Error()).To(ContainSubstring("station_name"))
			Expect(err.Error()).To(ContainSubstring("issued_at"))
			Expect(err.Error()).To(ContainSubstring("fuel_line"))
			Expect(receipts.created).To(BeNil())
			Expect(stations.created).To(BeEmpty())
		})
	})

	When("an operator override is supplied", func() {
		BeforeEach(func() {
			override = []byte(`{
				"station_name": "ESSO EXPRESS",
				"station_street_name": "5 Avenue Mozart",
				"station_postal_code": "75016",
				"station_city": "Paris",
				"issued_at": "2026-03-01T08:00:00Z",
				"total_cents": 6000,
				"lines": [{
					"fuel_type": "sp98",
					"quantity_milliliters": 30000,
					"unit_price_deci_cents": 2000,
					"vat_rate_percent": 20
				}]
			}`)
		})

		It("uses the override instead of the parsed payload", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(stations.created[0].Name).To(Equal("ESSO EXPRESS"))
			Expect(*receipts.created.TotalCents).To(Equal(int64(6000)))
			Expect(receipts.created.Lines[0].FuelType).To(Equal(constants.FuelSP98))
		})
	})

	When("the override violates the schema", func() {
		BeforeEach(func() {
			override = []byte(`{"station_name": "ESSO", "lines": []}`)
		})

		It("rejects with invalid argument and mutates nothing", func() {
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
			Expect(receipts.created).To(BeNil())
		})
	})

	When("the override is not JSON", func() {
		BeforeEach(func() {
			override = []byte("not json")
		})

		It("rejects with invalid argument", func() {
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})
	})

	When("a parsed line carries a zero quantity", func() {
		BeforeEach(func() {
			p := completePayload()
			p.Lines[0].QuantityMilliLiters = 0
			jobs.job.Result.CreationPayload = p
		})

		It("rejects with invalid argument", func() {
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
			Expect(receipts.created).To(BeNil())
		})
	})

	When("the job was finalized concurrently", func() {
		BeforeEach(func() {
			jobs.processedErr = repository.ErrStaleStatus
		})

		It("rejects with failed precondition", func() {
			Expect(status.Code(err)).To(Equal(codes.FailedPrecondition))
		})
	})

	When("the job belongs to another owner", func() {
		BeforeEach(func() {
			jobs.job.OwnerID = uuid.New()
		})

		It("is not found", func() {
			Expect(status.Code(err)).To(Equal(codes.NotFound))
		})
	})
})
