package export

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/repository"
)

func TestExport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Export Suite")
}

var _ = Describe("minor unit formatting", func() {
	DescribeTable("centsToEuros",
		func(cents int64, expected string) {
			Expect(centsToEuros(cents)).To(Equal(expected))
		},
		Entry("whole euros", int64(8000), "80.00"),
		Entry("with cents", int64(7516), "75.16"),
		Entry("under a euro", int64(9), "0.09"),
		Entry("zero", int64(0), "0.00"),
	)

	It("formats deci-cents per liter", func() {
		Expect(deciCentsToEuros(1879)).To(Equal("1.879"))
	})

	It("formats milliliters as liters", func() {
		Expect(millilitersToLiters(40000)).To(Equal("40.000"))
	})
})

type stubReceipts struct {
	receipts []*entity.Receipt
}

func (s *stubReceipts) Create(context.Context, *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	return nil, nil
}

func (s *stubReceipts) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return s.receipts, nil
}

type stubStations struct {
	station *entity.Station
}

func (s *stubStations) Get(context.Context, uuid.UUID, uuid.UUID) (*entity.Station, error) {
	return s.station, nil
}

func (s *stubStations) FindByIdentity(context.Context, uuid.UUID, entity.StationIdentity) (*entity.Station, error) {
	return s.station, nil
}

func (s *stubStations) Create(context.Context, uuid.UUID, entity.StationIdentity) (*entity.Station, error) {
	return s.station, nil
}

var _ = Describe("ReceiptsXLSX", func() {
	It("produces a workbook for the owner's receipts", func() {
		ownerID := uuid.New()
		stationID := uuid.New()
		total := int64(7516)
		svc := NewService(
			&stubReceipts{receipts: []*entity.Receipt{{
				ID:         uuid.New(),
				OwnerID:    ownerID,
				StationID:  stationID,
				IssuedAt:   time.Date(2026, 2, 21, 10, 45, 0, 0, time.UTC),
				TotalCents: &total,
				Lines: []entity.ReceiptLine{{
					FuelType:            constants.FuelDiesel,
					QuantityMilliLiters: 40000,
					UnitPriceDeciCents:  1879,
					VATRatePercent:      20,
				}},
			}}},
			&stubStations{station: &entity.Station{
				ID:      stationID,
				OwnerID: ownerID,
				StationIdentity: entity.StationIdentity{
					Name:       "TOTAL ENERGIES",
					StreetName: "1 Rue de Rivoli",
					PostalCode: "75001",
					City:       "Paris",
				},
			}},
			nil,
		)

		xlsx, err := svc.ReceiptsXLSX(context.Background(), ownerID, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(xlsx).NotTo(BeEmpty())
		// XLSX files are zip archives
		Expect(xlsx[:2]).To(Equal([]byte("PK")))
	})
})
