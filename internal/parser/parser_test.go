package parser

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/ocr"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

var _ = Describe("Parse", func() {
	var (
		extraction ocr.Extraction
		draft      *Draft
	)

	JustBeforeEach(func() {
		draft = Parse(extraction)
	})

	When("parsing a complete French fuel receipt", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "TOTAL ENERGIES\n" +
				"1 Rue de Rivoli\n" +
				"75001 Paris\n" +
				"21/02/2026 10:45\n" +
				"GAZOLE 40,00 L x 1,879 €/L 75,16 €\n" +
				"TOTAL TTC 75,16 €\n" +
				"TVA 20% 12,53 €\n"}
		})

		It("extracts the station name from the first plain line", func() {
			Expect(draft.StationName).To(HaveValue(Equal("TOTAL ENERGIES")))
		})

		It("extracts postal code and city", func() {
			Expect(draft.StationPostalCode).To(HaveValue(Equal("75001")))
			Expect(draft.StationCity).To(HaveValue(Equal("Paris")))
		})

		It("extracts the street line", func() {
			Expect(draft.StationStreetName).To(HaveValue(Equal("1 Rue de Rivoli")))
		})

		It("extracts the issued-at timestamp", func() {
			Expect(draft.IssuedAt).To(HaveValue(Equal(
				time.Date(2026, 2, 21, 10, 45, 0, 0, time.UTC))))
		})

		It("extracts the total in cents", func() {
			Expect(draft.TotalCents).To(HaveValue(Equal(int64(7516))))
		})

		It("extracts the VAT rate and amount", func() {
			Expect(draft.VATRatePercent).To(HaveValue(Equal(20)))
			Expect(draft.VATAmountCents).To(HaveValue(Equal(int64(1253))))
		})

		It("extracts one fully-populated fuel line", func() {
			Expect(draft.Lines).To(HaveLen(1))
			ln := draft.Lines[0]
			Expect(ln.FuelType).To(HaveValue(Equal(constants.FuelDiesel)))
			Expect(ln.QuantityMilliLiters).To(HaveValue(Equal(int64(40000))))
			Expect(ln.UnitPriceDeciCents).To(HaveValue(Equal(int64(1879))))
			Expect(ln.LineTotalCents).To(HaveValue(Equal(int64(7516))))
			Expect(ln.VATRatePercent).To(HaveValue(Equal(20)))
		})

		It("records no issues", func() {
			Expect(draft.Issues).To(BeEmpty())
		})

		It("qualifies for unattended creation", func() {
			payload := draft.BuildCreationPayload()
			Expect(payload).NotTo(BeNil())
			Expect(payload.StationName).To(Equal("TOTAL ENERGIES"))
			Expect(payload.Lines).To(HaveLen(1))
		})
	})

	When("parsing a bare total line", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "TOTAL 80,00"}
		})

		It("still extracts the total", func() {
			Expect(draft.TotalCents).To(HaveValue(Equal(int64(8000))))
		})

		It("records issues for everything else", func() {
			Expect(draft.Issues).To(ConsistOf(
				constants.IssueStationNameMissing,
				constants.IssueStationPostalCityMissing,
				constants.IssueStationStreetMissing,
				constants.IssueIssuedAtMissing,
				constants.IssueVATRateMissing,
				constants.IssueFuelLinesMissing,
			))
		})

		It("does not qualify for unattended creation", func() {
			Expect(draft.BuildCreationPayload()).To(BeNil())
		})

		It("names the missing fields", func() {
			Expect(draft.MissingForCreation()).To(ContainElements(
				"station_name", "issued_at", "fuel_line"))
		})
	})

	When("the VAT amount is absent but total and rate are known", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "TOTAL TTC 75,16\nTVA 20%"}
		})

		It("derives the amount from the rate", func() {
			Expect(draft.VATRatePercent).To(HaveValue(Equal(20)))
			Expect(draft.VATAmountCents).To(HaveValue(Equal(int64(1253))))
		})
	})

	When("the timestamp is ISO-shaped", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "ESSO EXPRESS\n2026-02-21T10:45 caisse 3"}
		})

		It("parses it", func() {
			Expect(draft.IssuedAt).To(HaveValue(Equal(
				time.Date(2026, 2, 21, 10, 45, 0, 0, time.UTC))))
		})
	})

	When("the date has no time component", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "21/02/2026"}
		})

		It("defaults to midnight", func() {
			Expect(draft.IssuedAt).To(HaveValue(Equal(
				time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC))))
		})
	})

	When("the date is not a real calendar day", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "45/13/2026"}
		})

		It("rejects it and records the issue", func() {
			Expect(draft.IssuedAt).To(BeNil())
			Expect(draft.Issues).To(ContainElement(constants.IssueIssuedAtMissing))
		})
	})

	When("a fuel keyword appears without extractable numbers", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Text: "SP95 carburant"}
		})

		It("still emits a line draft with null fields", func() {
			Expect(draft.Lines).To(HaveLen(1))
			Expect(draft.Lines[0].FuelType).To(HaveValue(Equal(constants.FuelSP95)))
			Expect(draft.Lines[0].QuantityMilliLiters).To(BeNil())
			Expect(draft.Lines[0].UnitPriceDeciCents).To(BeNil())
		})

		It("excludes the incomplete line from the payload", func() {
			Expect(draft.BuildCreationPayload()).To(BeNil())
		})
	})

	When("the extraction is paginated", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{Pages: []string{
				"AVIA STATION\n12 Avenue Foch",
				"69002 Lyon\n03.01.2026 08h15\nTOTAL 52,30",
			}}
		})

		It("joins pages in order before rule evaluation", func() {
			Expect(draft.StationName).To(HaveValue(Equal("AVIA STATION")))
			Expect(draft.StationCity).To(HaveValue(Equal("Lyon")))
			Expect(draft.IssuedAt).To(HaveValue(Equal(
				time.Date(2026, 1, 3, 8, 15, 0, 0, time.UTC))))
			Expect(draft.TotalCents).To(HaveValue(Equal(int64(5230))))
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			extraction = ocr.Extraction{}
		})

		It("yields a draft with every issue and no panic", func() {
			Expect(draft).NotTo(BeNil())
			Expect(draft.Lines).To(BeEmpty())
			Expect(draft.Issues).To(HaveLen(7))
		})
	})
})
