package parser

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbux/fuel-receipts/constants"
)

var _ = Describe("Fingerprint", func() {
	makeDraft := func() *Draft {
		name := "TOTAL ENERGIES"
		street := "1 Rue de Rivoli"
		postal := "75001"
		city := "Paris"
		issued := time.Date(2026, 2, 21, 10, 45, 0, 0, time.UTC)
		total := int64(7516)
		fuel := constants.FuelDiesel
		qty := int64(40000)
		price := int64(1879)
		rate := 20
		return &Draft{
			StationName:       &name,
			StationStreetName: &street,
			StationPostalCode: &postal,
			StationCity:       &city,
			IssuedAt:          &issued,
			TotalCents:        &total,
			Lines: []LineDraft{{
				FuelType:            &fuel,
				QuantityMilliLiters: &qty,
				UnitPriceDeciCents:  &price,
				VATRatePercent:      &rate,
			}},
		}
	}

	It("is deterministic", func() {
		Expect(Fingerprint(makeDraft())).To(Equal(Fingerprint(makeDraft())))
	})

	It("ignores header casing and whitespace", func() {
		a := makeDraft()
		b := makeDraft()
		loud := "  TOTAL   energies "
		b.StationName = &loud
		Expect(Fingerprint(a)).To(Equal(Fingerprint(b)))
	})

	It("changes when an amount changes", func() {
		a := makeDraft()
		b := makeDraft()
		other := int64(7517)
		b.TotalCents = &other
		Expect(Fingerprint(a)).NotTo(Equal(Fingerprint(b)))
	})

	It("changes when a line is added", func() {
		a := makeDraft()
		b := makeDraft()
		b.Lines = append(b.Lines, LineDraft{})
		Expect(Fingerprint(a)).NotTo(Equal(Fingerprint(b)))
	})

	It("distinguishes nil fields from zero values", func() {
		a := makeDraft()
		b := makeDraft()
		zero := int64(0)
		b.TotalCents = &zero
		a.TotalCents = nil
		Expect(Fingerprint(a)).NotTo(Equal(Fingerprint(b)))
	})
})
