package parser

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseMinorUnits", func() {
	DescribeTable("converts decimal strings to minor units",
		func(input string, scale int64, expected int64) {
			got, ok := parseMinorUnits(input, scale)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(expected))
		},
		Entry("euros with comma", "80,00", int64(scaleCents), int64(8000)),
		Entry("euros with period", "75.16", int64(scaleCents), int64(7516)),
		Entry("whole euros", "80", int64(scaleCents), int64(8000)),
		Entry("single fraction digit", "7,5", int64(scaleCents), int64(750)),
		Entry("price per liter", "1,879", int64(scaleDeciCentsPL), int64(1879)),
		Entry("liters to milliliters", "40,00", int64(scaleMilli), int64(40000)),
		Entry("rounds half up", "1,8795", int64(scaleDeciCentsPL), int64(1880)),
		Entry("rounds down below half", "1,8794", int64(scaleDeciCentsPL), int64(1879)),
		Entry("zero", "0,00", int64(scaleCents), int64(0)),
	)

	DescribeTable("rejects malformed input",
		func(input string) {
			_, ok := parseMinorUnits(input, scaleCents)
			Expect(ok).To(BeFalse())
		},
		Entry("empty", ""),
		Entry("letters", "abc"),
		Entry("bad fraction", "1,2x"),
	)
})

var _ = Describe("deriveVATAmount", func() {
	DescribeTable("extracts the VAT share from a gross total",
		func(totalCents int64, rate int, expected int64) {
			Expect(deriveVATAmount(totalCents, rate)).To(Equal(expected))
		},
		Entry("20% on 75,16", int64(7516), 20, int64(1253)),
		Entry("20% on 120,00", int64(12000), 20, int64(2000)),
		Entry("10% on 11,00", int64(1100), 10, int64(100)),
		Entry("0%", int64(5000), 0, int64(0)),
	)
})
