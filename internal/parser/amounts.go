package parser

import (
	"strconv"
	"strings"
)

// Scales for integer minor units. Money never touches floating point.
const (
	scaleCents       = 100  // euros -> cents
	scaleMilli       = 1000 // liters -> milliliters
	scaleDeciCentsPL = 1000 // euros/liter -> deci-cents/liter
)

// parseMinorUnits converts a decimal string (comma or period separator) into
// integer minor units at the given power-of-ten scale, rounding half-up.
// "80,00" at scale 100 -> 8000; "1,879" at scale 1000 -> 1879.
func parseMinorUnits(s string, scale int64) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, false
	}

	digits := 0
	for n := scale; n > 1; n /= 10 {
		digits++
	}
	var frac int64
	for i := 0; i < digits; i++ {
		frac *= 10
		if i < len(fracPart) {
			d := fracPart[i]
			if d < '0' || d > '9' {
				return 0, false
			}
			frac += int64(d - '0')
		}
	}
	if len(fracPart) > digits {
		d := fracPart[digits]
		if d < '0' || d > '9' {
			return 0, false
		}
		if d >= '5' {
			frac++ // half-up
		}
	}
	return whole*scale + frac, true
}

// deriveVATAmount computes round(total - total/(1+rate/100)) in cents without
// leaving integer arithmetic: total*rate/(100+rate), rounded half-up.
func deriveVATAmount(totalCents int64, ratePercent int) int64 {
	num := totalCents * int64(ratePercent)
	den := int64(100 + ratePercent)
	return (2*num + den) / (2 * den)
}
