package parser

import (
	"regexp"
	"time"

	"github.com/carbux/fuel-receipts/constants"
)

// The parser is an ordered list of independent rules over the normalized line
// list. Every rule is first-match-wins and absence is never fatal: a miss
// records an issue code on the draft and the pipeline carries on.

var (
	reBoilerplate = regexp.MustCompile(`(?i)^(ticket|re[cç]u|facture|receipt|invoice|caisse|bienvenue|merci)\b`)
	reAmountWord  = regexp.MustCompile(`(?i)\b(total|ttc|tva|vat)\b`)
	reDigit       = regexp.MustCompile(`[0-9]`)
	reLetter      = regexp.MustCompile(`\p{L}`)
	reDateShape   = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)

	rePostalCity = regexp.MustCompile(`\b(\d{5})\s+(\p{Lu}[\p{L}'’-]*(?:\s+\p{Lu}[\p{L}'’-]*)*)`)
	rePostalTok  = regexp.MustCompile(`\b\d{5}\b`)

	reDayFirstDate = regexp.MustCompile(`\b(\d{2})[/.\-](\d{2})[/.\-](\d{4})(?:\s+(\d{1,2})[h:](\d{2}))?`)
	reISODate      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{1,2}):(\d{2}))?`)

	reTotal = regexp.MustCompile(`(?i)\b(?:total|ttc)\b[^0-9]*(\d+(?:[.,]\d+)?)`)
	reVAT   = regexp.MustCompile(`(?i)\b(?:tva|vat)\b[^0-9]*(\d{1,2})\s*%(?:[^0-9]*(\d+(?:[.,]\d+)?))?`)

	reQuantity  = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*l\b`)
	reUnitPrice = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(?:€\s*/\s*l|eur\s*/\s*l|/\s*l)\b`)
	reTrailing  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:€|eur)?\s*$`)
	reRate      = regexp.MustCompile(`\b(\d{1,2})\s*%`)
)

var fuelKeywords = []struct {
	re   *regexp.Regexp
	fuel constants.FuelType
}{
	{regexp.MustCompile(`(?i)\b(diesel|gazole)\b`), constants.FuelDiesel},
	{regexp.MustCompile(`(?i)\bsp98\b`), constants.FuelSP98},
	{regexp.MustCompile(`(?i)\b(sp95|e10)\b`), constants.FuelSP95},
	{regexp.MustCompile(`(?i)\b(gpl|lpg)\b`), constants.FuelGPL},
}

// findStationName picks the first line that is not boilerplate, not an
// amount line carrying a digit, not date-shaped, and contains a letter.
func findStationName(lines []string) *string {
	for _, line := range lines {
		if reBoilerplate.MatchString(line) {
			continue
		}
		if reAmountWord.MatchString(line) && reDigit.MatchString(line) {
			continue
		}
		if reDateShape.MatchString(line) {
			continue
		}
		if !reLetter.MatchString(line) {
			continue
		}
		return &line
	}
	return nil
}

// findPostalCity picks the first "75001 Paris"-shaped match: a 5-digit token
// followed by a capitalized word sequence.
func findPostalCity(lines []string) (postal, city *string) {
	for _, line := range lines {
		if m := rePostalCity.FindStringSubmatch(line); m != nil {
			return &m[1], &m[2]
		}
	}
	return nil, nil
}

// findStreet picks the first line with both a digit and a letter that is
// neither a postal-code line nor an amount line.
func findStreet(lines []string) *string {
	for _, line := range lines {
		if rePostalTok.MatchString(line) || reAmountWord.MatchString(line) {
			continue
		}
		if reDigit.MatchString(line) && reLetter.MatchString(line) {
			return &line
		}
	}
	return nil
}

// findIssuedAt scans every normalized line, then the full raw text, for a
// dd/mm/yyyy or ISO yyyy-mm-dd timestamp. A missing time defaults to 00:00.
func findIssuedAt(lines []string, rawText string) *time.Time {
	for _, line := range lines {
		if t := issuedAtIn(line); t != nil {
			return t
		}
	}
	return issuedAtIn(rawText)
}

func issuedAtIn(s string) *time.Time {
	dayFirst := reDayFirstDate.FindStringSubmatchIndex(s)
	iso := reISODate.FindStringSubmatchIndex(s)
	// earliest occurrence wins when both shapes appear
	if dayFirst != nil && (iso == nil || dayFirst[0] <= iso[0]) {
		if t := buildTime(s, dayFirst, 3, 2, 1); t != nil {
			return t
		}
	}
	if iso != nil {
		if t := buildTime(s, iso, 1, 2, 3); t != nil {
			return t
		}
	}
	return nil
}

// buildTime assembles a timestamp from submatch indexes; yi/mi/di select the
// year/month/day capture groups. Non-calendar matches (e.g. 45/13/2026) are
// rejected rather than normalized.
func buildTime(s string, idx []int, yi, mi, di int) *time.Time {
	group := func(i int) string {
		if idx[2*i] < 0 {
			return ""
		}
		return s[idx[2*i]:idx[2*i+1]]
	}
	year := atoi(group(yi))
	month := atoi(group(mi))
	day := atoi(group(di))
	hour, minute := 0, 0
	if h := group(4); h != "" {
		hour = atoi(h)
		minute = atoi(group(5))
		if hour > 23 || minute > 59 {
			hour, minute = 0, 0
		}
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil
	}
	return &t
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// findTotal picks the first total/ttc keyword followed by a decimal amount,
// returned in cents.
func findTotal(lines []string) *int64 {
	for _, line := range lines {
		if m := reTotal.FindStringSubmatch(line); m != nil {
			if cents, ok := parseMinorUnits(m[1], scaleCents); ok {
				return &cents
			}
		}
	}
	return nil
}

// findVAT picks the first tva/vat keyword with a 1-2 digit rate. When the
// amount is absent but the total is known, it is derived from the rate.
func findVAT(lines []string, totalCents *int64) (rate *int, amountCents *int64) {
	for _, line := range lines {
		m := reVAT.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		r := atoi(m[1])
		rate = &r
		if m[2] != "" {
			if cents, ok := parseMinorUnits(m[2], scaleCents); ok {
				amountCents = &cents
			}
		}
		if amountCents == nil && totalCents != nil {
			derived := deriveVATAmount(*totalCents, r)
			amountCents = &derived
		}
		return rate, amountCents
	}
	return nil, nil
}

// findFuelLines emits one line draft per line carrying a fuel keyword. Each
// field is extracted independently; inextractable fields stay null.
func findFuelLines(lines []string, headerRate *int) []LineDraft {
	var out []LineDraft
	for _, line := range lines {
		fuel := matchFuel(line)
		if fuel == nil {
			continue
		}
		ln := LineDraft{FuelType: fuel}
		if m := reQuantity.FindStringSubmatch(line); m != nil {
			if ml, ok := parseMinorUnits(m[1], scaleMilli); ok {
				ln.QuantityMilliLiters = &ml
			}
		}
		if m := reUnitPrice.FindStringSubmatch(line); m != nil {
			if dc, ok := parseMinorUnits(m[1], scaleDeciCentsPL); ok {
				ln.UnitPriceDeciCents = &dc
			}
		}
		if m := reTrailing.FindStringSubmatch(line); m != nil {
			if cents, ok := parseMinorUnits(m[1], scaleCents); ok {
				ln.LineTotalCents = &cents
			}
		}
		if m := reRate.FindStringSubmatch(line); m != nil {
			r := atoi(m[1])
			ln.VATRatePercent = &r
		} else if headerRate != nil {
			r := *headerRate
			ln.VATRatePercent = &r
		}
		out = append(out, ln)
	}
	return out
}

func matchFuel(line string) *constants.FuelType {
	for _, k := range fuelKeywords {
		if k.re.MatchString(line) {
			f := k.fuel
			return &f
		}
	}
	return nil
}
