package parser

import (
	"time"

	"github.com/carbux/fuel-receipts/constants"
)

// Draft is the partially-populated result of heuristic parsing. It is always
// produced and never guaranteed complete; gaps are reported through Issues.
type Draft struct {
	StationName       *string               `json:"station_name,omitempty"`
	StationStreetName *string               `json:"station_street_name,omitempty"`
	StationPostalCode *string               `json:"station_postal_code,omitempty"`
	StationCity       *string               `json:"station_city,omitempty"`
	IssuedAt          *time.Time            `json:"issued_at,omitempty"`
	TotalCents        *int64                `json:"total_cents,omitempty"`
	VATRatePercent    *int                  `json:"vat_rate_percent,omitempty"`
	VATAmountCents    *int64                `json:"vat_amount_cents,omitempty"`
	Lines             []LineDraft           `json:"lines"`
	Issues            []constants.IssueCode `json:"issues"`
}

// LineDraft is one recognized fuel line. A line with a recognized fuel keyword
// but nothing else extractable is still emitted, with null fields.
type LineDraft struct {
	FuelType            *constants.FuelType `json:"fuel_type,omitempty"`
	QuantityMilliLiters *int64              `json:"quantity_milliliters,omitempty"`
	UnitPriceDeciCents  *int64              `json:"unit_price_deci_cents,omitempty"`
	LineTotalCents      *int64              `json:"line_total_cents,omitempty"`
	VATRatePercent      *int                `json:"vat_rate_percent,omitempty"`
}

// CreationPayload is the subset of a draft proven complete enough to build a
// receipt without operator input. It exists only when the readiness gate holds.
type CreationPayload struct {
	StationName       string        `json:"station_name"`
	StationStreetName string        `json:"station_street_name"`
	StationPostalCode string        `json:"station_postal_code"`
	StationCity       string        `json:"station_city"`
	IssuedAt          time.Time     `json:"issued_at"`
	TotalCents        *int64        `json:"total_cents,omitempty"`
	VATAmountCents    *int64        `json:"vat_amount_cents,omitempty"`
	Lines             []PayloadLine `json:"lines"`
}

// PayloadLine is a fully-populated fuel line. LineTotalCents stays optional:
// it is informational, not part of the readiness gate.
type PayloadLine struct {
	FuelType            constants.FuelType `json:"fuel_type"`
	QuantityMilliLiters int64              `json:"quantity_milliliters"`
	UnitPriceDeciCents  int64              `json:"unit_price_deci_cents"`
	VATRatePercent      int                `json:"vat_rate_percent"`
	LineTotalCents      *int64             `json:"line_total_cents,omitempty"`
}

// BuildCreationPayload computes the finalize-readiness gate: every header
// field present and at least one line with all four of fuel type, quantity,
// unit price, and VAT rate. Lines missing any of those four are excluded from
// the payload (they stay on the draft). Returns nil when the gate fails.
func (d *Draft) BuildCreationPayload() *CreationPayload {
	if d.IssuedAt == nil || d.StationName == nil || d.StationStreetName == nil ||
		d.StationPostalCode == nil || d.StationCity == nil {
		return nil
	}
	var lines []PayloadLine
	for _, ln := range d.Lines {
		if ln.FuelType == nil || ln.QuantityMilliLiters == nil ||
			ln.UnitPriceDeciCents == nil || ln.VATRatePercent == nil {
			continue
		}
		lines = append(lines, PayloadLine{
			FuelType:            *ln.FuelType,
			QuantityMilliLiters: *ln.QuantityMilliLiters,
			UnitPriceDeciCents:  *ln.UnitPriceDeciCents,
			VATRatePercent:      *ln.VATRatePercent,
			LineTotalCents:      ln.LineTotalCents,
		})
	}
	if len(lines) == 0 {
		return nil
	}
	return &CreationPayload{
		StationName:       *d.StationName,
		StationStreetName: *d.StationStreetName,
		StationPostalCode: *d.StationPostalCode,
		StationCity:       *d.StationCity,
		IssuedAt:          *d.IssuedAt,
		TotalCents:        d.TotalCents,
		VATAmountCents:    d.VATAmountCents,
		Lines:             lines,
	}
}

// MissingForCreation names the fields that keep BuildCreationPayload from
// succeeding, for finalize-time error messages.
func (d *Draft) MissingForCreation() []string {
	var missing []string
	if d.StationName == nil {
		missing = append(missing, "station_name")
	}
	if d.StationStreetName == nil {
		missing = append(missing, "station_street_name")
	}
	if d.StationPostalCode == nil {
		missing = append(missing, "station_postal_code")
	}
	if d.StationCity == nil {
		missing = append(missing, "station_city")
	}
	if d.IssuedAt == nil {
		missing = append(missing, "issued_at")
	}
	qualifying := false
	for _, ln := range d.Lines {
		if ln.FuelType != nil && ln.QuantityMilliLiters != nil &&
			ln.UnitPriceDeciCents != nil && ln.VATRatePercent != nil {
			qualifying = true
			break
		}
	}
	if !qualifying {
		missing = append(missing, "fuel_line")
	}
	return missing
}

func (d *Draft) addIssue(code constants.IssueCode) {
	for _, c := range d.Issues {
		if c == code {
			return
		}
	}
	d.Issues = append(d.Issues, code)
}
