package parser

import (
	"strings"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/internal/ocr"
)

// Parse turns raw OCR text into a structured draft plus a list of
// missing-data issues. Parsing gaps are never errors: every input yields a
// draft, and the readiness gate decides whether it can finalize unattended.
func Parse(ex ocr.Extraction) *Draft {
	lines := normalizeLines(ex)
	rawText := ex.Text
	if rawText == "" && len(ex.Pages) > 0 {
		rawText = strings.Join(ex.Pages, "\n")
	}

	d := &Draft{Lines: []LineDraft{}, Issues: []constants.IssueCode{}}

	if d.StationName = findStationName(lines); d.StationName == nil {
		d.addIssue(constants.IssueStationNameMissing)
	}

	d.StationPostalCode, d.StationCity = findPostalCity(lines)
	if d.StationPostalCode == nil {
		d.addIssue(constants.IssueStationPostalCityMissing)
	}

	if d.StationStreetName = findStreet(lines); d.StationStreetName == nil {
		d.addIssue(constants.IssueStationStreetMissing)
	}

	if d.IssuedAt = findIssuedAt(lines, rawText); d.IssuedAt == nil {
		d.addIssue(constants.IssueIssuedAtMissing)
	}

	if d.TotalCents = findTotal(lines); d.TotalCents == nil {
		d.addIssue(constants.IssueTotalMissing)
	}

	d.VATRatePercent, d.VATAmountCents = findVAT(lines, d.TotalCents)
	if d.VATRatePercent == nil {
		d.addIssue(constants.IssueVATRateMissing)
	}

	if d.Lines = findFuelLines(lines, d.VATRatePercent); len(d.Lines) == 0 {
		d.Lines = []LineDraft{}
		d.addIssue(constants.IssueFuelLinesMissing)
	}

	return d
}
