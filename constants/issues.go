package constants

// IssueCode names a gap left by heuristic parsing. Issues are hints for the
// review screen, never errors: a draft with issues still reaches NEEDS_REVIEW.
type IssueCode string

const (
	IssueStationNameMissing       IssueCode = "station_name_missing"
	IssueStationPostalCityMissing IssueCode = "station_postal_city_missing"
	IssueStationStreetMissing     IssueCode = "station_street_missing"
	IssueIssuedAtMissing          IssueCode = "issued_at_missing"
	IssueTotalMissing             IssueCode = "total_missing"
	IssueVATRateMissing           IssueCode = "vat_rate_missing"
	IssueFuelLinesMissing         IssueCode = "fuel_lines_missing"
)
