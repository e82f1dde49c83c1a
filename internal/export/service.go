package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/carbux/fuel-receipts/internal/entity"
	"github.com/carbux/fuel-receipts/internal/repository"
)

// Service produces XLSX bytes for receipt exports.
type Service struct {
	receipts repository.ReceiptRepository
	stations repository.StationRepository
	logger   *slog.Logger
}

func NewService(receipts repository.ReceiptRepository, stations repository.StationRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receipts: receipts, stations: stations, logger: logger}
}

// ReceiptsXLSX returns an XLSX workbook for the owner's receipts in the date
// window, one row per fuel line. A nil from means beginning; a nil to means
// today.
func (s *Service) ReceiptsXLSX(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		d := dateOnly(*from)
		fromDate = &d
	}
	if to != nil {
		d := dateOnly(*to)
		toDate = &d
	}
	if fromDate != nil && toDate == nil {
		d := dateOnly(time.Now().UTC())
		toDate = &d
	}

	recs, err := s.receipts.List(ctx, ownerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Issued At",
		"Station",
		"Street",
		"Postal Code",
		"City",
		"Fuel",
		"Quantity (L)",
		"Unit Price (EUR/L)",
		"VAT %",
		"Line Total (EUR)",
		"Receipt Total (EUR)",
		"VAT Amount (EUR)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// station names repeat across receipts, so cache lookups per export
	stationCache := map[uuid.UUID]*entity.Station{}
	stationFor := func(id uuid.UUID) *entity.Station {
		if st, ok := stationCache[id]; ok {
			return st
		}
		st, err := s.stations.Get(ctx, ownerID, id)
		if err != nil {
			s.logger.Warn("export.station_lookup_failed", "station_id", id, "error", err)
			st = &entity.Station{}
		}
		stationCache[id] = st
		return st
	}

	row := 2
	for _, r := range recs {
		st := stationFor(r.StationID)
		lines := r.Lines
		if len(lines) == 0 {
			lines = []entity.ReceiptLine{{}}
		}
		for _, ln := range lines {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, r.IssuedAt.Format("2006-01-02 15:04"))
			write(2, st.Name)
			write(3, st.StreetName)
			write(4, st.PostalCode)
			write(5, st.City)
			write(6, string(ln.FuelType))
			if ln.QuantityMilliLiters > 0 {
				write(7, millilitersToLiters(ln.QuantityMilliLiters))
			}
			if ln.UnitPriceDeciCents > 0 {
				write(8, deciCentsToEuros(ln.UnitPriceDeciCents))
			}
			write(9, ln.VATRatePercent)
			if ln.LineTotalCents != nil {
				write(10, centsToEuros(*ln.LineTotalCents))
			}
			if r.TotalCents != nil {
				write(11, centsToEuros(*r.TotalCents))
			}
			if r.VATAmountCents != nil {
				write(12, centsToEuros(*r.VATAmountCents))
			}
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 26)
	_ = f.SetColWidth(sheet, "C", "C", 30)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 10)
	_ = f.SetColWidth(sheet, "G", "L", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID.String(),
		"receipts", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// centsToEuros renders integer cents as a decimal euro string ("7516" -> "75.16").
func centsToEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// deciCentsToEuros renders tenths of cents per liter ("1879" -> "1.879").
func deciCentsToEuros(dc int64) string {
	return fmt.Sprintf("%d.%03d", dc/1000, dc%1000)
}

// millilitersToLiters renders milliliters as liters ("40000" -> "40.000").
func millilitersToLiters(ml int64) string {
	return fmt.Sprintf("%d.%03d", ml/1000, ml%1000)
}
