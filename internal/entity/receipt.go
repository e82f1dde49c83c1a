package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
)

// Receipt is the canonical expense record produced by finalize.
type Receipt struct {
	ID             uuid.UUID     `json:"id"`
	OwnerID        uuid.UUID     `json:"owner_id"`
	StationID      uuid.UUID     `json:"station_id"`
	IssuedAt       time.Time     `json:"issued_at"`
	TotalCents     *int64        `json:"total_cents,omitempty"`
	VATAmountCents *int64        `json:"vat_amount_cents,omitempty"`
	Lines          []ReceiptLine `json:"lines,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ReceiptLine is one fuel purchase on a receipt. Money and volume are integer
// minor units: milliliters, deci-cents per liter, cents.
type ReceiptLine struct {
	ID                  uuid.UUID          `json:"id"`
	FuelType            constants.FuelType `json:"fuel_type"`
	QuantityMilliLiters int64              `json:"quantity_milliliters"`
	UnitPriceDeciCents  int64              `json:"unit_price_deci_cents"`
	VATRatePercent      int                `json:"vat_rate_percent"`
	LineTotalCents      *int64             `json:"line_total_cents,omitempty"`
}
