package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/gen/ent"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/internal/entity"
)

// CreateReceiptRequest wraps parameters for creating a receipt with its lines.
type CreateReceiptRequest struct {
	OwnerID        uuid.UUID
	StationID      uuid.UUID
	IssuedAt       time.Time
	TotalCents     *int64
	VATAmountCents *int64
	Lines          []entity.ReceiptLine
}

type ReceiptRepository interface {
	Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	List(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
}

type receiptRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReceiptRepository(entc *ent.Client, log *slog.Logger) ReceiptRepository {
	if log == nil {
		log = slog.Default()
	}
	return &receiptRepo{ent: entc, log: log}
}

// Create writes the receipt and its lines in one transaction.
func (r *receiptRepo) Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.Receipt.Create().
		SetOwnerID(req.OwnerID).
		SetStationID(req.StationID).
		SetIssuedAt(req.IssuedAt).
		SetNillableTotalCents(req.TotalCents).
		SetNillableVatAmountCents(req.VATAmountCents).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("receipt create failed", "owner_id", req.OwnerID, "err", err)
		return nil, err
	}

	lines := make([]entity.ReceiptLine, 0, len(req.Lines))
	for _, ln := range req.Lines {
		created, err := tx.ReceiptLine.Create().
			SetReceiptID(row.ID).
			SetFuelType(string(ln.FuelType)).
			SetQuantityMilliliters(ln.QuantityMilliLiters).
			SetUnitPriceDeciCents(ln.UnitPriceDeciCents).
			SetVatRatePercent(ln.VATRatePercent).
			SetNillableLineTotalCents(ln.LineTotalCents).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.log.Error("receipt line create failed", "receipt_id", row.ID, "err", err)
			return nil, err
		}
		lines = append(lines, toReceiptLine(created))
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	out := toReceipt(row)
	out.Lines = lines
	r.log.Info("receipt created", "receipt_id", row.ID, "owner_id", req.OwnerID, "lines", len(lines))
	return out, nil
}

func (r *receiptRepo) List(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	q := r.ent.Receipt.Query().Where(receipt.OwnerID(ownerID))
	if fromDate != nil {
		q = q.Where(receipt.IssuedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.IssuedAtLTE(*toDate))
	}
	rows, err := q.WithLines().Order(receipt.ByIssuedAt()).All(ctx)
	if err != nil {
		r.log.Error("receipt list failed", "owner_id", ownerID, "err", err)
		return nil, err
	}

	out := make([]*entity.Receipt, len(rows))
	for i, row := range rows {
		rec := toReceipt(row)
		for _, ln := range row.Edges.Lines {
			rec.Lines = append(rec.Lines, toReceiptLine(ln))
		}
		out[i] = rec
	}
	return out, nil
}

func toReceipt(row *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		StationID:      row.StationID,
		IssuedAt:       row.IssuedAt,
		TotalCents:     row.TotalCents,
		VATAmountCents: row.VatAmountCents,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toReceiptLine(row *ent.ReceiptLine) entity.ReceiptLine {
	return entity.ReceiptLine{
		ID:                  row.ID,
		FuelType:            constants.FuelType(row.FuelType),
		QuantityMilliLiters: row.QuantityMilliliters,
		UnitPriceDeciCents:  row.UnitPriceDeciCents,
		VATRatePercent:      row.VatRatePercent,
		LineTotalCents:      row.LineTotalCents,
	}
}
