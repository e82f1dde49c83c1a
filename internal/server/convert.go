package server

import (
	"encoding/hex"
	"encoding/json"
	"time"

	v1 "github.com/carbux/fuel-receipts/gen/proto/fuelreceipts/v1"
	"github.com/carbux/fuel-receipts/internal/entity"
)

func toProtoJob(job *entity.ImportJob) *v1.ImportJob {
	out := &v1.ImportJob{
		Id:          job.ID.String(),
		OwnerId:     job.OwnerID.String(),
		Status:      string(job.Status),
		StorageName: job.StorageName,
		StoragePath: job.StoragePath,
		Filename:    job.Filename,
		MimeType:    job.MIMEType,
		FileSize:    job.FileSize,
		ChecksumHex: hex.EncodeToString(job.Checksum),
		CreatedAt:   job.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   job.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if job.Result != nil {
		if raw, err := json.Marshal(job.Result); err == nil {
			out.ResultJson = string(raw)
		}
	}
	if job.StartedAt != nil {
		out.StartedAt = job.StartedAt.UTC().Format(time.RFC3339Nano)
	}
	if job.CompletedAt != nil {
		out.CompletedAt = job.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	if job.FailedAt != nil {
		out.FailedAt = job.FailedAt.UTC().Format(time.RFC3339Nano)
	}
	return out
}

func toProtoReceipt(r *entity.Receipt) *v1.Receipt {
	lines := make([]*v1.ReceiptLine, 0, len(r.Lines))
	for _, ln := range r.Lines {
		lines = append(lines, &v1.ReceiptLine{
			FuelType:            string(ln.FuelType),
			QuantityMilliliters: ln.QuantityMilliLiters,
			UnitPriceDeciCents:  ln.UnitPriceDeciCents,
			VatRatePercent:      int32(ln.VATRatePercent),
			LineTotalCents:      ln.LineTotalCents,
		})
	}
	return &v1.Receipt{
		Id:             r.ID.String(),
		OwnerId:        r.OwnerID.String(),
		StationId:      r.StationID.String(),
		IssuedAt:       r.IssuedAt.UTC().Format(time.RFC3339),
		TotalCents:     r.TotalCents,
		VatAmountCents: r.VATAmountCents,
		Lines:          lines,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
