package server

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/carbux/fuel-receipts/gen/proto/fuelreceipts/v1"
)

func (s *FuelReceiptsService) ExportReceipts(ctx context.Context, req *v1.ExportReceiptsRequest) (*v1.ExportReceiptsResponse, error) {
	ownerID, err := parseOwnerID(req.GetOwnerId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exportSvc.ReceiptsXLSX(ctx, ownerID, fromPtr, toPtr)
	if err != nil {
		return nil, asStatus(err, s.logger, "export failed")
	}
	return &v1.ExportReceiptsResponse{Xlsx: xlsx}, nil
}
