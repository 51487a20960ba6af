package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/ecotrace/carboncore/gen/proto/carboncore/v1"
)

func (s *CarbonScoreServer) ExportReports(ctx context.Context, req *v1.ExportReportsRequest) (*v1.ExportReportsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	xlsx, err := s.exporter.ExportReportsXLSX(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Error(codes.Internal, "export reports failed")
	}
	return &v1.ExportReportsResponse{Xlsx: xlsx}, nil
}
