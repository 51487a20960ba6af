package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/ecotrace/carboncore/gen/proto/carboncore/v1"

	"github.com/ecotrace/carboncore/internal/common"
	"github.com/ecotrace/carboncore/internal/utils"
)

func (s *CarbonScoreServer) GetReport(ctx context.Context, req *v1.GetReportRequest) (*v1.GetReportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetReportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "report_id must be a UUID")
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("report not found")
		}
		s.logger.Error("failed to get report", "report_id", id, "error", err)
		return nil, common.InternalErrorf("get report: %v", err)
	}
	return &v1.GetReportResponse{Report: utils.ToPBReport(report)}, nil
}

func (s *CarbonScoreServer) ListReports(ctx context.Context, req *v1.ListReportsRequest) (*v1.ListReportsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	s.logger.Info("listing reports", "from_date", fromDate, "to_date", toDate)
	reports, err := s.reports.ListReports(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list reports", "error", err)
		return nil, common.InternalErrorf("list reports: %v", err)
	}

	out := make([]*v1.Report, 0, len(reports))
	for _, r := range reports {
		out = append(out, utils.ToPBReport(r))
	}
	return &v1.ListReportsResponse{Reports: out}, nil
}

// parseDateWindow turns optional YYYY-MM-DD bounds into inclusive timestamps.
func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, errors.New("from_date invalid (YYYY-MM-DD)")
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, errors.New("to_date invalid (YYYY-MM-DD)")
		}
		end := utils.EndOfDay(t)
		toDate = &end
	}
	return fromDate, toDate, nil
}
