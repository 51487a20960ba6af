// Package server exposes the scoring pipeline and report store over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	v1 "github.com/ecotrace/carboncore/gen/proto/carboncore/v1"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/common"
	"github.com/ecotrace/carboncore/internal/entity"
	"github.com/ecotrace/carboncore/internal/export"
	"github.com/ecotrace/carboncore/internal/pipeline"
	"github.com/ecotrace/carboncore/internal/repository"
	"github.com/ecotrace/carboncore/internal/utils"
)

type CarbonScoreServer struct {
	v1.UnimplementedCarbonScoreServiceServer
	pipeline     *pipeline.Pipeline
	reports      repository.ReportRepository
	exporter     *export.Service
	historyLimit int
	logger       *slog.Logger
}

func NewCarbonScoreServer(p *pipeline.Pipeline, reports repository.ReportRepository, exporter *export.Service, historyLimit int, logger *slog.Logger) *CarbonScoreServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CarbonScoreServer{
		pipeline:     p,
		reports:      reports,
		exporter:     exporter,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

func (s *CarbonScoreServer) ScoreDocument(ctx context.Context, req *v1.ScoreDocumentRequest) (*v1.ScoreDocumentResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}

	report, err := s.pipeline.Run(req.GetText(), req.GetStoreHint())
	switch {
	case errors.Is(err, pipeline.ErrEmptyInput):
		return nil, common.InvalidArgumentError("document text is empty after normalization")
	case errors.Is(err, pipeline.ErrNoItems):
		return nil, common.FailedPreconditionError("no purchasable items found; use ScoreManual")
	case err != nil:
		s.logger.Error("failed to score document", "error", err)
		return nil, common.InternalError("score document failed")
	}

	if err := s.finishReport(ctx, report, req.GetPersist()); err != nil {
		return nil, err
	}
	return &v1.ScoreDocumentResponse{Report: utils.ToPBReport(report)}, nil
}

func (s *CarbonScoreServer) ScoreManual(ctx context.Context, req *v1.ScoreManualRequest) (*v1.ScoreManualResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items are required")
	}

	items := make([]entity.LineItem, 0, len(req.GetItems()))
	for i, in := range req.GetItems() {
		name := strings.TrimSpace(in.GetName())
		if name == "" {
			return nil, common.InvalidArgumentError("item name is required")
		}
		if in.GetPrice() < 0 {
			return nil, common.InvalidArgumentError("item price must be non-negative")
		}
		var cat constants.Category
		if c := strings.TrimSpace(in.GetCategory()); c != "" {
			cat = constants.Category(strings.ToLower(c))
			if !constants.IsValid(string(cat)) {
				s.logger.Error("unknown category in manual item", "index", i, "category", c)
				return nil, common.InvalidArgumentError(
					"unknown category " + c + "; valid: " + strings.Join(constants.AsStringSlice(), ", "))
			}
		}
		items = append(items, entity.LineItem{Name: name, Price: in.GetPrice(), Category: cat})
	}

	report, err := s.pipeline.RunManual(items, req.GetStore())
	if err != nil {
		s.logger.Error("failed to score manual items", "error", err)
		return nil, common.InternalError("score manual failed")
	}

	if err := s.finishReport(ctx, report, req.GetPersist()); err != nil {
		return nil, err
	}
	return &v1.ScoreManualResponse{Report: utils.ToPBReport(report)}, nil
}

// finishReport applies percentile standing against stored score history and
// optionally persists the report. History failures degrade to the empty
// population rather than failing the score call.
func (s *CarbonScoreServer) finishReport(ctx context.Context, report *entity.Report, persist bool) error {
	population, err := s.reports.EcoScoreHistory(ctx, s.historyLimit)
	if err != nil {
		s.logger.Warn("score history unavailable, using empty population", "error", err)
		population = nil
	}
	s.pipeline.ApplyStanding(report, population)

	if persist {
		if err := s.reports.SaveReport(ctx, report); err != nil {
			s.logger.Error("failed to save report", "report_id", report.ID, "error", err)
			return common.InternalError("save report failed")
		}
	}
	return nil
}
