package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ecotrace/carboncore/internal/repository"
)

// Service is a tiny façade over the report repository that produces XLSX
// bytes for exports.
type Service struct {
	reports repository.ReportRepository
	logger  *slog.Logger
}

func NewService(reports repository.ReportRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, logger: logger}
}

// ExportReportsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all reports.
func (s *Service) ExportReportsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC); the to bound covers its whole day.
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	reports, err := s.reports.ListReports(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Reports"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Store",
		"Store Rating",
		"Items",
		"Total kg CO2e",
		"Packaging kg",
		"Transport kg",
		"Grade",
		"EcoScore",
		"Percentile",
		"Tier",
		"Top Item",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range reports {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		topItem := ""
		if len(r.Items) > 0 {
			// item breakdowns are stored highest-impact first
			topItem = truncate(fmt.Sprintf("%s (%.2f kg)", r.Items[0].Name, r.Items[0].Emission), 60)
		}

		write(1, r.CreatedAt.Format("2006-01-02"))
		write(2, r.Store)
		write(3, r.StoreRating)
		write(4, len(r.Items))
		write(5, r.TotalEmissionsKg)
		write(6, r.PackagingEmissionKg)
		write(7, r.TransportEmissionKg)
		write(8, r.Grade)
		write(9, r.EcoScore)
		write(10, r.Percentile)
		write(11, string(r.Tier))
		write(12, topItem)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 28) // store
	_ = f.SetColWidth(sheet, "E", "G", 14) // emissions
	_ = f.SetColWidth(sheet, "L", "L", 60) // top item

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(reports),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
