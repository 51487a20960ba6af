package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/entity"
	"github.com/ecotrace/carboncore/internal/repository"
)

func newTestService(t *testing.T) (*Service, repository.ReportRepository) {
	t.Helper()
	ctx := context.Background()
	db, err := repository.Open(ctx, repository.Config{DSN: ":memory:"}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, repository.Migrate(ctx, db))
	repo := repository.NewReportRepository(db, slog.Default())
	return NewService(repo, slog.Default()), repo
}

func TestExportReportsXLSX(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)
	ctx := context.Background()

	rep := &entity.Report{
		ID:               uuid.New(),
		Store:            "Trader Joes",
		StoreRating:      4.0,
		TotalEmissionsKg: 9.5,
		Grade:            "B",
		EcoScore:         640,
		Percentile:       80,
		Tier:             constants.Platinum,
		Items: []entity.ItemBreakdown{
			{Name: "Ground Beef", Category: constants.Beef, Emission: 8.1, Price: 9.99},
			{Name: "Bananas", Category: constants.Fruits, Emission: 0.4, Price: 1.29},
		},
		CreatedAt: time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveReport(ctx, rep))

	raw, err := svc.ExportReportsXLSX(ctx, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Store", rows[0][1])
	require.Equal(t, "Trader Joes", rows[1][1])
	require.Equal(t, "B", rows[1][7])
	require.Contains(t, rows[1][11], "Ground Beef")
}

func TestExportReportsXLSXWindowExcludes(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t)
	ctx := context.Background()

	rep := &entity.Report{
		ID:        uuid.New(),
		Store:     "Aldi",
		Grade:     "A",
		Tier:      constants.Silver,
		CreatedAt: time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveReport(ctx, rep))

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	raw, err := svc.ExportReportsXLSX(ctx, &from, &to)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
