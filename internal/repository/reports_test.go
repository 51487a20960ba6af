package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/common"
	"github.com/ecotrace/carboncore/internal/entity"
)

func newTestRepo(t *testing.T) ReportRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, Config{DSN: ":memory:"}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, Migrate(ctx, db))
	return NewReportRepository(db, slog.Default())
}

func sampleReport(ecoScore int, createdAt time.Time) *entity.Report {
	return &entity.Report{
		ID:                   uuid.New(),
		Store:                "Whole Foods Market",
		StoreRating:          4.0,
		TotalEmissionsKg:     15.62946,
		PackagingEmissionKg:  0.6766,
		TransportEmissionKg:  1.42086,
		MilesEquivalent:      38.686,
		TreesNeeded:          0.74426,
		Grade:                "B",
		EcoScore:             ecoScore,
		Percentile:           50,
		Tier:                 constants.Gold,
		Items: []entity.ItemBreakdown{
			{Name: "Grass-Fed Ground Beef", Category: constants.Beef, Emission: 10.8, Price: 15.99},
			{Name: "Organic Chicken Breast", Category: constants.Chicken, Emission: 1.932, Price: 12.99},
		},
		CreatedAt: createdAt,
	}
}

func TestSaveAndGetReport(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	want := sampleReport(566, time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, repo.SaveReport(ctx, want))

	got, err := repo.GetByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Store, got.Store)
	require.Equal(t, want.StoreRating, got.StoreRating)
	require.Equal(t, want.EcoScore, got.EcoScore)
	require.Equal(t, want.Tier, got.Tier)
	require.Equal(t, want.CreatedAt, got.CreatedAt)
	require.Len(t, got.Items, 2)
	require.Equal(t, want.Items[0].Name, got.Items[0].Name)
	require.Equal(t, want.Items[1].Category, got.Items[1].Category)
	require.InDelta(t, want.Items[0].Emission, got.Items[0].Emission, 1e-9)
}

func TestGetReportNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestListReportsWindow(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rep := sampleReport(400+i, base.AddDate(0, 0, i))
		require.NoError(t, repo.SaveReport(ctx, rep))
	}

	all, err := repo.ListReports(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	require.Equal(t, 402, all[0].EcoScore)
	require.Equal(t, 400, all[2].EcoScore)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1).Add(-time.Millisecond)
	window, err := repo.ListReports(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, window, 1)
	require.Equal(t, 401, window[0].EcoScore)

	onlyFrom, err := repo.ListReports(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, onlyFrom, 2)
}

func TestEcoScoreHistory(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, s := range []int{100, 900, 300, 700} {
		require.NoError(t, repo.SaveReport(ctx, sampleReport(s, base.Add(time.Duration(i)*time.Hour))))
	}

	scores, err := repo.EcoScoreHistory(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, []int{700, 300, 900}, scores)

	scores, err = repo.EcoScoreHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scores, 4)
}
