package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/common"
	"github.com/ecotrace/carboncore/internal/entity"
)

// ReportRepository persists scored reports and serves the score history the
// percentile standing is computed from.
type ReportRepository interface {
	SaveReport(ctx context.Context, r *entity.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	ListReports(ctx context.Context, from, to *time.Time) ([]*entity.Report, error)
	EcoScoreHistory(ctx context.Context, limit int) ([]int, error)
}

type sqlReportRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewReportRepository(db *DB, logger *slog.Logger) ReportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sqlReportRepository{db: db, logger: logger}
}

func (r *sqlReportRepository) SaveReport(ctx context.Context, rep *entity.Report) error {
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO report (id, store, store_rating, default_rating_applied,
			total_kg, packaging_kg, transport_kg, miles_equivalent, trees_needed,
			grade, eco_score, percentile, tier, dropped_lines, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		rep.ID.String(), rep.Store, rep.StoreRating, rep.DefaultRatingApplied,
		rep.TotalEmissionsKg, rep.PackagingEmissionKg, rep.TransportEmissionKg,
		rep.MilesEquivalent, rep.TreesNeeded, rep.Grade, rep.EcoScore,
		rep.Percentile, string(rep.Tier), rep.DroppedLines,
		rep.CreatedAt.UTC().UnixMilli(), // unix millis so both drivers agree
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	for i, item := range rep.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO report_item (report_id, position, name, category, emission_kg, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			rep.ID.String(), i, item.Name, string(item.Category), item.Emission, item.Price,
		)
		if err != nil {
			return fmt.Errorf("insert report item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit report: %w", err)
	}
	r.logger.Info("repository.report.saved", "report_id", rep.ID, "items", len(rep.Items))
	return nil
}

func (r *sqlReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	row := r.db.SQL.QueryRowContext(ctx,
		`SELECT id, store, store_rating, default_rating_applied, total_kg,
			packaging_kg, transport_kg, miles_equivalent, trees_needed, grade,
			eco_score, percentile, tier, dropped_lines, created_at
		 FROM report WHERE id = $1`, id.String())

	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	rows, err := r.db.SQL.QueryContext(ctx,
		`SELECT name, category, emission_kg, price FROM report_item
		 WHERE report_id = $1 ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("get report items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.ItemBreakdown
		var cat string
		if err := rows.Scan(&it.Name, &cat, &it.Emission, &it.Price); err != nil {
			return nil, fmt.Errorf("scan report item: %w", err)
		}
		it.Category = constants.Category(cat)
		rep.Items = append(rep.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report items: %w", err)
	}
	return rep, nil
}

func (r *sqlReportRepository) ListReports(ctx context.Context, from, to *time.Time) ([]*entity.Report, error) {
	query := `SELECT id, store, store_rating, default_rating_applied, total_kg,
			packaging_kg, transport_kg, miles_equivalent, trees_needed, grade,
			eco_score, percentile, tier, dropped_lines, created_at
		 FROM report`
	var args []any
	switch {
	case from != nil && to != nil:
		query += ` WHERE created_at >= $1 AND created_at <= $2`
		args = append(args, from.UTC().UnixMilli(), to.UTC().UnixMilli())
	case from != nil:
		query += ` WHERE created_at >= $1`
		args = append(args, from.UTC().UnixMilli())
	case to != nil:
		query += ` WHERE created_at <= $1`
		args = append(args, to.UTC().UnixMilli())
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.SQL.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []*entity.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}

func (r *sqlReportRepository) EcoScoreHistory(ctx context.Context, limit int) ([]int, error) {
	rows, err := r.db.SQL.QueryContext(ctx,
		`SELECT eco_score FROM report ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return scores, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*entity.Report, error) {
	var rep entity.Report
	var id, tier string
	var createdMillis int64
	if err := row.Scan(&id, &rep.Store, &rep.StoreRating, &rep.DefaultRatingApplied,
		&rep.TotalEmissionsKg, &rep.PackagingEmissionKg, &rep.TransportEmissionKg,
		&rep.MilesEquivalent, &rep.TreesNeeded, &rep.Grade, &rep.EcoScore,
		&rep.Percentile, &tier, &rep.DroppedLines, &createdMillis); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse report id: %w", err)
	}
	rep.ID = parsed
	rep.Tier = constants.Tier(tier)
	rep.CreatedAt = time.UnixMilli(createdMillis).UTC()
	return &rep, nil
}
