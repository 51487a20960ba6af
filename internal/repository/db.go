package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ecotrace/carboncore/internal/common"
)

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// DB wraps the sql handle together with the pgx pool when one exists, so
// Close tears down both.
type DB struct {
	SQL  *sql.DB
	pool *pgxpool.Pool
}

func (d *DB) Close() {
	_ = d.SQL.Close()
	if d.pool != nil {
		d.pool.Close()
	}
}

// Open connects to the store named by the DSN: postgres URLs go through a
// pgx pool wrapped for database/sql, anything else is treated as a SQLite
// file path (":memory:" works for tests and ephemeral runs).
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if isPostgres(cfg.DSN) {
		return openPostgres(ctx, cfg, logger)
	}
	logger.Info("opening sqlite database", "path", cfg.DSN)
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single connection: ":memory:" databases are per-connection, and file
	// databases allow one writer anyway
	db.SetMaxOpenConns(1)
	return &DB{SQL: db}, nil
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "carboncore"

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	logger.Info("successfully connected to database")
	return &DB{SQL: stdlib.OpenDBFromPool(pool), pool: pool}, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// HealthCheck pings the database within the given timeout.
func HealthCheck(ctx context.Context, db *DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.SQL.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Migrate creates the report tables when they do not exist yet. The DDL
// sticks to types both SQLite and Postgres accept.
func Migrate(ctx context.Context, db *DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS report (
			id TEXT PRIMARY KEY,
			store TEXT NOT NULL,
			store_rating DOUBLE PRECISION NOT NULL,
			default_rating_applied BOOLEAN NOT NULL,
			total_kg DOUBLE PRECISION NOT NULL,
			packaging_kg DOUBLE PRECISION NOT NULL,
			transport_kg DOUBLE PRECISION NOT NULL,
			miles_equivalent DOUBLE PRECISION NOT NULL,
			trees_needed DOUBLE PRECISION NOT NULL,
			grade TEXT NOT NULL,
			eco_score INTEGER NOT NULL,
			percentile DOUBLE PRECISION NOT NULL,
			tier TEXT NOT NULL,
			dropped_lines INTEGER NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS report_item (
			report_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			emission_kg DOUBLE PRECISION NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (report_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_created_at ON report (created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			return common.WrapError(err, "migrate")
		}
	}
	return nil
}
