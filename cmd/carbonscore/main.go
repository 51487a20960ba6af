package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrace/carboncore/internal/async"
	"github.com/ecotrace/carboncore/internal/config"
	"github.com/ecotrace/carboncore/internal/entity"
	"github.com/ecotrace/carboncore/internal/export"
	"github.com/ecotrace/carboncore/internal/pipeline"
	"github.com/ecotrace/carboncore/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of .txt receipt documents (or pass files as args)")
		out         = flag.String("out", "", "output JSON file path (defaults to stdout)")
		xlsxOut     = flag.String("xlsx", "", "optional XLSX workbook output path")
		dbURL       = flag.String("db", "", "database DSN to persist reports (defaults to in-memory)")
		factorsPath = flag.String("factors", "", "JSON calibration overrides")
		store       = flag.String("store", "", "store name hint applied to every document")
		workers     = flag.Int("workers", 4, "scoring workers")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	files := flag.Args()
	if *dir != "" {
		matches, err := filepath.Glob(filepath.Join(*dir, "*.txt"))
		if err != nil {
			printError("Error: bad --dir: %v\n", err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		printError("Error: no input files; pass file arguments or --dir\n")
		os.Exit(1)
	}
	sort.Strings(files)

	factors, err := config.LoadFactors(*factorsPath)
	if err != nil {
		printError("Error: loading factors: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dsn := *dbURL
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := repository.Open(ctx, repository.Config{DSN: dsn, DialTimeout: 3 * time.Second}, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := repository.Migrate(ctx, db); err != nil {
		printError("Error: migrating database: %v\n", err)
		os.Exit(1)
	}
	reports := repository.NewReportRepository(db, logger)

	p := pipeline.New(factors, logger)

	type outcome struct {
		Path   string         `json:"path"`
		Report *entity.Report `json:"report,omitempty"`
		Error  string         `json:"error,omitempty"`
	}
	var mu sync.Mutex
	results := map[uuid.UUID]*outcome{}

	queue := async.NewScoreQueue(func(ctx context.Context, job async.Job) error {
		report, err := p.Run(job.Text, job.StoreHint)
		if err != nil {
			mu.Lock()
			results[job.ID].Error = err.Error()
			mu.Unlock()
			return err
		}

		// standing is computed against reports scored before this one
		mu.Lock()
		population, histErr := reports.EcoScoreHistory(ctx, 500)
		if histErr != nil {
			population = nil
		}
		p.ApplyStanding(report, population)
		saveErr := reports.SaveReport(ctx, report)
		results[job.ID].Report = report
		mu.Unlock()
		return saveErr
	}, logger, async.WithWorkers(*workers))

	for _, path := range files {
		raw, err := os.ReadFile(path)
		job := async.Job{ID: uuid.New(), Path: path, StoreHint: *store, SubmittedAt: time.Now()}
		mu.Lock()
		results[job.ID] = &outcome{Path: path}
		mu.Unlock()
		if err != nil {
			mu.Lock()
			results[job.ID].Error = err.Error()
			mu.Unlock()
			continue
		}
		job.Text = string(raw)
		_ = queue.Enqueue(ctx, job)
	}
	queue.Shutdown(ctx)

	ordered := make([]*outcome, 0, len(results))
	for _, o := range results {
		ordered = append(ordered, o)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Path < ordered[j].Path })

	payload, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		printError("Error: encoding results: %v\n", err)
		os.Exit(1)
	}
	if *out == "" {
		fmt.Println(string(payload))
	} else if err := os.WriteFile(*out, payload, 0644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	if *xlsxOut != "" {
		exporter := export.NewService(reports, logger)
		xlsx, err := exporter.ExportReportsXLSX(ctx, nil, nil)
		if err != nil {
			printError("Error: exporting workbook: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, xlsx, 0644); err != nil {
			printError("Error: writing %s: %v\n", *xlsxOut, err)
			os.Exit(1)
		}
	}

	failures := 0
	for _, o := range ordered {
		if o.Error != "" {
			failures++
		}
	}
	if failures > 0 {
		printError("%d of %d documents failed\n", failures, len(ordered))
		if failures == len(ordered) {
			os.Exit(1)
		}
	}
}
