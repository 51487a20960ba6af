// Package pipeline chains the six scoring stages for one document: text
// normalization, line filtering, item extraction, classification, emission
// estimation, and score aggregation. Each stage owns its input and hands an
// immutable value forward; a Pipeline holds no per-run state, so one
// instance may score documents from many goroutines at once.
package pipeline

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrace/carboncore/internal/classify"
	"github.com/ecotrace/carboncore/internal/config"
	"github.com/ecotrace/carboncore/internal/entity"
	"github.com/ecotrace/carboncore/internal/estimate"
	"github.com/ecotrace/carboncore/internal/extract"
	"github.com/ecotrace/carboncore/internal/linefilter"
	"github.com/ecotrace/carboncore/internal/score"
	"github.com/ecotrace/carboncore/internal/textnorm"
)

// Document-level failures. Both abort the run; the caller is expected to
// fall back to manual entry rather than treat the document as zero-emission.
var (
	ErrEmptyInput = errors.New("document text is empty after normalization")
	ErrNoItems    = errors.New("no purchasable items found in document")
)

type Pipeline struct {
	Classifier classify.Classifier
	Estimator  *estimate.Estimator
	Aggregator *score.Aggregator
	Log        *slog.Logger
}

// New wires the default stages from a calibration set.
func New(factors config.Factors, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Classifier: classify.NewKeywordClassifier(),
		Estimator:  estimate.New(factors.Estimate),
		Aggregator: score.New(factors.Score),
		Log:        log,
	}
}

// Run scores one document. storeHint names the store when the caller knows
// it; otherwise the first surviving non-item line is taken as the store
// header. The returned report carries no percentile standing; callers with
// access to score history apply it via ApplyStanding.
func (p *Pipeline) Run(raw, storeHint string) (*entity.Report, error) {
	start := time.Now()

	cleaned := textnorm.Normalize(raw)
	if cleaned == "" {
		return nil, ErrEmptyInput
	}

	lines := linefilter.Filter(cleaned)
	items, dropped := extract.ParseItems(lines)
	if len(items) == 0 {
		p.Log.Warn("pipeline.score.no_items", "lines", len(lines), "dropped", dropped)
		return nil, ErrNoItems
	}

	for i := range items {
		items[i].Category = p.Classifier.Classify(items[i].Name)
	}

	store := storeHint
	if store == "" {
		store = inferStore(lines)
	}

	est := p.Estimator.Estimate(items, store)
	report := p.buildReport(est, store, dropped)

	p.Log.Info("pipeline.score.ok",
		"report_id", report.ID,
		"store", store,
		"items", len(items),
		"dropped", dropped,
		"total_kg", report.TotalEmissionsKg,
		"grade", report.Grade,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// RunManual feeds already-structured items through the estimator and
// aggregator, the fallback path when OCR text was unparseable.
func (p *Pipeline) RunManual(items []entity.LineItem, store string) (*entity.Report, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for i := range items {
		if items[i].Category == "" {
			items[i].Category = p.Classifier.Classify(items[i].Name)
		}
	}
	est := p.Estimator.Estimate(items, store)
	return p.buildReport(est, store, 0), nil
}

// ApplyStanding fills in the report's percentile and tier against a
// population of prior EcoScores.
func (p *Pipeline) ApplyStanding(report *entity.Report, population []int) {
	report.Percentile = score.Percentile(population, report.EcoScore)
	report.Tier = p.Aggregator.TierFor(report.Percentile).Tier
}

func (p *Pipeline) buildReport(est estimate.Result, store string, dropped int) *entity.Report {
	// highest-impact items first; ties keep extraction order
	records := make([]entity.EmissionRecord, len(est.Records))
	copy(records, est.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].EmissionKg > records[j].EmissionKg
	})

	breakdown := make([]entity.ItemBreakdown, 0, len(records))
	for _, r := range records {
		breakdown = append(breakdown, entity.ItemBreakdown{
			Name:     r.Item.Name,
			Category: r.Item.Category,
			Emission: r.EmissionKg,
			Price:    r.Item.Price,
		})
	}

	avg := est.TotalKg / float64(len(est.Records))
	return &entity.Report{
		ID:                   uuid.New(),
		Store:                store,
		StoreRating:          est.StoreRating,
		DefaultRatingApplied: est.DefaultRatingApplied,
		TotalEmissionsKg:     est.TotalKg,
		PackagingEmissionKg:  est.PackagingKg,
		TransportEmissionKg:  est.TransportKg,
		MilesEquivalent:      p.Aggregator.MilesEquivalent(est.TotalKg),
		TreesNeeded:          p.Aggregator.TreesNeeded(est.TotalKg),
		Grade:                p.Aggregator.Grade(avg),
		EcoScore:             p.Aggregator.EcoScore(avg),
		Items:                breakdown,
		DroppedLines:         dropped,
		CreatedAt:            time.Now().UTC(),
	}
}

// inferStore picks the first filtered line that carries no price token,
// which on receipts is almost always the store header.
func inferStore(lines []string) string {
	for _, l := range lines {
		if !extract.HasPriceToken(l) {
			return l
		}
	}
	return ""
}
