// Package estimate turns classified line items into kg-CO2e figures.
package estimate

import (
	"strings"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/entity"
)

// StoreRating is one substring-keyed sustainability rating (1-5). Matching
// walks the slice in order, so more specific names belong first.
type StoreRating struct {
	Name   string  `json:"store"`
	Rating float64 `json:"rating"`
}

// Config carries every calibration constant the estimator uses. Values are
// injected at construction so runs with different tables never race.
type Config struct {
	CategoryFactors map[constants.Category]float64
	StoreRatings    []StoreRating
	DefaultRating   float64
	OrganicDiscount float64
	PackagingRate   float64
	TransportRate   float64
}

// Result aggregates the per-item records and document totals of one run.
type Result struct {
	Records              []entity.EmissionRecord
	SubtotalKg           float64
	PackagingKg          float64
	TransportKg          float64
	TotalKg              float64
	StoreRating          float64
	DefaultRatingApplied bool
}

type Estimator struct {
	cfg Config
}

func New(cfg Config) *Estimator {
	return &Estimator{cfg: cfg}
}

// Estimate computes adjusted per-item emissions and document totals.
// Per item: category factor, times the organic discount when the name
// mentions organic, times the store factor. Packaging overhead applies to
// the item subtotal; transport overhead applies to subtotal plus packaging.
func (e *Estimator) Estimate(items []entity.LineItem, storeName string) Result {
	rating, matched := e.lookupRating(storeName)

	// lower rating => higher factor => more emissions attributed
	storeFactor := (6 - rating) / 5

	res := Result{
		Records:              make([]entity.EmissionRecord, 0, len(items)),
		StoreRating:          rating,
		DefaultRatingApplied: !matched,
	}
	for _, item := range items {
		base := e.baseFactor(item.Category)
		adjusted := base
		if strings.Contains(strings.ToLower(item.Name), "organic") {
			adjusted *= e.cfg.OrganicDiscount
		}
		adjusted *= storeFactor
		res.Records = append(res.Records, entity.EmissionRecord{
			Item:         item,
			BaseFactorKg: base,
			EmissionKg:   adjusted,
		})
		res.SubtotalKg += adjusted
	}

	res.PackagingKg = res.SubtotalKg * e.cfg.PackagingRate
	res.TransportKg = (res.SubtotalKg + res.PackagingKg) * e.cfg.TransportRate
	res.TotalKg = res.SubtotalKg + res.PackagingKg + res.TransportKg
	return res
}

func (e *Estimator) baseFactor(cat constants.Category) float64 {
	if f, ok := e.cfg.CategoryFactors[cat]; ok {
		return f
	}
	return e.cfg.CategoryFactors[constants.Default]
}

// lookupRating matches the store name case-insensitively against the rating
// table, first substring hit wins. The second return reports whether a
// configured entry matched, as opposed to the default rating applying.
func (e *Estimator) lookupRating(storeName string) (float64, bool) {
	name := strings.ToLower(strings.TrimSpace(storeName))
	if name == "" {
		return e.cfg.DefaultRating, false
	}
	for _, sr := range e.cfg.StoreRatings {
		if strings.Contains(name, strings.ToLower(sr.Name)) {
			return sr.Rating, true
		}
	}
	return e.cfg.DefaultRating, false
}
