package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/estimate"
	"github.com/ecotrace/carboncore/internal/score"
)

// fileFactors mirrors the JSON override file. Pointer fields distinguish
// "absent, keep the default" from an explicit zero.
type fileFactors struct {
	CategoryEmissionFactors    map[string]float64      `json:"categoryEmissionFactors"`
	StoreSustainabilityRatings []estimate.StoreRating  `json:"storeSustainabilityRatings"`
	DefaultStoreRating         *float64                `json:"defaultStoreRating"`
	OrganicDiscountFactor      *float64                `json:"organicDiscountFactor"`
	PackagingRate              *float64                `json:"packagingRate"`
	TransportRate              *float64                `json:"transportRate"`
	MilesPerKgCO2e             *float64                `json:"milesPerKgCO2e"`
	KgCO2ePerTreeYear          *float64                `json:"kgCO2ePerTreeYear"`
	EcoScoreAvgCap             *float64                `json:"ecoScoreAvgCap"`
	GradeThresholds            []fileGradeThreshold    `json:"gradeThresholds"`
	TierRanges                 []score.TierRange       `json:"tierRanges"`
}

// fileGradeThreshold allows the last ladder entry to omit its bound, which
// stands for "everything above".
type fileGradeThreshold struct {
	UpperBoundAvgEmission *float64 `json:"upperBoundAvgEmission"`
	GradeLabel            string   `json:"gradeLabel"`
}

// LoadFactors reads a JSON overrides file, validates it against the factors
// schema, and merges it over the defaults. An empty path returns defaults
// unchanged.
func LoadFactors(path string) (Factors, error) {
	factors := Defaults()
	if path == "" {
		return factors, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Factors{}, fmt.Errorf("read factors file: %w", err)
	}
	if err := validateAgainstSchema(buildFactorsSchema(), raw); err != nil {
		return Factors{}, err
	}

	var ff fileFactors
	if err := json.Unmarshal(raw, &ff); err != nil {
		return Factors{}, fmt.Errorf("decode factors file: %w", err)
	}

	if len(ff.CategoryEmissionFactors) > 0 {
		for name, v := range ff.CategoryEmissionFactors {
			if !constants.IsValid(name) {
				return Factors{}, fmt.Errorf("factors file: unknown category %q", name)
			}
			factors.Estimate.CategoryFactors[constants.Category(name)] = v
		}
	}
	if len(ff.StoreSustainabilityRatings) > 0 {
		factors.Estimate.StoreRatings = ff.StoreSustainabilityRatings
	}
	if ff.DefaultStoreRating != nil {
		factors.Estimate.DefaultRating = *ff.DefaultStoreRating
	}
	if ff.OrganicDiscountFactor != nil {
		factors.Estimate.OrganicDiscount = *ff.OrganicDiscountFactor
	}
	if ff.PackagingRate != nil {
		factors.Estimate.PackagingRate = *ff.PackagingRate
	}
	if ff.TransportRate != nil {
		factors.Estimate.TransportRate = *ff.TransportRate
	}
	if ff.MilesPerKgCO2e != nil {
		factors.Score.MilesPerKg = *ff.MilesPerKgCO2e
	}
	if ff.KgCO2ePerTreeYear != nil {
		factors.Score.KgPerTreeYear = *ff.KgCO2ePerTreeYear
	}
	if ff.EcoScoreAvgCap != nil {
		factors.Score.EcoScoreAvgCap = *ff.EcoScoreAvgCap
	}
	if len(ff.GradeThresholds) > 0 {
		ladder := make([]score.GradeThreshold, 0, len(ff.GradeThresholds))
		for _, gt := range ff.GradeThresholds {
			bound := math.Inf(1)
			if gt.UpperBoundAvgEmission != nil {
				bound = *gt.UpperBoundAvgEmission
			}
			ladder = append(ladder, score.GradeThreshold{UpperAvgKg: bound, Letter: gt.GradeLabel})
		}
		factors.Score.GradeThresholds = ladder
	}
	if len(ff.TierRanges) > 0 {
		factors.Score.TierRanges = ff.TierRanges
	}

	if err := factors.Score.Validate(); err != nil {
		return Factors{}, err
	}
	return factors, nil
}
