// Package config assembles the calibration tables the pipeline stages are
// constructed with. Everything here is data, not behavior: factors ship as
// defaults and can be recalibrated from a JSON file without code changes.
package config

import (
	"math"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/estimate"
	"github.com/ecotrace/carboncore/internal/score"
)

// Factors is the full calibration set for one pipeline instance.
type Factors struct {
	Estimate estimate.Config
	Score    score.Config
}

// Defaults returns the built-in calibration. Category factors are kg CO2e
// per unit; store ratings are 1-5 sustainability scores.
func Defaults() Factors {
	return Factors{
		Estimate: estimate.Config{
			CategoryFactors: map[constants.Category]float64{
				constants.Beef:        27.0,
				constants.Lamb:        39.2,
				constants.Pork:        12.1,
				constants.Chicken:     6.9,
				constants.Fish:        6.0,
				constants.Cheese:      13.5,
				constants.Milk:        1.9,
				constants.Eggs:        4.8,
				constants.Rice:        2.7,
				constants.Beans:       2.0,
				constants.Vegetables:  2.0,
				constants.Fruits:      1.1,
				constants.Bread:       1.6,
				constants.Pasta:       1.0,
				constants.Coffee:      16.5,
				constants.Chocolate:   19.0,
				constants.Wine:        1.8,
				constants.Beer:        0.9,
				constants.Soda:        0.3,
				constants.Snacks:      3.5,
				constants.Frozen:      4.0,
				constants.Processed:   5.0,
				constants.Organic:     1.5,
				constants.Plastic:     6.0,
				constants.Electronics: 50.0,
				constants.Clothing:    20.0,
				constants.Cleaning:    3.0,
				constants.Default:     3.0,
			},
			StoreRatings: []estimate.StoreRating{
				{Name: "whole foods", Rating: 4},
				{Name: "trader joes", Rating: 4},
				{Name: "sprouts", Rating: 4},
				{Name: "target", Rating: 3},
				{Name: "aldi", Rating: 3},
				{Name: "walmart", Rating: 2},
				{Name: "costco", Rating: 2},
				{Name: "kroger", Rating: 2},
				{Name: "safeway", Rating: 2},
				{Name: "publix", Rating: 2},
			},
			DefaultRating:   2.5,
			OrganicDiscount: 0.7,
			PackagingRate:   0.05,
			TransportRate:   0.10,
		},
		Score: score.Config{
			GradeThresholds: []score.GradeThreshold{
				{UpperAvgKg: 2, Letter: "A+"},
				{UpperAvgKg: 4, Letter: "A"},
				{UpperAvgKg: 6, Letter: "B"},
				{UpperAvgKg: 10, Letter: "C"},
				{UpperAvgKg: math.Inf(1), Letter: "D"},
			},
			TierRanges: []score.TierRange{
				{Tier: constants.Diamond, Min: 95, Max: 100, Color: "#B9F2FF"},
				{Tier: constants.Platinum, Min: 80, Max: 95, Color: "#E5E4E2"},
				{Tier: constants.Gold, Min: 50, Max: 80, Color: "#FFD700"},
				{Tier: constants.Silver, Min: 25, Max: 50, Color: "#C0C0C0"},
				{Tier: constants.Bronze, Min: 0, Max: 25, Color: "#CD7F32"},
			},
			MilesPerKg:     1 / 0.404,
			KgPerTreeYear:  21,
			EcoScoreAvgCap: 12,
		},
	}
}
