// Package score converts aggregate emissions into grades, equivalents, and
// the percentile-based reward tier.
package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/ecotrace/carboncore/constants"
)

// GradeThreshold grades average per-item emission below UpperAvgKg. The
// final threshold must be +Inf so the ladder covers [0, inf).
type GradeThreshold struct {
	UpperAvgKg float64 `json:"upperBoundAvgEmission"`
	Letter     string  `json:"gradeLabel"`
}

// TierRange buckets a percentile in [Min, Max). Ranges are declared from the
// top tier down and must tile [0, 100] with no gaps; the top range is closed
// at 100.
type TierRange struct {
	Tier  constants.Tier `json:"name"`
	Min   float64        `json:"min"`
	Max   float64        `json:"max"`
	Color string         `json:"color"`
}

// Config holds the scoring calibration. MilesPerKg and KgPerTreeYear drive
// the derived equivalents; EcoScoreAvgCap is the average per-item emission
// at which the 0-1000 EcoScore bottoms out.
type Config struct {
	GradeThresholds []GradeThreshold
	TierRanges      []TierRange
	MilesPerKg      float64
	KgPerTreeYear   float64
	EcoScoreAvgCap  float64
}

// Validate rejects ladders that would leave some input ungraded or some
// percentile untiered.
func (c Config) Validate() error {
	if len(c.GradeThresholds) == 0 {
		return fmt.Errorf("score config: no grade thresholds")
	}
	prev := math.Inf(-1)
	for _, gt := range c.GradeThresholds {
		if gt.UpperAvgKg <= prev {
			return fmt.Errorf("score config: grade thresholds not strictly increasing at %q", gt.Letter)
		}
		prev = gt.UpperAvgKg
	}
	if !math.IsInf(c.GradeThresholds[len(c.GradeThresholds)-1].UpperAvgKg, 1) {
		return fmt.Errorf("score config: grade ladder must end with an unbounded threshold")
	}

	if len(c.TierRanges) == 0 {
		return fmt.Errorf("score config: no tier ranges")
	}
	ranges := make([]TierRange, len(c.TierRanges))
	copy(ranges, c.TierRanges)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Min < ranges[j].Min })
	if ranges[0].Min != 0 {
		return fmt.Errorf("score config: tier ranges must start at 0")
	}
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Min != ranges[i-1].Max {
			return fmt.Errorf("score config: tier gap between %q and %q", ranges[i-1].Tier, ranges[i].Tier)
		}
	}
	if ranges[len(ranges)-1].Max != 100 {
		return fmt.Errorf("score config: tier ranges must end at 100")
	}
	if c.MilesPerKg <= 0 || c.KgPerTreeYear <= 0 || c.EcoScoreAvgCap <= 0 {
		return fmt.Errorf("score config: equivalence constants must be positive")
	}
	return nil
}

type Aggregator struct {
	cfg Config
}

func New(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Grade returns the letter for an average per-item emission. Non-increasing
// in avgKg: lower emission always grades at least as well.
func (a *Aggregator) Grade(avgKg float64) string {
	for _, gt := range a.cfg.GradeThresholds {
		if avgKg < gt.UpperAvgKg {
			return gt.Letter
		}
	}
	// unreachable with a validated ladder
	return a.cfg.GradeThresholds[len(a.cfg.GradeThresholds)-1].Letter
}

// MilesEquivalent converts total kg CO2e into miles driven.
func (a *Aggregator) MilesEquivalent(totalKg float64) float64 {
	return totalKg * a.cfg.MilesPerKg
}

// TreesNeeded converts total kg CO2e into trees absorbing for a year.
func (a *Aggregator) TreesNeeded(totalKg float64) float64 {
	return totalKg / a.cfg.KgPerTreeYear
}

// EcoScore maps average per-item emission onto 0-1000, higher is better.
// Zero emission scores 1000; the configured cap and beyond scores 0.
func (a *Aggregator) EcoScore(avgKg float64) int {
	frac := 1 - avgKg/a.cfg.EcoScoreAvgCap
	s := int(math.Round(1000 * frac))
	if s < 0 {
		return 0
	}
	if s > 1000 {
		return 1000
	}
	return s
}

// Percentile places an EcoScore within a population of prior scores as the
// share strictly below it, in [0, 100]. An empty population yields 50.
func Percentile(population []int, ecoScore int) float64 {
	if len(population) == 0 {
		return 50
	}
	below := 0
	for _, s := range population {
		if s < ecoScore {
			below++
		}
	}
	return 100 * float64(below) / float64(len(population))
}

// TierFor buckets a percentile into its reward tier. Out-of-range inputs
// are clamped to [0, 100] before bucketing, so exactly one tier matches.
func (a *Aggregator) TierFor(percentile float64) TierRange {
	p := math.Max(0, math.Min(100, percentile))
	best := a.cfg.TierRanges[len(a.cfg.TierRanges)-1]
	for _, tr := range a.cfg.TierRanges {
		if p >= tr.Min && (p < tr.Max || tr.Max == 100) {
			return tr
		}
	}
	return best
}
