package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
)

func testConfig() Config {
	return Config{
		GradeThresholds: []GradeThreshold{
			{UpperAvgKg: 2, Letter: "A+"},
			{UpperAvgKg: 4, Letter: "A"},
			{UpperAvgKg: 6, Letter: "B"},
			{UpperAvgKg: 10, Letter: "C"},
			{UpperAvgKg: math.Inf(1), Letter: "D"},
		},
		TierRanges: []TierRange{
			{Tier: constants.Diamond, Min: 95, Max: 100, Color: "#B9F2FF"},
			{Tier: constants.Platinum, Min: 80, Max: 95, Color: "#E5E4E2"},
			{Tier: constants.Gold, Min: 50, Max: 80, Color: "#FFD700"},
			{Tier: constants.Silver, Min: 25, Max: 50, Color: "#C0C0C0"},
			{Tier: constants.Bronze, Min: 0, Max: 25, Color: "#CD7F32"},
		},
		MilesPerKg:     1 / 0.404,
		KgPerTreeYear:  21,
		EcoScoreAvgCap: 12,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, testConfig().Validate())

	noInf := testConfig()
	noInf.GradeThresholds = noInf.GradeThresholds[:4]
	require.Error(t, noInf.Validate())

	gap := testConfig()
	gap.TierRanges[2].Max = 79 // Gold now ends before Platinum starts
	require.Error(t, gap.Validate())

	unordered := testConfig()
	unordered.GradeThresholds[1].UpperAvgKg = 1
	require.Error(t, unordered.Validate())
}

func TestGrade(t *testing.T) {
	t.Parallel()

	a := New(testConfig())
	testCases := []struct {
		avg      float64
		expected string
	}{
		{0, "A+"},
		{1.99, "A+"},
		{2, "A"},
		{3.5, "A"},
		{5.2, "B"},
		{9.99, "C"},
		{10, "D"},
		{250, "D"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, a.Grade(tc.avg), "avg %v", tc.avg)
	}
}

// Grade never improves as average emission rises.
func TestGradeMonotonic(t *testing.T) {
	t.Parallel()

	a := New(testConfig())
	order := map[string]int{"A+": 0, "A": 1, "B": 2, "C": 3, "D": 4}
	prev := -1
	for avg := 0.0; avg < 20; avg += 0.25 {
		rank := order[a.Grade(avg)]
		require.GreaterOrEqual(t, rank, prev, "avg %v", avg)
		prev = rank
	}
}

func TestEquivalents(t *testing.T) {
	t.Parallel()

	a := New(testConfig())
	require.InDelta(t, 38.6868, a.MilesEquivalent(15.6295), 1e-3)
	require.InDelta(t, 0.7443, a.TreesNeeded(15.6295), 1e-3)
}

func TestEcoScore(t *testing.T) {
	t.Parallel()

	a := New(testConfig())
	require.Equal(t, 1000, a.EcoScore(0))
	require.Equal(t, 500, a.EcoScore(6))
	require.Equal(t, 0, a.EcoScore(12))
	require.Equal(t, 0, a.EcoScore(40)) // clamped
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	require.Equal(t, 50.0, Percentile(nil, 700))
	pop := []int{100, 200, 300, 400}
	require.Equal(t, 100.0, Percentile(pop, 500))
	require.Equal(t, 0.0, Percentile(pop, 50))
	require.Equal(t, 50.0, Percentile(pop, 250))
	// equal scores do not count as "below"
	require.Equal(t, 25.0, Percentile(pop, 200))
}

func TestTierFor(t *testing.T) {
	t.Parallel()

	a := New(testConfig())
	testCases := []struct {
		percentile float64
		expected   constants.Tier
	}{
		{0, constants.Bronze},
		{24.99, constants.Bronze},
		{25, constants.Silver},
		{49.9, constants.Silver},
		{50, constants.Gold},
		{80, constants.Platinum},
		{94.99, constants.Platinum},
		{95, constants.Diamond},
		{100, constants.Diamond},
		{-5, constants.Bronze},   // clamped
		{140, constants.Diamond}, // clamped
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, a.TierFor(tc.percentile).Tier, "percentile %v", tc.percentile)
	}
}

// Every percentile in [0, 100] lands in exactly one range.
func TestTierRangesCoverDomain(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	for p := 0.0; p <= 100.0; p += 0.01 {
		matches := 0
		for _, tr := range cfg.TierRanges {
			if p >= tr.Min && (p < tr.Max || tr.Max == 100) {
				matches++
			}
		}
		require.Equal(t, 1, matches, "percentile %v", p)
	}
}
