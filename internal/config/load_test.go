package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
)

func writeFactors(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "factors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	f := Defaults()
	require.NoError(t, f.Score.Validate())
	require.Contains(t, f.Estimate.CategoryFactors, constants.Default)
	require.NotEmpty(t, f.Estimate.StoreRatings)
}

// Every declared category carries a default factor, so estimation never
// silently falls through to the default bucket for a known category.
func TestDefaultsCoverAllCategories(t *testing.T) {
	t.Parallel()

	factors := Defaults().Estimate.CategoryFactors
	for _, cat := range constants.AllCategories() {
		require.Contains(t, factors, cat, "category %q has no default factor", cat)
		require.Greater(t, factors[cat], 0.0, "category %q", cat)
	}
}

func TestLoadFactorsEmptyPath(t *testing.T) {
	t.Parallel()

	f, err := LoadFactors("")
	require.NoError(t, err)
	require.Equal(t, Defaults().Estimate.OrganicDiscount, f.Estimate.OrganicDiscount)
}

func TestLoadFactorsOverrides(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{
		"categoryEmissionFactors": {"beef": 30.5},
		"storeSustainabilityRatings": [{"store": "corner co-op", "rating": 5}],
		"organicDiscountFactor": 0.5,
		"packagingRate": 0.08
	}`)

	f, err := LoadFactors(path)
	require.NoError(t, err)
	require.Equal(t, 30.5, f.Estimate.CategoryFactors[constants.Beef])
	// untouched entries keep their defaults
	require.Equal(t, 6.9, f.Estimate.CategoryFactors[constants.Chicken])
	require.Equal(t, 0.5, f.Estimate.OrganicDiscount)
	require.Equal(t, 0.08, f.Estimate.PackagingRate)
	require.Equal(t, 0.10, f.Estimate.TransportRate)
	require.Len(t, f.Estimate.StoreRatings, 1)
	require.Equal(t, "corner co-op", f.Estimate.StoreRatings[0].Name)
}

func TestLoadFactorsGradeLadderWithOpenTop(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{
		"gradeThresholds": [
			{"upperBoundAvgEmission": 3, "gradeLabel": "good"},
			{"gradeLabel": "bad"}
		]
	}`)

	f, err := LoadFactors(path)
	require.NoError(t, err)
	require.Len(t, f.Score.GradeThresholds, 2)
	require.NoError(t, f.Score.Validate())
}

func TestLoadFactorsRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{"organicBonus": 2.0}`)
	_, err := LoadFactors(path)
	require.Error(t, err)
}

func TestLoadFactorsRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{"categoryEmissionFactors": {"uranium": 9000}}`)
	_, err := LoadFactors(path)
	require.Error(t, err)
}

func TestLoadFactorsRejectsOutOfRangeRating(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{"storeSustainabilityRatings": [{"store": "x", "rating": 9}]}`)
	_, err := LoadFactors(path)
	require.Error(t, err)
}

func TestLoadFactorsRejectsGappyTiers(t *testing.T) {
	t.Parallel()

	path := writeFactors(t, `{
		"tierRanges": [
			{"name": "Bronze", "min": 0, "max": 40},
			{"name": "Gold", "min": 60, "max": 100}
		]
	}`)
	_, err := LoadFactors(path)
	require.Error(t, err)
}

func TestLoadFactorsMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFactors(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
