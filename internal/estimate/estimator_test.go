package estimate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/entity"
)

func testConfig() Config {
	return Config{
		CategoryFactors: map[constants.Category]float64{
			constants.Beef:       27.0,
			constants.Chicken:    6.9,
			constants.Vegetables: 2.0,
			constants.Default:    3.0,
		},
		StoreRatings: []StoreRating{
			{Name: "whole foods", Rating: 4},
			{Name: "walmart", Rating: 2},
		},
		DefaultRating:   2.5,
		OrganicDiscount: 0.7,
		PackagingRate:   0.05,
		TransportRate:   0.10,
	}
}

func TestEstimateSingleItem(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate([]entity.LineItem{
		{Name: "Grass-Fed Ground Beef", Price: 15.99, Category: constants.Beef},
	}, "Whole Foods Market")

	require.Equal(t, 4.0, res.StoreRating)
	require.False(t, res.DefaultRatingApplied)
	require.Len(t, res.Records, 1)

	// factor 27.0 * storeFactor (6-4)/5 = 0.4
	require.InDelta(t, 10.8, res.Records[0].EmissionKg, 1e-9)
	require.Equal(t, 27.0, res.Records[0].BaseFactorKg)

	require.InDelta(t, 10.8, res.SubtotalKg, 1e-9)
	require.InDelta(t, 0.54, res.PackagingKg, 1e-9)
	require.InDelta(t, 1.134, res.TransportKg, 1e-9)
	require.InDelta(t, 12.474, res.TotalKg, 1e-9)
}

func TestEstimateOrganicDiscount(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate([]entity.LineItem{
		{Name: "Organic Chicken Breast", Price: 12.99, Category: constants.Chicken},
	}, "Whole Foods")

	// 6.9 * 0.7 * 0.4
	require.InDelta(t, 1.932, res.Records[0].EmissionKg, 1e-9)
	// base factor reported before adjustments
	require.Equal(t, 6.9, res.Records[0].BaseFactorKg)
}

func TestEstimateUnknownStoreUsesDefault(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate([]entity.LineItem{
		{Name: "Spinach", Category: constants.Vegetables},
	}, "Corner Bodega")

	require.Equal(t, 2.5, res.StoreRating)
	require.True(t, res.DefaultRatingApplied)
	// storeFactor (6-2.5)/5 = 0.7
	require.InDelta(t, 1.4, res.Records[0].EmissionKg, 1e-9)
}

func TestEstimateUnknownCategoryUsesDefaultFactor(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate([]entity.LineItem{
		{Name: "Gadget", Category: constants.Electronics}, // not in test table
	}, "")

	require.Equal(t, 3.0, res.Records[0].BaseFactorKg)
	require.True(t, res.DefaultRatingApplied)
}

func TestEstimateStoreMatchIsSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate(nil, "WALMART Supercenter #1234")
	require.Equal(t, 2.0, res.StoreRating)
	require.False(t, res.DefaultRatingApplied)
}

// Moving an item to a category with a higher factor never lowers the total.
func TestEstimateMonotonicInCategoryFactor(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	low := e.Estimate([]entity.LineItem{
		{Name: "Mystery", Category: constants.Vegetables},
	}, "Whole Foods")
	high := e.Estimate([]entity.LineItem{
		{Name: "Mystery", Category: constants.Beef},
	}, "Whole Foods")
	require.GreaterOrEqual(t, high.TotalKg, low.TotalKg)
}

func TestEstimateEmptyItems(t *testing.T) {
	t.Parallel()

	e := New(testConfig())
	res := e.Estimate(nil, "Whole Foods")
	require.Zero(t, res.TotalKg)
	require.Empty(t, res.Records)
}
