package pipeline

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/config"
	"github.com/ecotrace/carboncore/internal/entity"
)

const wholeFoodsReceipt = `Whole Foods Market
Organic Chicken Breast   12.99
Baby Spinach              3.99
Grass-Fed Ground Beef    15.99
------------------------
SUBTOTAL                 32.97
TAX                       2.64
TOTAL                    35.61
Thank you for shopping!
`

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return New(config.Defaults(), slog.Default())
}

func TestRunRoundTrip(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	report, err := p.Run(wholeFoodsReceipt, "")
	require.NoError(t, err)

	require.Equal(t, "Whole Foods Market", report.Store)
	require.Equal(t, 4.0, report.StoreRating)
	require.False(t, report.DefaultRatingApplied)
	require.Len(t, report.Items, 3)
	require.Zero(t, report.DroppedLines)

	// storeFactor (6-4)/5 = 0.4
	// chicken: 6.9 * 0.7 (organic) * 0.4 = 1.932
	// spinach: 2.0 * 0.4            = 0.8
	// beef:   27.0 * 0.4            = 10.8
	// subtotal 13.532, packaging 0.6766, transport 1.42086, total 15.62946
	require.InDelta(t, 15.62946, report.TotalEmissionsKg, 1e-9)
	require.InDelta(t, 0.6766, report.PackagingEmissionKg, 1e-9)
	require.InDelta(t, 1.42086, report.TransportEmissionKg, 1e-9)

	// sorted by descending emission: beef, chicken, spinach
	require.Equal(t, constants.Beef, report.Items[0].Category)
	require.InDelta(t, 10.8, report.Items[0].Emission, 1e-9)
	require.Equal(t, constants.Chicken, report.Items[1].Category)
	require.InDelta(t, 1.932, report.Items[1].Emission, 1e-9)
	require.Equal(t, constants.Vegetables, report.Items[2].Category)
	require.InDelta(t, 0.8, report.Items[2].Emission, 1e-9)

	require.Equal(t, 15.99, report.Items[0].Price)

	// avg 5.20982 => B on the default ladder
	require.Equal(t, "B", report.Grade)
	require.InDelta(t, 38.686, report.MilesEquivalent, 1e-2)
	require.InDelta(t, 0.74426, report.TreesNeeded, 1e-4)
	require.NotZero(t, report.ID)
	require.False(t, report.CreatedAt.IsZero())
}

func TestRunStoreHintWins(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	report, err := p.Run(wholeFoodsReceipt, "Walmart Supercenter")
	require.NoError(t, err)
	require.Equal(t, "Walmart Supercenter", report.Store)
	require.Equal(t, 2.0, report.StoreRating)
}

func TestRunEmptyInput(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	for _, raw := range []string{"", "   ", "\n\n\r\n\t"} {
		_, err := p.Run(raw, "")
		require.ErrorIs(t, err, ErrEmptyInput, "input %q", raw)
	}
}

// Totals/tax/footer-only documents are a reported condition, never a
// zero-item report.
func TestRunNoItems(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	_, err := p.Run("SUBTOTAL 10.00\nTAX 0.80\nTOTAL 10.80\nThank you!", "")
	require.ErrorIs(t, err, ErrNoItems)
}

func TestRunOCRNoise(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	report, err := p.Run("Corner Mart\nAlmond Milk 1O,99\nWhole-\nWheat Bread 2.49", "")
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	require.True(t, report.DefaultRatingApplied)

	prices := map[string]float64{}
	for _, it := range report.Items {
		prices[it.Name] = it.Price
	}
	require.InDelta(t, 10.99, prices["Almond Milk"], 1e-9)
	require.InDelta(t, 2.49, prices["WholeWheat Bread"], 1e-9)
}

func TestRunManual(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	report, err := p.RunManual([]entity.LineItem{
		{Name: "Organic Eggs", Price: 5.99},
		{Name: "Quinoa", Price: 6.99, Category: constants.Rice},
	}, "Trader Joes")
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	require.Equal(t, 4.0, report.StoreRating)

	_, err = p.RunManual(nil, "Trader Joes")
	require.ErrorIs(t, err, ErrNoItems)
}

func TestApplyStanding(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(t)
	report, err := p.Run(wholeFoodsReceipt, "")
	require.NoError(t, err)

	p.ApplyStanding(report, []int{100, 200, 300, 900})
	require.Equal(t, 75.0, report.Percentile)
	require.Equal(t, constants.Gold, report.Tier)

	p.ApplyStanding(report, nil)
	require.Equal(t, 50.0, report.Percentile)
	require.Equal(t, constants.Gold, report.Tier)
}
