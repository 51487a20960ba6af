package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
)

func TestRepairNumeric(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "O between digits", input: "Milk 1O.99", expected: "Milk 10.99"},
		{name: "lowercase o between digits", input: "Milk 1o.99", expected: "Milk 10.99"},
		{name: "O as integer part", input: "Gum $O.99", expected: "Gum $0.99"},
		{name: "comma decimal unified", input: "Brot 12,99", expected: "Brot 12.99"},
		{name: "word with o untouched", input: "Oatmeal Cookies 3.49", expected: "Oatmeal Cookies 3.49"},
		{name: "plain price untouched", input: "Spinach 3.99", expected: "Spinach 3.99"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, RepairNumeric(tc.input))
		})
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Whole Foods Market",
		"Organic Chicken Breast 12.99",
		"SUBTOTAL 32.97",
		"TAX 2.64",
		"TOTAL 35.61",
		"VISA ****1234 35.61",
		"CHANGE 0.00",
		"Baby Spinach 3.99",
	}
	got := Candidates(lines)
	require.Len(t, got, 2)
	require.Equal(t, "Organic Chicken Breast 12.99", got[0].Text)
	require.Equal(t, "12.99", got[0].Price)
	require.Equal(t, "3.99", got[1].Price)
}

func TestCandidatesCap(t *testing.T) {
	t.Parallel()

	lines := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		lines = append(lines, fmt.Sprintf("noise item %d 1.99", i))
	}
	require.Len(t, Candidates(lines), MaxCandidates)
}

func TestParseItems(t *testing.T) {
	t.Parallel()

	items, dropped := ParseItems([]string{
		"Organic Chicken Breast $12.99",
		"Baby Spinach 3.99",
		"Imported Brie 2 x 4.50 9.00",
	})
	require.Zero(t, dropped)
	require.Len(t, items, 3)

	require.Equal(t, "Organic Chicken Breast", items[0].Name)
	require.Equal(t, 12.99, items[0].Price)
	require.Equal(t, constants.Default, items[0].Category)

	require.Equal(t, "Baby Spinach", items[1].Name)
	require.Equal(t, 3.99, items[1].Price)

	// last price-like token wins
	require.Equal(t, 9.00, items[2].Price)
	require.Equal(t, "Imported Brie 2 x 4.50", items[2].Name)
}

// A single well-formed price token must parse to its numeric value no
// matter what OCR noise surrounds it, as long as the noise is not itself
// price-shaped.
func TestParseItemsPriceDeterminism(t *testing.T) {
	t.Parallel()

	variants := []string{
		"Spinach 3.99",
		"Spinach  ~~ 3.99",
		"Sp!nach &* 3.99",
		"Spinach 3.99 #",
		"$ Spinach 3.99",
	}
	for _, line := range variants {
		items, dropped := ParseItems([]string{line})
		require.Zero(t, dropped, "line %q", line)
		require.Len(t, items, 1, "line %q", line)
		require.Equal(t, 3.99, items[0].Price, "line %q", line)
	}
}

func TestParseItemsRepairsBeforeParsing(t *testing.T) {
	t.Parallel()

	items, dropped := ParseItems([]string{"Almond Milk 1O,99"})
	require.Zero(t, dropped)
	require.Len(t, items, 1)
	require.Equal(t, 10.99, items[0].Price)
	require.Equal(t, "Almond Milk", items[0].Name)
}

// A price token that overflows float64 is dropped and counted without
// aborting the rest of the document.
func TestParseItemsDropsUnparseablePrice(t *testing.T) {
	t.Parallel()

	huge := strings.Repeat("9", 400) + ".99"
	items, dropped := ParseItems([]string{
		"Glitch Widget " + huge,
		"Baby Spinach 3.99",
	})
	require.Equal(t, 1, dropped)
	require.Len(t, items, 1)
	require.Equal(t, "Baby Spinach", items[0].Name)
	require.Equal(t, 3.99, items[0].Price)
}

func TestParseItemsNoCandidates(t *testing.T) {
	t.Parallel()

	items, dropped := ParseItems([]string{"TOTAL 35.61", "Thank you", "no price here"})
	require.Empty(t, items)
	require.Zero(t, dropped)
}
