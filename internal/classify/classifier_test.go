package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrace/carboncore/constants"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier()

	testCases := []struct {
		name     string
		expected constants.Category
	}{
		{"Organic Chicken Breast", constants.Chicken},
		{"Baby Spinach", constants.Vegetables},
		{"Grass-Fed Ground Beef", constants.Beef},
		{"Organic Bananas", constants.Fruits},
		{"Almond Milk", constants.Milk},
		{"Organic Eggs", constants.Eggs},
		{"Quinoa", constants.Rice},
		{"Cherry Tomatoes", constants.Vegetables},
		{"AA Batteries 4-pack", constants.Electronics},
		{"Dish Soap", constants.Cleaning},
		{"Mystery Item XYZ", constants.Default},
		{"", constants.Default},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, c.Classify(tc.name))
		})
	}
}

// Declaration order is the documented tie-break: beef is declared before
// chocolate, so a name matching both resolves to beef.
func TestClassifyDeclarationOrderWins(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier()
	require.Equal(t, constants.Beef, c.Classify("Chocolate Beef Jerky"))
	require.Equal(t, constants.Chicken, c.Classify("chicken noodle bowl"))
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier()
	require.Equal(t, constants.Beef, c.Classify("GRASS-FED GROUND BEEF"))
	require.Equal(t, constants.Beef, c.Classify("grass-fed ground beef"))
}

// Totality: any input maps to a valid category, never an error value.
func TestClassifyTotal(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifier()
	inputs := []string{"", "!!!", "12.99", "\n\t", "零件", "a very long unrecognized product description"}
	for _, in := range inputs {
		cat := c.Classify(in)
		require.True(t, constants.IsValid(string(cat)), "input %q -> %q", in, cat)
	}
}

func TestClassifyCustomRules(t *testing.T) {
	t.Parallel()

	c := NewKeywordClassifierWithRules(
		[]constants.Category{constants.Coffee, constants.Milk},
		map[constants.Category][]string{
			constants.Coffee: {"latte"},
			constants.Milk:   {"latte", "milk"},
		},
	)
	// coffee listed first, so the shared keyword resolves to coffee
	require.Equal(t, constants.Coffee, c.Classify("oat milk latte"))
	require.Equal(t, constants.Milk, c.Classify("whole milk"))
}
