package linefilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty text yields nothing",
			input:    "",
			expected: nil,
		},
		{
			name:     "blank lines removed",
			input:    "Milk 1.99\n\n\nBread 2.49",
			expected: []string{"Milk 1.99", "Bread 2.49"},
		},
		{
			name:     "decoration lines removed",
			input:    "Milk 1.99\n------------------------\n=====\n***\nBread 2.49",
			expected: []string{"Milk 1.99", "Bread 2.49"},
		},
		{
			name:     "footer phrases removed",
			input:    "Milk 1.99\nThank you for shopping!\nVisit us at store #12\nwww.example.com\nCall 1-800-555-0199",
			expected: []string{"Milk 1.99"},
		},
		{
			name:     "short transactional metadata removed",
			input:    "Customer #4821\nOrder 7731\nRef 99-1204\nApproval 552\nAuth 0013\nMilk 1.99",
			expected: []string{"Milk 1.99"},
		},
		{
			name:     "long line starting with metadata word kept",
			input:    "Customer favourite organic sourdough loaf baked fresh daily 4.99",
			expected: []string{
				"Customer favourite organic sourdough loaf baked fresh daily 4.99",
			},
		},
		{
			name:     "two dashes are not decoration",
			input:    "--\nMilk 1.99",
			expected: []string{"--", "Milk 1.99"},
		},
		{
			name:     "lines trimmed and order preserved",
			input:    "  Spinach 3.99  \n Beef 15.99",
			expected: []string{"Spinach 3.99", "Beef 15.99"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, Filter(tc.input))
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Milk 1.99\n----\nThank you\nCustomer #4821\nBread 2.49",
		"",
		"only one item 9.99",
	}
	for _, in := range inputs {
		once := Filter(in)
		again := Filter(strings.Join(once, "\n"))
		require.Equal(t, once, again, "input %q", in)
	}
}
