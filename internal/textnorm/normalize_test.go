package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input returns empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "Whole Foods Market",
			expected: "Whole Foods Market",
		},
		{
			name:     "crlf converted to lf",
			input:    "a\r\nb\rc",
			expected: "a\nb\nc",
		},
		{
			name:     "tabs and space runs collapse",
			input:    "Organic\t\tChicken   Breast",
			expected: "Organic Chicken Breast",
		},
		{
			name:     "three or more newlines collapse to two",
			input:    "a\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "hyphen line break joined",
			input:    "infor-\nmation",
			expected: "information",
		},
		{
			name:     "hyphen join survives trailing spaces",
			input:    "infor-  \nmation",
			expected: "information",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  \n receipt \n  ",
			expected: "receipt",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Whole Foods Market\r\nOrganic  Chicken\t12.99\n\n\n\nTOTAL 35.61",
		"wrap-\nped text with   spaces",
		"   padded   \n\n\n\n\n lines \r\r\n",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeInvariants(t *testing.T) {
	t.Parallel()

	out := Normalize("a\r\n\r\n\r\n\r\nb  \t c\r")
	require.NotContains(t, out, "\r")
	require.NotContains(t, out, "\n\n\n")
	require.Equal(t, out, Normalize(out))
}
