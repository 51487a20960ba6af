package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierOutranks(t *testing.T) {
	t.Parallel()

	require.True(t, Diamond.Outranks(Bronze))
	require.True(t, Gold.Outranks(Gold))
	require.False(t, Silver.Outranks(Platinum))

	// every tier outranks all tiers declared before it
	for i, hi := range tierOrder {
		for _, lo := range tierOrder[:i+1] {
			require.True(t, hi.Outranks(lo), "%s vs %s", hi, lo)
		}
	}
}
