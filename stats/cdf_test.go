package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statkit/stats"
)

// TestCumulativeDistribution_Canonical verifies the canonical [3,1,2] case:
// sorted values paired with ranks 1/3, 2/3, 1.
func TestCumulativeDistribution_Canonical(t *testing.T) {
	cdf, err := stats.CumulativeDistribution([]int{3, 1, 2})
	require.NoError(t, err)
	require.Len(t, cdf, 3)

	assert.Equal(t, 1, cdf[0].Value)
	assert.Equal(t, 2, cdf[1].Value)
	assert.Equal(t, 3, cdf[2].Value)
	assert.InDelta(t, 1.0/3.0, cdf[0].P, epsilon)
	assert.InDelta(t, 2.0/3.0, cdf[1].P, epsilon)
	assert.InDelta(t, 1.0, cdf[2].P, epsilon)
}

// TestCumulativeDistribution_Properties checks length preservation, monotone
// ranks and the terminal 1.0 for a larger sample with duplicates.
func TestCumulativeDistribution_Properties(t *testing.T) {
	xs := []float64{5, 3, 5, 1, 4, 4, 2}

	cdf, err := stats.CumulativeDistribution(xs)
	require.NoError(t, err)
	require.Len(t, cdf, len(xs), "result length equals input length")

	for i := 1; i < len(cdf); i++ {
		assert.LessOrEqual(t, cdf[i-1].Value, cdf[i].Value, "values ascend")
		assert.Less(t, cdf[i-1].P, cdf[i].P, "ranks strictly ascend")
	}
	assert.InDelta(t, 1.0, cdf[len(cdf)-1].P, epsilon, "last rank is exactly 1")
}

// TestCumulativeDistribution_EmptyInput verifies the fail-fast policy.
func TestCumulativeDistribution_EmptyInput(t *testing.T) {
	_, err := stats.CumulativeDistribution[int](nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

// TestCumulativeDistribution_DoesNotMutateInput guards the pure-function contract.
func TestCumulativeDistribution_DoesNotMutateInput(t *testing.T) {
	xs := []int{3, 1, 2}
	_, err := stats.CumulativeDistribution(xs)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, xs)
}
