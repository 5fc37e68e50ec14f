package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statkit/stats"
)

// TestSkewness_SymmetryAndSign verifies that symmetric samples score zero and
// a right tail scores positive.
func TestSkewness_SymmetryAndSign(t *testing.T) {
	sk, err := stats.Skewness([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sk, epsilon, "symmetric input has zero skewness")

	sk, err = stats.Skewness([]float64{1, 1, 1, 10})
	require.NoError(t, err)
	assert.Positive(t, sk, "a right tail skews positive")

	sk, err = stats.Skewness([]float64{-10, 1, 1, 1})
	require.NoError(t, err)
	assert.Negative(t, sk, "a left tail skews negative")
}

// TestSkewness_DegenerateInput covers the empty, too-small and constant cases.
func TestSkewness_DegenerateInput(t *testing.T) {
	_, err := stats.Skewness(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = stats.Skewness([]float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrTooFewSamples)

	_, err = stats.Skewness([]float64{5, 5, 5, 5})
	assert.ErrorIs(t, err, stats.ErrZeroVariance)
}

// TestKurtosis_TailWeight verifies that an outlier-heavy sample scores higher
// than an evenly spread one of the same size.
func TestKurtosis_TailWeight(t *testing.T) {
	spread := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tailed := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	kSpread, err := stats.Kurtosis(spread)
	require.NoError(t, err)
	kTailed, err := stats.Kurtosis(tailed)
	require.NoError(t, err)

	assert.Greater(t, kTailed, kSpread, "heavier tails must score higher")
}

// TestKurtosis_DegenerateInput covers the empty, too-small and constant cases.
func TestKurtosis_DegenerateInput(t *testing.T) {
	_, err := stats.Kurtosis(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = stats.Kurtosis([]float64{1, 2, 3})
	assert.ErrorIs(t, err, stats.ErrTooFewSamples)

	_, err = stats.Kurtosis([]float64{2, 2, 2, 2, 2})
	assert.ErrorIs(t, err, stats.ErrZeroVariance)
}
