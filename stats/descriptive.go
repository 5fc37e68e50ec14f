package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// percentile scale bounds.
const (
	minPercentile = 0.0
	maxPercentile = 100.0
)

// Mean returns the arithmetic mean of xs.
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n).
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrEmptyInput)
	}

	return stat.Mean(toFloats(xs), nil), nil
}

// Median returns the standard median of xs: the middle value for odd lengths,
// the mean of the two middle values for even lengths.
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n log n).
func Median[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Median: %w", ErrEmptyInput)
	}

	sorted := toFloats(xs)
	sort.Float64s(sorted)
	half := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[half], nil
	}

	return (sorted[half-1] + sorted[half]) / 2, nil
}

// Variance returns the unbiased sample variance of xs (n-1 denominator).
// Returns ErrEmptyInput on an empty sequence. A single-element sequence has
// variance 0.
//
// Complexity: O(n).
func Variance[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Variance: %w", ErrEmptyInput)
	}
	if len(xs) == 1 {
		return 0, nil
	}

	return stat.Variance(toFloats(xs), nil), nil
}

// StdDev returns the unbiased sample standard deviation of xs.
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n).
func StdDev[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("StdDev: %w", ErrEmptyInput)
	}

	v, _ := Variance(xs) // non-empty input cannot fail

	return math.Sqrt(v), nil
}

// Percentile returns the p-th percentile of xs (p in [0, 100]), linearly
// interpolating between the closest ranks at position (n-1)·p/100.
// Returns ErrEmptyInput on an empty sequence and ErrBadPercentile when p is
// outside [0, 100].
//
// Complexity: O(n log n).
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("Percentile: %w", ErrEmptyInput)
	}
	if p < minPercentile || p > maxPercentile || math.IsNaN(p) {
		return 0, fmt.Errorf("Percentile: p=%v: %w", p, ErrBadPercentile)
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	pos := float64(len(sorted)-1) * p / maxPercentile
	base := int(math.Floor(pos))
	frac := pos - float64(base)
	if base+1 < len(sorted) {
		return sorted[base] + frac*(sorted[base+1]-sorted[base]), nil
	}

	return sorted[base], nil
}

// Correlation returns the Pearson correlation coefficient of the paired
// samples x and y.
// Returns ErrEmptyInput on empty input, ErrLengthMismatch when the sequences
// differ in length, and ErrZeroVariance when either side is constant.
//
// Complexity: O(n).
func Correlation(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, fmt.Errorf("Correlation: %w", ErrEmptyInput)
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("Correlation: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	// A single pair has no spread; gonum's sample variance is 0/0 there.
	if len(x) < 2 || stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, fmt.Errorf("Correlation: %w", ErrZeroVariance)
	}

	return stat.Correlation(x, y, nil), nil
}

// Mode returns the value with the highest frequency in xs.
// Ties break deterministically to the first value that reaches the maximal
// count in input order (a documented design choice).
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n) time, O(u) memory for u unique values.
func Mode[T comparable](xs []T) (T, error) {
	var best T
	if len(xs) == 0 {
		return best, fmt.Errorf("Mode: %w", ErrEmptyInput)
	}

	counts := make(map[T]int, len(xs))
	bestCount := 0
	for _, v := range xs {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}

	return best, nil
}
