package stats

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// CumulativeDistribution returns the empirical CDF of xs: the values in
// ascending order, each paired with its 1-indexed rank fraction i/n.
// The result has the same length as the input, its P components are
// monotonically non-decreasing, and the last P is exactly 1.0.
// Duplicated input values appear once per occurrence, each with its own rank.
//
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n log n).
func CumulativeDistribution[T constraints.Ordered](xs []T) ([]CDFPoint[T], error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("CumulativeDistribution: %w", ErrEmptyInput)
	}

	sorted := make([]T, len(xs))
	copy(sorted, xs)
	slices.Sort(sorted)

	n := float64(len(sorted))
	out := make([]CDFPoint[T], len(sorted))
	for i, v := range sorted {
		out[i] = CDFPoint[T]{Value: v, P: float64(i+1) / n}
	}

	return out, nil
}
