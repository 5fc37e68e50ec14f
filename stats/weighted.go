package stats

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// halfWeight is the cumulative weight fraction defining the weighted median.
const halfWeight = 0.5

// WeightedMean returns sum(vᵢ·wᵢ) / sum(wᵢ).
//
// Returns ErrEmptyInput on empty input, ErrLengthMismatch when values and
// weights differ in length, ErrNegativeWeight on any weight below zero, and
// ErrZeroWeight when the total weight is not strictly positive.
//
// Complexity: O(n).
func WeightedMean(values, weights []float64) (float64, error) {
	if err := checkWeights("WeightedMean", len(values), weights); err != nil {
		return 0, err
	}

	return stat.Mean(values, weights), nil
}

// WeightedMedian returns the value at which the cumulative weight fraction
// first reaches 0.5, after sorting values and carrying weights along in the
// same permutation. Zero-weight elements never become the median on their own.
//
// With uniform weights over an odd count this is the standard median; over an
// even count it is the lower median (the fraction reaches exactly 0.5 there).
//
// Returns ErrEmptyInput, ErrLengthMismatch, ErrNegativeWeight and
// ErrZeroWeight under the same conditions as WeightedMean.
//
// Complexity: O(n log n).
func WeightedMedian[T constraints.Ordered](values []T, weights []float64) (T, error) {
	var zero T
	if err := checkWeights("WeightedMedian", len(values), weights); err != nil {
		return zero, err
	}

	// Sort an index permutation by value; values and weights stay untouched.
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	total := 0.0
	for _, w := range weights {
		total += w
	}

	cum := 0.0
	for _, idx := range order {
		cum += weights[idx]
		if cum >= total*halfWeight && weights[idx] > 0 {
			return values[idx], nil
		}
	}

	// Unreachable for valid input: the last positive weight pushes cum to total.
	return values[order[len(order)-1]], nil
}

// checkWeights validates the shared weighted-aggregate preconditions.
func checkWeights(op string, nValues int, weights []float64) error {
	if nValues == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	if nValues != len(weights) {
		return fmt.Errorf("%s: %d values vs %d weights: %w", op, nValues, len(weights), ErrLengthMismatch)
	}

	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s: weights[%d]=%v: %w", op, i, w, ErrNegativeWeight)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("%s: total=%v: %w", op, total, ErrZeroWeight)
	}

	return nil
}
