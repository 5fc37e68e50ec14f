// Package stats: sentinel error set. All functions MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package stats

import "errors"

var (
	// ErrEmptyInput indicates a statistic was requested over an empty sequence.
	ErrEmptyInput = errors.New("stats: input sequence must be non-empty")

	// ErrLengthMismatch indicates paired sequences of differing lengths
	// (values/weights, x/y).
	ErrLengthMismatch = errors.New("stats: sequence lengths do not match")

	// ErrZeroVariance indicates a shape or association statistic over constant
	// input, where the standardized moment is undefined.
	ErrZeroVariance = errors.New("stats: variance is zero")

	// ErrZeroWeight indicates the total weight is not strictly positive.
	ErrZeroWeight = errors.New("stats: total weight must be positive")

	// ErrNegativeWeight indicates an individual weight below zero.
	ErrNegativeWeight = errors.New("stats: weights must be non-negative")

	// ErrBadPercentile indicates a percentile outside the [0, 100] interval.
	ErrBadPercentile = errors.New("stats: percentile must be in [0, 100]")

	// ErrTooFewSamples indicates the bias-corrected estimator is undefined for
	// the given sample count (skewness needs n ≥ 3, kurtosis n ≥ 4).
	ErrTooFewSamples = errors.New("stats: too few samples for this statistic")
)
