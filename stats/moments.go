package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// excessOffset converts gonum's excess kurtosis back to the full fourth
// standardized moment (a normal distribution scores 3, not 0).
const excessOffset = 3.0

// Minimal sample counts below which the bias-corrected estimators divide by
// zero: skew carries an (n-1)(n-2) factor, kurtosis an (n-2)(n-3) one.
const (
	minSkewSamples     = 3
	minKurtosisSamples = 4
)

// Skewness returns the sample skewness of xs (gonum's bias-corrected third
// standardized moment). Positive values indicate a right tail.
//
// Returns ErrEmptyInput on an empty sequence, ErrTooFewSamples when n < 3,
// and ErrZeroVariance when the input is constant.
//
// Complexity: O(n).
func Skewness(xs []float64) (float64, error) {
	if err := checkShapeInput("Skewness", xs, minSkewSamples); err != nil {
		return 0, err
	}

	return stat.Skew(xs, nil), nil
}

// Kurtosis returns the full fourth standardized moment of xs, computed as
// gonum's bias-corrected excess kurtosis plus 3. Heavier tails score higher;
// a normal distribution scores ≈3.
//
// Returns ErrEmptyInput on an empty sequence, ErrTooFewSamples when n < 4,
// and ErrZeroVariance when the input is constant.
//
// Complexity: O(n).
func Kurtosis(xs []float64) (float64, error) {
	if err := checkShapeInput("Kurtosis", xs, minKurtosisSamples); err != nil {
		return 0, err
	}

	return stat.ExKurtosis(xs, nil) + excessOffset, nil
}

// checkShapeInput validates the shared preconditions of the shape statistics:
// non-empty input, enough samples for the estimator, strictly positive variance.
func checkShapeInput(op string, xs []float64, minSamples int) error {
	if len(xs) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	if len(xs) < minSamples {
		return fmt.Errorf("%s: n=%d: %w", op, len(xs), ErrTooFewSamples)
	}
	if stat.Variance(xs, nil) == 0 {
		return fmt.Errorf("%s: %w", op, ErrZeroVariance)
	}

	return nil
}
