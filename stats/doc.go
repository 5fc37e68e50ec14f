// Package stats provides descriptive and weighted statistics over numeric
// and ordered sequences, plus the empirical cumulative distribution.
//
// What:
//
//   - Central tendency: Mean, Median, Mode (deterministic tie-break).
//   - Spread & shape: Variance, StdDev, Skewness, Kurtosis, Percentile.
//   - Association: Correlation (Pearson r).
//   - Weighted aggregates: WeightedMean, WeightedMedian.
//   - CumulativeDistribution: sorted values paired with empirical CDF ranks.
//
// Why:
//
//   - Every function is pure and reentrant; inputs are never mutated.
//   - Moments and means ride on gonum/stat for numerical stability instead
//     of hand-rolled accumulation loops.
//   - Degenerate inputs (empty sequences, zero variance, zero total weight)
//     surface as sentinel errors, never as NaN leaking into caller arithmetic.
//
// Policies (documented design choices, not inherited behavior):
//
//   - Mode ties break to the first value that reaches the maximal count in
//     input order.
//   - Variance/StdDev/Skewness use gonum's unbiased sample definitions;
//     Kurtosis reports the full fourth standardized moment (excess + 3).
//   - Percentile interpolates linearly between closest ranks at (n-1)·p/100.
//   - WeightedMedian returns the value whose cumulative weight fraction first
//     reaches 0.5; with uniform weights over an even count this is the lower
//     median.
//
// Errors:
//
//   - ErrEmptyInput: a statistic over an empty sequence.
//   - ErrLengthMismatch: paired sequences of differing lengths.
//   - ErrZeroVariance: a shape/association statistic over constant input.
//   - ErrZeroWeight: non-positive total weight.
//   - ErrNegativeWeight: an individual weight below zero.
//   - ErrBadPercentile: percentile outside [0, 100].
package stats
