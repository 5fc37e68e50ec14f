// Package linalg wraps the dense linear-algebra operations the toolkit needs
// — matrix inverse and determinant — around gonum/mat, trading hand-rolled
// elimination loops for gonum's numerically stable LU machinery.
//
// Matrices travel as [][]float64 row slices to stay caller-owned value data;
// validation (rectangular, square, non-singular) happens before any gonum
// call so degenerate input surfaces as package sentinels.
//
// Errors:
//
//   - ErrEmptyMatrix: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonSquare: a square-only operation on a rectangular matrix.
//   - ErrSingular: numerically singular (or hopelessly ill-conditioned) input.
package linalg
