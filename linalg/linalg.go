package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("linalg: matrix must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("linalg: all rows must have the same length")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when the input is numerically singular.
	ErrSingular = errors.New("linalg: singular matrix")
)

// Inverse returns the inverse of the square matrix a, computed via gonum's
// LU-backed mat.Dense.Inverse. The input is never mutated.
//
// Returns ErrEmptyMatrix, ErrNonRectangular or ErrNonSquare on shape
// violations and ErrSingular when the matrix is numerically singular —
// ill-conditioned inputs whose inverse gonum refuses to trust are reported
// as singular too, which keeps the failure mode binary for callers.
//
// Complexity: O(n³).
func Inverse(a [][]float64) ([][]float64, error) {
	d, err := toDense("Inverse", a)
	if err != nil {
		return nil, err
	}

	var inv mat.Dense
	if err = inv.Inverse(d); err != nil {
		return nil, fmt.Errorf("Inverse: %v: %w", err, ErrSingular)
	}

	return fromDense(&inv), nil
}

// Determinant returns det(a) for the square matrix a.
//
// Returns ErrEmptyMatrix, ErrNonRectangular or ErrNonSquare on shape
// violations. A singular matrix is valid input here and yields 0.
//
// Complexity: O(n³).
func Determinant(a [][]float64) (float64, error) {
	d, err := toDense("Determinant", a)
	if err != nil {
		return 0, err
	}

	return mat.Det(d), nil
}

// toDense validates shape and copies the row slices into a square mat.Dense.
func toDense(op string, a [][]float64) (*mat.Dense, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyMatrix)
	}

	rows, cols := len(a), len(a[0])
	for i, row := range a {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", op, i, len(row), cols, ErrNonRectangular)
		}
	}
	if rows != cols {
		return nil, fmt.Errorf("%s: %dx%d: %w", op, rows, cols, ErrNonSquare)
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range a {
		flat = append(flat, row...)
	}

	return mat.NewDense(rows, cols, flat), nil
}

// fromDense copies a mat.Dense back into caller-owned row slices.
func fromDense(d *mat.Dense) [][]float64 {
	rows, cols := d.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = d.At(i, j)
		}
	}

	return out
}
