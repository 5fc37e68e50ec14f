package seq

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains the numeric element types accepted by Normalize.
type Number interface {
	constraints.Float | constraints.Integer
}

// Normalize linearly rescales xs into [0, 1] via (x - min) / (max - min).
// Constant input (max == min) maps to all zeros rather than dividing by zero.
// Returns ErrEmptyInput on an empty sequence.
//
// Complexity: O(n).
func Normalize[T Number](xs []T) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrEmptyInput)
	}

	lo, hi := xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(xs))
	if lo == hi {
		return out, nil // constant input: all zeros
	}

	span := float64(hi) - float64(lo)
	for i, v := range xs {
		out[i] = (float64(v) - float64(lo)) / span
	}

	return out, nil
}

// Unique returns the distinct elements of xs. The order of the result is not
// guaranteed; callers needing a stable order must sort it themselves.
//
// Complexity: O(n) time, O(u) memory for u unique values.
func Unique[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, v := range xs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Flatten concatenates a sequence of sequences into one, preserving the
// relative order of elements. Nil inner slices contribute nothing.
//
// Complexity: O(total elements).
func Flatten[T any](nested [][]T) []T {
	total := 0
	for _, inner := range nested {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}

	return out
}

// Partition splits xs into consecutive chunks of size n; the last chunk may be
// shorter. Chunks alias the input slice (no copying).
// Returns ErrBadChunkSize when n <= 0.
//
// Complexity: O(n_chunks) — the elements themselves are not copied.
func Partition[T any](xs []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Partition: n=%d: %w", n, ErrBadChunkSize)
	}

	out := make([][]T, 0, (len(xs)+n-1)/n)
	for start := 0; start < len(xs); start += n {
		end := start + n
		if end > len(xs) {
			end = len(xs)
		}
		out = append(out, xs[start:end:end])
	}

	return out, nil
}

// Duplicates returns the elements of xs that occur more than once, mapped to
// their occurrence counts. Elements occurring exactly once are absent.
//
// Complexity: O(n) time, O(u) memory.
func Duplicates[T comparable](xs []T) map[T]int {
	counts := make(map[T]int, len(xs))
	for _, v := range xs {
		counts[v]++
	}

	out := make(map[T]int)
	for v, c := range counts {
		if c > 1 {
			out[v] = c
		}
	}

	return out
}

// ApproxEqual reports whether |a[i] - b[i]| < tol holds for every i.
// NaN values never compare as approximately equal.
// Returns ErrLengthMismatch when the sequences differ in length.
//
// Complexity: O(n).
func ApproxEqual(a, b []float64, tol float64) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("ApproxEqual: len(a)=%d len(b)=%d: %w", len(a), len(b), ErrLengthMismatch)
	}

	for i := range a {
		if !(math.Abs(a[i]-b[i]) < tol) {
			return false, nil
		}
	}

	return true, nil
}
