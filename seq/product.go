package seq

import "fmt"

// CartesianProduct returns every ordered tuple combining one element from each
// input set, with tuple positions matching the input set order. Tuples are
// emitted in lexicographic order of the input sets: the last set varies
// fastest. If any set is empty the product is empty.
//
// Returns ErrEmptyInput when no sets are given at all.
//
// Complexity: O(k·∏|setᵢ|) time and memory for k sets — the result is the
// full product; prefer streaming approaches for large inputs.
func CartesianProduct[T any](sets [][]T) ([][]T, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("CartesianProduct: %w", ErrEmptyInput)
	}

	size := 1
	for _, set := range sets {
		size *= len(set)
		if size == 0 {
			return [][]T{}, nil // an empty factor empties the whole product
		}
	}

	out := make([][]T, 0, size)
	tuple := make([]T, len(sets))

	var build func(depth int)
	build = func(depth int) {
		if depth == len(sets) {
			row := make([]T, len(tuple))
			copy(row, tuple)
			out = append(out, row)

			return
		}
		for _, v := range sets[depth] {
			tuple[depth] = v
			build(depth + 1)
		}
	}
	build(0)

	return out, nil
}
