package table

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// FromNested converts a flat nested mapping into a Table: each top-level key
// becomes a column named after it, holding the key's slice of cells. Keys are
// sorted lexicographically (Go maps carry no insertion order).
//
// Returns ErrColumnType when a value is not a []any column, and
// ErrSchemaMismatch when column lengths are unequal.
//
// Complexity: O(k log k + cells) for k top-level keys.
func FromNested(n Nested) (*Table, error) {
	names := make([]string, 0, len(n))
	for key := range n {
		names = append(names, key)
	}
	sort.Strings(names)

	cols := make([][]any, len(names))
	for i, name := range names {
		col, ok := n[name].([]any)
		if !ok {
			return nil, fmt.Errorf("FromNested: key %q holds %T: %w", name, n[name], ErrColumnType)
		}
		cols[i] = col
	}

	t, err := New(names, cols)
	if err != nil {
		return nil, fmt.Errorf("FromNested: %w", err)
	}

	return t, nil
}

// ToNested converts the table into a nested mapping: each row becomes one
// entry, keyed by the row's cell in the first column, whose value is a Nested
// of the remaining columns. Rows sharing a key overwrite earlier ones.
//
// Returns ErrTooFewColumns when the table has fewer than two columns and
// ErrKeyColumn when a key cell is not a string.
//
// Complexity: O(cells).
func (t *Table) ToNested() (Nested, error) {
	if t.Cols() < 2 {
		return nil, fmt.Errorf("ToNested: %d columns: %w", t.Cols(), ErrTooFewColumns)
	}

	out := make(Nested, t.Rows())
	for r := 0; r < t.Rows(); r++ {
		key, ok := t.cols[0][r].(string)
		if !ok {
			return nil, fmt.Errorf("ToNested: row %d key holds %T: %w", r, t.cols[0][r], ErrKeyColumn)
		}

		record := make(Nested, t.Cols()-1)
		for c := 1; c < t.Cols(); c++ {
			record[t.names[c]] = t.cols[c][r]
		}
		out[key] = record
	}

	return out, nil
}

// Transpose swaps rows and columns. The whole table must share one cell type;
// the transposed columns are named positionally ("0", "1", …) because the
// original names have no home after transposition.
//
// Returns ErrMixedTypes on heterogeneous (or nil) cells.
//
// Complexity: O(cells).
func (t *Table) Transpose() (*Table, error) {
	if err := t.checkHomogeneous(); err != nil {
		return nil, err
	}

	rows, cols := t.Rows(), t.Cols()
	names := make([]string, rows)
	flipped := make([][]any, rows)
	for r := 0; r < rows; r++ {
		names[r] = strconv.Itoa(r)
		flipped[r] = make([]any, cols)
		for c := 0; c < cols; c++ {
			flipped[r][c] = t.cols[c][r]
		}
	}

	out, err := New(names, flipped)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	return out, nil
}

// checkHomogeneous verifies every cell shares the dynamic type of the first.
func (t *Table) checkHomogeneous() error {
	var want reflect.Type
	for c := range t.cols {
		for r, cell := range t.cols[c] {
			if cell == nil {
				return fmt.Errorf("Transpose: nil cell at row %d column %q: %w", r, t.names[c], ErrMixedTypes)
			}
			got := reflect.TypeOf(cell)
			if want == nil {
				want = got

				continue
			}
			if got != want {
				return fmt.Errorf("Transpose: cell at row %d column %q holds %s, want %s: %w",
					r, t.names[c], got, want, ErrMixedTypes)
			}
		}
	}

	return nil
}

// NestedKeys returns every key at every depth of the mapping, depth-first,
// with keys sorted lexicographically at each level for determinism. Subtrees
// typed as either Nested or plain map[string]any are descended into.
//
// Complexity: O(keys log keys) per level.
func NestedKeys(n Nested) []string {
	return appendKeys(nil, n)
}

// appendKeys walks one mapping level, recursing into mapping-typed values.
func appendKeys(acc []string, n map[string]any) []string {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		acc = append(acc, key)
		switch sub := n[key].(type) {
		case Nested:
			acc = appendKeys(acc, sub)
		case map[string]any:
			acc = appendKeys(acc, sub)
		}
	}

	return acc
}
