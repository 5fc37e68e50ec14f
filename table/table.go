package table

import "fmt"

// Nested is a string-keyed mapping whose values may recursively be further
// mappings. Plain map[string]any subtrees are accepted everywhere a Nested is.
type Nested map[string]any

// Table is a rectangular set of ordered, named columns. Cells are variant
// values; all columns share one length. Construct via New or FromNested —
// the zero Table is valid and empty.
type Table struct {
	names []string
	cols  [][]any
}

// New builds a Table from parallel name and column slices. Both inputs are
// copied, so later caller mutation cannot corrupt the table.
//
// Returns ErrSchemaMismatch when len(names) != len(cols) or when columns
// differ in length, and ErrDuplicateName when a name repeats.
//
// Complexity: O(cells).
func New(names []string, cols [][]any) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("New: %d names vs %d columns: %w", len(names), len(cols), ErrSchemaMismatch)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("New: column %q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	t := &Table{
		names: append([]string(nil), names...),
		cols:  make([][]any, len(cols)),
	}
	for i, col := range cols {
		if i > 0 && len(col) != len(cols[0]) {
			return nil, fmt.Errorf("New: column %q has %d cells, want %d: %w",
				names[i], len(col), len(cols[0]), ErrSchemaMismatch)
		}
		t.cols[i] = append([]any(nil), col...)
	}

	return t, nil
}

// Rows returns the number of logical records.
func (t *Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}

	return len(t.cols[0])
}

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.cols) }

// Names returns a copy of the column names in order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Column returns a copy of the named column's cells.
// Returns ErrUnknownColumn when no column carries the name.
func (t *Table) Column(name string) ([]any, error) {
	for i, n := range t.names {
		if n == name {
			return append([]any(nil), t.cols[i]...), nil
		}
	}

	return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownColumn)
}

// At returns the cell at row r of column c.
// Returns ErrOutOfRange when either index is outside the table.
func (t *Table) At(r, c int) (any, error) {
	if c < 0 || c >= t.Cols() || r < 0 || r >= t.Rows() {
		return nil, fmt.Errorf("At(%d, %d): %dx%d table: %w", r, c, t.Rows(), t.Cols(), ErrOutOfRange)
	}

	return t.cols[c][r], nil
}
