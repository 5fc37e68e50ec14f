package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statkit/table"
)

// TestNew_ValidTable verifies dimensions, names and cell access on a small
// mixed-type table.
func TestNew_ValidTable(t *testing.T) {
	tbl, err := table.New(
		[]string{"name", "age"},
		[][]any{{"ann", "bob"}, {30, 41}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())
	assert.Equal(t, []string{"name", "age"}, tbl.Names())

	cell, err := tbl.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 41, cell)

	col, err := tbl.Column("age")
	require.NoError(t, err)
	assert.Equal(t, []any{30, 41}, col)
}

// TestNew_Validation covers the schema and naming failures.
func TestNew_Validation(t *testing.T) {
	_, err := table.New([]string{"a"}, [][]any{{1}, {2}})
	assert.ErrorIs(t, err, table.ErrSchemaMismatch, "names/columns count disagreement")

	_, err = table.New([]string{"a", "b"}, [][]any{{1, 2}, {3}})
	assert.ErrorIs(t, err, table.ErrSchemaMismatch, "ragged columns")

	_, err = table.New([]string{"a", "a"}, [][]any{{1}, {2}})
	assert.ErrorIs(t, err, table.ErrDuplicateName)
}

// TestNew_CopiesInput guards the table against later caller mutation.
func TestNew_CopiesInput(t *testing.T) {
	col := []any{1, 2}
	tbl, err := table.New([]string{"x"}, [][]any{col})
	require.NoError(t, err)

	col[0] = 99
	cell, err := tbl.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cell, "construction must copy the caller's slices")
}

// TestAccessors_Errors covers the unknown-column and out-of-range failures.
func TestAccessors_Errors(t *testing.T) {
	tbl, err := table.New([]string{"x"}, [][]any{{1, 2}})
	require.NoError(t, err)

	_, err = tbl.Column("y")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 1}} {
		_, err = tbl.At(rc[0], rc[1])
		assert.ErrorIs(t, err, table.ErrOutOfRange, "At(%d, %d)", rc[0], rc[1])
	}
}

// TestZeroTable verifies the zero value is a valid empty table.
func TestZeroTable(t *testing.T) {
	var tbl table.Table
	assert.Zero(t, tbl.Rows())
	assert.Zero(t, tbl.Cols())
	assert.Empty(t, tbl.Names())
}
