// Package table: sentinel error set. All operations MUST return these
// sentinels and tests MUST check them via errors.Is.

package table

import "errors"

var (
	// ErrSchemaMismatch indicates unequal column lengths, or a names/columns
	// count disagreement during construction.
	ErrSchemaMismatch = errors.New("table: column lengths do not match")

	// ErrDuplicateName indicates two columns sharing one name.
	ErrDuplicateName = errors.New("table: duplicate column name")

	// ErrColumnType indicates a nested value that cannot become a column
	// because it is not a slice of cells.
	ErrColumnType = errors.New("table: nested value is not a column slice")

	// ErrTooFewColumns indicates a conversion that needs at least a key column
	// and one value column.
	ErrTooFewColumns = errors.New("table: at least two columns required")

	// ErrKeyColumn indicates a non-string cell in the key column.
	ErrKeyColumn = errors.New("table: key column must hold string cells")

	// ErrMixedTypes indicates an operation requiring one homogeneous cell type
	// across the whole table.
	ErrMixedTypes = errors.New("table: cells must share one type")

	// ErrUnknownColumn indicates a column name not present in the table.
	ErrUnknownColumn = errors.New("table: unknown column name")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("table: index out of range")
)
