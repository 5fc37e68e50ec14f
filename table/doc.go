// Package table models a small in-memory table of ordered, named columns and
// its conversions to and from tree-shaped nested mappings.
//
// What:
//
//   - Table — rectangular, ordered named columns; row i across all columns
//     forms one logical record. Cells are variant values (any) with explicit
//     runtime type checks where an operation needs more.
//   - Nested — a string-keyed mapping whose values may recursively be further
//     mappings (a tree of arbitrary depth).
//   - FromNested / ToNested — top-level keys ⇄ columns conversions.
//   - Transpose — rows ⇄ columns for type-homogeneous tables.
//   - NestedKeys — every key at every depth, depth-first.
//
// Why:
//
//   - Loosely-typed analysis data (mixed columns of strings and numbers)
//     needs a variant cell representation in Go; the package owns the runtime
//     checks so callers get sentinel errors instead of interface panics.
//
// Policies:
//
//   - Go maps have no insertion order, so FromNested and NestedKeys sort keys
//     lexicographically at each level for deterministic output.
//   - ToNested requires the key column (first column) to hold string cells.
//   - Transpose names its columns positionally ("0", "1", …); the original
//     column names have no home after transposition. Mixed-type tables do not
//     transpose (an explicit limitation).
//
// Errors:
//
//   - ErrSchemaMismatch: column lengths differ, or names/columns count differ.
//   - ErrDuplicateName: two columns share a name.
//   - ErrColumnType: a nested value meant to become a column is not a slice.
//   - ErrTooFewColumns: ToNested on a table with fewer than two columns.
//   - ErrKeyColumn: a non-string cell in the key column.
//   - ErrMixedTypes: Transpose over heterogeneous cell types.
//   - ErrUnknownColumn, ErrOutOfRange: accessor misuse.
package table
