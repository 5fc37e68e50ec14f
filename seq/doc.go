// Package seq provides generic, allocation-honest transforms over slices:
// rescaling, deduplication, chunking, flattening, elementwise comparison,
// Cartesian products, plus a couple of small string and integer helpers.
//
// All functions are pure: inputs are never mutated, results are freshly
// allocated. Edge cases surface as sentinel errors, never as panics.
//
// Policies:
//
//   - Normalize maps constant input to all zeros instead of dividing by zero.
//   - Unique gives no ordering guarantee (stable order is an explicit non-goal).
//   - ToSnakeCase only lowercases and swaps spaces for underscores; it does
//     not split camelCase boundaries.
//   - Fibonacci is exact through n=93, the uint64 bound.
package seq
