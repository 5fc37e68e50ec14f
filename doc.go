// Package statkit is your in-memory toolbox for everyday descriptive
// statistics, sequence wrangling and small-scale numeric plumbing —
// from modes and weighted medians to table transposition and binary snapshots.
//
// 🚀 What is statkit?
//
//	A small, stateless library of pure functions that brings together:
//		• Descriptive statistics: mean, median, mode, percentiles, moments
//		• Weighted aggregates: weighted mean & weighted median
//		• Empirical distributions: cumulative distribution over any ordered type
//		• Sequence transforms: normalize, partition, flatten, dedupe, products
//		• Tabular conversions: nested mappings ⇄ ordered column tables
//		• Linear algebra: matrix inverse & determinant on gonum
//		• Persistence: binary save/load snapshots of toolkit values
//
// ✨ Why choose statkit?
//
//   - Predictable – every edge case returns a sentinel error, never a panic
//   - Reentrant – no shared state; call anything from any goroutine
//   - Deterministic – seeded random helpers, documented tie-break policies
//   - Numerically sound – moments and inverses ride on gonum, not hand-rolled loops
//
// Under the hood, everything is organized under six subpackages:
//
//	linalg/  — dense matrix inverse & determinant
//	persist/ — gob-based binary save/load with per-type registration
//	randx/   — deterministic uniform floats, samples and dates
//	seq/     — generic sequence transforms (normalize, partition, product…)
//	stats/   — descriptive & weighted statistics, empirical CDF
//	table/   — ordered column tables and nested-mapping conversions
//
// Quick example:
//
//	vals := []float64{4, 1, 3, 2}
//	norm, _ := seq.Normalize(vals)   // [1, 0, 0.667, 0.333]
//	med, _ := stats.Median(vals)     // 2.5
//
// Dive into each package's doc.go for edge-case policies, error sets
// and complexity notes.
//
//	go get github.com/katalvlaran/statkit
package statkit
