// Package randx provides deterministic uniform random helpers for the toolkit.
//
// What:
//
//   - New(seed) — a single RNG factory; seed==0 maps to a fixed default seed.
//   - Float(rng, min, max) — uniform float64 in [min, max).
//   - Sample(rng, seq, n) — n independent draws with replacement.
//   - Date(rng, start, end) — uniform calendar day in [start, end] inclusive.
//
// Why:
//
//   - Determinism: same seed ⇒ identical draws across platforms; no hidden
//     time-based sources anywhere in the package.
//   - Encapsulation: every helper accepts an explicit *rand.Rand; nil falls
//     back to the deterministic default stream.
//
// Concurrency:
//
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; create one per worker via New.
//
// Errors:
//
//   - ErrInvalidRange: min > max (Float) or end before start (Date).
//   - ErrEmptyInput: sampling from an empty sequence.
//   - ErrBadCount: negative sample size.
package randx
