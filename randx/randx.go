package randx

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrInvalidRange indicates min > max or end < start.
	ErrInvalidRange = errors.New("randx: invalid range")

	// ErrEmptyInput indicates an empty source sequence.
	ErrEmptyInput = errors.New("randx: input sequence must be non-empty")

	// ErrBadCount indicates a negative sample size.
	ErrBadCount = errors.New("randx: sample size must be non-negative")
)

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// hoursPerDay converts a time.Duration span into whole calendar days.
const hoursPerDay = 24

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// orDefault resolves a possibly-nil rng to the deterministic default stream.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return New(0)
	}

	return rng
}

// Float returns a uniform value in the half-open interval [min, max).
// min == max is allowed and returns min (a degenerate but well-defined draw).
// Returns ErrInvalidRange when min > max.
//
// Complexity: O(1).
func Float(rng *rand.Rand, min, max float64) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("Float: min %v > max %v: %w", min, max, ErrInvalidRange)
	}
	if min == max {
		return min, nil
	}

	return min + orDefault(rng).Float64()*(max-min), nil
}

// Sample returns n elements drawn independently with replacement from seq.
// n == 0 yields an empty, non-nil slice. The input is never mutated.
//
// Returns ErrBadCount when n < 0 and ErrEmptyInput when seq is empty and n > 0.
//
// Complexity: O(n).
func Sample[T any](rng *rand.Rand, seq []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Sample: n=%d: %w", n, ErrBadCount)
	}
	if n == 0 {
		return []T{}, nil
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("Sample: %w", ErrEmptyInput)
	}

	r := orDefault(rng)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = seq[r.Intn(len(seq))]
	}

	return out, nil
}

// Date returns a uniform calendar day in [start, end] inclusive.
// Both bounds are truncated to midnight UTC of their calendar day before
// drawing, so intra-day clock components never bias the draw.
//
// Returns ErrInvalidRange when end is before start (compared by day).
//
// Complexity: O(1).
func Date(rng *rand.Rand, start, end time.Time) (time.Time, error) {
	s := truncateDay(start)
	e := truncateDay(end)
	if e.Before(s) {
		return time.Time{}, fmt.Errorf("Date: end %s < start %s: %w",
			e.Format(time.DateOnly), s.Format(time.DateOnly), ErrInvalidRange)
	}

	days := int(e.Sub(s).Hours()/hoursPerDay) + 1 // inclusive span
	offset := orDefault(rng).Intn(days)

	return s.AddDate(0, 0, offset), nil
}

// truncateDay drops the clock component, keeping the calendar day in UTC.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
