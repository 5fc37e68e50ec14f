package seq

import "errors"

var (
	// ErrEmptyInput indicates a transform that requires at least one element.
	ErrEmptyInput = errors.New("seq: input must be non-empty")

	// ErrLengthMismatch indicates paired sequences of differing lengths.
	ErrLengthMismatch = errors.New("seq: sequence lengths do not match")

	// ErrBadChunkSize indicates a non-positive partition size.
	ErrBadChunkSize = errors.New("seq: chunk size must be positive")

	// ErrNegativeIndex indicates a negative sequence index (Fibonacci).
	ErrNegativeIndex = errors.New("seq: index must be non-negative")

	// ErrOverflow indicates the exact result does not fit in the return type.
	ErrOverflow = errors.New("seq: result overflows uint64")
)
