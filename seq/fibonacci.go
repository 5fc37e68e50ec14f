package seq

import "fmt"

// maxFibonacci is the largest index whose Fibonacci number fits in uint64.
const maxFibonacci = 93

// Fibonacci returns the nth Fibonacci number (F(0)=0, F(1)=1) by iterative
// accumulation in O(n) time and O(1) memory.
//
// Returns ErrNegativeIndex when n < 0 and ErrOverflow when n > 93, the last
// index exactly representable in uint64.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Fibonacci: n=%d: %w", n, ErrNegativeIndex)
	}
	if n > maxFibonacci {
		return 0, fmt.Errorf("Fibonacci: n=%d: %w", n, ErrOverflow)
	}

	var prev, curr uint64 = 0, 1
	for i := 0; i < n; i++ {
		prev, curr = curr, prev+curr
	}

	return prev, nil
}
