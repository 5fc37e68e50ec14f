package stats

import "golang.org/x/exp/constraints"

// Number constrains the numeric element types accepted by the float-valued
// statistics. Every Number converts losslessly enough to float64 for
// descriptive purposes.
type Number interface {
	constraints.Float | constraints.Integer
}

// CDFPoint pairs a sorted sample value with its empirical CDF rank i/n.
type CDFPoint[T constraints.Ordered] struct {
	Value T
	P     float64
}

// toFloats widens a numeric sequence to []float64 for the gonum-backed core.
func toFloats[T Number](xs []T) []float64 {
	fs := make([]float64, len(xs))
	for i, v := range xs {
		fs[i] = float64(v)
	}

	return fs
}
