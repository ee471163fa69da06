package funcplot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultDensity is the default number of samples per unit interval.
	DefaultDensity = 10
	// MaxSamples is the largest number of points Sample produces.
	MaxSamples = 1 << 22
)

// Point is a sample of a function.
type Point struct {
	X, Y float64
}

// Sample returns evenly spaced points in ascending order from xmin to xmax,
// both included, with density points per unit interval. At least two points
// are always produced. Domains needing more than MaxSamples points are
// rejected.
func Sample(xmin, xmax float64, density int) ([]float64, error) {
	if density < 1 || !(xmin < xmax) || math.IsInf(xmin, 0) || math.IsInf(xmax, 0) {
		return nil, &RangeError{Min: xmin, Max: xmax, Density: density}
	}
	w := float64(density) * (xmax - xmin)
	if w > MaxSamples {
		return nil, &RangeError{Min: xmin, Max: xmax, Density: density}
	}
	n := int(w)
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), xmin, xmax)
	xs[n-1] = xmax
	return xs, nil
}

// Tabulate evaluates f at each of xs in order.
func Tabulate(f Function, xs []float64) []Point {
	r := make([]Point, len(xs))
	for i, x := range xs {
		r[i] = Point{X: x, Y: f.Eval(x)}
	}
	return r
}
