package geometry

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/quantity"
)

// DefaultTolerance is a default value for methods that take a maxError
// argument, in the base units of the geometry. It is suitable for drawing in
// pixels or modelling in meters alike.
const DefaultTolerance = 1e-6

// NumSegments returns the number of equal parameter steps needed so that
// straight segments stay within maxError of a curve whose second derivative
// never exceeds maxSecondDerivativeMagnitude.
//
// The linear interpolation error over a step of size Δt is bounded by
// Δt² · magnitude / 8, which gives ceil(sqrt(magnitude / (8 · maxError)))
// steps. At least one segment is returned for a valid tolerance.
//
// NumSegments returns 0 if maxError is not positive. Callers must check for
// this before using the result.
func NumSegments[U any](maxError, maxSecondDerivativeMagnitude quantity.Quantity[U]) int {
	if !(maxError > 0) {
		return 0
	}
	if !(maxSecondDerivativeMagnitude > 0) {
		return 1
	}
	n := math.Ceil(math.Sqrt(float64(maxSecondDerivativeMagnitude) / (8 * float64(maxError))))
	if math.IsInf(n, 0) || n > math.MaxInt32 {
		return math.MaxInt32
	}
	return max(1, int(n))
}

// sample2 evaluates f at n+1 uniformly spaced parameters in [0, 1]. The
// endpoints are evaluated exactly at 0 and 1.
func sample2(n int, f func(t float64) r2.Vec) []r2.Vec {
	if n < 1 {
		return nil
	}
	return lo.Times(n+1, func(i int) r2.Vec {
		return f(float64(i) / float64(n))
	})
}

func sample3(n int, f func(t float64) r3.Vec) []r3.Vec {
	if n < 1 {
		return nil
	}
	return lo.Times(n+1, func(i int) r3.Vec {
		return f(float64(i) / float64(n))
	})
}
