package geometry

import (
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/integrate/quad"
)

// rootsIn01 returns the roots of c0 + c1 t + c2 t² that lie strictly inside
// (0, 1), in increasing order.
func rootsIn01(c0, c1, c2 float64) []float64 {
	var roots []float64
	switch disc := c1*c1 - 4*c0*c2; {
	case c2 == 0:
		if c1 != 0 {
			roots = append(roots, -c0/c1)
		}
	case disc == 0:
		roots = append(roots, -c1/(2*c2))
	case disc > 0:
		// See https://math.stackexchange.com/questions/866331
		q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
		roots = append(roots, q/c2, c0/q)
	}
	roots = lo.Filter(roots, func(t float64, _ int) bool { return t > 0 && t < 1 })
	slices.Sort(roots)
	return roots
}

// integrate computes the integral of f over [a, b]. Intervals are split in
// half until the 8-point and 16-point Gauss–Legendre rules agree to within
// accuracy.
func integrate(f func(t float64) float64, a, b, accuracy float64) float64 {
	const maxDepth = 16
	var rec func(a, b, accuracy float64, depth int) float64
	rec = func(a, b, accuracy float64, depth int) float64 {
		coarse := quad.Fixed(f, a, b, 8, quad.Legendre{}, 0)
		fine := quad.Fixed(f, a, b, 16, quad.Legendre{}, 0)
		if depth >= maxDepth || math.Abs(fine-coarse) <= accuracy || math.IsNaN(fine) {
			return fine
		}
		m := 0.5 * (a + b)
		return rec(a, m, accuracy/2, depth+1) + rec(m, b, accuracy/2, depth+1)
	}
	return rec(a, b, accuracy, 0)
}
