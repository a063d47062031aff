package geometry

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// CubicSpline2d is a cubic Bézier curve with control points p0 through p3.
type CubicSpline2d[U, C any] struct {
	p0, p1, p2, p3 r2.Vec
}

func CubicSpline2dFrom[U, C any](p0, p1, p2, p3 Point2d[U, C]) CubicSpline2d[U, C] {
	return CubicSpline2d[U, C]{p0.p, p1.p, p2.p, p3.p}
}

func (c CubicSpline2d[U, C]) StartPoint() Point2d[U, C] { return Point2d[U, C]{c.p0} }
func (c CubicSpline2d[U, C]) EndPoint() Point2d[U, C]   { return Point2d[U, C]{c.p3} }

// ControlPoints returns the four control points.
func (c CubicSpline2d[U, C]) ControlPoints() [4]Point2d[U, C] {
	return [4]Point2d[U, C]{{c.p0}, {c.p1}, {c.p2}, {c.p3}}
}

func (c CubicSpline2d[U, C]) String() string {
	return fmt.Sprintf("CubicSpline2d(%v, %v, %v, %v)",
		Point2d[U, C]{c.p0}, Point2d[U, C]{c.p1}, Point2d[U, C]{c.p2}, Point2d[U, C]{c.p3})
}

func (c CubicSpline2d[U, C]) IsInf() bool {
	cp := c.ControlPoints()
	return slices.ContainsFunc(cp[:], Point2d[U, C].IsInf)
}

func (c CubicSpline2d[U, C]) IsNaN() bool {
	cp := c.ControlPoints()
	return slices.ContainsFunc(cp[:], Point2d[U, C].IsNaN)
}

func (c CubicSpline2d[U, C]) eval(t float64) r2.Vec {
	mt := 1.0 - t
	a := r2.Scale(mt*mt*mt, c.p0)
	b := r2.Scale(mt*mt*3.0, c.p1)
	cc := r2.Scale(mt*3.0, c.p2)
	d := c.p3
	return r2.Add(a, r2.Scale(t, r2.Add(b, r2.Scale(t, r2.Add(cc, r2.Scale(t, d))))))
}

func (c CubicSpline2d[U, C]) derivative(t float64) r2.Vec {
	mt := 1.0 - t
	d0 := r2.Sub(c.p1, c.p0)
	d1 := r2.Sub(c.p2, c.p1)
	d2 := r2.Sub(c.p3, c.p2)
	return r2.Scale(3, r2.Add(r2.Add(r2.Scale(mt*mt, d0), r2.Scale(2*t*mt, d1)), r2.Scale(t*t, d2)))
}

func (c CubicSpline2d[U, C]) PointOn(t float64) Point2d[U, C] {
	return Point2d[U, C]{c.eval(t)}
}

func (c CubicSpline2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	return Vector2d[U, C]{c.derivative(t)}
}

func (c CubicSpline2d[U, C]) SecondDerivative(t float64) Vector2d[U, C] {
	a, b := c.secondDerivatives()
	return Vector2d[U, C]{lerp2(a, b, t)}
}

// secondDerivatives returns the second derivative at the start and end of
// the curve. It varies linearly in between.
func (c CubicSpline2d[U, C]) secondDerivatives() (r2.Vec, r2.Vec) {
	a := r2.Scale(6, r2.Add(r2.Sub(c.p0, r2.Scale(2, c.p1)), c.p2))
	b := r2.Scale(6, r2.Add(r2.Sub(c.p1, r2.Scale(2, c.p2)), c.p3))
	return a, b
}

// MaxSecondDerivativeMagnitude returns the larger of the second derivative's
// magnitudes at the two endpoints.
func (c CubicSpline2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	a, b := c.secondDerivatives()
	return quantity.Quantity[U](max(r2.Norm(a), r2.Norm(b)))
}

// Length returns the arc length, computed numerically to within
// DefaultTolerance.
func (c CubicSpline2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](integrate(func(t float64) float64 {
		return r2.Norm(c.derivative(t))
	}, 0, 1, DefaultTolerance))
}

// Extrema returns the parameters in (0, 1) at which either coordinate has a
// local extremum, in increasing order.
func (c CubicSpline2d[U, C]) Extrema() []float64 {
	d0 := r2.Sub(c.p1, c.p0)
	d1 := r2.Sub(c.p2, c.p1)
	d2 := r2.Sub(c.p3, c.p2)
	out := append(cubicExtrema(d0.X, d1.X, d2.X), cubicExtrema(d0.Y, d1.Y, d2.Y)...)
	slices.Sort(out)
	return out
}

// cubicExtrema returns the roots in (0, 1) of the derivative of one
// coordinate of a cubic Bézier, given the differences of its control points.
func cubicExtrema(d0, d1, d2 float64) []float64 {
	return rootsIn01(d0, 2*(d1-d0), d0-2*d1+d2)
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicSpline2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	b := hull2(c.p0, c.p3)
	for _, t := range c.Extrema() {
		b = hull2(b.Min, b.Max, c.eval(t))
	}
	return BoundingBox2d[U, C]{b}
}

func (c CubicSpline2d[U, C]) Reverse() CubicSpline2d[U, C] {
	return CubicSpline2d[U, C]{c.p3, c.p2, c.p1, c.p0}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicSpline2d[U, C]) Subdivide() (CubicSpline2d[U, C], CubicSpline2d[U, C]) {
	pm := c.eval(0.5)
	return CubicSpline2d[U, C]{
			c.p0,
			lerp2(c.p0, c.p1, 0.5),
			r2.Scale(0.25, r2.Add(r2.Add(c.p0, r2.Scale(2, c.p1)), c.p2)),
			pm,
		},
		CubicSpline2d[U, C]{
			pm,
			r2.Scale(0.25, r2.Add(r2.Add(c.p1, r2.Scale(2, c.p2)), c.p3)),
			lerp2(c.p2, c.p3, 0.5),
			c.p3,
		}
}

func (c CubicSpline2d[U, C]) Segments(n int) Polyline2d[U, C] {
	return Polyline2d[U, C]{sample2(n, c.eval)}
}

func (c CubicSpline2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return c.Segments(NumSegments(maxError, c.MaxSecondDerivativeMagnitude()))
}

func (c CubicSpline2d[U, C]) TranslateBy(v Vector2d[U, C]) CubicSpline2d[U, C] {
	return c.transform(translate2(v.v))
}

func (c CubicSpline2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) CubicSpline2d[U, C] {
	return c.transform(rotateAbout2(float64(a), center.p))
}

func (c CubicSpline2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) CubicSpline2d[U, C] {
	return c.transform(scaleAbout2(scale, center.p))
}

func (c CubicSpline2d[U, C]) MirrorAcross(axis Axis2d[U, C]) CubicSpline2d[U, C] {
	return c.transform(reflect2(axis.origin, axis.dir))
}

func (c CubicSpline2d[U, C]) transform(aff affine2) CubicSpline2d[U, C] {
	return CubicSpline2d[U, C]{aff.point(c.p0), aff.point(c.p1), aff.point(c.p2), aff.point(c.p3)}
}

func (f Frame2d[U, G, L]) RelativeCubicSpline(c CubicSpline2d[U, G]) CubicSpline2d[U, L] {
	return CubicSpline2d[U, L](c.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceCubicSpline(c CubicSpline2d[U, L]) CubicSpline2d[U, G] {
	return CubicSpline2d[U, G](c.transform(f.toGlobal()))
}
