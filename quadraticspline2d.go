package geometry

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// QuadraticSpline2d is a quadratic Bézier curve with control points p0, p1
// and p2.
type QuadraticSpline2d[U, C any] struct {
	p0, p1, p2 r2.Vec
}

func QuadraticSpline2dFrom[U, C any](p0, p1, p2 Point2d[U, C]) QuadraticSpline2d[U, C] {
	return QuadraticSpline2d[U, C]{p0.p, p1.p, p2.p}
}

func (q QuadraticSpline2d[U, C]) StartPoint() Point2d[U, C]         { return Point2d[U, C]{q.p0} }
func (q QuadraticSpline2d[U, C]) EndPoint() Point2d[U, C]           { return Point2d[U, C]{q.p2} }
func (q QuadraticSpline2d[U, C]) FirstControlPoint() Point2d[U, C]  { return Point2d[U, C]{q.p0} }
func (q QuadraticSpline2d[U, C]) SecondControlPoint() Point2d[U, C] { return Point2d[U, C]{q.p1} }
func (q QuadraticSpline2d[U, C]) ThirdControlPoint() Point2d[U, C]  { return Point2d[U, C]{q.p2} }

func (q QuadraticSpline2d[U, C]) String() string {
	return fmt.Sprintf("QuadraticSpline2d(%v, %v, %v)", q.StartPoint(), q.SecondControlPoint(), q.EndPoint())
}

func (q QuadraticSpline2d[U, C]) IsInf() bool {
	return Point2d[U, C]{q.p0}.IsInf() || Point2d[U, C]{q.p1}.IsInf() || Point2d[U, C]{q.p2}.IsInf()
}

func (q QuadraticSpline2d[U, C]) IsNaN() bool {
	return Point2d[U, C]{q.p0}.IsNaN() || Point2d[U, C]{q.p1}.IsNaN() || Point2d[U, C]{q.p2}.IsNaN()
}

func (q QuadraticSpline2d[U, C]) eval(t float64) r2.Vec {
	mt := 1.0 - t
	a := r2.Scale(mt*mt, q.p0)
	b := r2.Scale(mt*2.0, q.p1)
	c := r2.Scale(t, q.p2)
	return r2.Add(a, r2.Scale(t, r2.Add(b, c)))
}

func (q QuadraticSpline2d[U, C]) PointOn(t float64) Point2d[U, C] {
	return Point2d[U, C]{q.eval(t)}
}

func (q QuadraticSpline2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	d0 := r2.Sub(q.p1, q.p0)
	d1 := r2.Sub(q.p2, q.p1)
	return Vector2d[U, C]{r2.Scale(2, lerp2(d0, d1, t))}
}

func (q QuadraticSpline2d[U, C]) SecondDerivative(t float64) Vector2d[U, C] {
	return Vector2d[U, C]{q.secondDerivative()}
}

func (q QuadraticSpline2d[U, C]) secondDerivative() r2.Vec {
	return r2.Scale(2, r2.Add(r2.Sub(q.p0, r2.Scale(2, q.p1)), q.p2))
}

// MaxSecondDerivativeMagnitude returns |2·(p0 − 2·p1 + p2)|, the constant
// magnitude of the second derivative.
func (q QuadraticSpline2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Norm(q.secondDerivative()))
}

// Length returns the arc length of the spline, using an analytical formula.
func (q QuadraticSpline2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](quadArclen(lift2(q.p0), lift2(q.p1), lift2(q.p2)))
}

// Extrema returns the parameters in (0, 1) at which either coordinate has a
// local extremum, in increasing order.
func (q QuadraticSpline2d[U, C]) Extrema() []float64 {
	// The derivative of a quadratic Bézier is a line, so each coordinate has
	// at most one extremum.
	d0 := r2.Sub(q.p1, q.p0)
	dd := r2.Sub(r2.Sub(q.p2, q.p1), d0)
	var out []float64
	for _, c := range [2][2]float64{{d0.X, dd.X}, {d0.Y, dd.Y}} {
		if c[1] != 0 {
			if t := -c[0] / c[1]; t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadraticSpline2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	b := hull2(q.p0, q.p2)
	for _, t := range q.Extrema() {
		b = hull2(b.Min, b.Max, q.eval(t))
	}
	return BoundingBox2d[U, C]{b}
}

func (q QuadraticSpline2d[U, C]) Reverse() QuadraticSpline2d[U, C] {
	return QuadraticSpline2d[U, C]{q.p2, q.p1, q.p0}
}

// Subdivide splits the curve at t = 0.5.
func (q QuadraticSpline2d[U, C]) Subdivide() (QuadraticSpline2d[U, C], QuadraticSpline2d[U, C]) {
	pm := q.eval(0.5)
	return QuadraticSpline2d[U, C]{q.p0, lerp2(q.p0, q.p1, 0.5), pm},
		QuadraticSpline2d[U, C]{pm, lerp2(q.p1, q.p2, 0.5), q.p2}
}

// ToCubic raises the degree by one. The result represents the same curve
// exactly.
func (q QuadraticSpline2d[U, C]) ToCubic() CubicSpline2d[U, C] {
	return CubicSpline2d[U, C]{
		q.p0,
		r2.Add(q.p0, r2.Scale(2.0/3.0, r2.Sub(q.p1, q.p0))),
		r2.Add(q.p2, r2.Scale(2.0/3.0, r2.Sub(q.p1, q.p2))),
		q.p2,
	}
}

func (q QuadraticSpline2d[U, C]) Segments(n int) Polyline2d[U, C] {
	return Polyline2d[U, C]{sample2(n, q.eval)}
}

func (q QuadraticSpline2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return q.Segments(NumSegments(maxError, q.MaxSecondDerivativeMagnitude()))
}

func (q QuadraticSpline2d[U, C]) TranslateBy(v Vector2d[U, C]) QuadraticSpline2d[U, C] {
	return q.transform(translate2(v.v))
}

func (q QuadraticSpline2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) QuadraticSpline2d[U, C] {
	return q.transform(rotateAbout2(float64(a), center.p))
}

func (q QuadraticSpline2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) QuadraticSpline2d[U, C] {
	return q.transform(scaleAbout2(scale, center.p))
}

func (q QuadraticSpline2d[U, C]) MirrorAcross(axis Axis2d[U, C]) QuadraticSpline2d[U, C] {
	return q.transform(reflect2(axis.origin, axis.dir))
}

func (q QuadraticSpline2d[U, C]) transform(aff affine2) QuadraticSpline2d[U, C] {
	return QuadraticSpline2d[U, C]{aff.point(q.p0), aff.point(q.p1), aff.point(q.p2)}
}

func (f Frame2d[U, G, L]) RelativeQuadraticSpline(q QuadraticSpline2d[U, G]) QuadraticSpline2d[U, L] {
	return QuadraticSpline2d[U, L](q.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceQuadraticSpline(q QuadraticSpline2d[U, L]) QuadraticSpline2d[U, G] {
	return QuadraticSpline2d[U, G](q.transform(f.toGlobal()))
}

// quadArclen returns the arc length of the quadratic Bézier with the given
// control points.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
func quadArclen(p0, p1, p2 r3.Vec) float64 {
	d2 := r3.Add(r3.Sub(p0, r3.Scale(2, p1)), p2)
	a := r3.Norm2(d2)
	d1 := r3.Sub(p1, p0)
	c := r3.Norm2(d1)
	if a <= 5e-4*c {
		// Nearly straight. Three point Legendre-Gauss quadrature, using the
		// formula from Behdad in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := r3.Norm(r3.Add(r3.Add(r3.Scale(-0.492943519233745, p0), r3.Scale(0.430331482911935, p1)), r3.Scale(0.0626120363218102, p2)))
		v1 := r3.Norm(r3.Scale(0.4444444444444444, r3.Sub(p2, p0)))
		v2 := r3.Norm(r3.Add(r3.Sub(r3.Scale(-0.0626120363218102, p0), r3.Scale(0.430331482911935, p1)), r3.Scale(0.492943519233745, p2)))
		return v0 + v1 + v2
	}
	b := 2.0 * r3.Dot(d2, d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

func lift2(v r2.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y} }
