package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// EllipticalArc2d is an arc of an ellipse, parametrized as
//
//	center + rx·cos(θ)·x + ry·sin(θ)·y,  θ = start + t·sweep
//
// where x and y are the ellipse's perpendicular axis directions. The axes may
// form a left-handed pair, which is how mirrored arcs are represented.
type EllipticalArc2d[U, C any] struct {
	center     r2.Vec
	xdir, ydir r2.Vec
	rx, ry     float64
	start      float64
	sweep      float64
}

// EllipticalArc2dWith returns the elliptical arc with the given center, X
// axis direction, radii and angles. The Y axis direction is perpendicular
// to xDirection, counterclockwise. Radii are made non-negative.
func EllipticalArc2dWith[U, C any](
	center Point2d[U, C],
	xDirection Direction2d[C],
	xRadius, yRadius quantity.Quantity[U],
	start, sweep angle.Angle,
) EllipticalArc2d[U, C] {
	return EllipticalArc2d[U, C]{
		center: center.p,
		xdir:   xDirection.d,
		ydir:   perp2(xDirection.d),
		rx:     math.Abs(float64(xRadius)),
		ry:     math.Abs(float64(yRadius)),
		start:  float64(start),
		sweep:  float64(sweep),
	}
}

// ellipticalArc2dFromConjugate builds an elliptical arc from the parametric
// form center + u·cos(θ) + v·sin(θ), where u and v need be neither
// perpendicular nor of equal length. This is what circular arcs become under
// orthogonal projection.
func ellipticalArc2dFromConjugate[U, C any](center, u, v r2.Vec, start, sweep float64) EllipticalArc2d[U, C] {
	m := affine2{u.X, u.Y, v.X, v.Y, 0, 0}
	radii, th := m.svd()
	sin, cos := math.Sincos(th)
	e1 := r2.Vec{X: cos, Y: sin}
	e2 := perp2(e1)
	// w = Uᵀ·M. Its first row is rx·(cos φ, sin φ) for the phase φ between
	// the two parametrizations, and its determinant tells whether the axis
	// pair must be left-handed.
	w00, w01 := r2.Dot(e1, u), r2.Dot(e1, v)
	w10, w11 := r2.Dot(e2, u), r2.Dot(e2, v)
	phi := math.Atan2(w01, w00)
	ydir := e2
	if w00*w11-w01*w10 < 0 {
		ydir = r2.Scale(-1, e2)
	}
	return EllipticalArc2d[U, C]{
		center: center,
		xdir:   e1,
		ydir:   ydir,
		rx:     radii.X,
		ry:     radii.Y,
		start:  start - phi,
		sweep:  sweep,
	}
}

func (e EllipticalArc2d[U, C]) CenterPoint() Point2d[U, C]    { return Point2d[U, C]{e.center} }
func (e EllipticalArc2d[U, C]) XDirection() Direction2d[C]    { return Direction2d[C]{e.xdir} }
func (e EllipticalArc2d[U, C]) YDirection() Direction2d[C]    { return Direction2d[C]{e.ydir} }
func (e EllipticalArc2d[U, C]) XRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.rx) }
func (e EllipticalArc2d[U, C]) YRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.ry) }
func (e EllipticalArc2d[U, C]) StartAngle() angle.Angle       { return angle.Angle(e.start) }
func (e EllipticalArc2d[U, C]) SweptAngle() angle.Angle       { return angle.Angle(e.sweep) }

func (e EllipticalArc2d[U, C]) XAxis() Axis2d[U, C] { return Axis2d[U, C]{e.center, e.xdir} }
func (e EllipticalArc2d[U, C]) YAxis() Axis2d[U, C] { return Axis2d[U, C]{e.center, e.ydir} }

func (e EllipticalArc2d[U, C]) String() string {
	return fmt.Sprintf("EllipticalArc2d(%v, %v, %g, %g, %v, %v)",
		e.CenterPoint(), e.XDirection(), e.rx, e.ry, e.StartAngle(), e.SweptAngle())
}

func (e EllipticalArc2d[U, C]) IsNaN() bool {
	return e.CenterPoint().IsNaN() || math.IsNaN(e.rx) || math.IsNaN(e.ry) ||
		math.IsNaN(e.start) || math.IsNaN(e.sweep)
}

func (e EllipticalArc2d[U, C]) at(th float64) r2.Vec {
	sin, cos := math.Sincos(th)
	return r2.Add(e.center, r2.Add(r2.Scale(e.rx*cos, e.xdir), r2.Scale(e.ry*sin, e.ydir)))
}

func (e EllipticalArc2d[U, C]) eval(t float64) r2.Vec {
	return e.at(e.start + t*e.sweep)
}

func (e EllipticalArc2d[U, C]) derivative(t float64) r2.Vec {
	sin, cos := math.Sincos(e.start + t*e.sweep)
	return r2.Scale(e.sweep, r2.Add(r2.Scale(-e.rx*sin, e.xdir), r2.Scale(e.ry*cos, e.ydir)))
}

func (e EllipticalArc2d[U, C]) StartPoint() Point2d[U, C] { return Point2d[U, C]{e.eval(0)} }
func (e EllipticalArc2d[U, C]) EndPoint() Point2d[U, C]   { return Point2d[U, C]{e.eval(1)} }

func (e EllipticalArc2d[U, C]) PointOn(t float64) Point2d[U, C] {
	return Point2d[U, C]{e.eval(t)}
}

func (e EllipticalArc2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	return Vector2d[U, C]{e.derivative(t)}
}

func (e EllipticalArc2d[U, C]) SecondDerivative(t float64) Vector2d[U, C] {
	p := r2.Sub(e.eval(t), e.center)
	return Vector2d[U, C]{r2.Scale(-e.sweep*e.sweep, p)}
}

// MaxSecondDerivativeMagnitude returns max(rx, ry)·sweep².
func (e EllipticalArc2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](max(e.rx, e.ry) * e.sweep * e.sweep)
}

// Length returns the arc length, computed numerically to within
// DefaultTolerance.
func (e EllipticalArc2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](integrate(func(t float64) float64 {
		return r2.Norm(e.derivative(t))
	}, 0, 1, DefaultTolerance))
}

// BoundingBox returns the tight bounding box of the arc.
func (e EllipticalArc2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	b := hull2(e.eval(0), e.eval(1))
	// Extrema of each coordinate are where its derivative with respect to θ
	// vanishes.
	for _, th0 := range [2]float64{
		math.Atan2(e.ry*e.ydir.X, e.rx*e.xdir.X),
		math.Atan2(e.ry*e.ydir.Y, e.rx*e.xdir.Y),
	} {
		for _, th := range [2]float64{th0, th0 + math.Pi} {
			if sweepContains(th, e.start, e.sweep) {
				b = hull2(b.Min, b.Max, e.at(th))
			}
		}
	}
	return BoundingBox2d[U, C]{b}
}

func (e EllipticalArc2d[U, C]) Reverse() EllipticalArc2d[U, C] {
	e.start += e.sweep
	e.sweep = -e.sweep
	return e
}

func (e EllipticalArc2d[U, C]) Segments(n int) Polyline2d[U, C] {
	return Polyline2d[U, C]{sample2(n, e.eval)}
}

func (e EllipticalArc2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return e.Segments(NumSegments(maxError, e.MaxSecondDerivativeMagnitude()))
}

func (e EllipticalArc2d[U, C]) TranslateBy(v Vector2d[U, C]) EllipticalArc2d[U, C] {
	e.center = r2.Add(e.center, v.v)
	return e
}

func (e EllipticalArc2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) EllipticalArc2d[U, C] {
	return e.transform(rotateAbout2(float64(a), center.p))
}

func (e EllipticalArc2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) EllipticalArc2d[U, C] {
	return e.transform(scaleAbout2(scale, center.p))
}

func (e EllipticalArc2d[U, C]) MirrorAcross(axis Axis2d[U, C]) EllipticalArc2d[U, C] {
	return e.transform(reflect2(axis.origin, axis.dir))
}

// transform maps the axes along with the center, so the parametrization and
// therefore the angles are unchanged.
func (e EllipticalArc2d[U, C]) transform(aff affine2) EllipticalArc2d[U, C] {
	s := aff.scale()
	e.center = aff.point(e.center)
	e.xdir = aff.direction(e.xdir)
	e.ydir = aff.direction(e.ydir)
	e.rx *= s
	e.ry *= s
	return e
}

func (f Frame2d[U, G, L]) RelativeEllipticalArc(e EllipticalArc2d[U, G]) EllipticalArc2d[U, L] {
	return EllipticalArc2d[U, L](e.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceEllipticalArc(e EllipticalArc2d[U, L]) EllipticalArc2d[U, G] {
	return EllipticalArc2d[U, G](e.transform(f.toGlobal()))
}
