package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type CurveKind int

const (
	// A straight line segment.
	LineSegmentKind CurveKind = iota + 1
	// A circular arc.
	ArcKind
	// An elliptical arc.
	EllipticalArcKind
	// A quadratic Bézier curve.
	QuadraticSplineKind
	// A cubic Bézier curve.
	CubicSplineKind
)

func (k CurveKind) String() string {
	switch k {
	case LineSegmentKind:
		return "LineSegment"
	case ArcKind:
		return "Arc"
	case EllipticalArcKind:
		return "EllipticalArc"
	case QuadraticSplineKind:
		return "QuadraticSpline"
	case CubicSplineKind:
		return "CubicSpline"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve2d is one of [LineSegment2d], [Arc2d], [EllipticalArc2d],
// [QuadraticSpline2d] and [CubicSpline2d]. The zero value is invalid.
//
// The set of kinds is closed. Every method dispatches on the kind and panics
// on a value that wasn't built by one of the constructors.
type Curve2d[U, C any] struct {
	// We don't use an interface for Curve2d because we want the variants'
	// transformations to return their respective types. This also avoids
	// allocating.
	//
	// Points and vectors are stored in p, radii in r0 and r1, and angles in
	// a0 (start) and a1 (sweep). Which of them are used depends on kind.

	kind   CurveKind
	p      [4]r2.Vec
	r0, r1 float64
	a0, a1 float64
}

func (l LineSegment2d[U, C]) Curve() Curve2d[U, C] {
	return Curve2d[U, C]{kind: LineSegmentKind, p: [4]r2.Vec{l.p0, l.p1}}
}

func (a Arc2d[U, C]) Curve() Curve2d[U, C] {
	return Curve2d[U, C]{kind: ArcKind, p: [4]r2.Vec{a.center}, r0: a.radius, a0: a.start, a1: a.sweep}
}

func (e EllipticalArc2d[U, C]) Curve() Curve2d[U, C] {
	return Curve2d[U, C]{
		kind: EllipticalArcKind,
		p:    [4]r2.Vec{e.center, e.xdir, e.ydir},
		r0:   e.rx,
		r1:   e.ry,
		a0:   e.start,
		a1:   e.sweep,
	}
}

func (q QuadraticSpline2d[U, C]) Curve() Curve2d[U, C] {
	return Curve2d[U, C]{kind: QuadraticSplineKind, p: [4]r2.Vec{q.p0, q.p1, q.p2}}
}

func (c CubicSpline2d[U, C]) Curve() Curve2d[U, C] {
	return Curve2d[U, C]{kind: CubicSplineKind, p: [4]r2.Vec{c.p0, c.p1, c.p2, c.p3}}
}

func (c Curve2d[U, C]) Kind() CurveKind { return c.kind }

// LineSegment returns the curve as a line segment. It returns false if the
// curve is of a different kind.
func (c Curve2d[U, C]) LineSegment() (LineSegment2d[U, C], bool) {
	return c.lineSegment(), c.kind == LineSegmentKind
}

func (c Curve2d[U, C]) Arc() (Arc2d[U, C], bool) {
	return c.arc(), c.kind == ArcKind
}

func (c Curve2d[U, C]) EllipticalArc() (EllipticalArc2d[U, C], bool) {
	return c.ellipticalArc(), c.kind == EllipticalArcKind
}

func (c Curve2d[U, C]) QuadraticSpline() (QuadraticSpline2d[U, C], bool) {
	return c.quadraticSpline(), c.kind == QuadraticSplineKind
}

func (c Curve2d[U, C]) CubicSpline() (CubicSpline2d[U, C], bool) {
	return c.cubicSpline(), c.kind == CubicSplineKind
}

func (c Curve2d[U, C]) lineSegment() LineSegment2d[U, C] {
	return LineSegment2d[U, C]{c.p[0], c.p[1]}
}

func (c Curve2d[U, C]) arc() Arc2d[U, C] {
	return Arc2d[U, C]{center: c.p[0], radius: c.r0, start: c.a0, sweep: c.a1}
}

func (c Curve2d[U, C]) ellipticalArc() EllipticalArc2d[U, C] {
	return EllipticalArc2d[U, C]{
		center: c.p[0],
		xdir:   c.p[1],
		ydir:   c.p[2],
		rx:     c.r0,
		ry:     c.r1,
		start:  c.a0,
		sweep:  c.a1,
	}
}

func (c Curve2d[U, C]) quadraticSpline() QuadraticSpline2d[U, C] {
	return QuadraticSpline2d[U, C]{c.p[0], c.p[1], c.p[2]}
}

func (c Curve2d[U, C]) cubicSpline() CubicSpline2d[U, C] {
	return CubicSpline2d[U, C]{c.p[0], c.p[1], c.p[2], c.p[3]}
}

func (c Curve2d[U, C]) invalid() string {
	return fmt.Sprintf("invalid Curve2d kind %v", c.kind)
}

func (c Curve2d[U, C]) String() string {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().String()
	case ArcKind:
		return c.arc().String()
	case EllipticalArcKind:
		return c.ellipticalArc().String()
	case QuadraticSplineKind:
		return c.quadraticSpline().String()
	case CubicSplineKind:
		return c.cubicSpline().String()
	default:
		return c.invalid()
	}
}

func (c Curve2d[U, C]) PointOn(t float64) Point2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().PointOn(t)
	case ArcKind:
		return c.arc().PointOn(t)
	case EllipticalArcKind:
		return c.ellipticalArc().PointOn(t)
	case QuadraticSplineKind:
		return c.quadraticSpline().PointOn(t)
	case CubicSplineKind:
		return c.cubicSpline().PointOn(t)
	default:
		panic(c.invalid())
	}
}

func (c Curve2d[U, C]) StartPoint() Point2d[U, C] { return c.PointOn(0) }
func (c Curve2d[U, C]) EndPoint() Point2d[U, C]   { return c.PointOn(1) }

func (c Curve2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().FirstDerivative(t)
	case ArcKind:
		return c.arc().FirstDerivative(t)
	case EllipticalArcKind:
		return c.ellipticalArc().FirstDerivative(t)
	case QuadraticSplineKind:
		return c.quadraticSpline().FirstDerivative(t)
	case CubicSplineKind:
		return c.cubicSpline().FirstDerivative(t)
	default:
		panic(c.invalid())
	}
}

func (c Curve2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().MaxSecondDerivativeMagnitude()
	case ArcKind:
		return c.arc().MaxSecondDerivativeMagnitude()
	case EllipticalArcKind:
		return c.ellipticalArc().MaxSecondDerivativeMagnitude()
	case QuadraticSplineKind:
		return c.quadraticSpline().MaxSecondDerivativeMagnitude()
	case CubicSplineKind:
		return c.cubicSpline().MaxSecondDerivativeMagnitude()
	default:
		panic(c.invalid())
	}
}

func (c Curve2d[U, C]) Length() quantity.Quantity[U] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().Length()
	case ArcKind:
		return c.arc().Length()
	case EllipticalArcKind:
		return c.ellipticalArc().Length()
	case QuadraticSplineKind:
		return c.quadraticSpline().Length()
	case CubicSplineKind:
		return c.cubicSpline().Length()
	default:
		panic(c.invalid())
	}
}

func (c Curve2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().BoundingBox()
	case ArcKind:
		return c.arc().BoundingBox()
	case EllipticalArcKind:
		return c.ellipticalArc().BoundingBox()
	case QuadraticSplineKind:
		return c.quadraticSpline().BoundingBox()
	case CubicSplineKind:
		return c.cubicSpline().BoundingBox()
	default:
		panic(c.invalid())
	}
}

func (c Curve2d[U, C]) Reverse() Curve2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().Reverse().Curve()
	case ArcKind:
		return c.arc().Reverse().Curve()
	case EllipticalArcKind:
		return c.ellipticalArc().Reverse().Curve()
	case QuadraticSplineKind:
		return c.quadraticSpline().Reverse().Curve()
	case CubicSplineKind:
		return c.cubicSpline().Reverse().Curve()
	default:
		panic(c.invalid())
	}
}

// Segments returns n segments at uniformly spaced parameter values. It returns
// an empty polyline if n < 1.
func (c Curve2d[U, C]) Segments(n int) Polyline2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().Segments(n)
	case ArcKind:
		return c.arc().Segments(n)
	case EllipticalArcKind:
		return c.ellipticalArc().Segments(n)
	case QuadraticSplineKind:
		return c.quadraticSpline().Segments(n)
	case CubicSplineKind:
		return c.cubicSpline().Segments(n)
	default:
		panic(c.invalid())
	}
}

// Approximate returns a polyline within maxError of the curve, using
// [NumSegments] with the curve's second derivative bound. It returns an empty
// polyline if maxError is not positive.
func (c Curve2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return c.Segments(NumSegments(maxError, c.MaxSecondDerivativeMagnitude()))
}

func (c Curve2d[U, C]) TranslateBy(v Vector2d[U, C]) Curve2d[U, C] {
	return c.transform(translate2(v.v))
}

func (c Curve2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Curve2d[U, C] {
	return c.transform(rotateAbout2(float64(a), center.p))
}

func (c Curve2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Curve2d[U, C] {
	return c.transform(scaleAbout2(scale, center.p))
}

func (c Curve2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Curve2d[U, C] {
	return c.transform(reflect2(axis.origin, axis.dir))
}

func (c Curve2d[U, C]) transform(aff affine2) Curve2d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().transform(aff).Curve()
	case ArcKind:
		return c.arc().transform(aff).Curve()
	case EllipticalArcKind:
		return c.ellipticalArc().transform(aff).Curve()
	case QuadraticSplineKind:
		return c.quadraticSpline().transform(aff).Curve()
	case CubicSplineKind:
		return c.cubicSpline().transform(aff).Curve()
	default:
		panic(c.invalid())
	}
}

func (f Frame2d[U, G, L]) RelativeCurve(c Curve2d[U, G]) Curve2d[U, L] {
	return Curve2d[U, L](c.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceCurve(c Curve2d[U, L]) Curve2d[U, G] {
	return Curve2d[U, G](c.transform(f.toGlobal()))
}
