package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Curve3d is one of [LineSegment3d], [Arc3d], [EllipticalArc3d],
// [QuadraticSpline3d] and [CubicSpline3d]. The zero value is invalid.
//
// Projecting a curve onto a plane or into a sketch plane may change its kind:
// circular arcs become elliptical arcs.
type Curve3d[U, C any] struct {
	// See Curve2d for the layout. Arcs keep their in-plane axis directions in
	// p[1] and p[2].

	kind   CurveKind
	p      [4]r3.Vec
	r0, r1 float64
	a0, a1 float64
}

func (l LineSegment3d[U, C]) Curve() Curve3d[U, C] {
	return Curve3d[U, C]{kind: LineSegmentKind, p: [4]r3.Vec{l.p0, l.p1}}
}

func (a Arc3d[U, C]) Curve() Curve3d[U, C] {
	return Curve3d[U, C]{
		kind: ArcKind,
		p:    [4]r3.Vec{a.center, a.x, a.y},
		r0:   a.radius,
		a0:   a.start,
		a1:   a.sweep,
	}
}

func (e EllipticalArc3d[U, C]) Curve() Curve3d[U, C] {
	return Curve3d[U, C]{
		kind: EllipticalArcKind,
		p:    [4]r3.Vec{e.center, e.x, e.y},
		r0:   e.rx,
		r1:   e.ry,
		a0:   e.start,
		a1:   e.sweep,
	}
}

func (q QuadraticSpline3d[U, C]) Curve() Curve3d[U, C] {
	return Curve3d[U, C]{kind: QuadraticSplineKind, p: [4]r3.Vec{q.p0, q.p1, q.p2}}
}

func (c CubicSpline3d[U, C]) Curve() Curve3d[U, C] {
	return Curve3d[U, C]{kind: CubicSplineKind, p: [4]r3.Vec{c.p0, c.p1, c.p2, c.p3}}
}

func (c Curve3d[U, C]) Kind() CurveKind { return c.kind }

func (c Curve3d[U, C]) LineSegment() (LineSegment3d[U, C], bool) {
	return c.lineSegment(), c.kind == LineSegmentKind
}

func (c Curve3d[U, C]) Arc() (Arc3d[U, C], bool) {
	return c.arc(), c.kind == ArcKind
}

func (c Curve3d[U, C]) EllipticalArc() (EllipticalArc3d[U, C], bool) {
	return c.ellipticalArc(), c.kind == EllipticalArcKind
}

func (c Curve3d[U, C]) QuadraticSpline() (QuadraticSpline3d[U, C], bool) {
	return c.quadraticSpline(), c.kind == QuadraticSplineKind
}

func (c Curve3d[U, C]) CubicSpline() (CubicSpline3d[U, C], bool) {
	return c.cubicSpline(), c.kind == CubicSplineKind
}

func (c Curve3d[U, C]) lineSegment() LineSegment3d[U, C] {
	return LineSegment3d[U, C]{c.p[0], c.p[1]}
}

func (c Curve3d[U, C]) arc() Arc3d[U, C] {
	return Arc3d[U, C]{center: c.p[0], x: c.p[1], y: c.p[2], radius: c.r0, start: c.a0, sweep: c.a1}
}

func (c Curve3d[U, C]) ellipticalArc() EllipticalArc3d[U, C] {
	return EllipticalArc3d[U, C]{
		center: c.p[0],
		x:      c.p[1],
		y:      c.p[2],
		rx:     c.r0,
		ry:     c.r1,
		start:  c.a0,
		sweep:  c.a1,
	}
}

func (c Curve3d[U, C]) quadraticSpline() QuadraticSpline3d[U, C] {
	return QuadraticSpline3d[U, C]{c.p[0], c.p[1], c.p[2]}
}

func (c Curve3d[U, C]) cubicSpline() CubicSpline3d[U, C] {
	return CubicSpline3d[U, C]{c.p[0], c.p[1], c.p[2], c.p[3]}
}

func (c Curve3d[U, C]) invalid() string {
	return fmt.Sprintf("invalid Curve3d kind %v", c.kind)
}

func (c Curve3d[U, C]) String() string {
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

func (c Curve3d[U, C]) PointOn(t float64) Point3d[U, C] {
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

func (c Curve3d[U, C]) StartPoint() Point3d[U, C] { return c.PointOn(0) }
func (c Curve3d[U, C]) EndPoint() Point3d[U, C]   { return c.PointOn(1) }

func (c Curve3d[U, C]) FirstDerivative(t float64) Vector3d[U, C] {
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

func (c Curve3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
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

func (c Curve3d[U, C]) Length() quantity.Quantity[U] {
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

func (c Curve3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
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

func (c Curve3d[U, C]) Reverse() Curve3d[U, C] {
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

func (c Curve3d[U, C]) Segments(n int) Polyline3d[U, C] {
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

func (c Curve3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return c.Segments(NumSegments(maxError, c.MaxSecondDerivativeMagnitude()))
}

func (c Curve3d[U, C]) TranslateBy(v Vector3d[U, C]) Curve3d[U, C] {
	return c.transform(translate3(v.v))
}

func (c Curve3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Curve3d[U, C] {
	return c.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (c Curve3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Curve3d[U, C] {
	return c.transform(scaleAbout3(scale, center.p))
}

func (c Curve3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Curve3d[U, C] {
	return c.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto projects the curve orthogonally onto plane. Circular arcs
// become elliptical arcs.
func (c Curve3d[U, C]) ProjectOnto(plane Plane3d[U, C]) Curve3d[U, C] {
	switch c.kind {
	case LineSegmentKind:
		return c.lineSegment().ProjectOnto(plane).Curve()
	case ArcKind:
		return c.arc().ProjectOnto(plane).Curve()
	case EllipticalArcKind:
		return c.ellipticalArc().ProjectOnto(plane).Curve()
	case QuadraticSplineKind:
		return c.quadraticSpline().ProjectOnto(plane).Curve()
	case CubicSplineKind:
		return c.cubicSpline().ProjectOnto(plane).Curve()
	default:
		panic(c.invalid())
	}
}

func (c Curve3d[U, C]) transform(aff affine3) Curve3d[U, C] {
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

func (f Frame3d[U, G, L]) RelativeCurve(c Curve3d[U, G]) Curve3d[U, L] {
	return Curve3d[U, L](c.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceCurve(c Curve3d[U, L]) Curve3d[U, G] {
	return Curve3d[U, G](c.transform(f.toGlobal()))
}

// CurveOn lifts c onto the sketch plane. The kind is preserved.
func (sp SketchPlane3d[U, G, L]) CurveOn(c Curve2d[U, L]) Curve3d[U, G] {
	switch c.kind {
	case LineSegmentKind:
		return sp.LineSegmentOn(c.lineSegment()).Curve()
	case ArcKind:
		return sp.ArcOn(c.arc()).Curve()
	case EllipticalArcKind:
		return sp.EllipticalArcOn(c.ellipticalArc()).Curve()
	case QuadraticSplineKind:
		return sp.QuadraticSplineOn(c.quadraticSpline()).Curve()
	case CubicSplineKind:
		return sp.CubicSplineOn(c.cubicSpline()).Curve()
	default:
		panic(c.invalid())
	}
}

// ProjectCurve projects c orthogonally into the sketch plane. Circular arcs
// become elliptical arcs.
func (sp SketchPlane3d[U, G, L]) ProjectCurve(c Curve3d[U, G]) Curve2d[U, L] {
	switch c.kind {
	case LineSegmentKind:
		return sp.ProjectLineSegment(c.lineSegment()).Curve()
	case ArcKind:
		return sp.ProjectArc(c.arc()).Curve()
	case EllipticalArcKind:
		return sp.ProjectEllipticalArc(c.ellipticalArc()).Curve()
	case QuadraticSplineKind:
		return sp.ProjectQuadraticSpline(c.quadraticSpline()).Curve()
	case CubicSplineKind:
		return sp.ProjectCubicSpline(c.cubicSpline()).Curve()
	default:
		panic(c.invalid())
	}
}
