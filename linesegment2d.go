package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// LineSegment2d is the straight segment between two points. It is
// parametrized from its start point at t = 0 to its end point at t = 1.
type LineSegment2d[U, C any] struct {
	p0, p1 r2.Vec
}

func LineSegment2dFrom[U, C any](start, end Point2d[U, C]) LineSegment2d[U, C] {
	return LineSegment2d[U, C]{start.p, end.p}
}

func (l LineSegment2d[U, C]) StartPoint() Point2d[U, C] { return Point2d[U, C]{l.p0} }
func (l LineSegment2d[U, C]) EndPoint() Point2d[U, C]   { return Point2d[U, C]{l.p1} }

func (l LineSegment2d[U, C]) Endpoints() (start, end Point2d[U, C]) {
	return Point2d[U, C]{l.p0}, Point2d[U, C]{l.p1}
}

func (l LineSegment2d[U, C]) String() string {
	return fmt.Sprintf("LineSegment2d(%v, %v)", l.StartPoint(), l.EndPoint())
}

func (l LineSegment2d[U, C]) IsInf() bool { return l.StartPoint().IsInf() || l.EndPoint().IsInf() }
func (l LineSegment2d[U, C]) IsNaN() bool { return l.StartPoint().IsNaN() || l.EndPoint().IsNaN() }

func (l LineSegment2d[U, C]) Midpoint() Point2d[U, C] {
	return Point2d[U, C]{lerp2(l.p0, l.p1, 0.5)}
}

// Vector returns the vector from the start point to the end point.
func (l LineSegment2d[U, C]) Vector() Vector2d[U, C] {
	return Vector2d[U, C]{r2.Sub(l.p1, l.p0)}
}

// Direction returns the direction from the start point to the end point. It
// returns false if the segment has zero length.
func (l LineSegment2d[U, C]) Direction() (Direction2d[C], bool) {
	return l.Vector().Direction()
}

func (l LineSegment2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Norm(r2.Sub(l.p1, l.p0)))
}

func (l LineSegment2d[U, C]) PointOn(t float64) Point2d[U, C] {
	return Point2d[U, C]{lerp2(l.p0, l.p1, t)}
}

func (l LineSegment2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	return l.Vector()
}

func (l LineSegment2d[U, C]) SecondDerivative(t float64) Vector2d[U, C] {
	return Vector2d[U, C]{}
}

// MaxSecondDerivativeMagnitude is always zero, so a single segment
// approximates a line segment exactly.
func (l LineSegment2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return 0
}

func (l LineSegment2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{hull2(l.p0, l.p1)}
}

func (l LineSegment2d[U, C]) Reverse() LineSegment2d[U, C] {
	return LineSegment2d[U, C]{l.p1, l.p0}
}

// Segments returns n segments of equal length spanning l. It returns an
// empty polyline if n < 1.
func (l LineSegment2d[U, C]) Segments(n int) Polyline2d[U, C] {
	return Polyline2d[U, C]{sample2(n, func(t float64) r2.Vec { return lerp2(l.p0, l.p1, t) })}
}

func (l LineSegment2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return l.Segments(NumSegments(maxError, l.MaxSecondDerivativeMagnitude()))
}

// Intersection returns the point where the two segments cross. It returns
// false if the segments are parallel or do not meet.
func (l LineSegment2d[U, C]) Intersection(o LineSegment2d[U, C]) (Point2d[U, C], bool) {
	ab := r2.Sub(l.p1, l.p0)
	cd := r2.Sub(o.p1, o.p0)
	pcd := r2.Cross(ab, cd)
	if pcd == 0 {
		return Point2d[U, C]{}, false
	}
	ac := r2.Sub(o.p0, l.p0)
	// t is the position on l, u the position on o.
	t := r2.Cross(ac, cd) / pcd
	u := r2.Cross(ac, ab) / pcd
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point2d[U, C]{}, false
	}
	return Point2d[U, C]{lerp2(l.p0, l.p1, t)}, true
}

func (l LineSegment2d[U, C]) TranslateBy(v Vector2d[U, C]) LineSegment2d[U, C] {
	return l.transform(translate2(v.v))
}

func (l LineSegment2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) LineSegment2d[U, C] {
	return l.transform(rotateAbout2(float64(a), center.p))
}

func (l LineSegment2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) LineSegment2d[U, C] {
	return l.transform(scaleAbout2(scale, center.p))
}

func (l LineSegment2d[U, C]) MirrorAcross(axis Axis2d[U, C]) LineSegment2d[U, C] {
	return l.transform(reflect2(axis.origin, axis.dir))
}

func (l LineSegment2d[U, C]) ProjectOnto(axis Axis2d[U, C]) LineSegment2d[U, C] {
	return LineSegment2d[U, C]{
		projectOntoLine2(l.p0, axis.origin, axis.dir),
		projectOntoLine2(l.p1, axis.origin, axis.dir),
	}
}

func (l LineSegment2d[U, C]) transform(aff affine2) LineSegment2d[U, C] {
	return LineSegment2d[U, C]{aff.point(l.p0), aff.point(l.p1)}
}

func (f Frame2d[U, G, L]) RelativeLineSegment(l LineSegment2d[U, G]) LineSegment2d[U, L] {
	return LineSegment2d[U, L](l.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceLineSegment(l LineSegment2d[U, L]) LineSegment2d[U, G] {
	return LineSegment2d[U, G](l.transform(f.toGlobal()))
}
