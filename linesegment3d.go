package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// LineSegment3d is the straight segment between two points in 3D.
type LineSegment3d[U, C any] struct {
	p0, p1 r3.Vec
}

func LineSegment3dFrom[U, C any](start, end Point3d[U, C]) LineSegment3d[U, C] {
	return LineSegment3d[U, C]{start.p, end.p}
}

func (l LineSegment3d[U, C]) StartPoint() Point3d[U, C] { return Point3d[U, C]{l.p0} }
func (l LineSegment3d[U, C]) EndPoint() Point3d[U, C]   { return Point3d[U, C]{l.p1} }

func (l LineSegment3d[U, C]) Endpoints() (start, end Point3d[U, C]) {
	return Point3d[U, C]{l.p0}, Point3d[U, C]{l.p1}
}

func (l LineSegment3d[U, C]) String() string {
	return fmt.Sprintf("LineSegment3d(%v, %v)", l.StartPoint(), l.EndPoint())
}

func (l LineSegment3d[U, C]) IsInf() bool { return isInf3(l.p0) || isInf3(l.p1) }
func (l LineSegment3d[U, C]) IsNaN() bool { return isNaN3(l.p0) || isNaN3(l.p1) }

func (l LineSegment3d[U, C]) Midpoint() Point3d[U, C] {
	return Point3d[U, C]{lerp3(l.p0, l.p1, 0.5)}
}

func (l LineSegment3d[U, C]) Vector() Vector3d[U, C] {
	return Vector3d[U, C]{r3.Sub(l.p1, l.p0)}
}

// Direction returns false if the segment has zero length.
func (l LineSegment3d[U, C]) Direction() (Direction3d[C], bool) {
	return l.Vector().Direction()
}

func (l LineSegment3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Norm(r3.Sub(l.p1, l.p0)))
}

func (l LineSegment3d[U, C]) PointOn(t float64) Point3d[U, C] {
	return Point3d[U, C]{lerp3(l.p0, l.p1, t)}
}

func (l LineSegment3d[U, C]) FirstDerivative(t float64) Vector3d[U, C]  { return l.Vector() }
func (l LineSegment3d[U, C]) SecondDerivative(t float64) Vector3d[U, C] { return Vector3d[U, C]{} }

func (l LineSegment3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return 0
}

func (l LineSegment3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{hull3(l.p0, l.p1)}
}

func (l LineSegment3d[U, C]) Reverse() LineSegment3d[U, C] {
	return LineSegment3d[U, C]{l.p1, l.p0}
}

func (l LineSegment3d[U, C]) Segments(n int) Polyline3d[U, C] {
	return Polyline3d[U, C]{sample3(n, func(t float64) r3.Vec { return lerp3(l.p0, l.p1, t) })}
}

func (l LineSegment3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return l.Segments(NumSegments(maxError, l.MaxSecondDerivativeMagnitude()))
}

func (l LineSegment3d[U, C]) TranslateBy(v Vector3d[U, C]) LineSegment3d[U, C] {
	return l.transform(translate3(v.v))
}

func (l LineSegment3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) LineSegment3d[U, C] {
	return l.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (l LineSegment3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) LineSegment3d[U, C] {
	return l.transform(scaleAbout3(scale, center.p))
}

func (l LineSegment3d[U, C]) MirrorAcross(plane Plane3d[U, C]) LineSegment3d[U, C] {
	return l.transform(reflect3(plane.origin, plane.normal))
}

func (l LineSegment3d[U, C]) ProjectOnto(plane Plane3d[U, C]) LineSegment3d[U, C] {
	return l.transform(project3(plane.origin, plane.normal))
}

func (l LineSegment3d[U, C]) transform(aff affine3) LineSegment3d[U, C] {
	return LineSegment3d[U, C]{aff.point(l.p0), aff.point(l.p1)}
}

func (f Frame3d[U, G, L]) RelativeLineSegment(l LineSegment3d[U, G]) LineSegment3d[U, L] {
	return LineSegment3d[U, L](l.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceLineSegment(l LineSegment3d[U, L]) LineSegment3d[U, G] {
	return LineSegment3d[U, G](l.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) LineSegmentOn(l LineSegment2d[U, L]) LineSegment3d[U, G] {
	return LineSegment3d[U, G]{sp.liftPoint(l.p0), sp.liftPoint(l.p1)}
}

// ProjectLineSegment projects l orthogonally into the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectLineSegment(l LineSegment3d[U, G]) LineSegment2d[U, L] {
	return LineSegment2d[U, L]{sp.projectPoint(l.p0), sp.projectPoint(l.p1)}
}
