package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
)

// Axis3d is an infinite directed line in 3D.
type Axis3d[U, C any] struct {
	origin r3.Vec
	dir    r3.Vec
}

func NewAxis3d[U, C any](origin Point3d[U, C], d Direction3d[C]) Axis3d[U, C] {
	return Axis3d[U, C]{origin.p, d.d}
}

func XAxis3d[U, C any]() Axis3d[U, C] { return Axis3d[U, C]{dir: r3.Vec{X: 1}} }
func YAxis3d[U, C any]() Axis3d[U, C] { return Axis3d[U, C]{dir: r3.Vec{Y: 1}} }
func ZAxis3d[U, C any]() Axis3d[U, C] { return Axis3d[U, C]{dir: r3.Vec{Z: 1}} }

// Axis3dThroughPoints returns the axis through p and q, with origin p and
// pointing towards q. It returns false if the points coincide.
func Axis3dThroughPoints[U, C any](p, q Point3d[U, C]) (Axis3d[U, C], bool) {
	d, ok := p.DirectionTo(q)
	if !ok {
		return Axis3d[U, C]{}, false
	}
	return NewAxis3d(p, d), true
}

func (a Axis3d[U, C]) OriginPoint() Point3d[U, C] { return Point3d[U, C]{a.origin} }
func (a Axis3d[U, C]) Direction() Direction3d[C]  { return Direction3d[C]{a.dir} }

func (a Axis3d[U, C]) String() string {
	return fmt.Sprintf("Axis3d(%v, %v)", a.OriginPoint(), a.Direction())
}

func (a Axis3d[U, C]) IsNaN() bool { return isNaN3(a.origin) || isNaN3(a.dir) }

func (a Axis3d[U, C]) Reverse() Axis3d[U, C] {
	return Axis3d[U, C]{a.origin, r3.Scale(-1, a.dir)}
}

func (a Axis3d[U, C]) MoveTo(p Point3d[U, C]) Axis3d[U, C] {
	return Axis3d[U, C]{p.p, a.dir}
}

// NormalPlane returns the plane through the axis' origin with the axis'
// direction as its normal.
func (a Axis3d[U, C]) NormalPlane() Plane3d[U, C] {
	return Plane3d[U, C]{a.origin, a.dir}
}

func (a Axis3d[U, C]) TranslateBy(v Vector3d[U, C]) Axis3d[U, C] {
	return a.transform(translate3(v.v))
}

func (a Axis3d[U, C]) RotateAround(axis Axis3d[U, C], th angle.Angle) Axis3d[U, C] {
	return a.transform(rotateAbout3(float64(th), axis.origin, axis.dir))
}

func (a Axis3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Axis3d[U, C] {
	return a.transform(scaleAbout3(scale, center.p))
}

func (a Axis3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Axis3d[U, C] {
	return a.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto projects the axis onto plane. It returns false if the axis is
// perpendicular to the plane.
func (a Axis3d[U, C]) ProjectOnto(plane Plane3d[U, C]) (Axis3d[U, C], bool) {
	aff := project3(plane.origin, plane.normal)
	d, ok := Vector3d[U, C]{aff.vector(a.dir)}.Direction()
	if !ok {
		return Axis3d[U, C]{}, false
	}
	return Axis3d[U, C]{aff.point(a.origin), d.d}, true
}

func (a Axis3d[U, C]) transform(aff affine3) Axis3d[U, C] {
	return Axis3d[U, C]{aff.point(a.origin), aff.direction(a.dir)}
}

func (f Frame3d[U, G, L]) RelativeAxis(a Axis3d[U, G]) Axis3d[U, L] {
	return Axis3d[U, L](a.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceAxis(a Axis3d[U, L]) Axis3d[U, G] {
	return Axis3d[U, G](a.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) AxisOn(a Axis2d[U, L]) Axis3d[U, G] {
	return Axis3d[U, G]{sp.liftPoint(a.origin), sp.liftVector(a.dir)}
}

// ProjectAxis projects a into the sketch plane. It returns false if a is
// perpendicular to the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectAxis(a Axis3d[U, G]) (Axis2d[U, L], bool) {
	d, ok := sp.ProjectDirection(a.Direction())
	if !ok {
		return Axis2d[U, L]{}, false
	}
	return Axis2d[U, L]{sp.projectPoint(a.origin), d.d}, true
}
