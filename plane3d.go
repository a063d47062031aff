package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Plane3d is an infinite plane, defined by an origin point and a normal
// direction. The normal distinguishes the two sides of the plane.
type Plane3d[U, C any] struct {
	origin r3.Vec
	normal r3.Vec
}

func NewPlane3d[U, C any](origin Point3d[U, C], normal Direction3d[C]) Plane3d[U, C] {
	return Plane3d[U, C]{origin.p, normal.d}
}

// XYPlane returns the plane through the origin with normal +Z.
func XYPlane[U, C any]() Plane3d[U, C] { return Plane3d[U, C]{normal: r3.Vec{Z: 1}} }

// YZPlane returns the plane through the origin with normal +X.
func YZPlane[U, C any]() Plane3d[U, C] { return Plane3d[U, C]{normal: r3.Vec{X: 1}} }

// ZXPlane returns the plane through the origin with normal +Y.
func ZXPlane[U, C any]() Plane3d[U, C] { return Plane3d[U, C]{normal: r3.Vec{Y: 1}} }

// Plane3dThroughPoints returns the plane through the three points, with
// origin p1 and a normal following the right-hand rule for p1, p2, p3. It
// returns false if the points are collinear.
func Plane3dThroughPoints[U, C any](p1, p2, p3 Point3d[U, C]) (Plane3d[U, C], bool) {
	n, ok := normal3(p1.p, p2.p, p3.p)
	if !ok {
		return Plane3d[U, C]{}, false
	}
	return Plane3d[U, C]{p1.p, n}, true
}

func (pl Plane3d[U, C]) OriginPoint() Point3d[U, C]      { return Point3d[U, C]{pl.origin} }
func (pl Plane3d[U, C]) NormalDirection() Direction3d[C] { return Direction3d[C]{pl.normal} }
func (pl Plane3d[U, C]) NormalAxis() Axis3d[U, C]        { return Axis3d[U, C]{pl.origin, pl.normal} }

func (pl Plane3d[U, C]) String() string {
	return fmt.Sprintf("Plane3d(%v, %v)", pl.OriginPoint(), pl.NormalDirection())
}

func (pl Plane3d[U, C]) IsNaN() bool { return isNaN3(pl.origin) || isNaN3(pl.normal) }

// Offset moves the plane by distance along its normal.
func (pl Plane3d[U, C]) Offset(distance quantity.Quantity[U]) Plane3d[U, C] {
	return Plane3d[U, C]{r3.Add(pl.origin, r3.Scale(float64(distance), pl.normal)), pl.normal}
}

// Reverse flips the plane's normal.
func (pl Plane3d[U, C]) Reverse() Plane3d[U, C] {
	return Plane3d[U, C]{pl.origin, r3.Scale(-1, pl.normal)}
}

func (pl Plane3d[U, C]) MoveTo(p Point3d[U, C]) Plane3d[U, C] {
	return Plane3d[U, C]{p.p, pl.normal}
}

func (pl Plane3d[U, C]) TranslateBy(v Vector3d[U, C]) Plane3d[U, C] {
	return pl.transform(translate3(v.v))
}

func (pl Plane3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Plane3d[U, C] {
	return pl.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (pl Plane3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Plane3d[U, C] {
	return pl.transform(scaleAbout3(scale, center.p))
}

func (pl Plane3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Plane3d[U, C] {
	return pl.transform(reflect3(plane.origin, plane.normal))
}

func (pl Plane3d[U, C]) transform(aff affine3) Plane3d[U, C] {
	return Plane3d[U, C]{aff.point(pl.origin), aff.direction(pl.normal)}
}

func (f Frame3d[U, G, L]) RelativePlane(pl Plane3d[U, G]) Plane3d[U, L] {
	return Plane3d[U, L](pl.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlacePlane(pl Plane3d[U, L]) Plane3d[U, G] {
	return Plane3d[U, G](pl.transform(f.toGlobal()))
}
