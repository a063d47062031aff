package geometry

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
)

// Frame3d is a 3D coordinate system: an origin point and three mutually
// perpendicular unit axes. The frame is expressed in global coordinates G and
// defines local coordinates L. See [Frame2d] for how values are converted.
type Frame3d[U, G, L any] struct {
	origin  r3.Vec
	x, y, z r3.Vec
}

func AtOrigin3d[U, G, L any]() Frame3d[U, G, L] {
	return Frame3d[U, G, L]{x: r3.Vec{X: 1}, y: r3.Vec{Y: 1}, z: r3.Vec{Z: 1}}
}

// AtPoint3d returns an axis-aligned frame with origin p.
func AtPoint3d[L, U, G any](p Point3d[U, G]) Frame3d[U, G, L] {
	return Frame3d[U, G, L]{origin: p.p, x: r3.Vec{X: 1}, y: r3.Vec{Y: 1}, z: r3.Vec{Z: 1}}
}

// Frame3dWithZDirection returns a right-handed frame with the given origin
// and Z direction. The X and Y directions are chosen arbitrarily.
func Frame3dWithZDirection[L, U, G any](origin Point3d[U, G], z Direction3d[G]) Frame3d[U, G, L] {
	x, y := z.PerpendicularBasis()
	return Frame3d[U, G, L]{origin.p, x.d, y.d, z.d}
}

// Frame3dWithXDirection returns a right-handed frame with the given origin
// and X direction. The Y and Z directions are chosen arbitrarily.
func Frame3dWithXDirection[L, U, G any](origin Point3d[U, G], x Direction3d[G]) Frame3d[U, G, L] {
	y, z := x.PerpendicularBasis()
	return Frame3d[U, G, L]{origin.p, x.d, y.d, z.d}
}

func Frame3dFromZAxis[L, U, G any](axis Axis3d[U, G]) Frame3d[U, G, L] {
	return Frame3dWithZDirection[L](axis.OriginPoint(), axis.Direction())
}

func Frame3dFromXAxis[L, U, G any](axis Axis3d[U, G]) Frame3d[U, G, L] {
	return Frame3dWithXDirection[L](axis.OriginPoint(), axis.Direction())
}

// UnsafeFrame3d constructs a frame from the given axes without checking
// them. The caller must ensure that the axes are mutually perpendicular.
func UnsafeFrame3d[L, U, G any](origin Point3d[U, G], x, y, z Direction3d[G]) Frame3d[U, G, L] {
	return Frame3d[U, G, L]{origin.p, x.d, y.d, z.d}
}

func (f Frame3d[U, G, L]) OriginPoint() Point3d[U, G] { return Point3d[U, G]{f.origin} }
func (f Frame3d[U, G, L]) XDirection() Direction3d[G] { return Direction3d[G]{f.x} }
func (f Frame3d[U, G, L]) YDirection() Direction3d[G] { return Direction3d[G]{f.y} }
func (f Frame3d[U, G, L]) ZDirection() Direction3d[G] { return Direction3d[G]{f.z} }
func (f Frame3d[U, G, L]) XAxis() Axis3d[U, G]        { return Axis3d[U, G]{f.origin, f.x} }
func (f Frame3d[U, G, L]) YAxis() Axis3d[U, G]        { return Axis3d[U, G]{f.origin, f.y} }
func (f Frame3d[U, G, L]) ZAxis() Axis3d[U, G]        { return Axis3d[U, G]{f.origin, f.z} }

// XYPlane returns the plane through the frame's origin with the frame's Z
// direction as its normal.
func (f Frame3d[U, G, L]) XYPlane() Plane3d[U, G] { return Plane3d[U, G]{f.origin, f.z} }
func (f Frame3d[U, G, L]) YZPlane() Plane3d[U, G] { return Plane3d[U, G]{f.origin, f.x} }
func (f Frame3d[U, G, L]) ZXPlane() Plane3d[U, G] { return Plane3d[U, G]{f.origin, f.y} }

func (f Frame3d[U, G, L]) IsRightHanded() bool {
	return r3.Dot(r3.Cross(f.x, f.y), f.z) > 0
}

func (f Frame3d[U, G, L]) ReverseX() Frame3d[U, G, L] {
	f.x = r3.Scale(-1, f.x)
	return f
}

func (f Frame3d[U, G, L]) ReverseY() Frame3d[U, G, L] {
	f.y = r3.Scale(-1, f.y)
	return f
}

func (f Frame3d[U, G, L]) ReverseZ() Frame3d[U, G, L] {
	f.z = r3.Scale(-1, f.z)
	return f
}

func (f Frame3d[U, G, L]) MoveTo(p Point3d[U, G]) Frame3d[U, G, L] {
	f.origin = p.p
	return f
}

func (f Frame3d[U, G, L]) String() string {
	return fmt.Sprintf("Frame3d(%v, %v, %v, %v)", f.OriginPoint(), f.XDirection(), f.YDirection(), f.ZDirection())
}

func (f Frame3d[U, G, L]) TranslateBy(v Vector3d[U, G]) Frame3d[U, G, L] {
	return f.transform(translate3(v.v))
}

func (f Frame3d[U, G, L]) RotateAround(axis Axis3d[U, G], a angle.Angle) Frame3d[U, G, L] {
	return f.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

// MirrorAcross reflects the frame across plane. The result has the opposite
// handedness.
func (f Frame3d[U, G, L]) MirrorAcross(plane Plane3d[U, G]) Frame3d[U, G, L] {
	return f.transform(reflect3(plane.origin, plane.normal))
}

func (f Frame3d[U, G, L]) transform(aff affine3) Frame3d[U, G, L] {
	return Frame3d[U, G, L]{aff.point(f.origin), aff.direction(f.x), aff.direction(f.y), aff.direction(f.z)}
}

func (f Frame3d[U, G, L]) toGlobal() affine3 {
	return basis3(f.origin, f.x, f.y, f.z)
}

func (f Frame3d[U, G, L]) toLocal() affine3 {
	return f.toGlobal().invert()
}

// Aff4 returns the transformation from local to global coordinates as a
// row-major affine matrix, in the base units of U.
func (f Frame3d[U, G, L]) Aff4() f64.Aff4 {
	return f64.Aff4{
		f.x.X, f.y.X, f.z.X, f.origin.X,
		f.x.Y, f.y.Y, f.z.Y, f.origin.Y,
		f.x.Z, f.y.Z, f.z.Z, f.origin.Z,
	}
}

// RelativeFrame3d expresses the frame other, which is defined in the same
// global coordinates as f, relative to f.
func RelativeFrame3d[U, G, L, M any](f Frame3d[U, G, L], other Frame3d[U, G, M]) Frame3d[U, L, M] {
	return Frame3d[U, L, M](other.transform(f.toLocal()))
}

// PlaceFrame3d is the inverse of [RelativeFrame3d].
func PlaceFrame3d[U, G, L, M any](f Frame3d[U, G, L], other Frame3d[U, L, M]) Frame3d[U, G, M] {
	return Frame3d[U, G, M](other.transform(f.toGlobal()))
}
