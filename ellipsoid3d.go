package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Ellipsoid3d is a solid ellipsoid, given by the frame it is centered on and
// three non-negative radii along that frame's axes.
type Ellipsoid3d[U, C any] struct {
	center  r3.Vec
	x, y, z r3.Vec
	radii   r3.Vec
}

// Ellipsoid3dWithAxes returns the ellipsoid centered on the origin of axes
// with the given radii along its X, Y and Z directions. Negative radii are
// made positive.
func Ellipsoid3dWithAxes[U, C, L any](axes Frame3d[U, C, L], xRadius, yRadius, zRadius quantity.Quantity[U]) Ellipsoid3d[U, C] {
	return Ellipsoid3d[U, C]{
		center: axes.origin,
		x:      axes.x,
		y:      axes.y,
		z:      axes.z,
		radii: r3.Vec{
			X: math.Abs(float64(xRadius)),
			Y: math.Abs(float64(yRadius)),
			Z: math.Abs(float64(zRadius)),
		},
	}
}

// Ellipsoid3dAxes returns the frame the ellipsoid is defined in. It is
// left-handed if the ellipsoid has been mirrored.
func Ellipsoid3dAxes[L, U, C any](e Ellipsoid3d[U, C]) Frame3d[U, C, L] {
	return Frame3d[U, C, L]{e.center, e.x, e.y, e.z}
}

func (e Ellipsoid3d[U, C]) CenterPoint() Point3d[U, C]    { return Point3d[U, C]{e.center} }
func (e Ellipsoid3d[U, C]) XDirection() Direction3d[C]    { return Direction3d[C]{e.x} }
func (e Ellipsoid3d[U, C]) YDirection() Direction3d[C]    { return Direction3d[C]{e.y} }
func (e Ellipsoid3d[U, C]) ZDirection() Direction3d[C]    { return Direction3d[C]{e.z} }
func (e Ellipsoid3d[U, C]) XRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.radii.X) }
func (e Ellipsoid3d[U, C]) YRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.radii.Y) }
func (e Ellipsoid3d[U, C]) ZRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.radii.Z) }

// IsRightHanded reports whether the ellipsoid's axes form a right-handed
// frame.
func (e Ellipsoid3d[U, C]) IsRightHanded() bool {
	return r3.Dot(r3.Cross(e.x, e.y), e.z) > 0
}

func (e Ellipsoid3d[U, C]) String() string {
	return fmt.Sprintf("Ellipsoid3d(%v, %v, %v, %v, %g, %g, %g)",
		e.CenterPoint(), e.XDirection(), e.YDirection(), e.ZDirection(), e.radii.X, e.radii.Y, e.radii.Z)
}

func (e Ellipsoid3d[U, C]) IsNaN() bool {
	return isNaN3(e.center) || isNaN3(e.x) || isNaN3(e.y) || isNaN3(e.z) || isNaN3(e.radii)
}

// Volume returns 4/3·π·a·b·c.
func (e Ellipsoid3d[U, C]) Volume() quantity.Quantity[quantity.CubedUnits[U]] {
	return quantity.Quantity[quantity.CubedUnits[U]](4.0 / 3.0 * math.Pi * e.radii.X * e.radii.Y * e.radii.Z)
}

// Contains reports whether p lies inside the ellipsoid or on its surface. A
// degenerate ellipsoid contains nothing.
func (e Ellipsoid3d[U, C]) Contains(p Point3d[U, C]) bool {
	d := r3.Sub(p.p, e.center)
	q := r3.Vec{
		X: r3.Dot(d, e.x) / e.radii.X,
		Y: r3.Dot(d, e.y) / e.radii.Y,
		Z: r3.Dot(d, e.z) / e.radii.Z,
	}
	return r3.Norm2(q) <= 1
}

// BoundingBox returns the tight bounding box of the ellipsoid.
func (e Ellipsoid3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	// Like Ellipse2d: the half extent along each global axis is the norm of
	// the corresponding row of the map from the unit sphere.
	u := r3.Scale(e.radii.X, e.x)
	v := r3.Scale(e.radii.Y, e.y)
	w := r3.Scale(e.radii.Z, e.z)
	ext := r3.Vec{
		X: math.Sqrt(u.X*u.X + v.X*v.X + w.X*w.X),
		Y: math.Sqrt(u.Y*u.Y + v.Y*v.Y + w.Y*w.Y),
		Z: math.Sqrt(u.Z*u.Z + v.Z*v.Z + w.Z*w.Z),
	}
	return BoundingBox3d[U, C]{r3.Box{Min: r3.Sub(e.center, ext), Max: r3.Add(e.center, ext)}}
}

func (e Ellipsoid3d[U, C]) TranslateBy(v Vector3d[U, C]) Ellipsoid3d[U, C] {
	e.center = r3.Add(e.center, v.v)
	return e
}

func (e Ellipsoid3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Ellipsoid3d[U, C] {
	return e.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (e Ellipsoid3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Ellipsoid3d[U, C] {
	return e.transform(scaleAbout3(scale, center.p))
}

// MirrorAcross reflects the ellipsoid across plane. Its axes become
// left-handed.
func (e Ellipsoid3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Ellipsoid3d[U, C] {
	return e.transform(reflect3(plane.origin, plane.normal))
}

func (e Ellipsoid3d[U, C]) transform(aff affine3) Ellipsoid3d[U, C] {
	return Ellipsoid3d[U, C]{
		center: aff.point(e.center),
		x:      aff.direction(e.x),
		y:      aff.direction(e.y),
		z:      aff.direction(e.z),
		radii:  r3.Scale(aff.scale(), e.radii),
	}
}

func (f Frame3d[U, G, L]) RelativeEllipsoid(e Ellipsoid3d[U, G]) Ellipsoid3d[U, L] {
	return Ellipsoid3d[U, L](e.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceEllipsoid(e Ellipsoid3d[U, L]) Ellipsoid3d[U, G] {
	return Ellipsoid3d[U, G](e.transform(f.toGlobal()))
}
