package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Cone3d is a solid right circular cone: a base disk perpendicular to the
// axial direction and a tip at the given length along it.
type Cone3d[U, C any] struct {
	base   r3.Vec
	dir    r3.Vec
	radius float64
	length float64
}

// Cone3dFrom returns the cone with the given base center, tip and base
// radius. It returns false if base and tip coincide.
func Cone3dFrom[U, C any](base, tip Point3d[U, C], radius quantity.Quantity[U]) (Cone3d[U, C], bool) {
	d := r3.Sub(tip.p, base.p)
	l := r3.Norm(d)
	if l == 0 {
		return Cone3d[U, C]{}, false
	}
	return Cone3d[U, C]{base.p, r3.Scale(1/l, d), math.Abs(float64(radius)), l}, true
}

// Cone3dStartingAt returns the cone with the given base center that extends
// along direction. Negative radii are made positive and a negative length
// reverses the direction.
func Cone3dStartingAt[U, C any](base Point3d[U, C], direction Direction3d[C], radius, length quantity.Quantity[U]) Cone3d[U, C] {
	d := direction.d
	if length < 0 {
		d = r3.Scale(-1, d)
	}
	return Cone3d[U, C]{base.p, d, math.Abs(float64(radius)), math.Abs(float64(length))}
}

func (c Cone3d[U, C]) BasePoint() Point3d[U, C]       { return Point3d[U, C]{c.base} }
func (c Cone3d[U, C]) TipPoint() Point3d[U, C]        { return Point3d[U, C]{c.tip()} }
func (c Cone3d[U, C]) AxialDirection() Direction3d[C] { return Direction3d[C]{c.dir} }
func (c Cone3d[U, C]) Axis() Axis3d[U, C]             { return Axis3d[U, C]{c.base, c.dir} }
func (c Cone3d[U, C]) Radius() quantity.Quantity[U]   { return quantity.Quantity[U](c.radius) }
func (c Cone3d[U, C]) Length() quantity.Quantity[U]   { return quantity.Quantity[U](c.length) }
func (c Cone3d[U, C]) BasePlane() Plane3d[U, C]       { return Plane3d[U, C]{c.base, c.dir} }

// BaseCircle returns the edge of the base disk.
func (c Cone3d[U, C]) BaseCircle() Circle3d[U, C] {
	return Circle3d[U, C]{c.base, c.dir, c.radius}
}

func (c Cone3d[U, C]) tip() r3.Vec {
	return r3.Add(c.base, r3.Scale(c.length, c.dir))
}

func (c Cone3d[U, C]) String() string {
	return fmt.Sprintf("Cone3d(%v, %v, %g, %g)", c.BasePoint(), c.AxialDirection(), c.radius, c.length)
}

func (c Cone3d[U, C]) IsNaN() bool {
	return isNaN3(c.base) || isNaN3(c.dir) || math.IsNaN(c.radius) || math.IsNaN(c.length)
}

// Volume returns π·r²·L/3.
func (c Cone3d[U, C]) Volume() quantity.Quantity[quantity.CubedUnits[U]] {
	return quantity.Quantity[quantity.CubedUnits[U]](math.Pi * c.radius * c.radius * c.length / 3)
}

// Contains reports whether p lies inside the cone or on its surface.
func (c Cone3d[U, C]) Contains(p Point3d[U, C]) bool {
	d := r3.Sub(p.p, c.base)
	along := r3.Dot(d, c.dir)
	if along < 0 || along > c.length {
		return false
	}
	radial := r3.Norm(r3.Sub(d, r3.Scale(along, c.dir)))
	return radial*c.length <= c.radius*(c.length-along)
}

// BoundingBox returns the exact bounding box of the cone, which is that of its
// base disk and tip.
func (c Cone3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{extend3(diskHull3(c.base, c.dir, c.radius), c.tip())}
}

func (c Cone3d[U, C]) TranslateBy(v Vector3d[U, C]) Cone3d[U, C] {
	c.base = r3.Add(c.base, v.v)
	return c
}

func (c Cone3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Cone3d[U, C] {
	return c.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (c Cone3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Cone3d[U, C] {
	return c.transform(scaleAbout3(scale, center.p))
}

func (c Cone3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Cone3d[U, C] {
	return c.transform(reflect3(plane.origin, plane.normal))
}

func (c Cone3d[U, C]) transform(aff affine3) Cone3d[U, C] {
	s := aff.scale()
	return Cone3d[U, C]{
		base:   aff.point(c.base),
		dir:    aff.direction(c.dir),
		radius: c.radius * s,
		length: c.length * s,
	}
}

func (f Frame3d[U, G, L]) RelativeCone(c Cone3d[U, G]) Cone3d[U, L] {
	return Cone3d[U, L](c.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceCone(c Cone3d[U, L]) Cone3d[U, G] {
	return Cone3d[U, G](c.transform(f.toGlobal()))
}
