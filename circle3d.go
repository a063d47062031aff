package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Circle3d is a circle in 3D: a center point, the unit normal of the
// circle's plane, and a non-negative radius.
type Circle3d[U, C any] struct {
	center r3.Vec
	normal r3.Vec
	radius float64
}

// Circle3dWithRadius returns the circle centered on the origin of axis, lying
// in the plane perpendicular to it. Negative radii are made positive.
func Circle3dWithRadius[U, C any](axis Axis3d[U, C], radius quantity.Quantity[U]) Circle3d[U, C] {
	return Circle3d[U, C]{axis.origin, axis.dir, math.Abs(float64(radius))}
}

// Circle3dThroughPoints returns the circle through the three points. Its
// normal follows the right-hand rule for the points' order. It returns false
// if the points are collinear.
func Circle3dThroughPoints[U, C any](p1, p2, p3 Point3d[U, C]) (Circle3d[U, C], bool) {
	sp, ok := SketchPlane3dThroughPoints[struct{}](p1, p2, p3)
	if !ok {
		return Circle3d[U, C]{}, false
	}
	c, ok := Circle2dThroughPoints(sp.ProjectPoint(p1), sp.ProjectPoint(p2), sp.ProjectPoint(p3))
	if !ok {
		return Circle3d[U, C]{}, false
	}
	return sp.CircleOn(c), true
}

func (c Circle3d[U, C]) CenterPoint() Point3d[U, C]     { return Point3d[U, C]{c.center} }
func (c Circle3d[U, C]) AxialDirection() Direction3d[C] { return Direction3d[C]{c.normal} }
func (c Circle3d[U, C]) Axis() Axis3d[U, C]             { return Axis3d[U, C]{c.center, c.normal} }
func (c Circle3d[U, C]) Plane() Plane3d[U, C]           { return Plane3d[U, C]{c.center, c.normal} }
func (c Circle3d[U, C]) Radius() quantity.Quantity[U]   { return quantity.Quantity[U](c.radius) }
func (c Circle3d[U, C]) Diameter() quantity.Quantity[U] { return quantity.Quantity[U](2 * c.radius) }

func (c Circle3d[U, C]) Circumference() quantity.Quantity[U] {
	return quantity.Quantity[U](2 * math.Pi * c.radius)
}

func (c Circle3d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](math.Pi * c.radius * c.radius)
}

func (c Circle3d[U, C]) String() string {
	return fmt.Sprintf("Circle3d(%v, %v, %v)", c.CenterPoint(), c.AxialDirection(), c.Radius())
}

func (c Circle3d[U, C]) IsNaN() bool {
	return isNaN3(c.center) || isNaN3(c.normal) || math.IsNaN(c.radius)
}

// BoundingBox returns the exact bounding box of the circle.
func (c Circle3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{diskHull3(c.center, c.normal, c.radius)}
}

// ToArc returns the full arc around the circle's axis. Its start point is
// arbitrary.
func (c Circle3d[U, C]) ToArc() Arc3d[U, C] {
	x := perpendicularTo3(c.normal)
	return Arc3d[U, C]{
		center: c.center,
		x:      x,
		y:      r3.Cross(c.normal, x),
		radius: c.radius,
		sweep:  2 * math.Pi,
	}
}

func (c Circle3d[U, C]) TranslateBy(v Vector3d[U, C]) Circle3d[U, C] {
	return c.transform(translate3(v.v))
}

func (c Circle3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Circle3d[U, C] {
	return c.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (c Circle3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Circle3d[U, C] {
	return c.transform(scaleAbout3(scale, center.p))
}

func (c Circle3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Circle3d[U, C] {
	return c.transform(reflect3(plane.origin, plane.normal))
}

func (c Circle3d[U, C]) transform(aff affine3) Circle3d[U, C] {
	return Circle3d[U, C]{aff.point(c.center), aff.direction(c.normal), c.radius * aff.scale()}
}

func (f Frame3d[U, G, L]) RelativeCircle(c Circle3d[U, G]) Circle3d[U, L] {
	return Circle3d[U, L](c.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceCircle(c Circle3d[U, L]) Circle3d[U, G] {
	return Circle3d[U, G](c.transform(f.toGlobal()))
}

// CircleOn lifts c onto the sketch plane. The result's axial direction is the
// sketch plane's normal.
func (sp SketchPlane3d[U, G, L]) CircleOn(c Circle2d[U, L]) Circle3d[U, G] {
	return Circle3d[U, G]{sp.liftPoint(c.center), r3.Cross(sp.x, sp.y), c.radius}
}

// ProjectCircle projects c orthogonally into the sketch plane, which in
// general produces an ellipse.
func (sp SketchPlane3d[U, G, L]) ProjectCircle(c Circle3d[U, G]) Ellipse2d[U, L] {
	e := sp.ProjectArc(c.ToArc())
	return Ellipse2d[U, L]{
		center: e.center,
		xdir:   e.xdir,
		ydir:   e.ydir,
		rx:     e.rx,
		ry:     e.ry,
	}
}

// diskHull3 returns the bounding box of the disk with the given center, unit
// normal and radius.
func diskHull3(center, n r3.Vec, r float64) r3.Box {
	ext := r3.Vec{
		X: r * math.Sqrt(max(0, 1-n.X*n.X)),
		Y: r * math.Sqrt(max(0, 1-n.Y*n.Y)),
		Z: r * math.Sqrt(max(0, 1-n.Z*n.Z)),
	}
	return r3.Box{Min: r3.Sub(center, ext), Max: r3.Add(center, ext)}
}
