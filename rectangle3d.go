package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Rectangle3d is a planar rectangle in 3D, given by the sketch plane
// centered on it and its non-negative width and height.
type Rectangle3d[U, C any] struct {
	center r3.Vec
	x, y   r3.Vec
	w, h   float64
}

// Rectangle3dCenteredOn returns the rectangle centered on the origin of sp
// with the given dimensions along its X and Y directions. Negative dimensions
// are made positive.
func Rectangle3dCenteredOn[U, C, L any](sp SketchPlane3d[U, C, L], width, height quantity.Quantity[U]) Rectangle3d[U, C] {
	return Rectangle3d[U, C]{sp.origin, sp.x, sp.y, math.Abs(float64(width)), math.Abs(float64(height))}
}

// Rectangle3dAxes returns the sketch plane centered on the rectangle and
// aligned with its sides.
func Rectangle3dAxes[L, U, C any](r Rectangle3d[U, C]) SketchPlane3d[U, C, L] {
	return SketchPlane3d[U, C, L]{r.center, r.x, r.y}
}

func (r Rectangle3d[U, C]) CenterPoint() Point3d[U, C] { return Point3d[U, C]{r.center} }
func (r Rectangle3d[U, C]) XDirection() Direction3d[C] { return Direction3d[C]{r.x} }
func (r Rectangle3d[U, C]) YDirection() Direction3d[C] { return Direction3d[C]{r.y} }

// NormalDirection returns X × Y.
func (r Rectangle3d[U, C]) NormalDirection() Direction3d[C] {
	return Direction3d[C]{r3.Cross(r.x, r.y)}
}

func (r Rectangle3d[U, C]) Plane() Plane3d[U, C] {
	return Plane3d[U, C]{r.center, r3.Cross(r.x, r.y)}
}

func (r Rectangle3d[U, C]) Dimensions() (width, height quantity.Quantity[U]) {
	return quantity.Quantity[U](r.w), quantity.Quantity[U](r.h)
}

func (r Rectangle3d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r.w * r.h)
}

func (r Rectangle3d[U, C]) String() string {
	return fmt.Sprintf("Rectangle3d(%v, %v, %v, %g, %g)", r.CenterPoint(), r.XDirection(), r.YDirection(), r.w, r.h)
}

func (r Rectangle3d[U, C]) IsNaN() bool {
	return isNaN3(r.center) || isNaN3(r.x) || isNaN3(r.y) || math.IsNaN(r.w) || math.IsNaN(r.h)
}

func (r Rectangle3d[U, C]) at(u, v float64) r3.Vec {
	return r3.Add(r.center, r3.Add(r3.Scale((u-0.5)*r.w, r.x), r3.Scale((v-0.5)*r.h, r.y)))
}

// Interpolate returns the point at fractions u and v of the width and
// height, measured from the corner at the minimum of the local X and Y
// coordinates.
func (r Rectangle3d[U, C]) Interpolate(u, v float64) Point3d[U, C] {
	return Point3d[U, C]{r.at(u, v)}
}

func (r Rectangle3d[U, C]) Vertices() [4]Point3d[U, C] {
	return [4]Point3d[U, C]{{r.at(0, 0)}, {r.at(1, 0)}, {r.at(1, 1)}, {r.at(0, 1)}}
}

func (r Rectangle3d[U, C]) Edges() [4]LineSegment3d[U, C] {
	vs := r.Vertices()
	var out [4]LineSegment3d[U, C]
	for i := range vs {
		out[i] = LineSegment3d[U, C]{vs[i].p, vs[(i+1)%4].p}
	}
	return out
}

func (r Rectangle3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{hull3(r.at(0, 0), r.at(1, 0), r.at(1, 1), r.at(0, 1))}
}

func (r Rectangle3d[U, C]) TranslateBy(v Vector3d[U, C]) Rectangle3d[U, C] {
	r.center = r3.Add(r.center, v.v)
	return r
}

func (r Rectangle3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Rectangle3d[U, C] {
	return r.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (r Rectangle3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Rectangle3d[U, C] {
	return r.transform(scaleAbout3(scale, center.p))
}

// MirrorAcross reflects the rectangle across plane. Its normal direction,
// being X × Y, is no longer the mirror image of the old one.
func (r Rectangle3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Rectangle3d[U, C] {
	return r.transform(reflect3(plane.origin, plane.normal))
}

func (r Rectangle3d[U, C]) transform(aff affine3) Rectangle3d[U, C] {
	s := aff.scale()
	return Rectangle3d[U, C]{
		center: aff.point(r.center),
		x:      aff.direction(r.x),
		y:      aff.direction(r.y),
		w:      r.w * s,
		h:      r.h * s,
	}
}

func (f Frame3d[U, G, L]) RelativeRectangle(r Rectangle3d[U, G]) Rectangle3d[U, L] {
	return Rectangle3d[U, L](r.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceRectangle(r Rectangle3d[U, L]) Rectangle3d[U, G] {
	return Rectangle3d[U, G](r.transform(f.toGlobal()))
}

// RectangleOn lifts r onto the sketch plane.
func (sp SketchPlane3d[U, G, L]) RectangleOn(r Rectangle2d[U, L]) Rectangle3d[U, G] {
	return Rectangle3d[U, G]{
		center: sp.liftPoint(r.center),
		x:      sp.liftVector(r.xdir),
		y:      sp.liftVector(r.ydir),
		w:      r.w,
		h:      r.h,
	}
}
