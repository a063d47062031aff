package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// SketchPlane3d is a 2D coordinate system embedded in 3D: an origin point and
// two perpendicular unit directions. It is expressed in 3D coordinates G and
// defines 2D coordinates L.
//
// Sketch planes lift 2D geometry into 3D (PointOn, CurveOn, ...) and project
// 3D geometry into 2D (ProjectPoint, ProjectCurve, ...). Projection is
// orthogonal; a circular arc that is not parallel to the sketch plane
// projects to an elliptical arc.
type SketchPlane3d[U, G, L any] struct {
	origin r3.Vec
	x, y   r3.Vec
}

// XYSketchPlane returns the sketch plane with origin at the origin, X
// direction +X and Y direction +Y.
func XYSketchPlane[U, G, L any]() SketchPlane3d[U, G, L] {
	return SketchPlane3d[U, G, L]{x: r3.Vec{X: 1}, y: r3.Vec{Y: 1}}
}

func YZSketchPlane[U, G, L any]() SketchPlane3d[U, G, L] {
	return SketchPlane3d[U, G, L]{x: r3.Vec{Y: 1}, y: r3.Vec{Z: 1}}
}

func ZXSketchPlane[U, G, L any]() SketchPlane3d[U, G, L] {
	return SketchPlane3d[U, G, L]{x: r3.Vec{Z: 1}, y: r3.Vec{X: 1}}
}

// SketchPlaneFromPlane returns a sketch plane coinciding with plane, whose
// normal matches the plane's normal. The X and Y directions are chosen
// arbitrarily.
func SketchPlaneFromPlane[L, U, G any](plane Plane3d[U, G]) SketchPlane3d[U, G, L] {
	x, y := plane.NormalDirection().PerpendicularBasis()
	return SketchPlane3d[U, G, L]{plane.origin, x.d, y.d}
}

// SketchPlane3dThroughPoints returns the sketch plane with origin p1, X
// direction towards p2 and p3 on its positive Y side. It returns false if the
// points are collinear.
func SketchPlane3dThroughPoints[L, U, G any](p1, p2, p3 Point3d[U, G]) (SketchPlane3d[U, G, L], bool) {
	n, ok := normal3(p1.p, p2.p, p3.p)
	if !ok {
		return SketchPlane3d[U, G, L]{}, false
	}
	x := r3.Unit(r3.Sub(p2.p, p1.p))
	return SketchPlane3d[U, G, L]{p1.p, x, r3.Cross(n, x)}, true
}

// UnsafeSketchPlane3d constructs a sketch plane without checking that x and y
// are perpendicular.
func UnsafeSketchPlane3d[L, U, G any](origin Point3d[U, G], x, y Direction3d[G]) SketchPlane3d[U, G, L] {
	return SketchPlane3d[U, G, L]{origin.p, x.d, y.d}
}

func (sp SketchPlane3d[U, G, L]) OriginPoint() Point3d[U, G] { return Point3d[U, G]{sp.origin} }
func (sp SketchPlane3d[U, G, L]) XDirection() Direction3d[G] { return Direction3d[G]{sp.x} }
func (sp SketchPlane3d[U, G, L]) YDirection() Direction3d[G] { return Direction3d[G]{sp.y} }
func (sp SketchPlane3d[U, G, L]) XAxis() Axis3d[U, G]        { return Axis3d[U, G]{sp.origin, sp.x} }
func (sp SketchPlane3d[U, G, L]) YAxis() Axis3d[U, G]        { return Axis3d[U, G]{sp.origin, sp.y} }

// NormalDirection returns X × Y.
func (sp SketchPlane3d[U, G, L]) NormalDirection() Direction3d[G] {
	return Direction3d[G]{r3.Cross(sp.x, sp.y)}
}

func (sp SketchPlane3d[U, G, L]) NormalAxis() Axis3d[U, G] {
	return Axis3d[U, G]{sp.origin, r3.Cross(sp.x, sp.y)}
}

func (sp SketchPlane3d[U, G, L]) Plane() Plane3d[U, G] {
	return Plane3d[U, G]{sp.origin, r3.Cross(sp.x, sp.y)}
}

func (sp SketchPlane3d[U, G, L]) String() string {
	return fmt.Sprintf("SketchPlane3d(%v, %v, %v)", sp.OriginPoint(), sp.XDirection(), sp.YDirection())
}

// ReverseX reverses the X direction, which also reverses the normal.
func (sp SketchPlane3d[U, G, L]) ReverseX() SketchPlane3d[U, G, L] {
	sp.x = r3.Scale(-1, sp.x)
	return sp
}

func (sp SketchPlane3d[U, G, L]) ReverseY() SketchPlane3d[U, G, L] {
	sp.y = r3.Scale(-1, sp.y)
	return sp
}

func (sp SketchPlane3d[U, G, L]) MoveTo(p Point3d[U, G]) SketchPlane3d[U, G, L] {
	sp.origin = p.p
	return sp
}

// Offset moves the sketch plane by distance along its normal.
func (sp SketchPlane3d[U, G, L]) Offset(distance quantity.Quantity[U]) SketchPlane3d[U, G, L] {
	sp.origin = r3.Add(sp.origin, r3.Scale(float64(distance), r3.Cross(sp.x, sp.y)))
	return sp
}

func (sp SketchPlane3d[U, G, L]) TranslateBy(v Vector3d[U, G]) SketchPlane3d[U, G, L] {
	return sp.transform(translate3(v.v))
}

func (sp SketchPlane3d[U, G, L]) RotateAround(axis Axis3d[U, G], a angle.Angle) SketchPlane3d[U, G, L] {
	return sp.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

// MirrorAcross reflects the sketch plane. 2D geometry lifted onto the result
// is mirrored as well.
func (sp SketchPlane3d[U, G, L]) MirrorAcross(plane Plane3d[U, G]) SketchPlane3d[U, G, L] {
	return sp.transform(reflect3(plane.origin, plane.normal))
}

func (sp SketchPlane3d[U, G, L]) transform(aff affine3) SketchPlane3d[U, G, L] {
	return SketchPlane3d[U, G, L]{aff.point(sp.origin), aff.direction(sp.x), aff.direction(sp.y)}
}

func (sp SketchPlane3d[U, G, L]) liftPoint(p r2.Vec) r3.Vec {
	return r3.Add(sp.origin, sp.liftVector(p))
}

func (sp SketchPlane3d[U, G, L]) liftVector(v r2.Vec) r3.Vec {
	return r3.Add(r3.Scale(v.X, sp.x), r3.Scale(v.Y, sp.y))
}

func (sp SketchPlane3d[U, G, L]) projectPoint(p r3.Vec) r2.Vec {
	return sp.projectVector(r3.Sub(p, sp.origin))
}

func (sp SketchPlane3d[U, G, L]) projectVector(v r3.Vec) r2.Vec {
	return r2.Vec{X: r3.Dot(v, sp.x), Y: r3.Dot(v, sp.y)}
}

// RelativeSketchPlane expresses sp, which is defined in the same global
// coordinates as f, relative to f. The sketch plane's own 2D coordinates are
// unchanged.
func RelativeSketchPlane[U, G, L, S any](f Frame3d[U, G, L], sp SketchPlane3d[U, G, S]) SketchPlane3d[U, L, S] {
	return SketchPlane3d[U, L, S](sp.transform(f.toLocal()))
}

// PlaceSketchPlane is the inverse of [RelativeSketchPlane].
func PlaceSketchPlane[U, G, L, S any](f Frame3d[U, G, L], sp SketchPlane3d[U, L, S]) SketchPlane3d[U, G, S] {
	return SketchPlane3d[U, G, S](sp.transform(f.toGlobal()))
}
