package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type Triangle3d[U, C any] struct {
	p0, p1, p2 r3.Vec
}

func Triangle3dFromVertices[U, C any](p1, p2, p3 Point3d[U, C]) Triangle3d[U, C] {
	return Triangle3d[U, C]{p1.p, p2.p, p3.p}
}

func (t Triangle3d[U, C]) Vertices() (p1, p2, p3 Point3d[U, C]) {
	return Point3d[U, C]{t.p0}, Point3d[U, C]{t.p1}, Point3d[U, C]{t.p2}
}

func (t Triangle3d[U, C]) Edges() [3]LineSegment3d[U, C] {
	return [3]LineSegment3d[U, C]{{t.p0, t.p1}, {t.p1, t.p2}, {t.p2, t.p0}}
}

func (t Triangle3d[U, C]) String() string {
	p1, p2, p3 := t.Vertices()
	return fmt.Sprintf("Triangle3d(%v, %v, %v)", p1, p2, p3)
}

func (t Triangle3d[U, C]) IsNaN() bool { return isNaN3(t.p0) || isNaN3(t.p1) || isNaN3(t.p2) }

func (t Triangle3d[U, C]) tri() r3.Triangle { return r3.Triangle{t.p0, t.p1, t.p2} }

func (t Triangle3d[U, C]) Centroid() Point3d[U, C] {
	return Point3d[U, C]{t.tri().Centroid()}
}

func (t Triangle3d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](0.5 * r3.Norm(t.tri().Normal()))
}

// Normal returns the direction perpendicular to the triangle, following the
// right-hand rule for the order of its vertices. It returns false if the
// triangle is degenerate.
func (t Triangle3d[U, C]) Normal() (Direction3d[C], bool) {
	n, ok := normal3(t.p0, t.p1, t.p2)
	return Direction3d[C]{n}, ok
}

// Plane returns the plane through the first vertex with the triangle's
// normal. It returns false if the triangle is degenerate.
func (t Triangle3d[U, C]) Plane() (Plane3d[U, C], bool) {
	n, ok := t.Normal()
	if !ok {
		return Plane3d[U, C]{}, false
	}
	return Plane3d[U, C]{t.p0, n.d}, true
}

// Circumcircle returns the circle through the three vertices. It returns
// false if the triangle is degenerate.
func (t Triangle3d[U, C]) Circumcircle() (Circle3d[U, C], bool) {
	p1, p2, p3 := t.Vertices()
	return Circle3dThroughPoints(p1, p2, p3)
}

func (t Triangle3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{hull3(t.p0, t.p1, t.p2)}
}

func (t Triangle3d[U, C]) TranslateBy(v Vector3d[U, C]) Triangle3d[U, C] {
	return t.transform(translate3(v.v))
}

func (t Triangle3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Triangle3d[U, C] {
	return t.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (t Triangle3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Triangle3d[U, C] {
	return t.transform(scaleAbout3(scale, center.p))
}

func (t Triangle3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Triangle3d[U, C] {
	return t.transform(reflect3(plane.origin, plane.normal))
}

func (t Triangle3d[U, C]) ProjectOnto(plane Plane3d[U, C]) Triangle3d[U, C] {
	return t.transform(project3(plane.origin, plane.normal))
}

func (t Triangle3d[U, C]) transform(aff affine3) Triangle3d[U, C] {
	return Triangle3d[U, C]{aff.point(t.p0), aff.point(t.p1), aff.point(t.p2)}
}

func (f Frame3d[U, G, L]) RelativeTriangle(t Triangle3d[U, G]) Triangle3d[U, L] {
	return Triangle3d[U, L](t.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceTriangle(t Triangle3d[U, L]) Triangle3d[U, G] {
	return Triangle3d[U, G](t.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) TriangleOn(t Triangle2d[U, L]) Triangle3d[U, G] {
	return Triangle3d[U, G]{sp.liftPoint(t.p0), sp.liftPoint(t.p1), sp.liftPoint(t.p2)}
}

func (sp SketchPlane3d[U, G, L]) ProjectTriangle(t Triangle3d[U, G]) Triangle2d[U, L] {
	return Triangle2d[U, L]{sp.projectPoint(t.p0), sp.projectPoint(t.p1), sp.projectPoint(t.p2)}
}
