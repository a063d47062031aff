package geometry

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type Triangle2d[U, C any] struct {
	p0, p1, p2 r2.Vec
}

func Triangle2dFromVertices[U, C any](p1, p2, p3 Point2d[U, C]) Triangle2d[U, C] {
	return Triangle2d[U, C]{p1.p, p2.p, p3.p}
}

func (t Triangle2d[U, C]) Vertices() (p1, p2, p3 Point2d[U, C]) {
	return Point2d[U, C]{t.p0}, Point2d[U, C]{t.p1}, Point2d[U, C]{t.p2}
}

// Edges returns the edges from the first to the second vertex, from the
// second to the third, and from the third back to the first.
func (t Triangle2d[U, C]) Edges() [3]LineSegment2d[U, C] {
	return [3]LineSegment2d[U, C]{{t.p0, t.p1}, {t.p1, t.p2}, {t.p2, t.p0}}
}

func (t Triangle2d[U, C]) String() string {
	p1, p2, p3 := t.Vertices()
	return fmt.Sprintf("Triangle2d(%v, %v, %v)", p1, p2, p3)
}

func (t Triangle2d[U, C]) IsNaN() bool {
	p1, p2, p3 := t.Vertices()
	return p1.IsNaN() || p2.IsNaN() || p3.IsNaN()
}

func (t Triangle2d[U, C]) tri() r2.Triangle { return r2.Triangle{t.p0, t.p1, t.p2} }

func (t Triangle2d[U, C]) Centroid() Point2d[U, C] {
	return Point2d[U, C]{t.tri().Centroid()}
}

func (t Triangle2d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](t.tri().Area())
}

// CounterclockwiseArea returns the area of the triangle, which is negative
// if the vertices are in clockwise order.
func (t Triangle2d[U, C]) CounterclockwiseArea() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](0.5 * r2.Cross(r2.Sub(t.p1, t.p0), r2.Sub(t.p2, t.p0)))
}

// Contains reports whether p lies inside the triangle or on its boundary,
// regardless of the vertices' order.
func (t Triangle2d[U, C]) Contains(p Point2d[U, C]) bool {
	d0 := r2.Cross(r2.Sub(t.p1, t.p0), r2.Sub(p.p, t.p0))
	d1 := r2.Cross(r2.Sub(t.p2, t.p1), r2.Sub(p.p, t.p1))
	d2 := r2.Cross(r2.Sub(t.p0, t.p2), r2.Sub(p.p, t.p2))
	return (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0)
}

// Circumcircle returns the circle through the three vertices. It returns
// false if the triangle is degenerate.
func (t Triangle2d[U, C]) Circumcircle() (Circle2d[U, C], bool) {
	p1, p2, p3 := t.Vertices()
	return Circle2dThroughPoints(p1, p2, p3)
}

func (t Triangle2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{hull2(t.p0, t.p1, t.p2)}
}

// Polygon returns the triangle as a closed XY polygon.
func (t Triangle2d[U, C]) Polygon() *geom.Polygon {
	flat := []float64{t.p0.X, t.p0.Y, t.p1.X, t.p1.Y, t.p2.X, t.p2.Y, t.p0.X, t.p0.Y}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

func (t Triangle2d[U, C]) TranslateBy(v Vector2d[U, C]) Triangle2d[U, C] {
	return t.transform(translate2(v.v))
}

func (t Triangle2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Triangle2d[U, C] {
	return t.transform(rotateAbout2(float64(a), center.p))
}

func (t Triangle2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Triangle2d[U, C] {
	return t.transform(scaleAbout2(scale, center.p))
}

// MirrorAcross reflects the triangle across axis, which reverses the order of
// its vertices.
func (t Triangle2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Triangle2d[U, C] {
	return t.transform(reflect2(axis.origin, axis.dir))
}

func (t Triangle2d[U, C]) transform(aff affine2) Triangle2d[U, C] {
	return Triangle2d[U, C]{aff.point(t.p0), aff.point(t.p1), aff.point(t.p2)}
}

func (f Frame2d[U, G, L]) RelativeTriangle(t Triangle2d[U, G]) Triangle2d[U, L] {
	return Triangle2d[U, L](t.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceTriangle(t Triangle2d[U, L]) Triangle2d[U, G] {
	return Triangle2d[U, G](t.transform(f.toGlobal()))
}
