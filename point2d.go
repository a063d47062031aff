package geometry

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Point2d is a position in units U, expressed in coordinate system C.
//
// Points and vectors are distinct: the difference of two points is a vector,
// and a point can be translated by a vector, but points cannot be added.
type Point2d[U, C any] struct {
	p r2.Vec
}

// Pt2 returns the point (x, y) in coordinate system C. The units are inferred
// from the coordinates:
//
//	p := Pt2[World](length.Meters(1), length.Meters(2))
func Pt2[C, U any](x, y quantity.Quantity[U]) Point2d[U, C] {
	return Point2d[U, C]{r2.Vec{X: float64(x), Y: float64(y)}}
}

// XY returns the point (x, y), with coordinates given in the base units of U.
func XY[U, C any](x, y float64) Point2d[U, C] {
	return Point2d[U, C]{r2.Vec{X: x, Y: y}}
}

// Point2dFromR2 returns the point with the given raw coordinates.
func Point2dFromR2[U, C any](p r2.Vec) Point2d[U, C] {
	return Point2d[U, C]{p}
}

func Origin2d[U, C any]() Point2d[U, C] {
	return Point2d[U, C]{}
}

// Centroid2d returns the average of the given points. It returns false if
// there are no points.
func Centroid2d[U, C any](points []Point2d[U, C]) (Point2d[U, C], bool) {
	if len(points) == 0 {
		return Point2d[U, C]{}, false
	}
	var sum r2.Vec
	for _, p := range points {
		sum = r2.Add(sum, p.p)
	}
	return Point2d[U, C]{r2.Scale(1/float64(len(points)), sum)}, true
}

// Circumcenter returns the center of the circle through the three points. It
// returns false if the points are collinear.
func Circumcenter[U, C any](p1, p2, p3 Point2d[U, C]) (Point2d[U, C], bool) {
	a2 := r2.Norm2(r2.Sub(p2.p, p3.p))
	b2 := r2.Norm2(r2.Sub(p1.p, p3.p))
	c2 := r2.Norm2(r2.Sub(p1.p, p2.p))
	// Barycentric weights of the circumcenter. Their sum is 16 times the
	// squared area of the triangle.
	t1 := a2 * (b2 + c2 - a2)
	t2 := b2 * (c2 + a2 - b2)
	t3 := c2 * (a2 + b2 - c2)
	sum := t1 + t2 + t3
	if sum == 0 {
		return Point2d[U, C]{}, false
	}
	w1 := t1 / sum
	w2 := t2 / sum
	w3 := t3 / sum
	return Point2d[U, C]{r2.Vec{
		X: w1*p1.p.X + w2*p2.p.X + w3*p3.p.X,
		Y: w1*p1.p.Y + w2*p2.p.Y + w3*p3.p.Y,
	}}, true
}

func (p Point2d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](p.p.X) }
func (p Point2d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](p.p.Y) }

func (p Point2d[U, C]) Splat() (quantity.Quantity[U], quantity.Quantity[U]) {
	return p.X(), p.Y()
}

// R2 returns the raw coordinates in the base units of U.
func (p Point2d[U, C]) R2() r2.Vec { return p.p }

// Coord returns the point as an XY coordinate.
func (p Point2d[U, C]) Coord() geom.Coord { return geom.Coord{p.p.X, p.p.Y} }

func (p Point2d[U, C]) String() string {
	return fmt.Sprintf("(%g, %g)", p.p.X, p.p.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (p Point2d[U, C]) IsInf() bool {
	return math.IsInf(p.p.X, 0) || math.IsInf(p.p.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (p Point2d[U, C]) IsNaN() bool {
	return math.IsNaN(p.p.X) || math.IsNaN(p.p.Y)
}

// EqualWithin reports whether p and o are at most tolerance apart.
func (p Point2d[U, C]) EqualWithin(tolerance quantity.Quantity[U], o Point2d[U, C]) bool {
	return scalar.EqualWithinAbs(r2.Norm(r2.Sub(p.p, o.p)), 0, float64(tolerance))
}

func (p Point2d[U, C]) TranslateBy(v Vector2d[U, C]) Point2d[U, C] {
	return Point2d[U, C]{r2.Add(p.p, v.v)}
}

// TranslateIn moves p by distance in direction d.
func (p Point2d[U, C]) TranslateIn(d Direction2d[C], distance quantity.Quantity[U]) Point2d[U, C] {
	return Point2d[U, C]{r2.Add(p.p, r2.Scale(float64(distance), d.d))}
}

// Minus computes p−o.
func (p Point2d[U, C]) Minus(o Point2d[U, C]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Sub(p.p, o.p)}
}

// VectorTo returns the vector from p to o.
func (p Point2d[U, C]) VectorTo(o Point2d[U, C]) Vector2d[U, C] {
	return o.Minus(p)
}

// DirectionTo returns the direction from p to o. It returns false if the points
// coincide.
func (p Point2d[U, C]) DirectionTo(o Point2d[U, C]) (Direction2d[C], bool) {
	return p.VectorTo(o).Direction()
}

// Distance returns the euclidean distance between two points.
func (p Point2d[U, C]) Distance(o Point2d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](math.Hypot(p.p.X-o.p.X, p.p.Y-o.p.Y))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (p Point2d[U, C]) DistanceSquared(o Point2d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	x := p.p.X - o.p.X
	y := p.p.Y - o.p.Y
	return quantity.Quantity[quantity.SquaredUnits[U]](x*x + y*y)
}

// Midpoint returns the midpoint of two points.
func (p Point2d[U, C]) Midpoint(o Point2d[U, C]) Point2d[U, C] {
	return Point2d[U, C]{r2.Vec{
		X: 0.5 * (p.p.X + o.p.X),
		Y: 0.5 * (p.p.Y + o.p.Y),
	}}
}

// Interpolate linearly interpolates between two points. The parameter is not
// clamped.
func (p Point2d[U, C]) Interpolate(o Point2d[U, C], t float64) Point2d[U, C] {
	return Point2d[U, C]{lerp2(p.p, o.p, t)}
}

// DistanceAlong returns the signed distance of p's projection onto axis from
// the axis' origin.
func (p Point2d[U, C]) DistanceAlong(axis Axis2d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Dot(r2.Sub(p.p, axis.origin), axis.dir))
}

// SignedDistanceFrom returns the distance of p from axis, positive if p is
// to the left of the axis.
func (p Point2d[U, C]) SignedDistanceFrom(axis Axis2d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Cross(axis.dir, r2.Sub(p.p, axis.origin)))
}

func (p Point2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Point2d[U, C] {
	return p.transform(rotateAbout2(float64(a), center.p))
}

func (p Point2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Point2d[U, C] {
	return p.transform(scaleAbout2(scale, center.p))
}

func (p Point2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Point2d[U, C] {
	return p.transform(reflect2(axis.origin, axis.dir))
}

// ProjectOnto returns the point on axis closest to p.
func (p Point2d[U, C]) ProjectOnto(axis Axis2d[U, C]) Point2d[U, C] {
	return Point2d[U, C]{projectOntoLine2(p.p, axis.origin, axis.dir)}
}

func (p Point2d[U, C]) transform(aff affine2) Point2d[U, C] {
	return Point2d[U, C]{aff.point(p.p)}
}

func (f Frame2d[U, G, L]) RelativePoint(p Point2d[U, G]) Point2d[U, L] {
	return Point2d[U, L](p.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlacePoint(p Point2d[U, L]) Point2d[U, G] {
	return Point2d[U, G](p.transform(f.toGlobal()))
}

func projectOntoLine2(p, origin, dir r2.Vec) r2.Vec {
	return r2.Add(origin, r2.Scale(r2.Dot(r2.Sub(p, origin), dir), dir))
}
