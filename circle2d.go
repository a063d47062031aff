package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Circle2d is a circle with a center point and a non-negative radius.
type Circle2d[U, C any] struct {
	center r2.Vec
	radius float64
}

// Circle2dWithRadius returns the circle with the given center and radius.
// Negative radii are made positive.
func Circle2dWithRadius[U, C any](center Point2d[U, C], radius quantity.Quantity[U]) Circle2d[U, C] {
	return Circle2d[U, C]{center.p, math.Abs(float64(radius))}
}

// Circle2dThroughPoints returns the circle through the three points. It
// returns false if the points are collinear.
func Circle2dThroughPoints[U, C any](p1, p2, p3 Point2d[U, C]) (Circle2d[U, C], bool) {
	center, ok := Circumcenter(p1, p2, p3)
	if !ok {
		return Circle2d[U, C]{}, false
	}
	return Circle2d[U, C]{center.p, r2.Norm(r2.Sub(p1.p, center.p))}, true
}

func (c Circle2d[U, C]) CenterPoint() Point2d[U, C]     { return Point2d[U, C]{c.center} }
func (c Circle2d[U, C]) Radius() quantity.Quantity[U]   { return quantity.Quantity[U](c.radius) }
func (c Circle2d[U, C]) Diameter() quantity.Quantity[U] { return quantity.Quantity[U](2 * c.radius) }

func (c Circle2d[U, C]) Circumference() quantity.Quantity[U] {
	return quantity.Quantity[U](2 * math.Pi * c.radius)
}

func (c Circle2d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](math.Pi * c.radius * c.radius)
}

func (c Circle2d[U, C]) String() string {
	return fmt.Sprintf("Circle2d(%v, %v)", c.CenterPoint(), c.Radius())
}

func (c Circle2d[U, C]) IsNaN() bool {
	return math.IsNaN(c.center.X) || math.IsNaN(c.center.Y) || math.IsNaN(c.radius)
}

// Contains reports whether p lies inside the circle or on its boundary.
func (c Circle2d[U, C]) Contains(p Point2d[U, C]) bool {
	return r2.Norm2(r2.Sub(p.p, c.center)) <= c.radius*c.radius
}

func (c Circle2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	r := r2.Vec{X: c.radius, Y: c.radius}
	return BoundingBox2d[U, C]{r2.Box{Min: r2.Sub(c.center, r), Max: r2.Add(c.center, r)}}
}

// ToArc returns the full counterclockwise arc starting at the circle's
// rightmost point.
func (c Circle2d[U, C]) ToArc() Arc2d[U, C] {
	return Arc2d[U, C]{center: c.center, radius: c.radius, sweep: 2 * math.Pi}
}

func (c Circle2d[U, C]) ToEllipse() Ellipse2d[U, C] {
	return Ellipse2d[U, C]{
		center: c.center,
		xdir:   r2.Vec{X: 1},
		ydir:   r2.Vec{Y: 1},
		rx:     c.radius,
		ry:     c.radius,
	}
}

func (c Circle2d[U, C]) TranslateBy(v Vector2d[U, C]) Circle2d[U, C] {
	return Circle2d[U, C]{r2.Add(c.center, v.v), c.radius}
}

func (c Circle2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Circle2d[U, C] {
	return c.transform(rotateAbout2(float64(a), center.p))
}

func (c Circle2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Circle2d[U, C] {
	return c.transform(scaleAbout2(scale, center.p))
}

func (c Circle2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Circle2d[U, C] {
	return c.transform(reflect2(axis.origin, axis.dir))
}

func (c Circle2d[U, C]) transform(aff affine2) Circle2d[U, C] {
	return Circle2d[U, C]{aff.point(c.center), c.radius * aff.scale()}
}

func (f Frame2d[U, G, L]) RelativeCircle(c Circle2d[U, G]) Circle2d[U, L] {
	return Circle2d[U, L](c.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceCircle(c Circle2d[U, L]) Circle2d[U, G] {
	return Circle2d[U, G](c.transform(f.toGlobal()))
}
