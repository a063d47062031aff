package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Ellipse2d is a full ellipse, given by its axes and two non-negative radii.
type Ellipse2d[U, C any] struct {
	center     r2.Vec
	xdir, ydir r2.Vec
	rx, ry     float64
}

// Ellipse2dWithAxes returns the ellipse centered on the origin of axes, with
// the given radii along its X and Y directions. Negative radii are made
// positive.
func Ellipse2dWithAxes[U, C, L any](axes Frame2d[U, C, L], xRadius, yRadius quantity.Quantity[U]) Ellipse2d[U, C] {
	return Ellipse2d[U, C]{
		center: axes.origin,
		xdir:   axes.x,
		ydir:   axes.y,
		rx:     math.Abs(float64(xRadius)),
		ry:     math.Abs(float64(yRadius)),
	}
}

// Ellipse2dWith returns the ellipse with the given center, X direction and
// radii. The Y direction is counterclockwise from xDirection.
func Ellipse2dWith[U, C any](center Point2d[U, C], xDirection Direction2d[C], xRadius, yRadius quantity.Quantity[U]) Ellipse2d[U, C] {
	return Ellipse2d[U, C]{
		center: center.p,
		xdir:   xDirection.d,
		ydir:   perp2(xDirection.d),
		rx:     math.Abs(float64(xRadius)),
		ry:     math.Abs(float64(yRadius)),
	}
}

// Ellipse2dAxes returns the frame the ellipse is defined in.
func Ellipse2dAxes[L, U, C any](e Ellipse2d[U, C]) Frame2d[U, C, L] {
	return Frame2d[U, C, L]{e.center, e.xdir, e.ydir}
}

func (e Ellipse2d[U, C]) CenterPoint() Point2d[U, C]    { return Point2d[U, C]{e.center} }
func (e Ellipse2d[U, C]) XDirection() Direction2d[C]    { return Direction2d[C]{e.xdir} }
func (e Ellipse2d[U, C]) YDirection() Direction2d[C]    { return Direction2d[C]{e.ydir} }
func (e Ellipse2d[U, C]) XAxis() Axis2d[U, C]           { return Axis2d[U, C]{e.center, e.xdir} }
func (e Ellipse2d[U, C]) YAxis() Axis2d[U, C]           { return Axis2d[U, C]{e.center, e.ydir} }
func (e Ellipse2d[U, C]) XRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.rx) }
func (e Ellipse2d[U, C]) YRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.ry) }

func (e Ellipse2d[U, C]) String() string {
	return fmt.Sprintf("Ellipse2d(%v, %v, %v, %v)", e.CenterPoint(), e.XDirection(), e.XRadius(), e.YRadius())
}

func (e Ellipse2d[U, C]) IsNaN() bool {
	return e.affine().isNaN()
}

// affine maps the unit circle onto the ellipse.
func (e Ellipse2d[U, C]) affine() affine2 {
	u := r2.Scale(e.rx, e.xdir)
	v := r2.Scale(e.ry, e.ydir)
	return affine2{u.X, u.Y, v.X, v.Y, e.center.X, e.center.Y}
}

func (e Ellipse2d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](math.Pi * e.rx * e.ry)
}

// Contains reports whether p lies inside the ellipse or on its boundary.
// A degenerate ellipse contains nothing.
func (e Ellipse2d[U, C]) Contains(p Point2d[U, C]) bool {
	// Apply the inverse map and check whether the point is in the unit
	// circle.
	q := e.affine().invert().point(p.p)
	return r2.Norm2(q) <= 1
}

// BoundingBox returns the tight bounding box of the ellipse.
func (e Ellipse2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	// The images of (1, 0) and (0, 1) under the affine map are the columns
	// (a, b) and (c, d); the half extents are the norms of its rows. See
	// https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	aff := e.affine()
	rangeX := math.Hypot(aff.n0, aff.n2)
	rangeY := math.Hypot(aff.n1, aff.n3)
	r := r2.Vec{X: rangeX, Y: rangeY}
	return BoundingBox2d[U, C]{r2.Box{Min: r2.Sub(e.center, r), Max: r2.Add(e.center, r)}}
}

// Circumference returns the perimeter of the ellipse, computed numerically
// to within DefaultTolerance.
func (e Ellipse2d[U, C]) Circumference() quantity.Quantity[U] {
	return e.ToEllipticalArc().Length()
}

// ToEllipticalArc returns the full elliptical arc starting at the end of the
// ellipse's X axis.
func (e Ellipse2d[U, C]) ToEllipticalArc() EllipticalArc2d[U, C] {
	return EllipticalArc2d[U, C]{
		center: e.center,
		xdir:   e.xdir,
		ydir:   e.ydir,
		rx:     e.rx,
		ry:     e.ry,
		sweep:  2 * math.Pi,
	}
}

func (e Ellipse2d[U, C]) TranslateBy(v Vector2d[U, C]) Ellipse2d[U, C] {
	e.center = r2.Add(e.center, v.v)
	return e
}

func (e Ellipse2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Ellipse2d[U, C] {
	return e.transform(rotateAbout2(float64(a), center.p))
}

func (e Ellipse2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Ellipse2d[U, C] {
	return e.transform(scaleAbout2(scale, center.p))
}

// MirrorAcross reflects the ellipse across axis. Its axes become
// left-handed.
func (e Ellipse2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Ellipse2d[U, C] {
	return e.transform(reflect2(axis.origin, axis.dir))
}

func (e Ellipse2d[U, C]) transform(aff affine2) Ellipse2d[U, C] {
	s := aff.scale()
	return Ellipse2d[U, C]{
		center: aff.point(e.center),
		xdir:   aff.direction(e.xdir),
		ydir:   aff.direction(e.ydir),
		rx:     e.rx * s,
		ry:     e.ry * s,
	}
}

func (f Frame2d[U, G, L]) RelativeEllipse(e Ellipse2d[U, G]) Ellipse2d[U, L] {
	return Ellipse2d[U, L](e.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceEllipse(e Ellipse2d[U, L]) Ellipse2d[U, G] {
	return Ellipse2d[U, G](e.transform(f.toGlobal()))
}
