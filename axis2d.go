package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
)

// Axis2d is an infinite directed line: an origin point and a direction.
type Axis2d[U, C any] struct {
	origin r2.Vec
	dir    r2.Vec
}

func NewAxis2d[U, C any](origin Point2d[U, C], d Direction2d[C]) Axis2d[U, C] {
	return Axis2d[U, C]{origin.p, d.d}
}

// XAxis2d returns the axis through the origin in the positive X direction.
func XAxis2d[U, C any]() Axis2d[U, C] {
	return Axis2d[U, C]{dir: r2.Vec{X: 1}}
}

func YAxis2d[U, C any]() Axis2d[U, C] {
	return Axis2d[U, C]{dir: r2.Vec{Y: 1}}
}

// Axis2dThroughPoints returns the axis through p and q, with origin p and
// pointing towards q. It returns false if the points coincide.
func Axis2dThroughPoints[U, C any](p, q Point2d[U, C]) (Axis2d[U, C], bool) {
	d, ok := p.DirectionTo(q)
	if !ok {
		return Axis2d[U, C]{}, false
	}
	return NewAxis2d(p, d), true
}

func (a Axis2d[U, C]) OriginPoint() Point2d[U, C] { return Point2d[U, C]{a.origin} }
func (a Axis2d[U, C]) Direction() Direction2d[C]  { return Direction2d[C]{a.dir} }

func (a Axis2d[U, C]) String() string {
	return fmt.Sprintf("Axis2d(%v, %v)", a.OriginPoint(), a.Direction())
}

func (a Axis2d[U, C]) IsNaN() bool {
	return a.OriginPoint().IsNaN() || a.Direction().IsNaN()
}

// Reverse returns the axis with the same origin and the opposite direction.
func (a Axis2d[U, C]) Reverse() Axis2d[U, C] {
	return Axis2d[U, C]{a.origin, r2.Scale(-1, a.dir)}
}

// MoveTo returns the axis with the same direction through p.
func (a Axis2d[U, C]) MoveTo(p Point2d[U, C]) Axis2d[U, C] {
	return Axis2d[U, C]{p.p, a.dir}
}

// Perpendicular returns the axis through the same origin, rotated
// counterclockwise by 90°.
func (a Axis2d[U, C]) Perpendicular() Axis2d[U, C] {
	return Axis2d[U, C]{a.origin, perp2(a.dir)}
}

func (a Axis2d[U, C]) TranslateBy(v Vector2d[U, C]) Axis2d[U, C] {
	return a.transform(translate2(v.v))
}

func (a Axis2d[U, C]) RotateAround(center Point2d[U, C], th angle.Angle) Axis2d[U, C] {
	return a.transform(rotateAbout2(float64(th), center.p))
}

// ScaleAbout scales the axis' origin about center. A negative scale reverses
// the axis.
func (a Axis2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Axis2d[U, C] {
	return a.transform(scaleAbout2(scale, center.p))
}

func (a Axis2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Axis2d[U, C] {
	return a.transform(reflect2(axis.origin, axis.dir))
}

func (a Axis2d[U, C]) transform(aff affine2) Axis2d[U, C] {
	return Axis2d[U, C]{aff.point(a.origin), aff.direction(a.dir)}
}

func (f Frame2d[U, G, L]) RelativeAxis(a Axis2d[U, G]) Axis2d[U, L] {
	return Axis2d[U, L](a.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceAxis(a Axis2d[U, L]) Axis2d[U, G] {
	return Axis2d[U, G](a.transform(f.toGlobal()))
}
