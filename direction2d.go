package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Direction2d is a unit vector in coordinate system C. Directions have no
// units and no position; translation does not affect them.
type Direction2d[C any] struct {
	d r2.Vec
}

// Direction2dFromAngle returns the direction at angle a from the positive X
// direction, counterclockwise.
func Direction2dFromAngle[C any](a angle.Angle) Direction2d[C] {
	sin, cos := angle.Sincos(a)
	return Direction2d[C]{r2.Vec{X: cos, Y: sin}}
}

// Direction2dXY normalizes ⟨x, y⟩. It returns false if both components are
// zero.
func Direction2dXY[C any](x, y float64) (Direction2d[C], bool) {
	return Vector2d[quantity.Unitless, C]{r2.Vec{X: x, Y: y}}.Direction()
}

func PositiveX2d[C any]() Direction2d[C] { return Direction2d[C]{r2.Vec{X: 1}} }
func NegativeX2d[C any]() Direction2d[C] { return Direction2d[C]{r2.Vec{X: -1}} }
func PositiveY2d[C any]() Direction2d[C] { return Direction2d[C]{r2.Vec{Y: 1}} }
func NegativeY2d[C any]() Direction2d[C] { return Direction2d[C]{r2.Vec{Y: -1}} }

func (d Direction2d[C]) X() float64 { return d.d.X }
func (d Direction2d[C]) Y() float64 { return d.d.Y }

func (d Direction2d[C]) Splat() (float64, float64) { return d.d.X, d.d.Y }

func (d Direction2d[C]) R2() r2.Vec { return d.d }

func (d Direction2d[C]) String() string {
	return fmt.Sprintf("Direction2d(%g, %g)", d.d.X, d.d.Y)
}

func (d Direction2d[C]) IsNaN() bool {
	return math.IsNaN(d.d.X) || math.IsNaN(d.d.Y)
}

// EqualWithin reports whether the angle between d and o is at most tolerance.
func (d Direction2d[C]) EqualWithin(tolerance angle.Angle, o Direction2d[C]) bool {
	return scalar.EqualWithinAbs(float64(d.AngleFrom(o)), 0, float64(tolerance))
}

// ToAngle returns the counterclockwise angle from the positive X direction,
// in (-π, π].
func (d Direction2d[C]) ToAngle() angle.Angle {
	return angle.Radians(math.Atan2(d.d.Y, d.d.X))
}

// AngleFrom returns the counterclockwise angle from o to d, in (-π, π].
func (d Direction2d[C]) AngleFrom(o Direction2d[C]) angle.Angle {
	return angle.Radians(math.Atan2(r2.Cross(o.d, d.d), r2.Dot(o.d, d.d)))
}

// Reverse returns the opposite direction. Reversing twice yields the original
// direction.
func (d Direction2d[C]) Reverse() Direction2d[C] {
	return Direction2d[C]{r2.Scale(-1, d.d)}
}

// Perpendicular returns d rotated counterclockwise by 90°.
func (d Direction2d[C]) Perpendicular() Direction2d[C] {
	return Direction2d[C]{perp2(d.d)}
}

func (d Direction2d[C]) RotateBy(a angle.Angle) Direction2d[C] {
	return Direction2d[C]{rotate2(float64(a)).vector(d.d)}
}

// MirrorAcross reflects d across a line with the given direction.
func (d Direction2d[C]) MirrorAcross(axis Direction2d[C]) Direction2d[C] {
	return Direction2d[C]{reflect2(r2.Vec{}, axis.d).vector(d.d)}
}

// ComponentIn returns the cosine of the angle between d and o.
func (d Direction2d[C]) ComponentIn(o Direction2d[C]) float64 {
	return r2.Dot(d.d, o.d)
}

// ToVector returns d as a unitless vector of length 1.
func (d Direction2d[C]) ToVector() Vector2d[quantity.Unitless, C] {
	return Vector2d[quantity.Unitless, C]{d.d}
}

func (d Direction2d[C]) transform(aff affine2) Direction2d[C] {
	return Direction2d[C]{aff.direction(d.d)}
}

func (f Frame2d[U, G, L]) RelativeDirection(d Direction2d[G]) Direction2d[L] {
	return Direction2d[L](d.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceDirection(d Direction2d[L]) Direction2d[G] {
	return Direction2d[G](d.transform(f.toGlobal()))
}
