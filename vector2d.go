package geometry

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Vector2d is a displacement in units U, expressed in coordinate system C.
type Vector2d[U, C any] struct {
	v r2.Vec
}

// Vec2 returns the vector ⟨x, y⟩ in coordinate system C. The units are
// inferred from the components:
//
//	v := Vec2[World](length.Meters(1), length.Meters(2))
func Vec2[C, U any](x, y quantity.Quantity[U]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Vec{X: float64(x), Y: float64(y)}}
}

// Vector2dFromR2 returns the vector with the given raw components, in the base
// units of U.
func Vector2dFromR2[U, C any](v r2.Vec) Vector2d[U, C] {
	return Vector2d[U, C]{v}
}

func ZeroVector2d[U, C any]() Vector2d[U, C] {
	return Vector2d[U, C]{}
}

// Vector2dPolar returns the vector with the given length and polar angle.
func Vector2dPolar[C, U any](r quantity.Quantity[U], a angle.Angle) Vector2d[U, C] {
	sin, cos := angle.Sincos(a)
	return Vector2d[U, C]{r2.Vec{X: float64(r) * cos, Y: float64(r) * sin}}
}

// Vector2dWithLength returns the vector of length l in direction d.
func Vector2dWithLength[U, C any](l quantity.Quantity[U], d Direction2d[C]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Scale(float64(l), d.d)}
}

func (v Vector2d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](v.v.X) }
func (v Vector2d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](v.v.Y) }

// Splat returns the vector's x and y components.
func (v Vector2d[U, C]) Splat() (quantity.Quantity[U], quantity.Quantity[U]) {
	return v.X(), v.Y()
}

// R2 returns the raw components in the base units of U.
func (v Vector2d[U, C]) R2() r2.Vec { return v.v }

// F64 returns the raw components as an f64.Vec2.
func (v Vector2d[U, C]) F64() f64.Vec2 { return f64.Vec2{v.v.X, v.v.Y} }

func (v Vector2d[U, C]) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.v.X, v.v.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vector2d[U, C]) IsInf() bool {
	return math.IsInf(v.v.X, 0) || math.IsInf(v.v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector2d[U, C]) IsNaN() bool {
	return math.IsNaN(v.v.X) || math.IsNaN(v.v.Y)
}

// EqualWithin reports whether v and o differ by a vector no longer than
// tolerance.
func (v Vector2d[U, C]) EqualWithin(tolerance quantity.Quantity[U], o Vector2d[U, C]) bool {
	return scalar.EqualWithinAbs(r2.Norm(r2.Sub(v.v, o.v)), 0, float64(tolerance))
}

func (v Vector2d[U, C]) Plus(o Vector2d[U, C]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Add(v.v, o.v)}
}

func (v Vector2d[U, C]) Minus(o Vector2d[U, C]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Sub(v.v, o.v)}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector2d[U, C]) Negate() Vector2d[U, C] {
	return Vector2d[U, C]{r2.Scale(-1, v.v)}
}

func (v Vector2d[U, C]) ScaleBy(f float64) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Scale(f, v.v)}
}

func (v Vector2d[U, C]) DivideBy(f float64) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Scale(1/f, v.v)}
}

// Dot returns the dot product of v and o.
func (v Vector2d[U, C]) Dot(o Vector2d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r2.Dot(v.v, o.v))
}

// Cross returns the z component of the cross product of v and o. It is
// positive if o is counterclockwise from v.
func (v Vector2d[U, C]) Cross(o Vector2d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r2.Cross(v.v, o.v))
}

// Length returns the magnitude of the vector.
func (v Vector2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Norm(v.v))
}

// LengthSquared returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of
// [Vector2d.Length].
func (v Vector2d[U, C]) LengthSquared() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r2.Norm2(v.v))
}

// PolarAngle returns the angle between the vector and the positive X
// direction. This is atan2(y, x).
func (v Vector2d[U, C]) PolarAngle() angle.Angle {
	return angle.Atan2(v.Y(), v.X())
}

// Direction returns the direction of v. It returns false for the zero vector.
func (v Vector2d[U, C]) Direction() (Direction2d[C], bool) {
	if v.v == (r2.Vec{}) {
		return Direction2d[C]{}, false
	}
	return Direction2d[C]{r2.Unit(v.v)}, true
}

// Normalize returns a unitless vector of magnitude 1 with the same direction
// as v. This produces a NaN vector if the magnitude is 0.
func (v Vector2d[U, C]) Normalize() Vector2d[quantity.Unitless, C] {
	return Vector2d[quantity.Unitless, C]{r2.Unit(v.v)}
}

// Interpolate linearly interpolates between two vectors.
func (v Vector2d[U, C]) Interpolate(o Vector2d[U, C], t float64) Vector2d[U, C] {
	return Vector2d[U, C]{lerp2(v.v, o.v, t)}
}

// ComponentIn returns the signed length of v along d.
func (v Vector2d[U, C]) ComponentIn(d Direction2d[C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r2.Dot(v.v, d.d))
}

// ProjectionIn returns the part of v that is parallel to d.
func (v Vector2d[U, C]) ProjectionIn(d Direction2d[C]) Vector2d[U, C] {
	return Vector2d[U, C]{r2.Scale(r2.Dot(v.v, d.d), d.d)}
}

// Perpendicular returns v rotated counterclockwise by 90°.
func (v Vector2d[U, C]) Perpendicular() Vector2d[U, C] {
	return Vector2d[U, C]{perp2(v.v)}
}

func (v Vector2d[U, C]) RotateBy(a angle.Angle) Vector2d[U, C] {
	return v.transform(rotate2(float64(a)))
}

// MirrorAcross reflects v across axis. Only the axis direction matters.
func (v Vector2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Vector2d[U, C] {
	return v.transform(reflect2(axis.origin, axis.dir))
}

// ProjectOnto returns the part of v that is parallel to axis.
func (v Vector2d[U, C]) ProjectOnto(axis Axis2d[U, C]) Vector2d[U, C] {
	return v.ProjectionIn(axis.Direction())
}

func (v Vector2d[U, C]) transform(aff affine2) Vector2d[U, C] {
	return Vector2d[U, C]{aff.vector(v.v)}
}

// RelativeVector expresses a vector given in global coordinates in the
// frame's local coordinates.
func (f Frame2d[U, G, L]) RelativeVector(v Vector2d[U, G]) Vector2d[U, L] {
	return Vector2d[U, L](v.transform(f.toLocal()))
}

// PlaceVector expresses a vector given in the frame's local coordinates in
// global coordinates.
func (f Frame2d[U, G, L]) PlaceVector(v Vector2d[U, L]) Vector2d[U, G] {
	return Vector2d[U, G](v.transform(f.toGlobal()))
}

func lerp2(a, b r2.Vec, t float64) r2.Vec {
	// a + t * (b-a)
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

func perp2(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}
