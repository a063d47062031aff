// Package angle provides constructors, accessors and trigonometry for
// angles, which are quantities in radians.
package angle

import (
	"math"

	"github.com/golang/geo/s1"

	"honnef.co/go/geometry/quantity"
)

// Angle is an angle in radians. Positive angles are counterclockwise.
type Angle = quantity.Quantity[quantity.Radians]

const (
	Pi     Angle = math.Pi
	HalfPi Angle = math.Pi / 2
	TwoPi  Angle = 2 * math.Pi
)

func Radians(r float64) Angle { return Angle(r) }
func Degrees(d float64) Angle { return Angle(d * math.Pi / 180) }
func Turns(t float64) Angle   { return Angle(t * 2 * math.Pi) }

func InRadians(a Angle) float64 { return float64(a) }
func InDegrees(a Angle) float64 { return float64(a) * 180 / math.Pi }
func InTurns(a Angle) float64   { return float64(a) / (2 * math.Pi) }

func Sin(a Angle) float64 { return math.Sin(float64(a)) }
func Cos(a Angle) float64 { return math.Cos(float64(a)) }
func Tan(a Angle) float64 { return math.Tan(float64(a)) }

// Sincos returns Sin(a), Cos(a).
func Sincos(a Angle) (sin, cos float64) { return math.Sincos(float64(a)) }

// Asin returns the arcsine of x. Values outside [-1, 1] produce NaN.
func Asin(x float64) Angle { return Angle(math.Asin(x)) }

// Acos returns the arccosine of x. Values outside [-1, 1] produce NaN.
func Acos(x float64) Angle { return Angle(math.Acos(x)) }

func Atan(x float64) Angle { return Angle(math.Atan(x)) }

// Atan2 returns the angle of the vector (x, y), in (-π, π]. Both components
// must have the same units. Atan2(0, 0) is 0, following [math.Atan2].
func Atan2[U any](y, x quantity.Quantity[U]) Angle {
	return Angle(math.Atan2(float64(y), float64(x)))
}

// Normalize returns the angle equivalent to a in the range (-π, π].
func Normalize(a Angle) Angle {
	return FromS1(ToS1(a).Normalized())
}

// FromS1 converts an s1.Angle.
func FromS1(a s1.Angle) Angle { return Angle(a.Radians()) }

// ToS1 converts an angle to an s1.Angle.
func ToS1(a Angle) s1.Angle { return s1.Angle(a) * s1.Radian }
