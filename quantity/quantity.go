// Package quantity provides dimensioned floating-point values.
//
// A [Quantity] is a float64 tagged with a phantom unit type. The tag has no
// runtime representation; it exists so that adding a length to an angle, or
// comparing pixels with meters, is a compile-time error. All arithmetic is
// plain float64 arithmetic and follows IEEE-754 semantics: there are no
// runtime checks and no errors. For example, [Sqrt] of a negative quantity is
// NaN and [AtInverse] with a zero rate produces infinities.
//
// Units are marker types such as [Meters] and [Radians]. Derived units are
// built from markers: [SquaredUnits], [CubedUnits] and [Rate]. Packages
// honnef.co/go/geometry/angle and honnef.co/go/geometry/length provide
// constructors for the common cases.
//
// To deliberately reinterpret a quantity in different units, use an explicit
// conversion, e.g. Quantity[Pixels](q). Prefer [At] with a [Rate] instead,
// which keeps the conversion factor itself typed.
package quantity

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats/scalar"
)

// Quantity is a float64 magnitude measured in units U.
type Quantity[U any] float64

// Unitless is the unit of plain numbers.
type Unitless struct{}

// Meters is the base unit of length.
type Meters struct{}

// Radians is the base unit of angle.
type Radians struct{}

// Pixels is the unit of on-screen distances.
type Pixels struct{}

// SquaredUnits is the unit of U×U, such as an area.
type SquaredUnits[U any] struct{}

// CubedUnits is the unit of U×U×U, such as a volume.
type CubedUnits[U any] struct{}

// Rate is the unit of D per S, such as pixels per meter.
type Rate[D, S any] struct{}

// Float is a plain number.
type Float = Quantity[Unitless]

// Zero returns the zero quantity in units U.
func Zero[U any]() Quantity[U] { return 0 }

// Infinity returns positive infinity in units U.
func Infinity[U any]() Quantity[U] { return Quantity[U](math.Inf(1)) }

// Float64 returns the raw magnitude of q, in its units.
func (q Quantity[U]) Float64() float64 { return float64(q) }

func (q Quantity[U]) String() string {
	return fmt.Sprintf("%g", float64(q))
}

func (q Quantity[U]) Plus(o Quantity[U]) Quantity[U]  { return q + o }
func (q Quantity[U]) Minus(o Quantity[U]) Quantity[U] { return q - o }

// Negate returns −q.
func (q Quantity[U]) Negate() Quantity[U] { return -q }

// Abs returns the absolute value of q.
func (q Quantity[U]) Abs() Quantity[U] { return Quantity[U](math.Abs(float64(q))) }

// MultiplyBy scales q by the plain number f.
func (q Quantity[U]) MultiplyBy(f float64) Quantity[U] { return Quantity[U](float64(q) * f) }

// DivideBy divides q by the plain number f. Division by zero yields ±Inf or
// NaN.
func (q Quantity[U]) DivideBy(f float64) Quantity[U] { return Quantity[U](float64(q) / f) }

// Ratio returns q/o as a plain number. The units cancel.
func (q Quantity[U]) Ratio(o Quantity[U]) float64 { return float64(q) / float64(o) }

func (q Quantity[U]) LessThan(o Quantity[U]) bool             { return q < o }
func (q Quantity[U]) LessThanOrEqualTo(o Quantity[U]) bool    { return q <= o }
func (q Quantity[U]) GreaterThan(o Quantity[U]) bool          { return q > o }
func (q Quantity[U]) GreaterThanOrEqualTo(o Quantity[U]) bool { return q >= o }

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to
// or greater than o. NaN sorts before all other values.
func (q Quantity[U]) Compare(o Quantity[U]) int { return cmp.Compare(q, o) }

// EqualWithin reports whether q and o differ by at most tolerance.
func (q Quantity[U]) EqualWithin(tolerance, o Quantity[U]) bool {
	return scalar.EqualWithinAbs(float64(q), float64(o), float64(tolerance))
}

// Clamp restricts q to [lo, hi]. The bounds may be given in either order.
func (q Quantity[U]) Clamp(lo, hi Quantity[U]) Quantity[U] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(q, lo), hi)
}

// Sign returns -1, 0 or +1. Sign of NaN is NaN.
func (q Quantity[U]) Sign() float64 {
	switch {
	case q > 0:
		return 1
	case q < 0:
		return -1
	case q == 0:
		return 0
	default:
		return math.NaN()
	}
}

func (q Quantity[U]) IsNaN() bool { return math.IsNaN(float64(q)) }
func (q Quantity[U]) IsInf() bool { return math.IsInf(float64(q), 0) }

// Product multiplies two quantities of the same units.
func Product[U any](a, b Quantity[U]) Quantity[SquaredUnits[U]] {
	return Quantity[SquaredUnits[U]](float64(a) * float64(b))
}

// Squared returns q².
func Squared[U any](q Quantity[U]) Quantity[SquaredUnits[U]] {
	return Quantity[SquaredUnits[U]](float64(q) * float64(q))
}

// Cubed returns q³.
func Cubed[U any](q Quantity[U]) Quantity[CubedUnits[U]] {
	return Quantity[CubedUnits[U]](float64(q) * float64(q) * float64(q))
}

// Sqrt is the inverse of [Squared]. The square root of a negative quantity is
// NaN; callers that can see negative inputs have to guard against them.
func Sqrt[U any](q Quantity[SquaredUnits[U]]) Quantity[U] {
	return Quantity[U](math.Sqrt(float64(q)))
}

// Cbrt is the inverse of [Cubed].
func Cbrt[U any](q Quantity[CubedUnits[U]]) Quantity[U] {
	return Quantity[U](math.Cbrt(float64(q)))
}

// Over divides a squared quantity by a quantity of the base units.
func Over[U any](a Quantity[SquaredUnits[U]], b Quantity[U]) Quantity[U] {
	return Quantity[U](float64(a) / float64(b))
}

// Interpolate linearly interpolates from a to b. The parameter t is not
// clamped: values outside [0, 1] extrapolate.
func Interpolate[U any](a, b Quantity[U], t float64) Quantity[U] {
	if t <= 0.5 {
		return a + Quantity[U](t)*(b-a)
	}
	// Evaluating from b keeps Interpolate(a, b, 1) == b exactly.
	return b + Quantity[U](1-t)*(a-b)
}

// Midpoint returns the quantity halfway between a and b.
func Midpoint[U any](a, b Quantity[U]) Quantity[U] {
	return a + 0.5*(b-a)
}

// Sum returns the sum of all quantities.
func Sum[U any](qs ...Quantity[U]) Quantity[U] {
	return lo.Sum(qs)
}

// Min returns the smallest of qs, or false if qs is empty.
func Min[U any](qs []Quantity[U]) (Quantity[U], bool) {
	if len(qs) == 0 {
		return 0, false
	}
	return slices.Min(qs), true
}

// Max returns the largest of qs, or false if qs is empty.
func Max[U any](qs []Quantity[U]) (Quantity[U], bool) {
	if len(qs) == 0 {
		return 0, false
	}
	return slices.Max(qs), true
}

// Range returns steps+1 evenly spaced quantities from start to end,
// inclusive. It returns nil if steps is less than one.
func Range[U any](start, end Quantity[U], steps int) []Quantity[U] {
	if steps < 1 {
		return nil
	}
	return lo.Times(steps+1, func(i int) Quantity[U] {
		return Interpolate(start, end, float64(i)/float64(steps))
	})
}

// Per builds the rate d per s.
func Per[D, S any](d Quantity[D], s Quantity[S]) Quantity[Rate[D, S]] {
	return Quantity[Rate[D, S]](float64(d) / float64(s))
}

// InverseRate turns a rate of D per S into a rate of S per D.
func InverseRate[D, S any](rate Quantity[Rate[D, S]]) Quantity[Rate[S, D]] {
	return Quantity[Rate[S, D]](1 / float64(rate))
}

// At converts q into units D using rate, e.g. a length in meters into pixels
// at a given pixels-per-meter resolution.
func At[D, S any](rate Quantity[Rate[D, S]], q Quantity[S]) Quantity[D] {
	return Quantity[D](float64(rate) * float64(q))
}

// AtInverse is the inverse of [At]: it converts q from units D back into S.
// AtInverse(rate, At(rate, q)) equals q up to rounding, for any nonzero rate.
func AtInverse[D, S any](rate Quantity[Rate[D, S]], q Quantity[D]) Quantity[S] {
	return Quantity[S](float64(q) / float64(rate))
}
