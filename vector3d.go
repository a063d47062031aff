package geometry

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Vector3d is a displacement in units U, expressed in coordinate system C.
type Vector3d[U, C any] struct {
	v r3.Vec
}

// Vec3 returns the vector ⟨x, y, z⟩ in coordinate system C.
func Vec3[C, U any](x, y, z quantity.Quantity[U]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}}
}

func Vector3dFromR3[U, C any](v r3.Vec) Vector3d[U, C] {
	return Vector3d[U, C]{v}
}

func ZeroVector3d[U, C any]() Vector3d[U, C] {
	return Vector3d[U, C]{}
}

// Vector3dWithLength returns the vector of length l in direction d.
func Vector3dWithLength[U, C any](l quantity.Quantity[U], d Direction3d[C]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(float64(l), d.d)}
}

func (v Vector3d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](v.v.X) }
func (v Vector3d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](v.v.Y) }
func (v Vector3d[U, C]) Z() quantity.Quantity[U] { return quantity.Quantity[U](v.v.Z) }

func (v Vector3d[U, C]) Splat() (x, y, z quantity.Quantity[U]) {
	return v.X(), v.Y(), v.Z()
}

func (v Vector3d[U, C]) R3() r3.Vec    { return v.v }
func (v Vector3d[U, C]) F64() f64.Vec3 { return f64.Vec3{v.v.X, v.v.Y, v.v.Z} }

func (v Vector3d[U, C]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.v.X, v.v.Y, v.v.Z)
}

func (v Vector3d[U, C]) IsInf() bool { return isInf3(v.v) }
func (v Vector3d[U, C]) IsNaN() bool { return isNaN3(v.v) }

func (v Vector3d[U, C]) EqualWithin(tolerance quantity.Quantity[U], o Vector3d[U, C]) bool {
	return scalar.EqualWithinAbs(r3.Norm(r3.Sub(v.v, o.v)), 0, float64(tolerance))
}

func (v Vector3d[U, C]) Plus(o Vector3d[U, C]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Add(v.v, o.v)}
}

func (v Vector3d[U, C]) Minus(o Vector3d[U, C]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Sub(v.v, o.v)}
}

func (v Vector3d[U, C]) Negate() Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(-1, v.v)}
}

func (v Vector3d[U, C]) ScaleBy(f float64) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(f, v.v)}
}

func (v Vector3d[U, C]) DivideBy(f float64) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(1/f, v.v)}
}

func (v Vector3d[U, C]) Dot(o Vector3d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r3.Dot(v.v, o.v))
}

// Cross3d returns the cross product of v and o. Its magnitude is the area of
// the parallelogram spanned by the two vectors.
//
// It is a function rather than a method because the result has different
// units than its receiver would.
func Cross3d[U, C any](v, o Vector3d[U, C]) Vector3d[quantity.SquaredUnits[U], C] {
	return Vector3d[quantity.SquaredUnits[U], C]{r3.Cross(v.v, o.v)}
}

func (v Vector3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Norm(v.v))
}

func (v Vector3d[U, C]) LengthSquared() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r3.Norm2(v.v))
}

// Direction returns the direction of v. It returns false for the zero vector.
func (v Vector3d[U, C]) Direction() (Direction3d[C], bool) {
	if v.v == (r3.Vec{}) {
		return Direction3d[C]{}, false
	}
	return Direction3d[C]{r3.Unit(v.v)}, true
}

// Normalize returns a unitless vector of magnitude 1 with the same direction
// as v. This produces a NaN vector if the magnitude is 0.
func (v Vector3d[U, C]) Normalize() Vector3d[quantity.Unitless, C] {
	return Vector3d[quantity.Unitless, C]{r3.Unit(v.v)}
}

func (v Vector3d[U, C]) Interpolate(o Vector3d[U, C], t float64) Vector3d[U, C] {
	return Vector3d[U, C]{lerp3(v.v, o.v, t)}
}

func (v Vector3d[U, C]) ComponentIn(d Direction3d[C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Dot(v.v, d.d))
}

func (v Vector3d[U, C]) ProjectionIn(d Direction3d[C]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(r3.Dot(v.v, d.d), d.d)}
}

// Perpendicular returns an arbitrary vector perpendicular to v with the same
// length. The zero vector is returned unchanged.
func (v Vector3d[U, C]) Perpendicular() Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(r3.Norm(v.v), perpendicularTo3(v.v))}
}

func (v Vector3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Vector3d[U, C] {
	return v.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (v Vector3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Vector3d[U, C] {
	return v.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto returns the part of v that lies in the plane.
func (v Vector3d[U, C]) ProjectOnto(plane Plane3d[U, C]) Vector3d[U, C] {
	return v.transform(project3(plane.origin, plane.normal))
}

func (v Vector3d[U, C]) transform(aff affine3) Vector3d[U, C] {
	return Vector3d[U, C]{aff.vector(v.v)}
}

func (f Frame3d[U, G, L]) RelativeVector(v Vector3d[U, G]) Vector3d[U, L] {
	return Vector3d[U, L](v.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceVector(v Vector3d[U, L]) Vector3d[U, G] {
	return Vector3d[U, G](v.transform(f.toGlobal()))
}

// VectorOn lifts a vector in the sketch plane's coordinates into 3D.
func (sp SketchPlane3d[U, G, L]) VectorOn(v Vector2d[U, L]) Vector3d[U, G] {
	return Vector3d[U, G]{sp.liftVector(v.v)}
}

// ProjectVector projects v into the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectVector(v Vector3d[U, G]) Vector2d[U, L] {
	return Vector2d[U, L]{sp.projectVector(v.v)}
}

func lerp3(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// collinearTolerance bounds the sine of the angle between two edges that are
// still considered parallel.
const collinearTolerance = 1e-12

// normal3 returns the unit normal of the triangle p1, p2, p3, following the
// right-hand rule. It returns false if the points are collinear up to
// rounding, relative to the lengths of the edges.
func normal3(p1, p2, p3 r3.Vec) (r3.Vec, bool) {
	u, v := r3.Sub(p2, p1), r3.Sub(p3, p1)
	n := r3.Cross(u, v)
	l := r3.Norm(n)
	if !(l > collinearTolerance*r3.Norm(u)*r3.Norm(v)) {
		return r3.Vec{}, false
	}
	return r3.Scale(1/l, n), true
}

func isInf3(v r3.Vec) bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

func isNaN3(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// perpendicularTo3 returns a unit vector perpendicular to v, built from the
// two largest components of v for numerical stability.
func perpendicularTo3(v r3.Vec) r3.Vec {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var p r3.Vec
	switch {
	case ax <= ay && ax <= az:
		p = r3.Vec{X: 0, Y: -v.Z, Z: v.Y}
	case ay <= az:
		p = r3.Vec{X: v.Z, Y: 0, Z: -v.X}
	default:
		p = r3.Vec{X: -v.Y, Y: v.X, Z: 0}
	}
	if p == (r3.Vec{}) {
		return p
	}
	return r3.Unit(p)
}
