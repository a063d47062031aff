package geometry

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/quantity"
)

// Point4d is a point in homogeneous coordinates (x, y, z, w). It is the
// weighted form of a [Point3d], as used by rational splines: (w·x, w·y, w·z, w)
// represents the 3D point (x, y, z) with weight w.
type Point4d[U, C any] struct {
	p f64.Vec4
}

// Vector4d is the difference of two homogeneous points.
type Vector4d[U, C any] struct {
	v f64.Vec4
}

func Point4dXYZW[U, C any](x, y, z, w float64) Point4d[U, C] {
	return Point4d[U, C]{f64.Vec4{x, y, z, w}}
}

func Vector4dXYZW[U, C any](x, y, z, w float64) Vector4d[U, C] {
	return Vector4d[U, C]{f64.Vec4{x, y, z, w}}
}

func (p Point4d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](p.p[0]) }
func (p Point4d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](p.p[1]) }
func (p Point4d[U, C]) Z() quantity.Quantity[U] { return quantity.Quantity[U](p.p[2]) }
func (p Point4d[U, C]) W() float64              { return p.p[3] }
func (p Point4d[U, C]) F64() f64.Vec4           { return p.p }

func (p Point4d[U, C]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", p.p[0], p.p[1], p.p[2], p.p[3])
}

func (p Point4d[U, C]) IsNaN() bool {
	return math.IsNaN(p.p[0]) || math.IsNaN(p.p[1]) || math.IsNaN(p.p[2]) || math.IsNaN(p.p[3])
}

// Project divides by the weight and returns the represented 3D point. It
// returns false if the weight is zero.
func (p Point4d[U, C]) Project() (Point3d[U, C], bool) {
	w := p.p[3]
	if w == 0 {
		return Point3d[U, C]{}, false
	}
	return Point3d[U, C]{r3.Vec{X: p.p[0] / w, Y: p.p[1] / w, Z: p.p[2] / w}}, true
}

func (p Point4d[U, C]) TranslateBy(v Vector4d[U, C]) Point4d[U, C] {
	return Point4d[U, C]{add4(p.p, v.v)}
}

func (p Point4d[U, C]) Minus(o Point4d[U, C]) Vector4d[U, C] {
	return Vector4d[U, C]{sub4(p.p, o.p)}
}

// Distance returns the euclidean distance in 4D.
func (p Point4d[U, C]) Distance(o Point4d[U, C]) quantity.Quantity[U] {
	return p.Minus(o).Length()
}

// Interpolate linearly interpolates all four coordinates.
func (p Point4d[U, C]) Interpolate(o Point4d[U, C], t float64) Point4d[U, C] {
	return Point4d[U, C]{add4(p.p, scale4(t, sub4(o.p, p.p)))}
}

func (v Vector4d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](v.v[0]) }
func (v Vector4d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](v.v[1]) }
func (v Vector4d[U, C]) Z() quantity.Quantity[U] { return quantity.Quantity[U](v.v[2]) }
func (v Vector4d[U, C]) W() quantity.Quantity[U] { return quantity.Quantity[U](v.v[3]) }
func (v Vector4d[U, C]) F64() f64.Vec4           { return v.v }

func (v Vector4d[U, C]) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.v[0], v.v[1], v.v[2], v.v[3])
}

func (v Vector4d[U, C]) Plus(o Vector4d[U, C]) Vector4d[U, C] {
	return Vector4d[U, C]{add4(v.v, o.v)}
}

func (v Vector4d[U, C]) Minus(o Vector4d[U, C]) Vector4d[U, C] {
	return Vector4d[U, C]{sub4(v.v, o.v)}
}

func (v Vector4d[U, C]) ScaleBy(f float64) Vector4d[U, C] {
	return Vector4d[U, C]{scale4(f, v.v)}
}

func (v Vector4d[U, C]) Dot(o Vector4d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](v.v[0]*o.v[0] + v.v[1]*o.v[1] + v.v[2]*o.v[2] + v.v[3]*o.v[3])
}

func (v Vector4d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Sqrt(v.Dot(v))
}

func (v Vector4d[U, C]) Interpolate(o Vector4d[U, C], t float64) Vector4d[U, C] {
	return Vector4d[U, C]{add4(v.v, scale4(t, sub4(o.v, v.v)))}
}

func add4(a, b f64.Vec4) f64.Vec4 {
	return f64.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub4(a, b f64.Vec4) f64.Vec4 {
	return f64.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func scale4(f float64, a f64.Vec4) f64.Vec4 {
	return f64.Vec4{f * a[0], f * a[1], f * a[2], f * a[3]}
}
