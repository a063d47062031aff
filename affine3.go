package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// affine3 is the 3D counterpart of affine2: a 3×3 linear part m, stored by
// rows, followed by a translation t.
type affine3 struct {
	m [3][3]float64
	t r3.Vec
}

var identity3 = affine3{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

func translate3(v r3.Vec) affine3 {
	aff := identity3
	aff.t = v
	return aff
}

// rotateAbout3 creates a rotation of th radians around the axis through
// origin with the given unit direction, following the right-hand rule.
func rotateAbout3(th float64, origin, dir r3.Vec) affine3 {
	rot := r3.NewRotation(th, dir).Mat()
	var aff affine3
	for i := range 3 {
		for j := range 3 {
			aff.m[i][j] = rot.At(i, j)
		}
	}
	aff.t = r3.Sub(origin, aff.linear(origin))
	return aff
}

func scaleAbout3(s float64, center r3.Vec) affine3 {
	return affine3{
		m: [3][3]float64{{s, 0, 0}, {0, s, 0}, {0, 0, s}},
		t: r3.Scale(1-s, center),
	}
}

// reflect3 creates a reflection across the plane through origin with the
// given unit normal.
func reflect3(origin, n r3.Vec) affine3 {
	// Householder reflection I - 2nnᵀ
	nv := [3]float64{n.X, n.Y, n.Z}
	var aff affine3
	for i := range 3 {
		for j := range 3 {
			aff.m[i][j] = -2 * nv[i] * nv[j]
		}
		aff.m[i][i] += 1
	}
	aff.t = r3.Sub(origin, aff.linear(origin))
	return aff
}

// project3 creates the orthogonal projection onto the plane through origin
// with the given unit normal. It is singular.
func project3(origin, n r3.Vec) affine3 {
	nv := [3]float64{n.X, n.Y, n.Z}
	var aff affine3
	for i := range 3 {
		for j := range 3 {
			aff.m[i][j] = -nv[i] * nv[j]
		}
		aff.m[i][i] += 1
	}
	aff.t = r3.Sub(origin, aff.linear(origin))
	return aff
}

// basis3 maps local coordinates to the frame with the given origin and axes.
func basis3(origin, x, y, z r3.Vec) affine3 {
	return affine3{
		m: [3][3]float64{
			{x.X, y.X, z.X},
			{x.Y, y.Y, z.Y},
			{x.Z, y.Z, z.Z},
		},
		t: origin,
	}
}

func (aff affine3) mul(o affine3) affine3 {
	var out affine3
	for i := range 3 {
		for j := range 3 {
			out.m[i][j] = aff.m[i][0]*o.m[0][j] + aff.m[i][1]*o.m[1][j] + aff.m[i][2]*o.m[2][j]
		}
	}
	out.t = r3.Add(aff.linear(o.t), aff.t)
	return out
}

func (aff affine3) determinant() float64 {
	m := aff.m
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff affine3) invert() affine3 {
	m := aff.m
	invDet := 1 / aff.determinant()
	var out affine3
	out.m[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out.m[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out.m[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out.m[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out.m[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out.m[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out.m[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out.m[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out.m[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	out.t = r3.Scale(-1, out.linear(aff.t))
	return out
}

// scale returns the uniform scale factor of a similarity transform.
func (aff affine3) scale() float64 {
	return math.Cbrt(math.Abs(aff.determinant()))
}

// reflects reports whether the transform reverses orientation.
func (aff affine3) reflects() bool {
	return aff.determinant() < 0
}

func (aff affine3) linear(v r3.Vec) r3.Vec {
	m := aff.m
	return r3.Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (aff affine3) point(p r3.Vec) r3.Vec {
	return r3.Add(aff.linear(p), aff.t)
}

func (aff affine3) vector(v r3.Vec) r3.Vec {
	return aff.linear(v)
}

// direction maps a unit vector and renormalizes it. Negative scales reverse
// directions.
func (aff affine3) direction(d r3.Vec) r3.Vec {
	return r3.Unit(aff.linear(d))
}

func (aff affine3) points(ps []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(ps))
	for i, p := range ps {
		out[i] = aff.point(p)
	}
	return out
}
