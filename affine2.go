package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// affine2 describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// Every public transformation in this package is a similarity transform
// (rotation, uniform scale, reflection and translation), which is what allows
// circles to stay circles and directions to stay unit length after
// normalization. Projections are the only singular transforms and are handled
// by the types that support them.
type affine2 struct {
	// We represent affine2 as a struct instead of an array because Go applies
	// very few optimizations to arrays, while structs benefit from SROA.

	n0, n1, n2, n3, n4, n5 float64
}

var identity2 = affine2{1, 0, 0, 1, 0, 0}

func translate2(v r2.Vec) affine2 {
	return affine2{1, 0, 0, 1, v.X, v.Y}
}

// rotate2 creates a rotation about the origin. A positive angle rotates the
// positive X direction into positive Y.
func rotate2(th float64) affine2 {
	sin, cos := math.Sincos(th)
	return affine2{cos, sin, -sin, cos, 0, 0}
}

// rotateAbout2 creates a rotation of th radians about center.
func rotateAbout2(th float64, center r2.Vec) affine2 {
	return translate2(center).mul(rotate2(th)).mul(translate2(r2.Scale(-1, center)))
}

// scaleAbout2 creates a uniform scale by s, keeping center fixed.
func scaleAbout2(s float64, center r2.Vec) affine2 {
	return affine2{s, 0, 0, s, center.X * (1 - s), center.Y * (1 - s)}
}

// reflect2 creates a reflection about the line pt + dir * t.
func reflect2(pt, dir r2.Vec) affine2 {
	n := r2.Unit(r2.Vec{X: dir.Y, Y: -dir.X})

	// Householder reflection matrix
	x2 := n.X * n.X
	xy := n.X * n.Y
	y2 := n.Y * n.Y
	// The post translation is added here because it doesn't require any
	// further calculation.
	aff := affine2{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		pt.X,
		pt.Y,
	}
	return aff.mul(translate2(r2.Scale(-1, pt)))
}

// basis2 maps local coordinates to the frame with the given origin and axes.
func basis2(origin, x, y r2.Vec) affine2 {
	return affine2{x.X, x.Y, y.X, y.Y, origin.X, origin.Y}
}

func (aff affine2) mul(o affine2) affine2 {
	return affine2{
		aff.n0*o.n0 + aff.n2*o.n1,
		aff.n1*o.n0 + aff.n3*o.n1,
		aff.n0*o.n2 + aff.n2*o.n3,
		aff.n1*o.n2 + aff.n3*o.n3,
		aff.n0*o.n4 + aff.n2*o.n5 + aff.n4,
		aff.n1*o.n4 + aff.n3*o.n5 + aff.n5,
	}
}

func (aff affine2) determinant() float64 {
	return aff.n0*aff.n3 - aff.n1*aff.n2
}

// invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff affine2) invert() affine2 {
	invDet := 1 / aff.determinant()
	return affine2{
		+invDet * aff.n3,
		-invDet * aff.n1,
		-invDet * aff.n2,
		+invDet * aff.n0,
		+invDet * (aff.n2*aff.n5 - aff.n3*aff.n4),
		+invDet * (aff.n1*aff.n4 - aff.n0*aff.n5),
	}
}

// scale returns the uniform scale factor of a similarity transform.
func (aff affine2) scale() float64 {
	return math.Sqrt(math.Abs(aff.determinant()))
}

// reflects reports whether the transform reverses orientation.
func (aff affine2) reflects() bool {
	return aff.determinant() < 0
}

func (aff affine2) point(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: aff.n0*p.X + aff.n2*p.Y + aff.n4,
		Y: aff.n1*p.X + aff.n3*p.Y + aff.n5,
	}
}

// vector applies only the linear part of the transform.
func (aff affine2) vector(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: aff.n0*v.X + aff.n2*v.Y,
		Y: aff.n1*v.X + aff.n3*v.Y,
	}
}

// direction maps a unit vector and renormalizes it. Negative scales reverse
// directions.
func (aff affine2) direction(d r2.Vec) r2.Vec {
	return r2.Unit(aff.vector(d))
}

func (aff affine2) points(ps []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(ps))
	for i, p := range ps {
		out[i] = aff.point(p)
	}
	return out
}

func (aff affine2) isNaN() bool {
	return math.IsNaN(aff.n0) ||
		math.IsNaN(aff.n1) ||
		math.IsNaN(aff.n2) ||
		math.IsNaN(aff.n3) ||
		math.IsNaN(aff.n4) ||
		math.IsNaN(aff.n5)
}

// svd computes the singular value decomposition of the linear part of the
// transformation, ignoring the translation.
//
// All non-degenerate linear transformations can be represented as
//
//  1. a rotation about the origin.
//  2. a scaling along the x and y axes
//  3. another rotation about the origin
//
// composed together. Decomposing a 2x2 matrix in this way is called a
// "singular value decomposition" and is written "U Σ V^T", where U and V^T
// are orthogonal (rotations) and Σ is a diagonal matrix (a scaling).
//
// We only need the radii and rotation of the image of the unit circle, so
// V^T is not computed.
//
// A singular map produces a zero Y scale.
func (aff affine2) svd() (scale r2.Vec, th float64) {
	a := aff.n0
	a2 := a * a
	b := aff.n1
	b2 := b * b
	c := aff.n2
	c2 := c * c
	d := aff.n3
	d2 := d * d
	ab := a * b
	cd := c * d
	th = 0.5 * math.Atan2(2.0*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Sqrt(math.Pow(a2-b2+c2-d2, 2) + 4.0*math.Pow(ab+cd, 2))
	return r2.Vec{
		X: math.Sqrt(0.5 * (s1 + s2)),
		Y: math.Sqrt(max(0, 0.5*(s1-s2))),
	}, th
}
