package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAffine2Basic(t *testing.T) {
	p := r2.Vec{X: 3, Y: 4}

	assertNear2(t, identity2.point(p), p, epsilon)
	assertNear2(t, scaleAbout2(2, r2.Vec{}).point(p), r2.Vec{X: 6, Y: 8}, epsilon)
	assertNear2(t, rotate2(0).point(p), p, epsilon)
	assertNear2(t, rotate2(math.Pi/2).point(p), r2.Vec{X: -4, Y: 3}, epsilon)
	assertNear2(t, translate2(r2.Vec{X: 5, Y: 6}).point(p), r2.Vec{X: 8, Y: 10}, epsilon)
	assertNear2(t, rotateAbout2(math.Pi, r2.Vec{X: 1, Y: 1}).point(p), r2.Vec{X: -1, Y: -2}, epsilon)
	assertNear2(t, scaleAbout2(-1, r2.Vec{X: 1}).point(p), r2.Vec{X: -1, Y: -4}, epsilon)
}

func TestAffine2Mul(t *testing.T) {
	a1 := affine2{1, 2, 3, 4, 5, 6}
	a2 := affine2{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []r2.Vec{{X: 1}, {Y: 1}, {X: 1, Y: 1}} {
		assertNear2(t, a1.point(a2.point(p)), a1.mul(a2).point(p), epsilon)
	}
}

func TestAffine2Invert(t *testing.T) {
	a := affine2{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.invert()

	for _, p := range []r2.Vec{{X: 1}, {Y: 1}, {X: 1, Y: 1}} {
		assertNear2(t, a.point(aInv.point(p)), p, epsilon)
		assertNear2(t, aInv.point(a.point(p)), p, epsilon)
	}

	if !(affine2{}).invert().isNaN() {
		t.Error("inverting a singular transform should produce NaN")
	}
}

func TestAffine2Reflection(t *testing.T) {
	affineAssertNear := func(a0, a1 affine2) {
		t.Helper()
		a0a := [6]float64{a0.n0, a0.n1, a0.n2, a0.n3, a0.n4, a0.n5}
		a1a := [6]float64{a1.n0, a1.n1, a1.n2, a1.n3, a1.n4, a1.n5}
		for i := range 6 {
			if d := math.Abs(a0a[i] - a1a[i]); d > epsilon {
				t.Fatalf("%g > %g", d, epsilon)
			}
		}
	}

	affineAssertNear(reflect2(r2.Vec{}, r2.Vec{X: 1}), affine2{1, 0, 0, -1, 0, 0})
	affineAssertNear(reflect2(r2.Vec{}, r2.Vec{Y: 1}), affine2{-1, 0, 0, 1, 0, 0})
	affineAssertNear(reflect2(r2.Vec{}, r2.Vec{X: 1, Y: 1}), affine2{0, 1, 1, 0, 0, 0})

	{
		// No translation
		aff := reflect2(r2.Vec{}, r2.Vec{X: 1, Y: 1})
		assertNear2(t, aff.point(r2.Vec{}), r2.Vec{}, epsilon)
		assertNear2(t, aff.point(r2.Vec{X: 1, Y: 1}), r2.Vec{X: 1, Y: 1}, epsilon)
		assertNear2(t, aff.point(r2.Vec{X: 1, Y: 2}), r2.Vec{X: 2, Y: 1}, epsilon)
		if !aff.reflects() {
			t.Error("reflection should reverse orientation")
		}
	}

	{
		// With translation
		aff := reflect2(r2.Vec{X: 1}, r2.Vec{X: 1, Y: 1})
		assertNear2(t, aff.point(r2.Vec{X: 1}), r2.Vec{X: 1}, epsilon)
		assertNear2(t, aff.point(r2.Vec{X: 2, Y: 1}), r2.Vec{X: 2, Y: 1}, epsilon)
		assertNear2(t, aff.point(r2.Vec{X: 2, Y: 2}), r2.Vec{X: 3, Y: 1}, epsilon)
	}
}

func TestAffine2SVD(t *testing.T) {
	// Rotating and then stretching the unit circle yields an ellipse whose
	// radii are the stretch factors.
	aff := affine2{3, 0, 0, 2, 0, 0}.mul(rotate2(0.3))
	s, _ := aff.svd()
	assertNear2(t, s, r2.Vec{X: 3, Y: 2}, epsilon)

	s, _ = affine2{1, 2, 2, 4, 0, 0}.svd()
	if s.Y != 0 {
		t.Errorf("singular map has Y scale %g, expected 0", s.Y)
	}
}

func TestAffine3Basic(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: 3}
	z := r3.Vec{Z: 1}

	assertNear3(t, identity3.point(p), p, epsilon)
	assertNear3(t, translate3(r3.Vec{X: 1, Y: 1, Z: 1}).point(p), r3.Vec{X: 2, Y: 3, Z: 4}, epsilon)
	assertNear3(t, rotateAbout3(math.Pi/2, r3.Vec{}, z).point(p), r3.Vec{X: -2, Y: 1, Z: 3}, epsilon)
	assertNear3(t, rotateAbout3(math.Pi, r3.Vec{X: 1}, z).point(p), r3.Vec{X: 1, Y: -2, Z: 3}, epsilon)
	assertNear3(t, scaleAbout3(2, r3.Vec{X: 1}).point(p), r3.Vec{X: 1, Y: 4, Z: 6}, epsilon)
	assertNear3(t, reflect3(r3.Vec{Z: 1}, z).point(p), r3.Vec{X: 1, Y: 2, Z: -1}, epsilon)
	assertNear3(t, project3(r3.Vec{Z: 1}, z).point(p), r3.Vec{X: 1, Y: 2, Z: 1}, epsilon)

	if !reflect3(r3.Vec{}, z).reflects() {
		t.Error("reflection should reverse orientation")
	}
	if rotateAbout3(1, r3.Vec{}, z).reflects() {
		t.Error("rotation should preserve orientation")
	}
	if s := scaleAbout3(-2, r3.Vec{}).scale(); math.Abs(s-2) > epsilon {
		t.Errorf("got scale %g, expected 2", s)
	}
}

func TestAffine3Invert(t *testing.T) {
	a := rotateAbout3(0.7, r3.Vec{X: 1, Y: 2}, r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})).
		mul(scaleAbout3(3, r3.Vec{Z: -1})).
		mul(reflect3(r3.Vec{Y: 2}, r3.Vec{Y: 1}))
	aInv := a.invert()

	for _, p := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: -2, Z: 5}} {
		assertNear3(t, a.point(aInv.point(p)), p, epsilon)
		assertNear3(t, aInv.point(a.point(p)), p, epsilon)
		assertNear3(t, a.mul(aInv).point(p), p, epsilon)
	}
}
