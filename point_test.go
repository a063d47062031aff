package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

func TestPointDistances(t *testing.T) {
	p := pt2(1, 1)
	o := pt2(4, 5)
	diff(t, q(5), p.Distance(o))
	diff(t, quantity.Quantity[quantity.SquaredUnits[m]](25), p.DistanceSquared(o))
	near(t, pt2(2.5, 3), p.Midpoint(o))
	// Interpolation is not clamped.
	near(t, pt2(7, 9), p.Interpolate(o, 2))
	near(t, pt2(-2, -3), p.Interpolate(o, -1))

	axis := XAxis2d[m, world]()
	diff(t, q(4), o.DistanceAlong(axis))
	diff(t, q(5), o.SignedDistanceFrom(axis))
	diff(t, q(-5), o.MirrorAcross(axis).SignedDistanceFrom(axis), approx(epsilon))

	p3 := pt3(1, 2, 3)
	diff(t, q(3), p3.SignedDistanceFrom(XYPlane[m, world]()))
	diff(t, q(math.Sqrt(5)), p3.DistanceFromAxis(ZAxis3d[m, world]()), approx(epsilon))
	diff(t, q(3), p3.DistanceAlong(ZAxis3d[m, world]()))
}

func TestAbsentValues(t *testing.T) {
	p := pt2(1, 2)
	if _, ok := Axis2dThroughPoints(p, p); ok {
		t.Error("an axis through coincident points should be absent")
	}
	if _, ok := Axis3dThroughPoints(pt3(1, 2, 3), pt3(1, 2, 3)); ok {
		t.Error("an axis through coincident points should be absent")
	}
	if _, ok := Centroid2d[m, world](nil); ok {
		t.Error("the centroid of no points should be absent")
	}
	if _, ok := Circumcenter(pt2(0, 0), pt2(1, 1), pt2(2, 2)); ok {
		t.Error("the circumcenter of collinear points should be absent")
	}
	if _, ok := ZeroVector2d[m, world]().Direction(); ok {
		t.Error("the direction of a zero vector should be absent")
	}
	if _, ok := Plane3dThroughPoints(pt3(0, 0, 0), pt3(1, 0, 0), pt3(2, 0, 0)); ok {
		t.Error("a plane through collinear points should be absent")
	}
	if _, ok := Point4dXYZW[m, world](1, 2, 3, 0).Project(); ok {
		t.Error("projecting a point at infinity should be absent")
	}
}

func TestCollinearPoints3d(t *testing.T) {
	tests := [][3]Point3d[m, world]{
		{pt3(0, 0, 0), pt3(1, 1, 1), pt3(2, 2, 2)},
		{pt3(0, 0, 0), pt3(1, 1, 1), pt3(3, 3, 3)},
		// Not exactly representable, so the cross product is rounding noise.
		{pt3(0.1, 0.2, 0.3), pt3(0.7, 1.4, 2.1), pt3(1.3, 2.6, 3.9)},
		{pt3(1, 2, 3), pt3(1, 2, 3), pt3(4, 5, 6)},
	}
	for _, tt := range tests {
		p1, p2, p3 := tt[0], tt[1], tt[2]
		if _, ok := Plane3dThroughPoints(p1, p2, p3); ok {
			t.Errorf("Plane3dThroughPoints(%v, %v, %v) should be absent", p1, p2, p3)
		}
		if _, ok := SketchPlane3dThroughPoints[local](p1, p2, p3); ok {
			t.Errorf("SketchPlane3dThroughPoints(%v, %v, %v) should be absent", p1, p2, p3)
		}
		if _, ok := Circle3dThroughPoints(p1, p2, p3); ok {
			t.Errorf("Circle3dThroughPoints(%v, %v, %v) should be absent", p1, p2, p3)
		}
		if _, ok := Arc3dThroughPoints(p1, p2, p3); ok {
			t.Errorf("Arc3dThroughPoints(%v, %v, %v) should be absent", p1, p2, p3)
		}
		if _, ok := Triangle3dFromVertices(p1, p2, p3).Normal(); ok {
			t.Errorf("triangle (%v, %v, %v) should have no normal", p1, p2, p3)
		}
		if _, ok := TriangularSurface3d(Triangle3dFromVertices(p1, p2, p3)).Normal(); ok {
			t.Errorf("triangular surface (%v, %v, %v) should have no normal", p1, p2, p3)
		}
	}

	// Thin but valid triangles are not collinear.
	sp, ok := SketchPlane3dThroughPoints[local](pt3(0, 0, 0), pt3(1, 0, 0), pt3(0.5, 1e-6, 0))
	if !ok {
		t.Fatal("expected a sketch plane")
	}
	near(t, PositiveY3d[world](), sp.YDirection())
	near(t, PositiveZ3d[world](), sp.NormalDirection())
}

func TestCircumcenter(t *testing.T) {
	c, ok := Circumcenter(pt2(0, 0), pt2(4, 0), pt2(0, 4))
	if !ok {
		t.Fatal("expected a circumcenter")
	}
	near(t, pt2(2, 2), c)
}

func TestCentroid(t *testing.T) {
	c, ok := Centroid2d([]Point2d[m, world]{pt2(0, 0), pt2(4, 0), pt2(0, 4)})
	if !ok {
		t.Fatal("expected a centroid")
	}
	near(t, pt2(4.0/3, 4.0/3), c)
}

func TestVectorAlgebra(t *testing.T) {
	v := Vec2[world](q(3), q(4))
	diff(t, q(5), v.Length())
	diff(t, quantity.Quantity[quantity.SquaredUnits[m]](25), v.LengthSquared())
	diff(t, quantity.Quantity[quantity.SquaredUnits[m]](-3), v.Cross(Vec2[world](q(0), q(-1))), approx(epsilon))
	d, _ := v.Direction()
	want, _ := Direction2dXY[world](0.6, 0.8)
	near(t, want, d)
	near(t, Vec2[world](q(-4), q(3)), v.Perpendicular())
	diff(t, q(4), v.ComponentIn(PositiveY2d[world]()))
	near(t, Vec2[world](q(0), q(4)), v.ProjectionIn(PositiveY2d[world]()))

	w := Cross3d(Vec3[world](q(1), q(0), q(0)), Vec3[world](q(0), q(1), q(0)))
	near(t, Vec3[world](quantity.Quantity[quantity.SquaredUnits[m]](0), 0, 1), w)
}

func TestDirections(t *testing.T) {
	d := Direction2dFromAngle[world](angle.Degrees(30))
	near(t, d, d.Reverse().Reverse())
	diff(t, angle.Degrees(30), d.ToAngle(), approx(epsilon))
	diff(t, angle.Degrees(60), PositiveY2d[world]().AngleFrom(d), approx(epsilon))
	near(t, Direction2dFromAngle[world](angle.Degrees(120)), d.Perpendicular())
	near(t, Direction2dFromAngle[world](angle.Degrees(75)), d.RotateBy(angle.Degrees(45)))

	z := PositiveZ3d[world]()
	x, y := z.PerpendicularBasis()
	diff(t, 0.0, x.ComponentIn(z), approx(epsilon))
	diff(t, 0.0, y.ComponentIn(z), approx(epsilon))
	near(t, z.R3(), r3.Cross(x.R3(), y.R3()))
}

func TestScaleReversesDirections(t *testing.T) {
	a := NewAxis2d(pt2(1, 0), PositiveX2d[world]())
	got := a.ScaleAbout(pt2(0, 0), -2)
	near(t, NewAxis2d(pt2(-2, 0), NegativeX2d[world]()), got)
}

func TestPoint4d(t *testing.T) {
	p := pt3(1, 2, 3).Homogeneous(2)
	near(t, Point4dXYZW[m, world](2, 4, 6, 2), p)
	got, ok := p.Project()
	if !ok {
		t.Fatal("expected a projected point")
	}
	near(t, pt3(1, 2, 3), got)

	v := Vector4dXYZW[m, world](1, 2, 2, 4)
	diff(t, q(5), v.Length())
	diff(t, q(0), p.Distance(p.TranslateBy(Vector4dXYZW[m, world](0, 0, 0, 0))))
}
