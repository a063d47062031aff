package geometry

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"honnef.co/go/geometry/angle"
)

func testFrame2d() Frame2d[m, world, local] {
	return Frame2dWithXDirection[local](pt2(2, -1), Direction2dFromAngle[world](angle.Degrees(30)))
}

func testFrame3d() Frame3d[m, world, local] {
	axis, _ := Axis3dThroughPoints(pt3(1, 2, 3), pt3(2, 4, 5))
	return Frame3dFromXAxis[local](axis)
}

func TestFrame2dRoundTrip(t *testing.T) {
	f := testFrame2d()
	mirrored := f.MirrorAcross(XAxis2d[m, world]())

	for _, f := range []Frame2d[m, world, local]{f, mirrored} {
		p := pt2(3, 4)
		near(t, p, f.PlacePoint(f.RelativePoint(p)))
		near(t, XY[m, local](3, 4), f.RelativePoint(f.PlacePoint(XY[m, local](3, 4))))

		v := Vec2[world](q(1), q(-2))
		near(t, v, f.PlaceVector(f.RelativeVector(v)))

		c := Circle2dWithRadius(pt2(1, 1), 2)
		near(t, c, f.PlaceCircle(f.RelativeCircle(c)))

		a := Arc2dSweptAround(pt2(0, 0), angle.Degrees(90), pt2(1, 0)).Curve()
		near(t, a, f.PlaceCurve(f.RelativeCurve(a)))

		e := Ellipse2dWith(pt2(1, 2), PositiveY2d[world](), 3, 1)
		near(t, e, f.PlaceEllipse(f.RelativeEllipse(e)))

		r := Rectangle2dFrom(pt2(0, 0), pt2(2, 1))
		near(t, r, f.PlaceRectangle(f.RelativeRectangle(r)))
	}
}

func TestFrame2dOriginAndAxes(t *testing.T) {
	f := testFrame2d()
	near(t, XY[m, local](0, 0), f.RelativePoint(f.OriginPoint()))
	near(t, PositiveX2d[local](), f.RelativeDirection(f.XDirection()))
	near(t, PositiveY2d[local](), f.RelativeDirection(f.YDirection()))
	if !f.IsRightHanded() {
		t.Error("frame built from an X direction should be right-handed")
	}
	if f.ReverseY().IsRightHanded() {
		t.Error("reversing one axis should make the frame left-handed")
	}
	if f.MirrorAcross(YAxis2d[m, world]()).IsRightHanded() {
		t.Error("mirroring should make the frame left-handed")
	}
}

func TestFrame2dNested(t *testing.T) {
	type inner struct{}
	f := testFrame2d()
	g := Frame2dWithXDirection[inner](XY[m, local](1, 1), PositiveY2d[local]())
	placed := PlaceFrame2d(f, g)
	p := XY[m, inner](2, 3)
	near(t, f.PlacePoint(g.PlacePoint(p)), placed.PlacePoint(p))
	near(t, g, RelativeFrame2d(f, placed))
}

func TestFrame3dRoundTrip(t *testing.T) {
	f := testFrame3d()
	frames := []Frame3d[m, world, local]{
		f,
		f.MirrorAcross(XYPlane[m, world]()),
		f.RotateAround(ZAxis3d[m, world](), angle.Degrees(45)),
	}
	for _, f := range frames {
		p := pt3(3, -4, 5)
		near(t, p, f.PlacePoint(f.RelativePoint(p)))

		v := Vec3[world](q(1), q(2), q(3))
		near(t, v, f.PlaceVector(f.RelativeVector(v)))

		c, _ := Cone3dFrom(pt3(0, 0, 0), pt3(0, 0, 3), 1)
		near(t, c, f.PlaceCone(f.RelativeCone(c)))

		e := Ellipsoid3dWithAxes(AtPoint3d[struct{}](pt3(1, 1, 1)), 1, 2, 3)
		near(t, e, f.PlaceEllipsoid(f.RelativeEllipsoid(e)))

		s := CircularSurface3d(Circle3dWithRadius(ZAxis3d[m, world](), 2))
		near(t, s, f.PlaceSurface(f.RelativeSurface(s)))
	}
}

func TestFrameMatrices(t *testing.T) {
	f := testFrame2d()
	for _, f := range []Frame2d[m, world, local]{f, f.MirrorAcross(XAxis2d[m, world]())} {
		a := f.Aff3()
		near(t, f.PlacePoint(XY[m, local](3, 4)), pt2(a[0]*3+a[1]*4+a[2], a[3]*3+a[4]*4+a[5]))

		v := Vec2[local](q(1), q(-2)).F64()
		near(t, f.PlaceVector(Vec2[local](q(1), q(-2))).F64(), f64.Vec2{
			a[0]*v[0] + a[1]*v[1],
			a[3]*v[0] + a[4]*v[1],
		})
	}

	f3 := testFrame3d()
	for _, f := range []Frame3d[m, world, local]{f3, f3.MirrorAcross(XYPlane[m, world]())} {
		a := f.Aff4()
		row := func(i int, v f64.Vec4) float64 {
			return a[4*i]*v[0] + a[4*i+1]*v[1] + a[4*i+2]*v[2] + a[4*i+3]*v[3]
		}

		// Homogeneous points pick up the translation scaled by their weight.
		p := XYZ[m, local](1, -2, 3)
		h := p.Homogeneous(2).F64()
		near(t, f.PlacePoint(p).Homogeneous(2).F64(), f64.Vec4{row(0, h), row(1, h), row(2, h), h[3]})

		v := Vec3[local](q(2), q(0), q(-1)).F64()
		near(t, f.PlaceVector(Vec3[local](q(2), q(0), q(-1))).F64(), f64.Vec3{
			row(0, f64.Vec4{v[0], v[1], v[2], 0}),
			row(1, f64.Vec4{v[0], v[1], v[2], 0}),
			row(2, f64.Vec4{v[0], v[1], v[2], 0}),
		})
	}
}

func TestFrame3dHandedness(t *testing.T) {
	f := testFrame3d()
	if !f.IsRightHanded() {
		t.Error("frame built from an X axis should be right-handed")
	}
	if f.ReverseZ().IsRightHanded() {
		t.Error("reversing one axis should make the frame left-handed")
	}
	if f.MirrorAcross(YZPlane[m, world]()).IsRightHanded() {
		t.Error("mirroring should make the frame left-handed")
	}
}

// Transforming in local coordinates and then placing gives the same result
// as placing first and transforming with placed arguments.
func TestTransformCommutesWithFrames(t *testing.T) {
	f := testFrame2d()
	p := XY[m, local](1, 2)
	v := Vec2[local](q(3), q(-1))
	center := XY[m, local](-1, 0)
	axis := XAxis2d[m, local]()

	near(t, f.PlacePoint(p.TranslateBy(v)), f.PlacePoint(p).TranslateBy(f.PlaceVector(v)))
	near(t,
		f.PlacePoint(p.RotateAround(center, angle.Degrees(40))),
		f.PlacePoint(p).RotateAround(f.PlacePoint(center), angle.Degrees(40)))
	near(t, f.PlacePoint(p.ScaleAbout(center, -2)), f.PlacePoint(p).ScaleAbout(f.PlacePoint(center), -2))
	near(t, f.PlacePoint(p.MirrorAcross(axis)), f.PlacePoint(p).MirrorAcross(f.PlaceAxis(axis)))

	f3 := testFrame3d()
	p3 := XYZ[m, local](1, 2, 3)
	axis3 := NewAxis3d(XYZ[m, local](0, 1, 0), PositiveZ3d[local]())
	plane := XYPlane[m, local]().Offset(2)
	arc := Arc3dSweptAround(axis3, angle.Degrees(120), p3).Curve()

	near(t,
		f3.PlaceCurve(arc.RotateAround(axis3, angle.Degrees(25))),
		f3.PlaceCurve(arc).RotateAround(f3.PlaceAxis(axis3), angle.Degrees(25)))
	near(t,
		f3.PlaceCurve(arc.MirrorAcross(plane)),
		f3.PlaceCurve(arc).MirrorAcross(f3.PlacePlane(plane)))
	near(t,
		f3.PlacePoint(p3.ScaleAbout(p3.Midpoint(XYZ[m, local](0, 0, 0)), 3)),
		f3.PlacePoint(p3).ScaleAbout(f3.PlacePoint(p3.Midpoint(XYZ[m, local](0, 0, 0))), 3))
}

func TestSketchPlane(t *testing.T) {
	sp, ok := SketchPlane3dThroughPoints[local](pt3(1, 0, 0), pt3(2, 0, 0), pt3(1, 5, 0))
	if !ok {
		t.Fatal("expected a sketch plane")
	}
	near(t, PositiveZ3d[world](), sp.NormalDirection())

	p := XY[m, local](3, 4)
	near(t, pt3(4, 4, 0), sp.PointOn(p))
	near(t, p, sp.ProjectPoint(sp.PointOn(p)))
	near(t, p, sp.ProjectPoint(sp.PointOn(p).TranslateBy(Vec3[world](q(0), q(0), q(7)))))

	if _, ok := SketchPlane3dThroughPoints[local](pt3(0, 0, 0), pt3(1, 1, 1), pt3(2, 2, 2)); ok {
		t.Error("collinear points should not define a sketch plane")
	}

	// Projecting a circular arc onto a tilted plane produces an elliptical
	// arc.
	tilted := SketchPlaneFromPlane[local](NewPlane3d(pt3(0, 0, 0), mustDirection3d(0, 1, 1)))
	arc := Arc3dSweptAround(ZAxis3d[m, world](), angle.Degrees(90), pt3(1, 0, 0)).Curve()
	projected := tilted.ProjectCurve(arc)
	if projected.Kind() != EllipticalArcKind {
		t.Fatalf("got %v, expected an elliptical arc", projected.Kind())
	}
	e, _ := projected.EllipticalArc()
	assertNearQ(t, e.XRadius(), 1, epsilon)
	assertNearQ(t, e.YRadius(), q(math.Sqrt(0.5)), epsilon)
}

func mustDirection3d(x, y, z float64) Direction3d[world] {
	d, ok := Direction3dXYZ[world](x, y, z)
	if !ok {
		panic("zero direction")
	}
	return d
}
