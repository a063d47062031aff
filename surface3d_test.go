package geometry

import (
	"math"
	"testing"

	"honnef.co/go/geometry/angle"
)

func TestFlatSurfaces(t *testing.T) {
	tri := TriangularSurface3d(Triangle3dFromVertices(pt3(0, 0, 0), pt3(2, 0, 0), pt3(0, 2, 0)))
	diff(t, TriangularSurfaceKind, tri.Kind())
	diff(t, area(2), tri.Area(0), approx(epsilon))
	n, ok := tri.Normal()
	if !ok {
		t.Fatal("expected a normal")
	}
	near(t, PositiveZ3d[world](), n)
	near(t, BoundingBox3dFromExtrema[m, world](0, 2, 0, 2, 0, 0), tri.BoundingBox(0))

	degenerate := TriangularSurface3d(Triangle3dFromVertices(pt3(0, 0, 0), pt3(1, 1, 1), pt3(2, 2, 2)))
	if _, ok := degenerate.Normal(); ok {
		t.Error("a degenerate triangle should have no normal")
	}

	sp := XYSketchPlane[m, world, local]().Offset(1)
	rect := RectangularSurface3d(Rectangle3dCenteredOn(sp, 4, 2))
	diff(t, area(8), rect.Area(0))
	near(t, BoundingBox3dFromExtrema[m, world](-2, 2, -1, 1, 1, 1), rect.BoundingBox(0))
	r, ok := rect.Rectangle()
	if !ok {
		t.Fatal("expected a rectangle")
	}
	near(t, Rectangle3dCenteredOn(sp, 4, 2), r)
	if _, ok := rect.Triangle(); ok {
		t.Error("a rectangular surface is not a triangle")
	}

	circle := Circle3dWithRadius(NewAxis3d(pt3(1, 1, 1), PositiveY3d[world]()), 2)
	disk := CircularSurface3d(circle)
	diff(t, area(4*math.Pi), disk.Area(0), approx(epsilon))
	n, _ = disk.Normal()
	near(t, PositiveY3d[world](), n)
	near(t, BoundingBox3dFromExtrema[m, world](-1, 3, 1, 1, -1, 3), disk.BoundingBox(0))
	c, ok := disk.Circle()
	if !ok {
		t.Fatal("expected a circle")
	}
	near(t, circle, c)

	ellipse := EllipticalSurface3d(sp, Ellipse2dWith(XY[m, local](0, 0), Direction2dFromAngle[local](angle.Degrees(90)), 2, 1))
	diff(t, area(2*math.Pi), ellipse.Area(0), approx(epsilon))
	near(t, BoundingBox3dFromExtrema[m, world](-1, 1, -2, 2, 1, 1), ellipse.BoundingBox(0))
	n, _ = ellipse.Normal()
	near(t, PositiveZ3d[world](), n)
}

func TestPlanarSurface(t *testing.T) {
	sp := XYSketchPlane[m, world, local]().Offset(1)
	// The boundary runs clockwise.
	boundary := Polyline2dFrom(XY[m, local](0, 0), XY[m, local](0, 2), XY[m, local](2, 2), XY[m, local](2, 0))
	s := PlanarSurface3d(sp, boundary)
	diff(t, area(4), s.Area(0), approx(epsilon))
	n, _ := s.Normal()
	near(t, PositiveZ3d[world](), n)
	near(t, BoundingBox3dFromExtrema[m, world](0, 2, 0, 2, 1, 1), s.BoundingBox(0))

	closed := PlanarSurface3d(sp, Polyline2dFrom(append(boundary.Vertices(), XY[m, local](0, 0))...))
	diff(t, area(4), closed.Area(0), approx(epsilon))

	scaled := s.ScaleAbout(pt3(0, 0, 0), 2)
	diff(t, area(16), scaled.Area(0), approx(epsilon))
	near(t, BoundingBox3dFromExtrema[m, world](0, 4, 0, 4, 2, 2), scaled.BoundingBox(0))

	line := PlanarSurface3d(sp, Polyline2dFrom(XY[m, local](0, 0), XY[m, local](1, 1)))
	diff(t, area(0), line.Area(0))
}

func TestCurvedSurfaces(t *testing.T) {
	// A cylinder of radius 2 and height 3.
	profile := Circle3dWithRadius(ZAxis3d[m, world](), 2).ToArc().Curve()
	cylinder := ExtrusionSurface3d(profile, Vec3[world](q(0), q(0), q(3)))
	diff(t, ExtrusionSurfaceKind, cylinder.Kind())
	assertNearQ(t, cylinder.Area(DefaultTolerance), area(12*math.Pi), 1e-5)
	near(t, BoundingBox3dFromExtrema[m, world](-2, 2, -2, 2, 0, 3), cylinder.BoundingBox(DefaultTolerance))
	if _, ok := cylinder.Normal(); ok {
		t.Error("curved surfaces have no single normal")
	}
	v, ok := cylinder.ExtrusionVector()
	if !ok {
		t.Fatal("expected an extrusion vector")
	}
	near(t, Vec3[world](q(0), q(0), q(3)), v)

	// A unit sphere.
	semicircle, ok := Arc3dThroughPoints(pt3(0, 0, 1), pt3(1, 0, 0), pt3(0, 0, -1))
	if !ok {
		t.Fatal("expected an arc")
	}
	sphere := RevolutionSurface3d(semicircle.Curve(), ZAxis3d[m, world](), angle.Degrees(360))
	assertNearQ(t, sphere.Area(1e-9), area(4*math.Pi), 1e-5)
	// Zero tolerances fall back to the default.
	assertNearQ(t, sphere.Area(0), area(4*math.Pi), 1e-5)
	near(t, BoundingBox3dFromExtrema[m, world](-1, 1, -1, 1, -1, 1), sphere.BoundingBox(1e-3))

	axis, sweep, ok := sphere.RevolutionAxis()
	if !ok {
		t.Fatal("expected a revolution axis")
	}
	near(t, ZAxis3d[m, world](), axis)
	diff(t, angle.Degrees(360), sweep, approx(epsilon))
	if _, _, ok := cylinder.RevolutionAxis(); ok {
		t.Error("an extrusion has no revolution axis")
	}

	// A quarter of a cylinder of radius 1 and height 2.
	wall := LineSegment3dFrom(pt3(1, 0, 0), pt3(1, 0, 2)).Curve()
	quarter := RevolutionSurface3d(wall, ZAxis3d[m, world](), angle.Degrees(90))
	assertNearQ(t, quarter.Area(0), area(math.Pi), 1e-9)
	near(t, BoundingBox3dFromExtrema[m, world](0, 1, 0, 1, 0, 2), quarter.BoundingBox(DefaultTolerance))

	mirrored := quarter.MirrorAcross(ZXPlane[m, world]())
	diff(t, LeftHanded, mirrored.Handedness())
	_, sweep, _ = mirrored.RevolutionAxis()
	diff(t, angle.Degrees(-90), sweep, approx(epsilon))
	near(t, BoundingBox3dFromExtrema[m, world](0, 1, -1, 0, 0, 2), mirrored.BoundingBox(DefaultTolerance))
	assertNearQ(t, mirrored.Area(0), area(math.Pi), 1e-9)
}

func TestSurfaceHandedness(t *testing.T) {
	tri := TriangularSurface3d(Triangle3dFromVertices(pt3(0, 0, 0), pt3(2, 0, 0), pt3(0, 2, 0)))
	diff(t, RightHanded, tri.Handedness())

	flipped := tri.Flip()
	diff(t, LeftHanded, flipped.Handedness())
	n, _ := flipped.Normal()
	near(t, NegativeZ3d[world](), n)
	diff(t, RightHanded, flipped.Flip().Handedness())

	// The normal of a mirrored surface is the mirror image of the original
	// normal.
	rect := RectangularSurface3d(Rectangle3dCenteredOn(XYSketchPlane[m, world, local](), 4, 2))
	mirrored := rect.MirrorAcross(XYPlane[m, world]())
	diff(t, LeftHanded, mirrored.Handedness())
	n, _ = mirrored.Normal()
	near(t, NegativeZ3d[world](), n)

	normal := mustDirection3d(1, 0, 1)
	tilted := NewPlane3d(pt3(0, 0, 0), normal)
	disk := CircularSurface3d(Circle3dWithRadius(ZAxis3d[m, world](), 1))
	n0, _ := disk.Normal()
	n1, _ := disk.MirrorAcross(tilted).Normal()
	near(t, n0.MirrorAcross(normal), n1)

	// Rotations keep the handedness.
	diff(t, RightHanded, rect.RotateAround(XAxis3d[m, world](), angle.Degrees(180)).Handedness())
	diff(t, "LeftHanded", LeftHanded.String())
	diff(t, "RevolutionSurface", RevolutionSurfaceKind.String())
}

func TestSurfaceFrames(t *testing.T) {
	semicircle, _ := Arc3dThroughPoints(pt3(0, 0, 1), pt3(1, 0, 0), pt3(0, 0, -1))
	surfaces := []Surface3d[m, world]{
		TriangularSurface3d(Triangle3dFromVertices(pt3(0, 0, 0), pt3(2, 0, 0), pt3(0, 2, 0))),
		PlanarSurface3d(XYSketchPlane[m, world, local](), Polyline2dFrom(XY[m, local](0, 0), XY[m, local](1, 0), XY[m, local](0, 1))),
		ExtrusionSurface3d(semicircle.Curve(), Vec3[world](q(1), q(2), q(3))),
		RevolutionSurface3d(semicircle.Curve(), ZAxis3d[m, world](), angle.Degrees(90)),
	}
	f := testFrame3d()
	for _, f := range []Frame3d[m, world, local]{f, f.MirrorAcross(XYPlane[m, world]())} {
		for _, s := range surfaces {
			near(t, s, f.PlaceSurface(f.RelativeSurface(s)))
			assertNearQ(t, f.RelativeSurface(s).Area(0), s.Area(0), 1e-6)
		}
	}
}

func TestInvalidSurfacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	var s Surface3d[m, world]
	s.Area(0)
}
