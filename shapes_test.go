package geometry

import (
	"math"
	"testing"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type area = quantity.Quantity[quantity.SquaredUnits[m]]

func TestBoundingBox2d(t *testing.T) {
	a := BoundingBox2dFromExtrema[m, world](3, 0, 0, 2)
	diff(t, q(0), a.MinX())
	diff(t, q(3), a.MaxX())

	b := BoundingBox2dFrom(pt2(2, 1), pt2(5, 5))
	if !a.Intersects(b) {
		t.Error("boxes should intersect")
	}
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	diff(t, BoundingBox2dFrom(pt2(2, 1), pt2(3, 2)), got)
	diff(t, BoundingBox2dFrom(pt2(0, 0), pt2(5, 5)), a.Union(b))

	if _, ok := a.Intersection(BoundingBox2dFrom(pt2(10, 10), pt2(11, 11))); ok {
		t.Error("disjoint boxes should have no intersection")
	}
	if !a.Contains(pt2(3, 2)) {
		t.Error("containment should include the boundary")
	}
	if _, ok := BoundingBox2dHull[m, world](nil); ok {
		t.Error("the hull of no points should be absent")
	}

	w, h := a.Expand(1).Dimensions()
	diff(t, q(5), w)
	diff(t, q(4), h)
	w, h = a.Expand(-10).Dimensions()
	diff(t, q(0), w)
	diff(t, q(0), h)

	bounds := a.Bounds()
	diff(t, []float64{0, 0, 3, 2}, []float64{bounds.Min(0), bounds.Min(1), bounds.Max(0), bounds.Max(1)})
}

func TestTriangle2d(t *testing.T) {
	tri := Triangle2dFromVertices(pt2(0, 0), pt2(4, 0), pt2(0, 4))
	if !tri.Contains(tri.Centroid()) {
		t.Error("triangle should contain its centroid")
	}
	if tri.Contains(pt2(10, 10)) {
		t.Error("triangle should not contain (10, 10)")
	}
	if !tri.Contains(pt2(2, 2)) {
		t.Error("containment should include the boundary")
	}

	diff(t, area(8), tri.Area(), approx(epsilon))
	diff(t, area(8), tri.CounterclockwiseArea())
	p1, p2, p3 := tri.Vertices()
	diff(t, area(-8), Triangle2dFromVertices(p1, p3, p2).CounterclockwiseArea())
	diff(t, area(8), tri.MirrorAcross(XAxis2d[m, world]()).Area(), approx(epsilon))

	c, ok := tri.Circumcircle()
	if !ok {
		t.Fatal("expected a circumcircle")
	}
	near(t, pt2(2, 2), c.CenterPoint())
	assertNearQ(t, c.Radius(), q(math.Sqrt(8)), epsilon)

	if _, ok := Triangle2dFromVertices(pt2(0, 0), pt2(1, 1), pt2(2, 2)).Circumcircle(); ok {
		t.Error("degenerate triangle should have no circumcircle")
	}

	// The polygon's ring is closed.
	poly := tri.Polygon()
	diff(t, 4, poly.NumCoords())
	diff(t, 8.0, poly.Area())
}

func TestRectangle2d(t *testing.T) {
	r := Rectangle2dFromExtrema[m, world](1, 5, 2, 4)
	diff(t, area(8), r.Area())
	near(t, pt2(3, 3), r.CenterPoint())
	near(t, pt2(1, 2), r.Interpolate(0, 0))
	near(t, pt2(5, 4), r.Interpolate(1, 1))

	vs := r.Vertices()
	near(t, [4]Point2d[m, world]{pt2(1, 2), pt2(5, 2), pt2(5, 4), pt2(1, 4)}, vs)
	if !r.Contains(pt2(5, 4)) || r.Contains(pt2(0, 0)) {
		t.Error("wrong containment")
	}
	diff(t, 8.0, r.Polygon().Area(), approx(epsilon))

	rotated := r.RotateAround(r.CenterPoint(), angle.Degrees(90))
	near(t, BoundingBox2dFromExtrema[m, world](2, 4, 1, 5), rotated.BoundingBox())
	if !rotated.Contains(pt2(3, 4.5)) {
		t.Error("rotated rectangle should contain (3, 4.5)")
	}

	// Negative scales keep dimensions non-negative.
	w, h := r.ScaleAbout(pt2(0, 0), -2).Dimensions()
	diff(t, q(8), w)
	diff(t, q(4), h)

	axes := AtPoint2d[local](pt2(10, 10))
	withAxes := Rectangle2dWithAxes(axes, BoundingBox2dFrom(XY[m, local](0, 0), XY[m, local](2, 1)))
	near(t, pt2(11, 10.5), withAxes.CenterPoint())
	near(t, Rectangle2dCenteredOn(axes.MoveTo(pt2(11, 10.5)), 2, 1), withAxes)
}

func TestCircle2d(t *testing.T) {
	c := Circle2dWithRadius(pt2(1, 1), -2)
	diff(t, q(2), c.Radius())
	diff(t, q(4), c.Diameter())
	diff(t, area(4*math.Pi), c.Area(), approx(epsilon))
	diff(t, q(4*math.Pi), c.Circumference(), approx(epsilon))
	if !c.Contains(pt2(3, 1)) || c.Contains(pt2(3, 3)) {
		t.Error("wrong containment")
	}
	diff(t, BoundingBox2dFrom(pt2(-1, -1), pt2(3, 3)), c.BoundingBox())

	got, ok := Circle2dThroughPoints(pt2(1, 0), pt2(0, 1), pt2(-1, 0))
	if !ok {
		t.Fatal("expected a circle")
	}
	near(t, Circle2dWithRadius(pt2(0, 0), 1), got)

	arc := c.ToArc()
	near(t, arc.StartPoint(), arc.EndPoint())
	assertNearQ(t, arc.Length(), c.Circumference(), epsilon)
}

func TestEllipse2d(t *testing.T) {
	e := Ellipse2dWith(pt2(0, 0), Direction2dFromAngle[world](angle.Degrees(45)), 2, 1)
	diff(t, area(2*math.Pi), e.Area(), approx(epsilon))
	if !e.Contains(pt2(0.99*math.Sqrt2, 0.99*math.Sqrt2)) {
		t.Error("ellipse should contain points near the end of its major axis")
	}
	if e.Contains(pt2(1.5, -1.5)) {
		t.Error("ellipse should not contain points beyond its minor axis")
	}

	// The half extent of a rotated ellipse along X is sqrt(a²cos²θ + b²sin²θ).
	half := math.Sqrt(4*0.5 + 1*0.5)
	near(t, BoundingBox2dFromExtrema[m, world](q(-half), q(half), q(-half), q(half)), e.BoundingBox())

	// Ramanujan's approximation is exact enough for this eccentricity.
	a, b := 2.0, 1.0
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	want := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	assertNearQ(t, e.Circumference(), q(want), 1e-4)

	circle := Ellipse2dWith(pt2(0, 0), PositiveX2d[world](), 1, 1)
	assertNearQ(t, circle.Circumference(), q(2*math.Pi), 1e-9)

	mirrored := e.MirrorAcross(XAxis2d[m, world]())
	diff(t, e.Area(), mirrored.Area(), approx(epsilon))
	if Ellipse2dAxes[local](mirrored).IsRightHanded() {
		t.Error("mirroring should make the ellipse's axes left-handed")
	}
}

func TestPolyline2d(t *testing.T) {
	pl := Polyline2dFrom(pt2(0, 0), pt2(3, 0), pt2(3, 4))
	diff(t, q(7), pl.Length())
	diff(t, 2, len(pl.Segments()))

	bb, ok := pl.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, BoundingBox2dFrom(pt2(0, 0), pt2(3, 4)), bb)

	c, ok := pl.Centroid()
	if !ok {
		t.Fatal("expected a centroid")
	}
	near(t, pt2((3*1.5+4*3)/7, 4*2/7.0), c)

	near(t, pl, pl.Reverse().Reverse())
	diff(t, 3, pl.LineString().NumCoords())

	if _, ok := Polyline2dFrom[m, world]().BoundingBox(); ok {
		t.Error("an empty polyline should have no bounding box")
	}
	if _, ok := Polyline2dFrom(pt2(1, 1), pt2(1, 1)).Centroid(); ok {
		t.Error("a zero-length polyline should have no centroid")
	}
}

func TestCircle3d(t *testing.T) {
	c, ok := Circle3dThroughPoints(pt3(1, 0, 2), pt3(0, 1, 2), pt3(-1, 0, 2))
	if !ok {
		t.Fatal("expected a circle")
	}
	near(t, pt3(0, 0, 2), c.CenterPoint())
	assertNearQ(t, c.Radius(), 1, epsilon)
	near(t, BoundingBox3dFromExtrema[m, world](-1, 1, -1, 1, 2, 2), c.BoundingBox())

	arc := c.ToArc()
	near(t, arc.StartPoint(), arc.EndPoint())
	near(t, c.AxialDirection(), arc.AxialDirection())

	if _, ok := Circle3dThroughPoints(pt3(0, 0, 0), pt3(1, 1, 1), pt3(3, 3, 3)); ok {
		t.Error("collinear points should not define a circle")
	}

	// A circle in a tilted plane has a tight box whose extent along each
	// axis is r·sqrt(1 - n²).
	tilted := Circle3dWithRadius(NewAxis3d(pt3(0, 0, 0), mustDirection3d(0, 0, 1).RotateAround(PositiveX3d[world](), angle.Degrees(45))), 2)
	bb := tilted.BoundingBox()
	diff(t, q(2), bb.MaxX(), approx(epsilon))
	diff(t, q(math.Sqrt2), bb.MaxY(), approx(epsilon))
	diff(t, q(math.Sqrt2), bb.MaxZ(), approx(epsilon))

	sp := XYSketchPlane[m, world, local]()
	near(t, Circle3dWithRadius(ZAxis3d[m, world](), 3), sp.CircleOn(Circle2dWithRadius(XY[m, local](0, 0), 3)))

	// Transformations commute with the accessors.
	cone, _ := Cone3dFrom(pt3(0, 0, 0), pt3(0, 0, 3), 1)
	circle := cone.BaseCircle()
	planes := []Plane3d[m, world]{
		XYPlane[m, world]().Offset(5),
		YZPlane[m, world](),
		NewPlane3d(pt3(1, 2, 3), mustDirection3d(1, 1, 1)),
	}
	for _, pl := range planes {
		mirrored := circle.MirrorAcross(pl)
		near(t, circle.Axis().MirrorAcross(pl), mirrored.Axis())
		near(t, circle.Plane().MirrorAcross(pl), mirrored.Plane())
		near(t, cone.MirrorAcross(pl).BaseCircle(), mirrored)
	}
	near(t, circle.Axis().ScaleAbout(pt3(0, 0, 1), -2), circle.ScaleAbout(pt3(0, 0, 1), -2).Axis())
	near(t, cone.ScaleAbout(pt3(0, 0, 1), -2).BaseCircle(), circle.ScaleAbout(pt3(0, 0, 1), -2))
}

func TestTriangle3d(t *testing.T) {
	tri := Triangle3dFromVertices(pt3(0, 0, 0), pt3(2, 0, 0), pt3(0, 2, 0))
	diff(t, area(2), tri.Area(), approx(epsilon))
	n, ok := tri.Normal()
	if !ok {
		t.Fatal("expected a normal")
	}
	near(t, PositiveZ3d[world](), n)
	near(t, pt3(2.0/3, 2.0/3, 0), tri.Centroid())

	if _, ok := Triangle3dFromVertices(pt3(0, 0, 0), pt3(1, 1, 1), pt3(2, 2, 2)).Plane(); ok {
		t.Error("degenerate triangle should have no plane")
	}

	projected := Triangle3dFromVertices(pt3(0, 0, 1), pt3(2, 0, 5), pt3(0, 2, -3)).ProjectOnto(XYPlane[m, world]())
	near(t, tri, projected)

	sp := XYSketchPlane[m, world, local]()
	flat := sp.ProjectTriangle(tri)
	diff(t, tri.Area(), flat.Area(), approx(epsilon))
	near(t, tri, sp.TriangleOn(flat))
}

func TestRectangle3d(t *testing.T) {
	sp := SketchPlaneFromPlane[local](XYPlane[m, world]().Offset(1))
	r := Rectangle3dCenteredOn(sp, 4, -2)
	diff(t, area(8), r.Area())
	near(t, PositiveZ3d[world](), r.NormalDirection())
	bb := r.BoundingBox()
	diff(t, q(1), bb.MinZ(), approx(epsilon))
	diff(t, q(1), bb.MaxZ(), approx(epsilon))

	flat := Rectangle2dFromExtrema[m, local](-2, 2, -1, 1)
	near(t, r, sp.RectangleOn(flat))
	for i, v := range r.Vertices() {
		near(t, sp.PointOn(flat.Vertices()[i]), v)
	}
}

func TestCone3d(t *testing.T) {
	c, ok := Cone3dFrom(pt3(0, 0, 0), pt3(0, 0, 3), 1)
	if !ok {
		t.Fatal("expected a cone")
	}
	diff(t, quantity.Quantity[quantity.CubedUnits[m]](math.Pi), c.Volume(), approx(epsilon))
	near(t, pt3(0, 0, 3), c.TipPoint())
	if !c.Contains(pt3(0, 0, 1)) || !c.Contains(pt3(0.5, 0, 1.5)) {
		t.Error("cone should contain points on its axis and surface")
	}
	if c.Contains(pt3(0.9, 0, 1.5)) || c.Contains(pt3(0, 0, -0.1)) {
		t.Error("cone should not contain points outside it")
	}
	diff(t, BoundingBox3dFromExtrema[m, world](-1, 1, -1, 1, 0, 3), c.BoundingBox(), approx(epsilon))

	if _, ok := Cone3dFrom(pt3(1, 2, 3), pt3(1, 2, 3), 1); ok {
		t.Error("a cone with coincident base and tip should be absent")
	}

	flipped := Cone3dStartingAt(pt3(0, 0, 0), PositiveZ3d[world](), -1, -3)
	near(t, pt3(0, 0, -3), flipped.TipPoint())
	diff(t, q(1), flipped.Radius())

	mirrored := c.MirrorAcross(XYPlane[m, world]())
	near(t, pt3(0, 0, -3), mirrored.TipPoint())
	scaled := c.ScaleAbout(pt3(0, 0, 0), -2)
	assertNearQ(t, scaled.Radius(), 2, epsilon)
	assertNearQ(t, scaled.Length(), 6, epsilon)
	near(t, pt3(0, 0, -6), scaled.TipPoint())
}

func TestEllipsoid3d(t *testing.T) {
	e := Ellipsoid3dWithAxes(AtPoint3d[local](pt3(1, 1, 1)), 1, 2, -3)
	diff(t, quantity.Quantity[quantity.CubedUnits[m]](8*math.Pi), e.Volume(), approx(epsilon))
	diff(t, BoundingBox3dFromExtrema[m, world](0, 2, -1, 3, -2, 4), e.BoundingBox(), approx(epsilon))
	if !e.Contains(pt3(1, 1, 3.9)) || e.Contains(pt3(2, 2, 1)) {
		t.Error("wrong containment")
	}

	mirrored := e.MirrorAcross(YZPlane[m, world]())
	if !e.IsRightHanded() || mirrored.IsRightHanded() {
		t.Error("mirroring should flip the ellipsoid's handedness")
	}
	diff(t, e.Volume(), mirrored.Volume(), approx(epsilon))
}
