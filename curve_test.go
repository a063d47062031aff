package geometry

import (
	"math"
	"testing"

	"honnef.co/go/geometry/angle"
)

func TestNumSegments(t *testing.T) {
	tests := []struct {
		maxError, magnitude float64
		want                int
	}{
		{0, 8, 0},
		{-1, 8, 0},
		{math.NaN(), 8, 0},
		{0.01, 0, 1},
		{0.125, 100, 10},
		{0.125, 100.01, 11},
		// ceil(sqrt(8 / 1)) and ceil(sqrt(32 / 1)). The bound is
		// Δt² · magnitude / 8, so one segment only suffices up to a
		// magnitude of 8 · maxError.
		{0.125, 8, 3},
		{0.125, 32, 6},
		{0.125, 1, 1},
		{1, 0.5, 1},
		{1e-300, 1e300, math.MaxInt32},
	}
	for _, tt := range tests {
		if got := NumSegments(q(tt.maxError), q(tt.magnitude)); got != tt.want {
			t.Errorf("NumSegments(%g, %g) = %d, want %d", tt.maxError, tt.magnitude, got, tt.want)
		}
	}
}

func testCurves2d() []Curve2d[m, world] {
	return []Curve2d[m, world]{
		LineSegment2dFrom(pt2(0, 0), pt2(3, 4)).Curve(),
		Arc2dSweptAround(pt2(1, 1), angle.Degrees(135), pt2(3, 1)).Curve(),
		EllipticalArc2dWith(pt2(0, 0), Direction2dFromAngle[world](angle.Degrees(20)), 2, 1, angle.Degrees(10), angle.Degrees(-200)).Curve(),
		QuadraticSpline2dFrom(pt2(0, 0), pt2(1, 2), pt2(2, 0)).Curve(),
		CubicSpline2dFrom(pt2(0, 0), pt2(0, 1), pt2(1, 1), pt2(1, 0)).Curve(),
	}
}

func testCurves3d() []Curve3d[m, world] {
	axis := NewAxis3d(pt3(0, 0, 1), mustDirection3d(1, 1, 1))
	arc := Arc3dSweptAround(axis, angle.Degrees(-120), pt3(2, 0, 0))
	return []Curve3d[m, world]{
		LineSegment3dFrom(pt3(0, 0, 0), pt3(1, 2, 2)).Curve(),
		arc.Curve(),
		arc.ProjectOnto(XYPlane[m, world]()).Curve(),
		QuadraticSpline3dFrom(pt3(0, 0, 0), pt3(1, 2, 3), pt3(2, 0, 1)).Curve(),
		CubicSpline3dFrom(pt3(0, 0, 0), pt3(0, 1, 1), pt3(1, 1, 2), pt3(1, 0, 0)).Curve(),
	}
}

func TestCurveKinds(t *testing.T) {
	want := []CurveKind{LineSegmentKind, ArcKind, EllipticalArcKind, QuadraticSplineKind, CubicSplineKind}
	for i, c := range testCurves2d() {
		diff(t, want[i], c.Kind())
	}
	for i, c := range testCurves3d() {
		diff(t, want[i], c.Kind())
	}

	c := testCurves2d()[1]
	if _, ok := c.Arc(); !ok {
		t.Error("expected an arc")
	}
	if _, ok := c.LineSegment(); ok {
		t.Error("an arc is not a line segment")
	}
	diff(t, "Arc", c.Kind().String())
	diff(t, "CurveKind(0)", CurveKind(0).String())
}

func TestInvalidCurvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	var c Curve2d[m, world]
	c.PointOn(0.5)
}

func TestCurveReverse(t *testing.T) {
	for _, c := range testCurves2d() {
		r := c.Reverse()
		near(t, c.StartPoint(), r.EndPoint())
		near(t, c.EndPoint(), r.StartPoint())
		near(t, c.PointOn(0.3), r.PointOn(0.7))
		near(t, c.PointOn(0.3), c.Reverse().Reverse().PointOn(0.3))
		assertNearQ(t, r.Length(), c.Length(), 1e-6)
	}
	for _, c := range testCurves3d() {
		r := c.Reverse()
		near(t, c.StartPoint(), r.EndPoint())
		near(t, c.EndPoint(), r.StartPoint())
		near(t, c.PointOn(0.3), r.PointOn(0.7))
		near(t, c.PointOn(0.3), c.Reverse().Reverse().PointOn(0.3))
	}
}

func TestCurveApproximate(t *testing.T) {
	const maxError = 1e-3
	for _, c := range testCurves2d() {
		pl := c.Approximate(maxError)
		diff(t, NumSegments(maxError, c.MaxSecondDerivativeMagnitude())+1, pl.NumVertices())
		vs := pl.Vertices()
		near(t, c.StartPoint(), vs[0])
		near(t, c.EndPoint(), vs[len(vs)-1])

		// The polyline is never longer than the curve and close to it.
		if pl.Length() > c.Length()+epsilon {
			t.Errorf("%v: polyline is longer than the curve", c.Kind())
		}
		assertNearQ(t, pl.Length(), c.Length(), 0.01)

		bb := c.BoundingBox().Expand(epsilon)
		for _, v := range vs {
			if !bb.Contains(v) {
				t.Errorf("%v: vertex %v outside of bounding box", c.Kind(), v)
			}
		}

		diff(t, 0, c.Approximate(0).NumVertices())
		diff(t, 0, c.Segments(0).NumVertices())
		diff(t, 2, c.Segments(1).NumVertices())
	}
	for _, c := range testCurves3d() {
		pl := c.Approximate(maxError)
		diff(t, NumSegments(maxError, c.MaxSecondDerivativeMagnitude())+1, pl.NumVertices())
		diff(t, 0, c.Approximate(-1).NumVertices())
	}
}

func TestLineSegmentIntersection(t *testing.T) {
	a := LineSegment2dFrom(pt2(0, 0), pt2(2, 2))
	p, ok := a.Intersection(LineSegment2dFrom(pt2(0, 2), pt2(2, 0)))
	if !ok {
		t.Fatal("expected an intersection")
	}
	near(t, pt2(1, 1), p)

	if _, ok := a.Intersection(LineSegment2dFrom(pt2(1, 0), pt2(3, 2))); ok {
		t.Error("parallel segments should not intersect")
	}
	if _, ok := a.Intersection(LineSegment2dFrom(pt2(3, 0), pt2(3, 5))); ok {
		t.Error("segments that don't reach each other should not intersect")
	}
}

func TestArc2d(t *testing.T) {
	a, ok := Arc2dFrom(pt2(1, 0), pt2(0, 1), angle.Degrees(90))
	if !ok {
		t.Fatal("expected an arc")
	}
	near(t, pt2(0, 0), a.CenterPoint())
	assertNearQ(t, a.Radius(), 1, epsilon)
	assertNearQ(t, a.Length(), q(math.Pi/2), epsilon)
	near(t, BoundingBox2dFromExtrema[m, world](0, 1, 0, 1), a.BoundingBox())
	near(t, Vec2[world](q(0), q(math.Pi/2)), a.FirstDerivative(0))

	// Clockwise sweeps put the center on the other side of the chord.
	cw, _ := Arc2dFrom(pt2(1, 0), pt2(0, 1), angle.Degrees(-270))
	near(t, pt2(0, 0), cw.CenterPoint())
	near(t, pt2(0, 1), cw.EndPoint())

	for _, sweep := range []angle.Angle{0, angle.Degrees(360), angle.Degrees(-400)} {
		if _, ok := Arc2dFrom(pt2(1, 0), pt2(0, 1), sweep); ok {
			t.Errorf("sweep %v should not produce an arc", sweep)
		}
	}
	if _, ok := Arc2dFrom(pt2(1, 0), pt2(1, 0), angle.Degrees(90)); ok {
		t.Error("coincident endpoints should not produce an arc")
	}

	semi, ok := Arc2dThroughPoints(pt2(1, 0), pt2(0, 1), pt2(-1, 0))
	if !ok {
		t.Fatal("expected an arc")
	}
	diff(t, angle.Degrees(180), semi.SweptAngle(), approx(epsilon))
	near(t, BoundingBox2dFromExtrema[m, world](-1, 1, 0, 1), semi.BoundingBox())

	cwSemi, _ := Arc2dThroughPoints(pt2(-1, 0), pt2(0, 1), pt2(1, 0))
	diff(t, angle.Degrees(-180), cwSemi.SweptAngle(), approx(epsilon))

	if _, ok := Arc2dThroughPoints(pt2(0, 0), pt2(1, 1), pt2(2, 2)); ok {
		t.Error("collinear points should not produce an arc")
	}

	// Mirroring reverses the sweep.
	mirrored := a.MirrorAcross(XAxis2d[m, world]())
	diff(t, angle.Degrees(-90), mirrored.SweptAngle(), approx(epsilon))
	near(t, pt2(0, -1), mirrored.EndPoint())
}

func TestEllipticalArc2d(t *testing.T) {
	quarter := EllipticalArc2dWith(pt2(0, 0), PositiveX2d[world](), 2, 1, 0, angle.Degrees(90))
	full := Ellipse2dWith(pt2(0, 0), PositiveX2d[world](), 2, 1)
	assertNearQ(t, 4*quarter.Length(), full.Circumference(), 1e-5)
	near(t, pt2(2, 0), quarter.StartPoint())
	near(t, pt2(0, 1), quarter.EndPoint())
	near(t, BoundingBox2dFromExtrema[m, world](0, 2, 0, 1), quarter.BoundingBox())

	arc := Arc2dSweptAround(pt2(1, 1), angle.Degrees(60), pt2(2, 1))
	e := arc.ToEllipticalArc()
	for _, tt := range []float64{0, 0.25, 1} {
		near(t, arc.PointOn(tt), e.PointOn(tt))
	}
}

func TestSplines(t *testing.T) {
	bad := CubicSpline2dFrom(pt2(0, 0), pt2(1, math.NaN()), pt2(2, 0), pt2(math.Inf(1), 0))
	if !bad.IsNaN() || !bad.IsInf() {
		t.Error("expected NaN and infinite control points to be detected")
	}
	if good := CubicSpline2dFrom(pt2(0, 0), pt2(1, 2), pt2(2, 2), pt2(3, 0)); good.IsNaN() || good.IsInf() {
		t.Error("finite control points reported as NaN or infinite")
	}

	quad := QuadraticSpline2dFrom(pt2(0, 0), pt2(1, 2), pt2(2, 0))
	diff(t, []float64{0.5}, quad.Extrema())
	near(t, BoundingBox2dFromExtrema[m, world](0, 2, 0, 1), quad.BoundingBox())
	diff(t, q(8), quad.MaxSecondDerivativeMagnitude())
	assertNearQ(t, quad.Length(), quad.Curve().Approximate(1e-7).Length(), 1e-5)

	cubic := quad.ToCubic()
	for _, tt := range []float64{0, 0.2, 0.5, 0.9} {
		near(t, quad.PointOn(tt), cubic.PointOn(tt))
	}
	assertNearQ(t, cubic.Length(), quad.Length(), 1e-5)

	c := CubicSpline2dFrom(pt2(0, 0), pt2(0, 1), pt2(1, 1), pt2(1, 0))
	near(t, BoundingBox2dFromExtrema[m, world](0, 1, 0, 0.75), c.BoundingBox())
	left, right := c.Subdivide()
	near(t, c.PointOn(0.5), left.EndPoint())
	near(t, c.PointOn(0.5), right.StartPoint())
	near(t, c.PointOn(0.25), left.PointOn(0.5))
	near(t, c.PointOn(0.75), right.PointOn(0.5))
	assertNearQ(t, left.Length()+right.Length(), c.Length(), 1e-5)

	ql, qr := quad.Subdivide()
	near(t, quad.PointOn(0.25), ql.PointOn(0.5))
	near(t, quad.PointOn(0.75), qr.PointOn(0.5))
}

func TestCurve3d(t *testing.T) {
	arc := Arc3dSweptAround(ZAxis3d[m, world](), angle.Degrees(90), pt3(1, 0, 2))
	near(t, pt3(0, 1, 2), arc.EndPoint())
	near(t, PositiveZ3d[world](), arc.AxialDirection())
	near(t, BoundingBox3dFromExtrema[m, world](0, 1, 0, 1, 2, 2), arc.BoundingBox())
	assertNearQ(t, arc.Length(), q(math.Pi/2), epsilon)

	through, ok := Arc3dThroughPoints(pt3(1, 0, 2), pt3(0, 1, 2), pt3(-1, 0, 2))
	if !ok {
		t.Fatal("expected an arc")
	}
	near(t, pt3(0, 0, 2), through.CenterPoint())
	near(t, pt3(0, 1, 2), through.PointOn(0.5))
	near(t, pt3(-1, 0, 2), through.EndPoint())

	flat := LineSegment3dFrom(pt3(0, 0, 1), pt3(1, 2, 3)).Curve().ProjectOnto(XYPlane[m, world]())
	near(t, pt3(0, 0, 0), flat.StartPoint())
	near(t, pt3(1, 2, 0), flat.EndPoint())

	// A circular arc projected onto a plane parallel to it keeps its shape.
	projected := arc.Curve().ProjectOnto(XYPlane[m, world]())
	diff(t, EllipticalArcKind, projected.Kind())
	for _, tt := range []float64{0, 0.4, 1} {
		near(t, arc.PointOn(tt).ProjectOnto(XYPlane[m, world]()), projected.PointOn(tt))
	}
	assertNearQ(t, projected.Length(), arc.Length(), 1e-6)

	// Curves survive a round trip through a tilted sketch plane.
	sp := SketchPlaneFromPlane[local](NewPlane3d(pt3(1, 2, 3), mustDirection3d(1, -1, 2)))
	f := Frame2dWithXDirection[local](pt2(0, 0), PositiveX2d[world]())
	for _, c := range testCurves2d() {
		c := f.RelativeCurve(c)
		placed := sp.CurveOn(c)
		diff(t, c.Kind(), placed.Kind())
		for _, tt := range []float64{0, 0.6, 1} {
			near(t, sp.PointOn(c.PointOn(tt)), placed.PointOn(tt))
			near(t, c.PointOn(tt), sp.ProjectCurve(placed).PointOn(tt))
		}
	}
}
