package geometry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type Polyline3d[U, C any] struct {
	vertices []r3.Vec
}

func Polyline3dFrom[U, C any](vertices ...Point3d[U, C]) Polyline3d[U, C] {
	return Polyline3d[U, C]{pointsR3(vertices)}
}

func (pl Polyline3d[U, C]) Vertices() []Point3d[U, C] {
	return lo.Map(pl.vertices, func(v r3.Vec, _ int) Point3d[U, C] { return Point3d[U, C]{v} })
}

func (pl Polyline3d[U, C]) NumVertices() int { return len(pl.vertices) }

func (pl Polyline3d[U, C]) Segments() []LineSegment3d[U, C] {
	if len(pl.vertices) < 2 {
		return nil
	}
	out := make([]LineSegment3d[U, C], len(pl.vertices)-1)
	for i := range out {
		out[i] = LineSegment3d[U, C]{pl.vertices[i], pl.vertices[i+1]}
	}
	return out
}

func (pl Polyline3d[U, C]) Length() quantity.Quantity[U] {
	return lo.SumBy(pl.Segments(), LineSegment3d[U, C].Length)
}

func (pl Polyline3d[U, C]) BoundingBox() (BoundingBox3d[U, C], bool) {
	if len(pl.vertices) == 0 {
		return BoundingBox3d[U, C]{}, false
	}
	return BoundingBox3d[U, C]{hull3(pl.vertices[0], pl.vertices[1:]...)}, true
}

// Centroid returns the length-weighted centroid of the segments. It returns
// false if the polyline is empty or has zero length.
func (pl Polyline3d[U, C]) Centroid() (Point3d[U, C], bool) {
	var sum r3.Vec
	var total float64
	for _, s := range pl.Segments() {
		l := float64(s.Length())
		sum = r3.Add(sum, r3.Scale(l, lerp3(s.p0, s.p1, 0.5)))
		total += l
	}
	if total == 0 {
		return Point3d[U, C]{}, false
	}
	return Point3d[U, C]{r3.Scale(1/total, sum)}, true
}

func (pl Polyline3d[U, C]) Reverse() Polyline3d[U, C] {
	vs := slices.Clone(pl.vertices)
	slices.Reverse(vs)
	return Polyline3d[U, C]{vs}
}

// LineString returns the polyline as an XYZ line string.
func (pl Polyline3d[U, C]) LineString() *geom.LineString {
	flat := make([]float64, 0, 3*len(pl.vertices))
	for _, v := range pl.vertices {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	return geom.NewLineStringFlat(geom.XYZ, flat)
}

func (pl Polyline3d[U, C]) String() string {
	parts := lo.Map(pl.vertices, func(v r3.Vec, _ int) string { return Point3d[U, C]{v}.String() })
	return fmt.Sprintf("Polyline3d[%s]", strings.Join(parts, ", "))
}

func (pl Polyline3d[U, C]) IsNaN() bool {
	return slices.ContainsFunc(pl.vertices, isNaN3)
}

func (pl Polyline3d[U, C]) TranslateBy(v Vector3d[U, C]) Polyline3d[U, C] {
	return pl.transform(translate3(v.v))
}

func (pl Polyline3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Polyline3d[U, C] {
	return pl.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (pl Polyline3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Polyline3d[U, C] {
	return pl.transform(scaleAbout3(scale, center.p))
}

func (pl Polyline3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Polyline3d[U, C] {
	return pl.transform(reflect3(plane.origin, plane.normal))
}

func (pl Polyline3d[U, C]) ProjectOnto(plane Plane3d[U, C]) Polyline3d[U, C] {
	return pl.transform(project3(plane.origin, plane.normal))
}

func (pl Polyline3d[U, C]) transform(aff affine3) Polyline3d[U, C] {
	if pl.vertices == nil {
		return pl
	}
	return Polyline3d[U, C]{aff.points(pl.vertices)}
}

func (f Frame3d[U, G, L]) RelativePolyline(pl Polyline3d[U, G]) Polyline3d[U, L] {
	return Polyline3d[U, L](pl.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlacePolyline(pl Polyline3d[U, L]) Polyline3d[U, G] {
	return Polyline3d[U, G](pl.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) PolylineOn(pl Polyline2d[U, L]) Polyline3d[U, G] {
	return Polyline3d[U, G]{lo.Map(pl.vertices, func(v r2.Vec, _ int) r3.Vec { return sp.liftPoint(v) })}
}

// ProjectPolyline projects pl orthogonally into the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectPolyline(pl Polyline3d[U, G]) Polyline2d[U, L] {
	return Polyline2d[U, L]{lo.Map(pl.vertices, func(v r3.Vec, _ int) r2.Vec { return sp.projectPoint(v) })}
}
