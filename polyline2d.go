package geometry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Polyline2d is an ordered sequence of vertices joined by straight segments.
// A polyline may be empty or consist of a single vertex.
type Polyline2d[U, C any] struct {
	vertices []r2.Vec
}

func Polyline2dFrom[U, C any](vertices ...Point2d[U, C]) Polyline2d[U, C] {
	return Polyline2d[U, C]{pointsR2(vertices)}
}

// Vertices returns a copy of the polyline's vertices.
func (pl Polyline2d[U, C]) Vertices() []Point2d[U, C] {
	return lo.Map(pl.vertices, func(v r2.Vec, _ int) Point2d[U, C] { return Point2d[U, C]{v} })
}

func (pl Polyline2d[U, C]) NumVertices() int { return len(pl.vertices) }

// Segments returns the segments between consecutive vertices. Polylines with
// fewer than two vertices have no segments.
func (pl Polyline2d[U, C]) Segments() []LineSegment2d[U, C] {
	if len(pl.vertices) < 2 {
		return nil
	}
	out := make([]LineSegment2d[U, C], len(pl.vertices)-1)
	for i := range out {
		out[i] = LineSegment2d[U, C]{pl.vertices[i], pl.vertices[i+1]}
	}
	return out
}

func (pl Polyline2d[U, C]) Length() quantity.Quantity[U] {
	return lo.SumBy(pl.Segments(), LineSegment2d[U, C].Length)
}

// BoundingBox returns false if the polyline is empty.
func (pl Polyline2d[U, C]) BoundingBox() (BoundingBox2d[U, C], bool) {
	if len(pl.vertices) == 0 {
		return BoundingBox2d[U, C]{}, false
	}
	return BoundingBox2d[U, C]{hull2(pl.vertices[0], pl.vertices[1:]...)}, true
}

// Centroid returns the centroid of the polyline's segments, weighted by
// length. It returns false if the polyline is empty or has zero length.
func (pl Polyline2d[U, C]) Centroid() (Point2d[U, C], bool) {
	var sum r2.Vec
	var total float64
	for _, s := range pl.Segments() {
		l := float64(s.Length())
		sum = r2.Add(sum, r2.Scale(l, lerp2(s.p0, s.p1, 0.5)))
		total += l
	}
	if total == 0 {
		return Point2d[U, C]{}, false
	}
	return Point2d[U, C]{r2.Scale(1/total, sum)}, true
}

func (pl Polyline2d[U, C]) Reverse() Polyline2d[U, C] {
	vs := slices.Clone(pl.vertices)
	slices.Reverse(vs)
	return Polyline2d[U, C]{vs}
}

// LineString returns the polyline as an XY line string.
func (pl Polyline2d[U, C]) LineString() *geom.LineString {
	flat := make([]float64, 0, 2*len(pl.vertices))
	for _, v := range pl.vertices {
		flat = append(flat, v.X, v.Y)
	}
	return geom.NewLineStringFlat(geom.XY, flat)
}

func (pl Polyline2d[U, C]) String() string {
	parts := lo.Map(pl.vertices, func(v r2.Vec, _ int) string { return Point2d[U, C]{v}.String() })
	return fmt.Sprintf("Polyline2d[%s]", strings.Join(parts, ", "))
}

func (pl Polyline2d[U, C]) IsNaN() bool {
	return slices.ContainsFunc(pl.vertices, func(v r2.Vec) bool { return Point2d[U, C]{v}.IsNaN() })
}

func (pl Polyline2d[U, C]) TranslateBy(v Vector2d[U, C]) Polyline2d[U, C] {
	return pl.transform(translate2(v.v))
}

func (pl Polyline2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Polyline2d[U, C] {
	return pl.transform(rotateAbout2(float64(a), center.p))
}

func (pl Polyline2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Polyline2d[U, C] {
	return pl.transform(scaleAbout2(scale, center.p))
}

func (pl Polyline2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Polyline2d[U, C] {
	return pl.transform(reflect2(axis.origin, axis.dir))
}

func (pl Polyline2d[U, C]) ProjectOnto(axis Axis2d[U, C]) Polyline2d[U, C] {
	return Polyline2d[U, C]{lo.Map(pl.vertices, func(v r2.Vec, _ int) r2.Vec {
		return projectOntoLine2(v, axis.origin, axis.dir)
	})}
}

func (pl Polyline2d[U, C]) transform(aff affine2) Polyline2d[U, C] {
	if pl.vertices == nil {
		return pl
	}
	return Polyline2d[U, C]{aff.points(pl.vertices)}
}

func (f Frame2d[U, G, L]) RelativePolyline(pl Polyline2d[U, G]) Polyline2d[U, L] {
	return Polyline2d[U, L](pl.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlacePolyline(pl Polyline2d[U, L]) Polyline2d[U, G] {
	return Polyline2d[U, G](pl.transform(f.toGlobal()))
}
