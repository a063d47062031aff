package geometry

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Rectangle2d is a rectangle with arbitrary orientation, given by the frame
// centered on it and its non-negative width and height along the frame's X
// and Y directions.
type Rectangle2d[U, C any] struct {
	center     r2.Vec
	xdir, ydir r2.Vec
	w, h       float64
}

// Rectangle2dFromExtrema returns the axis-aligned rectangle with the given
// extrema, which may be given in either order.
func Rectangle2dFromExtrema[U, C any](minX, maxX, minY, maxY quantity.Quantity[U]) Rectangle2d[U, C] {
	return Rectangle2dFromBoundingBox(BoundingBox2dFromExtrema[U, C](minX, maxX, minY, maxY))
}

// Rectangle2dFrom returns the axis-aligned rectangle with opposite corners p
// and q.
func Rectangle2dFrom[U, C any](p, q Point2d[U, C]) Rectangle2d[U, C] {
	return Rectangle2dFromBoundingBox(BoundingBox2dFrom(p, q))
}

func Rectangle2dFromBoundingBox[U, C any](bb BoundingBox2d[U, C]) Rectangle2d[U, C] {
	return Rectangle2d[U, C]{
		center: lerp2(bb.b.Min, bb.b.Max, 0.5),
		xdir:   r2.Vec{X: 1},
		ydir:   r2.Vec{Y: 1},
		w:      bb.b.Max.X - bb.b.Min.X,
		h:      bb.b.Max.Y - bb.b.Min.Y,
	}
}

// Rectangle2dCenteredOn returns the rectangle centered on the origin of axes
// with the given dimensions along its X and Y directions. Negative dimensions
// are made positive.
func Rectangle2dCenteredOn[U, C, L any](axes Frame2d[U, C, L], width, height quantity.Quantity[U]) Rectangle2d[U, C] {
	return Rectangle2d[U, C]{
		center: axes.origin,
		xdir:   axes.x,
		ydir:   axes.y,
		w:      math.Abs(float64(width)),
		h:      math.Abs(float64(height)),
	}
}

// Rectangle2dWithAxes returns the rectangle oriented along axes and spanning
// bb, which is given in the local coordinates of axes.
func Rectangle2dWithAxes[U, C, L any](axes Frame2d[U, C, L], bb BoundingBox2d[U, L]) Rectangle2d[U, C] {
	return Rectangle2d[U, C]{
		center: axes.toGlobal().point(lerp2(bb.b.Min, bb.b.Max, 0.5)),
		xdir:   axes.x,
		ydir:   axes.y,
		w:      bb.b.Max.X - bb.b.Min.X,
		h:      bb.b.Max.Y - bb.b.Min.Y,
	}
}

// Rectangle2dAxes returns the frame centered on the rectangle and aligned
// with its sides.
func Rectangle2dAxes[L, U, C any](r Rectangle2d[U, C]) Frame2d[U, C, L] {
	return Frame2d[U, C, L]{r.center, r.xdir, r.ydir}
}

func (r Rectangle2d[U, C]) CenterPoint() Point2d[U, C] { return Point2d[U, C]{r.center} }
func (r Rectangle2d[U, C]) XDirection() Direction2d[C] { return Direction2d[C]{r.xdir} }
func (r Rectangle2d[U, C]) YDirection() Direction2d[C] { return Direction2d[C]{r.ydir} }
func (r Rectangle2d[U, C]) XAxis() Axis2d[U, C]        { return Axis2d[U, C]{r.center, r.xdir} }
func (r Rectangle2d[U, C]) YAxis() Axis2d[U, C]        { return Axis2d[U, C]{r.center, r.ydir} }

func (r Rectangle2d[U, C]) Dimensions() (width, height quantity.Quantity[U]) {
	return quantity.Quantity[U](r.w), quantity.Quantity[U](r.h)
}

func (r Rectangle2d[U, C]) Area() quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r.w * r.h)
}

func (r Rectangle2d[U, C]) String() string {
	return fmt.Sprintf("Rectangle2d(%v, %v, %g, %g)", r.CenterPoint(), r.XDirection(), r.w, r.h)
}

func (r Rectangle2d[U, C]) IsNaN() bool {
	return Point2d[U, C]{r.center}.IsNaN() || math.IsNaN(r.w) || math.IsNaN(r.h)
}

// local maps the rectangle's local coordinates, with the origin at its
// center, to coordinates in C.
func (r Rectangle2d[U, C]) local() affine2 {
	return basis2(r.center, r.xdir, r.ydir)
}

// Interpolate returns the point at fractions u and v of the width and height,
// measured from the corner at the minimum of the local X and Y coordinates.
func (r Rectangle2d[U, C]) Interpolate(u, v float64) Point2d[U, C] {
	return Point2d[U, C]{r.local().point(r2.Vec{X: (u - 0.5) * r.w, Y: (v - 0.5) * r.h})}
}

// Vertices returns the corners, counterclockwise in the rectangle's local
// coordinates starting from the minimum corner.
func (r Rectangle2d[U, C]) Vertices() [4]Point2d[U, C] {
	return [4]Point2d[U, C]{
		r.Interpolate(0, 0),
		r.Interpolate(1, 0),
		r.Interpolate(1, 1),
		r.Interpolate(0, 1),
	}
}

func (r Rectangle2d[U, C]) Edges() [4]LineSegment2d[U, C] {
	vs := r.Vertices()
	var out [4]LineSegment2d[U, C]
	for i := range vs {
		out[i] = LineSegment2d[U, C]{vs[i].p, vs[(i+1)%4].p}
	}
	return out
}

// Contains reports whether p lies inside the rectangle or on its boundary.
func (r Rectangle2d[U, C]) Contains(p Point2d[U, C]) bool {
	d := r2.Sub(p.p, r.center)
	return math.Abs(r2.Dot(d, r.xdir)) <= r.w/2 && math.Abs(r2.Dot(d, r.ydir)) <= r.h/2
}

func (r Rectangle2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	ext := r2.Vec{
		X: 0.5 * (r.w*math.Abs(r.xdir.X) + r.h*math.Abs(r.ydir.X)),
		Y: 0.5 * (r.w*math.Abs(r.xdir.Y) + r.h*math.Abs(r.ydir.Y)),
	}
	return BoundingBox2d[U, C]{r2.Box{Min: r2.Sub(r.center, ext), Max: r2.Add(r.center, ext)}}
}

// Polygon returns the rectangle as a closed XY polygon.
func (r Rectangle2d[U, C]) Polygon() *geom.Polygon {
	vs := r.Vertices()
	flat := make([]float64, 0, 10)
	for _, v := range append(vs[:], vs[0]) {
		flat = append(flat, v.p.X, v.p.Y)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

func (r Rectangle2d[U, C]) TranslateBy(v Vector2d[U, C]) Rectangle2d[U, C] {
	r.center = r2.Add(r.center, v.v)
	return r
}

func (r Rectangle2d[U, C]) RotateAround(center Point2d[U, C], a angle.Angle) Rectangle2d[U, C] {
	return r.transform(rotateAbout2(float64(a), center.p))
}

func (r Rectangle2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Rectangle2d[U, C] {
	return r.transform(scaleAbout2(scale, center.p))
}

// MirrorAcross reflects the rectangle across axis. The handedness of its axes
// flips.
func (r Rectangle2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Rectangle2d[U, C] {
	return r.transform(reflect2(axis.origin, axis.dir))
}

func (r Rectangle2d[U, C]) transform(aff affine2) Rectangle2d[U, C] {
	s := aff.scale()
	return Rectangle2d[U, C]{
		center: aff.point(r.center),
		xdir:   aff.direction(r.xdir),
		ydir:   aff.direction(r.ydir),
		w:      r.w * s,
		h:      r.h * s,
	}
}

func (f Frame2d[U, G, L]) RelativeRectangle(r Rectangle2d[U, G]) Rectangle2d[U, L] {
	return Rectangle2d[U, L](r.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceRectangle(r Rectangle2d[U, L]) Rectangle2d[U, G] {
	return Rectangle2d[U, G](r.transform(f.toGlobal()))
}
