package geometry

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/quantity"
)

// BoundingBox2d is an axis-aligned box in coordinate system C. Boxes always
// have non-negative dimensions and may be degenerate (a single point or a
// line).
type BoundingBox2d[U, C any] struct {
	b r2.Box
}

// BoundingBox2dFromExtrema returns the box with the given extrema. The
// extrema may be given in either order.
func BoundingBox2dFromExtrema[U, C any](minX, maxX, minY, maxY quantity.Quantity[U]) BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{r2.NewBox(float64(minX), float64(minY), float64(maxX), float64(maxY))}
}

// BoundingBox2dFrom returns the smallest box containing p and q.
func BoundingBox2dFrom[U, C any](p, q Point2d[U, C]) BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{r2.NewBox(p.p.X, p.p.Y, q.p.X, q.p.Y)}
}

// BoundingBox2dSingleton returns the degenerate box containing only p.
func BoundingBox2dSingleton[U, C any](p Point2d[U, C]) BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{r2.Box{Min: p.p, Max: p.p}}
}

// BoundingBox2dHull returns the smallest box containing all points. It
// returns false if there are no points.
func BoundingBox2dHull[U, C any](points []Point2d[U, C]) (BoundingBox2d[U, C], bool) {
	if len(points) == 0 {
		return BoundingBox2d[U, C]{}, false
	}
	return BoundingBox2d[U, C]{hull2(points[0].p, pointsR2(points[1:])...)}, true
}

func (bb BoundingBox2d[U, C]) MinX() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Min.X) }
func (bb BoundingBox2d[U, C]) MaxX() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Max.X) }
func (bb BoundingBox2d[U, C]) MinY() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Min.Y) }
func (bb BoundingBox2d[U, C]) MaxY() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Max.Y) }

// R2 returns the box in the base units of U.
func (bb BoundingBox2d[U, C]) R2() r2.Box { return bb.b }

// Bounds returns the box as XY bounds.
func (bb BoundingBox2d[U, C]) Bounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(bb.b.Min.X, bb.b.Min.Y, bb.b.Max.X, bb.b.Max.Y)
}

func (bb BoundingBox2d[U, C]) String() string {
	return fmt.Sprintf("BoundingBox2d(%v, %v)", Point2d[U, C]{bb.b.Min}, Point2d[U, C]{bb.b.Max})
}

func (bb BoundingBox2d[U, C]) IsNaN() bool {
	return math.IsNaN(bb.b.Min.X) || math.IsNaN(bb.b.Min.Y) || math.IsNaN(bb.b.Max.X) || math.IsNaN(bb.b.Max.Y)
}

// Dimensions returns the box's width and height.
func (bb BoundingBox2d[U, C]) Dimensions() (width, height quantity.Quantity[U]) {
	size := bb.b.Size()
	return quantity.Quantity[U](size.X), quantity.Quantity[U](size.Y)
}

func (bb BoundingBox2d[U, C]) CenterPoint() Point2d[U, C] {
	return Point2d[U, C]{bb.b.Center()}
}

// Contains reports whether p lies inside the box or on its boundary.
func (bb BoundingBox2d[U, C]) Contains(p Point2d[U, C]) bool {
	return bb.b.Min.X <= p.p.X && p.p.X <= bb.b.Max.X &&
		bb.b.Min.Y <= p.p.Y && p.p.Y <= bb.b.Max.Y
}

// Intersects reports whether the two boxes touch or overlap.
func (bb BoundingBox2d[U, C]) Intersects(o BoundingBox2d[U, C]) bool {
	return bb.b.Min.X <= o.b.Max.X && o.b.Min.X <= bb.b.Max.X &&
		bb.b.Min.Y <= o.b.Max.Y && o.b.Min.Y <= bb.b.Max.Y
}

// IsContainedIn reports whether bb lies entirely within o.
func (bb BoundingBox2d[U, C]) IsContainedIn(o BoundingBox2d[U, C]) bool {
	return o.Contains(Point2d[U, C]{bb.b.Min}) && o.Contains(Point2d[U, C]{bb.b.Max})
}

// Union returns the smallest box containing both boxes.
func (bb BoundingBox2d[U, C]) Union(o BoundingBox2d[U, C]) BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{hull2(bb.b.Min, bb.b.Max, o.b.Min, o.b.Max)}
}

// Intersection returns the overlap of the two boxes. It returns false if the
// boxes do not intersect. Boxes that only touch produce a degenerate box.
func (bb BoundingBox2d[U, C]) Intersection(o BoundingBox2d[U, C]) (BoundingBox2d[U, C], bool) {
	if !bb.Intersects(o) {
		return BoundingBox2d[U, C]{}, false
	}
	return BoundingBox2d[U, C]{r2.Box{
		Min: r2.Vec{X: max(bb.b.Min.X, o.b.Min.X), Y: max(bb.b.Min.Y, o.b.Min.Y)},
		Max: r2.Vec{X: min(bb.b.Max.X, o.b.Max.X), Y: min(bb.b.Max.Y, o.b.Max.Y)},
	}}, true
}

// Expand grows the box by by in every direction. Negative values shrink the
// box, but never below a single point at its center.
func (bb BoundingBox2d[U, C]) Expand(by quantity.Quantity[U]) BoundingBox2d[U, C] {
	d := float64(by)
	c := bb.b.Center()
	return BoundingBox2d[U, C]{r2.Box{
		Min: r2.Vec{X: min(bb.b.Min.X-d, c.X), Y: min(bb.b.Min.Y-d, c.Y)},
		Max: r2.Vec{X: max(bb.b.Max.X+d, c.X), Y: max(bb.b.Max.Y+d, c.Y)},
	}}
}

func (bb BoundingBox2d[U, C]) TranslateBy(v Vector2d[U, C]) BoundingBox2d[U, C] {
	return BoundingBox2d[U, C]{bb.b.Add(v.v)}
}

// ScaleAbout scales the box about center. A negative scale mirrors the box,
// which keeps it axis-aligned.
func (bb BoundingBox2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) BoundingBox2d[U, C] {
	aff := scaleAbout2(scale, center.p)
	return BoundingBox2d[U, C]{r2.NewBox(
		aff.point(bb.b.Min).X, aff.point(bb.b.Min).Y,
		aff.point(bb.b.Max).X, aff.point(bb.b.Max).Y,
	)}
}

// hull2 returns the smallest box containing all points.
func hull2(first r2.Vec, rest ...r2.Vec) r2.Box {
	b := r2.Box{Min: first, Max: first}
	for _, p := range rest {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

func pointsR2[U, C any](points []Point2d[U, C]) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = p.p
	}
	return out
}
