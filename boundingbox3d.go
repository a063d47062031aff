package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/quantity"
)

// BoundingBox3d is an axis-aligned box in coordinate system C.
type BoundingBox3d[U, C any] struct {
	b r3.Box
}

func BoundingBox3dFromExtrema[U, C any](minX, maxX, minY, maxY, minZ, maxZ quantity.Quantity[U]) BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{r3.NewBox(
		float64(minX), float64(minY), float64(minZ),
		float64(maxX), float64(maxY), float64(maxZ),
	)}
}

func BoundingBox3dFrom[U, C any](p, q Point3d[U, C]) BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{r3.NewBox(p.p.X, p.p.Y, p.p.Z, q.p.X, q.p.Y, q.p.Z)}
}

func BoundingBox3dSingleton[U, C any](p Point3d[U, C]) BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{r3.Box{Min: p.p, Max: p.p}}
}

// BoundingBox3dHull returns the smallest box containing all points. It
// returns false if there are no points.
func BoundingBox3dHull[U, C any](points []Point3d[U, C]) (BoundingBox3d[U, C], bool) {
	if len(points) == 0 {
		return BoundingBox3d[U, C]{}, false
	}
	return BoundingBox3d[U, C]{hull3(points[0].p, pointsR3(points[1:])...)}, true
}

func (bb BoundingBox3d[U, C]) MinX() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Min.X) }
func (bb BoundingBox3d[U, C]) MaxX() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Max.X) }
func (bb BoundingBox3d[U, C]) MinY() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Min.Y) }
func (bb BoundingBox3d[U, C]) MaxY() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Max.Y) }
func (bb BoundingBox3d[U, C]) MinZ() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Min.Z) }
func (bb BoundingBox3d[U, C]) MaxZ() quantity.Quantity[U] { return quantity.Quantity[U](bb.b.Max.Z) }

// Box returns the box in the base units of U.
func (bb BoundingBox3d[U, C]) Box() r3.Box { return bb.b }

func (bb BoundingBox3d[U, C]) String() string {
	return fmt.Sprintf("BoundingBox3d(%v, %v)", Point3d[U, C]{bb.b.Min}, Point3d[U, C]{bb.b.Max})
}

func (bb BoundingBox3d[U, C]) IsNaN() bool { return isNaN3(bb.b.Min) || isNaN3(bb.b.Max) }

func (bb BoundingBox3d[U, C]) Dimensions() (x, y, z quantity.Quantity[U]) {
	size := bb.b.Size()
	return quantity.Quantity[U](size.X), quantity.Quantity[U](size.Y), quantity.Quantity[U](size.Z)
}

func (bb BoundingBox3d[U, C]) CenterPoint() Point3d[U, C] {
	return Point3d[U, C]{bb.b.Center()}
}

// Contains reports whether p lies inside the box or on its boundary.
func (bb BoundingBox3d[U, C]) Contains(p Point3d[U, C]) bool {
	return bb.b.Min.X <= p.p.X && p.p.X <= bb.b.Max.X &&
		bb.b.Min.Y <= p.p.Y && p.p.Y <= bb.b.Max.Y &&
		bb.b.Min.Z <= p.p.Z && p.p.Z <= bb.b.Max.Z
}

func (bb BoundingBox3d[U, C]) Intersects(o BoundingBox3d[U, C]) bool {
	return bb.b.Min.X <= o.b.Max.X && o.b.Min.X <= bb.b.Max.X &&
		bb.b.Min.Y <= o.b.Max.Y && o.b.Min.Y <= bb.b.Max.Y &&
		bb.b.Min.Z <= o.b.Max.Z && o.b.Min.Z <= bb.b.Max.Z
}

func (bb BoundingBox3d[U, C]) Union(o BoundingBox3d[U, C]) BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{extend3(extend3(bb.b, o.b.Min), o.b.Max)}
}

// Intersection returns the overlap of the two boxes. It returns false if the
// boxes do not intersect.
func (bb BoundingBox3d[U, C]) Intersection(o BoundingBox3d[U, C]) (BoundingBox3d[U, C], bool) {
	if !bb.Intersects(o) {
		return BoundingBox3d[U, C]{}, false
	}
	return BoundingBox3d[U, C]{r3.Box{
		Min: r3.Vec{X: max(bb.b.Min.X, o.b.Min.X), Y: max(bb.b.Min.Y, o.b.Min.Y), Z: max(bb.b.Min.Z, o.b.Min.Z)},
		Max: r3.Vec{X: min(bb.b.Max.X, o.b.Max.X), Y: min(bb.b.Max.Y, o.b.Max.Y), Z: min(bb.b.Max.Z, o.b.Max.Z)},
	}}, true
}

func (bb BoundingBox3d[U, C]) IsContainedIn(o BoundingBox3d[U, C]) bool {
	return o.Contains(Point3d[U, C]{bb.b.Min}) && o.Contains(Point3d[U, C]{bb.b.Max})
}

// Expand grows the box by by in every direction. Shrinking stops at the
// center.
func (bb BoundingBox3d[U, C]) Expand(by quantity.Quantity[U]) BoundingBox3d[U, C] {
	d := r3.Vec{X: float64(by), Y: float64(by), Z: float64(by)}
	c := bb.b.Center()
	lo, hi := r3.Sub(bb.b.Min, d), r3.Add(bb.b.Max, d)
	return BoundingBox3d[U, C]{r3.Box{
		Min: r3.Vec{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)},
		Max: r3.Vec{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)},
	}}
}

func (bb BoundingBox3d[U, C]) TranslateBy(v Vector3d[U, C]) BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{bb.b.Add(v.v)}
}

func (bb BoundingBox3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) BoundingBox3d[U, C] {
	aff := scaleAbout3(scale, center.p)
	lo, hi := aff.point(bb.b.Min), aff.point(bb.b.Max)
	return BoundingBox3d[U, C]{r3.NewBox(lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)}
}

func extend3(b r3.Box, p r3.Vec) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)},
		Max: r3.Vec{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)},
	}
}

func hull3(first r3.Vec, rest ...r3.Vec) r3.Box {
	b := r3.Box{Min: first, Max: first}
	for _, p := range rest {
		b = extend3(b, p)
	}
	return b
}

func pointsR3[U, C any](points []Point3d[U, C]) []r3.Vec {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		out[i] = p.p
	}
	return out
}
