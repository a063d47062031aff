package geometry

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Point3d is a position in units U, expressed in coordinate system C.
type Point3d[U, C any] struct {
	p r3.Vec
}

// Pt3 returns the point (x, y, z) in coordinate system C.
func Pt3[C, U any](x, y, z quantity.Quantity[U]) Point3d[U, C] {
	return Point3d[U, C]{r3.Vec{X: float64(x), Y: float64(y), Z: float64(z)}}
}

// XYZ returns the point (x, y, z), with coordinates given in the base units
// of U.
func XYZ[U, C any](x, y, z float64) Point3d[U, C] {
	return Point3d[U, C]{r3.Vec{X: x, Y: y, Z: z}}
}

func Point3dFromR3[U, C any](p r3.Vec) Point3d[U, C] {
	return Point3d[U, C]{p}
}

func Origin3d[U, C any]() Point3d[U, C] {
	return Point3d[U, C]{}
}

// Centroid3d returns the average of the given points. It returns false if
// there are no points.
func Centroid3d[U, C any](points []Point3d[U, C]) (Point3d[U, C], bool) {
	if len(points) == 0 {
		return Point3d[U, C]{}, false
	}
	var sum r3.Vec
	for _, p := range points {
		sum = r3.Add(sum, p.p)
	}
	return Point3d[U, C]{r3.Scale(1/float64(len(points)), sum)}, true
}

func (p Point3d[U, C]) X() quantity.Quantity[U] { return quantity.Quantity[U](p.p.X) }
func (p Point3d[U, C]) Y() quantity.Quantity[U] { return quantity.Quantity[U](p.p.Y) }
func (p Point3d[U, C]) Z() quantity.Quantity[U] { return quantity.Quantity[U](p.p.Z) }

func (p Point3d[U, C]) Splat() (x, y, z quantity.Quantity[U]) {
	return p.X(), p.Y(), p.Z()
}

func (p Point3d[U, C]) R3() r3.Vec { return p.p }

// Coord returns the point as an XYZ coordinate.
func (p Point3d[U, C]) Coord() geom.Coord { return geom.Coord{p.p.X, p.p.Y, p.p.Z} }

func (p Point3d[U, C]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.p.X, p.p.Y, p.p.Z)
}

func (p Point3d[U, C]) IsInf() bool { return isInf3(p.p) }
func (p Point3d[U, C]) IsNaN() bool { return isNaN3(p.p) }

func (p Point3d[U, C]) EqualWithin(tolerance quantity.Quantity[U], o Point3d[U, C]) bool {
	return scalar.EqualWithinAbs(r3.Norm(r3.Sub(p.p, o.p)), 0, float64(tolerance))
}

// Homogeneous returns the point with weight w: (w·x, w·y, w·z, w).
func (p Point3d[U, C]) Homogeneous(w float64) Point4d[U, C] {
	return Point4dXYZW[U, C](w*p.p.X, w*p.p.Y, w*p.p.Z, w)
}

func (p Point3d[U, C]) TranslateBy(v Vector3d[U, C]) Point3d[U, C] {
	return Point3d[U, C]{r3.Add(p.p, v.v)}
}

func (p Point3d[U, C]) TranslateIn(d Direction3d[C], distance quantity.Quantity[U]) Point3d[U, C] {
	return Point3d[U, C]{r3.Add(p.p, r3.Scale(float64(distance), d.d))}
}

// Minus computes p−o.
func (p Point3d[U, C]) Minus(o Point3d[U, C]) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Sub(p.p, o.p)}
}

func (p Point3d[U, C]) VectorTo(o Point3d[U, C]) Vector3d[U, C] {
	return o.Minus(p)
}

// DirectionTo returns the direction from p to o. It returns false if the points
// coincide.
func (p Point3d[U, C]) DirectionTo(o Point3d[U, C]) (Direction3d[C], bool) {
	return p.VectorTo(o).Direction()
}

func (p Point3d[U, C]) Distance(o Point3d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Norm(r3.Sub(p.p, o.p)))
}

func (p Point3d[U, C]) DistanceSquared(o Point3d[U, C]) quantity.Quantity[quantity.SquaredUnits[U]] {
	return quantity.Quantity[quantity.SquaredUnits[U]](r3.Norm2(r3.Sub(p.p, o.p)))
}

func (p Point3d[U, C]) Midpoint(o Point3d[U, C]) Point3d[U, C] {
	return Point3d[U, C]{r3.Scale(0.5, r3.Add(p.p, o.p))}
}

// Interpolate linearly interpolates between two points. The parameter is not
// clamped.
func (p Point3d[U, C]) Interpolate(o Point3d[U, C], t float64) Point3d[U, C] {
	return Point3d[U, C]{lerp3(p.p, o.p, t)}
}

// DistanceAlong returns the signed distance of p's projection onto axis from
// the axis' origin.
func (p Point3d[U, C]) DistanceAlong(axis Axis3d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Dot(r3.Sub(p.p, axis.origin), axis.dir))
}

// DistanceFromAxis returns the perpendicular distance between p and axis.
func (p Point3d[U, C]) DistanceFromAxis(axis Axis3d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Norm(r3.Cross(axis.dir, r3.Sub(p.p, axis.origin))))
}

// SignedDistanceFrom returns the distance of p from plane, positive on the
// side the plane's normal points to.
func (p Point3d[U, C]) SignedDistanceFrom(plane Plane3d[U, C]) quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Dot(r3.Sub(p.p, plane.origin), plane.normal))
}

func (p Point3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Point3d[U, C] {
	return p.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (p Point3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Point3d[U, C] {
	return p.transform(scaleAbout3(scale, center.p))
}

func (p Point3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Point3d[U, C] {
	return p.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto returns the point on plane closest to p.
func (p Point3d[U, C]) ProjectOnto(plane Plane3d[U, C]) Point3d[U, C] {
	return p.transform(project3(plane.origin, plane.normal))
}

// ProjectOntoAxis returns the point on axis closest to p.
func (p Point3d[U, C]) ProjectOntoAxis(axis Axis3d[U, C]) Point3d[U, C] {
	return Point3d[U, C]{r3.Add(axis.origin, r3.Scale(r3.Dot(r3.Sub(p.p, axis.origin), axis.dir), axis.dir))}
}

func (p Point3d[U, C]) transform(aff affine3) Point3d[U, C] {
	return Point3d[U, C]{aff.point(p.p)}
}

func (f Frame3d[U, G, L]) RelativePoint(p Point3d[U, G]) Point3d[U, L] {
	return Point3d[U, L](p.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlacePoint(p Point3d[U, L]) Point3d[U, G] {
	return Point3d[U, G](p.transform(f.toGlobal()))
}

// PointOn lifts a point in the sketch plane's coordinates into 3D.
func (sp SketchPlane3d[U, G, L]) PointOn(p Point2d[U, L]) Point3d[U, G] {
	return Point3d[U, G]{sp.liftPoint(p.p)}
}

// ProjectPoint projects p orthogonally into the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectPoint(p Point3d[U, G]) Point2d[U, L] {
	return Point2d[U, L]{sp.projectPoint(p.p)}
}
