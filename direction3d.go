package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Direction3d is a unit vector in coordinate system C.
type Direction3d[C any] struct {
	d r3.Vec
}

// Direction3dXYZ normalizes ⟨x, y, z⟩. It returns false if all components are
// zero.
func Direction3dXYZ[C any](x, y, z float64) (Direction3d[C], bool) {
	return Vector3d[quantity.Unitless, C]{r3.Vec{X: x, Y: y, Z: z}}.Direction()
}

// Direction3dFromAzimuthAndElevation returns the direction with the given
// azimuth, measured counterclockwise from the positive X direction in the XY
// plane, and elevation above the XY plane.
func Direction3dFromAzimuthAndElevation[C any](azimuth, elevation angle.Angle) Direction3d[C] {
	sinAz, cosAz := angle.Sincos(azimuth)
	sinEl, cosEl := angle.Sincos(elevation)
	return Direction3d[C]{r3.Vec{X: cosEl * cosAz, Y: cosEl * sinAz, Z: sinEl}}
}

func PositiveX3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{X: 1}} }
func NegativeX3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{X: -1}} }
func PositiveY3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{Y: 1}} }
func NegativeY3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{Y: -1}} }
func PositiveZ3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{Z: 1}} }
func NegativeZ3d[C any]() Direction3d[C] { return Direction3d[C]{r3.Vec{Z: -1}} }

func (d Direction3d[C]) X() float64 { return d.d.X }
func (d Direction3d[C]) Y() float64 { return d.d.Y }
func (d Direction3d[C]) Z() float64 { return d.d.Z }

func (d Direction3d[C]) R3() r3.Vec { return d.d }

func (d Direction3d[C]) String() string {
	return fmt.Sprintf("Direction3d(%g, %g, %g)", d.d.X, d.d.Y, d.d.Z)
}

func (d Direction3d[C]) IsNaN() bool { return isNaN3(d.d) }

// EqualWithin reports whether the angle between d and o is at most tolerance.
func (d Direction3d[C]) EqualWithin(tolerance angle.Angle, o Direction3d[C]) bool {
	return scalar.EqualWithinAbs(float64(d.AngleFrom(o)), 0, float64(tolerance))
}

// AngleFrom returns the unsigned angle between d and o, in [0, π].
func (d Direction3d[C]) AngleFrom(o Direction3d[C]) angle.Angle {
	return angle.Radians(math.Atan2(r3.Norm(r3.Cross(o.d, d.d)), r3.Dot(o.d, d.d)))
}

// Reverse returns the opposite direction.
func (d Direction3d[C]) Reverse() Direction3d[C] {
	return Direction3d[C]{r3.Scale(-1, d.d)}
}

// Perpendicular returns an arbitrary direction perpendicular to d.
func (d Direction3d[C]) Perpendicular() Direction3d[C] {
	return Direction3d[C]{perpendicularTo3(d.d)}
}

// PerpendicularBasis returns two directions x and y such that x, y and d form
// a right-handed orthonormal basis.
func (d Direction3d[C]) PerpendicularBasis() (x, y Direction3d[C]) {
	px := perpendicularTo3(d.d)
	return Direction3d[C]{px}, Direction3d[C]{r3.Cross(d.d, px)}
}

// RotateAround rotates d around an axis with the given direction, following
// the right-hand rule.
func (d Direction3d[C]) RotateAround(axis Direction3d[C], a angle.Angle) Direction3d[C] {
	return Direction3d[C]{r3.Rotate(d.d, float64(a), axis.d)}
}

// MirrorAcross reflects d across a plane with the given normal.
func (d Direction3d[C]) MirrorAcross(normal Direction3d[C]) Direction3d[C] {
	return Direction3d[C]{reflect3(r3.Vec{}, normal.d).vector(d.d)}
}

// ComponentIn returns the cosine of the angle between d and o.
func (d Direction3d[C]) ComponentIn(o Direction3d[C]) float64 {
	return r3.Dot(d.d, o.d)
}

func (d Direction3d[C]) ToVector() Vector3d[quantity.Unitless, C] {
	return Vector3d[quantity.Unitless, C]{d.d}
}

func (d Direction3d[C]) transform(aff affine3) Direction3d[C] {
	return Direction3d[C]{aff.direction(d.d)}
}

func (f Frame3d[U, G, L]) RelativeDirection(d Direction3d[G]) Direction3d[L] {
	return Direction3d[L](d.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceDirection(d Direction3d[L]) Direction3d[G] {
	return Direction3d[G](d.transform(f.toGlobal()))
}

// DirectionOn lifts a direction in the sketch plane's coordinates into 3D.
func (sp SketchPlane3d[U, G, L]) DirectionOn(d Direction2d[L]) Direction3d[G] {
	return Direction3d[G]{sp.liftVector(d.d)}
}

// ProjectDirection projects d into the sketch plane. It returns false if d is
// perpendicular to the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectDirection(d Direction3d[G]) (Direction2d[L], bool) {
	return Vector2d[quantity.Unitless, L]{sp.projectVector(d.d)}.Direction()
}
