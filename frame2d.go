package geometry

import (
	"fmt"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
)

// Frame2d is a 2D coordinate system: an origin point and two perpendicular
// unit axes. The frame itself is expressed in global coordinates G and
// defines local coordinates L.
//
// Values are converted between the two coordinate systems with the Relative*
// and Place* methods:
//
//	local := frame.RelativePoint(p)  // Point2d[U, G] → Point2d[U, L]
//	p2 := frame.PlacePoint(local)    // Point2d[U, L] → Point2d[U, G]
//
// A frame may be left-handed, for example after being mirrored.
type Frame2d[U, G, L any] struct {
	origin r2.Vec
	x, y   r2.Vec
}

// AtOrigin2d returns the frame whose local coordinates coincide with the
// global ones.
func AtOrigin2d[U, G, L any]() Frame2d[U, G, L] {
	return Frame2d[U, G, L]{x: r2.Vec{X: 1}, y: r2.Vec{Y: 1}}
}

// AtPoint2d returns an axis-aligned frame with origin p. Only the local
// coordinate system needs to be specified:
//
//	f := AtPoint2d[Local](p)
func AtPoint2d[L, U, G any](p Point2d[U, G]) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{origin: p.p, x: r2.Vec{X: 1}, y: r2.Vec{Y: 1}}
}

// Frame2dWithXDirection returns the right-handed frame with the given origin
// and X direction.
func Frame2dWithXDirection[L, U, G any](origin Point2d[U, G], x Direction2d[G]) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{origin.p, x.d, perp2(x.d)}
}

// Frame2dFromXAxis returns the right-handed frame whose X axis is axis.
func Frame2dFromXAxis[L, U, G any](axis Axis2d[U, G]) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{axis.origin, axis.dir, perp2(axis.dir)}
}

// UnsafeFrame2d constructs a frame from the given axes without checking
// them. The caller must ensure that x and y are perpendicular; otherwise
// conversions through the frame produce meaningless results.
func UnsafeFrame2d[L, U, G any](origin Point2d[U, G], x, y Direction2d[G]) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{origin.p, x.d, y.d}
}

func (f Frame2d[U, G, L]) OriginPoint() Point2d[U, G] { return Point2d[U, G]{f.origin} }
func (f Frame2d[U, G, L]) XDirection() Direction2d[G] { return Direction2d[G]{f.x} }
func (f Frame2d[U, G, L]) YDirection() Direction2d[G] { return Direction2d[G]{f.y} }
func (f Frame2d[U, G, L]) XAxis() Axis2d[U, G]        { return Axis2d[U, G]{f.origin, f.x} }
func (f Frame2d[U, G, L]) YAxis() Axis2d[U, G]        { return Axis2d[U, G]{f.origin, f.y} }

// IsRightHanded reports whether the Y direction is counterclockwise from the
// X direction.
func (f Frame2d[U, G, L]) IsRightHanded() bool {
	return r2.Cross(f.x, f.y) > 0
}

// ReverseX returns the frame with its X direction reversed. This flips the
// frame's handedness.
func (f Frame2d[U, G, L]) ReverseX() Frame2d[U, G, L] {
	return Frame2d[U, G, L]{f.origin, r2.Scale(-1, f.x), f.y}
}

func (f Frame2d[U, G, L]) ReverseY() Frame2d[U, G, L] {
	return Frame2d[U, G, L]{f.origin, f.x, r2.Scale(-1, f.y)}
}

// MoveTo returns the frame with the same axes and origin p.
func (f Frame2d[U, G, L]) MoveTo(p Point2d[U, G]) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{p.p, f.x, f.y}
}

func (f Frame2d[U, G, L]) String() string {
	return fmt.Sprintf("Frame2d(%v, %v, %v)", f.OriginPoint(), f.XDirection(), f.YDirection())
}

// RotateBy rotates the frame's axes around its own origin.
func (f Frame2d[U, G, L]) RotateBy(a angle.Angle) Frame2d[U, G, L] {
	return f.transform(rotateAbout2(float64(a), f.origin))
}

func (f Frame2d[U, G, L]) TranslateBy(v Vector2d[U, G]) Frame2d[U, G, L] {
	return f.transform(translate2(v.v))
}

func (f Frame2d[U, G, L]) RotateAround(center Point2d[U, G], a angle.Angle) Frame2d[U, G, L] {
	return f.transform(rotateAbout2(float64(a), center.p))
}

// MirrorAcross reflects the frame across axis. The result has the opposite
// handedness.
func (f Frame2d[U, G, L]) MirrorAcross(axis Axis2d[U, G]) Frame2d[U, G, L] {
	return f.transform(reflect2(axis.origin, axis.dir))
}

func (f Frame2d[U, G, L]) transform(aff affine2) Frame2d[U, G, L] {
	return Frame2d[U, G, L]{aff.point(f.origin), aff.direction(f.x), aff.direction(f.y)}
}

// toGlobal maps local coordinates to global coordinates.
func (f Frame2d[U, G, L]) toGlobal() affine2 {
	return basis2(f.origin, f.x, f.y)
}

// toLocal maps global coordinates to local coordinates.
func (f Frame2d[U, G, L]) toLocal() affine2 {
	return f.toGlobal().invert()
}

// Aff3 returns the transformation from local to global coordinates as a
// row-major affine matrix, in the base units of U.
func (f Frame2d[U, G, L]) Aff3() f64.Aff3 {
	return f64.Aff3{
		f.x.X, f.y.X, f.origin.X,
		f.x.Y, f.y.Y, f.origin.Y,
	}
}

// RelativeFrame2d expresses the frame other, which is defined in the same
// global coordinates as f, relative to f.
func RelativeFrame2d[U, G, L, M any](f Frame2d[U, G, L], other Frame2d[U, G, M]) Frame2d[U, L, M] {
	return Frame2d[U, L, M](other.transform(f.toLocal()))
}

// PlaceFrame2d is the inverse of [RelativeFrame2d].
func PlaceFrame2d[U, G, L, M any](f Frame2d[U, G, L], other Frame2d[U, L, M]) Frame2d[U, G, M] {
	return Frame2d[U, G, M](other.transform(f.toGlobal()))
}
