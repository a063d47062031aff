package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// EllipticalArc3d is an elliptical arc in 3D, parametrized like
// [EllipticalArc2d] with perpendicular unit axis directions x and y.
type EllipticalArc3d[U, C any] struct {
	center r3.Vec
	x, y   r3.Vec
	rx, ry float64
	start  float64
	sweep  float64
}

func (e EllipticalArc3d[U, C]) CenterPoint() Point3d[U, C]    { return Point3d[U, C]{e.center} }
func (e EllipticalArc3d[U, C]) XDirection() Direction3d[C]    { return Direction3d[C]{e.x} }
func (e EllipticalArc3d[U, C]) YDirection() Direction3d[C]    { return Direction3d[C]{e.y} }
func (e EllipticalArc3d[U, C]) XRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.rx) }
func (e EllipticalArc3d[U, C]) YRadius() quantity.Quantity[U] { return quantity.Quantity[U](e.ry) }
func (e EllipticalArc3d[U, C]) StartAngle() angle.Angle       { return angle.Angle(e.start) }
func (e EllipticalArc3d[U, C]) SweptAngle() angle.Angle       { return angle.Angle(e.sweep) }

func (e EllipticalArc3d[U, C]) String() string {
	return fmt.Sprintf("EllipticalArc3d(%v, %v, %v, %g, %g, %v, %v)",
		e.CenterPoint(), e.XDirection(), e.YDirection(), e.rx, e.ry, e.StartAngle(), e.SweptAngle())
}

func (e EllipticalArc3d[U, C]) IsNaN() bool {
	return isNaN3(e.center) || math.IsNaN(e.rx) || math.IsNaN(e.ry) || math.IsNaN(e.start) || math.IsNaN(e.sweep)
}

func (e EllipticalArc3d[U, C]) u() r3.Vec { return r3.Scale(e.rx, e.x) }
func (e EllipticalArc3d[U, C]) v() r3.Vec { return r3.Scale(e.ry, e.y) }

func (e EllipticalArc3d[U, C]) eval(t float64) r3.Vec {
	sin, cos := math.Sincos(e.start + t*e.sweep)
	return r3.Add(e.center, r3.Add(r3.Scale(cos, e.u()), r3.Scale(sin, e.v())))
}

func (e EllipticalArc3d[U, C]) derivative(t float64) r3.Vec {
	sin, cos := math.Sincos(e.start + t*e.sweep)
	return r3.Scale(e.sweep, r3.Add(r3.Scale(-sin, e.u()), r3.Scale(cos, e.v())))
}

func (e EllipticalArc3d[U, C]) StartPoint() Point3d[U, C] { return Point3d[U, C]{e.eval(0)} }
func (e EllipticalArc3d[U, C]) EndPoint() Point3d[U, C]   { return Point3d[U, C]{e.eval(1)} }

func (e EllipticalArc3d[U, C]) PointOn(t float64) Point3d[U, C] {
	return Point3d[U, C]{e.eval(t)}
}

func (e EllipticalArc3d[U, C]) FirstDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{e.derivative(t)}
}

func (e EllipticalArc3d[U, C]) SecondDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(-e.sweep*e.sweep, r3.Sub(e.eval(t), e.center))}
}

func (e EllipticalArc3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](max(e.rx, e.ry) * e.sweep * e.sweep)
}

func (e EllipticalArc3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](integrate(func(t float64) float64 {
		return r3.Norm(e.derivative(t))
	}, 0, 1, DefaultTolerance))
}

func (e EllipticalArc3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{arcHull3(e.center, e.u(), e.v(), e.start, e.sweep)}
}

func (e EllipticalArc3d[U, C]) Reverse() EllipticalArc3d[U, C] {
	e.start += e.sweep
	e.sweep = -e.sweep
	return e
}

func (e EllipticalArc3d[U, C]) Segments(n int) Polyline3d[U, C] {
	return Polyline3d[U, C]{sample3(n, e.eval)}
}

func (e EllipticalArc3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return e.Segments(NumSegments(maxError, e.MaxSecondDerivativeMagnitude()))
}

func (e EllipticalArc3d[U, C]) TranslateBy(v Vector3d[U, C]) EllipticalArc3d[U, C] {
	e.center = r3.Add(e.center, v.v)
	return e
}

func (e EllipticalArc3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) EllipticalArc3d[U, C] {
	return e.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (e EllipticalArc3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) EllipticalArc3d[U, C] {
	return e.transform(scaleAbout3(scale, center.p))
}

func (e EllipticalArc3d[U, C]) MirrorAcross(plane Plane3d[U, C]) EllipticalArc3d[U, C] {
	return e.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto projects the arc orthogonally onto plane.
func (e EllipticalArc3d[U, C]) ProjectOnto(plane Plane3d[U, C]) EllipticalArc3d[U, C] {
	sp := SketchPlaneFromPlane[struct{}](plane)
	return sp.EllipticalArcOn(sp.ProjectEllipticalArc(e))
}

func (e EllipticalArc3d[U, C]) transform(aff affine3) EllipticalArc3d[U, C] {
	s := aff.scale()
	e.center = aff.point(e.center)
	e.x = aff.direction(e.x)
	e.y = aff.direction(e.y)
	e.rx *= s
	e.ry *= s
	return e
}

func (f Frame3d[U, G, L]) RelativeEllipticalArc(e EllipticalArc3d[U, G]) EllipticalArc3d[U, L] {
	return EllipticalArc3d[U, L](e.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceEllipticalArc(e EllipticalArc3d[U, L]) EllipticalArc3d[U, G] {
	return EllipticalArc3d[U, G](e.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) EllipticalArcOn(e EllipticalArc2d[U, L]) EllipticalArc3d[U, G] {
	return EllipticalArc3d[U, G]{
		center: sp.liftPoint(e.center),
		x:      sp.liftVector(e.xdir),
		y:      sp.liftVector(e.ydir),
		rx:     e.rx,
		ry:     e.ry,
		start:  e.start,
		sweep:  e.sweep,
	}
}

func (sp SketchPlane3d[U, G, L]) ProjectEllipticalArc(e EllipticalArc3d[U, G]) EllipticalArc2d[U, L] {
	return ellipticalArc2dFromConjugate[U, L](
		sp.projectPoint(e.center),
		sp.projectVector(e.u()),
		sp.projectVector(e.v()),
		e.start,
		e.sweep,
	)
}
