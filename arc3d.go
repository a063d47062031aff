package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Arc3d is a circular arc in 3D, parametrized as
//
//	center + r·cos(θ)·x + r·sin(θ)·y,  θ = start + t·sweep
//
// where x and y are perpendicular unit directions in the arc's plane. The
// arc's axial direction is x × y.
type Arc3d[U, C any] struct {
	center r3.Vec
	x, y   r3.Vec
	radius float64
	start  float64
	sweep  float64
}

// Arc3dSweptAround returns the arc that starts at start and sweeps around
// axis by sweep, following the right-hand rule.
func Arc3dSweptAround[U, C any](axis Axis3d[U, C], sweep angle.Angle, start Point3d[U, C]) Arc3d[U, C] {
	center := r3.Add(axis.origin, r3.Scale(r3.Dot(r3.Sub(start.p, axis.origin), axis.dir), axis.dir))
	radial := r3.Sub(start.p, center)
	r := r3.Norm(radial)
	var x r3.Vec
	if r == 0 {
		x = perpendicularTo3(axis.dir)
	} else {
		x = r3.Scale(1/r, radial)
	}
	return Arc3d[U, C]{
		center: center,
		x:      x,
		y:      r3.Cross(axis.dir, x),
		radius: r,
		sweep:  float64(sweep),
	}
}

// Arc3dThroughPoints returns the arc that starts at p1, passes through p2 and
// ends at p3. It returns false if the points are collinear.
func Arc3dThroughPoints[U, C any](p1, p2, p3 Point3d[U, C]) (Arc3d[U, C], bool) {
	sp, ok := SketchPlane3dThroughPoints[struct{}](p1, p2, p3)
	if !ok {
		return Arc3d[U, C]{}, false
	}
	a, ok := Arc2dThroughPoints(sp.ProjectPoint(p1), sp.ProjectPoint(p2), sp.ProjectPoint(p3))
	if !ok {
		return Arc3d[U, C]{}, false
	}
	return sp.ArcOn(a), true
}

func (a Arc3d[U, C]) CenterPoint() Point3d[U, C]   { return Point3d[U, C]{a.center} }
func (a Arc3d[U, C]) Radius() quantity.Quantity[U] { return quantity.Quantity[U](a.radius) }
func (a Arc3d[U, C]) SweptAngle() angle.Angle      { return angle.Angle(a.sweep) }

func (a Arc3d[U, C]) AxialDirection() Direction3d[C] {
	return Direction3d[C]{r3.Cross(a.x, a.y)}
}

func (a Arc3d[U, C]) Axis() Axis3d[U, C] {
	return Axis3d[U, C]{a.center, r3.Cross(a.x, a.y)}
}

func (a Arc3d[U, C]) String() string {
	return fmt.Sprintf("Arc3d(%v, %v, %g, %v)", a.CenterPoint(), a.AxialDirection(), a.radius, a.SweptAngle())
}

func (a Arc3d[U, C]) IsNaN() bool {
	return isNaN3(a.center) || math.IsNaN(a.radius) || math.IsNaN(a.start) || math.IsNaN(a.sweep)
}

func (a Arc3d[U, C]) at(th float64) r3.Vec {
	sin, cos := math.Sincos(th)
	return r3.Add(a.center, r3.Add(r3.Scale(a.radius*cos, a.x), r3.Scale(a.radius*sin, a.y)))
}

func (a Arc3d[U, C]) eval(t float64) r3.Vec { return a.at(a.start + t*a.sweep) }

func (a Arc3d[U, C]) StartPoint() Point3d[U, C] { return Point3d[U, C]{a.eval(0)} }
func (a Arc3d[U, C]) EndPoint() Point3d[U, C]   { return Point3d[U, C]{a.eval(1)} }

func (a Arc3d[U, C]) PointOn(t float64) Point3d[U, C] {
	return Point3d[U, C]{a.eval(t)}
}

func (a Arc3d[U, C]) FirstDerivative(t float64) Vector3d[U, C] {
	sin, cos := math.Sincos(a.start + t*a.sweep)
	k := a.radius * a.sweep
	return Vector3d[U, C]{r3.Add(r3.Scale(-k*sin, a.x), r3.Scale(k*cos, a.y))}
}

func (a Arc3d[U, C]) SecondDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(-a.sweep*a.sweep, r3.Sub(a.eval(t), a.center))}
}

func (a Arc3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](a.radius * a.sweep * a.sweep)
}

func (a Arc3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](a.radius * math.Abs(a.sweep))
}

// BoundingBox returns the exact bounding box of the arc.
func (a Arc3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	return BoundingBox3d[U, C]{arcHull3(a.center, r3.Scale(a.radius, a.x), r3.Scale(a.radius, a.y), a.start, a.sweep)}
}

func (a Arc3d[U, C]) Reverse() Arc3d[U, C] {
	a.start += a.sweep
	a.sweep = -a.sweep
	return a
}

func (a Arc3d[U, C]) Segments(n int) Polyline3d[U, C] {
	return Polyline3d[U, C]{sample3(n, a.eval)}
}

func (a Arc3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return a.Segments(NumSegments(maxError, a.MaxSecondDerivativeMagnitude()))
}

func (a Arc3d[U, C]) TranslateBy(v Vector3d[U, C]) Arc3d[U, C] {
	a.center = r3.Add(a.center, v.v)
	return a
}

func (a Arc3d[U, C]) RotateAround(axis Axis3d[U, C], th angle.Angle) Arc3d[U, C] {
	return a.transform(rotateAbout3(float64(th), axis.origin, axis.dir))
}

func (a Arc3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Arc3d[U, C] {
	return a.transform(scaleAbout3(scale, center.p))
}

// MirrorAcross reflects the arc. The axial direction of the result is
// reversed relative to the mirrored axis.
func (a Arc3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Arc3d[U, C] {
	return a.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto projects the arc orthogonally onto plane. Unless the arc is
// parallel to the plane, the result is a proper ellipse.
func (a Arc3d[U, C]) ProjectOnto(plane Plane3d[U, C]) EllipticalArc3d[U, C] {
	return a.ToEllipticalArc().ProjectOnto(plane)
}

// ToEllipticalArc returns the arc as an elliptical arc with equal radii.
func (a Arc3d[U, C]) ToEllipticalArc() EllipticalArc3d[U, C] {
	return EllipticalArc3d[U, C]{
		center: a.center,
		x:      a.x,
		y:      a.y,
		rx:     a.radius,
		ry:     a.radius,
		start:  a.start,
		sweep:  a.sweep,
	}
}

func (a Arc3d[U, C]) transform(aff affine3) Arc3d[U, C] {
	a.center = aff.point(a.center)
	a.x = aff.direction(a.x)
	a.y = aff.direction(a.y)
	a.radius *= aff.scale()
	return a
}

func (f Frame3d[U, G, L]) RelativeArc(a Arc3d[U, G]) Arc3d[U, L] {
	return Arc3d[U, L](a.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceArc(a Arc3d[U, L]) Arc3d[U, G] {
	return Arc3d[U, G](a.transform(f.toGlobal()))
}

// ArcOn lifts a onto the sketch plane.
func (sp SketchPlane3d[U, G, L]) ArcOn(a Arc2d[U, L]) Arc3d[U, G] {
	return Arc3d[U, G]{
		center: sp.liftPoint(a.center),
		x:      sp.x,
		y:      sp.y,
		radius: a.radius,
		start:  a.start,
		sweep:  a.sweep,
	}
}

// ProjectArc projects a orthogonally into the sketch plane. The result is an
// elliptical arc; it is circular only if a is parallel to the sketch plane.
func (sp SketchPlane3d[U, G, L]) ProjectArc(a Arc3d[U, G]) EllipticalArc2d[U, L] {
	return sp.ProjectEllipticalArc(a.ToEllipticalArc())
}

// arcHull3 returns the bounding box of center + u·cos(θ) + v·sin(θ) for θ in
// the range swept from start by sweep.
func arcHull3(center, u, v r3.Vec, start, sweep float64) r3.Box {
	at := func(th float64) r3.Vec {
		sin, cos := math.Sincos(th)
		return r3.Add(center, r3.Add(r3.Scale(cos, u), r3.Scale(sin, v)))
	}
	b := hull3(at(start), at(start+sweep))
	for _, th0 := range [3]float64{
		math.Atan2(v.X, u.X),
		math.Atan2(v.Y, u.Y),
		math.Atan2(v.Z, u.Z),
	} {
		for _, th := range [2]float64{th0, th0 + math.Pi} {
			if sweepContains(th, start, sweep) {
				b = extend3(b, at(th))
			}
		}
	}
	return b
}
