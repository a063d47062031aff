package geometry

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type QuadraticSpline3d[U, C any] struct {
	p0, p1, p2 r3.Vec
}

func QuadraticSpline3dFrom[U, C any](p0, p1, p2 Point3d[U, C]) QuadraticSpline3d[U, C] {
	return QuadraticSpline3d[U, C]{p0.p, p1.p, p2.p}
}

func (q QuadraticSpline3d[U, C]) StartPoint() Point3d[U, C]         { return Point3d[U, C]{q.p0} }
func (q QuadraticSpline3d[U, C]) EndPoint() Point3d[U, C]           { return Point3d[U, C]{q.p2} }
func (q QuadraticSpline3d[U, C]) SecondControlPoint() Point3d[U, C] { return Point3d[U, C]{q.p1} }

func (q QuadraticSpline3d[U, C]) String() string {
	return fmt.Sprintf("QuadraticSpline3d(%v, %v, %v)", q.StartPoint(), q.SecondControlPoint(), q.EndPoint())
}

func (q QuadraticSpline3d[U, C]) IsInf() bool { return isInf3(q.p0) || isInf3(q.p1) || isInf3(q.p2) }
func (q QuadraticSpline3d[U, C]) IsNaN() bool { return isNaN3(q.p0) || isNaN3(q.p1) || isNaN3(q.p2) }

func (q QuadraticSpline3d[U, C]) eval(t float64) r3.Vec {
	mt := 1.0 - t
	a := r3.Scale(mt*mt, q.p0)
	b := r3.Scale(mt*2.0, q.p1)
	c := r3.Scale(t, q.p2)
	return r3.Add(a, r3.Scale(t, r3.Add(b, c)))
}

func (q QuadraticSpline3d[U, C]) PointOn(t float64) Point3d[U, C] {
	return Point3d[U, C]{q.eval(t)}
}

func (q QuadraticSpline3d[U, C]) FirstDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{r3.Scale(2, lerp3(r3.Sub(q.p1, q.p0), r3.Sub(q.p2, q.p1), t))}
}

func (q QuadraticSpline3d[U, C]) SecondDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{q.secondDerivative()}
}

func (q QuadraticSpline3d[U, C]) secondDerivative() r3.Vec {
	return r3.Scale(2, r3.Add(r3.Sub(q.p0, r3.Scale(2, q.p1)), q.p2))
}

func (q QuadraticSpline3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](r3.Norm(q.secondDerivative()))
}

func (q QuadraticSpline3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](quadArclen(q.p0, q.p1, q.p2))
}

// Extrema returns the parameters in (0, 1) at which any coordinate has a
// local extremum, in increasing order.
func (q QuadraticSpline3d[U, C]) Extrema() []float64 {
	d0 := r3.Sub(q.p1, q.p0)
	dd := r3.Sub(r3.Sub(q.p2, q.p1), d0)
	var out []float64
	for _, c := range [3][2]float64{{d0.X, dd.X}, {d0.Y, dd.Y}, {d0.Z, dd.Z}} {
		if c[1] != 0 {
			if t := -c[0] / c[1]; t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

func (q QuadraticSpline3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	b := hull3(q.p0, q.p2)
	for _, t := range q.Extrema() {
		b = extend3(b, q.eval(t))
	}
	return BoundingBox3d[U, C]{b}
}

func (q QuadraticSpline3d[U, C]) Reverse() QuadraticSpline3d[U, C] {
	return QuadraticSpline3d[U, C]{q.p2, q.p1, q.p0}
}

func (q QuadraticSpline3d[U, C]) Subdivide() (QuadraticSpline3d[U, C], QuadraticSpline3d[U, C]) {
	pm := q.eval(0.5)
	return QuadraticSpline3d[U, C]{q.p0, lerp3(q.p0, q.p1, 0.5), pm},
		QuadraticSpline3d[U, C]{pm, lerp3(q.p1, q.p2, 0.5), q.p2}
}

func (q QuadraticSpline3d[U, C]) ToCubic() CubicSpline3d[U, C] {
	return CubicSpline3d[U, C]{
		q.p0,
		r3.Add(q.p0, r3.Scale(2.0/3.0, r3.Sub(q.p1, q.p0))),
		r3.Add(q.p2, r3.Scale(2.0/3.0, r3.Sub(q.p1, q.p2))),
		q.p2,
	}
}

func (q QuadraticSpline3d[U, C]) Segments(n int) Polyline3d[U, C] {
	return Polyline3d[U, C]{sample3(n, q.eval)}
}

func (q QuadraticSpline3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return q.Segments(NumSegments(maxError, q.MaxSecondDerivativeMagnitude()))
}

func (q QuadraticSpline3d[U, C]) TranslateBy(v Vector3d[U, C]) QuadraticSpline3d[U, C] {
	return q.transform(translate3(v.v))
}

func (q QuadraticSpline3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) QuadraticSpline3d[U, C] {
	return q.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (q QuadraticSpline3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) QuadraticSpline3d[U, C] {
	return q.transform(scaleAbout3(scale, center.p))
}

func (q QuadraticSpline3d[U, C]) MirrorAcross(plane Plane3d[U, C]) QuadraticSpline3d[U, C] {
	return q.transform(reflect3(plane.origin, plane.normal))
}

// ProjectOnto projects the control points onto plane, which projects the
// whole curve.
func (q QuadraticSpline3d[U, C]) ProjectOnto(plane Plane3d[U, C]) QuadraticSpline3d[U, C] {
	return q.transform(project3(plane.origin, plane.normal))
}

func (q QuadraticSpline3d[U, C]) transform(aff affine3) QuadraticSpline3d[U, C] {
	return QuadraticSpline3d[U, C]{aff.point(q.p0), aff.point(q.p1), aff.point(q.p2)}
}

func (f Frame3d[U, G, L]) RelativeQuadraticSpline(q QuadraticSpline3d[U, G]) QuadraticSpline3d[U, L] {
	return QuadraticSpline3d[U, L](q.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceQuadraticSpline(q QuadraticSpline3d[U, L]) QuadraticSpline3d[U, G] {
	return QuadraticSpline3d[U, G](q.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) QuadraticSplineOn(q QuadraticSpline2d[U, L]) QuadraticSpline3d[U, G] {
	return QuadraticSpline3d[U, G]{sp.liftPoint(q.p0), sp.liftPoint(q.p1), sp.liftPoint(q.p2)}
}

func (sp SketchPlane3d[U, G, L]) ProjectQuadraticSpline(q QuadraticSpline3d[U, G]) QuadraticSpline2d[U, L] {
	return QuadraticSpline2d[U, L]{sp.projectPoint(q.p0), sp.projectPoint(q.p1), sp.projectPoint(q.p2)}
}
