package geometry

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type CubicSpline3d[U, C any] struct {
	p0, p1, p2, p3 r3.Vec
}

func CubicSpline3dFrom[U, C any](p0, p1, p2, p3 Point3d[U, C]) CubicSpline3d[U, C] {
	return CubicSpline3d[U, C]{p0.p, p1.p, p2.p, p3.p}
}

func (c CubicSpline3d[U, C]) StartPoint() Point3d[U, C] { return Point3d[U, C]{c.p0} }
func (c CubicSpline3d[U, C]) EndPoint() Point3d[U, C]   { return Point3d[U, C]{c.p3} }

func (c CubicSpline3d[U, C]) ControlPoints() [4]Point3d[U, C] {
	return [4]Point3d[U, C]{{c.p0}, {c.p1}, {c.p2}, {c.p3}}
}

func (c CubicSpline3d[U, C]) String() string {
	return fmt.Sprintf("CubicSpline3d(%v, %v, %v, %v)",
		Point3d[U, C]{c.p0}, Point3d[U, C]{c.p1}, Point3d[U, C]{c.p2}, Point3d[U, C]{c.p3})
}

func (c CubicSpline3d[U, C]) IsInf() bool {
	return isInf3(c.p0) || isInf3(c.p1) || isInf3(c.p2) || isInf3(c.p3)
}

func (c CubicSpline3d[U, C]) IsNaN() bool {
	return isNaN3(c.p0) || isNaN3(c.p1) || isNaN3(c.p2) || isNaN3(c.p3)
}

func (c CubicSpline3d[U, C]) eval(t float64) r3.Vec {
	mt := 1.0 - t
	a := r3.Scale(mt*mt*mt, c.p0)
	b := r3.Scale(mt*mt*3.0, c.p1)
	cc := r3.Scale(mt*3.0, c.p2)
	return r3.Add(a, r3.Scale(t, r3.Add(b, r3.Scale(t, r3.Add(cc, r3.Scale(t, c.p3))))))
}

func (c CubicSpline3d[U, C]) derivative(t float64) r3.Vec {
	mt := 1.0 - t
	d0 := r3.Sub(c.p1, c.p0)
	d1 := r3.Sub(c.p2, c.p1)
	d2 := r3.Sub(c.p3, c.p2)
	return r3.Scale(3, r3.Add(r3.Add(r3.Scale(mt*mt, d0), r3.Scale(2*t*mt, d1)), r3.Scale(t*t, d2)))
}

func (c CubicSpline3d[U, C]) PointOn(t float64) Point3d[U, C] {
	return Point3d[U, C]{c.eval(t)}
}

func (c CubicSpline3d[U, C]) FirstDerivative(t float64) Vector3d[U, C] {
	return Vector3d[U, C]{c.derivative(t)}
}

func (c CubicSpline3d[U, C]) SecondDerivative(t float64) Vector3d[U, C] {
	a, b := c.secondDerivatives()
	return Vector3d[U, C]{lerp3(a, b, t)}
}

func (c CubicSpline3d[U, C]) secondDerivatives() (r3.Vec, r3.Vec) {
	a := r3.Scale(6, r3.Add(r3.Sub(c.p0, r3.Scale(2, c.p1)), c.p2))
	b := r3.Scale(6, r3.Add(r3.Sub(c.p1, r3.Scale(2, c.p2)), c.p3))
	return a, b
}

func (c CubicSpline3d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	a, b := c.secondDerivatives()
	return quantity.Quantity[U](max(r3.Norm(a), r3.Norm(b)))
}

func (c CubicSpline3d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](integrate(func(t float64) float64 {
		return r3.Norm(c.derivative(t))
	}, 0, 1, DefaultTolerance))
}

func (c CubicSpline3d[U, C]) Extrema() []float64 {
	d0 := r3.Sub(c.p1, c.p0)
	d1 := r3.Sub(c.p2, c.p1)
	d2 := r3.Sub(c.p3, c.p2)
	var out []float64
	out = append(out, cubicExtrema(d0.X, d1.X, d2.X)...)
	out = append(out, cubicExtrema(d0.Y, d1.Y, d2.Y)...)
	out = append(out, cubicExtrema(d0.Z, d1.Z, d2.Z)...)
	slices.Sort(out)
	return out
}

func (c CubicSpline3d[U, C]) BoundingBox() BoundingBox3d[U, C] {
	b := hull3(c.p0, c.p3)
	for _, t := range c.Extrema() {
		b = extend3(b, c.eval(t))
	}
	return BoundingBox3d[U, C]{b}
}

func (c CubicSpline3d[U, C]) Reverse() CubicSpline3d[U, C] {
	return CubicSpline3d[U, C]{c.p3, c.p2, c.p1, c.p0}
}

func (c CubicSpline3d[U, C]) Subdivide() (CubicSpline3d[U, C], CubicSpline3d[U, C]) {
	pm := c.eval(0.5)
	return CubicSpline3d[U, C]{
			c.p0,
			lerp3(c.p0, c.p1, 0.5),
			r3.Scale(0.25, r3.Add(r3.Add(c.p0, r3.Scale(2, c.p1)), c.p2)),
			pm,
		},
		CubicSpline3d[U, C]{
			pm,
			r3.Scale(0.25, r3.Add(r3.Add(c.p1, r3.Scale(2, c.p2)), c.p3)),
			lerp3(c.p2, c.p3, 0.5),
			c.p3,
		}
}

func (c CubicSpline3d[U, C]) Segments(n int) Polyline3d[U, C] {
	return Polyline3d[U, C]{sample3(n, c.eval)}
}

func (c CubicSpline3d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline3d[U, C] {
	return c.Segments(NumSegments(maxError, c.MaxSecondDerivativeMagnitude()))
}

func (c CubicSpline3d[U, C]) TranslateBy(v Vector3d[U, C]) CubicSpline3d[U, C] {
	return c.transform(translate3(v.v))
}

func (c CubicSpline3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) CubicSpline3d[U, C] {
	return c.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (c CubicSpline3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) CubicSpline3d[U, C] {
	return c.transform(scaleAbout3(scale, center.p))
}

func (c CubicSpline3d[U, C]) MirrorAcross(plane Plane3d[U, C]) CubicSpline3d[U, C] {
	return c.transform(reflect3(plane.origin, plane.normal))
}

func (c CubicSpline3d[U, C]) ProjectOnto(plane Plane3d[U, C]) CubicSpline3d[U, C] {
	return c.transform(project3(plane.origin, plane.normal))
}

func (c CubicSpline3d[U, C]) transform(aff affine3) CubicSpline3d[U, C] {
	return CubicSpline3d[U, C]{aff.point(c.p0), aff.point(c.p1), aff.point(c.p2), aff.point(c.p3)}
}

func (f Frame3d[U, G, L]) RelativeCubicSpline(c CubicSpline3d[U, G]) CubicSpline3d[U, L] {
	return CubicSpline3d[U, L](c.transform(f.toLocal()))
}

func (f Frame3d[U, G, L]) PlaceCubicSpline(c CubicSpline3d[U, L]) CubicSpline3d[U, G] {
	return CubicSpline3d[U, G](c.transform(f.toGlobal()))
}

func (sp SketchPlane3d[U, G, L]) CubicSplineOn(c CubicSpline2d[U, L]) CubicSpline3d[U, G] {
	return CubicSpline3d[U, G]{sp.liftPoint(c.p0), sp.liftPoint(c.p1), sp.liftPoint(c.p2), sp.liftPoint(c.p3)}
}

func (sp SketchPlane3d[U, G, L]) ProjectCubicSpline(c CubicSpline3d[U, G]) CubicSpline2d[U, L] {
	return CubicSpline2d[U, L]{sp.projectPoint(c.p0), sp.projectPoint(c.p1), sp.projectPoint(c.p2), sp.projectPoint(c.p3)}
}
