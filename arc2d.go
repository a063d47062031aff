package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

// Arc2d is a circular arc. It starts at angle start (measured from the
// positive X direction around its center) and sweeps through sweep radians;
// positive sweeps are counterclockwise.
type Arc2d[U, C any] struct {
	center r2.Vec
	radius float64
	start  float64
	sweep  float64
}

// Arc2dSweptAround returns the arc starting at start that sweeps around
// center by sweep.
func Arc2dSweptAround[U, C any](center Point2d[U, C], sweep angle.Angle, start Point2d[U, C]) Arc2d[U, C] {
	d := r2.Sub(start.p, center.p)
	return Arc2d[U, C]{
		center: center.p,
		radius: r2.Norm(d),
		start:  math.Atan2(d.Y, d.X),
		sweep:  float64(sweep),
	}
}

// Arc2dFrom returns the arc from start to end sweeping through sweep. It
// returns false if the points coincide, if sweep is zero or if sweep is a full
// turn.
func Arc2dFrom[U, C any](start, end Point2d[U, C], sweep angle.Angle) (Arc2d[U, C], bool) {
	chord := r2.Sub(end.p, start.p)
	d := r2.Norm(chord)
	half := 0.5 * float64(sweep)
	sin := math.Sin(half)
	if d == 0 || sin == 0 || math.Abs(float64(sweep)) >= 2*math.Pi {
		return Arc2d[U, C]{}, false
	}
	// The center lies on the chord's perpendicular bisector, to the left of
	// the chord for counterclockwise sweeps smaller than a half turn.
	h := 0.5 * d / math.Tan(half)
	mid := lerp2(start.p, end.p, 0.5)
	center := r2.Add(mid, r2.Scale(h/d, perp2(chord)))
	return Arc2dSweptAround(Point2d[U, C]{center}, sweep, start), true
}

// Arc2dThroughPoints returns the arc that starts at p1, passes through p2 and
// ends at p3. It returns false if the points are collinear.
func Arc2dThroughPoints[U, C any](p1, p2, p3 Point2d[U, C]) (Arc2d[U, C], bool) {
	c, ok := Circumcenter(p1, p2, p3)
	if !ok {
		return Arc2d[U, C]{}, false
	}
	a1 := math.Atan2(p1.p.Y-c.p.Y, p1.p.X-c.p.X)
	a3 := math.Atan2(p3.p.Y-c.p.Y, p3.p.X-c.p.X)
	var sweep float64
	if r2.Cross(r2.Sub(p2.p, p1.p), r2.Sub(p3.p, p2.p)) > 0 {
		sweep = positiveMod(a3-a1, 2*math.Pi)
	} else {
		sweep = -positiveMod(a1-a3, 2*math.Pi)
	}
	return Arc2d[U, C]{center: c.p, radius: r2.Norm(r2.Sub(p1.p, c.p)), start: a1, sweep: sweep}, true
}

func (a Arc2d[U, C]) CenterPoint() Point2d[U, C]   { return Point2d[U, C]{a.center} }
func (a Arc2d[U, C]) Radius() quantity.Quantity[U] { return quantity.Quantity[U](a.radius) }
func (a Arc2d[U, C]) StartAngle() angle.Angle      { return angle.Angle(a.start) }
func (a Arc2d[U, C]) SweptAngle() angle.Angle      { return angle.Angle(a.sweep) }

func (a Arc2d[U, C]) String() string {
	return fmt.Sprintf("Arc2d(%v, %g, %v, %v)", a.CenterPoint(), a.radius, a.StartAngle(), a.SweptAngle())
}

func (a Arc2d[U, C]) IsNaN() bool {
	return math.IsNaN(a.center.X) || math.IsNaN(a.center.Y) ||
		math.IsNaN(a.radius) || math.IsNaN(a.start) || math.IsNaN(a.sweep)
}

func (a Arc2d[U, C]) eval(t float64) r2.Vec {
	sin, cos := math.Sincos(a.start + t*a.sweep)
	return r2.Vec{X: a.center.X + a.radius*cos, Y: a.center.Y + a.radius*sin}
}

func (a Arc2d[U, C]) StartPoint() Point2d[U, C] { return Point2d[U, C]{a.eval(0)} }
func (a Arc2d[U, C]) EndPoint() Point2d[U, C]   { return Point2d[U, C]{a.eval(1)} }

func (a Arc2d[U, C]) PointOn(t float64) Point2d[U, C] {
	return Point2d[U, C]{a.eval(t)}
}

func (a Arc2d[U, C]) FirstDerivative(t float64) Vector2d[U, C] {
	sin, cos := math.Sincos(a.start + t*a.sweep)
	k := a.radius * a.sweep
	return Vector2d[U, C]{r2.Vec{X: -k * sin, Y: k * cos}}
}

func (a Arc2d[U, C]) SecondDerivative(t float64) Vector2d[U, C] {
	sin, cos := math.Sincos(a.start + t*a.sweep)
	k := -a.radius * a.sweep * a.sweep
	return Vector2d[U, C]{r2.Vec{X: k * cos, Y: k * sin}}
}

// MaxSecondDerivativeMagnitude returns r·sweep², the constant magnitude of
// the second derivative.
func (a Arc2d[U, C]) MaxSecondDerivativeMagnitude() quantity.Quantity[U] {
	return quantity.Quantity[U](a.radius * a.sweep * a.sweep)
}

func (a Arc2d[U, C]) Length() quantity.Quantity[U] {
	return quantity.Quantity[U](a.radius * math.Abs(a.sweep))
}

// BoundingBox returns the exact bounding box of the arc.
func (a Arc2d[U, C]) BoundingBox() BoundingBox2d[U, C] {
	b := hull2(a.eval(0), a.eval(1))
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		if sweepContains(th, a.start, a.sweep) {
			sin, cos := math.Sincos(th)
			b = hull2(b.Min, b.Max, r2.Vec{X: a.center.X + a.radius*cos, Y: a.center.Y + a.radius*sin})
		}
	}
	return BoundingBox2d[U, C]{b}
}

func (a Arc2d[U, C]) Reverse() Arc2d[U, C] {
	a.start += a.sweep
	a.sweep = -a.sweep
	return a
}

func (a Arc2d[U, C]) Segments(n int) Polyline2d[U, C] {
	return Polyline2d[U, C]{sample2(n, a.eval)}
}

func (a Arc2d[U, C]) Approximate(maxError quantity.Quantity[U]) Polyline2d[U, C] {
	return a.Segments(NumSegments(maxError, a.MaxSecondDerivativeMagnitude()))
}

// ToEllipticalArc returns the arc as an elliptical arc with equal radii.
func (a Arc2d[U, C]) ToEllipticalArc() EllipticalArc2d[U, C] {
	return EllipticalArc2d[U, C]{
		center: a.center,
		xdir:   r2.Vec{X: 1},
		ydir:   r2.Vec{Y: 1},
		rx:     a.radius,
		ry:     a.radius,
		start:  a.start,
		sweep:  a.sweep,
	}
}

func (a Arc2d[U, C]) TranslateBy(v Vector2d[U, C]) Arc2d[U, C] {
	a.center = r2.Add(a.center, v.v)
	return a
}

func (a Arc2d[U, C]) RotateAround(center Point2d[U, C], th angle.Angle) Arc2d[U, C] {
	return a.transform(rotateAbout2(float64(th), center.p))
}

func (a Arc2d[U, C]) ScaleAbout(center Point2d[U, C], scale float64) Arc2d[U, C] {
	return a.transform(scaleAbout2(scale, center.p))
}

// MirrorAcross reflects the arc, which reverses its sweep direction.
func (a Arc2d[U, C]) MirrorAcross(axis Axis2d[U, C]) Arc2d[U, C] {
	return a.transform(reflect2(axis.origin, axis.dir))
}

func (a Arc2d[U, C]) transform(aff affine2) Arc2d[U, C] {
	sin, cos := math.Sincos(a.start)
	d := aff.vector(r2.Vec{X: cos, Y: sin})
	sweep := a.sweep
	if aff.reflects() {
		sweep = -sweep
	}
	return Arc2d[U, C]{
		center: aff.point(a.center),
		radius: aff.scale() * a.radius,
		start:  math.Atan2(d.Y, d.X),
		sweep:  sweep,
	}
}

func (f Frame2d[U, G, L]) RelativeArc(a Arc2d[U, G]) Arc2d[U, L] {
	return Arc2d[U, L](a.transform(f.toLocal()))
}

func (f Frame2d[U, G, L]) PlaceArc(a Arc2d[U, L]) Arc2d[U, G] {
	return Arc2d[U, G](a.transform(f.toGlobal()))
}

// sweepContains reports whether the angle th lies within the range swept from
// start by sweep.
func sweepContains(th, start, sweep float64) bool {
	if math.Abs(sweep) >= 2*math.Pi {
		return true
	}
	if sweep >= 0 {
		return positiveMod(th-start, 2*math.Pi) <= sweep
	}
	return positiveMod(start-th, 2*math.Pi) <= -sweep
}

func positiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
