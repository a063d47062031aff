package geometry

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/quantity"
)

type SurfaceKind int

const (
	// A flat triangle.
	TriangularSurfaceKind SurfaceKind = iota + 1
	// A flat rectangle.
	RectangularSurfaceKind
	// A flat disk.
	CircularSurfaceKind
	// A flat elliptical disk.
	EllipticalSurfaceKind
	// A profile curve swept along a vector.
	ExtrusionSurfaceKind
	// A profile curve swept around an axis.
	RevolutionSurfaceKind
	// A flat region bounded by a closed polygon.
	PlanarSurfaceKind
)

func (k SurfaceKind) String() string {
	switch k {
	case TriangularSurfaceKind:
		return "TriangularSurface"
	case RectangularSurfaceKind:
		return "RectangularSurface"
	case CircularSurfaceKind:
		return "CircularSurface"
	case EllipticalSurfaceKind:
		return "EllipticalSurface"
	case ExtrusionSurfaceKind:
		return "ExtrusionSurface"
	case RevolutionSurfaceKind:
		return "RevolutionSurface"
	case PlanarSurfaceKind:
		return "PlanarSurface"
	default:
		return fmt.Sprintf("SurfaceKind(%d)", int(k))
	}
}

// Handedness selects which side of a surface its normal points to.
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "RightHanded"
	case LeftHanded:
		return "LeftHanded"
	default:
		return fmt.Sprintf("Handedness(%d)", int(h))
	}
}

func (h Handedness) flip() Handedness {
	if h == LeftHanded {
		return RightHanded
	}
	return LeftHanded
}

// Surface3d is one of a closed set of surface kinds. The zero value is not a
// valid surface.
//
// A right-handed surface's normal follows the right-hand rule for its
// parameterization. Flipping a surface or mirroring it toggles its
// handedness.
type Surface3d[U, C any] struct {
	kind       SurfaceKind
	handedness Handedness
	// Triangles store their vertices. Rectangles, disks, ellipses and planar
	// regions store their origin and in-plane X and Y directions. Extrusions
	// store their vector in p[0] and revolutions their axis in p[0] and p[1].
	p [3]r3.Vec
	// Rectangles store width and height, disks their radius, ellipses both
	// radii and revolutions their swept angle.
	r [2]float64
	// Profile of extrusions and revolutions.
	profile Curve3d[U, C]
	// Boundary of planar regions, in the local coordinates of p.
	polygon []r2.Vec
}

func TriangularSurface3d[U, C any](t Triangle3d[U, C]) Surface3d[U, C] {
	return Surface3d[U, C]{kind: TriangularSurfaceKind, p: [3]r3.Vec{t.p0, t.p1, t.p2}}
}

func RectangularSurface3d[U, C any](r Rectangle3d[U, C]) Surface3d[U, C] {
	return Surface3d[U, C]{
		kind: RectangularSurfaceKind,
		p:    [3]r3.Vec{r.center, r.x, r.y},
		r:    [2]float64{r.w, r.h},
	}
}

// CircularSurface3d returns the disk bounded by c. Its normal is the circle's
// axial direction.
func CircularSurface3d[U, C any](c Circle3d[U, C]) Surface3d[U, C] {
	x := perpendicularTo3(c.normal)
	return Surface3d[U, C]{
		kind: CircularSurfaceKind,
		p:    [3]r3.Vec{c.center, x, r3.Cross(c.normal, x)},
		r:    [2]float64{c.radius},
	}
}

// EllipticalSurface3d returns the region bounded by e, lifted onto sp.
func EllipticalSurface3d[U, C, L any](sp SketchPlane3d[U, C, L], e Ellipse2d[U, L]) Surface3d[U, C] {
	return Surface3d[U, C]{
		kind: EllipticalSurfaceKind,
		p:    [3]r3.Vec{sp.liftPoint(e.center), sp.liftVector(e.xdir), sp.liftVector(e.ydir)},
		r:    [2]float64{e.rx, e.ry},
	}
}

// PlanarSurface3d returns the region of sp bounded by boundary. The boundary
// is closed implicitly; its last vertex need not repeat the first. The normal
// is that of sp regardless of the boundary's orientation.
func PlanarSurface3d[U, C, L any](sp SketchPlane3d[U, C, L], boundary Polyline2d[U, L]) Surface3d[U, C] {
	return Surface3d[U, C]{
		kind:    PlanarSurfaceKind,
		p:       [3]r3.Vec{sp.origin, sp.x, sp.y},
		polygon: append([]r2.Vec(nil), boundary.vertices...),
	}
}

// ExtrusionSurface3d returns the surface swept by profile as it moves along v.
// Its normal is the derivative of the profile crossed with v.
func ExtrusionSurface3d[U, C any](profile Curve3d[U, C], v Vector3d[U, C]) Surface3d[U, C] {
	return Surface3d[U, C]{kind: ExtrusionSurfaceKind, p: [3]r3.Vec{v.v}, profile: profile}
}

// RevolutionSurface3d returns the surface swept by profile as it rotates
// around axis by sweep. Its normal is the profile's direction of rotation
// crossed with its derivative.
func RevolutionSurface3d[U, C any](profile Curve3d[U, C], axis Axis3d[U, C], sweep angle.Angle) Surface3d[U, C] {
	return Surface3d[U, C]{
		kind:    RevolutionSurfaceKind,
		p:       [3]r3.Vec{axis.origin, axis.dir},
		r:       [2]float64{float64(sweep)},
		profile: profile,
	}
}

func (s Surface3d[U, C]) Kind() SurfaceKind      { return s.kind }
func (s Surface3d[U, C]) Handedness() Handedness { return s.handedness }

// Flip returns the surface with its normal reversed.
func (s Surface3d[U, C]) Flip() Surface3d[U, C] {
	s.handedness = s.handedness.flip()
	return s
}

func (s Surface3d[U, C]) invalid() string {
	return fmt.Sprintf("invalid Surface3d kind %v", s.kind)
}

func (s Surface3d[U, C]) Triangle() (Triangle3d[U, C], bool) {
	return Triangle3d[U, C]{s.p[0], s.p[1], s.p[2]}, s.kind == TriangularSurfaceKind
}

func (s Surface3d[U, C]) Rectangle() (Rectangle3d[U, C], bool) {
	return Rectangle3d[U, C]{s.p[0], s.p[1], s.p[2], s.r[0], s.r[1]}, s.kind == RectangularSurfaceKind
}

func (s Surface3d[U, C]) Circle() (Circle3d[U, C], bool) {
	if s.kind != CircularSurfaceKind {
		return Circle3d[U, C]{}, false
	}
	return Circle3d[U, C]{s.p[0], r3.Cross(s.p[1], s.p[2]), s.r[0]}, true
}

// Profile returns the profile curve of an extrusion or revolution surface.
func (s Surface3d[U, C]) Profile() (Curve3d[U, C], bool) {
	return s.profile, s.kind == ExtrusionSurfaceKind || s.kind == RevolutionSurfaceKind
}

func (s Surface3d[U, C]) ExtrusionVector() (Vector3d[U, C], bool) {
	if s.kind != ExtrusionSurfaceKind {
		return Vector3d[U, C]{}, false
	}
	return Vector3d[U, C]{s.p[0]}, true
}

// RevolutionAxis returns the axis and swept angle of a revolution surface.
func (s Surface3d[U, C]) RevolutionAxis() (Axis3d[U, C], angle.Angle, bool) {
	if s.kind != RevolutionSurfaceKind {
		return Axis3d[U, C]{}, 0, false
	}
	return Axis3d[U, C]{s.p[0], s.p[1]}, angle.Angle(s.r[0]), true
}

func (s Surface3d[U, C]) String() string {
	switch s.kind {
	case TriangularSurfaceKind, RectangularSurfaceKind, CircularSurfaceKind, EllipticalSurfaceKind, PlanarSurfaceKind:
		return fmt.Sprintf("%v(%v, %v)", s.kind, s.handedness, Point3d[U, C]{s.p[0]})
	case ExtrusionSurfaceKind, RevolutionSurfaceKind:
		return fmt.Sprintf("%v(%v, %v)", s.kind, s.handedness, s.profile)
	default:
		return s.invalid()
	}
}

// Normal returns the normal direction of a flat surface, accounting for its
// handedness. It returns false for curved surfaces and degenerate triangles.
func (s Surface3d[U, C]) Normal() (Direction3d[C], bool) {
	var n r3.Vec
	switch s.kind {
	case TriangularSurfaceKind:
		var ok bool
		n, ok = normal3(s.p[0], s.p[1], s.p[2])
		if !ok {
			return Direction3d[C]{}, false
		}
	case RectangularSurfaceKind, CircularSurfaceKind, EllipticalSurfaceKind, PlanarSurfaceKind:
		n = r3.Cross(s.p[1], s.p[2])
	case ExtrusionSurfaceKind, RevolutionSurfaceKind:
		return Direction3d[C]{}, false
	default:
		panic(s.invalid())
	}
	if s.handedness == LeftHanded {
		n = r3.Scale(-1, n)
	}
	return Direction3d[C]{n}, true
}

// Area returns the area of the surface. Flat surfaces are measured exactly.
// Extrusions and revolutions are integrated numerically to within maxError;
// if maxError is not positive, DefaultTolerance is used instead.
func (s Surface3d[U, C]) Area(maxError quantity.Quantity[U]) quantity.Quantity[quantity.SquaredUnits[U]] {
	accuracy := float64(maxError)
	if !(accuracy > 0) {
		accuracy = DefaultTolerance
	}
	var a float64
	switch s.kind {
	case TriangularSurfaceKind:
		a = 0.5 * r3.Norm(r3.Triangle{s.p[0], s.p[1], s.p[2]}.Normal())
	case RectangularSurfaceKind:
		a = s.r[0] * s.r[1]
	case CircularSurfaceKind:
		a = math.Pi * s.r[0] * s.r[0]
	case EllipticalSurfaceKind:
		a = math.Pi * s.r[0] * s.r[1]
	case PlanarSurfaceKind:
		if len(s.polygon) >= 3 {
			a = math.Abs(s.polygonXY().Area())
		}
	case ExtrusionSurfaceKind:
		v := s.p[0]
		a = integrate(func(t float64) float64 {
			return r3.Norm(r3.Cross(s.profile.FirstDerivative(t).v, v))
		}, 0, 1, accuracy)
	case RevolutionSurfaceKind:
		// Each point of the profile sweeps an arc of length ρ·θ, where ρ is its
		// distance from the axis.
		o, d := s.p[0], s.p[1]
		a = math.Abs(s.r[0]) * integrate(func(t float64) float64 {
			q := r3.Sub(s.profile.PointOn(t).p, o)
			rho := r3.Norm(r3.Sub(q, r3.Scale(r3.Dot(q, d), d)))
			return rho * r3.Norm(s.profile.FirstDerivative(t).v)
		}, 0, 1, accuracy)
	default:
		panic(s.invalid())
	}
	return quantity.Quantity[quantity.SquaredUnits[U]](a)
}

// polygonXY returns the boundary of a planar surface as a closed XY polygon in
// its local coordinates.
func (s Surface3d[U, C]) polygonXY() *geom.Polygon {
	flat := make([]float64, 0, 2*len(s.polygon)+2)
	for _, v := range s.polygon {
		flat = append(flat, v.X, v.Y)
	}
	if first, last := s.polygon[0], s.polygon[len(s.polygon)-1]; first != last {
		flat = append(flat, first.X, first.Y)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
}

// BoundingBox returns a box containing the surface. Boxes of flat surfaces and
// extrusions are exact. Boxes of revolutions are computed from an
// approximation of the profile and may be off by up to maxError.
func (s Surface3d[U, C]) BoundingBox(maxError quantity.Quantity[U]) BoundingBox3d[U, C] {
	var b r3.Box
	switch s.kind {
	case TriangularSurfaceKind:
		b = hull3(s.p[0], s.p[1], s.p[2])
	case RectangularSurfaceKind:
		r, _ := s.Rectangle()
		b = r.BoundingBox().b
	case CircularSurfaceKind:
		b = diskHull3(s.p[0], r3.Cross(s.p[1], s.p[2]), s.r[0])
	case EllipticalSurfaceKind:
		u := r3.Scale(s.r[0], s.p[1])
		v := r3.Scale(s.r[1], s.p[2])
		ext := r3.Vec{
			X: math.Hypot(u.X, v.X),
			Y: math.Hypot(u.Y, v.Y),
			Z: math.Hypot(u.Z, v.Z),
		}
		b = r3.Box{Min: r3.Sub(s.p[0], ext), Max: r3.Add(s.p[0], ext)}
	case PlanarSurfaceKind:
		if len(s.polygon) == 0 {
			b = hull3(s.p[0])
		}
		for i, v := range s.polygon {
			q := r3.Add(s.p[0], r3.Add(r3.Scale(v.X, s.p[1]), r3.Scale(v.Y, s.p[2])))
			if i == 0 {
				b = hull3(q)
			} else {
				b = extend3(b, q)
			}
		}
	case ExtrusionSurfaceKind:
		b = s.profile.BoundingBox().b
		b = extend3(extend3(b, r3.Add(b.Min, s.p[0])), r3.Add(b.Max, s.p[0]))
	case RevolutionSurfaceKind:
		pl := s.profile.Approximate(maxError)
		if pl.NumVertices() == 0 {
			pl = s.profile.Segments(1)
		}
		o, d := s.p[0], s.p[1]
		for i, q := range pl.vertices {
			rel := r3.Sub(q, o)
			foot := r3.Add(o, r3.Scale(r3.Dot(rel, d), d))
			u := r3.Sub(q, foot)
			arc := arcHull3(foot, u, r3.Cross(d, u), 0, s.r[0])
			if i == 0 {
				b = arc
			} else {
				b = extend3(extend3(b, arc.Min), arc.Max)
			}
		}
	default:
		panic(s.invalid())
	}
	return BoundingBox3d[U, C]{b}
}

func (s Surface3d[U, C]) TranslateBy(v Vector3d[U, C]) Surface3d[U, C] {
	return s.transform(translate3(v.v))
}

func (s Surface3d[U, C]) RotateAround(axis Axis3d[U, C], a angle.Angle) Surface3d[U, C] {
	return s.transform(rotateAbout3(float64(a), axis.origin, axis.dir))
}

func (s Surface3d[U, C]) ScaleAbout(center Point3d[U, C], scale float64) Surface3d[U, C] {
	return s.transform(scaleAbout3(scale, center.p))
}

// MirrorAcross reflects the surface across plane. The handedness of the
// result is toggled so that its normal is the mirror image of the original.
func (s Surface3d[U, C]) MirrorAcross(plane Plane3d[U, C]) Surface3d[U, C] {
	return s.transform(reflect3(plane.origin, plane.normal))
}

func (s Surface3d[U, C]) transform(aff affine3) Surface3d[U, C] {
	out := Surface3d[U, C]{kind: s.kind, handedness: s.handedness}
	if aff.reflects() {
		out.handedness = out.handedness.flip()
	}
	sc := aff.scale()
	switch s.kind {
	case TriangularSurfaceKind:
		out.p = [3]r3.Vec{aff.point(s.p[0]), aff.point(s.p[1]), aff.point(s.p[2])}
	case RectangularSurfaceKind, CircularSurfaceKind, EllipticalSurfaceKind:
		out.p = [3]r3.Vec{aff.point(s.p[0]), aff.direction(s.p[1]), aff.direction(s.p[2])}
		out.r = [2]float64{s.r[0] * sc, s.r[1] * sc}
	case PlanarSurfaceKind:
		out.p = [3]r3.Vec{aff.point(s.p[0]), aff.direction(s.p[1]), aff.direction(s.p[2])}
		out.polygon = lo.Map(s.polygon, func(v r2.Vec, _ int) r2.Vec { return r2.Scale(sc, v) })
	case ExtrusionSurfaceKind:
		// The profile's derivative and the vector both map linearly, so the
		// sign of their cross product follows the handedness toggle.
		out.p[0] = aff.vector(s.p[0])
		out.profile = s.profile.transform(aff)
	case RevolutionSurfaceKind:
		out.p = [3]r3.Vec{aff.point(s.p[0]), aff.direction(s.p[1])}
		out.r[0] = s.r[0]
		if aff.reflects() {
			// A mirrored rotation turns the other way around the mirrored
			// axis.
			out.r[0] = -s.r[0]
		}
		out.profile = s.profile.transform(aff)
	default:
		panic(s.invalid())
	}
	return out
}

func (f Frame3d[U, G, L]) RelativeSurface(s Surface3d[U, G]) Surface3d[U, L] {
	t := s.transform(f.toLocal())
	return Surface3d[U, L]{t.kind, t.handedness, t.p, t.r, Curve3d[U, L](t.profile), t.polygon}
}

func (f Frame3d[U, G, L]) PlaceSurface(s Surface3d[U, L]) Surface3d[U, G] {
	t := s.transform(f.toGlobal())
	return Surface3d[U, G]{t.kind, t.handedness, t.p, t.r, Curve3d[U, G](t.profile), t.polygon}
}
