// Package geometry provides 2D and 3D geometric primitives, shapes and curves
// whose units and coordinate systems are checked by the compiler.
//
// # Units and coordinate systems
//
// Every geometric type carries two phantom type parameters: U, the units its
// lengths are measured in, and C, the coordinate system it lives in. A
// Point2d[quantity.Meters, World] and a Point2d[quantity.Pixels, Screen] are
// different types, and mixing them is a compile error rather than a bug found
// at runtime. The parameters are zero-size marker types; values are stored as
// plain float64 in base units.
//
// Lengths are [quantity.Quantity] values. Angles are [angle.Angle] values,
// which are quantities in radians. Products of lengths have squared or cubed
// units: the area of a Circle2d[U, C] is a Quantity[SquaredUnits[U]].
//
// # Frames
//
// Coordinate systems are related through frames. A [Frame2d] or [Frame3d] with
// type parameters [U, G, L] is defined in global coordinates G and defines
// local coordinates L. For every type T, frames provide RelativeT, which
// expresses a value given in G in terms of L, and PlaceT, which does the
// opposite. A [SketchPlane3d] similarly relates 2D coordinates to a plane in
// 3D, lifting 2D values with methods named XOn and projecting 3D values with
// methods named ProjectX.
//
// # Transformations
//
// All types support the same set of transformations: TranslateBy,
// RotateAround, ScaleAbout and MirrorAcross, as well as ProjectOnto where the
// result remains the same kind of value. Transformations never mutate their
// receiver. Directions reverse under negative scaling, radii and lengths stay
// non-negative, and mirroring flips the handedness of attached frames.
//
// # Curves and surfaces
//
// Curves are parameterized over t ∈ [0, 1]. Each curve type can be
// approximated by a polyline to within a given error; see [NumSegments] for
// how the number of segments is chosen. [Curve2d] and [Curve3d] hold any one
// of the curve types, and [Surface3d] holds any one of the surface types.
//
// # Absent values
//
// Operations that have no result for degenerate input, such as the direction
// of a zero vector or the circle through three collinear points, return an
// additional boolean that is false when the result is absent. Other
// floating-point edge cases propagate NaN and infinities, which can be
// detected with the IsNaN and IsInf methods.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Inigo Quilez: bounding boxes of ellipses]
//   - [Gauss–Legendre quadrature]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Inigo Quilez: bounding boxes of ellipses]: https://iquilezles.org/articles/ellipses/
// [Gauss–Legendre quadrature]: https://en.wikipedia.org/wiki/Gauss%E2%80%93Legendre_quadrature
package geometry
