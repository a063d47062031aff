package geometry_test

import (
	"fmt"

	"honnef.co/go/geometry"
	"honnef.co/go/geometry/angle"
	"honnef.co/go/geometry/length"
	"honnef.co/go/geometry/quantity"
)

// Marker types for coordinate systems.
type (
	World struct{}
	Local struct{}
)

func ExampleFrame2d() {
	origin := geometry.XY[quantity.Meters, World](2, 1)
	f := geometry.Frame2dWithXDirection[Local](origin, geometry.Direction2dFromAngle[World](angle.Degrees(90)))

	p := f.PlacePoint(geometry.XY[quantity.Meters, Local](1, 0))
	fmt.Printf("%.3f %.3f\n", p.X().Float64(), p.Y().Float64())
	// Output:
	// 2.000 2.000
}

func ExampleCircle2d_Area() {
	c := geometry.Circle2dWithRadius(geometry.XY[quantity.Meters, World](0, 0), length.Meters(2))
	fmt.Printf("%.3f m²\n", length.InSquareMeters(c.Area()))
	// Output:
	// 12.566 m²
}

func ExampleArc2d_Approximate() {
	center := geometry.XY[quantity.Meters, World](0, 0)
	arc := geometry.Arc2dSweptAround(center, angle.Degrees(180), geometry.XY[quantity.Meters, World](1, 0))

	pl := arc.Approximate(length.Centimeters(1))
	fmt.Println(len(pl.Vertices()))
	// Output:
	// 13
}

func ExampleNumSegments() {
	fmt.Println(geometry.NumSegments[quantity.Unitless](0.125, 100))
	fmt.Println(geometry.NumSegments[quantity.Unitless](0, 100))
	// Output:
	// 10
	// 0
}

func ExampleCone3d_Volume() {
	base := geometry.XYZ[quantity.Meters, World](0, 0, 0)
	tip := geometry.XYZ[quantity.Meters, World](0, 0, 3)
	c, ok := geometry.Cone3dFrom(base, tip, length.Meters(1))
	if !ok {
		panic("degenerate cone")
	}
	fmt.Printf("%.4f m³\n", length.InCubicMeters(c.Volume()))
	// Output:
	// 3.1416 m³
}

func ExampleSketchPlane3d_PointOn() {
	sp := geometry.XYSketchPlane[quantity.Meters, World, Local]().Offset(length.Meters(1))
	p := sp.PointOn(geometry.XY[quantity.Meters, Local](3, 4))
	fmt.Printf("%.1f %.1f %.1f\n", p.X().Float64(), p.Y().Float64(), p.Z().Float64())
	// Output:
	// 3.0 4.0 1.0
}
