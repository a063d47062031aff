// Package length provides constructors and accessors for lengths, areas and
// volumes in metric and imperial units. Internally, everything is stored in
// meters.
package length

import "honnef.co/go/geometry/quantity"

type (
	Length = quantity.Quantity[quantity.Meters]
	Area   = quantity.Quantity[quantity.SquaredUnits[quantity.Meters]]
	Volume = quantity.Quantity[quantity.CubedUnits[quantity.Meters]]
)

const (
	meter      = 1
	kilometer  = 1000
	centimeter = 0.01
	millimeter = 0.001
	micrometer = 1e-6
	inch       = 0.0254
	foot       = 12 * inch
	yard       = 3 * foot
	mile       = 1760 * yard
)

func Meters(m float64) Length      { return Length(m * meter) }
func Kilometers(m float64) Length  { return Length(m * kilometer) }
func Centimeters(m float64) Length { return Length(m * centimeter) }
func Millimeters(m float64) Length { return Length(m * millimeter) }
func Micrometers(m float64) Length { return Length(m * micrometer) }
func Inches(m float64) Length      { return Length(m * inch) }
func Feet(m float64) Length        { return Length(m * foot) }
func Yards(m float64) Length       { return Length(m * yard) }
func Miles(m float64) Length       { return Length(m * mile) }

func InMeters(l Length) float64      { return float64(l) / meter }
func InKilometers(l Length) float64  { return float64(l) / kilometer }
func InCentimeters(l Length) float64 { return float64(l) / centimeter }
func InMillimeters(l Length) float64 { return float64(l) / millimeter }
func InMicrometers(l Length) float64 { return float64(l) / micrometer }
func InInches(l Length) float64      { return float64(l) / inch }
func InFeet(l Length) float64        { return float64(l) / foot }
func InYards(l Length) float64       { return float64(l) / yard }
func InMiles(l Length) float64       { return float64(l) / mile }

func SquareMeters(a float64) Area    { return Area(a) }
func InSquareMeters(a Area) float64  { return float64(a) }
func CubicMeters(v float64) Volume   { return Volume(v) }
func InCubicMeters(v Volume) float64 { return float64(v) }
