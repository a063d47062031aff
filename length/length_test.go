package length

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/geometry/quantity"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx is cmpopts.EquateApprox for any value whose underlying type is a
// float, which includes quantities.
func approx(margin float64) cmp.Option {
	return cmp.FilterValues(func(x, y any) bool {
		return isFloat(x) && isFloat(y)
	}, cmp.Comparer(func(x, y any) bool {
		a, b := reflect.ValueOf(x).Float(), reflect.ValueOf(y).Float()
		return a == b || math.Abs(a-b) <= margin
	}))
}

func isFloat(x any) bool {
	k := reflect.ValueOf(x).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func TestUnits(t *testing.T) {
	opt := approx(1e-12)
	diff(t, Meters(1), Centimeters(100), opt)
	diff(t, Meters(1), Millimeters(1000), opt)
	diff(t, Kilometers(1), Meters(1000), opt)
	diff(t, Micrometers(1), Millimeters(0.001), opt)
	diff(t, Feet(1), Inches(12), opt)
	diff(t, Yards(1), Feet(3), opt)
	diff(t, Miles(1), Meters(1609.344), opt)
	diff(t, 2.54, InCentimeters(Inches(1)), opt)
	diff(t, 5280.0, InFeet(Miles(1)), opt)
	diff(t, 1.0, InYards(Feet(3)), opt)
	diff(t, 1.0, InMiles(Yards(1760)), opt)
	diff(t, 1000.0, InMeters(Kilometers(1)), opt)
	diff(t, 1.0, InKilometers(Meters(1000)), opt)
	diff(t, 10.0, InMillimeters(Centimeters(1)), opt)
	diff(t, 1000.0, InMicrometers(Millimeters(1)), opt)
	diff(t, 12.0, InInches(Feet(1)), opt)
}

func TestDerived(t *testing.T) {
	l := Meters(3)
	diff(t, SquareMeters(9), quantity.Squared(l))
	diff(t, 27.0, InCubicMeters(quantity.Cubed(l)))
	diff(t, 9.0, InSquareMeters(quantity.Squared(l)))
	diff(t, CubicMeters(27), quantity.Cubed(l))
}
