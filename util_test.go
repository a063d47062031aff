package geometry

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honnef.co/go/geometry/quantity"
)

// Coordinate systems used throughout the tests.
type (
	world struct{}
	local struct{}
)

type m = quantity.Meters

const epsilon = 1e-9

// exportAll lets cmp look into the unexported coordinates of geometric values.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, exportAll)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx is cmpopts.EquateApprox for any value whose underlying type is a
// float, which includes quantities and angles.
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

// near compares geometric values up to floating point noise.
func near(t *testing.T, want, got any) {
	t.Helper()
	diff(t, want, got, approx(epsilon), cmpopts.EquateEmpty())
}

func assertNear2(t *testing.T, got, want r2.Vec, eps float64) {
	t.Helper()
	if d := r2.Norm(r2.Sub(got, want)); d > eps {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertNear3(t *testing.T, got, want r3.Vec, eps float64) {
	t.Helper()
	if d := r3.Norm(r3.Sub(got, want)); d > eps {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertNearQ[U any](t *testing.T, got, want quantity.Quantity[U], eps float64) {
	t.Helper()
	if !got.EqualWithin(quantity.Quantity[U](eps), want) {
		t.Fatalf("got %g, expected %g", got, want)
	}
}

func q(v float64) quantity.Quantity[m]      { return quantity.Quantity[m](v) }
func pt2(x, y float64) Point2d[m, world]    { return XY[m, world](x, y) }
func pt3(x, y, z float64) Point3d[m, world] { return XYZ[m, world](x, y, z) }
