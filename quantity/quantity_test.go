package quantity

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx is cmpopts.EquateApprox for any value whose underlying type is a
// float, which includes Quantity.
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

type pixelsPerMeter = Rate[Pixels, Meters]

func TestAtInverse(t *testing.T) {
	for _, r := range []float64{1, 96, 0.001, -3.5, 1e9} {
		rate := Quantity[pixelsPerMeter](r)
		for _, q := range []Quantity[Meters]{0, 1, -2.25, 12345.678} {
			px := At(rate, q)
			got := AtInverse(rate, px)
			if !got.EqualWithin(1e-9*max(1, q.Abs()), q) {
				t.Errorf("AtInverse(%g, At(%g, %g)) = %g", r, r, q, got)
			}
		}
	}
}

func TestPer(t *testing.T) {
	rate := Per(Quantity[Pixels](96), Quantity[Meters](0.0254))
	diff(t, Quantity[Pixels](96), At(rate, Quantity[Meters](0.0254)), approx(1e-9))
	inv := InverseRate(rate)
	diff(t, Quantity[Meters](0.0254), At(inv, Quantity[Pixels](96)), approx(1e-9))
}

func TestZeroRate(t *testing.T) {
	got := AtInverse(Quantity[pixelsPerMeter](0), Quantity[Pixels](1))
	if !got.IsInf() {
		t.Errorf("got %g, want infinity", got)
	}
}

func TestSqrt(t *testing.T) {
	q := Quantity[Meters](3)
	diff(t, q, Sqrt(Squared(q)))
	diff(t, q, Cbrt(Cubed(q)), approx(1e-12))
	if !Sqrt(Quantity[SquaredUnits[Meters]](-1)).IsNaN() {
		t.Error("square root of a negative quantity should be NaN")
	}
	diff(t, Quantity[Meters](4), Over(Product(Quantity[Meters](2), 6), 3))
}

func TestInterpolate(t *testing.T) {
	a, b := Quantity[Meters](2), Quantity[Meters](6)
	tests := []struct {
		t    float64
		want Quantity[Meters]
	}{
		{0, 2},
		{0.25, 3},
		{0.5, 4},
		{1, 6},
		{1.5, 8},
		{-1, -2},
	}
	for _, tt := range tests {
		diff(t, tt.want, Interpolate(a, b, tt.t))
	}
	diff(t, Quantity[Meters](4), Midpoint(a, b))
}

func TestRange(t *testing.T) {
	diff(t, []Quantity[Meters]{0, 0.25, 0.5, 0.75, 1}, Range[Meters](0, 1, 4))
	if got := Range[Meters](0, 1, 0); len(got) != 0 {
		t.Errorf("got %v, want empty range", got)
	}
}

func TestSumMinMax(t *testing.T) {
	qs := []Quantity[Meters]{3, -1, 4, 1.5}
	diff(t, Quantity[Meters](7.5), Sum(qs...))
	diff(t, Quantity[Meters](0), Sum[Meters]())

	lo, ok := Min(qs)
	diff(t, true, ok)
	diff(t, Quantity[Meters](-1), lo)
	hi, ok := Max(qs)
	diff(t, true, ok)
	diff(t, Quantity[Meters](4), hi)

	if _, ok := Min[Meters](nil); ok {
		t.Error("Min of an empty slice should be absent")
	}
	if _, ok := Max[Meters](nil); ok {
		t.Error("Max of an empty slice should be absent")
	}
}

func TestComparisons(t *testing.T) {
	a, b := Quantity[Meters](1), Quantity[Meters](2)
	diff(t, true, a.LessThan(b))
	diff(t, true, a.LessThanOrEqualTo(a))
	diff(t, false, a.GreaterThan(b))
	diff(t, true, b.GreaterThanOrEqualTo(a))
	diff(t, -1, a.Compare(b))
	diff(t, 0, a.Compare(a))
	diff(t, 1, b.Compare(a))
	diff(t, Quantity[Meters](2), Quantity[Meters](5).Clamp(2, -1))
	diff(t, Quantity[Meters](-1), Quantity[Meters](-5).Clamp(2, -1))
	diff(t, -1.0, Quantity[Meters](-0.5).Sign())
	if !math.IsNaN(Quantity[Meters](math.NaN()).Sign()) {
		t.Error("sign of NaN should be NaN")
	}
}

func TestArithmetic(t *testing.T) {
	a := Quantity[Meters](3)
	diff(t, Quantity[Meters](5), a.Plus(2))
	diff(t, Quantity[Meters](1), a.Minus(2))
	diff(t, Quantity[Meters](-3), a.Negate())
	diff(t, Quantity[Meters](3), a.Negate().Abs())
	diff(t, Quantity[Meters](7.5), a.MultiplyBy(2.5))
	diff(t, Quantity[Meters](1.5), a.DivideBy(2))
	diff(t, 1.5, a.Ratio(2))
	diff(t, "3", a.String())
	if !a.DivideBy(0).IsInf() {
		t.Error("division by zero should be infinite")
	}
}
