package angle

import (
	"math"
	"reflect"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx is cmpopts.EquateApprox for any value whose underlying type is a
// float, which includes Angle and s1.Angle.
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

func TestConversions(t *testing.T) {
	opt := approx(1e-12)
	diff(t, Radians(math.Pi), Degrees(180), opt)
	diff(t, Degrees(-90), Turns(-0.25), opt)
	diff(t, 90.0, InDegrees(HalfPi), opt)
	diff(t, 0.5, InTurns(Pi), opt)
	diff(t, math.Pi, InRadians(Degrees(180)), opt)
}

func TestTrigonometry(t *testing.T) {
	opt := approx(1e-12)
	diff(t, 0.5, Sin(Degrees(30)), opt)
	diff(t, 0.5, Cos(Degrees(60)), opt)
	diff(t, 1.0, Tan(Degrees(45)), opt)
	diff(t, Degrees(30), Asin(0.5), opt)
	diff(t, Degrees(60), Acos(0.5), opt)
	diff(t, Degrees(45), Atan(1), opt)
	diff(t, Degrees(135), Atan2(Radians(1), Radians(-1)), opt)
	if !Asin(2).IsNaN() {
		t.Error("Asin(2) should be NaN")
	}
}

func TestNormalize(t *testing.T) {
	opt := approx(1e-12)
	tests := []struct {
		in, want Angle
	}{
		{Degrees(0), Degrees(0)},
		{Degrees(180), Degrees(180)},
		{Degrees(-180), Degrees(180)},
		{Degrees(270), Degrees(-90)},
		{Degrees(720 + 45), Degrees(45)},
		{Degrees(-390), Degrees(-30)},
	}
	for _, tt := range tests {
		diff(t, tt.want, Normalize(tt.in), opt)
	}
}

func TestS1(t *testing.T) {
	diff(t, 45*s1.Degree, ToS1(Degrees(45)), approx(1e-12))
	diff(t, Degrees(45), FromS1(45*s1.Degree), approx(1e-12))
}
