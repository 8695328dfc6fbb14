package geom

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"zero stays zero", Vector2{}, Vector2{}},
		{"axis", Vec(0, -3), Vec(0, -1)},
		{"diagonal", Vec(1, 1), Vec(1/math.Sqrt2, 1/math.Sqrt2)},
		{"3-4-5", Vec(3, 4), Vec(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeHasUnitLength(t *testing.T) {
	for _, v := range []Vector2{Vec(1, 1), Vec(-1, 1), Vec(5, -2), Vec(0.1, 0)} {
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-9 {
			t.Errorf("|Normalize(%v)| = %f, want 1", v, l)
		}
	}
}

func TestVectorArithmetic(t *testing.T) {
	v := Vec(1, 2).Add(Vec(3, 4)).Scale(2).Sub(Vec(1, 1))
	if v != Vec(7, 11) {
		t.Errorf("got %v, want (7, 11)", v)
	}
	if !(Vector2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
}
