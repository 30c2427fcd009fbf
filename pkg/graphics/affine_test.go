package graphics

import (
	"math"
	"testing"
)

func TestAffine_MulAppliesRightFirst(t *testing.T) {
	parent := Translate(10, 20)
	local := Scale(2, 2)
	got := parent.Mul(local).TransformPoint(Offset{X: 1, Y: 1})
	want := Offset{X: 12, Y: 22}
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestAffine_IdentityIsNeutral(t *testing.T) {
	m := Translate(3, 4).Mul(Rotate(0.5))
	if !Identity().Mul(m).ApproxEqual(m) {
		t.Errorf("I*M = %v, want %v", Identity().Mul(m), m)
	}
	if !m.Mul(Identity()).ApproxEqual(m) {
		t.Errorf("M*I = %v, want %v", m.Mul(Identity()), m)
	}
}

func TestAffine_TranslationsCompose(t *testing.T) {
	got := Translate(5, 5).Mul(Translate(10, -3))
	if want := Translate(15, 2); got != want {
		t.Errorf("composed = %v, want %v", got, want)
	}
	if off := got.Translation(); off != (Offset{X: 15, Y: 2}) {
		t.Errorf("Translation() = %v, want (15,2)", off)
	}
}

func TestAffine_TransformRectBBox(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		r    Rect
		want Rect
	}{
		{"identity", Identity(), RectFromLTWH(0, 0, 10, 20), RectFromLTWH(0, 0, 10, 20)},
		{"translate", Translate(5, 7), RectFromLTWH(0, 0, 10, 20), RectFromLTWH(5, 7, 10, 20)},
		{"scale", Scale(2, 3), RectFromLTWH(1, 1, 10, 10), RectFromLTWH(2, 3, 20, 30)},
		{"negative scale", Scale(-1, 1), RectFromLTWH(0, 0, 10, 10), RectFromLTWH(-10, 0, 10, 10)},
		{"quarter turn", Rotate(math.Pi / 2), RectFromLTWH(0, 0, 10, 20), RectFromLTWH(-20, 0, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformRectBBox(tt.r)
			if !floatEqual(got.Left, tt.want.Left) || !floatEqual(got.Top, tt.want.Top) ||
				!floatEqual(got.Right, tt.want.Right) || !floatEqual(got.Bottom, tt.want.Bottom) {
				t.Errorf("TransformRectBBox = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAffine_RotateBBoxGrows(t *testing.T) {
	r := RectFromLTWH(-5, -5, 10, 10)
	got := Rotate(math.Pi / 4).TransformRectBBox(r)
	half := 5 * math.Sqrt2
	if !floatEqual(got.Width(), 2*half) || !floatEqual(got.Height(), 2*half) {
		t.Errorf("rotated bbox = %v, want square of side %g", got, 2*half)
	}
}
