package graphics

import "testing"

func TestRect_Intersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)
	if got, want := a.Intersect(b), (Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	far := RectFromLTWH(200, 200, 10, 10)
	if got := a.Intersect(far); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestRect_ContainsAndUnion(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)
	if !r.Contains(Offset{X: 15, Y: 15}) {
		t.Error("expected point inside")
	}
	if r.Contains(Offset{X: 31, Y: 15}) {
		t.Error("expected point outside")
	}
	u := r.Union(RectFromLTWH(0, 0, 5, 5))
	if want := (Rect{Left: 0, Top: 0, Right: 30, Bottom: 30}); u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
	if !u.ContainsRect(r) {
		t.Error("union should contain its input")
	}
}

func TestColor_Components(t *testing.T) {
	c := RGBA(100, 143, 255, 128)
	r, g, b, a := c.RGBA8()
	if r != 100 || g != 143 || b != 255 || a != 128 {
		t.Errorf("RGBA8 = %d,%d,%d,%d", r, g, b, a)
	}
	if got := c.String(); got != "#648fff80" {
		t.Errorf("String = %q, want %q", got, "#648fff80")
	}
	if got := ColorBlack.WithAlpha(0.75).Alpha(); got < 0.74 || got > 0.76 {
		t.Errorf("WithAlpha(0.75).Alpha() = %g", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", RGB(255, 0, 0), false},
		{"00ff0080", RGBA(0, 255, 0, 128), false},
		{"#xyz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
