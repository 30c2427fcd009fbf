package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/felt-ui/felt/pkg/graphics"
)

func TestDefault_IsShared(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	b := MustDefault()
	if a != b {
		t.Error("Default() returned different faces")
	}
}

func TestLayout_AdvancesMonotonically(t *testing.T) {
	line := MustDefault().Layout("Frame Time", 16)
	if got, want := len(line.Run.Glyphs), len("Frame Time"); got != want {
		t.Fatalf("glyph count = %d, want %d", got, want)
	}
	for i := 1; i < len(line.Run.Glyphs); i++ {
		if line.Run.Glyphs[i].X <= line.Run.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%g not after glyph %d at x=%g",
				i, line.Run.Glyphs[i].X, i-1, line.Run.Glyphs[i-1].X)
		}
	}
	if line.Width <= 0 {
		t.Errorf("Width = %g, want > 0", line.Width)
	}
}

func TestLayout_ScalesWithSize(t *testing.T) {
	f := MustDefault()
	small := f.Measure("FPS", 10)
	large := f.Measure("FPS", 20)
	if large <= small {
		t.Errorf("Measure at 20 = %g, not larger than at 10 = %g", large, small)
	}
}

func TestLayout_Empty(t *testing.T) {
	line := MustDefault().Layout("", 12)
	if !line.Run.IsEmpty() || line.Width != 0 {
		t.Errorf("empty layout = %+v", line)
	}
}

func TestGlyphPath_SitsOnBaseline(t *testing.T) {
	f := MustDefault()
	line := f.Layout("H", 20)
	p := f.GlyphPath(line.Run.Glyphs[0].ID, 20)
	if p.IsEmpty() {
		t.Fatal("glyph path for H is empty")
	}
	box := p.BoundingBox()
	if box.Top >= 0 {
		t.Errorf("H top = %g, want above the baseline (negative)", box.Top)
	}
	if box.Bottom > 0.5 {
		t.Errorf("H bottom = %g, want on the baseline", box.Bottom)
	}
	var _ graphics.GlyphSource = f
}

func TestMetrics(t *testing.T) {
	m := MustDefault().Metrics(32)
	if m.Ascent <= 0 || m.LineHeight < m.Ascent {
		t.Errorf("Metrics = %+v", m)
	}
}

func TestGlyphPath_CacheKeyAndBound(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	g := f.Layout("A", 16).Run.Glyphs[0].ID

	// Sizes within one 26.6 step load the same outline.
	a := f.GlyphPath(g, 16)
	b := f.GlyphPath(g, 16.001)
	if a != b {
		t.Error("sizes within 1/64 px got separate outlines")
	}
	if n := f.cachedGlyphs(); n != 1 {
		t.Errorf("cached = %d, want 1", n)
	}

	// A resize sweep cannot grow the cache past its bound.
	for i := range 2 * maxCachedGlyphs {
		f.GlyphPath(g, 8+float64(i)/8)
	}
	if n := f.cachedGlyphs(); n > maxCachedGlyphs {
		t.Errorf("cached = %d, want at most %d", n, maxCachedGlyphs)
	}
}
