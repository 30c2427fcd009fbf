package text

import (
	"golang.org/x/image/font/sfnt"

	"github.com/felt-ui/felt/pkg/graphics"
)

// Line is a laid out single line of text.
type Line struct {
	Run     graphics.GlyphRun
	Width   float64
	Metrics Metrics
}

// Layout places s on one line at size pixels per em. The first glyph sits at
// x = 0 on the baseline y = 0.
func (f *Face) Layout(s string, size float64) Line {
	line := Line{Metrics: f.Metrics(size)}
	line.Run = graphics.GlyphRun{Source: f, Size: size}
	if s == "" || size <= 0 {
		return line
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ppem := toFixed(size)
	x := 0.0
	var prev sfnt.GlyphIndex
	hasPrev := false
	for _, r := range s {
		g := f.glyph(r)
		if hasPrev {
			x += f.kern(prev, g, ppem)
		}
		line.Run.Glyphs = append(line.Run.Glyphs, graphics.Glyph{ID: uint16(g), X: x})
		x += f.advance(g, ppem)
		prev, hasPrev = g, true
	}
	line.Width = x
	return line
}

// Measure returns the advance width of s at size.
func (f *Face) Measure(s string, size float64) float64 {
	return f.Layout(s, size).Width
}
