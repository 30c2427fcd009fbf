package graphics

// GlyphSource turns glyph IDs into outlines. Outlines are in pixels at the
// requested size with the origin on the baseline and Y growing downward.
type GlyphSource interface {
	GlyphPath(id uint16, size float64) *Path
}

// Glyph is one positioned glyph within a run.
type Glyph struct {
	ID uint16
	X  float64
	Y  float64
}

// GlyphRun is a sequence of positioned glyphs sharing a font and size.
type GlyphRun struct {
	Source GlyphSource
	Size   float64
	Glyphs []Glyph
}

// IsEmpty reports whether the run has nothing to draw.
func (r GlyphRun) IsEmpty() bool {
	return r.Source == nil || len(r.Glyphs) == 0 || r.Size <= 0
}

// Outline returns every glyph outline of the run merged into one path,
// each glyph translated to its position.
func (r GlyphRun) Outline() *Path {
	out := NewPath()
	if r.IsEmpty() {
		return out
	}
	for _, g := range r.Glyphs {
		gp := r.Source.GlyphPath(g.ID, r.Size)
		if gp.IsEmpty() {
			continue
		}
		out.Commands = append(out.Commands, gp.Transform(Translate(g.X, g.Y)).Commands...)
	}
	return out
}
