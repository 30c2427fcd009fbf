package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/felt-ui/felt/pkg/graphics"
)

// Face is a parsed font. Methods are safe for concurrent use.
type Face struct {
	font *sfnt.Font

	mu    sync.Mutex
	buf   sfnt.Buffer
	paths map[glyphKey]*graphics.Path
}

// glyphKey identifies a cached outline. Sizes are keyed at the 26.6
// precision the font is loaded with, so nearby float sizes share an entry.
type glyphKey struct {
	id   uint16
	ppem fixed.Int26_6
}

// maxCachedGlyphs bounds the outline cache. Reaching it drops every entry.
const maxCachedGlyphs = 1024

// Metrics holds vertical font metrics in pixels.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

var defaultFace = sync.OnceValues(func() (*Face, error) {
	return Parse(goregular.TTF)
})

// Default returns the shared Go Regular face.
func Default() (*Face, error) {
	return defaultFace()
}

// MustDefault is like Default but panics if the embedded font cannot be
// parsed.
func MustDefault() *Face {
	f, err := Default()
	if err != nil {
		panic(err)
	}
	return f
}

// Parse parses a TrueType or OpenType font.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Face{font: f, paths: make(map[glyphKey]*graphics.Path)}, nil
}

// Name returns the font's full name, or "" if it has none.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// cachedGlyphs reports the number of cached outlines.
func (f *Face) cachedGlyphs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.paths)
}

// Metrics returns the face's vertical metrics at size pixels per em.
func (f *Face) Metrics(size float64) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{Ascent: size, LineHeight: size}
	}
	return Metrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}
}

// GlyphPath returns the outline of glyph id at size pixels per em, with the
// origin on the baseline and Y growing downward. Missing or unloadable
// glyphs return an empty path. Returned paths are shared and must not be
// modified.
func (f *Face) GlyphPath(id uint16, size float64) *graphics.Path {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := glyphKey{id: id, ppem: toFixed(size)}
	if p, ok := f.paths[key]; ok {
		return p
	}
	if len(f.paths) >= maxCachedGlyphs {
		clear(f.paths)
	}
	p := graphics.NewPath()
	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), key.ppem, nil)
	if err == nil {
		open := false
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					p.Close()
				}
				p.MoveTo(fromFixed(s.Args[0].X), fromFixed(s.Args[0].Y))
				open = true
			case sfnt.SegmentOpLineTo:
				p.LineTo(fromFixed(s.Args[0].X), fromFixed(s.Args[0].Y))
			case sfnt.SegmentOpQuadTo:
				p.QuadTo(fromFixed(s.Args[0].X), fromFixed(s.Args[0].Y),
					fromFixed(s.Args[1].X), fromFixed(s.Args[1].Y))
			case sfnt.SegmentOpCubeTo:
				p.CubicTo(fromFixed(s.Args[0].X), fromFixed(s.Args[0].Y),
					fromFixed(s.Args[1].X), fromFixed(s.Args[1].Y),
					fromFixed(s.Args[2].X), fromFixed(s.Args[2].Y))
			}
		}
		if open {
			p.Close()
		}
	}
	f.paths[key] = p
	return p
}

// glyph returns the glyph index for r, or 0 (notdef) if the font has none.
func (f *Face) glyph(r rune) sfnt.GlyphIndex {
	g, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return g
}

func (f *Face) advance(g sfnt.GlyphIndex, ppem fixed.Int26_6) float64 {
	adv, err := f.font.GlyphAdvance(&f.buf, g, ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *Face) kern(a, b sfnt.GlyphIndex, ppem fixed.Int26_6) float64 {
	k, err := f.font.Kern(&f.buf, a, b, ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
