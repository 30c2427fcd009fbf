package graphics

// BrushKind identifies the paint source of a Brush.
type BrushKind int

const (
	BrushSolid BrushKind = iota
	BrushGradient
)

// Brush is the paint source for fills, strokes and glyph runs.
type Brush struct {
	Kind     BrushKind
	Color    Color
	Gradient *Gradient
}

// Solid returns a brush painting a single color.
func Solid(c Color) Brush {
	return Brush{Kind: BrushSolid, Color: c}
}

// GradientBrush returns a brush painting g.
func GradientBrush(g *Gradient) Brush {
	return Brush{Kind: BrushGradient, Gradient: g}
}

// IsSolid reports whether the brush paints a single color.
func (b Brush) IsSolid() bool {
	return b.Kind == BrushSolid
}
