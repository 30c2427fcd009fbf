package graphics

import "fmt"

// Painter receives drawing commands. Scene records them; render backends
// convert them into their own command streams.
type Painter interface {
	Fill(rule FillRule, transform Affine, brush Brush, shape Shape)
	Stroke(style StrokeStyle, transform Affine, brush Brush, shape Shape)
	PushLayer(blend BlendMode, alpha float64, transform Affine, clip Shape)
	PopLayer()
	DrawImage(img *Image, transform Affine)
	DrawGlyphs(run GlyphRun, transform Affine, brush Brush)
}

// Command is a single recorded scene operation.
type Command interface {
	replay(p Painter, base Affine)
	fmt.Stringer
}

// FillCmd fills a shape.
type FillCmd struct {
	Rule      FillRule
	Transform Affine
	Brush     Brush
	Shape     Shape
}

func (c FillCmd) replay(p Painter, base Affine) {
	p.Fill(c.Rule, base.Mul(c.Transform), c.Brush, c.Shape)
}

func (c FillCmd) String() string {
	return fmt.Sprintf("fill %s %v", c.Rule, c.Shape.BoundingBox())
}

// StrokeCmd strokes a shape outline.
type StrokeCmd struct {
	Style     StrokeStyle
	Transform Affine
	Brush     Brush
	Shape     Shape
}

func (c StrokeCmd) replay(p Painter, base Affine) {
	p.Stroke(c.Style, base.Mul(c.Transform), c.Brush, c.Shape)
}

func (c StrokeCmd) String() string {
	return fmt.Sprintf("stroke w=%g %v", c.Style.Width, c.Shape.BoundingBox())
}

// PushLayerCmd opens a compositing layer clipped to Clip.
type PushLayerCmd struct {
	Blend     BlendMode
	Alpha     float64
	Transform Affine
	Clip      Shape
}

func (c PushLayerCmd) replay(p Painter, base Affine) {
	p.PushLayer(c.Blend, c.Alpha, base.Mul(c.Transform), c.Clip)
}

func (c PushLayerCmd) String() string {
	if c.Clip == nil {
		return fmt.Sprintf("push_layer %s a=%g unclipped", c.Blend, c.Alpha)
	}
	return fmt.Sprintf("push_layer %s a=%g %v", c.Blend, c.Alpha, c.Clip.BoundingBox())
}

// PopLayerCmd closes the innermost open layer.
type PopLayerCmd struct{}

func (PopLayerCmd) replay(p Painter, _ Affine) {
	p.PopLayer()
}

func (PopLayerCmd) String() string {
	return "pop_layer"
}

// DrawImageCmd draws an image with its top-left corner at the local origin.
type DrawImageCmd struct {
	Image     *Image
	Transform Affine
}

func (c DrawImageCmd) replay(p Painter, base Affine) {
	p.DrawImage(c.Image, base.Mul(c.Transform))
}

func (c DrawImageCmd) String() string {
	return fmt.Sprintf("draw_image %dx%d", c.Image.Width, c.Image.Height)
}

// DrawGlyphsCmd fills a glyph run.
type DrawGlyphsCmd struct {
	Run       GlyphRun
	Transform Affine
	Brush     Brush
}

func (c DrawGlyphsCmd) replay(p Painter, base Affine) {
	p.DrawGlyphs(c.Run, base.Mul(c.Transform), c.Brush)
}

func (c DrawGlyphsCmd) String() string {
	return fmt.Sprintf("draw_glyphs n=%d size=%g", len(c.Run.Glyphs), c.Run.Size)
}

// Scene is an append-only recording of drawing commands. The zero value is
// an empty scene ready for use.
type Scene struct {
	cmds  []Command
	depth int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Fill records a shape fill. A nil shape records nothing.
func (s *Scene) Fill(rule FillRule, transform Affine, brush Brush, shape Shape) {
	if shape == nil {
		return
	}
	s.cmds = append(s.cmds, FillCmd{Rule: rule, Transform: transform, Brush: brush, Shape: shape})
}

// Stroke records a shape stroke. A nil shape records nothing.
func (s *Scene) Stroke(style StrokeStyle, transform Affine, brush Brush, shape Shape) {
	if shape == nil {
		return
	}
	s.cmds = append(s.cmds, StrokeCmd{Style: style, Transform: transform, Brush: brush, Shape: shape})
}

// PushLayer records the start of a layer. Every push must be matched by a
// PopLayer. A nil clip leaves the layer unclipped.
func (s *Scene) PushLayer(blend BlendMode, alpha float64, transform Affine, clip Shape) {
	s.cmds = append(s.cmds, PushLayerCmd{Blend: blend, Alpha: alpha, Transform: transform, Clip: clip})
	s.depth++
}

// PopLayer records the end of the innermost layer. It panics when no layer
// is open.
func (s *Scene) PopLayer() {
	if s.depth == 0 {
		panic("graphics: PopLayer without matching PushLayer")
	}
	s.cmds = append(s.cmds, PopLayerCmd{})
	s.depth--
}

// DrawImage records an image draw.
func (s *Scene) DrawImage(img *Image, transform Affine) {
	if img.IsEmpty() {
		return
	}
	s.cmds = append(s.cmds, DrawImageCmd{Image: img, Transform: transform})
}

// DrawGlyphs records a glyph run fill.
func (s *Scene) DrawGlyphs(run GlyphRun, transform Affine, brush Brush) {
	if run.IsEmpty() {
		return
	}
	s.cmds = append(s.cmds, DrawGlyphsCmd{Run: run, Transform: transform, Brush: brush})
}

// Append replays other into s with every command's transform pre-multiplied
// by transform. Layers left open in other stay open in s.
func (s *Scene) Append(other *Scene, transform Affine) {
	if other == nil {
		return
	}
	for _, c := range other.cmds {
		c.replay(s, transform)
	}
}

// Replay sends every recorded command to p in order.
func (s *Scene) Replay(p Painter) {
	base := Identity()
	for _, c := range s.cmds {
		c.replay(p, base)
	}
}

// Commands returns the recorded commands. The slice must not be modified.
func (s *Scene) Commands() []Command {
	return s.cmds
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.cmds)
}

// LayerDepth returns the number of layers currently open.
func (s *Scene) LayerDepth() int {
	return s.depth
}

// Reset discards all commands while keeping allocated storage.
func (s *Scene) Reset() {
	clear(s.cmds)
	s.cmds = s.cmds[:0]
	s.depth = 0
}
