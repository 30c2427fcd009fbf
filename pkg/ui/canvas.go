package ui

import (
	"fmt"

	"github.com/felt-ui/felt/pkg/graphics"
)

// DrawContext is the drawing surface handed to a canvas callback. Every
// operation composes the canvas transform with the transform passed by the
// caller, so callbacks work in the canvas's local coordinates.
//
// Layers pushed by the callback must be popped before it returns. Popping a
// layer the callback did not push, or returning with layers still open,
// panics.
type DrawContext interface {
	// Size returns the declared canvas size.
	Size() graphics.Size
	// Transform returns the canvas transform (local to device space).
	Transform() graphics.Affine

	Fill(rule graphics.FillRule, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape)
	Stroke(style graphics.StrokeStyle, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape)
	DrawImage(img *graphics.Image, transform graphics.Affine)
	DrawGlyphs(run graphics.GlyphRun, transform graphics.Affine, brush graphics.Brush)

	// PushLayer opens a layer with the given blend mode and opacity, clipped
	// to shape under transform.
	PushLayer(blend graphics.BlendMode, alpha float64, transform graphics.Affine, shape graphics.Shape)
	// PushClipLayer opens a clip layer covering the device-space bounding
	// box of shape.
	PushClipLayer(shape graphics.Shape)
	// PopLayer closes the innermost layer opened by this callback.
	PopLayer()

	// Append replays a prerecorded scene under transform. The scene must
	// have no open layers.
	Append(scene *graphics.Scene, transform graphics.Affine)
}

// CanvasFunc draws a canvas's content.
type CanvasFunc func(dc DrawContext)

// CanvasWidget runs a draw callback clipped to its declared size.
type CanvasWidget struct {
	Size    graphics.Size
	Painter CanvasFunc
}

func (*CanvasWidget) sealed() {}

// Children returns nil; canvases are leaves.
func (*CanvasWidget) Children() []Widget {
	return nil
}

func (c *CanvasWidget) paint(ctx PaintContext, scene *graphics.Scene) {
	clip := ctx.GlobalRect(graphics.RectFromSize(c.Size))
	scene.PushLayer(graphics.BlendNormal, 1, graphics.Identity(), clip)

	if c.Painter != nil {
		dc := &drawContext{scene: scene, transform: ctx.Transform, size: c.Size}
		c.Painter(dc)
		if dc.open != 0 {
			panic(fmt.Sprintf("ui: canvas callback returned with %d layer(s) open", dc.open))
		}
	}

	scene.PopLayer()
}

func (c *CanvasWidget) describe() string {
	return fmt.Sprintf("Canvas size=%gx%g", c.Size.Width, c.Size.Height)
}

var _ DrawContext = (*drawContext)(nil)

// drawContext records into the frame scene and tracks the layers the
// callback opened.
type drawContext struct {
	scene     *graphics.Scene
	transform graphics.Affine
	size      graphics.Size
	open      int
}

func (dc *drawContext) Size() graphics.Size {
	return dc.size
}

func (dc *drawContext) Transform() graphics.Affine {
	return dc.transform
}

func (dc *drawContext) Fill(rule graphics.FillRule, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	dc.scene.Fill(rule, dc.transform.Mul(transform), brush, shape)
}

func (dc *drawContext) Stroke(style graphics.StrokeStyle, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	dc.scene.Stroke(style, dc.transform.Mul(transform), brush, shape)
}

func (dc *drawContext) DrawImage(img *graphics.Image, transform graphics.Affine) {
	dc.scene.DrawImage(img, dc.transform.Mul(transform))
}

func (dc *drawContext) DrawGlyphs(run graphics.GlyphRun, transform graphics.Affine, brush graphics.Brush) {
	dc.scene.DrawGlyphs(run, dc.transform.Mul(transform), brush)
}

func (dc *drawContext) PushLayer(blend graphics.BlendMode, alpha float64, transform graphics.Affine, shape graphics.Shape) {
	dc.scene.PushLayer(blend, alpha, dc.transform.Mul(transform), shape)
	dc.open++
}

func (dc *drawContext) PushClipLayer(shape graphics.Shape) {
	clip := dc.transform.TransformRectBBox(shape.BoundingBox())
	dc.scene.PushLayer(graphics.BlendClip, 1, graphics.Identity(), clip)
	dc.open++
}

func (dc *drawContext) PopLayer() {
	if dc.open == 0 {
		panic("ui: PopLayer without matching PushLayer in canvas callback")
	}
	dc.scene.PopLayer()
	dc.open--
}

func (dc *drawContext) Append(scene *graphics.Scene, transform graphics.Affine) {
	if scene == nil {
		return
	}
	if d := scene.LayerDepth(); d != 0 {
		panic(fmt.Sprintf("ui: appended scene has %d layer(s) open", d))
	}
	dc.scene.Append(scene, dc.transform.Mul(transform))
}

// CanvasElement describes a [CanvasWidget].
type CanvasElement struct {
	descriptor
	size    graphics.Size
	painter CanvasFunc
}

// Canvas starts a canvas descriptor that draws with painter. The size
// defaults to zero, which clips everything away.
func Canvas(painter CanvasFunc) *CanvasElement {
	return &CanvasElement{painter: painter}
}

// WithSize sets the declared canvas size.
func (e *CanvasElement) WithSize(size graphics.Size) *CanvasElement {
	e.mutate("canvas")
	e.size = size
	return e
}

// IntoElement returns e.
func (e *CanvasElement) IntoElement() Element {
	return e
}

// Build consumes the descriptor.
func (e *CanvasElement) Build() Widget {
	e.consume("canvas")
	return &CanvasWidget{Size: e.size, Painter: e.painter}
}
