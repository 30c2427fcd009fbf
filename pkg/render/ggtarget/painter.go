package ggtarget

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/felt-ui/felt/pkg/graphics"
)

// contextPainter replays scene commands into a gg.Context.
//
// gg composites a layer by blending its whole pixmap onto the parent, so
// clipping is applied at PopLayer by clearing the layer pixels outside the
// device-space bounds of the layer's clip.
type contextPainter struct {
	dc    *gg.Context
	clips []image.Rectangle
	err   error
}

var _ graphics.Painter = (*contextPainter)(nil)

func (p *contextPainter) Fill(rule graphics.FillRule, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	if shape == nil {
		return
	}
	p.dc.SetTransform(toMatrix(transform))
	appendPath(p.dc, shape.Path())
	p.dc.SetFillRule(toFillRule(rule))
	p.dc.SetFillBrush(toBrush(brush, transform))
	p.record(p.dc.Fill())
}

func (p *contextPainter) Stroke(style graphics.StrokeStyle, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	if shape == nil || style.Width <= 0 {
		return
	}
	p.dc.SetTransform(toMatrix(transform))
	appendPath(p.dc, shape.Path())
	p.dc.SetLineWidth(style.Width)
	p.dc.SetLineCap(toLineCap(style.Cap))
	p.dc.SetLineJoin(toLineJoin(style.Join))
	if style.MiterLimit > 0 {
		p.dc.SetMiterLimit(style.MiterLimit)
	}
	p.dc.SetStrokeBrush(toBrush(brush, transform))
	p.record(p.dc.Stroke())
}

func (p *contextPainter) PushLayer(blend graphics.BlendMode, alpha float64, transform graphics.Affine, clip graphics.Shape) {
	bounds := image.Rect(0, 0, p.dc.Width(), p.dc.Height())
	if clip != nil {
		bounds = deviceRect(transform.TransformRectBBox(clip.BoundingBox())).Intersect(bounds)
	}
	p.dc.PushLayer(toBlendMode(blend), alpha)
	p.clips = append(p.clips, bounds)
}

func (p *contextPainter) PopLayer() {
	if len(p.clips) == 0 {
		return
	}
	r := p.clips[len(p.clips)-1]
	p.clips = p.clips[:len(p.clips)-1]
	clearOutside(p.dc.ResizeTarget(), r)
	p.dc.PopLayer()
}

func (p *contextPainter) DrawImage(img *graphics.Image, transform graphics.Affine) {
	if img.IsEmpty() {
		return
	}
	src := &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	p.dc.SetTransform(toMatrix(transform))
	p.dc.DrawImage(gg.ImageBufFromImage(src), 0, 0)
}

func (p *contextPainter) DrawGlyphs(run graphics.GlyphRun, transform graphics.Affine, brush graphics.Brush) {
	outline := run.Outline()
	if outline.IsEmpty() {
		return
	}
	p.Fill(graphics.FillNonZero, transform, brush, outline)
}

func (p *contextPainter) record(err error) {
	p.dc.ClearPath()
	if err != nil && p.err == nil {
		p.err = err
	}
}

func appendPath(dc *gg.Context, path *graphics.Path) {
	dc.ClearPath()
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			dc.MoveTo(a[0], a[1])
		case graphics.PathOpLineTo:
			dc.LineTo(a[0], a[1])
		case graphics.PathOpQuadTo:
			dc.QuadraticTo(a[0], a[1], a[2], a[3])
		case graphics.PathOpCubicTo:
			dc.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case graphics.PathOpClose:
			dc.ClosePath()
		}
	}
}

// deviceRect rounds r to the pixels whose centers it contains.
func deviceRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

// clearOutside makes every pixel of pm outside keep transparent.
func clearOutside(pm *gg.Pixmap, keep image.Rectangle) {
	w, h := pm.Width(), pm.Height()
	data := pm.Data()
	for y := range h {
		row := data[y*w*4 : (y+1)*w*4]
		if y < keep.Min.Y || y >= keep.Max.Y || keep.Empty() {
			clear(row)
			continue
		}
		clear(row[:max(keep.Min.X, 0)*4])
		clear(row[min(keep.Max.X, w)*4:])
	}
}
