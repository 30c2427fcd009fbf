package testing

import (
	"fmt"
	"math"

	"github.com/felt-ui/felt/pkg/graphics"
)

// SceneOp is a serialized scene command.
type SceneOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingPainter implements graphics.Painter and records ops as SceneOp.
type serializingPainter struct {
	ops []SceneOp
}

func (p *serializingPainter) Fill(rule graphics.FillRule, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	p.ops = append(p.ops, SceneOp{Op: "fill", Params: map[string]any{
		"rule":      rule.String(),
		"transform": serializeAffine(transform),
		"brush":     serializeBrush(brush),
		"shape":     serializeShape(shape),
	}})
}

func (p *serializingPainter) Stroke(style graphics.StrokeStyle, transform graphics.Affine, brush graphics.Brush, shape graphics.Shape) {
	p.ops = append(p.ops, SceneOp{Op: "stroke", Params: map[string]any{
		"width":     round2(style.Width),
		"transform": serializeAffine(transform),
		"brush":     serializeBrush(brush),
		"shape":     serializeShape(shape),
	}})
}

func (p *serializingPainter) PushLayer(blend graphics.BlendMode, alpha float64, transform graphics.Affine, clip graphics.Shape) {
	p.ops = append(p.ops, SceneOp{Op: "pushLayer", Params: map[string]any{
		"blend":     blend.String(),
		"alpha":     round2(alpha),
		"transform": serializeAffine(transform),
		"clip":      serializeShape(clip),
	}})
}

func (p *serializingPainter) PopLayer() {
	p.ops = append(p.ops, SceneOp{Op: "popLayer"})
}

func (p *serializingPainter) DrawImage(img *graphics.Image, transform graphics.Affine) {
	p.ops = append(p.ops, SceneOp{Op: "drawImage", Params: map[string]any{
		"width":     float64(img.Width),
		"height":    float64(img.Height),
		"transform": serializeAffine(transform),
	}})
}

func (p *serializingPainter) DrawGlyphs(run graphics.GlyphRun, transform graphics.Affine, brush graphics.Brush) {
	p.ops = append(p.ops, SceneOp{Op: "drawGlyphs", Params: map[string]any{
		"glyphs":    float64(len(run.Glyphs)),
		"size":      round2(run.Size),
		"transform": serializeAffine(transform),
		"brush":     serializeBrush(brush),
	}})
}

// --- Serialization helpers ---

func serializeAffine(a graphics.Affine) []any {
	return []any{round2(a.A), round2(a.B), round2(a.C), round2(a.D), round2(a.E), round2(a.F)}
}

func serializeRect(r graphics.Rect) map[string]any {
	return map[string]any{
		"left":   round2(r.Left),
		"top":    round2(r.Top),
		"right":  round2(r.Right),
		"bottom": round2(r.Bottom),
	}
}

func serializeShape(s graphics.Shape) map[string]any {
	if s == nil {
		return nil
	}
	m := serializeRect(s.BoundingBox())
	m["kind"] = shapeKind(s)
	return m
}

func shapeKind(s graphics.Shape) string {
	switch s.(type) {
	case graphics.Rect:
		return "rect"
	case graphics.RoundedRect:
		return "roundedRect"
	case graphics.Circle:
		return "circle"
	case graphics.Line:
		return "line"
	case *graphics.Path:
		return "path"
	default:
		return fmt.Sprintf("%T", s)
	}
}

func serializeBrush(b graphics.Brush) string {
	if b.IsSolid() {
		return serializeColor(b.Color)
	}
	if b.Gradient != nil {
		return "gradient:" + b.Gradient.Type.String()
	}
	return "gradient"
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	r := math.Round(f*100) / 100
	if r == 0 {
		return 0 // no negative zero in snapshots
	}
	return r
}
