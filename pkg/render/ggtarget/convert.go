package ggtarget

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/felt-ui/felt/pkg/graphics"
)

func toRGBA(c graphics.Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA{R: r, G: g, B: b, A: a}
}

func toMatrix(a graphics.Affine) gg.Matrix {
	return gg.Matrix{A: a.A, B: a.B, C: a.C, D: a.D, E: a.E, F: a.F}
}

func toFillRule(r graphics.FillRule) gg.FillRule {
	if r == graphics.FillEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func toLineCap(c graphics.StrokeCap) gg.LineCap {
	switch c {
	case graphics.CapRound:
		return gg.LineCapRound
	case graphics.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func toLineJoin(j graphics.StrokeJoin) gg.LineJoin {
	switch j {
	case graphics.JoinRound:
		return gg.LineJoinRound
	case graphics.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// toBlendMode maps the modes gg can composite. The rest, clip layers
// included, composite normally.
func toBlendMode(b graphics.BlendMode) gg.BlendMode {
	switch b {
	case graphics.BlendMultiply:
		return gg.BlendMultiply
	case graphics.BlendScreen:
		return gg.BlendScreen
	case graphics.BlendOverlay:
		return gg.BlendOverlay
	default:
		return gg.BlendNormal
	}
}

// toBrush converts a brush. gg evaluates gradients in device space, so the
// gradient geometry is mapped through transform.
func toBrush(b graphics.Brush, transform graphics.Affine) gg.Brush {
	if b.IsSolid() || b.Gradient == nil || !b.Gradient.IsValid() {
		return gg.Solid(toRGBA(b.Color))
	}
	g := b.Gradient
	switch g.Type {
	case graphics.GradientTypeLinear:
		start := transform.TransformPoint(g.Linear.Start)
		end := transform.TransformPoint(g.Linear.End)
		lg := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
		for _, s := range g.Stops() {
			lg.AddColorStop(s.Position, toRGBA(s.Color))
		}
		return lg
	case graphics.GradientTypeRadial:
		c := transform.TransformPoint(g.Radial.Center)
		scale := math.Sqrt(math.Abs(transform.A*transform.E - transform.B*transform.D))
		rg := gg.NewRadialGradientBrush(c.X, c.Y, 0, g.Radial.Radius*scale)
		for _, s := range g.Stops() {
			rg.AddColorStop(s.Position, toRGBA(s.Color))
		}
		return rg
	default:
		return gg.Solid(toRGBA(g.MeanColor()))
	}
}
