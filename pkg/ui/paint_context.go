package ui

import "github.com/felt-ui/felt/pkg/graphics"

// PaintContext is the state threaded through a paint pass. Widgets derive
// new contexts for their children and never modify the one they receive.
type PaintContext struct {
	// Transform maps the widget's local space to device space.
	Transform graphics.Affine
	// Clip is the intended visible region in device space.
	Clip graphics.Rect
}

// RootContext returns the context a paint pass starts with: identity
// transform and a clip covering the viewport.
func RootContext(width, height float64) PaintContext {
	return PaintContext{
		Transform: graphics.Identity(),
		Clip:      graphics.RectFromLTWH(0, 0, width, height),
	}
}

// Then returns a context whose transform is ctx.Transform ∘ local. The clip
// is carried over unchanged.
func (ctx PaintContext) Then(local graphics.Affine) PaintContext {
	return PaintContext{Transform: ctx.Transform.Mul(local), Clip: ctx.Clip}
}

// WithClip returns a copy of ctx with a different clip.
func (ctx PaintContext) WithClip(clip graphics.Rect) PaintContext {
	ctx.Clip = clip
	return ctx
}

// GlobalRect maps a local rectangle to its device-space bounding box.
func (ctx PaintContext) GlobalRect(local graphics.Rect) graphics.Rect {
	return ctx.Transform.TransformRectBBox(local)
}
