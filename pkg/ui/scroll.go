package ui

import (
	"fmt"

	"github.com/felt-ui/felt/pkg/graphics"
)

// ScrollViewport shows its child through a fixed-size window shifted by a
// scroll offset. The offset is supplied by the caller; there is no
// scrollbar, momentum or overscroll.
type ScrollViewport struct {
	ViewportSize graphics.Size
	Offset       graphics.Offset
	Child        Widget
}

func (*ScrollViewport) sealed() {}

// Children returns the child, if any.
func (s *ScrollViewport) Children() []Widget {
	return childList(s.Child)
}

func (s *ScrollViewport) paint(ctx PaintContext, scene *graphics.Scene) {
	clip := ctx.GlobalRect(graphics.RectFromSize(s.ViewportSize))

	scene.PushLayer(graphics.BlendNormal, 1, graphics.Identity(), clip)
	if s.Child != nil {
		childCtx := PaintContext{
			Transform: ctx.Transform.Mul(graphics.TranslateBy(s.Offset.Neg())),
			Clip:      clip,
		}
		Paint(s.Child, childCtx, scene)
	}
	scene.PopLayer()
}

func (s *ScrollViewport) describe() string {
	return fmt.Sprintf("ScrollViewport viewport=%gx%g offset=(%g,%g)",
		s.ViewportSize.Width, s.ViewportSize.Height, s.Offset.X, s.Offset.Y)
}

// ScrollViewElement describes a [ScrollViewport].
type ScrollViewElement struct {
	descriptor
	size   graphics.Size
	offset graphics.Offset
	child  IntoElement
}

// ScrollView starts a scroll viewport descriptor with a zero viewport.
func ScrollView() *ScrollViewElement {
	return &ScrollViewElement{}
}

// WithSize sets the viewport size.
func (e *ScrollViewElement) WithSize(size graphics.Size) *ScrollViewElement {
	e.mutate("scroll view")
	e.size = size
	return e
}

// WithOffset sets the scroll offset. Positive values move the content up
// and to the left.
func (e *ScrollViewElement) WithOffset(offset graphics.Offset) *ScrollViewElement {
	e.mutate("scroll view")
	e.offset = offset
	return e
}

// WithChild sets the scrolled content.
func (e *ScrollViewElement) WithChild(child IntoElement) *ScrollViewElement {
	e.mutate("scroll view")
	e.child = child
	return e
}

// IntoElement returns e.
func (e *ScrollViewElement) IntoElement() Element {
	return e
}

// Build consumes the descriptor, building the child first.
func (e *ScrollViewElement) Build() Widget {
	e.consume("scroll view")
	return &ScrollViewport{
		ViewportSize: e.size,
		Offset:       e.offset,
		Child:        Build(e.child),
	}
}
