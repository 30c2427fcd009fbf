package ui

import (
	"fmt"
	"strings"

	"github.com/felt-ui/felt/pkg/graphics"
)

// Border is a stroked outline around a sized container.
type Border struct {
	Color graphics.Color
	Width float64
}

// Container paints an optional background and border and positions its
// child by a translation offset.
//
// With a Size, the background fills the local rect (0, 0, Size) and the
// border strokes the same rect, both at the container's transform. Without a
// Size, the background fills the incoming clip at the identity transform,
// which makes a size-less container a window backdrop. The child receives
// the container's transform and the incoming clip.
type Container struct {
	Child      Widget
	Background *graphics.Color
	Border     *Border
	Offset     graphics.Offset
	Size       *graphics.Size
}

func (*Container) sealed() {}

// Children returns the child, if any.
func (c *Container) Children() []Widget {
	return childList(c.Child)
}

func (c *Container) paint(ctx PaintContext, scene *graphics.Scene) {
	transform := ctx.Transform.Mul(graphics.TranslateBy(c.Offset))

	if c.Size != nil {
		rect := graphics.RectFromSize(*c.Size)
		if c.Background != nil {
			scene.Fill(graphics.FillNonZero, transform, graphics.Solid(*c.Background), rect)
		}
		if c.Border != nil {
			scene.Stroke(graphics.NewStrokeStyle(c.Border.Width), transform, graphics.Solid(c.Border.Color), rect)
		}
	} else if c.Background != nil {
		scene.Fill(graphics.FillNonZero, graphics.Identity(), graphics.Solid(*c.Background), ctx.Clip)
	}

	if c.Child != nil {
		Paint(c.Child, PaintContext{Transform: transform, Clip: ctx.Clip}, scene)
	}
}

func (c *Container) describe() string {
	var b strings.Builder
	b.WriteString("Container")
	if c.Size != nil {
		fmt.Fprintf(&b, " size=%gx%g", c.Size.Width, c.Size.Height)
	}
	if c.Offset != (graphics.Offset{}) {
		fmt.Fprintf(&b, " offset=(%g,%g)", c.Offset.X, c.Offset.Y)
	}
	if c.Background != nil {
		fmt.Fprintf(&b, " bg=%s", c.Background)
	}
	if c.Border != nil {
		fmt.Fprintf(&b, " border=%s/%g", c.Border.Color, c.Border.Width)
	}
	return b.String()
}

// ContainerElement describes a [Container].
type ContainerElement struct {
	descriptor
	child      IntoElement
	background *graphics.Color
	border     *Border
	offset     graphics.Offset
	size       *graphics.Size
}

// Div starts a container descriptor with no size, background, border or
// child, at offset zero.
func Div() *ContainerElement {
	return &ContainerElement{}
}

// WithChild sets the child descriptor.
func (e *ContainerElement) WithChild(child IntoElement) *ContainerElement {
	e.mutate("container")
	e.child = child
	return e
}

// WithSize gives the container a fixed size.
func (e *ContainerElement) WithSize(size graphics.Size) *ContainerElement {
	e.mutate("container")
	e.size = &size
	return e
}

// WithBackground sets the background color.
func (e *ContainerElement) WithBackground(color graphics.Color) *ContainerElement {
	e.mutate("container")
	e.background = &color
	return e
}

// WithBorder sets a border of the given color and stroke width.
func (e *ContainerElement) WithBorder(color graphics.Color, width float64) *ContainerElement {
	e.mutate("container")
	e.border = &Border{Color: color, Width: width}
	return e
}

// WithOffset translates the container and its child.
func (e *ContainerElement) WithOffset(offset graphics.Offset) *ContainerElement {
	e.mutate("container")
	e.offset = offset
	return e
}

// IntoElement returns e.
func (e *ContainerElement) IntoElement() Element {
	return e
}

// Build consumes the descriptor, building the child first.
func (e *ContainerElement) Build() Widget {
	e.consume("container")
	return &Container{
		Child:      Build(e.child),
		Background: e.background,
		Border:     e.border,
		Offset:     e.offset,
		Size:       e.size,
	}
}
