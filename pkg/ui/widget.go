package ui

import (
	"fmt"
	"strings"

	"github.com/felt-ui/felt/pkg/graphics"
)

// Widget is a runtime node of the paint tree. The set of implementations is
// closed: *Container, *ScrollViewport and *CanvasWidget.
type Widget interface {
	// Children returns the widget's direct children in paint order.
	Children() []Widget
	describe() string
	sealed()
}

// Paint paints w and its subtree into scene. A nil widget paints nothing.
func Paint(w Widget, ctx PaintContext, scene *graphics.Scene) {
	switch w := w.(type) {
	case nil:
	case *Container:
		w.paint(ctx, scene)
	case *ScrollViewport:
		w.paint(ctx, scene)
	case *CanvasWidget:
		w.paint(ctx, scene)
	default:
		panic(fmt.Sprintf("ui: unknown widget type %T", w))
	}
}

// DebugTree returns an indented description of the tree rooted at w, one
// widget per line.
func DebugTree(w Widget) string {
	var b strings.Builder
	writeTree(&b, w, 0)
	return b.String()
}

func writeTree(b *strings.Builder, w Widget, depth int) {
	if w == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(w.describe())
	b.WriteByte('\n')
	for _, c := range w.Children() {
		writeTree(b, c, depth+1)
	}
}

// Count returns the number of widgets in the tree rooted at w.
func Count(w Widget) int {
	if w == nil {
		return 0
	}
	n := 1
	for _, c := range w.Children() {
		n += Count(c)
	}
	return n
}

func childList(w Widget) []Widget {
	if w == nil {
		return nil
	}
	return []Widget{w}
}
