// Package ui turns declarative descriptors into a widget tree and paints the
// tree into a [graphics.Scene].
//
// # Descriptors
//
// Application code describes the UI each frame with fluent descriptors:
//
//	root := ui.Div().
//	    WithBackground(graphics.RGB(30, 30, 30)).
//	    WithChild(ui.Div().
//	        WithSize(graphics.Size{Width: 100, Height: 50}).
//	        WithOffset(graphics.Offset{X: 20, Y: 20}).
//	        WithBackground(graphics.ColorBlue))
//
// A descriptor is single use: Build consumes it and a second Build panics.
// Descriptors are mutable builders. Each WithX setter updates the
// descriptor in place and returns the same pointer, so two chains started
// from one base share state. Calling a setter after Build panics.
// Building a composite descriptor builds its child first.
//
// # Painting
//
// [Frame] builds the root descriptor and paints the tree with an identity
// transform and a clip equal to the viewport. Every widget receives a
// [PaintContext] from its parent and derives a new one for its children:
//
//	child.Transform = parent.Transform ∘ local
//
// where local is the widget's own translation. Clip rectangles are the
// axis-aligned bounding boxes of a widget's local bounds under the current
// transform. They are not intersected with ancestor clips.
//
// The widget set is closed: [Container], [ScrollViewport] and
// [CanvasWidget]. Arbitrary drawing goes through a canvas callback, which
// receives a [DrawContext] bound to the canvas transform.
package ui
