package ui

import "fmt"

// IntoElement is implemented by anything that can stand in for a descriptor.
// Parents accept IntoElement so they can hold a child of any kind.
type IntoElement interface {
	IntoElement() Element
}

// Element is a single-use build plan for one widget.
type Element interface {
	IntoElement
	// Build consumes the descriptor and returns the widget it describes.
	// Calling Build a second time panics.
	Build() Widget
}

// Build converts e into an element and builds it. A nil e builds nil.
func Build(e IntoElement) Widget {
	if e == nil {
		return nil
	}
	el := e.IntoElement()
	if el == nil {
		return nil
	}
	return el.Build()
}

// descriptor carries the single-use state shared by every element kind.
type descriptor struct {
	built bool
}

func (d *descriptor) consume(kind string) {
	if d.built {
		panic(fmt.Sprintf("ui: %s descriptor built twice", kind))
	}
	d.built = true
}

// mutate guards the WithX setters. Setters modify the descriptor in place,
// so changing one that was already built would be silently lost.
func (d *descriptor) mutate(kind string) {
	if d.built {
		panic(fmt.Sprintf("ui: %s descriptor modified after build", kind))
	}
}
