package ui

import "github.com/felt-ui/felt/pkg/graphics"

// Frame builds root and paints it into a new scene for a viewport of the
// given size.
func Frame(root IntoElement, width, height float64) *graphics.Scene {
	scene := graphics.NewScene()
	PaintInto(scene, root, width, height)
	return scene
}

// PaintInto builds root and appends its paint commands to scene. The tree is
// discarded when PaintInto returns.
func PaintInto(scene *graphics.Scene, root IntoElement, width, height float64) {
	Paint(Build(root), RootContext(width, height), scene)
}
