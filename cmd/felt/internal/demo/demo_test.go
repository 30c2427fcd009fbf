package demo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/ui"
)

func TestScrollOffset(t *testing.T) {
	assert.InDelta(t, 400, ScrollOffset(0), 1e-9)
	quarter := math.Pi / 2
	assert.InDelta(t, 800, ScrollOffset(time.Duration(quarter*float64(time.Second))), 1e-6)
}

func TestRoot_Tree(t *testing.T) {
	w := ui.Build(Root(0, 0))
	assert.Equal(t, 6, ui.Count(w))
	assert.Equal(t, `Container bg=#0a0a0aff
  Container size=600x400 offset=(100,100) bg=#282828ff border=#969696ff/4
    ScrollViewport viewport=600x400 offset=(0,400)
      Container size=500x1200 offset=(50,0) bg=#505050ff
        Container offset=(50,50) bg=#3c3c64ff
          Canvas size=400x1100
`, ui.DebugTree(w))
}

func TestRoot_Paint(t *testing.T) {
	scene := ui.Frame(Root(0, 0), 800, 600)
	require.Zero(t, scene.LayerDepth())

	var fills, layers int
	var canvasClip graphics.Shape
	for _, c := range scene.Commands() {
		switch c := c.(type) {
		case graphics.FillCmd:
			fills++
		case graphics.PushLayerCmd:
			layers++
			if layers == 2 {
				canvasClip = c.Clip
			}
		}
	}
	// backdrop, panel, content, canvas wrapper (fills the scroll clip),
	// stripes, header, footer, circles.
	assert.Equal(t, 4+stripeCount+2+circleCount, fills)
	// scroll viewport, canvas, clip layer inside the canvas.
	assert.Equal(t, 3, layers)

	// Canvas origin: panel (100,100) + content (50,0) + wrapper (50,50) - scroll (0,400).
	require.NotNil(t, canvasClip)
	assert.Equal(t, graphics.Rect{Left: 200, Top: -250, Right: 600, Bottom: 850}, canvasClip.BoundingBox())
}
