package render

import (
	"math"

	"github.com/felt-ui/felt/pkg/graphics"
)

// BenchmarkScene fills the viewport with a grid of count rectangles, each
// colored from its index.
func BenchmarkScene(count int, width, height float64) *graphics.Scene {
	scene := graphics.NewScene()
	if count <= 0 {
		return scene
	}
	cols := max(int(math.Sqrt(float64(count))), 1)
	rows := (count + cols - 1) / cols
	cellW := width / float64(cols)
	cellH := height / float64(rows)

	for i := range count {
		x := float64(i%cols) * cellW
		y := float64(i/cols) * cellH
		color := graphics.RGB(uint8(i*137%256), uint8(i*211%256), uint8(i*97%256))
		scene.Fill(graphics.FillNonZero, graphics.Identity(), graphics.Solid(color),
			graphics.Rect{Left: x, Top: y, Right: x + cellW, Bottom: y + cellH})
	}
	return scene
}

// TestScene draws a red rectangle at the top left, a green one at the top
// right and a blue square in the center.
func TestScene(width, height float64) *graphics.Scene {
	scene := graphics.NewScene()
	fill := func(c graphics.Color, r graphics.Rect) {
		scene.Fill(graphics.FillNonZero, graphics.Identity(), graphics.Solid(c), r)
	}
	fill(graphics.RGB(255, 0, 0), graphics.Rect{Left: 50, Top: 50, Right: 250, Bottom: 150})
	fill(graphics.RGB(0, 255, 0), graphics.Rect{Left: width - 250, Top: 50, Right: width - 50, Bottom: 150})
	cx, cy := width/2, height/2
	fill(graphics.RGB(0, 0, 255), graphics.Rect{Left: cx - 100, Top: cy - 100, Right: cx + 100, Bottom: cy + 100})
	return scene
}
