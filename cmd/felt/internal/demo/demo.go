// Package demo builds the animated scene shown by "felt render": a window
// backdrop, a bordered panel and a scroll viewport that pans over a tall
// striped canvas.
package demo

import (
	"math"
	"time"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/ui"
)

// Scene geometry.
var (
	PanelOffset  = graphics.Offset{X: 100, Y: 100}
	PanelSize    = graphics.Size{Width: 600, Height: 400}
	ContentSize  = graphics.Size{Width: 500, Height: 1200}
	CanvasSize   = graphics.Size{Width: 400, Height: 1100}
	BorderWidth  = 4.0
	CircleRadius = 15.0
)

// Palette.
var (
	Backdrop     = graphics.RGB(10, 10, 10)
	PanelFill    = graphics.RGB(40, 40, 40)
	PanelBorder  = graphics.RGB(150, 150, 150)
	ContentFill  = graphics.RGB(80, 80, 80)
	CanvasFill   = graphics.RGB(60, 60, 100)
	Stripe       = graphics.RGB(70, 70, 110)
	Header       = graphics.RGB(200, 50, 50)
	Footer       = graphics.RGB(50, 200, 50)
	CircleColor  = graphics.RGB(200, 200, 255)
	stripeCount  = 22
	circleCount  = 50
	scrollTravel = 400.0
)

// ScrollOffset returns the vertical scroll position at elapsed time. It
// swings between 0 and twice the travel once every 2π seconds.
func ScrollOffset(elapsed time.Duration) float64 {
	return math.Sin(elapsed.Seconds())*scrollTravel + scrollTravel
}

// Root returns the scene for a frame at elapsed time. It has the signature
// of render.BuildFunc.
func Root(_ int, elapsed time.Duration) ui.IntoElement {
	t := elapsed.Seconds()
	return ui.Div().
		WithBackground(Backdrop).
		WithChild(ui.Div().
			WithOffset(PanelOffset).
			WithSize(PanelSize).
			WithBackground(PanelFill).
			WithBorder(PanelBorder, BorderWidth).
			WithChild(ui.ScrollView().
				WithSize(PanelSize).
				WithOffset(graphics.Offset{Y: ScrollOffset(elapsed)}).
				WithChild(ui.Div().
					WithSize(ContentSize).
					WithOffset(graphics.Offset{X: 50}).
					WithBackground(ContentFill).
					WithChild(ui.Div().
						WithOffset(graphics.Offset{X: 50, Y: 50}).
						WithBackground(CanvasFill).
						WithChild(ui.Canvas(stripes(t)).WithSize(CanvasSize))))))
}

// stripes draws the canvas content: bands, a header and footer, and a
// column of circles swinging sideways that is clipped to the canvas.
func stripes(t float64) ui.CanvasFunc {
	return func(dc ui.DrawContext) {
		id := graphics.Identity()
		w := dc.Size().Width

		for i := range stripeCount {
			y := float64(i) * 50
			dc.Fill(graphics.FillNonZero, id, graphics.Solid(Stripe), graphics.Rect{Left: 0, Top: y, Right: w, Bottom: y + 25})
		}
		dc.Fill(graphics.FillNonZero, id, graphics.Solid(Header), graphics.Rect{Right: w, Bottom: 50})
		dc.Fill(graphics.FillNonZero, id, graphics.Solid(Footer), graphics.Rect{Top: 1050, Right: w, Bottom: 1100})

		dc.PushClipLayer(graphics.RectFromSize(dc.Size()))
		for i := range circleCount {
			y := 50 + float64(i)*40
			x := 200 + math.Sin(t*2+float64(i)*0.2)*250
			dc.Fill(graphics.FillNonZero, id, graphics.Solid(CircleColor),
				graphics.Circle{Center: graphics.Offset{X: x, Y: y}, Radius: CircleRadius})
		}
		dc.PopLayer()
	}
}
