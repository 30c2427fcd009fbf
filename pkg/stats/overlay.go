package stats

import (
	"fmt"
	"strconv"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/logging"
	"github.com/felt-ui/felt/pkg/text"
	"github.com/felt-ui/felt/pkg/ui"
)

// OverlayInfo carries the renderer state shown on the overlay.
type OverlayInfo struct {
	// VSync and Antialiasing are printed with their String methods.
	VSync        fmt.Stringer
	Antialiasing fmt.Stringer
	// Viewport is the window size; the panel is anchored to its bottom-right
	// corner.
	Viewport graphics.Size
}

// Layout is the geometry of the overlay panel for a viewport.
type Layout struct {
	// Panel is the panel rectangle in viewport coordinates.
	Panel graphics.Rect

	TextHeight     float64
	TextSize       float64
	LeftMargin     float64
	LeftPadding    float64
	GraphMaxHeight float64
	GraphMaxWidth  float64
	BarExtent      float64
	BarWidth       float64
}

// OverlayLayout computes the panel geometry for a viewport and a number of
// label lines. The panel is 40% of the viewport width clamped to [200, 600]
// and 70% as tall as it is wide.
func OverlayLayout(viewport graphics.Size, labels int) Layout {
	width := min(max(viewport.Width*0.4, 200), 600)
	height := width * 0.7
	textHeight := height * 0.5 / float64(1+labels)
	leftPadding := width * 0.05
	graphMaxWidth := width - 2*(width*0.01) - leftPadding
	barExtent := graphMaxWidth / WindowSize
	return Layout{
		Panel:          graphics.RectFromLTWH(viewport.Width-width, viewport.Height-height, width, height),
		TextHeight:     textHeight,
		TextSize:       textHeight * 0.9,
		LeftMargin:     width * 0.01,
		LeftPadding:    leftPadding,
		GraphMaxHeight: height * 0.5,
		GraphMaxWidth:  graphMaxWidth,
		BarExtent:      barExtent,
		BarWidth:       barExtent * 0.4,
	}
}

// Labels returns the overlay text lines, top to bottom.
func Labels(snap Snapshot, info OverlayInfo) []string {
	return []string{
		fmt.Sprintf("Frame Time: %.2f ms", snap.FrameTimeMs),
		fmt.Sprintf("Frame Time (min): %.2f ms", snap.FrameTimeMinMs),
		fmt.Sprintf("Frame Time (max): %.2f ms", snap.FrameTimeMaxMs),
		"VSync: " + stringOr(info.VSync),
		"AA method: " + stringOr(info.Antialiasing),
		fmt.Sprintf("Resolution: %gx%g", info.Viewport.Width, info.Viewport.Height),
	}
}

// FPSLabel returns the FPS line drawn at the top right of the panel. A
// snapshot without a rate shows "FPS: --".
func FPSLabel(snap Snapshot) string {
	if snap.FPS <= 0 {
		return "FPS: --"
	}
	return fmt.Sprintf("FPS: %.2f", snap.FPS)
}

func stringOr(s fmt.Stringer) string {
	if s == nil {
		return "unknown"
	}
	return s.String()
}

// DrawOverlay draws the statistics panel: a translucent background, the
// labels, one bar per sample and the threshold markers that fall below the
// chart's full scale. Without data only the background and labels are drawn.
func DrawOverlay(dc ui.DrawContext, snap Snapshot, samples []uint64, info OverlayInfo) {
	labels := Labels(snap, info)
	l := OverlayLayout(info.Viewport, len(labels))
	panel := graphics.TranslateBy(graphics.Offset{X: l.Panel.Left, Y: l.Panel.Top})

	dc.Fill(graphics.FillNonZero, panel, graphics.Solid(graphics.ColorBlack.WithAlpha(0.75)),
		graphics.RectFromLTWH(0, 0, l.Panel.Width(), l.Panel.Height()))

	face, err := text.Default()
	if err != nil {
		logging.For("stats").Warn("overlay font unavailable", "error", err)
	}
	white := graphics.Solid(graphics.ColorWhite)
	drawText := func(s string, size float64, at graphics.Affine) {
		if face == nil {
			return
		}
		dc.DrawGlyphs(face.Layout(s, size).Run, at, white)
	}

	for i, label := range labels {
		drawText(label, l.TextSize, panel.Mul(graphics.Translate(l.LeftMargin, float64(i+1)*l.TextHeight)))
	}
	drawText(FPSLabel(snap), l.TextSize, panel.Mul(graphics.Translate(l.Panel.Width()*0.67, l.TextHeight)))

	if !snap.HasData() || len(samples) == 0 {
		return
	}
	displayMax := snap.DisplayMax()
	if displayMax <= 0 {
		return
	}

	leftMarginPadding := l.LeftMargin + l.LeftPadding
	graphTop := float64(1+len(labels)) * l.TextHeight
	bar := graphics.NewPath().
		MoveTo(0, l.GraphMaxHeight).
		LineTo(0, 0).
		LineTo(l.BarWidth, 0).
		LineTo(l.BarWidth, l.GraphMaxHeight).
		Close()

	for i, sample := range samples {
		h := min(float64(sample)*0.001, displayMax) / displayMax
		t := panel.
			Mul(graphics.Translate(float64(i)*l.BarExtent, l.GraphMaxHeight)).
			Mul(graphics.Translate(leftMarginPadding, graphTop)).
			Mul(graphics.Scale(1, -h))
		dc.Fill(graphics.FillNonZero, t, graphics.Solid(BarColor(sample)), bar)
	}

	marker := graphics.Line{
		P0: graphics.Offset{X: 0, Y: l.GraphMaxHeight},
		P1: graphics.Offset{X: l.GraphMaxWidth, Y: l.GraphMaxHeight},
	}
	markerStyle := graphics.NewStrokeStyle(l.GraphMaxHeight * 0.01)
	labelSize := l.GraphMaxHeight * 0.05
	for _, th := range Thresholds {
		if th >= displayMax {
			continue
		}
		y := th / displayMax
		drawText(strconv.FormatFloat(th, 'f', -1, 64), labelSize,
			panel.Mul(graphics.Translate(l.LeftMargin, (2-y)*l.GraphMaxHeight+labelSize*0.5)))
		dc.Stroke(markerStyle, panel.Mul(graphics.Translate(leftMarginPadding, (1-y)*l.GraphMaxHeight)), white, marker)
	}
}

// Overlay returns a viewport-sized canvas descriptor that draws the current
// statistics. Paint it after the application tree so it lands on top.
func (s *Stats) Overlay(info OverlayInfo) *ui.CanvasElement {
	snap := s.Snapshot()
	samples := s.Samples()
	return ui.Canvas(func(dc ui.DrawContext) {
		DrawOverlay(dc, snap, samples, info)
	}).WithSize(info.Viewport)
}
