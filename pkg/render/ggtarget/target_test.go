package ggtarget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/render"
	"github.com/felt-ui/felt/pkg/ui"
)

func params(w, h int) render.Params {
	return render.Params{BaseColor: graphics.ColorWhite, Width: w, Height: h, Antialiasing: render.AntialiasingArea}
}

func assertColor(t *testing.T, pm *gg.Pixmap, x, y int, want graphics.Color) {
	t.Helper()
	got := pm.GetPixel(x, y)
	r, g, b, a := want.RGBAF()
	const tol = 0.02
	assert.InDelta(t, r, got.R, tol, "red at (%d,%d)", x, y)
	assert.InDelta(t, g, got.G, tol, "green at (%d,%d)", x, y)
	assert.InDelta(t, b, got.B, tol, "blue at (%d,%d)", x, y)
	assert.InDelta(t, a, got.A, tol, "alpha at (%d,%d)", x, y)
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrNoSurface)
}

func TestSubmit_TestScene(t *testing.T) {
	target, err := New(800, 600)
	require.NoError(t, err)
	defer target.Close()

	require.NoError(t, target.Submit(render.TestScene(800, 600), params(800, 600)))
	pm := target.Pixmap()
	assertColor(t, pm, 100, 100, graphics.ColorRed)
	assertColor(t, pm, 700, 100, graphics.ColorGreen)
	assertColor(t, pm, 400, 300, graphics.ColorBlue)
	assertColor(t, pm, 10, 10, graphics.ColorWhite)
}

func TestSubmit_CanvasClipsContent(t *testing.T) {
	target, err := New(100, 100)
	require.NoError(t, err)
	defer target.Close()

	root := ui.Div().
		WithOffset(graphics.Offset{X: 20, Y: 20}).
		WithChild(ui.Canvas(func(dc ui.DrawContext) {
			// Twice the canvas size; everything past 30x30 must be clipped.
			dc.Fill(graphics.FillNonZero, graphics.Identity(), graphics.Solid(graphics.ColorBlue),
				graphics.RectFromLTWH(0, 0, 60, 60))
		}).WithSize(graphics.Size{Width: 30, Height: 30}))

	require.NoError(t, target.Submit(ui.Frame(root, 100, 100), params(100, 100)))
	pm := target.Pixmap()
	assertColor(t, pm, 35, 35, graphics.ColorBlue)
	assertColor(t, pm, 60, 60, graphics.ColorWhite)
	assertColor(t, pm, 35, 65, graphics.ColorWhite)
	assertColor(t, pm, 10, 10, graphics.ColorWhite)
}

func TestSubmit_ScrollOffsetAndBorder(t *testing.T) {
	target, err := New(100, 100)
	require.NoError(t, err)
	defer target.Close()

	root := ui.ScrollView().
		WithSize(graphics.Size{Width: 50, Height: 50}).
		WithOffset(graphics.Offset{X: 0, Y: 40}).
		WithChild(ui.Div().
			WithSize(graphics.Size{Width: 50, Height: 80}).
			WithBackground(graphics.ColorRed))

	require.NoError(t, target.Submit(ui.Frame(root, 100, 100), params(100, 100)))
	pm := target.Pixmap()
	// 80 - 40 rows of content remain visible.
	assertColor(t, pm, 25, 20, graphics.ColorRed)
	assertColor(t, pm, 25, 45, graphics.ColorWhite)
	assertColor(t, pm, 75, 20, graphics.ColorWhite)
}

func TestSubmit_ResizesToParams(t *testing.T) {
	target, err := New(10, 10)
	require.NoError(t, err)
	defer target.Close()

	require.NoError(t, target.Submit(graphics.NewScene(), params(40, 20)))
	w, h := target.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, 40, target.Pixmap().Width())
	assertColor(t, target.Pixmap(), 39, 19, graphics.ColorWhite)
}

func TestSubmit_AfterClose(t *testing.T) {
	target, err := New(10, 10)
	require.NoError(t, err)
	require.NoError(t, target.Close())

	err = target.Submit(graphics.NewScene(), params(10, 10))
	assert.ErrorIs(t, err, render.ErrDeviceLost)
	assert.False(t, render.Recoverable(err))
}

func TestSavePNG(t *testing.T) {
	target, err := New(16, 16)
	require.NoError(t, err)
	defer target.Close()
	require.NoError(t, target.Submit(render.BenchmarkScene(4, 16, 16), params(16, 16)))

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, target.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestClearOutside(t *testing.T) {
	pm := gg.NewPixmap(4, 3)
	pm.Clear(gg.RGBA{R: 1, A: 1})
	clearOutside(pm, deviceRect(graphics.Rect{Left: 1, Top: 1, Right: 3, Bottom: 2}))

	for y := range 3 {
		for x := range 4 {
			inside := x >= 1 && x < 3 && y == 1
			assert.Equal(t, inside, pm.GetPixel(x, y).A > 0, "pixel (%d,%d)", x, y)
		}
	}
}

func TestSubmit_LinearGradient(t *testing.T) {
	target, err := New(200, 100)
	require.NoError(t, err)
	defer target.Close()

	red2blue := graphics.NewLinearGradient(graphics.Offset{X: 20}, graphics.Offset{X: 80}, []graphics.GradientStop{
		{Position: 0, Color: graphics.ColorRed},
		{Position: 1, Color: graphics.ColorBlue},
	})
	root := ui.Div().
		WithOffset(graphics.Offset{X: 50, Y: 20}).
		WithChild(ui.Canvas(func(dc ui.DrawContext) {
			dc.Fill(graphics.FillNonZero, graphics.Identity(), graphics.GradientBrush(red2blue),
				graphics.RectFromLTWH(0, 0, 100, 60))
		}).WithSize(graphics.Size{Width: 100, Height: 60}))

	require.NoError(t, target.Submit(ui.Frame(root, 200, 100), params(200, 100)))
	pm := target.Pixmap()
	// The gradient runs from x=70 to x=130 in device space and pads beyond.
	assertColor(t, pm, 55, 50, graphics.ColorRed)
	assertColor(t, pm, 145, 50, graphics.ColorBlue)
	mid := pm.GetPixel(100, 50)
	assert.Greater(t, mid.R, 0.1)
	assert.Greater(t, mid.B, 0.1)
	assert.Less(t, mid.R, 0.9)
	assertColor(t, pm, 20, 50, graphics.ColorWhite)
}

func TestSubmit_RadialGradient(t *testing.T) {
	target, err := New(100, 100)
	require.NoError(t, err)
	defer target.Close()

	green2red := graphics.NewRadialGradient(graphics.Offset{X: 25, Y: 25}, 10, []graphics.GradientStop{
		{Position: 0, Color: graphics.ColorGreen},
		{Position: 1, Color: graphics.ColorRed},
	})
	root := ui.Canvas(func(dc ui.DrawContext) {
		// Scaled by two: centre lands on (50,50) with a device radius of 20.
		dc.Fill(graphics.FillNonZero, graphics.Scale(2, 2), graphics.GradientBrush(green2red),
			graphics.RectFromLTWH(0, 0, 50, 50))
	}).WithSize(graphics.Size{Width: 100, Height: 100})

	require.NoError(t, target.Submit(ui.Frame(root, 100, 100), params(100, 100)))
	pm := target.Pixmap()
	centre := pm.GetPixel(50, 50)
	assert.InDelta(t, 1, centre.G, 0.05)
	assert.InDelta(t, 0, centre.R, 0.05)
	// Three quarters of the device radius is still short of the last stop.
	assert.Greater(t, pm.GetPixel(65, 50).G, 0.1)
	assertColor(t, pm, 95, 50, graphics.ColorRed)
}

func TestSubmit_DrawImage(t *testing.T) {
	target, err := New(100, 100)
	require.NoError(t, err)
	defer target.Close()

	green := make([]byte, 10*10*4)
	for i := 0; i < len(green); i += 4 {
		green[i+1], green[i+3] = 0xff, 0xff
	}
	img := graphics.NewImage(green, 10, 10)
	root := ui.Div().
		WithOffset(graphics.Offset{X: 20}).
		WithChild(ui.Canvas(func(dc ui.DrawContext) {
			dc.DrawImage(img, graphics.Translate(5, 30))
		}).WithSize(graphics.Size{Width: 50, Height: 50}))

	require.NoError(t, target.Submit(ui.Frame(root, 100, 100), params(100, 100)))
	pm := target.Pixmap()
	assertColor(t, pm, 30, 35, graphics.ColorGreen)
	assertColor(t, pm, 22, 35, graphics.ColorWhite)
	assertColor(t, pm, 30, 45, graphics.ColorWhite)
	assertColor(t, pm, 30, 25, graphics.ColorWhite)
}

func TestToBrush_InvalidGradientFallsBackToSolid(t *testing.T) {
	b := graphics.GradientBrush(graphics.NewLinearGradient(graphics.Offset{}, graphics.Offset{X: 1}, nil))
	_, ok := toBrush(b, graphics.Identity()).(gg.SolidBrush)
	assert.True(t, ok, "invalid gradient should paint a solid brush")
}
