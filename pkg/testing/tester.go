package testing

import (
	"testing"
	"time"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/render"
	"github.com/felt-ui/felt/pkg/ui"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
	// DefaultFrameInterval is the clock advance per pumped frame (60 fps).
	DefaultFrameInterval = 16667 * time.Microsecond
)

// Tester drives a render.Renderer against a CaptureTarget with a fake clock.
type Tester struct {
	t        testing.TB
	clock    *FakeClock
	target   *CaptureTarget
	renderer *render.Renderer
	interval time.Duration
}

// NewTester creates a tester with a width x height viewport and the default
// renderer options.
func NewTester(t testing.TB, width, height int) *Tester {
	t.Helper()
	return NewTesterWithOptions(t, width, height, render.DefaultOptions())
}

// NewTesterWithOptions is like NewTester but with explicit options. The
// options' clock is replaced by the tester's fake clock.
func NewTesterWithOptions(t testing.TB, width, height int, opts render.Options) *Tester {
	t.Helper()
	clk := NewFakeClock()
	target := NewCaptureTarget()
	opts.Now = clk.Now
	r, err := render.New(target, width, height, opts)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return &Tester{t: t, clock: clk, target: target, renderer: r, interval: DefaultFrameInterval}
}

// Clock returns the fake clock used for frame sampling.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Target returns the capture target.
func (t *Tester) Target() *CaptureTarget {
	return t.target
}

// Renderer returns the renderer under test.
func (t *Tester) Renderer() *render.Renderer {
	return t.renderer
}

// SetFrameInterval changes the clock advance applied after each Pump.
func (t *Tester) SetFrameInterval(d time.Duration) {
	t.interval = d
}

// Pump renders one frame of root and advances the clock by the frame
// interval. A render error is returned, not reported to t.
func (t *Tester) Pump(root ui.IntoElement) error {
	err := t.renderer.Render(root)
	t.clock.Advance(t.interval)
	return err
}

// PumpN renders n frames of root and fails the test on the first error.
func (t *Tester) PumpN(root func() ui.IntoElement, n int) {
	t.t.Helper()
	for i := range n {
		if err := t.Pump(root()); err != nil {
			t.t.Fatalf("frame %d: %v", i, err)
		}
	}
}

// LastScene returns the most recently submitted scene, or nil.
func (t *Tester) LastScene() *graphics.Scene {
	return t.target.Last().Scene
}
