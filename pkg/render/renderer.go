package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/felt-ui/felt/pkg/errors"
	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/logging"
	"github.com/felt-ui/felt/pkg/stats"
	"github.com/felt-ui/felt/pkg/ui"
)

// Renderer paints frames into a Target. It is owned by a single render loop
// and is not safe for concurrent use.
type Renderer struct {
	target Target
	width  int
	height int

	opts  Options
	now   func() time.Time
	stats *stats.Stats
	log   *slog.Logger

	lastFrameStart time.Time
	hasLastFrame   bool

	frames  uint64
	skipped uint64
}

// New creates a renderer for a viewport of width x height pixels.
func New(target Target, width, height int, opts Options) (*Renderer, error) {
	if target == nil {
		return nil, errors.New("render.New", errors.KindInit, ErrNoSurface)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	r := &Renderer{
		target: target,
		width:  max(width, 0),
		height: max(height, 0),
		opts:   opts,
		now:    now,
		stats:  stats.New(),
		log:    logging.For("render"),
	}
	r.log.Info("renderer created", "width", r.width, "height", r.height,
		"vsync", opts.VSync, "aa", opts.Antialiasing, "stats", opts.ShowStats)
	return r, nil
}

// Render paints root, then the statistics overlay when enabled, and submits
// the frame. A nil root renders only the overlay.
func (r *Renderer) Render(root ui.IntoElement) error {
	r.sample()
	return r.submit("render.Render", r.Compose(root))
}

// Compose paints root and, when stats are shown, the overlay into a new
// scene without sampling or submitting.
func (r *Renderer) Compose(root ui.IntoElement) *graphics.Scene {
	w, h := float64(r.width), float64(r.height)
	scene := graphics.NewScene()
	ui.PaintInto(scene, root, w, h)
	if r.opts.ShowStats {
		ui.PaintInto(scene, r.stats.Overlay(r.overlayInfo()), w, h)
	}
	return scene
}

// RenderEmpty submits a frame with no content, clearing to the base color.
func (r *Renderer) RenderEmpty() error {
	return r.submit("render.RenderEmpty", graphics.NewScene())
}

// RenderBenchmark submits a grid of count rectangles covering the viewport.
func (r *Renderer) RenderBenchmark(count int) error {
	r.sample()
	return r.submit("render.RenderBenchmark", BenchmarkScene(count, float64(r.width), float64(r.height)))
}

// RenderTestScene submits three reference rectangles.
func (r *Renderer) RenderTestScene() error {
	r.sample()
	return r.submit("render.RenderTestScene", TestScene(float64(r.width), float64(r.height)))
}

// sample records the time since the previous frame start. The first frame
// after stats are enabled only starts the clock.
func (r *Renderer) sample() {
	if !r.opts.ShowStats {
		return
	}
	start := r.now()
	if r.hasLastFrame {
		r.stats.AddDuration(start.Sub(r.lastFrameStart))
	}
	r.lastFrameStart = start
	r.hasLastFrame = true
}

func (r *Renderer) submit(op string, scene *graphics.Scene) error {
	err := r.target.Submit(scene, Params{
		BaseColor:    r.opts.BaseColor,
		Width:        r.width,
		Height:       r.height,
		Antialiasing: r.opts.Antialiasing,
	})
	if err != nil {
		r.skipped++
		fe := errors.New(op, Classify(err), err)
		errors.Report(fe)
		r.log.Debug("frame skipped", "op", op, "kind", fe.Kind, "error", err)
		return fe
	}
	r.frames++
	return nil
}

func (r *Renderer) overlayInfo() stats.OverlayInfo {
	return stats.OverlayInfo{
		VSync:        r.opts.VSync,
		Antialiasing: r.opts.Antialiasing,
		Viewport:     graphics.Size{Width: float64(r.width), Height: float64(r.height)},
	}
}

// Resize changes the viewport. Zero or negative sizes are ignored, as are
// resizes to the current size.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 || (width == r.width && height == r.height) {
		return nil
	}
	if rs, ok := r.target.(Resizer); ok {
		if err := rs.Resize(width, height); err != nil {
			fe := errors.New("render.Resize", Classify(err), err)
			errors.Report(fe)
			return fe
		}
	}
	r.width, r.height = width, height
	r.log.Debug("resized", "width", width, "height", height)
	return nil
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// ToggleStats flips the statistics overlay.
func (r *Renderer) ToggleStats() {
	r.SetStatsShown(!r.opts.ShowStats)
}

// SetStatsShown enables or disables frame sampling and the overlay. Turning
// stats on restarts the frame clock so the gap while hidden is not sampled.
func (r *Renderer) SetStatsShown(shown bool) {
	if shown && !r.opts.ShowStats {
		r.hasLastFrame = false
	}
	r.opts.ShowStats = shown
	r.log.Debug("stats toggled", "shown", shown)
}

// StatsShown reports whether the overlay is enabled.
func (r *Renderer) StatsShown() bool {
	return r.opts.ShowStats
}

// VSync returns the current vsync mode.
func (r *Renderer) VSync() VSync {
	return r.opts.VSync
}

// SetVSync switches the vsync mode, reconfiguring the target if it
// supports it.
func (r *Renderer) SetVSync(v VSync) error {
	if ps, ok := r.target.(PresentModeSetter); ok {
		if err := ps.SetVSync(v); err != nil {
			fe := errors.New("render.SetVSync", Classify(err), err)
			errors.Report(fe)
			return fe
		}
	}
	r.opts.VSync = v
	return nil
}

// Antialiasing returns the antialiasing method passed to the target.
func (r *Renderer) Antialiasing() Antialiasing {
	return r.opts.Antialiasing
}

// Stats returns the frame statistics accumulator.
func (r *Renderer) Stats() *stats.Stats {
	return r.stats
}

// FrameCount returns the number of frames submitted successfully.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// SkippedCount returns the number of frames whose submission failed.
func (r *Renderer) SkippedCount() uint64 {
	return r.skipped
}

// BuildFunc returns the root descriptor for a frame.
type BuildFunc func(frame int, elapsed time.Duration) ui.IntoElement

// Run renders frames until ctx is done, n frames have been attempted (n <= 0
// means no limit), or a frame fails with an error that is not recoverable.
// Frames that fail recoverably are skipped and the loop continues.
func (r *Renderer) Run(ctx context.Context, n int, build BuildFunc) error {
	start := r.now()
	for frame := 0; n <= 0 || frame < n; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var root ui.IntoElement
		if build != nil {
			root = build(frame, r.now().Sub(start))
		}
		if err := r.Render(root); err != nil && !Recoverable(err) {
			return err
		}
	}
	return nil
}
