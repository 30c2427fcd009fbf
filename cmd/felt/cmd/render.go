package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/felt-ui/felt/cmd/felt/internal/demo"
	"github.com/felt-ui/felt/pkg/render"
	"github.com/felt-ui/felt/pkg/render/ggtarget"
	"github.com/felt-ui/felt/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo scene to a PNG",
		Long: `Render frames of the demo scene offscreen and write the last one as a PNG.

Frames are spaced by a fixed interval so animation and the statistics
overlay are reproducible. Values not given as flags come from felt.yaml.

Flags:
  -o PATH          Output file (default: output.path or <app>.png)
  -frames N        Number of frames to render (default: output.frames or 1)
  -width W         Viewport width (default: window.width or 800)
  -height H        Viewport height (default: window.height or 600)
  -interval D      Simulated frame interval (default: 16.667ms)
  -stats           Paint the statistics overlay (default: renderer.show_stats)`,
		Usage: "felt render [-o path] [-frames n] [-width w] [-height h] [-interval d] [-stats=false]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", cfg.OutputPath, "output file")
	frames := fs.Int("frames", cfg.Frames, "number of frames")
	width := fs.Int("width", cfg.Width, "viewport width")
	height := fs.Int("height", cfg.Height, "viewport height")
	interval := fs.Duration("interval", 16667*time.Microsecond, "simulated frame interval")
	showStats := fs.Bool("stats", cfg.Options.ShowStats, "paint the statistics overlay")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames <= 0 {
		return fmt.Errorf("-frames must be positive (got %d)", *frames)
	}
	if *interval <= 0 {
		return fmt.Errorf("-interval must be positive (got %v)", *interval)
	}

	target, err := ggtarget.New(*width, *height)
	if err != nil {
		return err
	}
	defer target.Close()

	clk := &frameClock{base: time.Now(), interval: *interval}
	opts := cfg.Options
	opts.ShowStats = *showStats
	opts.Now = clk.Now
	r, err := render.New(target, *width, *height, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := r.Run(ctx, *frames, func(frame int, _ time.Duration) ui.IntoElement {
		return demo.Root(frame, clk.Advance(frame))
	}); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := target.SavePNG(*out); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d, %d frames, %d skipped)\n",
		*out, *width, *height, r.FrameCount(), r.SkippedCount())
	if r.StatsShown() {
		fmt.Fprintf(stdout, "Stats: %s\n", r.Stats().Snapshot())
	}
	return nil
}

// frameClock reports simulated time: frame n starts at base + n*interval.
type frameClock struct {
	base     time.Time
	interval time.Duration
	elapsed  time.Duration
}

// Advance moves the clock to the start of frame and returns the elapsed
// time since frame 0.
func (c *frameClock) Advance(frame int) time.Duration {
	c.elapsed = time.Duration(frame) * c.interval
	return c.elapsed
}

func (c *frameClock) Now() time.Time {
	return c.base.Add(c.elapsed)
}
