package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/felt-ui/felt/pkg/render"
	"github.com/felt-ui/felt/pkg/render/ggtarget"
)

func init() {
	RegisterCommand(&Command{
		Name:  "bench",
		Short: "Time the rectangle benchmark",
		Long: `Rasterize a grid of rectangles repeatedly and report frame statistics.

Each rectangle gets its own color, so every frame fills the whole viewport
with count distinct shapes.

Flags:
  -count N         Rectangles per frame (default: 10000)
  -frames N        Frames to render (default: 60)
  -width W         Viewport width (default: window.width or 800)
  -height H        Viewport height (default: window.height or 600)`,
		Usage: "felt bench [-count n] [-frames n] [-width w] [-height h]",
		Run:   runBench,
	})
}

func runBench(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("count", 10000, "rectangles per frame")
	frames := fs.Int("frames", 60, "frames to render")
	width := fs.Int("width", cfg.Width, "viewport width")
	height := fs.Int("height", cfg.Height, "viewport height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count <= 0 || *frames <= 0 {
		return fmt.Errorf("-count and -frames must be positive")
	}

	target, err := ggtarget.New(*width, *height)
	if err != nil {
		return err
	}
	defer target.Close()

	opts := cfg.Options
	opts.ShowStats = true
	r, err := render.New(target, *width, *height, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	// One extra frame: the first only starts the frame clock.
	for range *frames + 1 {
		if err := r.RenderBenchmark(*count); err != nil && !render.Recoverable(err) {
			return err
		}
	}
	total := time.Since(start)

	snap := r.Stats().Snapshot()
	fmt.Fprintf(stdout, "Benchmark: %d rects, %dx%d, %d frames in %v\n",
		*count, *width, *height, r.FrameCount(), total.Round(time.Millisecond))
	fmt.Fprintf(stdout, "  %s\n", snap)
	if r.SkippedCount() > 0 {
		fmt.Fprintf(stdout, "  skipped: %d\n", r.SkippedCount())
	}
	return nil
}
