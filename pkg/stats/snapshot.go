package stats

import (
	"fmt"

	"github.com/felt-ui/felt/pkg/graphics"
)

// Bar colors by frame time.
var (
	Color60FPS   = graphics.RGB(100, 143, 255)
	Color30FPS   = graphics.RGB(255, 176, 0)
	ColorBelow30 = graphics.RGB(220, 38, 127)
)

// Frame time limits in microseconds for the 60 and 30 fps bar colors.
const (
	Limit60FPS uint64 = 16_667
	Limit30FPS uint64 = 33_334
)

// Thresholds are the reference frame times in milliseconds marked on the
// overlay chart.
var Thresholds = [...]float64{8.33, 16.66, 33.33}

// Snapshot is a summary of the sample window in milliseconds.
type Snapshot struct {
	FPS            float64
	FrameTimeMs    float64
	FrameTimeMinMs float64
	FrameTimeMaxMs float64
	// Samples is the window length the snapshot was taken over.
	Samples int
}

// HasData reports whether the snapshot was taken over at least one sample.
// The other fields are zero when it reports false.
func (s Snapshot) HasData() bool {
	return s.Samples > 0
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	if !s.HasData() {
		return "no data"
	}
	return fmt.Sprintf("fps=%.2f avg=%.2fms min=%.2fms max=%.2fms n=%d",
		s.FPS, s.FrameTimeMs, s.FrameTimeMinMs, s.FrameTimeMaxMs, s.Samples)
}

// DisplayMax returns the chart's full-scale value in milliseconds. It is the
// observed max unless that exceeds three times the mean, in which case it is
// 1.33 times the mean rounded up to a multiple of 5, so a single outlier
// does not flatten the chart.
func (s Snapshot) DisplayMax() float64 {
	if s.FrameTimeMaxMs > 3*s.FrameTimeMs {
		return float64(roundUp(int(1.33334*s.FrameTimeMs), 5))
	}
	return s.FrameTimeMaxMs
}

// BarColor returns the chart color for a sample in microseconds.
func BarColor(micros uint64) graphics.Color {
	switch {
	case micros <= Limit60FPS:
		return Color60FPS
	case micros <= Limit30FPS:
		return Color30FPS
	default:
		return ColorBelow30
	}
}

// roundUp rounds n up to the next multiple of f. Exact multiples round to
// themselves and zero rounds to f.
func roundUp(n, f int) int {
	return n - 1 - (n-1)%f + f
}
