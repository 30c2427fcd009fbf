// Package stats samples frame times over a sliding window and draws the
// frame statistics overlay.
//
// Stats is an accumulator owned by a single render loop. It is not safe for
// concurrent use.
package stats

import (
	"math"
	"time"
)

// WindowSize is the number of most recent samples kept.
const WindowSize = 100

// Sentinels reported by Min and Max before any sample has been added, or
// after ClearMinAndMax.
const (
	NoMin uint64 = math.MaxUint64
	NoMax uint64 = 0
)

// Stats holds the last WindowSize frame times in microseconds, their running
// sum, and the minimum and maximum seen since the last reset.
//
// Min and max are cumulative: evicting a sample from the window does not
// change them. Only a smaller or larger sample, or ClearMinAndMax, does.
type Stats struct {
	samples [WindowSize]uint64
	index   int // next write position
	count   int
	sum     uint64
	min     uint64
	max     uint64
}

// New returns an empty accumulator.
func New() *Stats {
	return &Stats{min: NoMin, max: NoMax}
}

// AddSample records one frame time in microseconds, evicting the oldest
// sample once the window is full.
func (s *Stats) AddSample(micros uint64) {
	if s.count < WindowSize {
		s.count++
	} else {
		s.sum -= s.samples[s.index]
	}
	s.samples[s.index] = micros
	s.index = (s.index + 1) % WindowSize
	s.sum += micros

	s.min = min(s.min, micros)
	s.max = max(s.max, micros)
}

// AddDuration records d truncated to whole microseconds. Negative durations
// are recorded as zero.
func (s *Stats) AddDuration(d time.Duration) {
	s.AddSample(uint64(max(d, 0) / time.Microsecond))
}

// ClearMinAndMax resets min and max to their sentinels. The window and sum
// are untouched.
func (s *Stats) ClearMinAndMax() {
	s.min = NoMin
	s.max = NoMax
}

// Len returns the number of samples in the window.
func (s *Stats) Len() int {
	return s.count
}

// Sum returns the sum of the samples in the window.
func (s *Stats) Sum() uint64 {
	return s.sum
}

// Min returns the smallest sample since the last reset, or NoMin.
func (s *Stats) Min() uint64 {
	return s.min
}

// Max returns the largest sample since the last reset, or NoMax.
func (s *Stats) Max() uint64 {
	return s.max
}

// Samples returns a copy of the window, oldest first.
func (s *Stats) Samples() []uint64 {
	if s.count == 0 {
		return nil
	}
	out := make([]uint64, s.count)
	s.SamplesInto(out)
	return out
}

// SamplesInto copies up to len(dst) samples, oldest first, and returns the
// number copied. It does not allocate.
func (s *Stats) SamplesInto(dst []uint64) int {
	n := min(s.count, len(dst))
	if n == 0 {
		return 0
	}
	start := 0
	if s.count == WindowSize {
		start = s.index
	}
	first := copy(dst[:n], s.samples[start:min(start+n, WindowSize)])
	copy(dst[first:n], s.samples[:n-first])
	return n
}

// Snapshot summarizes the window. An empty window yields the zero Snapshot,
// for which HasData reports false. A window of zero samples reports an FPS
// of zero.
func (s *Stats) Snapshot() Snapshot {
	if s.count == 0 {
		return Snapshot{}
	}
	avgMs := float64(s.sum) / float64(s.count) * 0.001
	// Frames under a microsecond truncate to zero; there is no finite rate.
	fps := 0.0
	if avgMs > 0 {
		fps = 1000 / avgMs
	}
	return Snapshot{
		FPS:            fps,
		FrameTimeMs:    avgMs,
		FrameTimeMinMs: float64(s.min) * 0.001,
		FrameTimeMaxMs: float64(s.max) * 0.001,
		Samples:        s.count,
	}
}

// Reset empties the window and clears min and max.
func (s *Stats) Reset() {
	*s = Stats{min: NoMin, max: NoMax}
}
