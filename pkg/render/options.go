package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/felt-ui/felt/pkg/graphics"
)

// VSync selects how presented frames synchronize with the display.
type VSync int

const (
	// VSyncOff presents immediately and may tear.
	VSyncOff VSync = iota
	// VSyncOn waits for vertical blank (FIFO).
	VSyncOn
	// VSyncMailbox replaces the queued frame without blocking.
	VSyncMailbox
)

var vsyncNames = [...]string{"off", "on", "mailbox"}

func (v VSync) String() string {
	if v >= 0 && int(v) < len(vsyncNames) {
		return vsyncNames[v]
	}
	return fmt.Sprintf("VSync(%d)", int(v))
}

// ParseVSync parses "off", "on" or "mailbox", ignoring case.
func ParseVSync(s string) (VSync, error) {
	for i, name := range vsyncNames {
		if strings.EqualFold(s, name) {
			return VSync(i), nil
		}
	}
	return 0, fmt.Errorf("unknown vsync mode %q (want off, on or mailbox)", s)
}

// Antialiasing selects the rasterizer's antialiasing method.
type Antialiasing int

const (
	// AntialiasingArea uses analytic area coverage.
	AntialiasingArea Antialiasing = iota
	// AntialiasingMSAA8 uses 8 samples per pixel.
	AntialiasingMSAA8
	// AntialiasingMSAA16 uses 16 samples per pixel.
	AntialiasingMSAA16
)

var antialiasingNames = [...]struct{ key, display string }{
	{"area", "Analytic Area"},
	{"msaa8", "8xMSAA"},
	{"msaa16", "16xMSAA"},
}

func (a Antialiasing) String() string {
	if a >= 0 && int(a) < len(antialiasingNames) {
		return antialiasingNames[a].display
	}
	return fmt.Sprintf("Antialiasing(%d)", int(a))
}

// Key returns the short configuration name ("area", "msaa8", "msaa16").
func (a Antialiasing) Key() string {
	if a >= 0 && int(a) < len(antialiasingNames) {
		return antialiasingNames[a].key
	}
	return ""
}

// ParseAntialiasing accepts a short name or a display name, ignoring case.
func ParseAntialiasing(s string) (Antialiasing, error) {
	for i, n := range antialiasingNames {
		if strings.EqualFold(s, n.key) || strings.EqualFold(s, n.display) {
			return Antialiasing(i), nil
		}
	}
	return 0, fmt.Errorf("unknown antialiasing method %q (want area, msaa8 or msaa16)", s)
}

// Options configures a Renderer.
type Options struct {
	// ShowStats samples frame times and paints the statistics overlay.
	ShowStats bool
	VSync     VSync
	// Antialiasing is passed to the target with every frame.
	Antialiasing Antialiasing
	// BaseColor is the color the target clears to before drawing.
	BaseColor graphics.Color
	// Now returns the current time for frame sampling. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions shows stats with vsync on, 16x MSAA and a transparent base.
func DefaultOptions() Options {
	return Options{
		ShowStats:    true,
		VSync:        VSyncOn,
		Antialiasing: AntialiasingMSAA16,
		BaseColor:    graphics.ColorTransparent,
	}
}
