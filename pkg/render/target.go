package render

import (
	stderrors "errors"

	"github.com/felt-ui/felt/pkg/errors"
	"github.com/felt-ui/felt/pkg/graphics"
)

// Params describes how a target should rasterize one frame.
type Params struct {
	BaseColor    graphics.Color
	Width        int
	Height       int
	Antialiasing Antialiasing
}

// Target accepts finished frames. Submit returns nil on success or an error
// wrapping one of the typed failures below.
type Target interface {
	Submit(scene *graphics.Scene, p Params) error
}

// Resizer is implemented by targets that own a size-dependent surface.
type Resizer interface {
	Resize(width, height int) error
}

// PresentModeSetter is implemented by targets that can switch vsync modes
// at runtime.
type PresentModeSetter interface {
	SetVSync(v VSync) error
}

// Typed target failures.
var (
	// ErrSurfaceLost means the surface is outdated or lost; recreate it and
	// render again.
	ErrSurfaceLost = stderrors.New("render: surface lost")
	// ErrDeviceLost means the device is gone; the target must be rebuilt.
	ErrDeviceLost = stderrors.New("render: device lost")
	// ErrOutOfMemory means the target could not allocate frame resources.
	ErrOutOfMemory = stderrors.New("render: out of memory")
	// ErrNoSurface means the renderer has no target to submit to.
	ErrNoSurface = stderrors.New("render: no surface available")
)

// Classify maps a submit error to an error kind.
func Classify(err error) errors.ErrorKind {
	switch {
	case err == nil:
		return errors.KindUnknown
	case stderrors.Is(err, ErrSurfaceLost), stderrors.Is(err, ErrNoSurface):
		return errors.KindSurface
	case stderrors.Is(err, ErrDeviceLost):
		return errors.KindDevice
	case stderrors.Is(err, ErrOutOfMemory):
		return errors.KindMemory
	default:
		return errors.KindRender
	}
}

// Recoverable reports whether a failed frame can be followed by another
// render without rebuilding the target.
func Recoverable(err error) bool {
	switch Classify(err) {
	case errors.KindDevice, errors.KindMemory:
		return false
	default:
		return true
	}
}
