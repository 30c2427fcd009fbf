// Package ggtarget rasterizes frames on the CPU with github.com/gogpu/gg.
//
// A Target owns a gg.Context sized to the viewport. Each submitted scene is
// cleared to the base color and replayed into the context; the result can be
// read back as a pixmap or written to a PNG file.
package ggtarget

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/logging"
	"github.com/felt-ui/felt/pkg/render"
)

// Target is a render.Target backed by an offscreen gg.Context. It is not
// safe for concurrent use.
type Target struct {
	dc     *gg.Context
	width  int
	height int
	vsync  render.VSync
	closed bool
	log    *slog.Logger
}

var (
	_ render.Target            = (*Target)(nil)
	_ render.Resizer           = (*Target)(nil)
	_ render.PresentModeSetter = (*Target)(nil)
)

// New creates a target with a width x height pixmap.
func New(width, height int) (*Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggtarget: invalid size %dx%d: %w", width, height, render.ErrNoSurface)
	}
	return &Target{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		vsync:  render.VSyncOn,
		log:    logging.For("ggtarget"),
	}, nil
}

// Submit clears the pixmap to p.BaseColor and rasterizes scene. A size in p
// that differs from the current pixmap resizes it first.
func (t *Target) Submit(scene *graphics.Scene, p render.Params) error {
	if t.closed {
		return fmt.Errorf("ggtarget: submit after close: %w", render.ErrDeviceLost)
	}
	if p.Width > 0 && p.Height > 0 && (p.Width != t.width || p.Height != t.height) {
		if err := t.Resize(p.Width, p.Height); err != nil {
			return err
		}
	}

	t.dc.SetRasterizerMode(rasterizerMode(p.Antialiasing))
	t.dc.Identity()
	t.dc.ClearWithColor(toRGBA(p.BaseColor))

	if scene == nil {
		return nil
	}
	cp := &contextPainter{dc: t.dc}
	scene.Replay(cp)
	// A well-formed scene closes its layers; finish any that are left so the
	// context is back on the base pixmap.
	for len(cp.clips) > 0 {
		cp.PopLayer()
	}
	if cp.err != nil {
		return fmt.Errorf("ggtarget: rasterize: %w", cp.err)
	}
	return nil
}

// Resize reallocates the pixmap. The contents are discarded.
func (t *Target) Resize(width, height int) error {
	if t.closed {
		return fmt.Errorf("ggtarget: resize after close: %w", render.ErrDeviceLost)
	}
	if err := t.dc.Resize(width, height); err != nil {
		return fmt.Errorf("ggtarget: %w: %w", render.ErrSurfaceLost, err)
	}
	t.width, t.height = width, height
	t.log.Debug("pixmap resized", "width", width, "height", height)
	return nil
}

// SetVSync records the mode. An offscreen pixmap is never presented, so the
// mode has no effect on rasterization.
func (t *Target) SetVSync(v render.VSync) error {
	t.vsync = v
	return nil
}

// VSync returns the last mode set.
func (t *Target) VSync() render.VSync {
	return t.vsync
}

// Size returns the pixmap size.
func (t *Target) Size() (width, height int) {
	return t.width, t.height
}

// Pixmap returns the rasterized frame.
func (t *Target) Pixmap() *gg.Pixmap {
	return t.dc.ResizeTarget()
}

// Image returns the rasterized frame as an image.Image.
func (t *Target) Image() image.Image {
	return t.dc.Image()
}

// SavePNG writes the rasterized frame to path.
func (t *Target) SavePNG(path string) error {
	return t.dc.SavePNG(path)
}

// Close releases the context. Submitting after Close fails with
// render.ErrDeviceLost.
func (t *Target) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.dc.Close()
}

func rasterizerMode(aa render.Antialiasing) gg.RasterizerMode {
	if aa == render.AntialiasingArea {
		return gg.RasterizerAnalytic
	}
	// The CPU rasterizer has no multisampling; let gg choose per path.
	return gg.RasterizerAuto
}
