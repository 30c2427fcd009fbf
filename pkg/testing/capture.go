package testing

import (
	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/render"
)

// Frame is one submission received by a CaptureTarget.
type Frame struct {
	Scene  *graphics.Scene
	Params render.Params
}

// CaptureTarget is a render.Target that keeps every submitted frame. Errors
// queued with FailNext are returned by the following submissions, in order,
// and those frames are not kept.
type CaptureTarget struct {
	Frames  []Frame
	Resizes [][2]int
	VSyncs  []render.VSync

	failures []error
}

var (
	_ render.Target            = (*CaptureTarget)(nil)
	_ render.Resizer           = (*CaptureTarget)(nil)
	_ render.PresentModeSetter = (*CaptureTarget)(nil)
)

// NewCaptureTarget returns an empty capture target.
func NewCaptureTarget() *CaptureTarget {
	return &CaptureTarget{}
}

// FailNext queues errors for the next submissions.
func (c *CaptureTarget) FailNext(errs ...error) {
	c.failures = append(c.failures, errs...)
}

// Submit records the frame or returns the next queued failure.
func (c *CaptureTarget) Submit(scene *graphics.Scene, p render.Params) error {
	if len(c.failures) > 0 {
		err := c.failures[0]
		c.failures = c.failures[1:]
		return err
	}
	c.Frames = append(c.Frames, Frame{Scene: scene, Params: p})
	return nil
}

// Resize records the new size.
func (c *CaptureTarget) Resize(width, height int) error {
	c.Resizes = append(c.Resizes, [2]int{width, height})
	return nil
}

// SetVSync records the new mode.
func (c *CaptureTarget) SetVSync(v render.VSync) error {
	c.VSyncs = append(c.VSyncs, v)
	return nil
}

// Last returns the most recent frame, or the zero Frame if none was kept.
func (c *CaptureTarget) Last() Frame {
	if len(c.Frames) == 0 {
		return Frame{}
	}
	return c.Frames[len(c.Frames)-1]
}
