package graphics

import (
	"image"
	"image/draw"
)

// Image is an immutable RGBA8 (non-premultiplied) pixel buffer.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage wraps RGBA8 pixel data. The slice is not copied; callers must not
// modify it afterwards.
func NewImage(data []byte, width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: data}
}

// ImageFromGo copies any image.Image into an Image.
func ImageFromGo(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}
}

// Bounds returns the image rectangle in its local space.
func (img *Image) Bounds() Rect {
	return RectFromLTWH(0, 0, float64(img.Width), float64(img.Height))
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0
}
