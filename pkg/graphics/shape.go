package graphics

// kappa is the control point distance for approximating a quarter circle
// with a cubic bezier.
const kappa = 0.5522847498

// Shape is anything that can be filled, stroked or used as a layer clip.
type Shape interface {
	// BoundingBox returns the shape's bounds in its local space.
	BoundingBox() Rect
	// Path returns the outline of the shape.
	Path() *Path
}

// BoundingBox returns the rectangle itself.
func (r Rect) BoundingBox() Rect {
	return r
}

// Path returns the rectangle outline.
func (r Rect) Path() *Path {
	return NewPath().
		MoveTo(r.Left, r.Top).
		LineTo(r.Right, r.Top).
		LineTo(r.Right, r.Bottom).
		LineTo(r.Left, r.Bottom).
		Close()
}

// RoundedRect is a rectangle with a uniform corner radius.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// BoundingBox returns the outer rectangle.
func (r RoundedRect) BoundingBox() Rect {
	return r.Rect
}

// Path returns the rounded outline. The radius is clamped to half the
// shorter side.
func (r RoundedRect) Path() *Path {
	rad := min(r.Radius, r.Rect.Width()/2, r.Rect.Height()/2)
	if rad <= 0 {
		return r.Rect.Path()
	}
	l, t, rt, b := r.Rect.Left, r.Rect.Top, r.Rect.Right, r.Rect.Bottom
	k := rad * kappa
	return NewPath().
		MoveTo(l+rad, t).
		LineTo(rt-rad, t).
		CubicTo(rt-rad+k, t, rt, t+rad-k, rt, t+rad).
		LineTo(rt, b-rad).
		CubicTo(rt, b-rad+k, rt-rad+k, b, rt-rad, b).
		LineTo(l+rad, b).
		CubicTo(l+rad-k, b, l, b-rad+k, l, b-rad).
		LineTo(l, t+rad).
		CubicTo(l, t+rad-k, l+rad-k, t, l+rad, t).
		Close()
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Offset
	Radius float64
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		Left:   c.Center.X - c.Radius,
		Top:    c.Center.Y - c.Radius,
		Right:  c.Center.X + c.Radius,
		Bottom: c.Center.Y + c.Radius,
	}
}

// Path approximates the circle with four cubic segments.
func (c Circle) Path() *Path {
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	k := r * kappa
	return NewPath().
		MoveTo(cx+r, cy).
		CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r).
		CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy).
		CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r).
		CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy).
		Close()
}

// Line is a straight segment. Filling a line paints nothing; stroke it.
type Line struct {
	P0 Offset
	P1 Offset
}

// BoundingBox returns the box spanned by the two endpoints.
func (l Line) BoundingBox() Rect {
	return Rect{
		Left:   min(l.P0.X, l.P1.X),
		Top:    min(l.P0.Y, l.P1.Y),
		Right:  max(l.P0.X, l.P1.X),
		Bottom: max(l.P0.Y, l.P1.Y),
	}
}

// Path returns the open two-point path.
func (l Line) Path() *Path {
	return NewPath().MoveTo(l.P0.X, l.P0.Y).LineTo(l.P1.X, l.P1.Y)
}
