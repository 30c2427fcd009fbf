package graphics

import (
	"fmt"
	"math"
)

// Affine is a 2D affine transformation matrix stored in row-major order as:
//
//	| A  B  C |
//	| D  E  F |
//
// A point (x, y) maps to (A*x + B*y + C, D*x + E*y + F).
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{A: 1, C: dx, E: 1, F: dy}
}

// TranslateBy returns a translation by the given offset.
func TranslateBy(o Offset) Affine {
	return Translate(o.X, o.Y)
}

// Scale returns a non-uniform scaling transformation.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Rotate returns a rotation by radians around the origin.
func Rotate(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// Mul returns the composition a ∘ b: the resulting transform applies b
// first and then a. A widget's child transform is parent.Mul(local).
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.B*b.D,
		B: a.A*b.B + a.B*b.E,
		C: a.A*b.C + a.B*b.F + a.C,
		D: a.D*b.A + a.E*b.D,
		E: a.D*b.B + a.E*b.E,
		F: a.D*b.C + a.E*b.F + a.F,
	}
}

// TransformPoint maps a point through the transformation.
func (a Affine) TransformPoint(p Offset) Offset {
	return Offset{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// TransformRectBBox maps the four corners of r and returns their
// axis-aligned bounding box. Rotated content is bounded, not clipped exactly.
func (a Affine) TransformRectBBox(r Rect) Rect {
	p0 := a.TransformPoint(Offset{X: r.Left, Y: r.Top})
	p1 := a.TransformPoint(Offset{X: r.Right, Y: r.Top})
	p2 := a.TransformPoint(Offset{X: r.Right, Y: r.Bottom})
	p3 := a.TransformPoint(Offset{X: r.Left, Y: r.Bottom})
	return Rect{
		Left:   min(p0.X, p1.X, p2.X, p3.X),
		Top:    min(p0.Y, p1.Y, p2.Y, p3.Y),
		Right:  max(p0.X, p1.X, p2.X, p3.X),
		Bottom: max(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// Translation returns the translation component.
func (a Affine) Translation() Offset {
	return Offset{X: a.C, Y: a.F}
}

// IsIdentity reports whether a is exactly the identity.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}

// ApproxEqual reports whether two transforms match within a small tolerance.
func (a Affine) ApproxEqual(b Affine) bool {
	return floatEqual(a.A, b.A) && floatEqual(a.B, b.B) && floatEqual(a.C, b.C) &&
		floatEqual(a.D, b.D) && floatEqual(a.E, b.E) && floatEqual(a.F, b.F)
}

// String returns a compact representation of the matrix.
func (a Affine) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", a.A, a.B, a.C, a.D, a.E, a.F)
}
