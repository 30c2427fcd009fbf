package graphics

import (
	"strings"
	"testing"
)

// recordingPainter captures replayed commands as strings and transforms.
type recordingPainter struct {
	ops        []string
	transforms []Affine
}

func (p *recordingPainter) Fill(rule FillRule, m Affine, _ Brush, _ Shape) {
	p.ops = append(p.ops, "fill")
	p.transforms = append(p.transforms, m)
}

func (p *recordingPainter) Stroke(_ StrokeStyle, m Affine, _ Brush, _ Shape) {
	p.ops = append(p.ops, "stroke")
	p.transforms = append(p.transforms, m)
}

func (p *recordingPainter) PushLayer(_ BlendMode, _ float64, m Affine, _ Shape) {
	p.ops = append(p.ops, "push")
	p.transforms = append(p.transforms, m)
}

func (p *recordingPainter) PopLayer() {
	p.ops = append(p.ops, "pop")
	p.transforms = append(p.transforms, Identity())
}

func (p *recordingPainter) DrawImage(_ *Image, m Affine) {
	p.ops = append(p.ops, "image")
	p.transforms = append(p.transforms, m)
}

func (p *recordingPainter) DrawGlyphs(_ GlyphRun, m Affine, _ Brush) {
	p.ops = append(p.ops, "glyphs")
	p.transforms = append(p.transforms, m)
}

func TestScene_RecordsInOrder(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendClip, 1, Identity(), RectFromLTWH(0, 0, 10, 10))
	s.Fill(FillNonZero, Identity(), Solid(ColorRed), RectFromLTWH(0, 0, 5, 5))
	s.Stroke(NewStrokeStyle(2), Identity(), Solid(ColorBlue), Line{P1: Offset{X: 5, Y: 5}})
	s.PopLayer()

	p := &recordingPainter{}
	s.Replay(p)
	if got, want := strings.Join(p.ops, ","), "push,fill,stroke,pop"; got != want {
		t.Errorf("replay = %s, want %s", got, want)
	}
	if s.LayerDepth() != 0 {
		t.Errorf("LayerDepth = %d, want 0", s.LayerDepth())
	}
}

func TestScene_PopLayerWithoutPushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unbalanced PopLayer")
		}
	}()
	NewScene().PopLayer()
}

func TestScene_AppendPremultipliesTransform(t *testing.T) {
	inner := NewScene()
	inner.Fill(FillNonZero, Translate(1, 2), Solid(ColorRed), RectFromLTWH(0, 0, 1, 1))

	outer := NewScene()
	outer.Append(inner, Translate(10, 20))

	p := &recordingPainter{}
	outer.Replay(p)
	if len(p.transforms) != 1 {
		t.Fatalf("got %d commands, want 1", len(p.transforms))
	}
	if want := Translate(11, 22); !p.transforms[0].ApproxEqual(want) {
		t.Errorf("transform = %v, want %v", p.transforms[0], want)
	}
}

func TestScene_EmptyDrawsAreSkipped(t *testing.T) {
	s := NewScene()
	s.DrawImage(&Image{}, Identity())
	s.DrawGlyphs(GlyphRun{}, Identity(), Solid(ColorWhite))
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestScene_NilShapes(t *testing.T) {
	s := NewScene()
	s.Fill(FillNonZero, Identity(), Solid(ColorRed), nil)
	s.Stroke(NewStrokeStyle(1), Identity(), Solid(ColorRed), nil)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}

	s.PushLayer(BlendMultiply, 0.5, Identity(), nil)
	s.PopLayer()
	got := s.Commands()[0].String()
	if !strings.HasSuffix(got, "unclipped") {
		t.Errorf("String() = %q, want unclipped layer", got)
	}
}

func TestScene_Reset(t *testing.T) {
	s := NewScene()
	s.PushLayer(BlendNormal, 0.5, Identity(), RectFromLTWH(0, 0, 1, 1))
	s.Reset()
	if s.Len() != 0 || s.LayerDepth() != 0 {
		t.Errorf("after Reset Len=%d depth=%d", s.Len(), s.LayerDepth())
	}
}

func TestShapes_BoundingBox(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Rect
	}{
		{"rect", RectFromLTWH(1, 2, 3, 4), RectFromLTWH(1, 2, 3, 4)},
		{"rounded", RoundedRect{Rect: RectFromLTWH(0, 0, 10, 10), Radius: 3}, RectFromLTWH(0, 0, 10, 10)},
		{"circle", Circle{Center: Offset{X: 5, Y: 5}, Radius: 2}, RectFromLTWH(3, 3, 4, 4)},
		{"line", Line{P0: Offset{X: 4, Y: 0}, P1: Offset{X: 0, Y: 4}}, RectFromLTWH(0, 0, 4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.BoundingBox(); got != tt.want {
				t.Errorf("BoundingBox = %v, want %v", got, tt.want)
			}
			if got := tt.shape.Path().BoundingBox(); got != tt.want {
				t.Errorf("Path().BoundingBox = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_Transform(t *testing.T) {
	p := NewPath().MoveTo(0, 0).LineTo(10, 0).Close()
	moved := p.Transform(Translate(5, 5))
	if got, want := moved.BoundingBox(), (Rect{Left: 5, Top: 5, Right: 15, Bottom: 5}); got != want {
		t.Errorf("BoundingBox = %v, want %v", got, want)
	}
	if p.Commands[1].Args[0] != 10 {
		t.Error("Transform mutated the source path")
	}
}

type boxGlyphs struct{}

func (boxGlyphs) GlyphPath(_ uint16, size float64) *Path {
	return RectFromLTWH(0, -size, size/2, size).Path()
}

func TestGlyphRun_Outline(t *testing.T) {
	run := GlyphRun{
		Source: boxGlyphs{},
		Size:   10,
		Glyphs: []Glyph{{ID: 1, X: 0}, {ID: 2, X: 6}},
	}
	got := run.Outline().BoundingBox()
	if want := (Rect{Left: 0, Top: -10, Right: 11, Bottom: 0}); got != want {
		t.Errorf("Outline bbox = %v, want %v", got, want)
	}
}
