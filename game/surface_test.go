package game

import (
	"image/color"
	"testing"
)

type discCall struct {
	cx, cy, r, alpha float64
	gradient         *Gradient
}

type strokeCall struct {
	cx, cy, r, width float64
	clr              color.NRGBA
}

var _ Surface = (*recordSurface)(nil)

// recordSurface captures draw calls in order
type recordSurface struct {
	ops     []string
	discs   []discCall
	strokes []strokeCall
	icons   []CursorTransform
	parts   [][]IconPart
}

func (s *recordSurface) Clear() { s.ops = append(s.ops, "clear") }

func (s *recordSurface) FillRadialGradient(cx, cy, r float64, g *Gradient, alpha float64) {
	s.ops = append(s.ops, "gradient")
	s.discs = append(s.discs, discCall{cx: cx, cy: cy, r: r, alpha: alpha, gradient: g})
}

func (s *recordSurface) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	s.ops = append(s.ops, "fill")
}

func (s *recordSurface) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	s.ops = append(s.ops, "stroke")
	s.strokes = append(s.strokes, strokeCall{cx: cx, cy: cy, r: r, width: width, clr: clr})
}

func (s *recordSurface) DrawIcon(frame float64, parts []IconPart, t CursorTransform) {
	s.ops = append(s.ops, "icon")
	s.icons = append(s.icons, t)
	s.parts = append(s.parts, parts)
}

func TestGradientStops(t *testing.T) {
	g := glowGradient(DefaultConfig().Particles)

	tests := []struct {
		name string
		at   float64
		want color.RGBA
	}{
		{"center is opaque accent", 0, color.RGBA{R: 168, G: 85, B: 247, A: 255}},
		{"before first stop clamps", -1, color.RGBA{R: 168, G: 85, B: 247, A: 255}},
		{"half radius is secondary at half alpha", 0.5, premultiply(color.NRGBA{R: 56, G: 189, B: 248, A: 128})},
		{"rim is transparent", 1, color.RGBA{}},
		{"past rim clamps", 2, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.at); got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestGradientInterpolatesBetweenStops(t *testing.T) {
	g := &Gradient{Stops: []ColorStop{
		{Offset: 0, Color: color.NRGBA{R: 0, G: 0, B: 0, A: 0}},
		{Offset: 1, Color: color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
	}}
	got := g.At(0.5)
	want := color.RGBA{R: 100, G: 50, B: 25, A: 128}
	if got != want {
		t.Errorf("At(0.5) = %v, want %v", got, want)
	}
}

func TestGradientImageIsDisc(t *testing.T) {
	g := glowGradient(DefaultConfig().Particles)
	img := gradientImage(g, 64)

	if c := img.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner alpha = %d, want 0", c.A)
	}
	center := img.RGBAAt(32, 32)
	if center.A < 240 {
		t.Errorf("center alpha = %d, want near opaque", center.A)
	}
	edge := img.RGBAAt(63, 32)
	if edge.A >= center.A {
		t.Errorf("edge alpha %d should be below center alpha %d", edge.A, center.A)
	}
}

func TestEmptyGradient(t *testing.T) {
	if got := (&Gradient{}).At(0.3); got != (color.RGBA{}) {
		t.Errorf("empty gradient = %v, want transparent", got)
	}
}
