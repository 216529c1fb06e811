package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gradientTextureSize is the edge length of cached gradient discs
const gradientTextureSize = 64

var _ Surface = (*Layer)(nil)

// Layer is an offscreen ebiten image sized to the viewport.
// It implements Surface and is composited onto the screen each frame.
type Layer struct {
	image     *ebiten.Image
	gradients map[*Gradient]*ebiten.Image
}

// NewLayer creates an empty layer; the image is allocated on first Fit.
func NewLayer() *Layer {
	return &Layer{
		gradients: make(map[*Gradient]*ebiten.Image),
	}
}

// Fit reallocates the backing image when the viewport size changes
func (l *Layer) Fit(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if l.image != nil {
		b := l.image.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		l.image.Deallocate()
	}
	l.image = ebiten.NewImage(width, height)
}

// Composite draws the layer onto dst
func (l *Layer) Composite(dst *ebiten.Image) {
	if l.image == nil {
		return
	}
	dst.DrawImage(l.image, nil)
}

// Clear erases the layer
func (l *Layer) Clear() {
	if l.image != nil {
		l.image.Clear()
	}
}

// FillRadialGradient draws a cached gradient disc scaled to radius r
func (l *Layer) FillRadialGradient(cx, cy, r float64, g *Gradient, alpha float64) {
	if l.image == nil || r <= 0 {
		return
	}
	tex, ok := l.gradients[g]
	if !ok {
		tex = ebiten.NewImageFromImage(gradientImage(g, gradientTextureSize))
		l.gradients[g] = tex
	}

	scale := 2 * r / gradientTextureSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-r, cy-r)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	l.image.DrawImage(tex, op)
}

// FillCircle draws a filled disc
func (l *Layer) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if l.image == nil {
		return
	}
	vector.DrawFilledCircle(l.image, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeCircle draws a circle outline
func (l *Layer) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	if l.image == nil {
		return
	}
	vector.StrokeCircle(l.image, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// DrawIcon draws each part in frame space, then places the frame centered at t
func (l *Layer) DrawIcon(frame float64, parts []IconPart, t CursorTransform) {
	if l.image == nil {
		return
	}
	for _, p := range parts {
		if p.Icon == nil {
			continue
		}
		w, h := p.Icon.Size()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Rotate(p.Rotation)
		op.GeoM.Translate(p.X-frame/2, p.Y-frame/2)
		op.GeoM.Scale(t.Scale, t.Scale)
		op.GeoM.Rotate(t.Radians())
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleAlpha(float32(p.Alpha))
		op.Filter = ebiten.FilterLinear
		l.image.DrawImage(p.Icon.ebitenImage(), op)
	}
}
