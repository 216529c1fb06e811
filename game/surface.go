package game

import (
	"image"
	"image/color"
	"math"
)

// ColorStop is one stop of a radial gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is an ordered list of color stops at full intensity.
// Surfaces scale its alpha per draw.
type Gradient struct {
	Stops []ColorStop
}

// At returns the premultiplied color at offset t, clamped to the end stops.
func (g *Gradient) At(t float64) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	first := g.Stops[0]
	if t <= first.Offset {
		return premultiply(first.Color)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return premultiply(b.Color)
		}
		return mixPremultiplied(premultiply(a.Color), premultiply(b.Color), (t-a.Offset)/span)
	}
	return premultiply(g.Stops[len(g.Stops)-1].Color)
}

func premultiply(c color.NRGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func mixPremultiplied(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// gradientImage rasterizes g as a disc filling a size x size square.
// Pixels outside the disc are transparent.
func gradientImage(g *Gradient, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			t := math.Hypot(dx, dy) / half
			if t > 1 {
				continue
			}
			img.SetRGBA(x, y, g.At(t))
		}
	}
	return img
}

// Surface is the 2D drawing target a subsystem renders into.
type Surface interface {
	// Clear erases the whole surface to transparent.
	Clear()

	// FillRadialGradient fills a disc of radius r centered at (cx, cy) with g,
	// multiplying every stop's alpha by alpha.
	FillRadialGradient(cx, cy, r float64, g *Gradient, alpha float64)

	// FillCircle fills a solid disc.
	FillCircle(cx, cy, r float64, clr color.NRGBA)

	// StrokeCircle outlines a circle.
	StrokeCircle(cx, cy, r, width float64, clr color.NRGBA)

	// DrawIcon draws parts laid out in a frame x frame box whose center lands at
	// (t.X, t.Y), scaled and rotated about that center.
	DrawIcon(frame float64, parts []IconPart, t CursorTransform)
}
