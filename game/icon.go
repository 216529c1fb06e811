package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

var (
	//go:embed assets/wand_stick.svg
	wandStickSVG []byte

	//go:embed assets/wand_star.svg
	wandStarSVG []byte
)

// dotSVG is a disc of radius 2 centered in a 4x4 view box
const dotSVG = `<svg width="4" height="4" viewBox="-2 -2 4 4" xmlns="http://www.w3.org/2000/svg"><circle cx="0" cy="0" r="2" fill="%s"/></svg>`

const (
	// wandViewBox is the edge of the wand artwork's coordinate space
	wandViewBox = 32.0

	// partSupersample renders the small animated parts at a higher resolution
	partSupersample = 4

	// dotViewRadius is the disc radius inside dotSVG
	dotViewRadius = 2.0

	starX, starY = 18.0, 10.0
	starViewBox  = 14.0
	starPeriod   = 4 * time.Second
)

// Icon is a rasterized image. The GPU copy is created on first draw.
type Icon struct {
	src *image.RGBA
	gpu *ebiten.Image
}

// Size returns the icon dimensions
func (i *Icon) Size() (int, int) {
	b := i.src.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the CPU-side raster
func (i *Icon) Image() *image.RGBA {
	return i.src
}

func (i *Icon) ebitenImage() *ebiten.Image {
	if i.gpu == nil {
		i.gpu = ebiten.NewImageFromImage(i.src)
	}
	return i.gpu
}

// IconPart places one raster inside an icon frame
type IconPart struct {
	Icon     *Icon
	X, Y     float64 // part center in frame pixels
	Rotation float64 // radians, about the part center
	Scale    float64
	Alpha    float64
}

// twinkle is a three-keyframe loop v0 -> v1 -> v0 over one period
type twinkle struct {
	low, high float64
	period    time.Duration
}

// at returns the value elapsed into the loop, linear between keyframes
func (tw twinkle) at(elapsed time.Duration) float64 {
	p := float64(elapsed%tw.period) / float64(tw.period)
	if p < 0.5 {
		return lerp(tw.low, tw.high, p*2)
	}
	return lerp(tw.high, tw.low, (p-0.5)*2)
}

// wandDot is one twinkling sparkle around the star
type wandDot struct {
	icon    *Icon
	x, y    float64 // view box coordinates
	radius  float64
	color   string
	opacity twinkle
	pulse   *twinkle // radius loop, nil for a fixed radius
}

func defaultWandDots() []wandDot {
	return []wandDot{
		{x: 22, y: 6, radius: 1.5, color: "#38bdf8",
			opacity: twinkle{0.3, 1, 1200 * time.Millisecond},
			pulse:   &twinkle{1, 2, 1200 * time.Millisecond}},
		{x: 25, y: 12, radius: 1, color: "#f472b6",
			opacity: twinkle{0.2, 0.9, 1800 * time.Millisecond}},
		{x: 20, y: 4, radius: 1.2, color: "#fbbf24",
			opacity: twinkle{0.4, 1, 1500 * time.Millisecond}},
		{x: 14, y: 8, radius: 0.8, color: "#38bdf8",
			opacity: twinkle{0.3, 0.8, 2 * time.Second}},
	}
}

// WandIcon is the animated cursor: a fixed stick, a spinning star and twinkling dots
type WandIcon struct {
	size  int
	stick *Icon
	star  *Icon
	dots  []wandDot
	start time.Time
	now   func() time.Time
}

// LoadWandIcon rasterizes the wand parts for a size x size frame
func LoadWandIcon(size int) (*WandIcon, error) {
	stick, err := rasterizeSVG(wandStickSVG, size, size)
	if err != nil {
		return nil, fmt.Errorf("rasterize wand stick: %w", err)
	}

	k := float64(size) / wandViewBox
	starPx := int(math.Ceil(starViewBox * k * partSupersample))
	star, err := rasterizeSVG(wandStarSVG, starPx, starPx)
	if err != nil {
		return nil, fmt.Errorf("rasterize wand star: %w", err)
	}

	dotPx := int(math.Ceil(2 * dotViewRadius * k * partSupersample))
	dots := defaultWandDots()
	for i := range dots {
		img, err := rasterizeSVG([]byte(fmt.Sprintf(dotSVG, dots[i].color)), dotPx, dotPx)
		if err != nil {
			return nil, fmt.Errorf("rasterize wand dot %d: %w", i, err)
		}
		dots[i].icon = &Icon{src: img}
	}

	return &WandIcon{
		size:  size,
		stick: &Icon{src: stick},
		star:  &Icon{src: star},
		dots:  dots,
		start: time.Now(),
		now:   time.Now,
	}, nil
}

// Size returns the frame edge length in pixels
func (w *WandIcon) Size() int {
	return w.size
}

// Parts returns the frame's rasters in draw order, posed for the current time
func (w *WandIcon) Parts() []IconPart {
	elapsed := w.now().Sub(w.start)
	if elapsed < 0 {
		elapsed = 0
	}
	k := float64(w.size) / wandViewBox
	half := float64(w.size) / 2

	parts := make([]IconPart, 0, 2+len(w.dots))
	parts = append(parts,
		IconPart{Icon: w.stick, X: half, Y: half, Scale: 1, Alpha: 1},
		IconPart{
			Icon:     w.star,
			X:        starX * k,
			Y:        starY * k,
			Rotation: 2 * math.Pi * float64(elapsed%starPeriod) / float64(starPeriod),
			Scale:    1.0 / partSupersample,
			Alpha:    1,
		},
	)
	for _, d := range w.dots {
		r := d.radius
		if d.pulse != nil {
			r = d.pulse.at(elapsed)
		}
		parts = append(parts, IconPart{
			Icon:  d.icon,
			X:     d.x * k,
			Y:     d.y * k,
			Scale: r / dotViewRadius / partSupersample,
			Alpha: d.opacity.at(elapsed),
		})
	}
	return parts
}

// rasterizeSVG converts SVG data to an RGBA image
func rasterizeSVG(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid icon size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
