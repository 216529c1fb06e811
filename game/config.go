package game

import (
	"image/color"
	"math/rand"
	"time"
)

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64
	Max float64
}

// Sample draws a value in [Min, Max) from rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// ParticleConfig holds the ambient particle field settings
type ParticleConfig struct {
	// Enabled turns the particle canvas on
	Enabled bool

	// Count is the fixed population size
	Count int

	// Radius, Speed, Drift and Opacity are sampled once per particle
	Radius  Range
	Speed   Range // px per frame, upward
	Drift   Range // px per frame, horizontal
	Opacity Range

	// WrapMargin is how far past an edge a particle travels before wrapping
	WrapMargin float64

	// Accent is the glow center color, Secondary the mid-ring color
	Accent    color.NRGBA
	Secondary color.NRGBA
}

// CursorConfig holds the magic cursor settings
type CursorConfig struct {
	// Enabled turns the cursor icon on
	Enabled bool

	// Smoothing is the lerp factor applied every tick
	Smoothing float64

	// PressedScale and PressedRotation (degrees) apply while the button is held
	PressedScale    float64
	PressedRotation float64

	// IconSize is the rasterized icon edge length in pixels
	IconSize int

	// SparkleLifetime is how long a click sparkle stays on screen
	SparkleLifetime time.Duration
	SparkleRadius   float64
	SparkleColor    color.NRGBA

	// Chime plays a short tone on press
	Chime bool
}

// Config holds the top-level configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// Background is the page color behind both layers
	Background color.NRGBA

	// Seed feeds the particle random source; 0 means time based
	Seed int64

	Particles ParticleConfig
	Cursor    CursorConfig

	// ProfileDir enables CPU capture on frame drops when non-empty
	ProfileDir string

	// FPSDropThreshold is the FPS below which a capture is triggered
	FPSDropThreshold float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Background:   color.NRGBA{R: 11, G: 10, B: 26, A: 255},
		Particles: ParticleConfig{
			Enabled:    true,
			Count:      60,
			Radius:     Range{Min: 0.5, Max: 2.5},
			Speed:      Range{Min: 0.2, Max: 0.7},
			Drift:      Range{Min: -0.2, Max: 0.2},
			Opacity:    Range{Min: 0.3, Max: 0.8},
			WrapMargin: 10,
			Accent:     color.NRGBA{R: 168, G: 85, B: 247, A: 255},
			Secondary:  color.NRGBA{R: 56, G: 189, B: 248, A: 255},
		},
		Cursor: CursorConfig{
			Enabled:         true,
			Smoothing:       0.15,
			PressedScale:    1.3,
			PressedRotation: 25,
			IconSize:        32,
			SparkleLifetime: 600 * time.Millisecond,
			SparkleRadius:   18,
			SparkleColor:    color.NRGBA{R: 251, G: 191, B: 36, A: 255},
		},
		FPSDropThreshold: 45,
	}
}

// NewRand returns the random source described by Seed.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
