package game

import (
	"math/rand"
	"sync"
)

// Particle is a single drifting point in the ambient field
type Particle struct {
	X, Y    float64 // position in pixels
	Radius  float64 // glow is drawn at twice this
	Speed   float64 // upward px per frame
	Drift   float64 // horizontal px per frame
	Opacity float64
}

// ParticleField owns a fixed population of particles wrapping around the viewport.
// Particles are never added or removed; leaving the top respawns in place at the bottom.
type ParticleField struct {
	mu        sync.Mutex
	particles []Particle
	width     float64
	height    float64
	margin    float64
	rng       *rand.Rand
	glow      *Gradient
}

// NewParticleField creates cfg.Count particles spread uniformly over width x height
func NewParticleField(cfg ParticleConfig, width, height int, rng *rand.Rand) *ParticleField {
	f := &ParticleField{
		particles: make([]Particle, cfg.Count),
		width:     float64(width),
		height:    float64(height),
		margin:    cfg.WrapMargin,
		rng:       rng,
		glow:      glowGradient(cfg),
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       rng.Float64() * f.width,
			Y:       rng.Float64() * f.height,
			Radius:  cfg.Radius.Sample(rng),
			Speed:   cfg.Speed.Sample(rng),
			Drift:   cfg.Drift.Sample(rng),
			Opacity: cfg.Opacity.Sample(rng),
		}
	}
	return f
}

// glowGradient fades from the accent color through the secondary at half radius
// to a fully transparent accent at the rim.
func glowGradient(cfg ParticleConfig) *Gradient {
	secondary := cfg.Secondary
	secondary.A = 128
	rim := cfg.Accent
	rim.A = 0
	return &Gradient{Stops: []ColorStop{
		{Offset: 0, Color: cfg.Accent},
		{Offset: 0.5, Color: secondary},
		{Offset: 1, Color: rim},
	}}
}

// Resize records new bounds. Particle positions are left alone.
func (f *ParticleField) Resize(width, height int) {
	f.mu.Lock()
	f.width = float64(width)
	f.height = float64(height)
	f.mu.Unlock()
}

// Bounds returns the current wrap bounds
func (f *ParticleField) Bounds() (float64, float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

// Tick advances every particle by one frame and applies wraparound
func (f *ParticleField) Tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.particles {
		p := &f.particles[i]
		p.Y -= p.Speed
		p.X += p.Drift

		// Vertical first; both axes may wrap on the same tick.
		if p.Y < -f.margin {
			p.Y = f.height + f.margin
			p.X = f.rng.Float64() * f.width
		}
		if p.X < -f.margin {
			p.X = f.width + f.margin
		}
		if p.X > f.width+f.margin {
			p.X = -f.margin
		}
	}
}

// Render clears the surface and draws one glow disc per particle in population order
func (f *ParticleField) Render(s Surface) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.Clear()
	for _, p := range f.particles {
		s.FillRadialGradient(p.X, p.Y, p.Radius*2, f.glow, p.Opacity)
	}
}

// Len returns the population size
func (f *ParticleField) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.particles)
}

// Particles returns a copy of the current particle states
func (f *ParticleField) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}
