package game

import (
	"image/color"
	"sync"
	"time"
)

// sparkle is a transient click marker
type sparkle struct {
	id      uint64
	x, y    float64
	born    time.Time
	removal *time.Timer
}

// SparkleLayer holds click sparkles in spawn order. Each one is removed by its
// own timer, independent of the frame loop.
type SparkleLayer struct {
	mu       sync.Mutex
	live     []*sparkle
	nextID   uint64
	lifetime time.Duration
	radius   float64
	color    color.NRGBA
	now      func() time.Time
	closed   bool
}

// NewSparkleLayer creates an empty layer using cfg's sparkle settings
func NewSparkleLayer(cfg CursorConfig) *SparkleLayer {
	return &SparkleLayer{
		lifetime: cfg.SparkleLifetime,
		radius:   cfg.SparkleRadius,
		color:    cfg.SparkleColor,
		now:      time.Now,
	}
}

// Spawn adds a sparkle at (x, y) and schedules its removal
func (l *SparkleLayer) Spawn(x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}

	id := l.nextID
	l.nextID++
	s := &sparkle{id: id, x: x, y: y, born: l.now()}
	s.removal = time.AfterFunc(l.lifetime, func() { l.remove(id) })
	l.live = append(l.live, s)
}

// remove is a no-op if the sparkle is already gone
func (l *SparkleLayer) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.live {
		if s.id == id {
			l.live = append(l.live[:i], l.live[i+1:]...)
			return
		}
	}
}

// Len returns the number of live sparkles
func (l *SparkleLayer) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Draw renders each sparkle, oldest first, as an expanding ring that fades out over its lifetime
func (l *SparkleLayer) Draw(s Surface) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, sp := range l.live {
		progress := float64(now.Sub(sp.born)) / float64(l.lifetime)
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			continue
		}
		clr := l.color
		clr.A = uint8(float64(clr.A) * (1 - progress))
		s.StrokeCircle(sp.x, sp.y, l.radius*(0.3+0.7*progress), 2, clr)
		s.FillCircle(sp.x, sp.y, 2*(1-progress), clr)
	}
}

// Close stops pending removals and drops every sparkle
func (l *SparkleLayer) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, sp := range l.live {
		sp.removal.Stop()
	}
	l.live = nil
	l.closed = true
	return nil
}
