package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	subsystemParticles = "particles"
	subsystemCursor    = "cursor"
)

// Game hosts the particle field and magic cursor inside the ebiten loop
type Game struct {
	config    Config
	scheduler *AnimationScheduler
	input     *PointerInput
	profiler  *Profiler
	debug     DebugState

	// Nil when the corresponding subsystem is disabled
	field    *ParticleField
	cursor   *CursorState
	sparkles *SparkleLayer
	chime    *Chime

	particleLayer *Layer
	cursorLayer   *Layer

	width, height int
	stopped       bool
}

// NewGame creates a game with every enabled subsystem registered and started.
// A subsystem that cannot initialize is skipped; the other still runs.
func NewGame(config Config) *Game {
	g := &Game{
		config:        config,
		scheduler:     NewAnimationScheduler(),
		input:         NewPointerInput(),
		profiler:      NewProfiler(config.ProfileDir, config.FPSDropThreshold),
		particleLayer: NewLayer(),
		cursorLayer:   NewLayer(),
		width:         config.ScreenWidth,
		height:        config.ScreenHeight,
	}

	if config.Particles.Enabled {
		g.field = NewParticleField(config.Particles, config.ScreenWidth, config.ScreenHeight, config.NewRand())
		if err := g.scheduler.Register(subsystemParticles, g.field, g.particleLayer); err != nil {
			log.Printf("particles disabled: %v", err)
			g.field = nil
		}
	}

	if config.Cursor.Enabled {
		if err := g.initCursor(); err != nil {
			log.Printf("magic cursor disabled: %v", err)
			g.cursor = nil
		}
	}

	g.scheduler.Start()
	return g
}

// initCursor loads the wand icon and registers the cursor loop
func (g *Game) initCursor() error {
	icon, err := LoadWandIcon(g.config.Cursor.IconSize)
	if err != nil {
		return err
	}

	if g.config.Cursor.Chime {
		chime, err := NewChime()
		if err != nil {
			log.Printf("click chime disabled: %v", err)
		} else {
			g.chime = chime
		}
	}

	g.sparkles = NewSparkleLayer(g.config.Cursor)
	g.cursor = NewCursorState(g.config.Cursor, g.onPress)
	renderer := NewCursorRenderer(g.cursor, icon, g.sparkles)
	if err := g.scheduler.Register(subsystemCursor, renderer, g.cursorLayer); err != nil {
		return fmt.Errorf("register cursor: %w", err)
	}
	return nil
}

// onPress spawns click feedback at the pointer target
func (g *Game) onPress(x, y float64) {
	g.sparkles.Spawn(x, y)
	if g.chime != nil {
		g.chime.Play()
	}
}

// Cursor returns the cursor state, or nil when disabled
func (g *Game) Cursor() *CursorState {
	return g.cursor
}

// Field returns the particle field, or nil when disabled
func (g *Game) Field() *ParticleField {
	return g.field
}

// Stop cancels both loops and releases their resources
func (g *Game) Stop() error {
	if g.stopped {
		return nil
	}
	g.stopped = true
	return g.scheduler.Stop()
}

// Update processes input and advances each running subsystem
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.Stop(); err != nil {
			log.Printf("stop: %v", err)
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowHUD = !g.debug.ShowHUD
	}

	if g.cursor != nil {
		if state, _ := g.scheduler.State(subsystemCursor); state == LoopRunning {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
		g.input.Poll(g.cursor)
	}

	g.scheduler.Update()

	if g.profiler.Enabled() {
		particles := 0
		if g.field != nil {
			particles = g.field.Len()
		}
		g.profiler.Observe(ebiten.ActualFPS(), particles, time.Now())
	}
	return nil
}

// Draw renders both layers over the background
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	g.particleLayer.Fit(b.Dx(), b.Dy())
	g.cursorLayer.Fit(b.Dx(), b.Dy())

	g.scheduler.Draw()

	screen.Fill(g.config.Background)
	g.particleLayer.Composite(screen)
	g.cursorLayer.Composite(screen)

	if g.debug.ShowHUD {
		drawHUD(screen, g.hudStats())
	}
}

func (g *Game) hudStats() HUDStats {
	stats := HUDStats{
		FPS:       ebiten.ActualFPS(),
		TPS:       ebiten.ActualTPS(),
		Profiling: g.profiler.Enabled() && g.profiler.Capturing(),
	}
	if g.field != nil {
		stats.Particles = g.field.Len()
	}
	if g.sparkles != nil {
		stats.Sparkles = g.sparkles.Len()
	}
	for _, name := range g.scheduler.Names() {
		state, _ := g.scheduler.State(name)
		stats.Loops = append(stats.Loops, name+"="+state.String())
	}
	return stats
}

// Layout follows the window size so the canvas always covers the viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.field != nil {
			g.field.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
