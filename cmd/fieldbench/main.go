package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"magicfx/game"
)

var _ game.Surface = (*countingSurface)(nil)

// countingSurface discards draw calls but counts them
type countingSurface struct {
	clears int
	discs  int
}

func (s *countingSurface) Clear() {
	s.clears++
}

func (s *countingSurface) FillRadialGradient(cx, cy, r float64, g *game.Gradient, alpha float64) {
	s.discs++
}

func (s *countingSurface) FillCircle(cx, cy, r float64, clr color.NRGBA) {}

func (s *countingSurface) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {}

func (s *countingSurface) DrawIcon(frame float64, parts []game.IconPart, t game.CursorTransform) {}

func main() {
	particles := flag.Int("particles", 60, "particle population size")
	frames := flag.Int("frames", 10000, "frames to simulate")
	width := flag.Int("width", 1920, "viewport width")
	height := flag.Int("height", 1080, "viewport height")
	seed := flag.Int64("seed", 1, "random seed")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("Failed to create profile file: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	config := game.DefaultConfig()
	config.Seed = *seed
	config.Particles.Count = *particles
	field := game.NewParticleField(config.Particles, *width, *height, config.NewRand())
	surface := &countingSurface{}

	start := time.Now()
	for i := 0; i < *frames; i++ {
		field.Tick()
		field.Render(surface)
	}
	elapsed := time.Since(start)

	perFrame := elapsed / time.Duration(max(*frames, 1))
	budget := time.Second / 60
	fmt.Printf("particles=%d frames=%d total=%v per-frame=%v (%.2f%% of a 60Hz frame)\n",
		field.Len(), *frames, elapsed, perFrame, 100*float64(perFrame)/float64(budget))
	fmt.Printf("draw calls: clears=%d discs=%d\n", surface.clears, surface.discs)
}
