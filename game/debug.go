package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DebugState holds overlay flags toggled at runtime
type DebugState struct {
	ShowHUD bool // F1: frame rate, population and loop states
}

// HUDStats is the data shown by the debug overlay
type HUDStats struct {
	FPS       float64
	TPS       float64
	Particles int
	Sparkles  int
	Loops     []string
	Profiling bool
}

// Lines formats the overlay text
func (s HUDStats) Lines() []string {
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", s.FPS, s.TPS),
		fmt.Sprintf("particles %d  sparkles %d", s.Particles, s.Sparkles),
	}
	if len(s.Loops) > 0 {
		lines = append(lines, "loops "+strings.Join(s.Loops, " "))
	}
	if s.Profiling {
		lines = append(lines, "capturing CPU profile")
	}
	return lines
}

// drawHUD prints the overlay in the top-left corner
func drawHUD(screen *ebiten.Image, stats HUDStats) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 220, G: 220, B: 255, A: 255})
	op.LineSpacing = 16
	text.Draw(screen, strings.Join(stats.Lines(), "\n"), hudFace, op)
}
