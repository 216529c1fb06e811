package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"magicfx/game"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "initial window width in pixels")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "initial window height in pixels")
	flag.IntVar(&config.Particles.Count, "particles", config.Particles.Count, "particle population size")
	flag.Int64Var(&config.Seed, "seed", 0, "particle random seed (0 = time based)")
	noCursor := flag.Bool("no-cursor", false, "disable the magic cursor")
	noParticles := flag.Bool("no-particles", false, "disable the particle field")
	flag.BoolVar(&config.Cursor.Chime, "chime", false, "play a tone on click")
	flag.StringVar(&config.ProfileDir, "profile-dir", "", "capture CPU profiles here when the frame rate drops")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	config.Cursor.Enabled = !*noCursor
	config.Particles.Enabled = !*noParticles

	g := game.NewGame(config)
	defer func() {
		if err := g.Stop(); err != nil {
			log.Printf("stop: %v", err)
		}
	}()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Magic")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(*fullscreen)
	// One tick per displayed frame
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
