package main

import (
	"log"

	"pacman/internal/config"
	"pacman/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Load()
	g := game.NewWithConfig(cfg)
	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
