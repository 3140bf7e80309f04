package game

import (
	"fmt"
	"image/color"
	"math"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/grid"
	"pacman/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const tileSize = entities.TileSize

// Game is the thin ebiten shell around the simulation: it translates key
// events into commands, calls SimulateTick once per frame and draws the
// round state. All game rules live in internal/sim.
type Game struct {
	cfg   config.Config
	maze  *grid.Grid
	round *sim.Round

	scale      float64
	fullscreen bool
	quit       bool
}

func New() *Game {
	return NewWithConfig(config.Load())
}

func NewWithConfig(cfg config.Config) *Game {
	m := grid.Default()

	params := sim.DefaultParams()
	params.TickRate = cfg.TickRate
	params.FrightSeconds = cfg.FrightSeconds
	params.RespawnSeconds = cfg.RespawnSeconds

	g := &Game{
		cfg:        cfg,
		maze:       m,
		round:      sim.NewRound(params, m),
		fullscreen: cfg.Fullscreen,
	}

	// Scale the native maze resolution to fit within a fraction of the
	// display area.
	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	maxW := int(float64(sw) * cfg.WindowFit)
	maxH := int(float64(sh) * cfg.WindowFit)
	scaleW := float64(maxW) / float64(nativeW)
	scaleH := float64(maxH) / float64(nativeH)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

// Round exposes the simulation, mainly for tests.
func (g *Game) Round() *sim.Round {
	return g.round
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.maze.Width*tileSize) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.maze.Height*tileSize) * g.scale)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	g.round.SimulateTick()
	return nil
}

func (g *Game) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.round.QueueDirection(entities.DirUp)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.round.QueueDirection(entities.DirDown)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.round.QueueDirection(entities.DirLeft)
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.round.QueueDirection(entities.DirRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.round.SetPaused(!g.round.Paused())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	if over, _ := g.round.Over(); over && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.round.ResetRound()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}

var (
	wallColor   = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	frightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	ghostColors = [4]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // identity 0: red
		{R: 255, G: 184, B: 255, A: 255}, // identity 1: pink
		{R: 0, G: 255, B: 255, A: 255},   // identity 2: cyan
		{R: 255, G: 165, B: 0, A: 255},   // identity 3: orange
	}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Render at native resolution, then scale up.
	nativeW := g.maze.Width * tileSize
	nativeH := g.maze.Height * tileSize
	off := ebiten.NewImage(nativeW, nativeH)

	g.drawMaze(off)
	for _, gh := range g.round.Ghosts() {
		drawGhost(off, gh)
	}
	g.drawPlayer(off)
	g.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) drawMaze(dst *ebiten.Image) {
	for y := 0; y < g.maze.Height; y++ {
		for x := 0; x < g.maze.Width; x++ {
			if g.maze.IsWall(x, y) {
				vector.DrawFilledRect(dst, float32(x*tileSize), float32(y*tileSize), tileSize, tileSize, wallColor, false)
			}
		}
	}
	items := g.round.Items()
	for _, p := range items.Pellets() {
		cx := float32(p.X*tileSize + tileSize/2)
		cy := float32(p.Y*tileSize + tileSize/2)
		vector.DrawFilledCircle(dst, cx, cy, float32(tileSize)/8, pelletColor, true)
	}
	for _, p := range items.Powers() {
		cx := float32(p.X*tileSize + tileSize/2)
		cy := float32(p.Y*tileSize + tileSize/2)
		vector.DrawFilledCircle(dst, cx, cy, float32(tileSize)/4, pelletColor, true)
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	p := g.round.Player()
	if !p.Alive {
		return
	}
	r := float32(tileSize)/2 - 2
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), r, playerColor, true)

	// Mouth: a dark notch leading the travel direction, or the queued one
	// while idle.
	dir := p.Dir
	if dir == entities.DirNone {
		dir = p.DesiredDir
	}
	if dir != entities.DirNone {
		dx, dy := entities.DirDelta(dir)
		mx := float32(p.X) + float32(dx)*r
		my := float32(p.Y) + float32(dy)*r
		vector.DrawFilledCircle(dst, mx, my, float32(tileSize)/6, color.Black, true)
	}
}

func drawGhost(dst *ebiten.Image, gh *entities.Ghost) {
	c := ghostColors[gh.Identity]
	if gh.Mode == entities.ModeFrightened {
		c = frightColor
	}
	x, y := float32(gh.X), float32(gh.Y)
	if gh.Mode != entities.ModeEyes {
		vector.DrawFilledCircle(dst, x, y-4, float32(tileSize)/2-2, c, true)
	}
	// Eyes stay visible in every mode; pupils lead the current direction.
	dx, dy := entities.DirDelta(gh.Dir)
	vector.DrawFilledCircle(dst, x-6, y-6, 4, pelletColor, true)
	vector.DrawFilledCircle(dst, x+6, y-6, 4, pelletColor, true)
	px, py := float32(dx*2), float32(dy*2)
	vector.DrawFilledCircle(dst, x-6+px, y-6+py, 2, color.RGBA{A: 255}, true)
	vector.DrawFilledCircle(dst, x+6+px, y-6+py, 2, color.RGBA{A: 255}, true)
}

func (g *Game) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	hud := fmt.Sprintf("Score: %d  Lives: %d", g.round.Score(), g.round.Lives())
	text.Draw(dst, hud, basicfont.Face7x13, 4, 12, color.White)

	var banner string
	if over, outcome := g.round.Over(); over {
		if outcome == sim.OutcomeWon {
			banner = "YOU WIN! - Press R to play again"
		} else {
			banner = "GAME OVER - Press R to restart"
		}
	} else if g.round.Paused() {
		banner = "PAUSED - press Space to resume"
	}
	if banner != "" {
		// basicfont.Face7x13 is roughly 7 pixels wide per character
		bw := len(banner) * 7
		text.Draw(dst, banner, basicfont.Face7x13, (nativeW-bw)/2, nativeH/2, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
