package entities

import "pacman/internal/grid"

const StartingLives = 3

// Player layers the input-direction queue and the life/score lifecycle on
// top of the shared Mover.
type Player struct {
	Mover

	Lives int
	Score int
	Alive bool

	// DesiredDir is the one-slot input buffer, overwritten by the latest
	// queued direction and cleared when a queued turn is accepted.
	DesiredDir Direction

	// RespawnTicks counts down while dead; at zero the player respawns if
	// lives remain.
	RespawnTicks int

	start grid.Point
}

func NewPlayer(start grid.Point, speed float64) *Player {
	return &Player{
		Mover: NewMover(start, speed),
		Lives: StartingLives,
		Alive: true,
		start: start,
	}
}

// QueueDirection overwrites the one-slot buffer. No validation happens
// here: a blocked direction simply fails to start a move later.
func (p *Player) QueueDirection(d Direction) {
	p.DesiredDir = d
}

// Update consumes the queued direction when idle and advances motion. A
// rejected queued turn falls back to the committed direction, so the player
// keeps sliding through corridors without re-pressed input.
func (p *Player) Update(g *grid.Grid) {
	if !p.Moving {
		if p.DesiredDir != DirNone && p.TryStartMove(g, p.DesiredDir) {
			p.DesiredDir = DirNone
		} else if p.Dir != DirNone {
			p.TryStartMove(g, p.Dir)
		}
	}
	p.Advance(g)
}

// Die takes a life and starts the respawn countdown. The controller is
// inert until the countdown expires.
func (p *Player) Die(respawnTicks int) {
	p.Lives--
	p.Alive = false
	p.RespawnTicks = respawnTicks
}

// Respawn puts the player back at the start tile, idle, with cleared
// direction, transit and wrap state.
func (p *Player) Respawn() {
	p.TX, p.TY = p.start.X, p.start.Y
	p.Stop()
	p.DesiredDir = DirNone
	p.Alive = true
}
