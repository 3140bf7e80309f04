package sim

import (
	"math"

	"pacman/internal/entities"
)

// ghostScoreTable is the award for the Nth ghost eaten within one
// frightened window; the index caps at the last entry.
var ghostScoreTable = [4]int{200, 400, 800, 1600}

// collisionThreshold is the pixel distance below which the player and a
// ghost touch.
const collisionThreshold = entities.TileSize * 0.6

// resolveCollisions checks the player against each ghost in identity order.
// A frightened ghost is eaten (scored from the window table, sent to eyes)
// and scanning continues; any other non-eyes ghost kills the player, every
// ghost resets home, and scanning stops for this tick, so nothing is eaten
// after a death.
func (r *Round) resolveCollisions() {
	if !r.player.Alive {
		return
	}
	for _, gh := range r.ghosts {
		if math.Hypot(r.player.X-gh.X, r.player.Y-gh.Y) >= collisionThreshold {
			continue
		}
		switch gh.Mode {
		case entities.ModeFrightened:
			idx := r.eatenInWindow
			if idx > len(ghostScoreTable)-1 {
				idx = len(ghostScoreTable) - 1
			}
			r.player.Score += ghostScoreTable[idx]
			r.eatenInWindow++
			gh.BecomeEyes()
		case entities.ModeEyes:
			// Eyes are harmless and cannot be eaten twice.
		default:
			r.player.Die(r.params.respawnTicks())
			for _, g2 := range r.ghosts {
				g2.ResetToStart()
			}
			return
		}
	}
}
