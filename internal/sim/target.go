package sim

import (
	"math"
	"math/rand"

	"pacman/internal/entities"
	"pacman/internal/grid"
)

// directionOrder fixes candidate enumeration for ghost decisions; distance
// ties resolve in this order.
var directionOrder = [4]entities.Direction{
	entities.DirRight,
	entities.DirLeft,
	entities.DirDown,
	entities.DirUp,
}

// shyRange is the tile distance at which identity 3 switches from pursuit
// to retreating to its home corner.
const shyRange = 8.0

// chaseTargetFunc computes one personality's chase target from the player
// state and identity 0's tile.
type chaseTargetFunc func(gh *entities.Ghost, p *entities.Player, blinky grid.Point, g *grid.Grid) grid.Point

// chaseTargets is the per-identity personality table:
// 0 pursues directly, 1 ambushes four tiles ahead, 2 flanks by reflecting a
// point two tiles ahead through identity 0's tile, 3 pursues at long range
// but retreats to its corner when close.
var chaseTargets = [4]chaseTargetFunc{
	targetDirect,
	targetAhead,
	targetFlank,
	targetShy,
}

func targetDirect(_ *entities.Ghost, p *entities.Player, _ grid.Point, _ *grid.Grid) grid.Point {
	return p.Tile()
}

func targetAhead(_ *entities.Ghost, p *entities.Player, _ grid.Point, _ *grid.Grid) grid.Point {
	dx, dy := entities.DirDelta(p.Dir)
	return grid.Point{X: p.TX + 4*dx, Y: p.TY + 4*dy}
}

// targetFlank reflects the point two tiles ahead of the player through
// identity 0's current tile. No special case while identity 0 is in eyes
// mode; the reflection tracks it wherever it is.
func targetFlank(_ *entities.Ghost, p *entities.Player, blinky grid.Point, _ *grid.Grid) grid.Point {
	dx, dy := entities.DirDelta(p.Dir)
	ax, ay := p.TX+2*dx, p.TY+2*dy
	return grid.Point{X: 2*ax - blinky.X, Y: 2*ay - blinky.Y}
}

func targetShy(gh *entities.Ghost, p *entities.Player, _ grid.Point, g *grid.Grid) grid.Point {
	if math.Hypot(float64(p.TX-gh.TX), float64(p.TY-gh.TY)) > shyRange {
		return p.Tile()
	}
	return scatterCorner(g, gh.Identity)
}

// scatterCorner is the fixed home corner for an identity.
func scatterCorner(g *grid.Grid, identity int) grid.Point {
	corners := [4]grid.Point{
		{X: g.Width - 1, Y: 0},
		{X: 0, Y: 0},
		{X: g.Width - 1, Y: g.Height - 1},
		{X: 0, Y: g.Height - 1},
	}
	return corners[identity]
}

// legalDirections enumerates, in tie-break order, the directions whose
// destination tile is open, excluding the exact reverse of the current
// direction. Ghosts never turn back at a decision point; reversal exists
// only as the dead-end fallback below.
func legalDirections(gh *entities.Ghost, g *grid.Grid) []entities.Direction {
	var out []entities.Direction
	for _, d := range directionOrder {
		dx, dy := entities.DirDelta(d)
		if !g.IsOpen(gh.TX+dx, gh.TY+dy) {
			continue
		}
		if gh.Dir != entities.DirNone && d == gh.Dir.Reverse() {
			continue
		}
		out = append(out, d)
	}
	return out
}

// chooseDirectionToward picks the legal direction whose destination tile
// minimizes squared distance to the target, ties resolved by enumeration
// order. An empty candidate set (a dead end) falls back to reversing.
func chooseDirectionToward(gh *entities.Ghost, g *grid.Grid, target grid.Point) entities.Direction {
	cands := legalDirections(gh, g)
	if len(cands) == 0 {
		return gh.Dir.Reverse()
	}
	best := cands[0]
	bestDist := math.MaxInt
	for _, d := range cands {
		dx, dy := entities.DirDelta(d)
		ddx := gh.TX + dx - target.X
		ddy := gh.TY + dy - target.Y
		dist := ddx*ddx + ddy*ddy
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// randomDirection picks uniformly among the same legal candidates; it is
// the frightened-mode variant of chooseDirectionToward.
func randomDirection(gh *entities.Ghost, g *grid.Grid, rng *rand.Rand) entities.Direction {
	cands := legalDirections(gh, g)
	if len(cands) == 0 {
		return gh.Dir.Reverse()
	}
	return cands[rng.Intn(len(cands))]
}

// updateGhost runs one ghost for one tick: timers, a decision if idle, the
// per-mode speed, then motion.
func (r *Round) updateGhost(gh *entities.Ghost, blinky grid.Point) {
	if gh.Mode == entities.ModeFrightened {
		gh.FrightTicks--
		if gh.FrightTicks <= 0 {
			gh.Mode = entities.ModeChase
		}
	}

	if gh.Mode == entities.ModeEyes {
		if !gh.Moving {
			d := chooseDirectionToward(gh, r.grid, r.grid.House)
			gh.TryStartMove(r.grid, d)
		}
		gh.Speed = r.params.EyesSpeed
		gh.Advance(r.grid)
		// The transition back happens exactly on arrival, never mid-trip.
		if !gh.Moving && gh.Tile() == r.grid.House {
			gh.Mode = entities.ModeScatter
			gh.Dir = entities.DirNone
		}
		return
	}

	if !gh.Moving {
		var d entities.Direction
		switch gh.Mode {
		case entities.ModeFrightened:
			d = randomDirection(gh, r.grid, r.rng)
		case entities.ModeScatter:
			d = chooseDirectionToward(gh, r.grid, scatterCorner(r.grid, gh.Identity))
		default:
			target := chaseTargets[gh.Identity](gh, r.player, blinky, r.grid)
			d = chooseDirectionToward(gh, r.grid, target)
		}
		gh.TryStartMove(r.grid, d)
	}

	switch gh.Mode {
	case entities.ModeFrightened:
		gh.Speed = r.params.FrightSpeed
	case entities.ModeChase:
		gh.Speed = r.params.ChaseSpeed
	default:
		gh.Speed = r.params.ScatterSpeed
	}
	gh.Advance(r.grid)
}
