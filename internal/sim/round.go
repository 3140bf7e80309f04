package sim

import (
	"math/rand"
	"time"

	"pacman/internal/entities"
	"pacman/internal/grid"
)

const (
	pelletPoints = 10
	powerPoints  = 50
)

// Outcome distinguishes how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Round owns everything one round mutates: the live item sets, the player,
// the four ghosts, the mode schedule cursor and the frightened-window
// counter. The grid itself is immutable and shared across rounds. All
// mutation is sequential within SimulateTick; nothing here is safe for
// concurrent use and nothing needs to be.
type Round struct {
	params Params
	grid   *grid.Grid
	rng    *rand.Rand

	items  *grid.Items
	player *entities.Player
	ghosts [4]*entities.Ghost

	modeIndex int
	modeTicks int

	// eatenInWindow counts ghosts eaten since the last power pellet; it
	// indexes the ghost score table, capped at the final entry.
	eatenInWindow int

	paused  bool
	outcome Outcome
}

// NewRound builds a fresh round on a validated grid.
func NewRound(params Params, g *grid.Grid) *Round {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Round{
		params: params,
		grid:   g,
		rng:    rand.New(rand.NewSource(seed)),
	}
	r.reset()
	return r
}

// reset reinitializes all entity, item and schedule state from scratch.
func (r *Round) reset() {
	r.items = r.grid.NewItems()
	r.player = entities.NewPlayer(r.grid.PlayerStart, r.params.PlayerSpeed)
	for i := range r.ghosts {
		r.ghosts[i] = entities.NewGhost(r.grid.GhostStarts[i], i, r.params.ScatterSpeed)
	}
	r.modeIndex = 0
	r.modeTicks = modeSequence[0].seconds * r.params.TickRate
	r.setGlobalMode(modeSequence[0].mode)
	r.eatenInWindow = 0
	r.outcome = OutcomeNone
}

// ResetRound starts a new round from scratch. It is a full reinitialize,
// not a resume; the pause flag is the only state that survives.
func (r *Round) ResetRound() {
	r.reset()
}

// SimulateTick advances the simulation by one fixed step. While paused or
// after the round has ended it does nothing. Order within a tick: mode
// schedule, player (or respawn countdown), pickup, ghosts in identity
// order, collision resolution, win check.
func (r *Round) SimulateTick() {
	if r.paused || r.outcome != OutcomeNone {
		return
	}

	r.advanceSchedule()

	if !r.player.Alive {
		r.player.RespawnTicks--
		if r.player.RespawnTicks <= 0 {
			if r.player.Lives > 0 {
				r.player.Respawn()
			} else {
				r.outcome = OutcomeLost
			}
		}
	} else {
		r.player.Update(r.grid)
		r.handlePickup()
	}

	// Each ghost reads identity 0's tile as it stood before any ghost
	// moved this tick, not mid-update.
	blinky := r.ghosts[0].Tile()
	for _, gh := range r.ghosts {
		r.updateGhost(gh, blinky)
	}

	r.resolveCollisions()

	if r.items.Empty() {
		r.outcome = OutcomeWon
	}
}

// handlePickup eats the item under the player. It only fires when the
// player is centered on its tile, never mid-transit.
func (r *Round) handlePickup() {
	if !r.player.AtCenter() {
		return
	}
	t := r.player.Tile()
	if r.items.EatPelletAt(t) {
		r.player.Score += pelletPoints
	}
	if r.items.EatPowerAt(t) {
		r.player.Score += powerPoints
		r.triggerFrightened()
	}
}

// QueueDirection forwards an input direction to the player's one-slot
// buffer.
func (r *Round) QueueDirection(d entities.Direction) {
	r.player.QueueDirection(d)
}

// SetPaused freezes or resumes the whole simulation.
func (r *Round) SetPaused(paused bool) {
	r.paused = paused
}

func (r *Round) Paused() bool {
	return r.paused
}

// Over reports whether the round has ended and how.
func (r *Round) Over() (bool, Outcome) {
	return r.outcome != OutcomeNone, r.outcome
}

func (r *Round) Player() *entities.Player { return r.player }
func (r *Round) Ghosts() []*entities.Ghost {
	return r.ghosts[:]
}
func (r *Round) Items() *grid.Items { return r.items }
func (r *Round) Grid() *grid.Grid   { return r.grid }
func (r *Round) Score() int         { return r.player.Score }
func (r *Round) Lives() int         { return r.player.Lives }
