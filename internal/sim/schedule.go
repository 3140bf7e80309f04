package sim

import "pacman/internal/entities"

type phase struct {
	mode    entities.Mode
	seconds int
}

// modeSequence is the global scatter/chase schedule. The final phase is
// effectively unbounded, so the cursor wrap is never reached in practice.
var modeSequence = []phase{
	{entities.ModeScatter, 7},
	{entities.ModeChase, 20},
	{entities.ModeScatter, 7},
	{entities.ModeChase, 20},
	{entities.ModeScatter, 5},
	{entities.ModeChase, 20},
	{entities.ModeScatter, 5},
	{entities.ModeChase, 9999},
}

// advanceSchedule decrements the phase countdown and, at zero, moves the
// cursor and broadcasts the new mode.
func (r *Round) advanceSchedule() {
	r.modeTicks--
	if r.modeTicks > 0 {
		return
	}
	r.modeIndex = (r.modeIndex + 1) % len(modeSequence)
	ph := modeSequence[r.modeIndex]
	r.modeTicks = ph.seconds * r.params.TickRate
	r.setGlobalMode(ph.mode)
}

// setGlobalMode applies a scheduled mode to every ghost that is not in the
// middle of a frightened or eyes episode; those rejoin on their own terms.
func (r *Round) setGlobalMode(m entities.Mode) {
	for _, gh := range r.ghosts {
		if gh.Mode != entities.ModeFrightened && gh.Mode != entities.ModeEyes {
			gh.Mode = m
		}
	}
}

// triggerFrightened is the power-pellet broadcast: the eaten-in-window
// counter restarts and every non-eyes ghost gets a full frightened timer,
// overriding whatever scatter/chase state it held. The next scheduled phase
// change does not undo this; each ghost returns when its own timer expires.
func (r *Round) triggerFrightened() {
	r.eatenInWindow = 0
	ticks := r.params.frightTicks()
	for _, gh := range r.ghosts {
		gh.SetFrightened(ticks)
	}
}

// CurrentMode returns the schedule's current phase mode. Individual ghosts
// may differ while frightened or returning home.
func (r *Round) CurrentMode() entities.Mode {
	return modeSequence[r.modeIndex].mode
}
