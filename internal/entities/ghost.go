package entities

import "pacman/internal/grid"

// Mode is a ghost's behavioral state and the single source of truth for it;
// "captured" is not tracked separately, it is simply Mode == ModeEyes.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEyes
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEyes:
		return "eyes"
	default:
		return "unknown"
	}
}

// Ghost is one pursuer: a Mover plus a fixed identity (0-3, which selects
// its chase personality, home corner and color) and its mode state.
type Ghost struct {
	Mover

	Identity int
	Mode     Mode

	// FrightTicks counts down while frightened; at zero the ghost rejoins
	// chase on its own, independent of the global schedule.
	FrightTicks int

	Start grid.Point
}

func NewGhost(start grid.Point, identity int, speed float64) *Ghost {
	return &Ghost{
		Mover:    NewMover(start, speed),
		Identity: identity,
		Mode:     ModeScatter,
		Start:    start,
	}
}

// Captured reports whether the ghost has been eaten and is returning home.
func (gh *Ghost) Captured() bool {
	return gh.Mode == ModeEyes
}

// SetFrightened forces the ghost into frightened mode with a full timer.
// Eyes-mode ghosts are immune: an eaten ghost finishes its trip home.
func (gh *Ghost) SetFrightened(ticks int) {
	if gh.Mode == ModeEyes {
		return
	}
	gh.Mode = ModeFrightened
	gh.FrightTicks = ticks
}

// BecomeEyes marks the ghost eaten. Motion halts where it stands (the pixel
// position is not snapped) and any frightened timer is superseded.
func (gh *Ghost) BecomeEyes() {
	gh.Mode = ModeEyes
	gh.FrightTicks = 0
	gh.Dir = DirNone
	gh.Moving = false
	gh.warping = false
}

// ResetToStart puts the ghost back on its start tile in scatter mode with
// all motion and timer state cleared. Used on player death.
func (gh *Ghost) ResetToStart() {
	gh.TX, gh.TY = gh.Start.X, gh.Start.Y
	gh.Stop()
	gh.Mode = ModeScatter
	gh.FrightTicks = 0
}
