package entities

import (
	"math"

	"pacman/internal/grid"
)

const (
	// TileSize is the edge of one maze cell in pixels. All speeds are
	// pixels per tick at this tile size.
	TileSize = 24

	// centerEpsilon is how close (in pixels) a mover must be to its tile
	// center to count as centered. Pickup and turning only happen there.
	centerEpsilon = 1.0
)

// TileCenter returns the pixel center of a tile. The tile index may lie
// outside the grid; wrap transits interpolate toward an off-grid center
// before snapping to the far side.
func TileCenter(tx, ty int) (float64, float64) {
	return float64(tx*TileSize + TileSize/2), float64(ty*TileSize + TileSize/2)
}

// Mover is the shared tile-to-tile motion state for the player and ghosts.
// The tile coordinate is authoritative for gameplay; the pixel position
// always lies on the segment between the tile center it departed and the
// one it is approaching. Exactly one of idle-at-center / in-transit holds.
type Mover struct {
	TX, TY int     // authoritative tile coordinate
	X, Y   float64 // pixel position, derived
	Dir    Direction
	Moving bool
	Speed  float64 // pixels per tick while in transit

	// Wrap state, active only while crossing a tunnel: on arrival the
	// mover snaps to the wrapped tile instead of TX+dx,TY+dy.
	warping      bool
	warpX, warpY int
}

// NewMover places an idle mover at the center of start.
func NewMover(start grid.Point, speed float64) Mover {
	m := Mover{TX: start.X, TY: start.Y, Speed: speed}
	m.X, m.Y = TileCenter(m.TX, m.TY)
	return m
}

func (m *Mover) Tile() grid.Point {
	return grid.Point{X: m.TX, Y: m.TY}
}

// AtCenter reports whether the mover is within the center epsilon of its
// own tile center.
func (m *Mover) AtCenter() bool {
	cx, cy := TileCenter(m.TX, m.TY)
	return math.Abs(m.X-cx) < centerEpsilon && math.Abs(m.Y-cy) < centerEpsilon
}

// TryStartMove commits the mover to a transit toward the neighbor in d when
// that tile is open. A horizontal move whose destination is off-grid or a
// wall may instead start a tunnel transit when the wrapped column is open;
// the wrap target is remembered for the arrival snap. Vertical wraps are
// never attempted. On failure the mover is left unchanged.
func (m *Mover) TryStartMove(g *grid.Grid, d Direction) bool {
	if d == DirNone {
		return false
	}
	dx, dy := DirDelta(d)
	nx, ny := m.TX+dx, m.TY+dy

	if g.IsOpen(nx, ny) {
		m.Dir = d
		m.Moving = true
		m.warping = false
		return true
	}

	if dy == 0 {
		wx := ((nx % g.Width) + g.Width) % g.Width
		if g.IsOpen(wx, ny) {
			m.Dir = d
			m.Moving = true
			m.warping = true
			m.warpX, m.warpY = wx, ny
			return true
		}
	}
	return false
}

// Advance moves the pixel position Speed pixels toward the destination tile
// center. On arrival a normal transit snaps exactly to the destination
// center (no float drift accumulates); a wrap transit snaps to the wrapped
// tile and immediately restarts a move in the same direction, so tunnel
// traversal never inserts an idle tick or waits for fresh input.
func (m *Mover) Advance(g *grid.Grid) {
	if !m.Moving {
		return
	}
	dx, dy := DirDelta(m.Dir)
	tcx, tcy := TileCenter(m.TX+dx, m.TY+dy)
	vx, vy := tcx-m.X, tcy-m.Y
	dist := math.Hypot(vx, vy)

	if dist <= m.Speed {
		if m.warping {
			m.TX, m.TY = m.warpX, m.warpY
			m.X, m.Y = TileCenter(m.TX, m.TY)
			m.warping = false
			m.Moving = false
			m.TryStartMove(g, m.Dir)
		} else {
			m.TX += dx
			m.TY += dy
			m.X, m.Y = tcx, tcy
			m.Moving = false
		}
		return
	}
	m.X += vx / dist * m.Speed
	m.Y += vy / dist * m.Speed
}

// Stop makes the mover idle at its current tile center, clearing direction,
// transit and wrap state.
func (m *Mover) Stop() {
	m.Dir = DirNone
	m.Moving = false
	m.warping = false
	m.X, m.Y = TileCenter(m.TX, m.TY)
}

// Warping reports whether a tunnel transit is in progress.
func (m *Mover) Warping() bool {
	return m.warping
}
