package grid

import "fmt"

// Point is a tile coordinate. Tiles are the authoritative unit of position
// for all gameplay logic; pixels exist only for rendering and proximity.
type Point struct {
	X, Y int
}

// Rect is an inclusive tile rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Grid is the immutable maze topology: wall/open classification plus the
// template item locations and the start tiles. Live, mutable item sets are
// snapshotted from it with NewItems at round start.
type Grid struct {
	Width, Height int

	walls   [][]bool
	pellets map[Point]struct{}
	powers  map[Point]struct{}

	PlayerStart Point
	GhostStarts [4]Point
	// House is the tile eyes-mode ghosts return to before rejoining play.
	House Point
}

// Fallback start tiles matching the classic layout, used when the maze text
// does not mark enough of them.
var (
	fallbackGhostStarts = [4]Point{{13, 14}, {14, 14}, {12, 14}, {15, 14}}
	fallbackPlayerStart = Point{14, 23}
)

// Parse builds a Grid from maze text. '#' is a wall and every other rune is
// open; '.' holds a pellet, 'o' a power pellet, 'G' marks a ghost start and
// 'P' the player start. Open ' ' cells outside ghostBox that the player can
// reach also receive pellets, so tunnel corridors are worth traversing;
// walled-off pockets stay empty.
//
// Parse validates the invariants the simulation relies on and refuses to
// build a grid that breaks them: rectangular rows, open start tiles,
// tunnel-edge symmetry (an open cell in column 0 needs an open partner in
// the last column of the same row, and vice versa), and every pellet and
// power pellet reachable from the player start. The round is won by eating
// everything, so an item on an unreachable tile would make winning
// impossible.
func Parse(lines []string, ghostBox Rect) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("grid: empty maze")
	}
	w := len(lines[0])
	h := len(lines)
	g := &Grid{
		Width:   w,
		Height:  h,
		walls:   make([][]bool, h),
		pellets: make(map[Point]struct{}),
		powers:  make(map[Point]struct{}),
	}

	var ghostStarts []Point
	var corridor []Point
	playerStart := Point{-1, -1}
	for y, row := range lines {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has width %d, want %d", y, len(row), w)
		}
		g.walls[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			p := Point{x, y}
			switch row[x] {
			case '#':
				g.walls[y][x] = true
			case '.':
				g.pellets[p] = struct{}{}
			case 'o':
				g.powers[p] = struct{}{}
			case 'G':
				ghostStarts = append(ghostStarts, p)
			case 'P':
				playerStart = p
			case ' ':
				if !ghostBox.contains(x, y) {
					corridor = append(corridor, p)
				}
			}
		}
	}

	if len(ghostStarts) < 4 {
		ghostStarts = fallbackGhostStarts[:]
	}
	copy(g.GhostStarts[:], ghostStarts)
	if playerStart.X < 0 {
		playerStart = fallbackPlayerStart
	}
	g.PlayerStart = playerStart
	g.House = g.GhostStarts[1]

	reach := g.reachableFrom(g.PlayerStart)
	for _, p := range corridor {
		if _, ok := reach[p]; ok {
			g.pellets[p] = struct{}{}
		}
	}

	if err := g.validate(reach); err != nil {
		return nil, err
	}
	return g, nil
}

// MustParse is Parse for compiled-in mazes; it panics on invalid input.
func MustParse(lines []string, ghostBox Rect) *Grid {
	g, err := Parse(lines, ghostBox)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) validate(reach map[Point]struct{}) error {
	for y := 0; y < g.Height; y++ {
		left := g.IsOpen(0, y)
		right := g.IsOpen(g.Width-1, y)
		if left != right {
			return fmt.Errorf("grid: row %d has an unpaired tunnel edge", y)
		}
	}
	if !g.IsOpen(g.PlayerStart.X, g.PlayerStart.Y) {
		return fmt.Errorf("grid: player start %v is not open", g.PlayerStart)
	}
	for i, p := range g.GhostStarts {
		if !g.IsOpen(p.X, p.Y) {
			return fmt.Errorf("grid: ghost %d start %v is not open", i, p)
		}
	}
	if !g.IsOpen(g.House.X, g.House.Y) {
		return fmt.Errorf("grid: house tile %v is not open", g.House)
	}
	for p := range g.pellets {
		if _, ok := reach[p]; !ok {
			return fmt.Errorf("grid: pellet at %v is unreachable from the player start", p)
		}
	}
	for p := range g.powers {
		if _, ok := reach[p]; !ok {
			return fmt.Errorf("grid: power pellet at %v is unreachable from the player start", p)
		}
	}
	return nil
}

// reachableFrom flood-fills the open tiles reachable from start, following
// the same horizontal wrap rule the movers use: a horizontal step whose
// direct destination is closed may instead land on the wrapped column.
func (g *Grid) reachableFrom(start Point) map[Point]struct{} {
	seen := make(map[Point]struct{})
	if !g.IsOpen(start.X, start.Y) {
		return seen
	}
	seen[start] = struct{}{}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d[0], p.Y+d[1]
			if d[1] == 0 && !g.IsOpen(nx, ny) {
				nx = ((nx % g.Width) + g.Width) % g.Width
			}
			if !g.IsOpen(nx, ny) {
				continue
			}
			n := Point{nx, ny}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return seen
}

// IsWall reports whether the cell is a wall. Out-of-bounds counts as wall.
func (g *Grid) IsWall(x, y int) bool {
	if y < 0 || y >= g.Height || x < 0 || x >= g.Width {
		return true
	}
	return g.walls[y][x]
}

// IsOpen reports whether the cell is inside the grid and not a wall.
func (g *Grid) IsOpen(x, y int) bool {
	return !g.IsWall(x, y)
}

// IsTunnelEdge reports whether the cell is one end of a horizontal tunnel:
// an open cell in an extreme column whose partner on the opposite extreme of
// the same row is also open.
func (g *Grid) IsTunnelEdge(x, y int) bool {
	if x != 0 && x != g.Width-1 {
		return false
	}
	return g.IsOpen(x, y) && g.IsOpen(g.Width-1-x, y)
}
