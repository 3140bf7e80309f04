package grid

// defaultMaze is the classic 28x31 layout. Row 14 is the tunnel row: its
// open edge cells wrap to the opposite side. The dashes are the ghost house
// door (open, no pellet).
var defaultMaze = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"     #.#####.##.#####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   # GG   #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// defaultGhostBox is the ghost house region of defaultMaze; open cells
// inside it never receive pellets.
var defaultGhostBox = Rect{MinX: 10, MinY: 11, MaxX: 17, MaxY: 16}

// Default returns the compiled-in classic maze.
func Default() *Grid {
	return MustParse(defaultMaze, defaultGhostBox)
}
