package grid

// Items is the live, mutable set of pellets and power pellets for one round.
// It starts as a snapshot of the grid's template locations and shrinks as
// the player eats; when both sets are empty the round is won.
type Items struct {
	pellets map[Point]struct{}
	powers  map[Point]struct{}
}

// NewItems snapshots the grid's item locations into a fresh round set.
func (g *Grid) NewItems() *Items {
	it := &Items{
		pellets: make(map[Point]struct{}, len(g.pellets)),
		powers:  make(map[Point]struct{}, len(g.powers)),
	}
	for p := range g.pellets {
		it.pellets[p] = struct{}{}
	}
	for p := range g.powers {
		it.powers[p] = struct{}{}
	}
	return it
}

// EatPelletAt removes the pellet at p, reporting whether one was there.
func (it *Items) EatPelletAt(p Point) bool {
	if _, ok := it.pellets[p]; !ok {
		return false
	}
	delete(it.pellets, p)
	return true
}

// EatPowerAt removes the power pellet at p, reporting whether one was there.
func (it *Items) EatPowerAt(p Point) bool {
	if _, ok := it.powers[p]; !ok {
		return false
	}
	delete(it.powers, p)
	return true
}

func (it *Items) HasPellet(p Point) bool {
	_, ok := it.pellets[p]
	return ok
}

func (it *Items) HasPower(p Point) bool {
	_, ok := it.powers[p]
	return ok
}

// Empty reports whether every pellet and power pellet has been eaten.
func (it *Items) Empty() bool {
	return len(it.pellets) == 0 && len(it.powers) == 0
}

func (it *Items) PelletCount() int { return len(it.pellets) }
func (it *Items) PowerCount() int  { return len(it.powers) }

// Pellets returns the remaining pellet locations (unordered).
func (it *Items) Pellets() []Point {
	out := make([]Point, 0, len(it.pellets))
	for p := range it.pellets {
		out = append(out, p)
	}
	return out
}

// Powers returns the remaining power pellet locations (unordered).
func (it *Items) Powers() []Point {
	out := make([]Point, 0, len(it.powers))
	for p := range it.powers {
		out = append(out, p)
	}
	return out
}
