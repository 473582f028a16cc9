package zombietrap

// passable reports whether a zombie can slide onto r.
func passable(r rune) bool {
	return r == Floor || r == Trap
}

// Shift moves every zombie in dir as far as it can go.
// Zombies nearest the destination edge move first so that a column of
// zombies stacks up against a wall instead of stopping on each other.
// Returns the score gained and whether the board changed.
func (g *Game) Shift(dir Direction) (gained int, changed bool) {
	dx, dy := dir.delta()

	// Visit order: start from the edge the zombies are moving toward
	xs := axis(g.width, dx > 0)
	ys := axis(g.height, dy > 0)

	for _, y := range ys {
		for _, x := range xs {
			if g.At(x, y) != Zombie {
				continue
			}
			pts, moved := g.slide(x, y, dx, dy)
			gained += pts
			changed = changed || moved
		}
	}

	g.score += gained
	return gained, changed
}

// slide moves the zombie at (x, y) until blocked or trapped.
func (g *Game) slide(x, y, dx, dy int) (gained int, moved bool) {
	for {
		nx, ny := x+dx, y+dy
		next := g.At(nx, ny)
		if !passable(next) {
			return 0, moved
		}

		// Leave the current cell
		g.set(x, y, Floor)
		moved = true

		if next == Trap {
			g.set(nx, ny, Floor)
			return g.points, true
		}

		x, y = nx, ny
		g.set(x, y, Zombie)
	}
}

// axis returns 0..n-1, reversed when reverse is set.
func axis(n int, reverse bool) []int {
	idx := make([]int, n)
	for i := range n {
		if reverse {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

// ShiftUp shifts every zombie up.
func (g *Game) ShiftUp() {
	g.Shift(DirUp)
}

// ShiftDown shifts every zombie down.
func (g *Game) ShiftDown() {
	g.Shift(DirDown)
}

// ShiftLeft shifts every zombie left.
func (g *Game) ShiftLeft() {
	g.Shift(DirLeft)
}

// ShiftRight shifts every zombie right.
func (g *Game) ShiftRight() {
	g.Shift(DirRight)
}
