package zombietrap

import (
	"slices"
	"strconv"
	"strings"
)

// Game is one Zombie Trap configuration: the grid plus the score so far.
// It satisfies statespace.Configuration[*Game].
type Game struct {
	width  int
	height int
	cells  []rune // row-major
	points int    // score per trapped zombie
	score  int
}

// Parse builds a game from board rows. points <= 0 means DefaultTrapPoints.
func Parse(rows []string, points int) (*Game, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}
	if points <= 0 {
		points = DefaultTrapPoints
	}

	g := &Game{
		width:  len([]rune(rows[0])),
		height: len(rows),
		points: points,
	}
	g.cells = make([]rune, 0, g.width*g.height)
	for _, row := range rows {
		g.cells = append(g.cells, []rune(row)...)
	}
	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in boards.
func MustParse(rows []string, points int) *Game {
	g, err := Parse(rows, points)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Game) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Game) Height() int {
	return g.height
}

// At returns the cell at (x, y), or Wall outside the grid.
func (g *Game) At(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y*g.width+x]
}

func (g *Game) set(x, y int, r rune) {
	g.cells[y*g.width+x] = r
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// Points returns the score awarded per trapped zombie.
func (g *Game) Points() int {
	return g.points
}

// Copy returns an independent deep copy.
func (g *Game) Copy() *Game {
	c := *g
	c.cells = slices.Clone(g.cells)
	return &c
}

// Key encodes the grid and score. Equal games have equal keys.
func (g *Game) Key() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height + 8)
	sb.WriteString(strconv.Itoa(g.width))
	sb.WriteByte(':')
	for _, r := range g.cells {
		sb.WriteRune(r)
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(g.score))
	return sb.String()
}

// Equal reports whether two games have the same grid and score.
func (g *Game) Equal(other *Game) bool {
	return g.width == other.width &&
		g.score == other.score &&
		slices.Equal(g.cells, other.cells)
}

// Rows returns the grid as strings, top row first.
func (g *Game) Rows() []string {
	rows := make([]string, g.height)
	for y := range g.height {
		rows[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}
	return rows
}

// String renders the grid one row per line.
func (g *Game) String() string {
	return strings.Join(g.Rows(), "\n")
}

// count returns how many cells hold r.
func (g *Game) count(r rune) int {
	n := 0
	for _, c := range g.cells {
		if c == r {
			n++
		}
	}
	return n
}

// Zombies returns the number of zombies still on the board.
func (g *Game) Zombies() int {
	return g.count(Zombie)
}

// Trapped returns the number of zombies that have fallen into pits.
func (g *Game) Trapped() int {
	return g.score / g.points
}

// Traps returns the number of pits still open.
func (g *Game) Traps() int {
	return g.count(Trap)
}

// Done reports whether no further points can be scored.
func (g *Game) Done() bool {
	return g.Zombies() == 0 || g.Traps() == 0
}

// WithScore returns a copy of g carrying the given score.
func (g *Game) WithScore(score int) *Game {
	c := g.Copy()
	c.score = score
	return c
}
