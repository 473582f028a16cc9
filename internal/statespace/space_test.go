package statespace_test

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombietrap/internal/statespace"
)

// node is a puzzle defined by an explicit transition table.
// A move missing from the table leaves the node unchanged.
type node struct {
	id    string
	table *table
}

type table struct {
	scores map[string]int
	next   map[string]map[statespace.Move]string
}

func (n *node) Copy() *node { c := *n; return &c }
func (n *node) Score() int  { return n.table.scores[n.id] }
func (n *node) Key() string { return n.id }

func (n *node) shift(m statespace.Move) {
	if to, ok := n.table.next[n.id][m]; ok {
		n.id = to
	}
}

func (n *node) ShiftUp()    { n.shift(statespace.Up) }
func (n *node) ShiftDown()  { n.shift(statespace.Down) }
func (n *node) ShiftLeft()  { n.shift(statespace.Left) }
func (n *node) ShiftRight() { n.shift(statespace.Right) }

func (t *table) at(id string) *node { return &node{id: id, table: t} }

// diamond: a -u-> b -u-> d, a -l-> c -l-> d, b -r-> e, plus a loop back to a.
func diamond() *table {
	return &table{
		scores: map[string]int{"a": 0, "b": 1, "c": 3, "d": 3, "e": 2},
		next: map[string]map[statespace.Move]string{
			"a": {statespace.Up: "b", statespace.Left: "c"},
			"b": {statespace.Up: "d", statespace.Right: "e", statespace.Down: "a"},
			"c": {statespace.Left: "d"},
			"e": {statespace.Down: "a"},
		},
	}
}

func TestSingleScoringMove(t *testing.T) {
	tbl := &table{
		scores: map[string]int{"start": 0, "scored": 5, "wander": 0},
		next: map[string]map[statespace.Move]string{
			"start":  {statespace.Up: "scored", statespace.Right: "wander"},
			"wander": {statespace.Left: "start"},
		},
	}

	s := statespace.New(tbl.at("start"))

	assert.Equal(t, 5, s.BestScore())
	assert.Equal(t, []statespace.Move{statespace.Up}, s.BestMoves())
	assert.Equal(t, "u", statespace.FormatMoves(s.BestMoves()))
	assert.GreaterOrEqual(t, s.StateCount(), 2)
	assert.Equal(t, "scored", s.BestState().Key())
}

func TestAllMovesNoop(t *testing.T) {
	tbl := &table{scores: map[string]int{"only": 0}}

	s := statespace.New(tbl.at("only"))

	assert.Equal(t, 1, s.StateCount())
	assert.Equal(t, 0, s.BestScore())
	assert.Empty(t, s.BestMoves())
	assert.NotNil(t, s.BestMoves())
	assert.Equal(t, 0, s.MaxDepth())
}

func TestInitialState(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	assert.True(t, s.Reachable(tbl.at("a")))

	moves, err := s.MovesToReach(tbl.at("a"))
	require.NoError(t, err)
	assert.NotNil(t, moves)
	assert.Empty(t, moves)

	depth, ok := s.Depth(tbl.at("a"))
	assert.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestUnreachableState(t *testing.T) {
	tbl := diamond()
	tbl.scores["island"] = 100
	s := statespace.New(tbl.at("a"))

	assert.False(t, s.Reachable(tbl.at("island")))

	moves, err := s.MovesToReach(tbl.at("island"))
	assert.True(t, errors.Is(err, statespace.ErrUnreachable))
	assert.Nil(t, moves)

	_, ok := s.Depth(tbl.at("island"))
	assert.False(t, ok)
}

func TestShortestPaths(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	require.Equal(t, 5, s.StateCount())
	assert.Equal(t, 2, s.MaxDepth())

	tests := []struct {
		target string
		want   string
	}{
		{"a", ""},
		{"b", "u"},
		{"c", "l"},
		{"d", "uu"}, // Up is explored before Left
		{"e", "ur"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			moves, err := s.MovesToReach(tbl.at(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, statespace.FormatMoves(moves))

			depth, ok := s.Depth(tbl.at(tt.target))
			require.True(t, ok)
			assert.Equal(t, len(moves), depth)
		})
	}
}

func TestBestScoreTieBreak(t *testing.T) {
	// c (depth 1) and d (depth 2) both score 3; the shallower one wins
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	assert.Equal(t, 3, s.BestScore())
	assert.Equal(t, "c", s.BestState().Key())
	assert.Equal(t, "l", statespace.FormatMoves(s.BestMoves()))
}

func TestBestScoreTieSameDepth(t *testing.T) {
	// Both successors score 4 at depth 1; Up is explored first
	tbl := &table{
		scores: map[string]int{"s": 0, "up": 4, "down": 4},
		next: map[string]map[statespace.Move]string{
			"s": {statespace.Down: "down", statespace.Up: "up"},
		},
	}
	s := statespace.New(tbl.at("s"))

	assert.Equal(t, "up", s.BestState().Key())
	assert.Equal(t, []statespace.Move{statespace.Up}, s.BestMoves())
}

func TestInitialIsBest(t *testing.T) {
	tbl := &table{
		scores: map[string]int{"s": 9, "t": 9, "u": 1},
		next: map[string]map[statespace.Move]string{
			"s": {statespace.Up: "t", statespace.Down: "u"},
		},
	}
	s := statespace.New(tbl.at("s"))

	assert.Equal(t, 9, s.BestScore())
	assert.Equal(t, "s", s.BestState().Key())
	assert.Empty(t, s.BestMoves())
}

func TestNegativeScoresKeepSentinel(t *testing.T) {
	tbl := &table{
		scores: map[string]int{"s": -3, "t": -1},
		next: map[string]map[statespace.Move]string{
			"s": {statespace.Up: "t"},
		},
	}
	s := statespace.New(tbl.at("s"))

	assert.Equal(t, 0, s.BestScore())
	assert.Equal(t, "s", s.BestState().Key())
	assert.Empty(t, s.BestMoves())
}

func TestRebuild(t *testing.T) {
	tbl := diamond()
	fresh := statespace.New(tbl.at("a"))

	other := &table{scores: map[string]int{"x": 7}}
	s := statespace.New(other.at("x"))
	require.Equal(t, 1, s.StateCount())
	require.Equal(t, 7, s.BestScore())

	s.Rebuild(tbl.at("a"))

	assert.Equal(t, fresh.StateCount(), s.StateCount())
	assert.Equal(t, fresh.BestScore(), s.BestScore())
	assert.Equal(t, fresh.BestMoves(), s.BestMoves())
	assert.Equal(t, fresh.MaxDepth(), s.MaxDepth())
	assert.False(t, s.Reachable(other.at("x")), "previous build leaked into rebuild")

	for st := range fresh.States() {
		assert.True(t, s.Reachable(st), "state %s missing after rebuild", st.Key())
	}
}

func TestRebuildFromDescendant(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	s.Rebuild(tbl.at("c"))

	assert.Equal(t, 2, s.StateCount()) // c, d
	assert.False(t, s.Reachable(tbl.at("a")))
	assert.Equal(t, "c", s.Initial().Key())
}

func TestStatesSequence(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	collect := func() []string {
		var keys []string
		for st := range s.States() {
			keys = append(keys, st.Key())
		}
		slices.Sort(keys)
		return keys
	}

	first := collect()
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, first)
	assert.Len(t, first, s.StateCount())

	// Restartable
	assert.Equal(t, first, collect())

	// Early stop
	n := 0
	for range s.States() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestYieldedStatesAreCopies(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	for st := range s.States() {
		st.id = "mutated"
	}
	best := s.BestState()
	best.id = "mutated"

	assert.Equal(t, "c", s.BestState().Key())
	moves, err := s.MovesToReach(tbl.at("e"))
	require.NoError(t, err)
	assert.Equal(t, "ur", statespace.FormatMoves(moves))
}

func TestInitialMutationIsolated(t *testing.T) {
	tbl := diamond()
	start := tbl.at("a")
	s := statespace.New(start)

	start.id = "b"
	assert.Equal(t, "a", s.Initial().Key())
}

func TestReachabilityClosure(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	for st := range s.States() {
		for _, m := range statespace.Moves {
			next := statespace.Apply(st, m)
			assert.True(t, s.Reachable(next), "%s -%s-> %s not reachable", st.Key(), m, next.Key())
		}
	}
}

func TestPathValidity(t *testing.T) {
	tbl := diamond()
	initial := tbl.at("a")
	s := statespace.New(initial)

	for st := range s.States() {
		moves, err := s.MovesToReach(st)
		require.NoError(t, err)
		assert.Equal(t, st.Key(), statespace.Replay(initial, moves).Key())
	}
}

func TestOnDiscoverHook(t *testing.T) {
	tbl := diamond()
	depths := map[int]int{}
	last := 0

	s := statespace.New(tbl.at("a"), statespace.WithOnDiscover(func(depth, count int) {
		depths[depth]++
		last = count
	}))

	// Initial state is not reported
	assert.Equal(t, s.StateCount()-1, sumValues(depths))
	assert.Equal(t, s.StateCount(), last)
	assert.Equal(t, map[int]int{1: 2, 2: 2}, depths)
}

func TestSummary(t *testing.T) {
	tbl := diamond()
	s := statespace.New(tbl.at("a"))

	sum := s.Summary()
	assert.Equal(t, 5, sum.States)
	assert.Equal(t, 3, sum.BestScore)
	assert.Equal(t, s.BestMoves(), sum.BestMoves)
	assert.Equal(t, 2, sum.MaxDepth)
	assert.GreaterOrEqual(t, sum.Elapsed.Nanoseconds(), int64(0))
}

func sumValues(m map[int]int) int {
	total := 0
	for v := range maps.Values(m) {
		total += v
	}
	return total
}
