package zombietrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/zombietrap/internal/statespace"
	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

var _ statespace.Configuration[*zombietrap.Game] = (*zombietrap.Game)(nil)

func TestSolveFirstBite(t *testing.T) {
	g := zombietrap.MustParse([]string{
		"#####",
		"#Z.O#",
		"#####",
	}, 1)

	s := statespace.New(g)

	assert.Equal(t, 2, s.StateCount())
	assert.Equal(t, 1, s.BestScore())
	assert.Equal(t, "r", statespace.FormatMoves(s.BestMoves()))
	assert.Equal(t, []string{"#####", "#...#", "#####"}, s.BestState().Rows())
}

func TestSolveStuckBoard(t *testing.T) {
	// Every shift is blocked
	g := zombietrap.MustParse([]string{
		"###",
		"#Z#",
		"###",
	}, 1)

	s := statespace.New(g)

	assert.Equal(t, 1, s.StateCount())
	assert.Equal(t, 0, s.BestScore())
	assert.Empty(t, s.BestMoves())
}

func TestSolveProperties(t *testing.T) {
	initial := zombietrap.MustParse([]string{
		"#######",
		"#Z..#O#",
		"#.#...#",
		"#..Z..#",
		"#O..#Z#",
		"#######",
	}, 5)

	s := statespace.New(initial)
	require.Greater(t, s.StateCount(), 1)

	count := 0
	for st := range s.States() {
		count++

		// Path validity
		moves, err := s.MovesToReach(st)
		require.NoError(t, err)
		assert.True(t, statespace.Replay(initial, moves).Equal(st))

		// Closure
		for _, m := range statespace.Moves {
			assert.True(t, s.Reachable(statespace.Apply(st, m)))
		}

		// Score never exceeds the best
		assert.LessOrEqual(t, st.Score(), s.BestScore())
	}
	assert.Equal(t, s.StateCount(), count)

	best := statespace.Replay(initial, s.BestMoves())
	assert.Equal(t, s.BestScore(), best.Score())
	assert.Equal(t, 0, s.BestScore()%5)
}

func TestSolveRebuildMatchesFresh(t *testing.T) {
	a := zombietrap.MustParse([]string{"Z...O", "..Z..", "O...Z"}, 2)
	b := zombietrap.MustParse([]string{"#Z.O#"}, 1)

	fresh := statespace.New(a)
	reused := statespace.New(b)
	reused.Rebuild(a)

	assert.Equal(t, fresh.StateCount(), reused.StateCount())
	assert.Equal(t, fresh.BestScore(), reused.BestScore())
	assert.Equal(t, fresh.MaxDepth(), reused.MaxDepth())
	for st := range fresh.States() {
		assert.True(t, reused.Reachable(st))
	}
	assert.False(t, reused.Reachable(b))
}
