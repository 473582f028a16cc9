package zombietrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		dir     Direction
		want    []string
		gained  int
		changed bool
	}{
		{
			name:    "slide into pit",
			rows:    []string{"#Z.O#"},
			dir:     DirRight,
			want:    []string{"#...#"},
			gained:  1,
			changed: true,
		},
		{
			name:    "blocked by wall",
			rows:    []string{"#Z.O#"},
			dir:     DirLeft,
			want:    []string{"#Z.O#"},
			gained:  0,
			changed: false,
		},
		{
			name:    "zombies stack at edge",
			rows:    []string{"Z.Z."},
			dir:     DirRight,
			want:    []string{"..ZZ"},
			changed: true,
		},
		{
			name:    "pit fills once",
			rows:    []string{"ZZO."},
			dir:     DirRight,
			want:    []string{"...Z"},
			gained:  1,
			changed: true,
		},
		{
			name:    "fall down a column",
			rows:    []string{"Z", ".", "O"},
			dir:     DirDown,
			want:    []string{".", ".", "."},
			gained:  1,
			changed: true,
		},
		{
			name:    "stack up a column",
			rows:    []string{".", "Z", "Z"},
			dir:     DirUp,
			want:    []string{"Z", "Z", "."},
			changed: true,
		},
		{
			name:    "wall splits a row",
			rows:    []string{"Z.#Z.O"},
			dir:     DirRight,
			want:    []string{".Z#..."},
			gained:  1,
			changed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustParse(tt.rows, 1)
			gained, changed := g.Shift(tt.dir)

			assert.Equal(t, tt.want, g.Rows())
			assert.Equal(t, tt.gained, gained)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.gained, g.Score())
		})
	}
}

func TestTrapPoints(t *testing.T) {
	g := MustParse([]string{"ZO", "ZO"}, 10)
	g.ShiftRight()

	assert.Equal(t, 20, g.Score())
	assert.Equal(t, 2, g.Trapped())
	assert.Equal(t, 0, g.Zombies())
	assert.True(t, g.Done())
}

func TestDefaultPoints(t *testing.T) {
	g := MustParse([]string{"ZO"}, 0)
	assert.Equal(t, DefaultTrapPoints, g.Points())
}

func TestCopyIsIndependent(t *testing.T) {
	g := MustParse([]string{"#Z.O#"}, 1)
	c := g.Copy()
	c.ShiftRight()

	assert.Equal(t, []string{"#Z.O#"}, g.Rows())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, c.Score())
	assert.False(t, g.Equal(c))
}

func TestKeyConsistentWithEqual(t *testing.T) {
	a := MustParse([]string{"Z..", ".O."}, 1)
	b := MustParse([]string{"Z..", ".O."}, 1)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	// Same grid, different score
	c := a.WithScore(3)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())

	// Same cells, different shape
	wide := MustParse([]string{"Z.....O."}, 1)
	tall := MustParse([]string{"Z.", "..", "..", "O."}, 1)
	assert.NotEqual(t, wide.Key(), tall.Key())
}

func TestShiftDeterministic(t *testing.T) {
	base := MustParse([]string{
		"#######",
		"#Z..#O#",
		"#.#...#",
		"#..Z..#",
		"#O..#Z#",
		"#######",
	}, 5)

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		a, b := base.Copy(), base.Copy()
		a.Shift(dir)
		b.Shift(dir)
		assert.Equal(t, a.Key(), b.Key())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		err  error
	}{
		{"ok", []string{"#Z.O#"}, nil},
		{"empty", nil, ErrEmptyBoard},
		{"empty row", []string{""}, ErrEmptyBoard},
		{"ragged", []string{"Z..", "Z."}, ErrRaggedBoard},
		{"bad cell", []string{"Z.X"}, ErrBadCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rows)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "got %v, want %v", err, tt.err)
		})
	}
}

func TestSplitRows(t *testing.T) {
	rows := SplitRows("\n  #Z.O#\n\n#...#  \n")
	assert.Equal(t, []string{"#Z.O#", "#...#"}, rows)
}

func TestAtOutsideIsWall(t *testing.T) {
	g := MustParse([]string{"Z."}, 1)
	assert.Equal(t, rune(Wall), g.At(-1, 0))
	assert.Equal(t, rune(Wall), g.At(0, 1))
	assert.Equal(t, rune(Zombie), g.At(0, 0))
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
}
