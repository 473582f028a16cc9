package statespace

import (
	"fmt"
	"strings"
)

// Move is one of the four shift directions.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists every move in exploration order.
var Moves = [...]Move{Up, Down, Left, Right}

// String returns the single-letter form used in move sequences.
func (m Move) String() string {
	switch m {
	case Up:
		return "u"
	case Down:
		return "d"
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "?"
	}
}

// Name returns the long form of the move ("up", "down", ...).
func (m Move) Name() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseMove accepts a letter (u/d/l/r) or a word (up/down/left/right).
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMove, s)
}

// ParseMoves parses a move sequence. Words must be separated by commas or
// whitespace ("up, left"); a run of letters is read one move per letter ("udlr").
func ParseMoves(s string) ([]Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]Move, 0, len(s))
	for _, f := range fields {
		if m, err := ParseMove(f); err == nil {
			moves = append(moves, m)
			continue
		}
		// Letter run
		for _, r := range f {
			m, err := ParseMove(string(r))
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
		}
	}
	return moves, nil
}

// FormatMoves joins moves into their letter form, e.g. "uurl".
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Apply returns a copy of c shifted by m. c is left untouched.
func Apply[C Configuration[C]](c C, m Move) C {
	next := c.Copy()
	switch m {
	case Up:
		next.ShiftUp()
	case Down:
		next.ShiftDown()
	case Left:
		next.ShiftLeft()
	case Right:
		next.ShiftRight()
	}
	return next
}

// Replay applies moves in order, starting from a copy of c.
func Replay[C Configuration[C]](c C, moves []Move) C {
	cur := c.Copy()
	for _, m := range moves {
		cur = Apply(cur, m)
	}
	return cur
}
