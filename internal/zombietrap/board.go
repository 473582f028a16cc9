// Package zombietrap implements the Zombie Trap shift puzzle.
//
// Zombies stand on a walled grid dotted with pits. Each shift moves every
// zombie as far as it can in one direction; a zombie that slides over a pit
// falls in, filling it (the pit becomes floor) and scoring points.
package zombietrap

import (
	"errors"
	"fmt"
	"strings"
)

// Cell runes.
const (
	Floor  = '.'
	Wall   = '#'
	Zombie = 'Z'
	Trap   = 'O'
)

// DefaultTrapPoints is the score for each trapped zombie when a level does
// not say otherwise.
const DefaultTrapPoints = 1

// Board errors.
var (
	ErrEmptyBoard  = errors.New("zombietrap: empty board")
	ErrRaggedBoard = errors.New("zombietrap: ragged board")
	ErrBadCell     = errors.New("zombietrap: invalid cell")
)

// Direction is a shift direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// delta returns the per-step offset for a direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Validate checks that rows form a non-empty rectangle of known cells.
func Validate(rows []string) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyBoard
	}
	width := len([]rune(rows[0]))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedBoard, y, len(runes), width)
		}
		for x, r := range runes {
			switch r {
			case Floor, Wall, Zombie, Trap:
			default:
				return fmt.Errorf("%w: %q at (%d, %d)", ErrBadCell, r, x, y)
			}
		}
	}
	return nil
}

// SplitRows splits a text board into rows, dropping blank lines and
// surrounding whitespace.
func SplitRows(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
