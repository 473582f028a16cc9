package tui

import (
	"strings"

	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

// glyphs maps board cells to what is drawn on screen. Every cell is two
// columns wide so the board keeps a roughly square aspect.
var glyphs = map[rune]string{
	zombietrap.Floor:  "· ",
	zombietrap.Wall:   "██",
	zombietrap.Zombie: "Z ",
	zombietrap.Trap:   "O ",
}

// RenderBoard converts a board to a styled string for display.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
func RenderBoard(g *zombietrap.Game, theme Theme) string {
	var sb strings.Builder
	w, h := g.Width(), g.Height()
	sb.Grow(w*h*4 + h)

	for y := range h {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			start := g.At(x, y)

			var run strings.Builder
			for x < w && g.At(x, y) == start {
				run.WriteString(glyphs[start])
				x++
			}
			sb.WriteString(theme.cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
