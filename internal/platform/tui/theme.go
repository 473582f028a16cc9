package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

// Theme contains the visual styles for the board and the screens around it.
type Theme struct {
	// Board cells
	Floor  lipgloss.Style
	Wall   lipgloss.Style
	Zombie lipgloss.Style
	Trap   lipgloss.Style
	Hint   lipgloss.Style // Suggested move line

	// HUD
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style
	Status      lipgloss.Style
	Win         lipgloss.Style

	// Level picker
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Floor:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Zombie: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Trap:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true),
		Win:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true).Padding(0, 1),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Zombie = lipgloss.NewStyle().Bold(true)
	theme.Trap = lipgloss.NewStyle().Underline(true)
	theme.Hint = lipgloss.NewStyle().Reverse(true)
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	return theme
}

// ThemeByName resolves a theme name from the command line.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}

func (t Theme) cellStyle(r rune) lipgloss.Style {
	switch r {
	case zombietrap.Wall:
		return t.Wall
	case zombietrap.Zombie:
		return t.Zombie
	case zombietrap.Trap:
		return t.Trap
	}
	return t.Floor
}
