package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // cyan/green - titles, focused borders
	ColorHighlight = "205" // magenta - selected items
	ColorDanger    = "196" // red - errors
	ColorMuted     = "241" // gray - dimmed text, hints
	ColorText      = "252" // light gray - normal text
)

// Styles contains shared style definitions used across panels and overlays.
var Styles = struct {
	Title       lipgloss.Style // bold accent - pane captions when focused
	Caption     lipgloss.Style // muted - pane captions when unfocused
	PaneBorder  lipgloss.Style // standard pane frame
	PaneFocused lipgloss.Style // pane frame when focused
	Selected    lipgloss.Style // highlighted list items
	Muted       lipgloss.Style // dimmed text
	Normal      lipgloss.Style // normal text
	Hint        lipgloss.Style // hint bar text
	Error       lipgloss.Style // error lines in the status bar
	Overlay     lipgloss.Style // modal box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Caption: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	PaneBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
}
