package face

import "github.com/charmbracelet/lipgloss"

// The face uses a two-color palette. Day is black on white; night is the
// same pair inverted. A panel picks its pair from its own zone's clock, so
// neighbouring panels can disagree about which half of the day it is.
var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))

	nightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#000000"))
)
