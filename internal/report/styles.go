package report

import "github.com/charmbracelet/lipgloss"

var (
	// Informational line prefix
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Warning line prefix
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	// Fatal error prefix
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)
