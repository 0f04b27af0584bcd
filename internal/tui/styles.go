package tui

import "github.com/charmbracelet/lipgloss"

var (
	focusColor = lipgloss.Color("#04B575")
	mutedColor = lipgloss.Color("#626262")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)
