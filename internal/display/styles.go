package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the styles used when rendering. They are bound to a
// renderer so that colour can be switched off per output.
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Unknown   lipgloss.Style
	Winner    lipgloss.Style
	Tie       lipgloss.Style
	Category  lipgloss.Style
	Percent   lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds the default palette on r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Label: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Unknown: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		Tie: r.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		Percent: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
