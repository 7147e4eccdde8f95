package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles shared by the terminal views
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style
	Rating   lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35")). // Green
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Rating: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")), // Yellow
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")). // Green
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("35")).
			Foreground(lipgloss.Color("230")).
			Bold(true).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35")).
			PaddingRight(2),
		TableCell: lipgloss.NewStyle().
			PaddingRight(2),
	}
}
