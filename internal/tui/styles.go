package tui

import "github.com/charmbracelet/lipgloss"

// palette
var (
	colorAccent  = lipgloss.Color("208")
	colorDanger  = lipgloss.Color("160")
	colorSuccess = lipgloss.Color("35")
	colorMuted   = lipgloss.Color("245")
)

var (
	pageStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	hintStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	connectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	overlayStyle   = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorDanger).
			Padding(0, 2)
)
