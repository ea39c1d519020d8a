package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	accentYellow = lipgloss.Color("#E5C07B")
	dimGray      = lipgloss.Color("#6B7280")
	lightGray    = lipgloss.Color("#9CA3AF")
	white        = lipgloss.Color("#F9FAFB")
	red          = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(white).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lightGray)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	accentStyle = lipgloss.NewStyle().
			Foreground(accentYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentYellow).
			Bold(true).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(dimGray).
				Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(accentYellow).
				Bold(true)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimGray).
			Padding(1, 2)
)
