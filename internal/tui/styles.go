package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan = lipgloss.Color("#00FFFF")
	gray = lipgloss.Color("#808080")

	FocusedBorderColor   = lipgloss.Color("14")
	UnfocusedBorderColor = lipgloss.Color("8")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	helpStyle = lipgloss.NewStyle().
			Foreground(gray).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(gray).
			Faint(true)

	activationStyle = lipgloss.NewStyle().
			Foreground(cyan)
)
