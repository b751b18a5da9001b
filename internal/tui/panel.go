package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with an optional title line.
type Panel struct {
	Title       string
	Content     string
	Width       int
	Height      int
	BorderColor lipgloss.Color
	Focused     bool // When false, content is dimmed
}

// DefaultBorderColor is the default panel border color.
var DefaultBorderColor = lipgloss.Color("#808080")

// RenderPanel renders a bordered panel. Degenerate dimensions are bumped
// to a small minimum rather than failing, since panels are drawn on
// every frame.
func RenderPanel(p Panel) string {
	width := p.Width
	if width < 10 {
		width = 10
	}
	height := p.Height
	if height < 3 {
		height = 3
	}

	// Border takes one column/row on each side.
	contentWidth := width - 2
	contentHeight := height - 2

	var lines []string
	if p.Title != "" {
		lines = append(lines, titleStyle.Render(clipLine(p.Title, contentWidth)))
	}
	for _, line := range strings.Split(p.Content, "\n") {
		if len(lines) >= contentHeight {
			break
		}
		lines = append(lines, clipLine(line, contentWidth))
	}

	content := strings.Join(lines, "\n")
	if !p.Focused {
		content = lipgloss.NewStyle().Faint(true).Render(content)
	}

	borderColor := p.BorderColor
	if borderColor == "" {
		borderColor = DefaultBorderColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(contentWidth).
		Height(contentHeight).
		Render(content)
}

// clipLine bounds a possibly styled line to the given visible width.
func clipLine(line string, maxWidth int) string {
	if lipgloss.Width(line) <= maxWidth {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
}
