package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// LogPanelModel shows the running list of button activations in a
// scrollable viewport.
type LogPanelModel struct {
	viewport viewport.Model
	lines    []string
}

func NewLogPanel() LogPanelModel {
	return LogPanelModel{}
}

func (l *LogPanelModel) SetSize(width, height int) {
	l.viewport = viewport.New(width, height)
	if len(l.lines) > 0 {
		l.viewport.SetContent(strings.Join(l.lines, "\n"))
		l.viewport.GotoBottom()
	}
}

func (l *LogPanelModel) Append(line string) {
	wasAtBottom := l.viewport.AtBottom()
	l.lines = append(l.lines, line)
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	if wasAtBottom {
		l.viewport.GotoBottom()
	}
}

func (l *LogPanelModel) ScrollUp(n int) {
	l.viewport.ScrollUp(n)
}

func (l *LogPanelModel) ScrollDown(n int) {
	l.viewport.ScrollDown(n)
}

func (l LogPanelModel) Lines() []string {
	return l.lines
}

func (l LogPanelModel) View() string {
	if len(l.lines) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No activations yet...")
	}
	return l.viewport.View()
}
