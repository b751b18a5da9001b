package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogPanel_EmptyPlaceholder(t *testing.T) {
	l := NewLogPanel()
	l.SetSize(40, 10)

	assert.Contains(t, l.View(), "No activations yet...")
	assert.Empty(t, l.Lines())
}

func TestLogPanel_AppendShowsLines(t *testing.T) {
	l := NewLogPanel()
	l.SetSize(40, 10)

	l.Append("#1 pressed")
	l.Append("#2 pressed")

	assert.Equal(t, []string{"#1 pressed", "#2 pressed"}, l.Lines())
	view := l.View()
	assert.Contains(t, view, "#1 pressed")
	assert.Contains(t, view, "#2 pressed")
}

func TestLogPanel_FollowsTail(t *testing.T) {
	l := NewLogPanel()
	l.SetSize(40, 3)

	for i := 0; i < 10; i++ {
		l.Append("entry")
	}
	l.Append("latest")

	assert.Contains(t, l.View(), "latest")
}

func TestLogPanel_ScrollStopsFollowing(t *testing.T) {
	l := NewLogPanel()
	l.SetSize(40, 3)

	for i := 0; i < 10; i++ {
		l.Append("old entry")
	}
	l.ScrollUp(5)
	l.Append("latest")

	assert.NotContains(t, l.View(), "latest")

	l.ScrollDown(20)
	assert.Contains(t, l.View(), "latest")
}

func TestLogPanel_SetSizeKeepsLines(t *testing.T) {
	l := NewLogPanel()
	l.SetSize(40, 5)
	l.Append("kept across resizes")

	l.SetSize(60, 8)

	assert.Contains(t, l.View(), "kept across resizes")
}
