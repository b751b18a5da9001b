package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelPrompter_WithInput(t *testing.T) {
	input := strings.NewReader("Launch\n")

	prompter := NewLabelPrompter().WithInput(input)

	label, err := prompter.Prompt("Button label", "Press me")

	require.NoError(t, err)
	assert.Equal(t, "Launch", label)
}

func TestLabelPrompter_EmptyKeepsPlaceholder(t *testing.T) {
	input := strings.NewReader("\n")

	prompter := NewLabelPrompter().WithInput(input)

	label, err := prompter.Prompt("Button label", "Press me")

	require.NoError(t, err)
	assert.Equal(t, "Press me", label)
}
