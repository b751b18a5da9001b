package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
)

// LabelPrompter asks the user for a button label before the demo
// starts. WithInput switches to accessible mode for scripted input.
type LabelPrompter struct {
	input      io.Reader
	accessible bool
}

func NewLabelPrompter() *LabelPrompter {
	return &LabelPrompter{}
}

func (p *LabelPrompter) WithInput(r io.Reader) *LabelPrompter {
	p.input = r
	p.accessible = true
	return p
}

// Prompt runs a single-input form and returns the entered label.
// placeholder is offered as the default.
func (p *LabelPrompter) Prompt(promptText, placeholder string) (string, error) {
	value := placeholder

	input := huh.NewInput().
		Title(promptText).
		Value(&value).
		Placeholder(placeholder)

	form := huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(huh.ThemeCatppuccin())

	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.accessible {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return value, nil
}
