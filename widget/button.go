package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/interaction"
	"github.com/madnoberson/tui-widgets/textfmt"
)

// ButtonConfig configures a Button at construction.
type ButtonConfig struct {
	// Label is the button text.
	Label string
	// Styles maps each interaction mode to its look. Modes without an
	// entry fall back to the Idle entry. The map is copied; later edits
	// by the caller do not reach the button.
	Styles map[interaction.Mode]lipgloss.Style
	// Disabled constructs the button in the Disabled mode.
	Disabled bool
	// Marker replaces truncated label text; defaults to an ellipsis.
	Marker string
}

// Button is a pressable label. The host feeds it already-classified
// interaction events and learns about completed presses from
// HandleEvent's return value; rendering never emits a signal.
type Button struct {
	machine *interaction.Machine
	label   string
	styles  map[interaction.Mode]lipgloss.Style
	marker  string
}

// NewButton builds a button from the config.
func NewButton(cfg ButtonConfig) *Button {
	styles := make(map[interaction.Mode]lipgloss.Style, len(cfg.Styles))
	for mode, style := range cfg.Styles {
		styles[mode] = style
	}

	marker := cfg.Marker
	if marker == "" {
		marker = textfmt.DefaultMarker
	}

	return &Button{
		machine: interaction.NewMachine(!cfg.Disabled),
		label:   cfg.Label,
		styles:  styles,
		marker:  marker,
	}
}

// HandleEvent applies one input event and reports whether the button was
// activated (pressed and released over the widget).
func (b *Button) HandleEvent(ev interaction.Event) bool {
	return b.machine.Handle(ev)
}

// Mode returns the current interaction mode.
func (b *Button) Mode() interaction.Mode {
	return b.machine.Mode()
}

// Label returns the configured label.
func (b *Button) Label() string {
	return b.label
}

// Render draws the label under the current mode's style into the first
// row of area, padding the remainder of the row with styled blanks so
// the button reads as one block. Output depends only on the current mode
// and the area.
func (b *Button) Render(area cell.Rect, buf *cell.Buffer) RenderInfo {
	if area.Empty() {
		return RenderInfo{}
	}

	style := b.styleFor(b.machine.Mode())
	line := textfmt.Format(b.label, area.Width, style, b.marker)
	written := writeLine(area, buf, line)

	for x := area.X + written; x < area.Right(); x++ {
		buf.Set(x, area.Y, cell.Cell{Content: " ", Width: 1, Style: style})
		written++
	}

	return RenderInfo{CellsWritten: written, Truncated: line.Truncated}
}

// styleFor resolves the style for a mode, falling back to the Idle entry.
func (b *Button) styleFor(mode interaction.Mode) lipgloss.Style {
	if style, ok := b.styles[mode]; ok {
		return style
	}
	return b.styles[interaction.Idle]
}
