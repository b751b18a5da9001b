package widget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/madnoberson/tui-widgets/anim"
	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/textfmt"
)

// DefaultFrames is the Braille dots frame table. It is exported for
// callers that want the stock look; SpinnerConfig never falls back to it
// implicitly.
var DefaultFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// SpinnerConfig configures a Spinner at construction.
type SpinnerConfig struct {
	// Frames is the animation frame table. Required.
	Frames []string
	// Interval is the minimum time between frame advances. Required.
	Interval time.Duration
	// Label is optional text rendered after the frame glyph.
	Label string
	// Style is applied to the frame glyph.
	Style lipgloss.Style
	// LabelStyle is applied to the label.
	LabelStyle lipgloss.Style
	// Marker replaces truncated text; defaults to an ellipsis.
	Marker string
	// Cycles limits the animation to n full passes; 0 repeats forever.
	Cycles int
}

// Spinner is an animated glyph with an optional label. The host drives
// it: Advance on its tick cadence, Render whenever it redraws. Rendering
// never advances the animation, so redrawing on every input event is
// safe.
type Spinner struct {
	anim       *anim.Animator
	label      string
	style      lipgloss.Style
	labelStyle lipgloss.Style
	marker     string
}

// NewSpinner validates the config and builds a spinner. An empty frame
// table or non-positive interval is a configuration error.
func NewSpinner(cfg SpinnerConfig) (*Spinner, error) {
	a, err := anim.New(cfg.Frames, cfg.Interval)
	if err != nil {
		return nil, fmt.Errorf("new spinner: %w", err)
	}
	a.WithCycles(cfg.Cycles)

	marker := cfg.Marker
	if marker == "" {
		marker = textfmt.DefaultMarker
	}

	return &Spinner{
		anim:       a,
		label:      cfg.Label,
		style:      cfg.Style,
		labelStyle: cfg.LabelStyle,
		marker:     marker,
	}, nil
}

// Advance offers the animator one tick at the given timestamp and
// reports whether the visible frame changed.
func (s *Spinner) Advance(now time.Time) bool {
	return s.anim.Advance(now)
}

// Frame returns the glyph the next render will show.
func (s *Spinner) Frame() string {
	return s.anim.Frame()
}

// Interval returns the configured advance interval.
func (s *Spinner) Interval() time.Duration {
	return s.anim.Interval()
}

// Done reports whether a cycle-limited spinner has finished.
func (s *Spinner) Done() bool {
	return s.anim.Done()
}

// Pause freezes the animation until Unpause.
func (s *Spinner) Pause() { s.anim.Pause() }

// Unpause resumes a paused animation.
func (s *Spinner) Unpause() { s.anim.Unpause() }

// Paused reports whether the animation is paused.
func (s *Spinner) Paused() bool { return s.anim.Paused() }

// Reset returns the spinner to its first frame.
func (s *Spinner) Reset() { s.anim.Reset() }

// Render draws the current frame glyph and, when there is room, a space
// and the label into the first row of area. It is a pure function of the
// current frame and area.
func (s *Spinner) Render(area cell.Rect, buf *cell.Buffer) RenderInfo {
	if area.Empty() {
		return RenderInfo{}
	}

	glyph := textfmt.Format(s.anim.Frame(), area.Width, s.style, s.marker)
	written := writeLine(area, buf, glyph)
	truncated := glyph.Truncated

	rest := area.Width - written
	if s.label != "" && rest > 1 {
		buf.Set(area.X+written, area.Y, cell.Cell{Content: " ", Width: 1, Style: s.labelStyle})
		written++

		label := textfmt.Format(s.label, rest-1, s.labelStyle, s.marker)
		labelArea := cell.Rect{X: area.X + written, Y: area.Y, Width: rest - 1, Height: 1}
		written += writeLine(labelArea, buf, label)
		truncated = truncated || label.Truncated
	} else if s.label != "" {
		truncated = true
	}

	return RenderInfo{CellsWritten: written, Truncated: truncated}
}
