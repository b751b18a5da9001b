package widget

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/textfmt"
)

// targetKind selects which symbol positions a StyleTarget covers.
type targetKind int

const (
	targetUntouched targetKind = iota
	targetAllExceptEvery
	targetEvery
	targetRange
	targetSingle
)

// StyleTarget overrides the base style for a subset of the text's
// symbol positions. Positions index grapheme clusters of the full
// content, before any truncation.
type StyleTarget struct {
	kind  targetKind
	a, b  int
	n     int
	style lipgloss.Style
}

// TargetSingle styles the symbol at position i.
func TargetSingle(i int, style lipgloss.Style) StyleTarget {
	return StyleTarget{kind: targetSingle, a: i, style: style}
}

// TargetRange styles positions in the half-open interval [start, end).
func TargetRange(start, end int, style lipgloss.Style) StyleTarget {
	return StyleTarget{kind: targetRange, a: start, b: end, style: style}
}

// TargetEvery styles every n-th position, starting at 0.
func TargetEvery(n int, style lipgloss.Style) StyleTarget {
	return StyleTarget{kind: targetEvery, n: n, style: style}
}

// TargetAllExceptEvery styles every position not covered by TargetEvery(n).
func TargetAllExceptEvery(n int, style lipgloss.Style) StyleTarget {
	return StyleTarget{kind: targetAllExceptEvery, n: n, style: style}
}

// TargetUntouched styles positions no other target claimed.
func TargetUntouched(style lipgloss.Style) StyleTarget {
	return StyleTarget{kind: targetUntouched, style: style}
}

// TextConfig configures a Text widget at construction.
type TextConfig struct {
	// Content is the displayed string.
	Content string
	// Style is the base style for every symbol.
	Style lipgloss.Style
	// Marker replaces truncated text; defaults to an ellipsis.
	Marker string
	// Targets optionally restyle individual symbol positions. When
	// several targets claim one position, the more specific kind wins:
	// single, then range, then every, then all-except-every, then
	// untouched.
	Targets []StyleTarget
}

// Text is a one-row label. It holds only configuration; rendering is a
// pure function of that configuration and the area.
type Text struct {
	content string
	style   lipgloss.Style
	marker  string
	targets []StyleTarget
}

// NewText validates the config and builds a text widget.
func NewText(cfg TextConfig) (*Text, error) {
	targets := append([]StyleTarget(nil), cfg.Targets...)
	for _, t := range targets {
		switch t.kind {
		case targetEvery, targetAllExceptEvery:
			if t.n < 1 {
				return nil, fmt.Errorf("new text: target step must be >= 1, got %d", t.n)
			}
		case targetRange:
			if t.b < t.a {
				return nil, errors.New("new text: target range end precedes start")
			}
		}
	}

	// Most specific last, so later applications win.
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].kind < targets[j].kind
	})

	marker := cfg.Marker
	if marker == "" {
		marker = textfmt.DefaultMarker
	}

	return &Text{
		content: cfg.Content,
		style:   cfg.Style,
		marker:  marker,
		targets: targets,
	}, nil
}

// Content returns the configured string.
func (t *Text) Content() string {
	return t.content
}

// Render draws the content into the first row of area, truncating to the
// area width and applying style targets per symbol position.
func (t *Text) Render(area cell.Rect, buf *cell.Buffer) RenderInfo {
	if area.Empty() {
		return RenderInfo{}
	}

	line := textfmt.Format(t.content, area.Width, t.style, t.marker)
	if len(t.targets) > 0 {
		t.applyTargets(&line)
	}

	written := writeLine(area, buf, line)
	return RenderInfo{CellsWritten: written, Truncated: line.Truncated}
}

// applyTargets resolves the style of each visible symbol. Marker cells
// appended by truncation sit past the kept content and keep the base
// style: position styling follows the source text, not the overflow
// glyph.
func (t *Text) applyTargets(line *textfmt.Line) {
	limit := len(line.Cells)
	if line.Truncated {
		// The marker occupies the tail of the cell run.
		markerCells := uniseg.GraphemeClusterCount(t.marker)
		if markerCells > limit {
			markerCells = limit
		}
		limit -= markerCells
	}

	touched := make([]bool, limit)
	for _, target := range t.targets {
		for i := 0; i < limit; i++ {
			if !target.covers(i, touched[i]) {
				continue
			}
			line.Cells[i].Style = target.style
			touched[i] = true
		}
	}
}

// covers reports whether the target claims position i. touched is only
// consulted by the untouched kind.
func (s StyleTarget) covers(i int, touched bool) bool {
	switch s.kind {
	case targetSingle:
		return i == s.a
	case targetRange:
		return i >= s.a && i < s.b
	case targetEvery:
		return i%s.n == 0
	case targetAllExceptEvery:
		return i%s.n != 0
	case targetUntouched:
		return !touched
	}
	return false
}
