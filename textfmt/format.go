// Package textfmt maps strings onto width-bounded runs of styled cells.
// It is the single place the library measures display width, so the
// widgets never duplicate truncation or wide-character accounting.
package textfmt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultMarker is the overflow marker used when a widget config leaves
// it unset.
const DefaultMarker = "…"

// Cell is one display cell produced by Format: a grapheme cluster, its
// display width in columns, and the style it carries.
type Cell struct {
	Content string
	Width   int
	Style   lipgloss.Style
}

// Line is the ephemeral result of one Format call.
type Line struct {
	Cells     []Cell
	Truncated bool
}

// Width returns the total display width of the line.
func (l Line) Width() int {
	w := 0
	for _, c := range l.Cells {
		w += c.Width
	}
	return w
}

// String returns the line's text without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l.Cells {
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// Format lays text out left to right within maxWidth columns. When the
// text does not fit, width for the marker is reserved first, then as many
// leading clusters as fit are kept and the marker appended. The result
// never exceeds maxWidth: a width smaller than the marker yields as much
// of the marker as fits, and zero or negative width yields an empty line.
// Format is pure; it never fails.
func Format(text string, maxWidth int, style lipgloss.Style, marker string) Line {
	if maxWidth <= 0 {
		return Line{Truncated: text != ""}
	}

	clusters := split(text, style)
	total := 0
	for _, c := range clusters {
		total += c.Width
	}
	if total <= maxWidth {
		return Line{Cells: clusters}
	}

	markerCells := split(marker, style)
	markerWidth := 0
	for _, c := range markerCells {
		markerWidth += c.Width
	}

	if maxWidth < markerWidth {
		// Degenerate area: keep whatever prefix of the marker fits.
		return Line{Cells: take(markerCells, maxWidth), Truncated: true}
	}

	cells := take(clusters, maxWidth-markerWidth)
	cells = append(cells, markerCells...)
	return Line{Cells: cells, Truncated: true}
}

// split breaks text into grapheme clusters with display widths.
func split(text string, style lipgloss.Style) []Cell {
	if text == "" {
		return nil
	}

	var cells []Cell
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		cells = append(cells, Cell{
			Content: cluster,
			Width:   runewidth.StringWidth(cluster),
			Style:   style,
		})
	}
	return cells
}

// take returns the longest prefix of cells whose total width fits in
// budget. A multi-column cluster is never split.
func take(cells []Cell, budget int) []Cell {
	var out []Cell
	used := 0
	for _, c := range cells {
		if used+c.Width > budget {
			break
		}
		out = append(out, c)
		used += c.Width
	}
	return out
}
