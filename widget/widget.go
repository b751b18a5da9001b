// Package widget provides the public terminal widgets: an animated
// Spinner, a width-constrained Text label, and an interactive Button.
// Each widget owns its state and renders into a caller-supplied area of
// a cell buffer; it never reads the terminal or dispatches events.
package widget

import (
	"github.com/madnoberson/tui-widgets/cell"
	"github.com/madnoberson/tui-widgets/textfmt"
)

// RenderInfo reports what a render call produced.
type RenderInfo struct {
	CellsWritten int
	Truncated    bool
}

// Widget is the render contract shared by all widgets. Render must be
// idempotent for unchanged state and area, must stay inside the area,
// and must not retain the buffer after returning.
type Widget interface {
	Render(area cell.Rect, buf *cell.Buffer) RenderInfo
}

// writeLine writes a formatted line into the first row of area, starting
// at its left edge, and returns the number of columns written. The line
// is expected to already fit the area width; out-of-buffer cells are
// dropped by the buffer itself.
func writeLine(area cell.Rect, buf *cell.Buffer, line textfmt.Line) int {
	if area.Empty() {
		return 0
	}

	x := area.X
	for _, c := range line.Cells {
		if c.Width == 0 {
			continue
		}
		buf.Set(x, area.Y, cell.Cell{Content: c.Content, Width: c.Width, Style: c.Style})
		x += c.Width
	}
	return x - area.X
}
