package cell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one buffer position: a grapheme cluster, the number of columns
// it occupies, and the style it is rendered with. A wide cluster occupies
// Width columns; the columns after its head hold zero-width continuation
// cells so a row never renders wider than the buffer.
type Cell struct {
	Content string
	Width   int
	Style   lipgloss.Style
}

// blank returns the cell a buffer is filled with.
func blank() Cell {
	return Cell{Content: " ", Width: 1}
}

// Buffer is a width×height grid of cells. Out-of-bounds writes are
// silently dropped so render code never has to bounds-check the host's
// dimensions.
type Buffer struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBuffer creates a buffer filled with blank cells. Negative dimensions
// are treated as zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blank()
		}
		cells[y] = row
	}

	return &Buffer{width: width, height: height, cells: cells}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the rect covering the whole buffer.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Set writes a cell at (x, y). Writes outside the buffer are dropped.
// A cell wider than one column claims the following columns as
// continuations; writing over the head or a continuation of an existing
// wide cell blanks the rest of that cell so no half-overwritten glyph
// survives.
func (b *Buffer) Set(x, y int, c Cell) {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return
	}
	if c.Width < 1 {
		c.Width = 1
	}

	for i := 0; i < c.Width && x+i < b.width; i++ {
		b.clearWide(x+i, y)
	}

	b.cells[y][x] = c
	for i := 1; i < c.Width && x+i < b.width; i++ {
		b.cells[y][x+i] = Cell{}
	}
}

// clearWide blanks the wide cell overlapping (x, y), if any.
func (b *Buffer) clearWide(x, y int) {
	head := x
	for head > 0 && b.cells[y][head].Width == 0 {
		head--
	}
	w := b.cells[y][head].Width
	if w <= 1 && head == x {
		return
	}
	for i := 0; i < w && head+i < b.width; i++ {
		b.cells[y][head+i] = blank()
	}
}

// At returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) At(x, y int) Cell {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return blank()
	}
	return b.cells[y][x]
}

// Fill writes the given cell to every position of the rect that lies
// inside the buffer.
func (b *Buffer) Fill(r Rect, c Cell) {
	r = r.Intersect(b.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			b.Set(x, y, c)
		}
	}
}

// Line returns row y as plain text, ignoring styles. Continuation cells
// of wide glyphs contribute nothing.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteString(b.cells[y][x].Content)
	}
	return sb.String()
}

// String returns the whole buffer as plain text, rows joined by newlines.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer with every cell's lipgloss style applied,
// ready to hand to a terminal program's view.
func (b *Buffer) Render() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y][x]
			if c.Width == 0 {
				continue
			}
			sb.WriteString(c.Style.Render(c.Content))
		}
	}
	return sb.String()
}
