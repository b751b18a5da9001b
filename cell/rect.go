// Package cell provides the character-cell render target that widgets
// draw into: a rectangular area and a styled cell grid.
package cell

// Rect is a rectangular region of a buffer. Widgets receive a Rect per
// render call and must not write outside it.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rect with negative dimensions clamped to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first x coordinate past the rect.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the rect.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rects. The result is empty when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())

	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
