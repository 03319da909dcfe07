package tui

import "strings"

// Frame is a fixed-size grid of cells: one complete picture of the screen.
// Writes outside the grid are silently dropped.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a frame of the given dimensions filled with blank cells.
func NewFrame(width, height int) *Frame {
	width, height = max(0, width), max(0, height)
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

// Width returns the frame width in columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in rows.
func (f *Frame) Height() int {
	return f.height
}

// Size returns the frame dimensions.
func (f *Frame) Size() Size {
	return Size{Width: f.width, Height: f.height}
}

// Rect returns the frame bounds as a Rect starting at (0, 0).
func (f *Frame) Rect() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (f *Frame) idx(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return -1
	}
	return y*f.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (f *Frame) Cell(x, y int) Cell {
	idx := f.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return f.cells[idx]
}

// Row returns the cells of row y. The slice aliases the frame.
func (f *Frame) Row(y int) []Cell {
	if y < 0 || y >= f.height {
		return nil
	}
	return f.cells[y*f.width : (y+1)*f.width]
}

// setCell stores c without any wide-character bookkeeping.
func (f *Frame) setCell(x, y int, c Cell) {
	idx := f.idx(x, y)
	if idx < 0 {
		return
	}
	f.cells[idx] = c
}

// Put writes a cell at (x, y). A wide cell also claims x+1; any wide
// character it partially overwrites is blanked so no orphan halves remain.
// A wide cell that would hang off the right edge becomes a space.
func (f *Frame) Put(x, y int, c Cell) {
	if f.idx(x, y) < 0 {
		return
	}

	current := f.Cell(x, y)
	if current.IsContinuation() {
		f.clearWideCharAt(x, y)
	}
	if current.Width == 2 && x+1 < f.width {
		f.setCell(x+1, y, blankCell)
	}

	if c.Width == 2 {
		if x+1 >= f.width {
			f.setCell(x, y, Cell{Rune: ' ', Style: c.Style, Width: 1})
			return
		}
		next := f.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			f.clearWideCharAt(x+1, y)
		}
		f.setCell(x, y, c)
		f.setCell(x+1, y, continuationCell(c.Style))
		return
	}

	if c.Width == 0 {
		c.Width = 1
	}
	f.setCell(x, y, c)
}

// SetRune sets a rune at position (x, y) with the given style.
func (f *Frame) SetRune(x, y int, r rune, style Style) {
	f.Put(x, y, NewCell(r, style))
}

// clearWideCharAt clears a wide character that includes position (x, y).
func (f *Frame) clearWideCharAt(x, y int) {
	cell := f.Cell(x, y)
	if cell.IsContinuation() {
		if x > 0 {
			f.setCell(x-1, y, blankCell)
		}
		f.setCell(x, y, blankCell)
	} else if cell.Width == 2 {
		f.setCell(x, y, blankCell)
		if x+1 < f.width {
			f.setCell(x+1, y, blankCell)
		}
	}
}

// SetString writes s starting at (x, y) and returns the display width
// consumed. It stops at the frame edge without wrapping.
func (f *Frame) SetString(x, y int, s string, style Style) int {
	return f.Canvas().SetString(x, y, s, style)
}

// Fill fills a rectangle with the given rune and style.
func (f *Frame) Fill(rect Rect, r rune, style Style) {
	f.Canvas().Fill(rect, r, style)
}

// Clear resets every cell to a blank in the default style.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = blankCell
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		cells:  make([]Cell, len(f.cells)),
		width:  f.width,
		height: f.height,
	}
	copy(out.cells, f.cells)
	return out
}

// Equal reports whether both frames have the same size and cells.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.cells {
		if !f.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// Lines returns the text of every row. Continuation cells are skipped.
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		var sb strings.Builder
		for _, cell := range f.Row(y) {
			sb.WriteString(cell.String())
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the frame to a string for debugging.
// Each row is separated by a newline.
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// StringTrimmed returns the frame content with trailing spaces removed from each line.
func (f *Frame) StringTrimmed() string {
	lines := f.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
