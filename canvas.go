package tui

// Canvas is a window onto a Frame. Coordinates are relative to the canvas
// origin and every write outside the clip rectangle is dropped, so a node
// painting through its canvas cannot touch cells outside its region.
type Canvas struct {
	frame  *Frame
	origin Point // frame position of local (0, 0)
	clip   Rect  // frame coordinates
}

// Canvas returns a canvas covering the whole frame.
func (f *Frame) Canvas() *Canvas {
	return &Canvas{frame: f, clip: f.Rect()}
}

// Sub returns a canvas for r, given in local coordinates. The new origin is
// r's top-left corner and the clip shrinks to r.
func (c *Canvas) Sub(r Rect) *Canvas {
	abs := r.TranslatePoint(c.origin)
	return &Canvas{
		frame:  c.frame,
		origin: abs.Origin(),
		clip:   c.clip.Intersect(abs),
	}
}

// Within returns a canvas with the same origin and the clip narrowed to r,
// given in local coordinates.
func (c *Canvas) Within(r Rect) *Canvas {
	return &Canvas{
		frame:  c.frame,
		origin: c.origin,
		clip:   c.clip.Intersect(r.TranslatePoint(c.origin)),
	}
}

// Bounds returns the writable area in local coordinates.
func (c *Canvas) Bounds() Rect {
	return c.clip.Translate(-c.origin.X, -c.origin.Y)
}

// Empty reports whether nothing can be written through this canvas.
func (c *Canvas) Empty() bool {
	return c.clip.IsEmpty()
}

// SetCell writes a cell at local (x, y). A wide cell whose second column is
// clipped is replaced by a space so the frame never holds half a character.
func (c *Canvas) SetCell(x, y int, cell Cell) {
	ax, ay := x+c.origin.X, y+c.origin.Y
	if !c.clip.Contains(ax, ay) {
		return
	}
	if cell.Width == 2 && !c.clip.Contains(ax+1, ay) {
		cell = Cell{Rune: ' ', Style: cell.Style, Width: 1}
	}
	c.frame.Put(ax, ay, cell)
}

// SetRune writes a rune at local (x, y).
func (c *Canvas) SetRune(x, y int, r rune, style Style) {
	c.SetCell(x, y, NewCell(r, style))
}

// SetString writes s starting at local (x, y) and returns the display width
// it advanced. Characters before or past the clip still advance the cursor.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	curX := x
	eachGrapheme(s, func(cluster string) {
		cell := NewGraphemeCell(cluster, style)
		c.SetCell(curX, y, cell)
		curX += int(cell.Width)
	})
	return curX - x
}

// SetStrip writes a strip starting at local (x, y) and returns its width.
func (c *Canvas) SetStrip(x, y int, s Strip) int {
	curX := x
	for _, seg := range s {
		curX += c.SetString(curX, y, seg.Text, seg.Style)
	}
	return curX - x
}

// Fill fills local rect r with the given rune and style.
func (c *Canvas) Fill(r Rect, ch rune, style Style) {
	area := c.clip.Intersect(r.TranslatePoint(c.origin))
	if area.IsEmpty() {
		return
	}
	cell := NewCell(ch, style)
	w := int(cell.Width)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x += w {
			c.SetCell(x-c.origin.X, y-c.origin.Y, cell)
		}
	}
}

// Cell returns the frame cell under local (x, y).
func (c *Canvas) Cell(x, y int) Cell {
	return c.frame.Cell(x+c.origin.X, y+c.origin.Y)
}
