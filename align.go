package tui

// Align places the lines of an inner renderable inside a fixed-size box,
// filling the leftover space with a style. Its output is always exactly
// Size.Height lines of exactly Size.Width cells.
type Align struct {
	Renderable Renderable
	Size       Size
	Style      Style
	Horizontal HAlign
	Vertical   VAlign
}

// NewAlign returns an Align renderable.
func NewAlign(r Renderable, size Size, fill Style, h HAlign, v VAlign) *Align {
	return &Align{
		Renderable: r,
		Size:       size,
		Style:      fill,
		Horizontal: h,
		Vertical:   v,
	}
}

// RenderLines renders the inner renderable at the box width and aligns it.
// The width argument is ignored; the box size is fixed.
func (a *Align) RenderLines(int) []Strip {
	var lines []Strip
	if a.Renderable != nil {
		lines = a.Renderable.RenderLines(a.Size.Width)
	}
	return AlignLines(lines, a.Size, a.Style, a.Horizontal, a.Vertical)
}

// Measure reports the box width as both minimum and maximum. An aligned
// block never flexes with its container.
func (a *Align) Measure(int) Measurement {
	return Measurement{Min: a.Size.Width, Max: a.Size.Width}
}

// AlignLines positions lines within size. Center splits leftover columns with
// the odd one on the right; middle splits leftover rows with the odd one at
// the bottom. Content larger than size is cropped from the right and bottom.
func AlignLines(lines []Strip, size Size, fill Style, h HAlign, v VAlign) []Strip {
	width, height := max(0, size.Width), max(0, size.Height)
	out := make([]Strip, 0, height)
	if height == 0 {
		return out
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	top := 0
	switch excess := height - len(lines); v {
	case AlignMiddle:
		top = excess / 2
	case AlignBottom:
		top = excess
	}

	for range top {
		out = append(out, BlankStrip(width, fill))
	}
	for _, line := range lines {
		out = append(out, alignLine(line, width, fill, h))
	}
	for len(out) < height {
		out = append(out, BlankStrip(width, fill))
	}
	return out
}

func alignLine(line Strip, width int, fill Style, h HAlign) Strip {
	line = line.Crop(0, width)
	excess := width - line.Width()

	left := 0
	switch h {
	case AlignCenter:
		left = excess / 2
	case AlignRight:
		left = excess
	}

	out := make(Strip, 0, len(line)+2)
	out = append(out, BlankStrip(left, fill)...)
	out = append(out, line...)
	out = append(out, BlankStrip(excess-left, fill)...)
	return out
}
