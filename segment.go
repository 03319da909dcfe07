package tui

import "strings"

// Segment is a run of text in a single style.
type Segment struct {
	Text  string
	Style Style
}

// Strip is one line of output made of segments.
type Strip []Segment

// NewStrip returns a single-segment strip.
func NewStrip(text string, style Style) Strip {
	if text == "" {
		return Strip{}
	}
	return Strip{{Text: text, Style: style}}
}

// BlankStrip returns width spaces in style.
func BlankStrip(width int, style Style) Strip {
	if width <= 0 {
		return Strip{}
	}
	return Strip{{Text: strings.Repeat(" ", width), Style: style}}
}

// Width returns the display width of the strip in cells.
func (s Strip) Width() int {
	w := 0
	for _, seg := range s {
		w += StringWidth(seg.Text)
	}
	return w
}

// Text returns the strip's characters without styling.
func (s Strip) Text() string {
	var sb strings.Builder
	for _, seg := range s {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Crop keeps the cells in columns [start, end). A wide character cut by
// either edge is replaced by spaces in its style.
func (s Strip) Crop(start, end int) Strip {
	start = max(0, start)
	if end <= start {
		return Strip{}
	}

	out := make(Strip, 0, len(s))
	pos := 0
	for _, seg := range s {
		if pos >= end {
			break
		}
		var sb strings.Builder
		eachGrapheme(seg.Text, func(cluster string) {
			w := GraphemeWidth(cluster)
			left, right := pos, pos+w
			pos = right
			switch {
			case right <= start || left >= end:
			case left >= start && right <= end:
				sb.WriteString(cluster)
			default:
				sb.WriteString(strings.Repeat(" ", min(right, end)-max(left, start)))
			}
		})
		if sb.Len() > 0 {
			out = append(out, Segment{Text: sb.String(), Style: seg.Style})
		}
	}
	return out
}

// Pad extends the strip to width cells with fill on the right. Strips that
// are already wide enough are returned unchanged.
func (s Strip) Pad(width int, fill Style) Strip {
	if w := s.Width(); w < width {
		return append(s[:len(s):len(s)], BlankStrip(width-w, fill)...)
	}
	return s
}

// WithBase layers every segment's style over base.
func (s Strip) WithBase(base Style) Strip {
	out := make(Strip, len(s))
	for i, seg := range s {
		out[i] = Segment{Text: seg.Text, Style: base.Patch(seg.Style)}
	}
	return out
}

// Cells expands the strip into frame cells.
func (s Strip) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for _, seg := range s {
		eachGrapheme(seg.Text, func(cluster string) {
			c := NewGraphemeCell(cluster, seg.Style)
			cells = append(cells, c)
			if c.Width == 2 {
				cells = append(cells, continuationCell(seg.Style))
			}
		})
	}
	return cells
}

// Renderable produces lines of styled text for a given width.
type Renderable interface {
	RenderLines(width int) []Strip
}

// Measurement is the range of widths a renderable can occupy.
type Measurement struct {
	Min, Max int
}

// Measurable is implemented by renderables that know their width range.
type Measurable interface {
	Measure(maxWidth int) Measurement
}

// Lines is a Renderable of fixed, pre-rendered strips.
type Lines []Strip

// RenderLines returns the strips unchanged.
func (l Lines) RenderLines(int) []Strip { return l }

// Measure reports the widest strip.
func (l Lines) Measure(int) Measurement {
	w := 0
	for _, s := range l {
		w = max(w, s.Width())
	}
	return Measurement{Min: w, Max: w}
}

// Text is a Renderable of plain text in one style. Lines break at '\n'; with
// Wrap set, long lines also break at the render width.
type Text struct {
	Content string
	Style   Style
	Wrap    bool
}

// NewText returns unwrapped text in style.
func NewText(content string, style Style) *Text {
	return &Text{Content: content, Style: style}
}

// RenderLines splits the content into strips.
func (t *Text) RenderLines(width int) []Strip {
	raw := strings.Split(t.Content, "\n")
	out := make([]Strip, 0, len(raw))
	for _, line := range raw {
		if !t.Wrap || width <= 0 {
			out = append(out, NewStrip(line, t.Style))
			continue
		}
		for _, part := range wrapLine(line, width) {
			out = append(out, NewStrip(part, t.Style))
		}
	}
	return out
}

// Measure reports the longest word as the minimum and the longest line as
// the maximum.
func (t *Text) Measure(int) Measurement {
	var m Measurement
	for _, line := range strings.Split(t.Content, "\n") {
		m.Max = max(m.Max, StringWidth(line))
		for _, word := range strings.Fields(line) {
			m.Min = max(m.Min, StringWidth(word))
		}
	}
	if !t.Wrap {
		m.Min = m.Max
	}
	return m
}

// wrapLine breaks line at spaces so each part fits width cells. Words longer
// than width are split at the cell boundary.
func wrapLine(line string, width int) []string {
	if StringWidth(line) <= width {
		return []string{line}
	}

	var parts []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		parts = append(parts, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(line) {
		ww := StringWidth(word)
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		if ww <= width {
			cur.WriteString(word)
			curW += ww
			continue
		}
		eachGrapheme(word, func(cluster string) {
			cw := GraphemeWidth(cluster)
			if curW+cw > width {
				flush()
			}
			cur.WriteString(cluster)
			curW += cw
		})
	}
	if cur.Len() > 0 || len(parts) == 0 {
		flush()
	}
	return parts
}
