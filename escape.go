package tui

import (
	"strconv"
)

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '1', '0', '4', '9', 'l')
}

// BeginSyncUpdate starts a synchronized update block. Terminals that
// support it display everything up to EndSyncUpdate at once; others ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// sgrAttrs maps attributes to their SGR parameter.
var sgrAttrs = []struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrStrikethrough, '9'},
}

// SetStyle sets the text style based on the given Style and terminal capabilities.
// Every sequence starts with a reset so no attribute leaks from the previous style.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	for _, a := range sgrAttrs {
		if s.HasAttr(a.attr) {
			e.buf = append(e.buf, ';', a.code)
		}
	}

	e.appendColor(caps.EffectiveColor(s.Fg), true, caps)
	e.appendColor(caps.EffectiveColor(s.Bg), false, caps)

	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for a color.
// fg indicates whether this is a foreground (true) or background (false) color.
func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8:
			e.buf = append(e.buf, ';')
			e.writeInt(base - 8 + idx)
		case idx < 16:
			e.buf = append(e.buf, ';')
			e.writeInt(base + 52 + idx - 8)
		case caps.Colors >= Color256:
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}

	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteCell appends the text of a cell. Empty cells print as a space.
func (e *escBuilder) WriteCell(c Cell) {
	if c.Rune == 0 {
		e.buf = append(e.buf, ' ')
		return
	}
	e.buf = append(e.buf, string(c.Rune)...)
	e.buf = append(e.buf, c.Comb...)
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
