package tui

import (
	"fmt"
	"strings"
)

// BorderKind selects the characters used to draw a box border.
type BorderKind int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderKind = iota
	// BorderASCII uses +, - and | for terminals without box drawing glyphs.
	BorderASCII
	// BorderRound uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRound
	// BorderSolid uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSolid
	// BorderHeavy uses thick box-drawing characters (━, ┃, ┏, etc.)
	BorderHeavy
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
)

var borderNames = map[string]BorderKind{
	"none":   BorderNone,
	"ascii":  BorderASCII,
	"round":  BorderRound,
	"solid":  BorderSolid,
	"heavy":  BorderHeavy,
	"double": BorderDouble,
}

// ParseBorderKind reads a border kind name.
func ParseBorderKind(s string) (BorderKind, error) {
	k, ok := borderNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return BorderNone, fmt.Errorf("unknown border kind %q", s)
	}
	return k, nil
}

// String returns the kind's name.
func (b BorderKind) String() string {
	for name, k := range borderNames {
		if k == b {
			return name
		}
	}
	return "none"
}

// Edges returns the space the border takes on each side.
func (b BorderKind) Edges() Edges {
	if b == BorderNone {
		return Edges{}
	}
	return EdgeAll(1)
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border kind.
func (b BorderKind) Chars() BorderChars {
	switch b {
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	case BorderRound:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderSolid:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderHeavy:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a border around rect, given in the canvas's local
// coordinates. A non-empty title is written into the top edge after the
// corner and truncated to fit. Rectangles smaller than 2x2 are skipped.
func DrawBox(c *Canvas, rect Rect, kind BorderKind, style Style, title string) {
	if kind == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := kind.Chars()
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	c.SetRune(left, top, chars.TopLeft, style)
	c.SetRune(right, top, chars.TopRight, style)
	c.SetRune(left, bottom, chars.BottomLeft, style)
	c.SetRune(right, bottom, chars.BottomRight, style)

	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top, style)
		c.SetRune(x, bottom, chars.Bottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left, style)
		c.SetRune(right, y, chars.Right, style)
	}

	if title == "" || rect.Width < 5 {
		return
	}
	label := NewStrip(" "+title+" ", style).Crop(0, rect.Width-2)
	c.Within(NewRect(left+1, top, rect.Width-2, 1)).SetStrip(left+1, top, label)
}
