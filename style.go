package tui

import (
	"fmt"
	"strings"
)

// Attr represents text attributes as a bitfield for efficient comparison and storage.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

var attrNames = []struct {
	name string
	attr Attr
}{
	{"bold", AttrBold},
	{"dim", AttrDim},
	{"italic", AttrItalic},
	{"underline", AttrUnderline},
	{"blink", AttrBlink},
	{"reverse", AttrReverse},
	{"strike", AttrStrikethrough},
}

// ParseAttrs reads a space separated text-style list such as "bold italic".
// "none" yields AttrNone.
func ParseAttrs(s string) (Attr, error) {
	var a Attr
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if word == "none" {
			continue
		}
		found := false
		for _, n := range attrNames {
			if n.name == word {
				a |= n.attr
				found = true
				break
			}
		}
		if !found {
			return AttrNone, fmt.Errorf("unknown text style %q", word)
		}
	}
	return a, nil
}

// String formats the attributes the way ParseAttrs reads them.
func (a Attr) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a&n.attr != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Strikethrough returns a new Style with the strikethrough attribute set.
func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// Patch layers over on top of s: colors set on over replace those of s and
// attributes accumulate.
func (s Style) Patch(over Style) Style {
	if !over.Fg.IsDefault() {
		s.Fg = over.Fg
	}
	if !over.Bg.IsDefault() {
		s.Bg = over.Bg
	}
	s.Attrs |= over.Attrs
	return s
}
