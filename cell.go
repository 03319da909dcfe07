package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell represents a single character cell in the frame.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the grapheme, the second is marked as a continuation.
type Cell struct {
	Rune  rune   // Base character (0 for continuation cells)
	Comb  string // Combining marks that follow Rune within the same grapheme
	Style Style  // Visual styling
	Width uint8  // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewGraphemeCell creates a cell holding a whole grapheme cluster.
func NewGraphemeCell(cluster string, style Style) Cell {
	if cluster == "" {
		return NewCell(' ', style)
	}
	var base rune
	for _, r := range cluster {
		base = r
		break
	}
	return Cell{
		Rune:  base,
		Comb:  cluster[len(string(base)):],
		Style: style,
		Width: uint8(GraphemeWidth(cluster)),
	}
}

// continuationCell occupies the second column of a wide cell.
func continuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
// Continuation cells have Width == 0 and are placed after the primary cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Comb == other.Comb && c.Style.Equal(other.Style) && c.Width == other.Width
}

// String returns the text the cell displays. Continuation cells are empty.
func (c Cell) String() string {
	if c.IsContinuation() {
		return ""
	}
	if c.Rune == 0 {
		return " "
	}
	if c.Comb == "" {
		return string(c.Rune)
	}
	return string(c.Rune) + c.Comb
}

// blankCell is a space in the default style.
var blankCell = Cell{Rune: ' ', Width: 1}

// RuneWidth returns the display width of a rune in terminal cells, 1 or 2.
// Zero-width and control runes still take one cell so they stay addressable.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	}
	return w
}

// GraphemeWidth returns the display width of a single grapheme cluster, 1 or 2.
func GraphemeWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	}
	return w
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	width := 0
	eachGrapheme(s, func(cluster string) {
		width += GraphemeWidth(cluster)
	})
	return width
}

// eachGrapheme calls fn for every user-perceived character of s. Newlines
// and other control characters are dropped.
func eachGrapheme(s string, fn func(cluster string)) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if strings.ContainsAny(cluster, "\n\r\t\x1b") {
			if cluster == "\t" {
				fn(" ")
			}
			continue
		}
		fn(cluster)
	}
}
