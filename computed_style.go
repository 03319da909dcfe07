package tui

import (
	"time"

	"github.com/grindlemire/tuicss/internal/layout"
)

// Transition animates changes to one property.
type Transition struct {
	Property string
	Duration time.Duration
	Easing   string
	Delay    time.Duration
}

// ComputedStyle is the fully resolved set of properties for one node.
type ComputedStyle struct {
	Color       Color
	Background  Color // default means transparent
	TextStyle   Attr
	Border      BorderKind
	BorderColor Color // default means Color

	Margin  Edges
	Padding Edges

	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value

	Layout LayoutMode
	Dock   Dock
	Layer  string
	Layers []string
	Offset Point

	OverflowX Overflow
	OverflowY Overflow

	ContentAlignH HAlign
	ContentAlignV VAlign
	AlignH        HAlign
	AlignV        VAlign

	GridColumns int
	GridRows    int
	GridGutter  int

	Display     bool // false means display: none
	Visible     bool
	Transitions []Transition
}

// DefaultComputedStyle returns the built-in value of every property.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Width:       Fraction(1),
		Height:      Auto(),
		MinWidth:    Fixed(0),
		MinHeight:   Fixed(0),
		MaxWidth:    Auto(),
		MaxHeight:   Auto(),
		GridColumns: 1,
		Display:     true,
		Visible:     true,
	}
}

// Text returns the style content is drawn with.
func (c ComputedStyle) Text() Style {
	return Style{Fg: c.Color, Bg: c.Background, Attrs: c.TextStyle}
}

// BorderStyle returns the style borders are drawn with.
func (c ComputedStyle) BorderStyle() Style {
	fg := c.BorderColor
	if fg.IsDefault() {
		fg = c.Color
	}
	return Style{Fg: fg, Bg: c.Background}
}

// Transition returns the transition declared for property, if any.
func (c ComputedStyle) Transition(property string) (Transition, bool) {
	for _, t := range c.Transitions {
		if t.Property == property {
			return t, true
		}
	}
	return Transition{}, false
}

// LayoutStyle converts the layout-relevant properties for the layout engine.
func (c ComputedStyle) LayoutStyle() LayoutStyle {
	return layout.Style{
		Width:      c.Width,
		Height:     c.Height,
		MinWidth:   c.MinWidth,
		MinHeight:  c.MinHeight,
		MaxWidth:   c.MaxWidth,
		MaxHeight:  c.MaxHeight,
		Margin:     c.Margin,
		Border:     c.Border.Edges(),
		Padding:    c.Padding,
		Mode:       c.Layout,
		Layers:     c.Layers,
		AlignH:     c.AlignH,
		AlignV:     c.AlignV,
		GridCols:   c.GridColumns,
		GridRows:   c.GridRows,
		GridGutter: c.GridGutter,
		OverflowX:  c.OverflowX,
		OverflowY:  c.OverflowY,
		Dock:       c.Dock,
		Layer:      c.Layer,
		Offset:     c.Offset,
		Hidden:     !c.Display,
	}
}
