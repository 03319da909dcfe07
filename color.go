package tui

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256, and true color.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB". The leading '#' is optional.
func HexColor(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

var namedColors = map[string]Color{
	"black":          ANSIColor(0),
	"red":            ANSIColor(1),
	"green":          ANSIColor(2),
	"yellow":         ANSIColor(3),
	"blue":           ANSIColor(4),
	"magenta":        ANSIColor(5),
	"cyan":           ANSIColor(6),
	"white":          ANSIColor(7),
	"bright-black":   ANSIColor(8),
	"gray":           ANSIColor(8),
	"bright-red":     ANSIColor(9),
	"bright-green":   ANSIColor(10),
	"bright-yellow":  ANSIColor(11),
	"bright-blue":    ANSIColor(12),
	"bright-magenta": ANSIColor(13),
	"bright-cyan":    ANSIColor(14),
	"bright-white":   ANSIColor(15),
}

// ParseColor reads a color value: "default", a named ANSI color, "ansi(N)",
// "#rgb" or "#rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "default" || s == "":
		return DefaultColor(), nil
	case strings.HasPrefix(s, "#"):
		return HexColor(s)
	case strings.HasPrefix(s, "ansi(") && strings.HasSuffix(s, ")"):
		n, err := strconv.ParseUint(s[len("ansi("):len(s)-1], 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid palette index %q: %w", s, err)
		}
		return ANSIColor(uint8(n)), nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// String formats the color the way ParseColor reads it.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
// Returns the color unchanged if it's already ANSI or default.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// Actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; the default color reports black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// BlendColor mixes from toward to in Lab space. factor 0 yields from and 1
// yields to. The terminal default color has no components, so a blend that
// involves it switches over at the end.
func BlendColor(from, to Color, factor float64) Color {
	switch {
	case factor <= 0:
		return from
	case factor >= 1:
		return to
	case from.IsDefault() || to.IsDefault():
		return from
	}
	mixed := from.colorful().BlendLab(to.colorful(), factor).Clamped()
	r, g, b := mixed.RGB255()
	return RGBColor(r, g, b)
}

// Blend implements Animatable so colors can be transitioned.
func (c Color) Blend(dest Animatable, factor float64) Animatable {
	to, ok := dest.(Color)
	if !ok {
		return c
	}
	return BlendColor(c, to, factor)
}
