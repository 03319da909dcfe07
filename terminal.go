package tui

import (
	"os"
	"strings"
)

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal.
	ColorNone ColorCapability = iota
	// Color16 indicates the 16 standard ANSI colors.
	Color16
	// Color256 indicates the ANSI 256 palette.
	Color256
	// ColorTrue indicates 24-bit RGB.
	ColorTrue
)

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	Colors    ColorCapability
	Unicode   bool
	TrueColor bool
	AltScreen bool
}

// Terminal is where frames end up. Implementations write ANSI sequences,
// drive a tcell screen, or record output for tests.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush applies write ops in order.
	Flush(ops []WriteOp) error

	// Clear blanks the whole screen.
	Clear() error

	HideCursor()
	ShowCursor()

	// Setup prepares the terminal for full-screen drawing; Restore undoes it.
	Setup() error
	Restore() error

	Caps() Capabilities
}

// ResizeNotifier is implemented by terminals that report size changes. fn
// may be called from any goroutine. The returned func stops notification.
type ResizeNotifier interface {
	NotifyResize(fn func()) (stop func())
}

// trueColorEnv lists variables set only by terminals known to render 24-bit
// color.
var trueColorEnv = []string{
	"WT_SESSION",
	"ITERM_SESSION_ID",
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"VTE_VERSION",
}

// DetectCapabilities determines terminal capabilities from the environment,
// falling back to 16 colors.
func DetectCapabilities() Capabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{Colors: Color16, Unicode: true, AltScreen: true}
	trueColor := func() Capabilities {
		caps.Colors, caps.TrueColor = ColorTrue, true
		return caps
	}

	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return trueColor()
	}
	for _, name := range trueColorEnv {
		if getenv(name) != "" {
			return trueColor()
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{}
	case strings.Contains(term, "truecolor"):
		return trueColor()
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}

// EffectiveColor returns the closest color the terminal can show: RGB falls
// back to the 256 palette and anything falls back to default on monochrome
// terminals.
func (c Capabilities) EffectiveColor(color Color) Color {
	switch color.Type() {
	case ColorRGB:
		if c.TrueColor {
			return color
		}
		if c.Colors >= Color16 {
			return color.ToANSI()
		}
		return DefaultColor()
	case ColorANSI:
		if c.Colors < Color16 {
			return DefaultColor()
		}
	}
	return color
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string
	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}
	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	if c.AltScreen {
		parts = append(parts, "altscreen")
	}
	return strings.Join(parts, ", ")
}
