package tui

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal draws through a tcell Screen. tcell keeps its own back
// buffer, so write ops become SetContent calls followed by one Show.
type TcellTerminal struct {
	screen tcell.Screen
	ready  bool
}

var (
	_ Terminal       = (*TcellTerminal)(nil)
	_ ResizeNotifier = (*TcellTerminal)(nil)
)

// NewTcellTerminal wraps screen. Setup initializes it.
func NewTcellTerminal(screen tcell.Screen) *TcellTerminal {
	return &TcellTerminal{screen: screen}
}

// NewTcellScreenTerminal opens the default tcell screen.
func NewTcellScreenTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellTerminal(screen), nil
}

// Screen returns the underlying screen.
func (t *TcellTerminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the screen dimensions.
func (t *TcellTerminal) Size() (width, height int) {
	return t.screen.Size()
}

// Flush copies ops into tcell's buffer and shows the result.
func (t *TcellTerminal) Flush(ops []WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	for _, op := range ops {
		for i, cell := range op.Cells {
			if cell.IsContinuation() {
				continue
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			var comb []rune
			if cell.Comb != "" {
				comb = []rune(cell.Comb)
			}
			t.screen.SetContent(op.X+i, op.Y, r, comb, tcellStyle(cell.Style))
		}
	}
	t.screen.Show()
	return nil
}

// Clear blanks tcell's buffer. The terminal updates on the next Flush.
func (t *TcellTerminal) Clear() error {
	t.screen.Clear()
	return nil
}

// HideCursor makes the cursor invisible.
func (t *TcellTerminal) HideCursor() {
	t.screen.HideCursor()
}

// ShowCursor shows the cursor at the top-left corner.
func (t *TcellTerminal) ShowCursor() {
	t.screen.ShowCursor(0, 0)
}

// Setup initializes the screen.
func (t *TcellTerminal) Setup() error {
	if t.ready {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.ready = true
	t.screen.HideCursor()
	return nil
}

// Restore finalizes the screen, returning the terminal to its prior state.
func (t *TcellTerminal) Restore() error {
	if !t.ready {
		return nil
	}
	t.screen.Fini()
	t.ready = false
	return nil
}

// Caps derives capabilities from the number of colors tcell reports.
func (t *TcellTerminal) Caps() Capabilities {
	caps := Capabilities{Unicode: true, AltScreen: true}
	switch n := t.screen.Colors(); {
	case n >= 1<<24:
		caps.Colors, caps.TrueColor = ColorTrue, true
	case n >= 256:
		caps.Colors = Color256
	case n >= 8:
		caps.Colors = Color16
	}
	return caps
}

// NotifyResize polls screen events and calls fn for each resize. Other
// events are discarded. Polling ends when the screen is finalized.
func (t *TcellTerminal) NotifyResize(fn func()) (stop func()) {
	var stopped atomic.Bool
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok && !stopped.Load() {
				fn()
			}
		}
	}()
	return func() { stopped.Store(true) }
}

// tcellStyle converts a Style to tcell's representation.
func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.HasAttr(AttrBold)).
		Dim(s.HasAttr(AttrDim)).
		Italic(s.HasAttr(AttrItalic)).
		Blink(s.HasAttr(AttrBlink)).
		Reverse(s.HasAttr(AttrReverse)).
		StrikeThrough(s.HasAttr(AttrStrikethrough))
	if s.HasAttr(AttrUnderline) {
		st = st.Underline(true)
	}
	return st
}

func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
