package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal with ANSI escape sequences. It works with
// any terminal emulator that understands them.
type ANSITerminal struct {
	out       io.Writer
	caps      Capabilities
	lastStyle Style
	styleSet  bool // lastStyle reflects what the terminal has
	esc       *escBuilder
	inFd      int // -1 when input is not a terminal
	outFd     int // -1 when output is not a terminal
	rawState  *term.State
	altScreen bool
}

var (
	_ Terminal       = (*ANSITerminal)(nil)
	_ ResizeNotifier = (*ANSITerminal)(nil)
)

// NewANSITerminal creates a terminal writing to out with capabilities
// detected from the environment. in is only used for raw mode.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	return NewANSITerminalWithCaps(out, in, DetectCapabilities())
}

// NewANSITerminalWithCaps creates a terminal with explicit capabilities.
func NewANSITerminalWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		caps:  caps,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions, or 80x24 when they cannot be read.
func (t *ANSITerminal) Size() (width, height int) {
	if t.outFd >= 0 {
		if w, h, err := getTerminalSize(t.outFd); err == nil && w > 0 && h > 0 {
			return w, h
		}
		if w, h, err := term.GetSize(t.outFd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return 80, 24
}

// Flush writes ops inside a synchronized update. Cursor moves are elided
// when a run continues where the previous one ended, and style sequences
// when the style is unchanged.
func (t *ANSITerminal) Flush(ops []WriteOp) error {
	if len(ops) == 0 {
		return nil
	}

	t.esc.Reset()
	t.esc.BeginSyncUpdate()
	curX, curY := -1, -1

	for _, op := range ops {
		for i, cell := range op.Cells {
			// The wide character before it already advanced the cursor.
			if cell.IsContinuation() {
				continue
			}
			x := op.X + i
			if x != curX || op.Y != curY {
				t.esc.MoveTo(x, op.Y)
			}
			if !t.styleSet || !cell.Style.Equal(t.lastStyle) {
				t.esc.SetStyle(cell.Style, t.caps)
				t.lastStyle = cell.Style
				t.styleSet = true
			}
			t.esc.WriteCell(cell)
			curX, curY = x+max(1, int(cell.Width)), op.Y
		}
	}

	t.esc.EndSyncUpdate()
	_, err := t.out.Write(t.esc.Bytes())
	return err
}

// Clear blanks the screen and homes the cursor.
func (t *ANSITerminal) Clear() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.lastStyle, t.styleSet = Style{}, true
	_, err := t.out.Write(t.esc.Bytes())
	return err
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.esc.Reset()
	t.esc.HideCursor()
	t.out.Write(t.esc.Bytes())
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.esc.Reset()
	t.esc.ShowCursor()
	t.out.Write(t.esc.Bytes())
}

// Setup enters raw mode when input is a terminal and switches to the
// alternate screen when the terminal has one.
func (t *ANSITerminal) Setup() error {
	if t.inFd >= 0 && term.IsTerminal(t.inFd) {
		state, err := term.MakeRaw(t.inFd)
		if err != nil {
			return err
		}
		t.rawState = state
	}
	if t.caps.AltScreen {
		t.esc.Reset()
		t.esc.EnterAltScreen()
		t.out.Write(t.esc.Bytes())
		t.altScreen = true
	}
	t.HideCursor()
	return t.Clear()
}

// Restore leaves the alternate screen, shows the cursor and restores the
// terminal mode saved by Setup.
func (t *ANSITerminal) Restore() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ShowCursor()
	if t.altScreen {
		t.esc.ExitAltScreen()
		t.altScreen = false
	}
	t.out.Write(t.esc.Bytes())
	t.styleSet = false

	if t.rawState == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// NotifyResize calls fn whenever the terminal window changes size.
func (t *ANSITerminal) NotifyResize(fn func()) (stop func()) {
	return notifyResize(fn)
}
