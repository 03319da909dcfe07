package tui

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		env      map[string]string
		expected Capabilities
	}

	base := Capabilities{Colors: Color16, Unicode: true, AltScreen: true}
	with := func(f func(*Capabilities)) Capabilities {
		c := base
		f(&c)
		return c
	}
	trueColor := with(func(c *Capabilities) { c.Colors, c.TrueColor = ColorTrue, true })

	tests := map[string]tc{
		"empty environment": {
			env:      map[string]string{},
			expected: base,
		},
		"xterm 256color": {
			env:      map[string]string{"TERM": "xterm-256color"},
			expected: with(func(c *Capabilities) { c.Colors = Color256 }),
		},
		"COLORTERM truecolor": {
			env:      map[string]string{"TERM": "xterm", "COLORTERM": "truecolor"},
			expected: trueColor,
		},
		"COLORTERM 24bit uppercase": {
			env:      map[string]string{"COLORTERM": "24BIT"},
			expected: trueColor,
		},
		"kitty window": {
			env:      map[string]string{"TERM": "xterm-kitty", "KITTY_WINDOW_ID": "1"},
			expected: trueColor,
		},
		"TERM names truecolor": {
			env:      map[string]string{"TERM": "xterm-truecolor"},
			expected: trueColor,
		},
		"dumb terminal": {
			env:      map[string]string{"TERM": "dumb"},
			expected: Capabilities{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := detectCapabilities(func(k string) string { return tt.env[k] })
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("detectCapabilities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCapabilities_EffectiveColor(t *testing.T) {
	type tc struct {
		caps     Capabilities
		color    Color
		expected Color
	}

	tests := map[string]tc{
		"rgb kept on true color": {
			caps:     Capabilities{Colors: ColorTrue, TrueColor: true},
			color:    RGBColor(1, 2, 3),
			expected: RGBColor(1, 2, 3),
		},
		"rgb to palette": {
			caps:     Capabilities{Colors: Color256},
			color:    RGBColor(255, 0, 0),
			expected: ANSIColor(196),
		},
		"ansi dropped on monochrome": {
			caps:     Capabilities{},
			color:    Red,
			expected: DefaultColor(),
		},
		"default stays default": {
			caps:     Capabilities{Colors: Color16},
			color:    DefaultColor(),
			expected: DefaultColor(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.caps.EffectiveColor(tt.color)
			if !got.Equal(tt.expected) {
				t.Errorf("EffectiveColor(%v) = %v, want %v", tt.color, got, tt.expected)
			}
		})
	}
}

func TestANSITerminal_Flush(t *testing.T) {
	type tc struct {
		ops      []WriteOp
		expected string
	}

	plain := NewStyle()
	bold := NewStyle().Bold()
	row := func(x, y int, s string, style Style) WriteOp {
		return WriteOp{X: x, Y: y, Cells: NewStrip(s, style).Cells()}
	}

	tests := map[string]tc{
		"no ops writes nothing": {
			ops:      nil,
			expected: "",
		},
		"single run": {
			ops:      []WriteOp{row(2, 1, "ab", plain)},
			expected: "\x1b[?2026h\x1b[2;3H\x1b[0mab\x1b[?2026l",
		},
		"contiguous runs skip the cursor move": {
			ops:      []WriteOp{row(0, 0, "ab", plain), row(2, 0, "c", plain)},
			expected: "\x1b[?2026h\x1b[1;1H\x1b[0mabc\x1b[?2026l",
		},
		"gap moves the cursor": {
			ops:      []WriteOp{row(0, 0, "a", plain), row(5, 0, "b", plain)},
			expected: "\x1b[?2026h\x1b[1;1H\x1b[0ma\x1b[1;6Hb\x1b[?2026l",
		},
		"style change emits sgr": {
			ops: []WriteOp{{X: 0, Y: 0, Cells: []Cell{
				NewCell('a', plain), NewCell('b', bold), NewCell('c', bold),
			}}},
			expected: "\x1b[?2026h\x1b[1;1H\x1b[0ma\x1b[0;1mbc\x1b[?2026l",
		},
		"wide character advances two columns": {
			ops:      []WriteOp{row(0, 0, "世x", plain)},
			expected: "\x1b[?2026h\x1b[1;1H\x1b[0m世x\x1b[?2026l",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			term := NewANSITerminalWithCaps(&buf, nil, Capabilities{Colors: Color16})
			if err := term.Flush(tt.ops); err != nil {
				t.Fatalf("Flush: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Flush wrote %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestANSITerminal_StyleCarriesAcrossFlushes(t *testing.T) {
	var buf bytes.Buffer
	term := NewANSITerminalWithCaps(&buf, nil, Capabilities{Colors: Color16})
	red := NewStyle().Foreground(Red)

	if err := term.Flush([]WriteOp{{X: 0, Y: 0, Cells: []Cell{NewCell('a', red)}}}); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := term.Flush([]WriteOp{{X: 3, Y: 2, Cells: []Cell{NewCell('b', red)}}}); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[?2026h\x1b[3;4Hb\x1b[?2026l"
	if buf.String() != want {
		t.Errorf("second Flush wrote %q, want %q", buf.String(), want)
	}
}

func TestANSITerminal_SetupRestore(t *testing.T) {
	var buf bytes.Buffer
	term := NewANSITerminalWithCaps(&buf, nil, Capabilities{Colors: Color16, AltScreen: true})

	if err := term.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	wantSetup := "\x1b[?1049h\x1b[?25l\x1b[0m\x1b[1;1H\x1b[2J"
	if buf.String() != wantSetup {
		t.Errorf("Setup wrote %q, want %q", buf.String(), wantSetup)
	}

	buf.Reset()
	if err := term.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	wantRestore := "\x1b[0m\x1b[?25h\x1b[?1049l"
	if buf.String() != wantRestore {
		t.Errorf("Restore wrote %q, want %q", buf.String(), wantRestore)
	}
}

func TestANSITerminal_SizeFallback(t *testing.T) {
	term := NewANSITerminalWithCaps(&bytes.Buffer{}, nil, Capabilities{})
	w, h := term.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = (%d, %d), want (80, 24)", w, h)
	}
}

func TestMockTerminal_Flush(t *testing.T) {
	m := NewMockTerminal(6, 2)
	ops := []WriteOp{
		{X: 1, Y: 0, Cells: NewStrip("hi", NewStyle()).Cells()},
		{X: 4, Y: 1, Cells: NewStrip("世", NewStyle()).Cells()},
		{X: 6, Y: 1, Cells: NewStrip("off", NewStyle()).Cells()},
	}
	if err := m.Flush(ops); err != nil {
		t.Fatal(err)
	}

	want := []string{" hi   ", "    世"}
	if diff := cmp.Diff(want, m.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if m.Flushes() != 1 || m.Ops() != 3 {
		t.Errorf("Flushes, Ops = %d, %d, want 1, 3", m.Flushes(), m.Ops())
	}
	if err := m.Flush(nil); err != nil || m.Flushes() != 1 {
		t.Errorf("empty Flush counted: Flushes = %d", m.Flushes())
	}
}

func TestMockTerminal_Resize(t *testing.T) {
	m := NewMockTerminal(4, 1)
	called := 0
	stop := m.NotifyResize(func() { called++ })

	m.Resize(10, 3)
	if w, h := m.Size(); w != 10 || h != 3 {
		t.Errorf("Size() = (%d, %d), want (10, 3)", w, h)
	}
	if called != 1 {
		t.Errorf("resize callback ran %d times, want 1", called)
	}

	stop()
	m.Resize(2, 2)
	if called != 1 {
		t.Errorf("callback ran after stop")
	}
}

func newSimulationTerminal(t *testing.T, w, h int) (*TcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTcellTerminal(screen)
	if err := term.Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() { term.Restore() })
	screen.SetSize(w, h)
	return term, screen
}

func TestTcellTerminal_Flush(t *testing.T) {
	term, screen := newSimulationTerminal(t, 10, 2)

	style := NewStyle().Foreground(Red).Bold()
	ops := []WriteOp{
		{X: 2, Y: 1, Cells: NewStrip("ok", style).Cells()},
	}
	if err := term.Flush(ops); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r, _, st, _ := screen.GetContent(2, 1)
	if r != 'o' {
		t.Errorf("rune at (2,1) = %q, want 'o'", r)
	}
	fg, _, attrs := st.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Errorf("foreground = %v, want palette 1", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute not set")
	}

	if w, h := term.Size(); w != 10 || h != 2 {
		t.Errorf("Size() = (%d, %d), want (10, 2)", w, h)
	}
}

func TestTcellStyle_Colors(t *testing.T) {
	type tc struct {
		color    Color
		expected tcell.Color
	}

	tests := map[string]tc{
		"default": {color: DefaultColor(), expected: tcell.ColorDefault},
		"palette": {color: ANSIColor(42), expected: tcell.PaletteColor(42)},
		"rgb":     {color: RGBColor(1, 2, 3), expected: tcell.NewRGBColor(1, 2, 3)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fg, _, _ := tcellStyle(NewStyle().Foreground(tt.color)).Decompose()
			if fg != tt.expected {
				t.Errorf("foreground = %v, want %v", fg, tt.expected)
			}
		})
	}
}
