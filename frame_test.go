package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFrame(t *testing.T) {
	type tc struct {
		width, height int
		wantW, wantH  int
	}

	tests := map[string]tc{
		"standard size":       {width: 80, height: 24, wantW: 80, wantH: 24},
		"single cell":         {width: 1, height: 1, wantW: 1, wantH: 1},
		"zero width":          {width: 0, height: 10, wantW: 0, wantH: 10},
		"negative dimensions": {width: -5, height: -3, wantW: 0, wantH: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(tt.width, tt.height)
			if f.Width() != tt.wantW || f.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", f.Width(), f.Height(), tt.wantW, tt.wantH)
			}
			for y := range f.Height() {
				for x := range f.Width() {
					if !f.Cell(x, y).Equal(blankCell) {
						t.Fatalf("Cell(%d, %d) = %+v, want blank", x, y, f.Cell(x, y))
					}
				}
			}
		})
	}
}

func TestFrame_WideCharacters(t *testing.T) {
	type tc struct {
		width    int
		draw     func(f *Frame)
		expected string
	}

	style := NewStyle()

	tests := map[string]tc{
		"wide char takes two cells": {
			width:    6,
			draw:     func(f *Frame) { f.SetRune(1, 0, '好', style) },
			expected: " 好",
		},
		"overwrite continuation clears the lead": {
			width: 6,
			draw: func(f *Frame) {
				f.SetRune(2, 0, '好', style)
				f.SetRune(3, 0, 'X', style)
			},
			expected: "   X",
		},
		"overwrite lead clears the continuation": {
			width: 6,
			draw: func(f *Frame) {
				f.SetRune(2, 0, '好', style)
				f.SetRune(2, 0, 'Y', style)
			},
			expected: "  Y",
		},
		"wide over wide": {
			width: 8,
			draw: func(f *Frame) {
				f.SetRune(3, 0, '中', style)
				f.SetRune(2, 0, '文', style)
			},
			expected: "  文",
		},
		"wide char at last column becomes a space": {
			width:    5,
			draw:     func(f *Frame) { f.SetRune(4, 0, '你', style) },
			expected: "",
		},
		"chained overwrite keeps neighbours": {
			width: 6,
			draw: func(f *Frame) {
				f.SetString(0, 0, "你好吗", style)
				f.SetRune(2, 0, 'X', style)
				f.SetRune(3, 0, 'Y', style)
			},
			expected: "你XY吗",
		},
		"string stops at the edge": {
			width:    4,
			draw:     func(f *Frame) { f.SetString(2, 0, "hello", style) },
			expected: "  he",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(tt.width, 1)
			tt.draw(f)
			if got := f.StringTrimmed(); got != tt.expected {
				t.Errorf("frame = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFrame_OutOfBounds(t *testing.T) {
	f := NewFrame(3, 2)
	f.SetRune(-1, 0, 'x', NewStyle())
	f.SetRune(0, 5, 'x', NewStyle())
	f.Fill(NewRect(-10, -10, 5, 5), '#', NewStyle())

	if got := f.StringTrimmed(); got != "\n" {
		t.Errorf("frame = %q, want blank", got)
	}
	if c := f.Cell(9, 9); c != (Cell{}) {
		t.Errorf("Cell(9, 9) = %+v, want zero cell", c)
	}
}

func TestFrame_CloneAndEqual(t *testing.T) {
	f := NewFrame(4, 2)
	f.SetString(0, 0, "ab", NewStyle().Bold())
	g := f.Clone()
	if !f.Equal(g) {
		t.Fatal("clone differs from original")
	}
	g.SetRune(3, 1, 'z', NewStyle())
	if f.Equal(g) {
		t.Error("frames still equal after changing the clone")
	}
	if f.Cell(3, 1).Rune != ' ' {
		t.Error("changing the clone changed the original")
	}
	if f.Equal(NewFrame(4, 3)) {
		t.Error("frames of different size compare equal")
	}
}

func TestCanvas_Clipping(t *testing.T) {
	type tc struct {
		draw     func(c *Canvas)
		expected []string
	}

	style := NewStyle()

	tests := map[string]tc{
		"sub canvas moves the origin and clips": {
			draw: func(c *Canvas) {
				c.Sub(NewRect(1, 1, 3, 1)).SetString(0, 0, "abcdef", style)
			},
			expected: []string{"      ", " abc  ", "      "},
		},
		"negative local coordinates are clipped": {
			draw: func(c *Canvas) {
				c.Sub(NewRect(1, 1, 3, 1)).SetString(-1, 0, "xyz", style)
			},
			expected: []string{"      ", " yz   ", "      "},
		},
		"within narrows the clip but keeps the origin": {
			draw: func(c *Canvas) {
				c.Sub(NewRect(1, 0, 4, 1)).Within(NewRect(1, 0, 2, 1)).SetString(0, 0, "abcd", style)
			},
			expected: []string{"  bc  ", "      ", "      "},
		},
		"fill is limited to the clip": {
			draw: func(c *Canvas) {
				c.Sub(NewRect(1, 1, 2, 2)).Fill(NewRect(-5, -5, 100, 100), '#', style)
			},
			expected: []string{"      ", " ##   ", " ##   "},
		},
		"wide char cut by the clip becomes a space": {
			draw: func(c *Canvas) {
				c.SetString(0, 0, "......", style)
				c.Sub(NewRect(0, 0, 3, 1)).SetString(2, 0, "世", style)
			},
			expected: []string{".. ...", "      ", "      "},
		},
		"nested subs intersect": {
			draw: func(c *Canvas) {
				c.Sub(NewRect(2, 0, 4, 3)).Sub(NewRect(-2, 1, 4, 1)).SetString(0, 0, "wxyz", style)
			},
			expected: []string{"      ", "  yz  ", "      "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(6, 3)
			tt.draw(f.Canvas())
			if diff := cmp.Diff(tt.expected, f.Lines()); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanvas_Bounds(t *testing.T) {
	f := NewFrame(6, 3)
	c := f.Canvas().Sub(NewRect(2, 1, 10, 10))
	if got, want := c.Bounds(), NewRect(0, 0, 4, 2); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if c.Empty() {
		t.Error("canvas reported empty")
	}
	if !f.Canvas().Sub(NewRect(10, 10, 2, 2)).Empty() {
		t.Error("canvas outside the frame should be empty")
	}
}

func TestDrawBox(t *testing.T) {
	type tc struct {
		width, height int
		kind          BorderKind
		title         string
		expected      []string
	}

	tests := map[string]tc{
		"round with title": {
			width: 5, height: 3, kind: BorderRound, title: "ab",
			expected: []string{"╭ ab╮", "│   │", "╰───╯"},
		},
		"solid": {
			width: 4, height: 2, kind: BorderSolid,
			expected: []string{"┌──┐", "└──┘"},
		},
		"long title is cut": {
			width: 8, height: 2, kind: BorderDouble, title: "hello world",
			expected: []string{"╔ hello╗", "╚══════╝"},
		},
		"ascii": {
			width: 3, height: 3, kind: BorderASCII,
			expected: []string{"+-+", "| |", "+-+"},
		},
		"too small draws nothing": {
			width: 1, height: 1, kind: BorderHeavy,
			expected: []string{" "},
		},
		"none draws nothing": {
			width: 2, height: 2, kind: BorderNone,
			expected: []string{"  ", "  "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFrame(tt.width, tt.height)
			DrawBox(f.Canvas(), f.Rect(), tt.kind, NewStyle(), tt.title)
			if diff := cmp.Diff(tt.expected, f.Lines()); diff != "" {
				t.Errorf("box mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBorderKind(t *testing.T) {
	type tc struct {
		input    string
		expected BorderKind
		wantErr  bool
	}

	tests := map[string]tc{
		"round":            {input: "round", expected: BorderRound},
		"case and spaces":  {input: " Double ", expected: BorderDouble},
		"none":             {input: "none", expected: BorderNone},
		"unknown is error": {input: "dotted", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorderKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorderKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseBorderKind(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
