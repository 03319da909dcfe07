package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// opSummary is a WriteOp reduced to what tests compare.
type opSummary struct {
	X, Y int
	Text string
}

func summarize(ops []WriteOp) []opSummary {
	out := make([]opSummary, len(ops))
	for i, op := range ops {
		text := ""
		for _, c := range op.Cells {
			text += c.String()
		}
		out[i] = opSummary{X: op.X, Y: op.Y, Text: text}
	}
	return out
}

func frameOf(lines ...string) *Frame {
	w := 0
	for _, l := range lines {
		w = max(w, StringWidth(l))
	}
	f := NewFrame(w, len(lines))
	for y, l := range lines {
		f.SetString(0, y, l, NewStyle())
	}
	return f
}

func withCell(f *Frame, x, y int, c Cell) *Frame {
	f.setCell(x, y, c)
	return f
}

func TestDiff(t *testing.T) {
	type tc struct {
		prev     *Frame
		next     *Frame
		expected []opSummary
		full     bool
	}

	tests := map[string]tc{
		"unchanged frame gives no ops": {
			prev:     frameOf("hello", "world"),
			next:     frameOf("hello", "world"),
			expected: []opSummary{},
		},
		"no previous frame repaints non-blank rows": {
			prev:     nil,
			next:     frameOf("ab  ", "    ", "  c "),
			expected: []opSummary{{0, 0, "ab"}, {0, 2, "  c"}},
			full:     true,
		},
		"size change repaints": {
			prev:     frameOf("ab"),
			next:     frameOf("ab", "cd"),
			expected: []opSummary{{0, 0, "ab"}, {0, 1, "cd"}},
			full:     true,
		},
		"single changed cell": {
			prev:     frameOf("abcdef"),
			next:     frameOf("abXdef"),
			expected: []opSummary{{2, 0, "X"}},
		},
		"gap of three is bridged": {
			prev:     frameOf("abcdefgh"),
			next:     frameOf("XbcdYfgh"),
			expected: []opSummary{{0, 0, "XbcdY"}},
		},
		"gap of four is split": {
			prev:     frameOf("abcdefgh"),
			next:     frameOf("XbcdeYgh"),
			expected: []opSummary{{0, 0, "X"}, {5, 0, "Y"}},
		},
		"rows are diffed independently": {
			prev:     frameOf("aaa", "bbb"),
			next:     frameOf("aXa", "bbY"),
			expected: []opSummary{{1, 0, "X"}, {2, 1, "Y"}},
		},
		"wide character keeps its continuation": {
			prev:     frameOf("abcd"),
			next:     frameOf("a世d"),
			expected: []opSummary{{1, 0, "世"}},
		},
		"changed continuation pulls in the lead cell": {
			prev:     frameOf("ab世"),
			next:     withCell(frameOf("ab世"), 3, 0, continuationCell(NewStyle().Background(Red))),
			expected: []opSummary{{2, 0, "世"}},
		},
		"wide character replaced by narrow ones": {
			prev:     frameOf("世世"),
			next:     frameOf("世a "),
			expected: []opSummary{{2, 0, "a "}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ops, full := Diff(tt.prev, tt.next)
			if full != tt.full {
				t.Errorf("full = %v, want %v", full, tt.full)
			}
			if diff := cmp.Diff(tt.expected, summarize(ops)); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff_OpsReproduceNext(t *testing.T) {
	prev := frameOf("the quick brown", "fox jumps over ", "the lazy dog   ")
	next := frameOf("the quack brown", "fix jumps 世   ", "the lazy dog!  ")

	ops, _ := Diff(prev, next)
	got := prev.Clone()
	for _, op := range ops {
		for i, c := range op.Cells {
			got.setCell(op.X+i, op.Y, c)
		}
	}
	if !got.Equal(next) {
		t.Errorf("applying ops gave\n%s\nwant\n%s", got, next)
	}
}

func TestWriteOp_Width(t *testing.T) {
	op := WriteOp{Cells: NewStrip("a世", NewStyle()).Cells()}
	if op.Width() != 3 {
		t.Errorf("Width() = %d, want 3", op.Width())
	}
}
