package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func render(t *testing.T, rules []*Rule, root *Node, width, height int) (*Tree, *Frame) {
	t.Helper()
	tr := NewTree(NewStylesheet(rules...))
	if err := tr.SetRoot(root); err != nil {
		t.Fatalf("SetRoot: %v", err)
	}
	return tr, tr.Render(Size{Width: width, Height: height})
}

func failing(err error) Widget {
	return WidgetFunc(func(Size, ComputedStyle) (Renderable, error) {
		return nil, err
	})
}

func TestTree_Render(t *testing.T) {
	type tc struct {
		rules  []*Rule
		root   func() *Node
		width  int
		height int
		want   []string
	}

	tests := map[string]tc{
		"label fills the width": {
			root: func() *Node {
				return NewNode("Screen", WithChildren(Label("hi")))
			},
			width:  6,
			height: 2,
			want:   []string{"hi    ", "      "},
		},
		"stacked labels": {
			root: func() *Node {
				return NewNode("Screen", WithChildren(Label("one"), Label("two")))
			},
			width:  4,
			height: 3,
			want:   []string{"one ", "two ", "    "},
		},
		"border around content": {
			rules: []*Rule{MustRule("Screen", Decl("border", "round"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(Label("hi")))
			},
			width:  6,
			height: 3,
			want:   []string{"╭────╮", "│hi  │", "╰────╯"},
		},
		"border title": {
			rules: []*Rule{MustRule("Screen", Decl("border", "solid"))},
			root: func() *Node {
				return NewNode("Screen", WithBorderTitle("ab"))
			},
			width:  6,
			height: 3,
			want:   []string{"┌ ab ┐", "│    │", "└────┘"},
		},
		"content align center middle": {
			rules: []*Rule{MustRule("Label", Decl("content-align", "center middle"))},
			root: func() *Node {
				return Label("X")
			},
			width:  3,
			height: 3,
			want:   []string{"   ", " X ", "   "},
		},
		"padding": {
			rules: []*Rule{MustRule("Screen", Decl("padding", "1 2"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(Label("x")))
			},
			width:  5,
			height: 3,
			want:   []string{"     ", "  x  ", "     "},
		},
		"horizontal layout": {
			rules: []*Rule{
				MustRule("Screen", Decl("layout", "horizontal")),
				MustRule("#left", Decl("width", "2")),
			},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Label("ab", WithID("left")),
					Label("cd"),
				))
			},
			width:  6,
			height: 1,
			want:   []string{"abcd  "},
		},
		"dock bottom": {
			rules: []*Rule{MustRule("#footer", Decl("dock", "bottom"), Decl("height", "1"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Label("f", WithID("footer")),
					Label("b"),
				))
			},
			width:  3,
			height: 3,
			want:   []string{"b  ", "   ", "f  "},
		},
		"display none takes no space": {
			rules: []*Rule{MustRule(".gone", Decl("display", "none"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Label("a", WithClasses("gone")),
					Label("b"),
				))
			},
			width:  2,
			height: 2,
			want:   []string{"b ", "  "},
		},
		"visibility hidden keeps its space": {
			rules: []*Rule{MustRule(".ghost", Decl("visibility", "hidden"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Label("a", WithClasses("ghost")),
					Label("b"),
				))
			},
			width:  2,
			height: 2,
			want:   []string{"  ", "b "},
		},
		"overlay layer paints over base content": {
			rules: []*Rule{
				MustRule("Screen", Decl("layers", "default overlay")),
				MustRule("#toast",
					Decl("layer", "overlay"),
					Decl("width", "2"),
					Decl("height", "1"),
					Decl("offset", "2 0"),
				),
			},
			root: func() *Node {
				// The overlay comes first in the tree and still paints last.
				return NewNode("Screen", WithChildren(
					Label("XX", WithID("toast")),
					Label("aaaaaa"),
				))
			},
			width:  6,
			height: 1,
			want:   []string{"aaXXaa"},
		},
		"children are clipped to their parent": {
			rules: []*Rule{
				MustRule("Screen", Decl("layout", "horizontal")),
				MustRule("#box", Decl("width", "3")),
				MustRule("#wide", Decl("width", "6")),
			},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Container([]*Node{Label("abcdef", WithID("wide"))}, WithID("box")),
					Label("Z"),
				))
			},
			width:  8,
			height: 1,
			want:   []string{"abcZ    "},
		},
		"offset moves a node without moving its siblings": {
			rules: []*Rule{MustRule("#moved", Decl("offset", "1 1"))},
			root: func() *Node {
				return NewNode("Screen", WithChildren(
					Label("b"),
					Label("a", WithID("moved")),
				))
			},
			width:  3,
			height: 3,
			want:   []string{"b  ", "   ", " a "},
		},
		"wide characters": {
			root: func() *Node {
				return NewNode("Screen", WithChildren(Label("日本")))
			},
			width:  5,
			height: 1,
			want:   []string{"日本 "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, f := render(t, tt.rules, tt.root(), tt.width, tt.height)
			if diff := cmp.Diff(tt.want, f.Lines()); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTree_RenderColors(t *testing.T) {
	rules := []*Rule{
		MustRule("Screen", Decl("background", "blue"), Decl("color", "white")),
		MustRule("#hot", Decl("background", "red"), Decl("text-style", "bold")),
	}
	root := NewNode("Screen", WithChildren(
		Label("a"),
		Label("b", WithID("hot")),
	))
	_, f := render(t, rules, root, 3, 3)

	type tc struct {
		x, y int
		want Style
	}
	tests := map[string]tc{
		"transparent label shows the screen background": {
			x: 0, y: 0,
			want: NewStyle().Foreground(White).Background(Blue),
		},
		"trailing cells of a transparent label": {
			x: 2, y: 0,
			want: NewStyle().Foreground(White).Background(Blue),
		},
		"own background and inherited color": {
			x: 0, y: 1,
			want: NewStyle().Foreground(White).Background(Red).Bold(),
		},
		"screen fill below the labels": {
			x: 1, y: 2,
			want: NewStyle().Foreground(White).Background(Blue),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := f.Cell(tt.x, tt.y).Style
			if !got.Equal(tt.want) {
				t.Errorf("cell (%d,%d) style = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTree_RenderErrors(t *testing.T) {
	boom := errors.New("boom")

	type tc struct {
		widget Widget
	}
	tests := map[string]tc{
		"error": {
			widget: failing(boom),
		},
		"panic": {
			widget: WidgetFunc(func(Size, ComputedStyle) (Renderable, error) {
				panic("boom")
			}),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rules := []*Rule{
				MustRule("Screen", Decl("layout", "horizontal")),
				MustRule("#bad", Decl("width", "12")),
			}
			root := NewNode("Screen", WithChildren(
				NewNode("Widget", WithID("bad"), WithWidget(tt.widget)),
				Label("ok"),
			))
			tr, f := render(t, rules, root, 14, 1)

			if diff := cmp.Diff([]string{"render errorok"}, f.Lines()); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
			if got := f.Cell(0, 0).Style; !got.Equal(placeholderStyle) {
				t.Errorf("placeholder style = %+v", got)
			}

			errs := tr.Diagnostics().Errors()
			if len(errs) != 1 {
				t.Fatalf("diagnostics = %v, want one RenderError", errs)
			}
			var renderErr *RenderError
			if !errors.As(errs[0], &renderErr) || renderErr.NodeID != "bad" {
				t.Errorf("diagnostic = %v, want RenderError for bad", errs[0])
			}
		})
	}
}

func TestTree_RenderReportsClipping(t *testing.T) {
	rules := []*Rule{
		MustRule("Screen", Decl("layout", "horizontal")),
		MustRule("#box", Decl("width", "3")),
		MustRule("#wide", Decl("width", "6")),
	}
	root := NewNode("Screen", WithChildren(
		Container([]*Node{Label("abcdef", WithID("wide"))}, WithID("box")),
	))
	tr, _ := render(t, rules, root, 8, 1)

	errs := tr.Diagnostics().Errors()
	if len(errs) != 1 {
		t.Fatalf("diagnostics = %v, want one LayoutError", errs)
	}
	var layoutErr *LayoutError
	if !errors.As(errs[0], &layoutErr) || layoutErr.NodeID != "box" {
		t.Errorf("diagnostic = %v, want LayoutError for box", errs[0])
	}

	// A clean tree is not recalculated, so nothing new is reported.
	tr.Render(Size{Width: 8, Height: 1})
	if got := tr.Diagnostics().Total(); got != 1 {
		t.Errorf("Total() = %d after a clean render, want 1", got)
	}
}

func scrollTree(t *testing.T) (*Tree, *Node, []*Node) {
	t.Helper()
	items := []*Node{Label("1"), Label("2"), Label("3"), Label("4")}
	list := Container(items, WithID("list"))
	tr := NewTree(NewStylesheet(
		MustRule("#list", Decl("height", "2"), Decl("overflow-y", "auto")),
	))
	if err := tr.SetRoot(NewNode("Screen", WithChildren(list))); err != nil {
		t.Fatal(err)
	}
	return tr, list, items
}

func TestNode_Scroll(t *testing.T) {
	tr, list, _ := scrollTree(t)
	size := Size{Width: 3, Height: 2}

	f := tr.Render(size)
	if diff := cmp.Diff([]string{"1  ", "2  "}, f.Lines()); diff != "" {
		t.Errorf("initial frame (-want +got):\n%s", diff)
	}
	if got := list.VirtualSize(); got != (Size{Width: 3, Height: 4}) {
		t.Errorf("VirtualSize() = %v, want 3x4", got)
	}
	if got := list.MaxScroll(); got != (Point{Y: 2}) {
		t.Errorf("MaxScroll() = %v, want {0 2}", got)
	}

	list.ScrollTo(0, 1)
	f = tr.Render(size)
	if diff := cmp.Diff([]string{"2  ", "3  "}, f.Lines()); diff != "" {
		t.Errorf("scrolled frame (-want +got):\n%s", diff)
	}

	list.ScrollTo(5, 10)
	f = tr.Render(size)
	if got := list.ScrollOffset(); got != (Point{Y: 2}) {
		t.Errorf("ScrollOffset() = %v, want it clamped to {0 2}", got)
	}
	if diff := cmp.Diff([]string{"3  ", "4  "}, f.Lines()); diff != "" {
		t.Errorf("clamped frame (-want +got):\n%s", diff)
	}
	if len(tr.Diagnostics().Errors()) != 0 {
		t.Errorf("scrollable content should not be reported: %v", tr.Diagnostics().Errors())
	}
}

func TestNode_ScrollIntoView(t *testing.T) {
	tr, list, items := scrollTree(t)
	size := Size{Width: 3, Height: 2}
	tr.Render(size)

	items[3].ScrollIntoView()
	f := tr.Render(size)
	if got := list.ScrollOffset(); got != (Point{Y: 2}) {
		t.Errorf("ScrollOffset() = %v, want {0 2}", got)
	}
	if diff := cmp.Diff([]string{"3  ", "4  "}, f.Lines()); diff != "" {
		t.Errorf("frame (-want +got):\n%s", diff)
	}

	items[0].ScrollIntoView()
	f = tr.Render(size)
	if got := list.ScrollOffset(); got != (Point{}) {
		t.Errorf("ScrollOffset() = %v, want {0 0}", got)
	}
	if diff := cmp.Diff([]string{"1  ", "2  "}, f.Lines()); diff != "" {
		t.Errorf("frame (-want +got):\n%s", diff)
	}
}

func TestTree_RenderIncremental(t *testing.T) {
	label := Label("hi")
	tr, first := render(t, nil, NewNode("Screen", WithChildren(label, Label("there"))), 6, 2)

	second := tr.Render(Size{Width: 6, Height: 2})
	if ops, full := Diff(first, second); len(ops) != 0 || full {
		t.Errorf("unchanged tree: %d ops, full=%v; want none", len(ops), full)
	}

	label.SetWidget(NewStatic("yo"))
	third := tr.Render(Size{Width: 6, Height: 2})
	ops, full := Diff(second, third)
	if full {
		t.Fatal("a widget change should not need a full repaint")
	}
	if diff := cmp.Diff([]opSummary{{X: 0, Y: 0, Text: "yo"}}, summarize(ops)); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_RenderEmpty(t *testing.T) {
	tr := NewTree(nil)
	f := tr.Render(Size{Width: 2, Height: 1})
	if diff := cmp.Diff([]string{"  "}, f.Lines()); diff != "" {
		t.Errorf("empty tree frame (-want +got):\n%s", diff)
	}
}
