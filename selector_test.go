package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fakeNode is a Selectable without a tree.
type fakeNode struct {
	typ     string
	id      string
	classes []string
	pseudo  []string
}

func (f fakeNode) TypeName() string { return f.typ }
func (f fakeNode) ID() string       { return f.id }

func (f fakeNode) HasClass(class string) bool {
	for _, c := range f.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (f fakeNode) HasPseudo(state string) bool {
	for _, p := range f.pseudo {
		if p == state {
			return true
		}
	}
	return false
}

func path(nodes ...fakeNode) []Selectable {
	out := make([]Selectable, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func TestParseSelector(t *testing.T) {
	type tc struct {
		input    string
		expected SelectorList
		wantErr  bool
	}

	tests := map[string]tc{
		"type": {
			input:    "Button",
			expected: SelectorList{{Parts: []Compound{{Type: "Button"}}}},
		},
		"compound": {
			input: "Button#ok.primary.big:hover",
			expected: SelectorList{{Parts: []Compound{{
				Type: "Button", ID: "ok", Classes: []string{"primary", "big"}, Pseudo: []string{"hover"},
			}}}},
		},
		"descendant and child": {
			input: "Screen .panel > Label",
			expected: SelectorList{{
				Parts:       []Compound{{Type: "Screen"}, {Classes: []string{"panel"}}, {Type: "Label"}},
				Combinators: []Combinator{Descendant, Child},
			}},
		},
		"child without spaces": {
			input: "a>b",
			expected: SelectorList{{
				Parts:       []Compound{{Type: "a"}, {Type: "b"}},
				Combinators: []Combinator{Child},
			}},
		},
		"list": {
			input: "#a, .b",
			expected: SelectorList{
				{Parts: []Compound{{ID: "a"}}},
				{Parts: []Compound{{Classes: []string{"b"}}}},
			},
		},
		"universal": {
			input:    "*",
			expected: SelectorList{{Parts: []Compound{{Type: "*"}}}},
		},
		"dash class": {
			input:    ".-dark-mode",
			expected: SelectorList{{Parts: []Compound{{Classes: []string{"-dark-mode"}}}}},
		},
		"empty":             {input: "", wantErr: true},
		"empty alternative": {input: "a,,b", wantErr: true},
		"two ids":           {input: "#a#b", wantErr: true},
		"trailing child":    {input: "a >", wantErr: true},
		"leading child":     {input: "> a", wantErr: true},
		"double child":      {input: "a > > b", wantErr: true},
		"dot without name":  {input: "a.", wantErr: true},
		"bad character":     {input: "a$b", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSelector(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelector(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.expected, got,
				cmpopts.IgnoreUnexported(Selector{}),
				cmpopts.EquateEmpty(),
			); diff != "" {
				t.Errorf("ParseSelector(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSelector_Match(t *testing.T) {
	type tc struct {
		selector string
		path     []Selectable
		expected bool
	}

	screen := fakeNode{typ: "Screen", id: "main"}
	panel := fakeNode{typ: "Container", classes: []string{"panel"}}
	inner := fakeNode{typ: "Container"}
	button := fakeNode{typ: "Button", id: "ok", classes: []string{"primary"}, pseudo: []string{"hover"}}

	tests := map[string]tc{
		"type matches": {
			selector: "Button", path: path(button), expected: true,
		},
		"type mismatch": {
			selector: "Label", path: path(button), expected: false,
		},
		"universal": {
			selector: "*", path: path(button), expected: true,
		},
		"all simple selectors": {
			selector: "Button#ok.primary:hover", path: path(button), expected: true,
		},
		"missing pseudo state": {
			selector: "Button:focus", path: path(button), expected: false,
		},
		"descendant skips levels": {
			selector: "Screen Button", path: path(screen, panel, inner, button), expected: true,
		},
		"child needs the immediate parent": {
			selector: ".panel > Button", path: path(screen, panel, inner, button), expected: false,
		},
		"child matches the immediate parent": {
			selector: "Container > Button", path: path(screen, panel, inner, button), expected: true,
		},
		"descendant backtracks": {
			selector: "#main .panel Container > Button", path: path(screen, panel, inner, button), expected: true,
		},
		"ancestor order matters": {
			selector: ".panel #main Button", path: path(screen, panel, inner, button), expected: false,
		},
		"subject must be last": {
			selector: "Screen", path: path(screen, button), expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			list, err := ParseSelector(tt.selector)
			if err != nil {
				t.Fatal(err)
			}
			if _, got := list.Match(tt.path); got != tt.expected {
				t.Errorf("%q matched = %v, want %v", tt.selector, got, tt.expected)
			}
		})
	}
}

func TestSelector_Specificity(t *testing.T) {
	type tc struct {
		selector string
		expected Specificity
	}

	tests := map[string]tc{
		"type":          {selector: "Button", expected: Specificity{0, 0, 1}},
		"universal":     {selector: "*", expected: Specificity{0, 0, 0}},
		"class":         {selector: ".a", expected: Specificity{0, 1, 0}},
		"pseudo counts": {selector: "Button:hover", expected: Specificity{0, 1, 1}},
		"id":            {selector: "#x", expected: Specificity{1, 0, 0}},
		"chain":         {selector: "Screen #x > .a.b Label", expected: Specificity{1, 2, 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			list, err := ParseSelector(tt.selector)
			if err != nil {
				t.Fatal(err)
			}
			if got := list[0].Specificity(); got != tt.expected {
				t.Errorf("Specificity(%q) = %v, want %v", tt.selector, got, tt.expected)
			}
		})
	}
}

func TestSelectorList_MatchUsesBestAlternative(t *testing.T) {
	list, err := ParseSelector("Button, #ok, .nope")
	if err != nil {
		t.Fatal(err)
	}
	sp, ok := list.Match(path(fakeNode{typ: "Button", id: "ok"}))
	if !ok {
		t.Fatal("list did not match")
	}
	if want := (Specificity{1, 0, 0}); sp != want {
		t.Errorf("Specificity = %v, want %v", sp, want)
	}
}
