package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// applyFunc writes one parsed declaration into a computed style.
type applyFunc func(*ComputedStyle)

type property struct {
	parse func(value string) (applyFunc, error)
	reset applyFunc
}

// inheritFrom copies the inheritable properties (color, text-style and
// visibility) from parent.
func inheritFrom(dst *ComputedStyle, parent ComputedStyle) {
	dst.Color = parent.Color
	dst.TextStyle = parent.TextStyle
	dst.Visible = parent.Visible
}

var properties map[string]property

func init() {
	def := DefaultComputedStyle()

	properties = map[string]property{
		"color": {
			parse: colorProp(func(s *ComputedStyle, c Color) { s.Color = c }),
			reset: func(s *ComputedStyle) { s.Color = def.Color },
		},
		"background": {
			parse: colorProp(func(s *ComputedStyle, c Color) { s.Background = c }),
			reset: func(s *ComputedStyle) { s.Background = def.Background },
		},
		"text-style": {
			parse: func(v string) (applyFunc, error) {
				a, err := ParseAttrs(v)
				if err != nil {
					return nil, err
				}
				return func(s *ComputedStyle) { s.TextStyle = a }, nil
			},
			reset: func(s *ComputedStyle) { s.TextStyle = def.TextStyle },
		},
		"margin": {
			parse: edgesProp(func(s *ComputedStyle, e Edges) { s.Margin = e }),
			reset: func(s *ComputedStyle) { s.Margin = def.Margin },
		},
		"padding": {
			parse: edgesProp(func(s *ComputedStyle, e Edges) { s.Padding = e }),
			reset: func(s *ComputedStyle) { s.Padding = def.Padding },
		},
		"border": {
			parse: parseBorder,
			reset: func(s *ComputedStyle) { s.Border, s.BorderColor = def.Border, def.BorderColor },
		},
		"border-color": {
			parse: colorProp(func(s *ComputedStyle, c Color) { s.BorderColor = c }),
			reset: func(s *ComputedStyle) { s.BorderColor = def.BorderColor },
		},
		"width":      valueProp(def.Width, func(s *ComputedStyle) *Value { return &s.Width }),
		"height":     valueProp(def.Height, func(s *ComputedStyle) *Value { return &s.Height }),
		"min-width":  valueProp(def.MinWidth, func(s *ComputedStyle) *Value { return &s.MinWidth }),
		"min-height": valueProp(def.MinHeight, func(s *ComputedStyle) *Value { return &s.MinHeight }),
		"max-width":  valueProp(def.MaxWidth, func(s *ComputedStyle) *Value { return &s.MaxWidth }),
		"max-height": valueProp(def.MaxHeight, func(s *ComputedStyle) *Value { return &s.MaxHeight }),
		"layout": {
			parse: keywordProp(map[string]LayoutMode{
				"vertical":   LayoutVertical,
				"horizontal": LayoutHorizontal,
				"grid":       LayoutGrid,
			}, func(s *ComputedStyle, m LayoutMode) { s.Layout = m }),
			reset: func(s *ComputedStyle) { s.Layout = def.Layout },
		},
		"dock": {
			parse: keywordProp(map[string]Dock{
				"none":   DockNone,
				"top":    DockTop,
				"right":  DockRight,
				"bottom": DockBottom,
				"left":   DockLeft,
			}, func(s *ComputedStyle, d Dock) { s.Dock = d }),
			reset: func(s *ComputedStyle) { s.Dock = def.Dock },
		},
		"layer": {
			parse: func(v string) (applyFunc, error) {
				name, err := singleName(v)
				if err != nil {
					return nil, err
				}
				return func(s *ComputedStyle) { s.Layer = name }, nil
			},
			reset: func(s *ComputedStyle) { s.Layer = def.Layer },
		},
		"layers": {
			parse: func(v string) (applyFunc, error) {
				names := strings.Fields(v)
				if len(names) == 0 {
					return nil, fmt.Errorf("expected at least one layer name")
				}
				return func(s *ComputedStyle) { s.Layers = names }, nil
			},
			reset: func(s *ComputedStyle) { s.Layers = def.Layers },
		},
		"offset": {
			parse: func(v string) (applyFunc, error) {
				n, err := ints(v, 2, 2)
				if err != nil {
					return nil, err
				}
				p := Point{X: n[0], Y: n[1]}
				return func(s *ComputedStyle) { s.Offset = p }, nil
			},
			reset: func(s *ComputedStyle) { s.Offset = def.Offset },
		},
		"overflow": {
			parse: func(v string) (applyFunc, error) {
				words := strings.Fields(v)
				if len(words) == 0 || len(words) > 2 {
					return nil, fmt.Errorf("expected 1 or 2 overflow values")
				}
				x, err := parseOverflow(words[0])
				if err != nil {
					return nil, err
				}
				y := x
				if len(words) == 2 {
					if y, err = parseOverflow(words[1]); err != nil {
						return nil, err
					}
				}
				return func(s *ComputedStyle) { s.OverflowX, s.OverflowY = x, y }, nil
			},
			reset: func(s *ComputedStyle) { s.OverflowX, s.OverflowY = def.OverflowX, def.OverflowY },
		},
		"overflow-x": {
			parse: overflowProp(func(s *ComputedStyle, o Overflow) { s.OverflowX = o }),
			reset: func(s *ComputedStyle) { s.OverflowX = def.OverflowX },
		},
		"overflow-y": {
			parse: overflowProp(func(s *ComputedStyle, o Overflow) { s.OverflowY = o }),
			reset: func(s *ComputedStyle) { s.OverflowY = def.OverflowY },
		},
		"content-align": {
			parse: alignPairProp(func(s *ComputedStyle, h HAlign, v VAlign) { s.ContentAlignH, s.ContentAlignV = h, v }),
			reset: func(s *ComputedStyle) { s.ContentAlignH, s.ContentAlignV = def.ContentAlignH, def.ContentAlignV },
		},
		"content-align-horizontal": {
			parse: keywordProp(hAligns, func(s *ComputedStyle, h HAlign) { s.ContentAlignH = h }),
			reset: func(s *ComputedStyle) { s.ContentAlignH = def.ContentAlignH },
		},
		"content-align-vertical": {
			parse: keywordProp(vAligns, func(s *ComputedStyle, v VAlign) { s.ContentAlignV = v }),
			reset: func(s *ComputedStyle) { s.ContentAlignV = def.ContentAlignV },
		},
		"align": {
			parse: alignPairProp(func(s *ComputedStyle, h HAlign, v VAlign) { s.AlignH, s.AlignV = h, v }),
			reset: func(s *ComputedStyle) { s.AlignH, s.AlignV = def.AlignH, def.AlignV },
		},
		"align-horizontal": {
			parse: keywordProp(hAligns, func(s *ComputedStyle, h HAlign) { s.AlignH = h }),
			reset: func(s *ComputedStyle) { s.AlignH = def.AlignH },
		},
		"align-vertical": {
			parse: keywordProp(vAligns, func(s *ComputedStyle, v VAlign) { s.AlignV = v }),
			reset: func(s *ComputedStyle) { s.AlignV = def.AlignV },
		},
		"grid-size": {
			parse: func(v string) (applyFunc, error) {
				n, err := ints(v, 1, 2)
				if err != nil {
					return nil, err
				}
				if n[0] < 1 {
					return nil, fmt.Errorf("grid needs at least one column")
				}
				cols, rows := n[0], 0
				if len(n) == 2 {
					rows = n[1]
				}
				return func(s *ComputedStyle) { s.GridColumns, s.GridRows = cols, rows }, nil
			},
			reset: func(s *ComputedStyle) { s.GridColumns, s.GridRows = def.GridColumns, def.GridRows },
		},
		"grid-gutter": {
			parse: func(v string) (applyFunc, error) {
				n, err := ints(v, 1, 1)
				if err != nil {
					return nil, err
				}
				if n[0] < 0 {
					return nil, fmt.Errorf("negative gutter %d", n[0])
				}
				return func(s *ComputedStyle) { s.GridGutter = n[0] }, nil
			},
			reset: func(s *ComputedStyle) { s.GridGutter = def.GridGutter },
		},
		"display": {
			parse: keywordProp(map[string]bool{"block": true, "none": false},
				func(s *ComputedStyle, b bool) { s.Display = b }),
			reset: func(s *ComputedStyle) { s.Display = def.Display },
		},
		"visibility": {
			parse: keywordProp(map[string]bool{"visible": true, "hidden": false},
				func(s *ComputedStyle, b bool) { s.Visible = b }),
			reset: func(s *ComputedStyle) { s.Visible = def.Visible },
		},
		"transition": {
			parse: parseTransitions,
			reset: func(s *ComputedStyle) { s.Transitions = def.Transitions },
		},
	}
}

// compileDeclaration parses one declaration into the function applying it.
// A malformed value yields the property's reset so the default applies.
func compileDeclaration(name, value string) (applyFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	p, ok := properties[name]
	if !ok {
		return nil, fmt.Errorf("unknown property %q", name)
	}
	apply, err := p.parse(strings.TrimSpace(value))
	if err != nil {
		return p.reset, fmt.Errorf("invalid value for %s: %w", name, err)
	}
	return apply, nil
}

func colorProp(set func(*ComputedStyle, Color)) func(string) (applyFunc, error) {
	return func(v string) (applyFunc, error) {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		return func(s *ComputedStyle) { set(s, c) }, nil
	}
}

func edgesProp(set func(*ComputedStyle, Edges)) func(string) (applyFunc, error) {
	return func(v string) (applyFunc, error) {
		e, err := parseEdges(v)
		if err != nil {
			return nil, err
		}
		return func(s *ComputedStyle) { set(s, e) }, nil
	}
}

func valueProp(def Value, field func(*ComputedStyle) *Value) property {
	return property{
		parse: func(v string) (applyFunc, error) {
			val, err := ParseValue(v)
			if err != nil {
				return nil, err
			}
			return func(s *ComputedStyle) { *field(s) = val }, nil
		},
		reset: func(s *ComputedStyle) { *field(s) = def },
	}
}

func keywordProp[T any](words map[string]T, set func(*ComputedStyle, T)) func(string) (applyFunc, error) {
	return func(v string) (applyFunc, error) {
		val, ok := words[strings.ToLower(v)]
		if !ok {
			return nil, fmt.Errorf("unexpected keyword %q", v)
		}
		return func(s *ComputedStyle) { set(s, val) }, nil
	}
}

var hAligns = map[string]HAlign{"left": AlignLeft, "center": AlignCenter, "right": AlignRight}
var vAligns = map[string]VAlign{"top": AlignTop, "middle": AlignMiddle, "bottom": AlignBottom}

func alignPairProp(set func(*ComputedStyle, HAlign, VAlign)) func(string) (applyFunc, error) {
	return func(v string) (applyFunc, error) {
		words := strings.Fields(strings.ToLower(v))
		if len(words) != 2 {
			return nil, fmt.Errorf("expected <horizontal> <vertical>, got %q", v)
		}
		h, ok := hAligns[words[0]]
		if !ok {
			return nil, fmt.Errorf("unexpected horizontal alignment %q", words[0])
		}
		va, ok := vAligns[words[1]]
		if !ok {
			return nil, fmt.Errorf("unexpected vertical alignment %q", words[1])
		}
		return func(s *ComputedStyle) { set(s, h, va) }, nil
	}
}

var overflows = map[string]Overflow{"hidden": OverflowHidden, "auto": OverflowAuto, "scroll": OverflowScroll}

func parseOverflow(v string) (Overflow, error) {
	o, ok := overflows[strings.ToLower(v)]
	if !ok {
		return OverflowHidden, fmt.Errorf("unexpected overflow %q", v)
	}
	return o, nil
}

func overflowProp(set func(*ComputedStyle, Overflow)) func(string) (applyFunc, error) {
	return func(v string) (applyFunc, error) {
		o, err := parseOverflow(v)
		if err != nil {
			return nil, err
		}
		return func(s *ComputedStyle) { set(s, o) }, nil
	}
}

// parseBorder reads "<kind> [color]".
func parseBorder(v string) (applyFunc, error) {
	words := strings.Fields(v)
	if len(words) == 0 || len(words) > 2 {
		return nil, fmt.Errorf("expected <kind> [color], got %q", v)
	}
	kind, err := ParseBorderKind(words[0])
	if err != nil {
		return nil, err
	}
	color := DefaultColor()
	if len(words) == 2 {
		if color, err = ParseColor(words[1]); err != nil {
			return nil, err
		}
	}
	return func(s *ComputedStyle) { s.Border, s.BorderColor = kind, color }, nil
}

// parseEdges reads 1, 2 or 4 integers in CSS order.
func parseEdges(v string) (Edges, error) {
	n, err := ints(v, 1, 4)
	if err != nil {
		return Edges{}, err
	}
	for _, x := range n {
		if x < 0 {
			return Edges{}, fmt.Errorf("negative spacing %d", x)
		}
	}
	switch len(n) {
	case 1:
		return EdgeAll(n[0]), nil
	case 2:
		return EdgeSymmetric(n[0], n[1]), nil
	case 4:
		return EdgeTRBL(n[0], n[1], n[2], n[3]), nil
	}
	return Edges{}, fmt.Errorf("expected 1, 2 or 4 values, got %d", len(n))
}

func ints(v string, minN, maxN int) ([]int, error) {
	words := strings.Fields(v)
	if len(words) < minN || len(words) > maxN {
		return nil, fmt.Errorf("expected %d to %d integers, got %q", minN, maxN, v)
	}
	out := make([]int, len(words))
	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", w)
		}
		out[i] = n
	}
	return out, nil
}

func singleName(v string) (string, error) {
	words := strings.Fields(v)
	if len(words) != 1 {
		return "", fmt.Errorf("expected a single name, got %q", v)
	}
	return words[0], nil
}

// transitionProperties lists what can be animated.
var transitionProperties = map[string]bool{
	"offset":     true,
	"background": true,
	"color":      true,
}

// parseTransitions reads "<property> <duration> [easing] [delay], ...".
func parseTransitions(v string) (applyFunc, error) {
	var out []Transition
	for _, item := range strings.Split(v, ",") {
		words := strings.Fields(item)
		if len(words) < 2 || len(words) > 4 {
			return nil, fmt.Errorf("expected <property> <duration> [easing] [delay], got %q", strings.TrimSpace(item))
		}
		t := Transition{Property: words[0], Easing: DefaultEasing}
		if !transitionProperties[t.Property] {
			return nil, fmt.Errorf("property %q cannot be animated", t.Property)
		}
		d, err := time.ParseDuration(words[1])
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", words[1])
		}
		t.Duration = d
		if len(words) >= 3 {
			if _, ok := easings[words[2]]; !ok {
				return nil, fmt.Errorf("unknown easing %q", words[2])
			}
			t.Easing = words[2]
		}
		if len(words) == 4 {
			if t.Delay, err = time.ParseDuration(words[3]); err != nil {
				return nil, fmt.Errorf("invalid delay %q", words[3])
			}
		}
		out = append(out, t)
	}
	return func(s *ComputedStyle) { s.Transitions = out }, nil
}
