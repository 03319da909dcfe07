package tui

// animatedProperties are the properties a transition can animate.
var animatedProperties = []string{"offset", "background", "color"}

// resolve returns the cascaded style of n, recomputing it when the cache is
// stale. A recompute that changes a property with a declared transition
// starts an animation from the value on screen: the running animation's
// current value if there is one, otherwise the previous cascaded value.
func (t *Tree) resolve(n *Node) ComputedStyle {
	version := t.sheet.Version()
	if n.styleValid && n.styleVersion == version {
		return n.style
	}

	var parent *ComputedStyle
	if p := n.Parent(); p != nil {
		ps := t.resolve(p)
		parent = &ps
	}
	style := t.sheet.Compute(t.Path(n), parent, n.inline)
	if n.styled {
		t.startTransitions(n, n.style, style)
	}
	n.style = style
	n.styleVersion = version
	n.styleValid = true
	n.styled = true
	return style
}

func (t *Tree) startTransitions(n *Node, old, next ComputedStyle) {
	for _, prop := range animatedProperties {
		key := animationKey(n.id, prop)
		tr, ok := next.Transition(prop)
		if !ok {
			t.anim.Cancel(key)
			continue
		}
		var from, to Animatable
		switch prop {
		case "offset":
			if old.Offset == next.Offset {
				continue
			}
			from, to = OffsetValue(old.Offset), OffsetValue(next.Offset)
		case "background":
			if old.Background.Equal(next.Background) {
				continue
			}
			from, to = old.Background, next.Background
		case "color":
			if old.Color.Equal(next.Color) {
				continue
			}
			from, to = old.Color, next.Color
		}
		if cur, ok := t.anim.Value(key); ok {
			from = cur
		}
		t.anim.Animate(key, from, to, tr.Duration, tr.Easing, tr.Delay)
	}
}

// Style returns the style n is drawn with: its cascaded style with running
// transitions applied. Detached nodes get the built-in defaults.
func (t *Tree) Style(n *Node) ComputedStyle {
	style := t.resolve(n)
	if !t.anim.Active() {
		return style
	}
	if v, ok := t.anim.Value(animationKey(n.id, "offset")); ok {
		if o, ok := v.(OffsetValue); ok {
			style.Offset = Point(o)
		}
	}
	if v, ok := t.anim.Value(animationKey(n.id, "background")); ok {
		if c, ok := v.(Color); ok {
			style.Background = c
		}
	}
	if v, ok := t.anim.Value(animationKey(n.id, "color")); ok {
		if c, ok := v.(Color); ok {
			style.Color = c
		}
	}
	return style
}

// ComputedStyle returns the style the node is drawn with.
func (n *Node) ComputedStyle() ComputedStyle {
	if n.tree == nil {
		return DefaultComputedStyle()
	}
	return n.tree.Style(n)
}
