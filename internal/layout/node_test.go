package layout

// testNode is a minimal Layoutable used by the engine tests.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout
	dirty    bool
	scroll   Point

	layoutCalls int

	// Intrinsic content size; text wraps to maxWidth when wrap is set.
	contentW, contentH int
	wrap               bool
}

func newTestNode(style Style, children ...*testNode) *testNode {
	return &testNode{style: style, children: children, dirty: true}
}

func leaf(style Style, w, h int) *testNode {
	n := newTestNode(style)
	n.contentW, n.contentH = w, h
	return n
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l; n.layoutCalls++ }
func (n *testNode) GetLayout() Layout  { return n.layout }
func (n *testNode) IsDirty() bool      { return n.dirty }
func (n *testNode) SetDirty(d bool)    { n.dirty = d }
func (n *testNode) ScrollOffset() Point {
	return n.scroll
}

func (n *testNode) IntrinsicSize(maxWidth int) (int, int) {
	if n.wrap && maxWidth > 0 && n.contentW > maxWidth {
		lines := (n.contentW + maxWidth - 1) / maxWidth
		return maxWidth, lines * n.contentH
	}
	return n.contentW, n.contentH
}

// markAll marks the whole subtree dirty.
func (n *testNode) markAll() {
	n.dirty = true
	for _, c := range n.children {
		c.markAll()
	}
}

// styleWith returns DefaultStyle modified by fn.
func styleWith(fn func(*Style)) Style {
	s := DefaultStyle()
	if fn != nil {
		fn(&s)
	}
	return s
}
