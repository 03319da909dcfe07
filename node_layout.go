package tui

// LayoutStyle implements Layoutable.
func (n *Node) LayoutStyle() LayoutStyle {
	return n.ComputedStyle().LayoutStyle()
}

// LayoutChildren implements Layoutable.
func (n *Node) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// SetLayout implements Layoutable. The clamped scroll offset is kept so a
// request past the end settles on the last valid position.
func (n *Node) SetLayout(l LayoutResult) {
	n.layout = l
	n.scroll = l.Scroll
}

// GetLayout implements Layoutable.
func (n *Node) GetLayout() LayoutResult {
	return n.layout
}

// IsDirty implements Layoutable.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty implements Layoutable.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}

// IntrinsicSize implements Layoutable by measuring the node's widget.
func (n *Node) IntrinsicSize(maxWidth int) (width, height int) {
	if n.widget == nil {
		return 0, 0
	}
	style := n.ComputedStyle()
	if m, ok := n.widget.(Measurer); ok {
		return m.IntrinsicSize(maxWidth, style)
	}
	r, err := safePaint(n.widget, Size{Width: maxWidth}, style)
	if err != nil || r == nil {
		return 0, 0
	}
	return measureRenderable(r, maxWidth)
}

// measureRenderable renders r at the narrowest width it fits in and reports
// the size of the result.
func measureRenderable(r Renderable, maxWidth int) (width, height int) {
	w := maxWidth
	if m, ok := r.(Measurable); ok {
		w = min(m.Measure(maxWidth).Max, maxWidth)
	}
	lines, err := safeRenderLines(r, w)
	if err != nil {
		return 0, 0
	}
	for _, l := range lines {
		width = max(width, l.Width())
	}
	return min(width, maxWidth), len(lines)
}

// Rect returns the node's region on screen.
func (n *Node) Rect() Rect {
	return n.layout.Rect
}

// ContentRect returns the region inside border and padding.
func (n *Node) ContentRect() Rect {
	return n.layout.ContentRect
}

// VirtualSize returns the extent of the node's flow children.
func (n *Node) VirtualSize() Size {
	return n.layout.VirtualSize
}

// ScrollOffset implements Layoutable. It returns the requested offset until
// the next layout clamps it.
func (n *Node) ScrollOffset() Point {
	return n.scroll
}

// MaxScroll returns the largest scroll offset as of the last layout.
func (n *Node) MaxScroll() Point {
	return n.layout.MaxScroll()
}

// ScrollTo requests a scroll offset. Layout clamps it to the scrollable
// range; axes whose overflow is hidden stay at zero.
func (n *Node) ScrollTo(x, y int) {
	p := Point{X: x, Y: y}
	if p == n.scroll {
		return
	}
	n.scroll = p
	n.MarkDirty()
}

// ScrollBy moves the scroll offset by (dx, dy).
func (n *Node) ScrollBy(dx, dy int) {
	n.ScrollTo(n.scroll.X+dx, n.scroll.Y+dy)
}

// ScrollIntoView scrolls every scrollable ancestor as little as possible so
// that the node's region is visible. When the region is larger than a
// viewport its top-left corner wins.
func (n *Node) ScrollIntoView() {
	r := n.layout.Rect
	for a := n.Parent(); a != nil; a = a.Parent() {
		style := a.ComputedStyle()
		view := a.layout.ContentRect
		dx, dy := 0, 0
		if style.OverflowX.Scrollable() {
			dx = revealDelta(r.X, r.Right(), view.X, view.Right())
		}
		if style.OverflowY.Scrollable() {
			dy = revealDelta(r.Y, r.Bottom(), view.Y, view.Bottom())
		}
		if dx != 0 || dy != 0 {
			a.ScrollBy(dx, dy)
			r = r.Translate(-dx, -dy)
		}
	}
}

// revealDelta returns how far to scroll so [lo, hi) lies inside
// [viewLo, viewHi), preferring to show lo.
func revealDelta(lo, hi, viewLo, viewHi int) int {
	switch {
	case lo < viewLo:
		return lo - viewLo
	case hi > viewHi:
		return min(hi-viewHi, lo-viewLo)
	}
	return 0
}
