package tui

import (
	"fmt"
	"slices"

	"github.com/grindlemire/tuicss/internal/layout"
)

// Layout recomputes the layout of the tree for a screen of size. Only dirty
// subtrees are recalculated. Containers whose content did not fit are
// reported as LayoutErrors.
func (t *Tree) Layout(size Size) {
	if t.root == nil {
		return
	}
	for _, r := range layout.Calculate(t.root, size.Width, size.Height) {
		id := ""
		if n, ok := r.Node.(*Node); ok {
			id = n.id
		}
		t.report(&LayoutError{
			NodeID: id,
			Reason: fmt.Sprintf("content %dx%d clipped to %dx%d", r.Need.Width, r.Need.Height, r.Have.Width, r.Have.Height),
		})
	}
}

// Render lays out the tree and paints it into a new frame of size.
func (t *Tree) Render(size Size) *Frame {
	f := NewFrame(size.Width, size.Height)
	t.Layout(size)
	t.Compose(f)
	return f
}

// Compose paints the laid out tree into f. Nodes paint in tree order except
// that siblings are ordered by layer, so overlays cover base content.
func (t *Tree) Compose(f *Frame) {
	if t.root == nil {
		return
	}
	t.compose(f.Canvas(), t.root, f.Rect())
}

// compose paints n and its subtree, clipped to clip.
func (t *Tree) compose(c *Canvas, n *Node, clip Rect) {
	style := t.Style(n)
	if !style.Display {
		return
	}
	t.paintNode(c.Within(clip.Intersect(n.layout.Rect)), n, style)

	if len(n.children) == 0 {
		return
	}
	inner := clip.Intersect(n.layout.ContentRect)
	children := slices.Clone(n.children)
	slices.SortStableFunc(children, func(a, b *Node) int {
		return a.layout.Layer - b.layout.Layer
	})
	for _, child := range children {
		childClip := inner
		if layer := t.Style(child).Layer; layer != "" && layer != DefaultLayer {
			childClip = clip
		}
		t.compose(c, child, childClip)
	}
}
