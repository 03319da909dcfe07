package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Slot is the margin box the parent allocated, before offset.
	// A clean node whose slot is unchanged is not recalculated.
	Slot Rect

	// Rect is the border box: the node's region on screen, offset applied.
	Rect Rect

	// ContentRect is Rect minus border and padding: the area where children
	// and widget content are placed.
	ContentRect Rect

	// VirtualSize is the extent of arranged flow children measured from the
	// content origin. It exceeds ContentRect's size when content overflows.
	VirtualSize Size

	// Scroll is the scroll offset applied to children, clamped to the
	// scrollable range.
	Scroll Point

	// Layer is the stack index of this node's layer within its parent.
	Layer int
}

// MaxScroll returns the largest scroll offset that keeps content in view.
func (l Layout) MaxScroll() Point {
	return Point{
		X: max(0, l.VirtualSize.Width-l.ContentRect.Width),
		Y: max(0, l.VirtualSize.Height-l.ContentRect.Height),
	}
}

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface, enabling custom implementations.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IsDirty returns whether this element needs layout recalculation.
	IsDirty() bool

	// SetDirty marks this element as needing recalculation.
	SetDirty(dirty bool)

	// IntrinsicSize returns the natural content-box size of the element's own
	// content (not its children) when at most maxWidth columns are available.
	IntrinsicSize(maxWidth int) (width, height int)

	// ScrollOffset returns the requested scroll position. The engine clamps it.
	ScrollOffset() Point
}

// OverflowReport records a container whose flow children did not fit and were
// clipped rather than scrolled.
type OverflowReport struct {
	Node Layoutable
	Need Size
	Have Size
}
