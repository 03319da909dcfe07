package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root receives the whole width×height area regardless of its own size
// properties; its margin still applies. Only dirty nodes, or nodes whose
// allocated slot moved, are recalculated (incremental layout).
//
// The returned reports list containers whose content was clipped because it
// did not fit and the container does not scroll on that axis.
func Calculate(root Layoutable, width, height int) []OverflowReport {
	if root == nil {
		return nil
	}
	c := &calculator{}
	c.node(root, NewRect(0, 0, width, height), 0)
	return c.reports
}

type calculator struct {
	reports []OverflowReport
}

// node computes the layout for a single node within the slot its parent
// allocated. The slot is the margin box.
func (c *calculator) node(n Layoutable, slot Rect, layer int) {
	// Dirty propagates up, so a clean node in the same slot has a clean subtree.
	prev := n.GetLayout()
	if !n.IsDirty() && prev.Slot == slot && prev.Layer == layer {
		return
	}

	style := n.LayoutStyle()

	region := slot.Shrink(style.Margin).TranslatePoint(style.Offset)
	content := region.Shrink(style.Box())

	l := Layout{
		Slot:        slot,
		Rect:        region,
		ContentRect: content,
		VirtualSize: content.Size(),
		Layer:       layer,
	}

	c.arrange(n, style, &l)

	n.SetLayout(l)
	n.SetDirty(false)
}

// placement is a child with the margin-box slot it was given, relative to
// the origin of the region its group was arranged in.
type placement struct {
	child  Layoutable
	slot   Rect
	layer  int
	origin Point
	docked bool
}

// arrange lays out the children of n inside l.ContentRect. Children are
// grouped by layer; each group gets the whole content region. Within a group
// docked children carve strips off the edges and the rest flow through the
// remainder according to the container's mode.
func (c *calculator) arrange(n Layoutable, style Style, l *Layout) {
	children := n.LayoutChildren()
	if len(children) == 0 {
		return
	}

	content := l.ContentRect
	order := newLayerOrder(style.Layers)
	groups := make(map[int][]Layoutable)

	for _, child := range children {
		cs := child.LayoutStyle()
		if cs.Hidden {
			hide(child)
			continue
		}
		idx := order.index(cs.LayerName())
		groups[idx] = append(groups[idx], child)
	}

	var placements []placement
	extent := Size{}

	for layer := 0; layer < order.len(); layer++ {
		group := groups[layer]
		if len(group) == 0 {
			continue
		}

		region := content
		var flow []Layoutable
		for _, child := range group {
			cs := child.LayoutStyle()
			if cs.Dock == DockNone {
				flow = append(flow, child)
				continue
			}
			slot := dockSlot(child, cs, &region)
			placements = append(placements, placement{child: child, slot: slot, layer: layer, docked: true})
		}
		if len(flow) == 0 {
			continue
		}

		var slots []Rect
		if style.Mode == Grid {
			slots = arrangeGrid(style, flow, region.Size())
		} else {
			slots = arrangeStack(style, flow, region.Size())
		}

		origin := region.Origin()
		for i, child := range flow {
			placements = append(placements, placement{child: child, slot: slots[i], layer: layer, origin: origin})
			if layer == order.index(DefaultLayer) {
				extent.Width = max(extent.Width, slots[i].Right()+origin.X-content.X)
				extent.Height = max(extent.Height, slots[i].Bottom()+origin.Y-content.Y)
			}
		}
	}

	l.VirtualSize = Size{
		Width:  max(extent.Width, content.Width),
		Height: max(extent.Height, content.Height),
	}

	requested := n.ScrollOffset()
	limit := l.MaxScroll()
	if style.OverflowX.Scrollable() {
		l.Scroll.X = min(max(requested.X, 0), limit.X)
	}
	if style.OverflowY.Scrollable() {
		l.Scroll.Y = min(max(requested.Y, 0), limit.Y)
	}

	clippedX := !style.OverflowX.Scrollable() && extent.Width > content.Width
	clippedY := !style.OverflowY.Scrollable() && extent.Height > content.Height
	if clippedX || clippedY {
		c.reports = append(c.reports, OverflowReport{Node: n, Need: extent, Have: content.Size()})
	}

	for _, p := range placements {
		slot := p.slot
		if !p.docked {
			slot = slot.Translate(p.origin.X-l.Scroll.X, p.origin.Y-l.Scroll.Y)
		}
		c.node(p.child, slot, p.layer)
	}
}

// hide gives a display:none node an empty layout.
func hide(n Layoutable) {
	n.SetLayout(Layout{})
	n.SetDirty(false)
}

// layerOrder maps layer names to stack indices. The default layer takes its
// declared position, or index 0 when the container does not list it. Names no
// container declared stack above the declared ones in first-seen order.
type layerOrder struct {
	names []string
	idx   map[string]int
}

func newLayerOrder(declared []string) *layerOrder {
	o := &layerOrder{idx: make(map[string]int)}
	hasDefault := false
	for _, name := range declared {
		if name == DefaultLayer {
			hasDefault = true
		}
	}
	if !hasDefault {
		o.add(DefaultLayer)
	}
	for _, name := range declared {
		o.add(name)
	}
	return o
}

func (o *layerOrder) add(name string) int {
	if i, ok := o.idx[name]; ok {
		return i
	}
	o.idx[name] = len(o.names)
	o.names = append(o.names, name)
	return o.idx[name]
}

func (o *layerOrder) index(name string) int {
	return o.add(name)
}

func (o *layerOrder) len() int {
	return len(o.names)
}
