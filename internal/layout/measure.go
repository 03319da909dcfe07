package layout

// measure returns the border-box size a node wants when at most maxWidth
// columns are available. Leaves report their own content through
// IntrinsicSize; containers aggregate their default-layer children bottom-up.
// Children on other layers overlay and do not contribute.
func measure(n Layoutable, maxWidth int) (width, height int) {
	style := n.LayoutStyle()
	if style.Hidden {
		return 0, 0
	}

	box := style.Box()
	inner := max(0, maxWidth-box.Horizontal())

	cw, ch := n.IntrinsicSize(inner)
	fw, fh := measureChildren(style, n.LayoutChildren(), inner)

	width = max(cw, fw) + box.Horizontal()
	height = max(ch, fh) + box.Vertical()

	width = clampSize(width, style.MinWidth, style.MaxWidth, maxWidth)
	height = clampSize(height, style.MinHeight, style.MaxHeight, height)
	return width, height
}

func measureChildren(style Style, children []Layoutable, inner int) (width, height int) {
	var flow []Layoutable
	var dockW, dockH int

	for _, child := range children {
		cs := child.LayoutStyle()
		if cs.Hidden || cs.LayerName() != DefaultLayer {
			continue
		}
		if cs.Dock == DockNone {
			flow = append(flow, child)
			continue
		}
		w, h := outerSize(child, inner)
		switch cs.Dock {
		case DockTop, DockBottom:
			dockH += h
			width = max(width, w)
		default:
			dockW += w
			height = max(height, h)
		}
	}

	switch style.Mode {
	case Horizontal:
		fw, fh := 0, 0
		for _, child := range flow {
			w, h := outerSize(child, inner)
			fw += w
			fh = max(fh, h)
		}
		width = max(width, fw+dockW)
		height = max(height, fh) + dockH

	case Grid:
		cols := max(1, style.GridCols)
		gutter := max(0, style.GridGutter)
		colW := split(inner-gutter*(cols-1), cols)
		cellW, gridH := 0, 0
		rowH := 0
		for i, child := range flow {
			cs := child.LayoutStyle()
			w, h := outerSize(child, colW[i%cols]-cs.Margin.Horizontal())
			cellW = max(cellW, w)
			rowH = max(rowH, h, 1)
			if i%cols == cols-1 || i == len(flow)-1 {
				gridH += rowH
				if i != len(flow)-1 {
					gridH += gutter
				}
				rowH = 0
			}
		}
		usedCols := min(cols, len(flow))
		gridW := 0
		if usedCols > 0 {
			gridW = cellW*usedCols + gutter*(usedCols-1)
		}
		width = max(width, gridW+dockW)
		height = max(height, gridH) + dockH

	default: // Vertical
		fw, fh := 0, 0
		for _, child := range flow {
			w, h := outerSize(child, inner)
			fw = max(fw, w)
			fh += h
		}
		width = max(width, fw+dockW)
		height = max(height, fh) + dockH
	}
	return width, height
}

// outerSize is a child's measured margin-box size inside a parent whose
// content is avail columns wide. Declared fixed and percent widths win over
// measured ones; percent heights have no definite basis here and measure.
func outerSize(child Layoutable, avail int) (width, height int) {
	cs := child.LayoutStyle()
	margin := cs.Margin

	w, h := measure(child, avail-margin.Horizontal())
	switch cs.Width.Unit {
	case UnitFixed, UnitPercent:
		w = clampSize(cs.Width.Resolve(avail, w), cs.MinWidth, cs.MaxWidth, avail)
		_, h = measure(child, w)
	}
	if cs.Height.Unit == UnitFixed {
		h = clampSize(cs.Height.Resolve(0, h), cs.MinHeight, cs.MaxHeight, h)
	}
	return w + margin.Horizontal(), h + margin.Vertical()
}
