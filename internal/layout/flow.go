package layout

// stackItem holds intermediate sizing state for one flow child.
// Sizes are border-box; margins are kept separately.
type stackItem struct {
	main, cross             int
	mainMargin, crossMargin int
	fr                      float64
}

// arrangeStack places flow children in a vertical or horizontal stack within
// an area of the given size. Returned slots are margin boxes relative to the
// area origin. Children that do not fit keep their size and run past the end;
// the caller clips or scrolls.
func arrangeStack(parent Style, flow []Layoutable, area Size) []Rect {
	vertical := parent.Mode != Horizontal

	mainAvail, crossAvail := area.Height, area.Width
	if !vertical {
		mainAvail, crossAvail = crossAvail, mainAvail
	}

	items := make([]stackItem, len(flow))
	used := 0
	totalFr := 0.0

	for i, child := range flow {
		cs := child.LayoutStyle()
		it := &items[i]

		if vertical {
			it.mainMargin, it.crossMargin = cs.Margin.Vertical(), cs.Margin.Horizontal()
			it.cross = sizeOnAxis(cs.Width, cs.MinWidth, cs.MaxWidth, crossAvail, it.crossMargin, func() int {
				w, _ := measure(child, crossAvail-it.crossMargin)
				return w
			})
			if cs.Height.IsFraction() {
				it.fr = cs.Height.Amount
			} else {
				it.main = sizeOnAxis(cs.Height, cs.MinHeight, cs.MaxHeight, mainAvail, it.mainMargin, func() int {
					_, h := measure(child, it.cross)
					return h
				})
			}
		} else {
			it.mainMargin, it.crossMargin = cs.Margin.Horizontal(), cs.Margin.Vertical()
			if cs.Width.IsFraction() {
				it.fr = cs.Width.Amount
			} else {
				it.main = sizeOnAxis(cs.Width, cs.MinWidth, cs.MaxWidth, mainAvail, it.mainMargin, func() int {
					w, _ := measure(child, mainAvail-it.mainMargin)
					return w
				})
			}
		}

		used += it.main + it.mainMargin
		totalFr += it.fr
	}

	// Fractional children share whatever the others (and all margins) left over.
	if totalFr > 0 {
		remaining := max(0, mainAvail-used)
		weights := make([]float64, 0, len(items))
		for i := range items {
			if items[i].fr > 0 {
				weights = append(weights, items[i].fr)
			}
		}
		shares := distribute(remaining, weights)
		k := 0
		for i, child := range flow {
			if items[i].fr <= 0 {
				continue
			}
			cs := child.LayoutStyle()
			minV, maxV := cs.MinHeight, cs.MaxHeight
			if !vertical {
				minV, maxV = cs.MinWidth, cs.MaxWidth
			}
			items[i].main = clampSize(shares[k], minV, maxV, mainAvail)
			k++
		}
	}

	// Horizontal cross size (height) depends on the resolved width.
	if !vertical {
		for i, child := range flow {
			cs := child.LayoutStyle()
			it := &items[i]
			it.cross = sizeOnAxis(cs.Height, cs.MinHeight, cs.MaxHeight, crossAvail, it.crossMargin, func() int {
				_, h := measure(child, it.main)
				return h
			})
		}
	}

	total := 0
	for i := range items {
		total += items[i].main + items[i].mainMargin
	}

	mainAlign, crossAlign := int(parent.AlignV), int(parent.AlignH)
	if !vertical {
		mainAlign, crossAlign = int(parent.AlignH), int(parent.AlignV)
	}

	slots := make([]Rect, len(flow))
	pos := alignOffset(mainAlign, mainAvail-total)
	for i := range items {
		it := items[i]
		mainOuter := it.main + it.mainMargin
		crossOuter := it.cross + it.crossMargin
		crossPos := alignOffset(crossAlign, crossAvail-crossOuter)
		if vertical {
			slots[i] = Rect{X: crossPos, Y: pos, Width: crossOuter, Height: mainOuter}
		} else {
			slots[i] = Rect{X: pos, Y: crossPos, Width: mainOuter, Height: crossOuter}
		}
		pos += mainOuter
	}
	return slots
}

// arrangeGrid places flow children into equal columns. Rows either split the
// area evenly (when the parent declares a row count) or take the tallest
// intrinsic height of the children in that row.
func arrangeGrid(parent Style, flow []Layoutable, area Size) []Rect {
	cols := max(1, parent.GridCols)
	gutter := max(0, parent.GridGutter)
	rows := (len(flow) + cols - 1) / cols

	colWidths := split(area.Width-gutter*(cols-1), cols)

	rowHeights := make([]int, rows)
	if parent.GridRows > 0 {
		base := split(area.Height-gutter*(parent.GridRows-1), parent.GridRows)
		for r := range rowHeights {
			rowHeights[r] = base[min(r, len(base)-1)]
		}
	} else {
		for i, child := range flow {
			r, col := i/cols, i%cols
			cs := child.LayoutStyle()
			h := cs.Height.Resolve(area.Height, -1)
			if h < 0 {
				_, h = measure(child, colWidths[col]-cs.Margin.Horizontal())
			}
			rowHeights[r] = max(rowHeights[r], h+cs.Margin.Vertical(), 1)
		}
	}

	slots := make([]Rect, len(flow))
	y := 0
	for r := 0; r < rows; r++ {
		x := 0
		for col := 0; col < cols; col++ {
			i := r*cols + col
			if i >= len(flow) {
				break
			}
			slots[i] = Rect{X: x, Y: y, Width: colWidths[col], Height: rowHeights[r]}
			x += colWidths[col] + gutter
		}
		y += rowHeights[r] + gutter
	}
	return slots
}

// dockSlot computes the margin box of a docked child and carves it off region.
// On the dock axis, auto and fractional sizes both mean intrinsic size.
func dockSlot(child Layoutable, cs Style, region *Rect) Rect {
	margin := cs.Margin
	switch cs.Dock {
	case DockTop, DockBottom:
		w := sizeOnAxis(cs.Width, cs.MinWidth, cs.MaxWidth, region.Width, margin.Horizontal(), func() int {
			w, _ := measure(child, region.Width-margin.Horizontal())
			return w
		})
		h := dockMain(cs.Height, cs.MinHeight, cs.MaxHeight, region.Height, func() int {
			_, h := measure(child, w)
			return h
		})
		outer := min(h+margin.Vertical(), region.Height)
		slot := Rect{X: region.X, Y: region.Y, Width: w + margin.Horizontal(), Height: outer}
		if cs.Dock == DockBottom {
			slot.Y = region.Bottom() - outer
		} else {
			region.Y += outer
		}
		region.Height -= outer
		return slot

	default: // DockLeft, DockRight
		w := dockMain(cs.Width, cs.MinWidth, cs.MaxWidth, region.Width, func() int {
			w, _ := measure(child, region.Width-margin.Horizontal())
			return w
		})
		h := sizeOnAxis(cs.Height, cs.MinHeight, cs.MaxHeight, region.Height, margin.Vertical(), func() int {
			return max(0, region.Height-margin.Vertical())
		})
		outer := min(w+margin.Horizontal(), region.Width)
		slot := Rect{X: region.X, Y: region.Y, Width: outer, Height: h + margin.Vertical()}
		if cs.Dock == DockRight {
			slot.X = region.Right() - outer
		} else {
			region.X += outer
		}
		region.Width -= outer
		return slot
	}
}

func dockMain(v, minV, maxV Value, avail int, measured func() int) int {
	var size int
	switch v.Unit {
	case UnitFixed, UnitPercent:
		size = v.Resolve(avail, 0)
	default:
		size = measured()
	}
	return clampSize(size, minV, maxV, avail)
}

// sizeOnAxis resolves a border-box dimension. Fixed and percent resolve
// against avail (the parent's content size on this axis); auto measures
// content; a fraction fills what is left after the margin.
func sizeOnAxis(v, minV, maxV Value, avail, margin int, measured func() int) int {
	var size int
	switch v.Unit {
	case UnitFixed, UnitPercent:
		size = v.Resolve(avail, 0)
	case UnitAuto:
		size = measured()
	default:
		size = avail - margin
	}
	return clampSize(size, minV, maxV, avail)
}

// clampSize applies min/max constraints. If min exceeds max, min wins
// (matches CSS behavior).
func clampSize(v int, minV, maxV Value, avail int) int {
	if maxV.Unit == UnitFixed || maxV.Unit == UnitPercent {
		v = min(v, maxV.Resolve(avail, v))
	}
	v = max(v, minV.Resolve(avail, 0))
	return max(0, v)
}

// alignOffset returns the start offset for placement mode 0 (start),
// 1 (center) or 2 (end) given the free space. Center leaves any odd cell
// after the content. Negative free space never produces a negative offset.
func alignOffset(mode int, free int) int {
	if free <= 0 {
		return 0
	}
	switch mode {
	case 1:
		return free / 2
	case 2:
		return free
	default:
		return 0
	}
}

// split divides total into n near-equal parts; the first total%n parts get
// one extra cell.
func split(total, n int) []int {
	total = max(0, total)
	parts := make([]int, n)
	if n == 0 {
		return parts
	}
	base, rem := total/n, total%n
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}

// distribute divides total proportionally to weights, handing rounding
// remainders out one cell at a time from the left.
func distribute(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 || total <= 0 {
		return shares
	}
	given := 0
	for i, w := range weights {
		shares[i] = int(float64(total) * w / sum)
		given += shares[i]
	}
	for i := 0; given < total; i = (i + 1) % len(shares) {
		shares[i]++
		given++
	}
	return shares
}
