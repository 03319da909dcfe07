package tui

import "slices"

// bridgeGap is the longest run of unchanged cells rewritten to join two
// changed runs. A cursor move costs at least six bytes, more than three
// narrow cells.
const bridgeGap = 3

// WriteOp writes Cells left to right starting at (X, Y). Continuation cells
// of wide characters are included and skipped by terminals on output.
type WriteOp struct {
	X, Y  int
	Cells []Cell
}

// Width returns the number of columns the op covers.
func (op WriteOp) Width() int {
	return len(op.Cells)
}

// Diff returns the writes that turn prev into next. When prev is nil or its
// size differs, full is true: the screen must be cleared and the returned
// ops repaint every non-blank row.
func Diff(prev, next *Frame) (ops []WriteOp, full bool) {
	if prev == nil || prev.width != next.width || prev.height != next.height {
		for y := 0; y < next.height; y++ {
			row := next.Row(y)
			end := len(row)
			for end > 0 && row[end-1].Equal(blankCell) {
				end--
			}
			if end == 0 {
				continue
			}
			ops = append(ops, WriteOp{X: 0, Y: y, Cells: slices.Clone(row[:end])})
		}
		return ops, true
	}

	for y := 0; y < next.height; y++ {
		ops = diffRow(ops, prev.Row(y), next.Row(y), y)
	}
	return ops, false
}

// diffRow appends the runs of changed cells in one row. A run never splits a
// wide character from its continuation.
func diffRow(ops []WriteOp, prev, next []Cell, y int) []WriteOp {
	start, end := -1, -1
	emit := func() {
		if start >= 0 {
			ops = append(ops, WriteOp{X: start, Y: y, Cells: slices.Clone(next[start:end])})
		}
	}

	for x := 0; x < len(next); x++ {
		if next[x].Equal(prev[x]) {
			continue
		}
		lo, hi := x, x+1
		if next[x].IsContinuation() && x > 0 {
			lo = x - 1
		}
		if next[x].Width == 2 && x+1 < len(next) {
			hi = x + 2
		}
		if start >= 0 && lo-end <= bridgeGap {
			end = max(end, hi)
		} else {
			emit()
			start, end = lo, hi
		}
		x = hi - 1
	}
	emit()
	return ops
}
