package rendergrid

// LineCell ORs bits into the line mask of the cell at (line, col),
// converting it to a Line cell first if it isn't one already. If the cell
// is already a Line cell under a different pen, that is a pen collision:
// a recoverable diagnostic is logged, the mask resets to 0, and the new
// pen replaces the old before bits are applied.
func (b *Buffer) LineCell(line, col int, bits uint8, pen Pen) {
	outLine, outCol, _, _, ok := b.tr.transform(line, col, 1)
	if !ok {
		return
	}
	penIdx := b.internPen(pen)

	cell := b.g.rows[outLine][outCol]
	switch {
	case cell.State != StateLine:
		b.g.makeSpan(outLine, outCol, 1)
		cell = Cell{State: StateLine, PenIdx: penIdx}
	case cell.PenIdx != penIdx:
		b.logger.Printf("rendergrid: pen collision at line %d col %d; resetting line mask", line, col)
		cell.LineMask = 0
		cell.PenIdx = penIdx
	}
	cell.LineMask |= bits
	b.g.setHead(outLine, outCol, 1, cell)
}

// HLineAt draws a horizontal line segment on line across [start, end]
// (inclusive) at the given style weight, applying end caps per the caps
// bitmask (CapStart/CapEnd/CapBoth).
func (b *Buffer) HLineAt(line, start, end, style int, pen Pen, caps int) {
	if end < start {
		start, end = end, start
	}
	for col := start; col <= end; col++ {
		var east, west int
		if col < end {
			east = style
		} else if caps&CapEnd != 0 {
			east = style
		}
		if col > start {
			west = style
		} else if caps&CapStart != 0 {
			west = style
		}
		b.LineCell(line, col, packMask(LineNone, east, LineNone, west), pen)
	}
}

// VLineAt draws a vertical line segment in col across [start, end]
// (inclusive) on the given rows, the transpose of HLineAt.
func (b *Buffer) VLineAt(col, start, end, style int, pen Pen, caps int) {
	if end < start {
		start, end = end, start
	}
	for line := start; line <= end; line++ {
		var south, north int
		if line < end {
			south = style
		} else if caps&CapEnd != 0 {
			south = style
		}
		if line > start {
			north = style
		} else if caps&CapStart != 0 {
			north = style
		}
		b.LineCell(line, col, packMask(north, LineNone, south, LineNone), pen)
	}
}
