package rendergrid

import "strings"

// FlushToWindow serializes the buffer's current content to sink as a
// minimal, row-major, left-to-right sequence of Goto/Print/EraseCh calls,
// then resets the buffer to its initial state.
func (b *Buffer) FlushToWindow(sink WindowSink) {
	for line := 0; line < b.lines; line++ {
		b.flushLine(sink, line)
	}
	b.reset()
}

func (b *Buffer) flushLine(sink WindowSink, line int) {
	row := b.g.rows[line]

	physColSet := false
	physCol := 0

	col := 0
	for col < b.cols {
		cell := row[col]

		if cell.State == StateSkip {
			col += cell.Len()
			continue
		}

		if !physColSet || physCol < col {
			sink.Goto(line, col)
			physCol = col
			physColSet = true
		}

		switch cell.State {
		case StateText:
			text := b.texts.get(cell.TextIdx)
			slice := substringByDisplayColumns(text, cell.TextOff, cell.Len())
			sink.Print(slice, b.pens.get(cell.PenIdx))
			physCol += cell.Len()
			col += cell.Len()

		case StateErase:
			length := cell.Len()
			nextCol := col + length
			moveEnd := nextCol < b.cols && row[nextCol].State != StateSkip
			sink.EraseCh(length, moveEnd, b.pens.get(cell.PenIdx))
			physCol += length
			col = nextCol
			if !moveEnd {
				physColSet = false
			}

		case StateLine:
			count := b.coalesceLine(row, col)
			var glyphs strings.Builder
			for i := 0; i < count; i++ {
				glyphs.WriteRune(GlyphForMask(row[col+i].LineMask))
			}
			sink.Print(glyphs.String(), b.pens.get(cell.PenIdx))
			physCol += count
			col += count

		default:
			invariantViolation("continuation cell encountered as flush head")
		}
	}
}

// coalesceLine returns how many consecutive Line cells starting at col
// share the same pen, so they can be merged into a single Print call.
func (b *Buffer) coalesceLine(row []Cell, col int) int {
	penIdx := row[col].PenIdx
	count := 1
	for col+count < len(row) && row[col+count].State == StateLine && row[col+count].PenIdx == penIdx {
		count++
	}
	return count
}
