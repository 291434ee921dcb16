package rendergrid

import "strings"

// Dump renders the buffer's current text content as plain lines, ignoring
// pens (Line cells render as their box-drawing glyph; Skip and Erase cells
// as spaces). It does not
// consult or mutate interning tables beyond reading them, and is intended
// for debugging and tests, not production rendering — production
// rendering always goes through FlushToWindow.
func (b *Buffer) Dump() string {
	var out strings.Builder
	for line := 0; line < b.lines; line++ {
		if line > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(b.dumpLine(line))
	}
	return out.String()
}

func (b *Buffer) dumpLine(line int) string {
	row := b.g.rows[line]
	var sb strings.Builder
	col := 0
	for col < b.cols {
		cell := row[col]
		switch cell.State {
		case StateSkip:
			sb.WriteString(strings.Repeat(" ", cell.Len()))
			col += cell.Len()
		case StateText:
			text := b.texts.get(cell.TextIdx)
			sb.WriteString(substringByDisplayColumns(text, cell.TextOff, cell.Len()))
			col += cell.Len()
		case StateErase:
			sb.WriteString(strings.Repeat(" ", cell.Len()))
			col += cell.Len()
		case StateLine:
			sb.WriteRune(GlyphForMask(cell.LineMask))
			col++
		default:
			invariantViolation("continuation cell encountered as dump head")
		}
	}
	return sb.String()
}
