package rendergrid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the East-Asian-width-aware column count of s.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// graphemeColumnOffsets walks s grapheme cluster by grapheme cluster,
// returning the byte offset and starting display column of each cluster,
// plus a final sentinel entry at (len(s), totalWidth). Used to find safe
// split points that never land inside a wide glyph.
func graphemeColumnOffsets(s string) (byteOffsets []int, columns []int) {
	col := 0
	byteOff := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		byteOffsets = append(byteOffsets, byteOff)
		columns = append(columns, col)
		cluster := g.Str()
		col += runewidth.StringWidth(cluster)
		byteOff += len(cluster)
	}
	byteOffsets = append(byteOffsets, byteOff)
	columns = append(columns, col)
	return byteOffsets, columns
}

// columnToByteOffset finds the byte offset of the grapheme-cluster boundary
// at or immediately before the given display column. If col lands strictly
// inside a wide glyph, it rounds down to the glyph's starting column rather
// than split mid-glyph. ok is false if col is negative.
func columnToByteOffset(s string, col int) (byteOff int, actualCol int, ok bool) {
	if col < 0 {
		return 0, 0, false
	}
	if col == 0 {
		return 0, 0, true
	}
	offsets, cols := graphemeColumnOffsets(s)
	for i := len(cols) - 1; i >= 0; i-- {
		if cols[i] <= col {
			return offsets[i], cols[i], true
		}
	}
	return 0, 0, true
}

// substringByDisplayColumns returns the slice of s spanning display columns
// [startCol, startCol+length), rounding both edges down to grapheme
// boundaries per columnToByteOffset.
func substringByDisplayColumns(s string, startCol, length int) string {
	startByte, _, ok := columnToByteOffset(s, startCol)
	if !ok {
		return ""
	}
	endByte, _, ok := columnToByteOffset(s, startCol+length)
	if !ok || endByte > len(s) {
		endByte = len(s)
	}
	if endByte < startByte {
		endByte = startByte
	}
	return s[startByte:endByte]
}
