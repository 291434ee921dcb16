package rendergrid

// transformState holds the clip rectangle and translation offset applied
// to every incoming coordinate before it reaches the grid.
type transformState struct {
	haveClip bool
	clip     Rect

	dLine, dCol int
}

// transform applies the translation offset then intersects against the
// clip rectangle. It returns ok=false if the result is fully outside the
// clip (including when no clip has ever been set — an unset clip means
// "fully invisible"). srcOffset reports how many columns
// were clipped off the caller's left edge.
func (t *transformState) transform(line, col, length int) (outLine, outCol, outLength, srcOffset int, ok bool) {
	if !t.haveClip {
		return 0, 0, 0, 0, false
	}
	line += t.dLine
	col += t.dCol

	if length < 0 {
		return 0, 0, 0, 0, false
	}

	reqStart := col
	reqEnd := col + length

	clipLine := t.clip
	if line < clipLine.Top() || line >= clipLine.Bottom() {
		return 0, 0, 0, 0, false
	}

	start := reqStart
	if start < clipLine.Left() {
		start = clipLine.Left()
	}
	end := reqEnd
	if end > clipLine.Right() {
		end = clipLine.Right()
	}
	if end <= start {
		return 0, 0, 0, 0, false
	}

	return line, start, end - start, start - reqStart, true
}

// clip cumulates a new clip rectangle: the active clip becomes the
// intersection of the active clip (translated into output space) with the
// caller's rect (also translated). Calls only ever narrow the clip; the
// stack is the sole widening path (see stack.go).
func (t *transformState) applyClip(rect Rect) {
	translated := rect.Translate(t.dLine, t.dCol)
	if !t.haveClip {
		t.haveClip = true
		t.clip = translated
		return
	}
	t.clip = t.clip.Intersect(translated)
}

// translate adds to the running translation offset.
func (t *transformState) translate(dLine, dCol int) {
	t.dLine += dLine
	t.dCol += dCol
}
