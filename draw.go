package rendergrid

import "fmt"

// SkipAt marks the next length cells starting at (line, col) as
// deliberately untouched output. Out-of-range or fully-clipped calls are
// silent no-ops.
func (b *Buffer) SkipAt(line, col, length int) {
	outLine, outCol, outLen, _, ok := b.tr.transform(line, col, length)
	if !ok {
		return
	}
	b.g.makeSpan(outLine, outCol, outLen)
	b.g.setHead(outLine, outCol, outLen, Cell{State: StateSkip})
}

// TextAt prints text at (line, col) using pen. Out-of-range or
// fully-clipped calls are silent no-ops.
func (b *Buffer) TextAt(line, col int, text string, pen Pen) {
	width := DisplayWidth(text)
	outLine, outCol, outLen, srcOffset, ok := b.tr.transform(line, col, width)
	if !ok {
		return
	}
	penIdx := b.internPen(pen)
	textIdx := b.internText(text)
	b.g.makeSpan(outLine, outCol, outLen)
	b.g.setHead(outLine, outCol, outLen, Cell{
		State:   StateText,
		PenIdx:  penIdx,
		TextIdx: textIdx,
		TextOff: srcOffset,
	})
}

// EraseAt fills length columns starting at (line, col) with pen's
// background. Out-of-range or fully-clipped calls are silent no-ops.
func (b *Buffer) EraseAt(line, col, length int, pen Pen) {
	outLine, outCol, outLen, _, ok := b.tr.transform(line, col, length)
	if !ok {
		return
	}
	penIdx := b.internPen(pen)
	b.g.makeSpan(outLine, outCol, outLen)
	b.g.setHead(outLine, outCol, outLen, Cell{State: StateErase, PenIdx: penIdx})
}

// CharAt places a single codepoint at (line, col) with pen. It is
// equivalent to TextAt with a one-rune string, exposed separately so
// implementations may special-case single-character storage.
func (b *Buffer) CharAt(line, col int, r rune, pen Pen) {
	b.TextAt(line, col, string(r), pen)
}

// Clear empties the interning tables and fills every line with pen's
// background, without otherwise disturbing the cursor, clip, translation,
// or state stack.
func (b *Buffer) Clear(pen Pen) {
	b.pens.reset()
	b.texts.reset()
	for line := 0; line < b.lines; line++ {
		b.EraseAt(line, 0, b.cols, pen)
	}
}

// Goto sets the virtual cursor used by the relative drawing operations.
func (b *Buffer) Goto(line, col int) {
	b.cursorSet = true
	b.cursorLine = line
	b.cursorCol = col
}

// resolvePen implements the relative-operation pen rule: an explicit pen
// conflicts with an active stored pen; with no explicit pen, the stored
// pen (possibly zero-value) is used.
func (b *Buffer) resolvePen(explicit *Pen) (Pen, error) {
	if explicit != nil {
		if b.curPenSet {
			return Pen{}, ErrPenConflict
		}
		return *explicit, nil
	}
	return b.curPen, nil
}

// Text prints text at the virtual cursor and advances it by the text's
// display width. pen may be nil to use the active stored pen.
func (b *Buffer) Text(text string, pen *Pen) error {
	if !b.cursorSet {
		return wrapErr("Text", ErrNoCursor)
	}
	p, err := b.resolvePen(pen)
	if err != nil {
		return wrapErr("Text", err)
	}
	b.TextAt(b.cursorLine, b.cursorCol, text, p)
	b.cursorCol += DisplayWidth(text)
	return nil
}

// Erase fills length columns at the virtual cursor and advances it by
// length. pen may be nil to use the active stored pen.
func (b *Buffer) Erase(length int, pen *Pen) error {
	if !b.cursorSet {
		return wrapErr("Erase", ErrNoCursor)
	}
	if length < 0 {
		return wrapErr("Erase", ErrOutOfRange)
	}
	p, err := b.resolvePen(pen)
	if err != nil {
		return wrapErr("Erase", err)
	}
	b.EraseAt(b.cursorLine, b.cursorCol, length, p)
	b.cursorCol += length
	return nil
}

// Skip moves the virtual cursor forward by length, marking the skipped
// cells as deliberately untouched.
func (b *Buffer) Skip(length int) error {
	if !b.cursorSet {
		return wrapErr("Skip", ErrNoCursor)
	}
	if length < 0 {
		return wrapErr("Skip", ErrOutOfRange)
	}
	b.SkipAt(b.cursorLine, b.cursorCol, length)
	b.cursorCol += length
	return nil
}

// SkipTo moves the virtual cursor to col, inclusive, marking any forward
// span as skipped. If the cursor is already at or past col, it simply
// moves backward with no buffer change.
func (b *Buffer) SkipTo(col int) error {
	if !b.cursorSet {
		return wrapErr("SkipTo", ErrNoCursor)
	}
	if col <= b.cursorCol {
		b.cursorCol = col
		return nil
	}
	return b.Skip(col - b.cursorCol + 1)
}

// EraseTo erases from the virtual cursor to col, inclusive. If the cursor
// is already at or past col, it simply moves backward with no buffer
// change. pen may be nil to use the active stored pen.
func (b *Buffer) EraseTo(col int, pen *Pen) error {
	if !b.cursorSet {
		return wrapErr("EraseTo", ErrNoCursor)
	}
	if col <= b.cursorCol {
		b.cursorCol = col
		return nil
	}
	return b.Erase(col-b.cursorCol+1, pen)
}

// Clip narrows the active clip rectangle: the new active clip is the
// intersection of the current clip and rect (translated by the current
// translation offset). Calls cumulate; the state stack is the only
// widening path.
func (b *Buffer) Clip(rect Rect) {
	b.tr.applyClip(rect)
}

// Translate adds (dLine, dCol) to the running translation offset applied
// to every subsequent coordinate.
func (b *Buffer) Translate(dLine, dCol int) {
	b.tr.translate(dLine, dCol)
}

// SetPen sets the active stored pen used by relative operations that omit
// an explicit pen. If the top of the state stack remembers an ancestor
// pen, the active pen becomes that ancestor merged with p (p's attributes
// win); otherwise it becomes p directly. A nil p clears the active pen,
// subject to the same ancestor merge.
func (b *Buffer) SetPen(p *Pen) {
	var overlay Pen
	if p != nil {
		overlay = *p
	}

	if frame, ok := b.stack.top(); ok && frame.penSet {
		b.curPen = MergePen(frame.pen, overlay)
		b.curPenSet = true
		return
	}

	if p == nil {
		b.curPenSet = false
		b.curPen = Pen{}
		return
	}
	b.curPen = overlay
	b.curPenSet = true
}

// Save pushes a full state frame capturing the virtual cursor, clip
// rectangle, translation offset, and active pen.
func (b *Buffer) Save() {
	b.stack.push(b.snapshot(frameFull))
}

// SavePen pushes a pen-only frame capturing just the active pen.
func (b *Buffer) SavePen() {
	b.stack.push(b.snapshot(framePenOnly))
}

func (b *Buffer) snapshot(kind frameKind) stackFrame {
	f := stackFrame{kind: kind, pen: b.curPen, penSet: b.curPenSet}
	if kind == frameFull {
		f.cursorSet = b.cursorSet
		f.cursorLine = b.cursorLine
		f.cursorCol = b.cursorCol
		f.haveClip = b.tr.haveClip
		f.clip = b.tr.clip
		f.dLine = b.tr.dLine
		f.dCol = b.tr.dCol
	}
	return f
}

// Restore pops the most recently pushed frame and restores its pen; if
// the frame is full, it also restores the cursor, clip, and translation.
// Restore on an empty stack is a no-op.
func (b *Buffer) Restore() {
	f, ok := b.stack.pop()
	if !ok {
		return
	}
	b.curPen = f.pen
	b.curPenSet = f.penSet
	if f.kind == frameFull {
		b.cursorSet = f.cursorSet
		b.cursorLine = f.cursorLine
		b.cursorCol = f.cursorCol
		b.tr.haveClip = f.haveClip
		b.tr.clip = f.clip
		b.tr.dLine = f.dLine
		b.tr.dCol = f.dCol
	}
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
