package rendergrid

import "log"

// stdLogger adapts the standard library's *log.Logger to the Logger
// interface so Buffer has a usable default without importing a specific
// third-party logging backend.
type stdLogger struct{ l *log.Logger }

func (s stdLogger) Printf(format string, args ...any) { s.l.Printf(format, args...) }

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// Buffer is the render buffer: a grid of cells that accumulates drawing
// operations and flushes them to a WindowSink as a minimal ordered
// sequence of cursor, print, and erase calls.
//
// Buffer is not safe for concurrent use. The model is single-threaded and
// cooperative: one goroutine draws, then flushes.
type Buffer struct {
	lines, cols int

	g     *grid
	pens  penTable
	texts textTable

	tr    transformState
	stack stateStack

	cursorSet  bool
	cursorLine int
	cursorCol  int

	curPen    Pen
	curPenSet bool

	logger Logger
}

// New constructs a render buffer of the given size. Both dimensions must
// be positive.
func New(lines, cols int) *Buffer {
	if lines <= 0 || cols <= 0 {
		panic("rendergrid: lines and cols must be positive")
	}
	b := &Buffer{
		lines:  lines,
		cols:   cols,
		g:      newGrid(lines, cols),
		logger: stdLogger{l: log.Default()},
	}
	b.resetTransform()
	return b
}

// Lines returns the buffer's construction-time row count.
func (b *Buffer) Lines() int { return b.lines }

// Cols returns the buffer's construction-time column count.
func (b *Buffer) Cols() int { return b.cols }

// SetLogger overrides the diagnostic logger used for recoverable
// conditions such as PenCollision. A nil logger silences
// diagnostics.
func (b *Buffer) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	b.logger = l
}

func (b *Buffer) resetTransform() {
	b.tr = transformState{haveClip: true, clip: NewRect(0, 0, b.lines, b.cols)}
}

// reset returns the buffer to its initial, post-construction state: empty
// interning tables, an all-Skip grid, no virtual cursor, no active pen, a
// full-grid clip, zero translation, and an empty state stack. Called
// implicitly at the end of FlushToWindow. Clear does not call it; Clear
// empties only the interning tables.
func (b *Buffer) reset() {
	b.g.resetRows()
	b.pens.reset()
	b.texts.reset()
	b.cursorSet = false
	b.curPenSet = false
	b.curPen = Pen{}
	b.stack = stateStack{}
	b.resetTransform()
}

func (b *Buffer) internPen(p Pen) int     { return b.pens.intern(p) }
func (b *Buffer) internText(s string) int { return b.texts.intern(s) }
