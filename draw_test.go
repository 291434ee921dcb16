package rendergrid

import (
	"errors"
	"testing"
)

func TestTextWithoutCursorReturnsErrNoCursor(t *testing.T) {
	b := New(1, 10)
	err := b.Text("hi", nil)
	if !errors.Is(err, ErrNoCursor) {
		t.Fatalf("got %v, want ErrNoCursor", err)
	}
}

func TestTextExplicitPenConflictsWithActiveStoredPen(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 0)
	stored := NewPen(WithFg(StandardColor(1)))
	b.SetPen(&stored)

	explicit := NewPen(WithFg(StandardColor(2)))
	err := b.Text("hi", &explicit)
	if !errors.Is(err, ErrPenConflict) {
		t.Fatalf("got %v, want ErrPenConflict", err)
	}
}

func TestTextAdvancesCursorByDisplayWidth(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 0)
	if err := b.Text("hi", nil); err != nil {
		t.Fatal(err)
	}
	if b.cursorCol != 2 {
		t.Fatalf("got cursor col %d, want 2", b.cursorCol)
	}
}

func TestSkipAdvancesCursorWithoutTouchingPriorContent(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 0)
	if err := b.Skip(3); err != nil {
		t.Fatal(err)
	}
	if b.cursorCol != 3 {
		t.Fatalf("got cursor col %d, want 3", b.cursorCol)
	}
	if b.g.rows[0][0].State != StateSkip {
		t.Fatalf("expected skipped cells to remain Skip, got %+v", b.g.rows[0][0])
	}
}

func TestSkipNegativeLengthIsOutOfRange(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 0)
	err := b.Skip(-1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
}

func TestSkipToMovesBackwardWithoutBufferChange(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 5)
	if err := b.SkipTo(2); err != nil {
		t.Fatal(err)
	}
	if b.cursorCol != 2 {
		t.Fatalf("got cursor col %d, want 2", b.cursorCol)
	}
	if b.g.rows[0][0].State != StateSkip || b.g.rows[0][0].Len() != 10 {
		t.Fatalf("backward SkipTo must not touch the buffer, got %+v", b.g.rows[0][0])
	}
}

func TestEraseToErasesInclusiveOfCol(t *testing.T) {
	b := New(1, 10)
	b.Goto(0, 0)
	if err := b.EraseTo(4, nil); err != nil {
		t.Fatal(err)
	}
	if b.cursorCol != 5 {
		t.Fatalf("got cursor col %d, want 5 (inclusive of col 4)", b.cursorCol)
	}
	if b.g.rows[0][0].State != StateErase || b.g.rows[0][0].Len() != 5 {
		t.Fatalf("got %+v", b.g.rows[0][0])
	}
}

func TestOutOfRangeDrawIsASilentNoop(t *testing.T) {
	b := New(1, 10)
	b.TextAt(0, 20, "unreachable", NewPen())
	if b.g.rows[0][0].State != StateSkip || b.g.rows[0][0].Len() != 10 {
		t.Fatalf("out-of-range TextAt must be a no-op, got %+v", b.g.rows[0][0])
	}
}
