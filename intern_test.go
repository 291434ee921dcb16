package rendergrid

import "testing"

func TestPenTableDedupesStructurallyEqualPens(t *testing.T) {
	var t1 penTable
	a := NewPen(WithFg(StandardColor(1)))
	b := NewPen(WithFg(StandardColor(1)))

	i1 := t1.intern(a)
	i2 := t1.intern(b)
	if i1 != i2 {
		t.Fatalf("structurally equal pens should share an index, got %d and %d", i1, i2)
	}
	if len(t1.pens) != 1 {
		t.Fatalf("expected 1 stored pen, got %d", len(t1.pens))
	}
}

func TestPenTableKeepsDistinctPensSeparate(t *testing.T) {
	var t1 penTable
	i1 := t1.intern(NewPen(WithFg(StandardColor(1))))
	i2 := t1.intern(NewPen(WithFg(StandardColor(2))))
	if i1 == i2 {
		t.Fatal("distinct pens must not collapse to the same index")
	}
}

func TestPenTableResetClearsEntries(t *testing.T) {
	var t1 penTable
	t1.intern(NewPen(WithBold(true)))
	t1.reset()
	if len(t1.pens) != 0 {
		t.Fatalf("expected empty table after reset, got %d entries", len(t1.pens))
	}
}

func TestTextTableNeverDedupes(t *testing.T) {
	var tt textTable
	i1 := tt.intern("same")
	i2 := tt.intern("same")
	if i1 == i2 {
		t.Fatal("identical text must still get distinct entries")
	}
}
