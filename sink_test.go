package rendergrid

import "fmt"

// recordedCall is one call a fakeSink observed, stringified for easy
// comparison in table-driven tests.
type recordedCall string

// fakeSink is an in-memory WindowSink that records every call it receives,
// for asserting the exact ordered sequence FlushToWindow emits.
type fakeSink struct {
	calls []recordedCall
	line  int
	col   int
}

func (s *fakeSink) Goto(line, col int) {
	s.line, s.col = line, col
	s.calls = append(s.calls, recordedCall(fmt.Sprintf("goto(%d,%d)", line, col)))
}

func (s *fakeSink) Print(text string, pen Pen) Position {
	s.calls = append(s.calls, recordedCall(fmt.Sprintf("print(%q)", text)))
	n := DisplayWidth(text)
	s.col += n
	return Position{Columns: n}
}

func (s *fakeSink) EraseCh(length int, moveEnd bool, pen Pen) Position {
	s.calls = append(s.calls, recordedCall(fmt.Sprintf("erase(%d,%v)", length, moveEnd)))
	s.col += length
	return Position{Columns: length}
}
