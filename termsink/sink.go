// Package termsink provides a rendergrid.WindowSink that drives a real
// terminal over an io.Writer using ANSI escape sequences, plus a small
// raw-mode/size-detection helper built on golang.org/x/term for use by
// interactive callers.
package termsink

import (
	"fmt"
	"io"
	"strings"

	"github.com/phroun/rendergrid"
)

// Sink is a rendergrid.WindowSink that batches ANSI escape sequences into
// an internal buffer and writes them out on Flush: one strings.Builder
// accumulation, one Write at the end of a frame.
type Sink struct {
	w   io.Writer
	out strings.Builder
}

// New creates a Sink writing ANSI sequences to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Goto moves the cursor to (line, col), 1-indexed in the underlying ANSI
// sequence (CUP), zero-indexed per the rendergrid.WindowSink contract.
func (s *Sink) Goto(line, col int) {
	fmt.Fprintf(&s.out, "\x1b[%d;%dH", line+1, col+1)
}

// Print writes text with pen's attributes applied, and returns how many
// columns were printed.
func (s *Sink) Print(text string, pen rendergrid.Pen) rendergrid.Position {
	s.applyPen(pen)
	s.out.WriteString(text)
	return rendergrid.Position{Columns: rendergrid.DisplayWidth(text)}
}

// EraseCh fills length columns with pen's background via the ANSI ECH
// (erase character) sequence. ECH leaves the terminal cursor where it was,
// so when moveEnd is set the sink also moves the cursor forward (CUF) to
// the end of the erased run, where the caller (Buffer) expects it.
func (s *Sink) EraseCh(length int, moveEnd bool, pen rendergrid.Pen) rendergrid.Position {
	s.applyPen(pen)
	fmt.Fprintf(&s.out, "\x1b[%dX", length)
	if moveEnd && length > 0 {
		fmt.Fprintf(&s.out, "\x1b[%dC", length)
	}
	return rendergrid.Position{Columns: length}
}

func (s *Sink) applyPen(pen rendergrid.Pen) {
	attrs := pen.Attributes()
	if len(attrs) == 0 {
		return
	}
	var codes []string
	if fg, ok := attrs["fg"].(rendergrid.Color); ok {
		codes = append(codes, fg.ToSGRCode(true))
	}
	if bg, ok := attrs["bg"].(rendergrid.Color); ok {
		codes = append(codes, bg.ToSGRCode(false))
	}
	if b, ok := attrs["b"].(bool); ok && b {
		codes = append(codes, "1")
	}
	if i, ok := attrs["i"].(bool); ok && i {
		codes = append(codes, "3")
	}
	if u, ok := attrs["u"].(bool); ok && u {
		codes = append(codes, "4")
	}
	if st, ok := attrs["st"].(bool); ok && st {
		codes = append(codes, "9")
	}
	if len(codes) == 0 {
		return
	}
	fmt.Fprintf(&s.out, "\x1b[0;%sm", strings.Join(codes, ";"))
}

// Flush writes the batched escape sequences to the underlying writer and
// clears the internal buffer.
func (s *Sink) Flush() error {
	if s.out.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(s.w, s.out.String())
	s.out.Reset()
	return err
}
