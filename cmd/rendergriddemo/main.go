// Command rendergriddemo drives a rendergrid.Buffer through a scripted
// sequence of text, line-drawing, relative cursor, clipping, and
// save/restore calls and flushes the result to the real host terminal.
package main

import (
	"fmt"
	"os"

	"github.com/phroun/rendergrid"
	"github.com/phroun/rendergrid/termsink"
)

func main() {
	opts := termsink.ResolveOptions(termsink.Options{})

	buf := rendergrid.New(opts.Rows, opts.Cols)
	if err := drawDemo(buf); err != nil {
		fmt.Fprintln(os.Stderr, "rendergriddemo: draw failed:", err)
		os.Exit(1)
	}

	sink := termsink.New(os.Stdout)
	buf.FlushToWindow(sink)
	if err := sink.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "rendergriddemo: flush failed:", err)
		os.Exit(1)
	}
	fmt.Print("\n")
}

func drawDemo(buf *rendergrid.Buffer) error {
	title := rendergrid.NewPen(rendergrid.WithBold(true), rendergrid.WithFg(rendergrid.StandardColor(6)))
	body := rendergrid.NewPen(rendergrid.WithFg(rendergrid.StandardColor(7)))
	warn := rendergrid.NewPen(rendergrid.WithFg(rendergrid.StandardColor(1)), rendergrid.WithBold(true))

	buf.TextAt(0, 2, "rendergrid demo", title)
	buf.HLineAt(1, 0, buf.Cols()-1, rendergrid.LineSingle, body, rendergrid.CapBoth)

	buf.Goto(3, 2)
	buf.SetPen(&body)
	if err := buf.Text("status: ", nil); err != nil {
		return err
	}

	// Clear the stored pen for this one call so the explicit warn pen
	// doesn't collide with it, then put body back for whatever follows.
	buf.SetPen(nil)
	err := buf.Text("ok", &warn)
	buf.SetPen(&body)
	if err != nil {
		return err
	}

	buf.VLineAt(0, 3, 10, rendergrid.LineSingle, body, rendergrid.CapBoth)

	buf.Save()
	buf.Clip(rendergrid.NewRect(5, 2, 9, buf.Cols()-2))
	buf.TextAt(5, 2, "clipped region content that may overflow", body)
	buf.Restore()
	return nil
}
