package termsink

import (
	"os"

	"golang.org/x/term"
)

// Options configures a terminal-backed demo session. Zero values mean
// "auto": Cols/Rows are detected from the host terminal when <= 0.
type Options struct {
	Cols int
	Rows int
}

// DetectSize returns the current size of the host terminal, falling back
// to 80x24 if it cannot be determined (not a TTY, redirected output, etc).
func DetectSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// ResolveOptions fills in Cols/Rows from the host terminal where the
// caller left them unset.
func ResolveOptions(opts Options) Options {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		cols, rows := DetectSize()
		if opts.Cols <= 0 {
			opts.Cols = cols
		}
		if opts.Rows <= 0 {
			opts.Rows = rows
		}
	}
	return opts
}

// RawSession enters raw mode on stdin for the duration of a demo run and
// restores it on Close.
type RawSession struct {
	oldState *term.State
}

// EnterRaw switches stdin into raw mode.
func EnterRaw() (*RawSession, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}
	return &RawSession{oldState: oldState}, nil
}

// Close restores the terminal's prior mode.
func (r *RawSession) Close() error {
	if r.oldState == nil {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), r.oldState)
}
