package rendergrid

import "errors"

// Sentinel errors returned by relative (cursor-following) drawing
// operations. Absolute operations never return these; out-of-range or
// clipped-away absolute calls simply no-op.
var (
	// ErrNoCursor is returned when a relative operation is called before
	// the virtual cursor has been positioned with Goto.
	ErrNoCursor = errors.New("rendergrid: no cursor position set")

	// ErrPenConflict is returned when a relative operation is given an
	// explicit pen while a stored pen is already active via SetPen.
	ErrPenConflict = errors.New("rendergrid: explicit pen conflicts with active stored pen")

	// ErrOutOfRange is returned when a relative operation (Erase, Skip)
	// is given a negative length. Cursor or target columns beyond Cols
	// are not checked and do not return it; such draws are clipped away
	// like absolute ones.
	ErrOutOfRange = errors.New("rendergrid: coordinates out of range")
)

// InvariantError marks a panic raised for an internal inconsistency — a
// bug in this package, never a caller mistake. Absolute drawing operations
// never raise it for bad input; see ErrOutOfRange for that.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return "rendergrid: invariant violation: " + e.msg }

func invariantViolation(msg string) {
	panic(&InvariantError{msg: msg})
}

// Logger is the diagnostic sink for non-fatal conditions the buffer wants
// to surface but not fail on, such as PenCollision (see SetLogger).
type Logger interface {
	Printf(format string, args ...any)
}
