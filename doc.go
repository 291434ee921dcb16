// Package rendergrid implements a terminal render buffer: a grid of cells
// that accumulates drawing operations (text, erasure, skips, line
// segments) and flushes them to a backing WindowSink as a minimal, ordered
// sequence of cursor-positioning, print, and erase commands.
//
// The buffer is authoritative per flush — there is no diffing against the
// sink's previous contents, and flushing resets the buffer to its initial
// state.
package rendergrid
