// Package buffer is the in-memory representation of an editable text file:
// a line-indexed text store, a random-access byte iterator over it, and the
// primitive insert/erase operations that mutate it and notify listeners.
//
// The package provides:
//
//   - Coord: a (line, column) position, column counted in bytes.
//   - Iterator: a random-access cursor over the buffer's bytes.
//   - Buffer: owns the line store, flags, undo history and listener set.
//
// Basic usage:
//
//	buf := buffer.New("scratch", buffer.FlagNew, nil, nil)
//	buf.Insert(buf.End(), "hello\n")
//	buf.CommitUndoGroup()
//	buf.Undo()
//
// Concurrency:
//
// Buffer is not safe for concurrent use. The editor this package serves is
// single-threaded and cooperative: every call runs to completion before the
// next begins, and listener/hook callbacks run synchronously in the calling
// goroutine. Callers needing cross-goroutine access must serialize it
// themselves.
package buffer
