package buffer

import (
	"sort"

	"github.com/kentfield/edcore/internal/invariant"
)

// line is a single stored line: a non-empty byte string whose last byte is
// '\n', plus its cumulative byte offset from the start of the buffer.
type line struct {
	start   ByteCount
	content string
}

// length returns the line's length in bytes, including its trailing '\n'.
func (l line) length() ByteCount { return len(l.content) }

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() LineCount { return len(b.lines) }

// ByteCount returns the total number of bytes in the buffer.
func (b *Buffer) ByteCount() ByteCount {
	if len(b.lines) == 0 {
		return 0
	}
	last := b.lines[len(b.lines)-1]
	return last.start + last.length()
}

// LineLength returns the byte length of the given line, trailing newline
// included.
func (b *Buffer) LineLength(l LineCount) ByteCount {
	return b.lines[l].length()
}

// Content returns the raw bytes of the given line (including its trailing
// '\n').
func (b *Buffer) Content(l LineCount) string {
	return b.lines[l].content
}

// offset converts a coord to a byte offset from the start of the buffer.
func (b *Buffer) offset(c Coord) ByteCount {
	return b.lines[c.Line].start + c.Column
}

// coordForOffset converts a byte offset back into a coord. offset must be
// in [0, ByteCount()].
func (b *Buffer) coordForOffset(offset ByteCount) Coord {
	// Binary search for the last line whose start is <= offset.
	i := sort.Search(len(b.lines), func(i int) bool {
		return b.lines[i].start > offset
	})
	line := i - 1
	if line < 0 {
		line = 0
	}
	return Coord{Line: line, Column: offset - b.lines[line].start}
}

// clamp returns the nearest valid coord to the given one. The line is
// clamped to [0, LineCount()-1]; the column is clamped to [0, maxCol] where
// maxCol excludes the trailing newline when avoidEOL is set.
func (b *Buffer) clamp(c Coord, avoidEOL bool) Coord {
	if len(b.lines) == 0 {
		return Coord{}
	}
	result := c
	if result.Line < 0 {
		result.Line = 0
	}
	if max := b.LineCount() - 1; result.Line > max {
		result.Line = max
	}
	limit := 1
	if avoidEOL {
		limit = 2
	}
	maxCol := b.LineLength(result.Line) - limit
	if maxCol < 0 {
		maxCol = 0
	}
	if result.Column < 0 {
		result.Column = 0
	}
	if result.Column > maxCol {
		result.Column = maxCol
	}
	return result
}

// IsValid reports whether c names an addressable position: any (l,c) with
// 0 <= l < LineCount() and 0 <= c < lines[l].length(), plus the end
// sentinel (last_line, lines[last_line].length()).
func (b *Buffer) IsValid(c Coord) bool {
	n := b.LineCount()
	if c.Line < 0 || c.Line >= n {
		return false
	}
	if c.Column < 0 {
		return false
	}
	if c.Column < b.LineLength(c.Line) {
		return true
	}
	return c.Line == n-1 && c.Column == b.LineLength(c.Line)
}

// checkInvariant panics if the line store violates §3's invariants; never
// triggered by a legal call sequence. Nothing in the package calls it.
func (b *Buffer) checkInvariant() {
	invariant.Check(len(b.lines) != 0, "buffer: line store must never be empty")
	start := 0
	for _, l := range b.lines {
		invariant.Check(l.start == start, "buffer: line start offsets are not contiguous")
		invariant.Check(l.length() != 0, "buffer: empty line in store")
		invariant.Check(l.content[l.length()-1] == '\n', "buffer: line does not end in newline")
		start += l.length()
	}
}
