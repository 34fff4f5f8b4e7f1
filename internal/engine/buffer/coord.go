package buffer

import "fmt"

// ByteCount counts bytes — a column within a line, a length, or a signed
// byte distance between two positions.
type ByteCount = int

// LineCount indexes a line within a buffer.
type LineCount = int

// Coord is a (line, column) position. Column is a byte offset within the
// line, not a rune or grapheme index — the core never interprets the bytes
// it stores, it only counts them.
type Coord struct {
	Line   LineCount
	Column ByteCount
}

// String returns a human-readable "(line,column)" representation.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if equal, 1 if c > other.
func (c Coord) Compare(other Coord) int {
	if c.Line != other.Line {
		if c.Line < other.Line {
			return -1
		}
		return 1
	}
	if c.Column != other.Column {
		if c.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts before other.
func (c Coord) Less(other Coord) bool { return c.Compare(other) < 0 }

// LessOrEqual reports whether c sorts at or before other.
func (c Coord) LessOrEqual(other Coord) bool { return c.Compare(other) <= 0 }

// After reports whether c sorts after other.
func (c Coord) After(other Coord) bool { return c.Compare(other) > 0 }

// Equal reports whether c and other are the same position.
func (c Coord) Equal(other Coord) bool { return c == other }

// RevisionID uniquely identifies a buffer revision; it is bumped by every
// primitive mutation (see doInsert/doErase in edit.go).
type RevisionID uint64
