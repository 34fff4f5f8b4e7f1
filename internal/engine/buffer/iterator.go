package buffer

// Iterator is a random-access cursor over a buffer's bytes, addressable by
// (line, column) or by byte offset. It holds a non-owning reference to its
// buffer: any primitive mutation may invalidate outstanding iterators, and
// callers must recompute or refresh coordinates via listener callbacks
// rather than assume an iterator survives an edit (see §5 of the design).
type Iterator struct {
	buf   *Buffer
	coord Coord
}

// IteratorAt returns an iterator at coord, clamped to a valid position.
func (b *Buffer) IteratorAt(c Coord, avoidEOL bool) Iterator {
	return Iterator{buf: b, coord: b.clamp(c, avoidEOL)}
}

// Begin returns an iterator at the first byte of the buffer.
func (b *Buffer) Begin() Iterator {
	return Iterator{buf: b, coord: Coord{Line: 0, Column: 0}}
}

// End returns the sentinel iterator one past the buffer's last byte.
func (b *Buffer) End() Iterator {
	if len(b.lines) == 0 {
		return Iterator{buf: b, coord: Coord{}}
	}
	last := b.LineCount() - 1
	return Iterator{buf: b, coord: Coord{Line: last, Column: b.LineLength(last)}}
}

// IteratorAtLineBegin returns an iterator at the start of the given line.
func (b *Buffer) IteratorAtLineBegin(l LineCount) Iterator {
	l = clampInt(l, 0, b.LineCount()-1)
	return Iterator{buf: b, coord: Coord{Line: l, Column: 0}}
}

// IteratorAtLineEnd returns an iterator just past the line's trailing
// newline (i.e. at the start of the next line, or End() for the last line).
func (b *Buffer) IteratorAtLineEnd(l LineCount) Iterator {
	l = clampInt(l, 0, b.LineCount()-1)
	it := Iterator{buf: b, coord: Coord{Line: l, Column: b.LineLength(l) - 1}}
	return it.Next()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Coord returns the iterator's current position.
func (it Iterator) Coord() Coord { return it.coord }

// Offset returns the iterator's byte offset from the start of the buffer.
func (it Iterator) Offset() ByteCount { return it.buf.offset(it.coord) }

// Deref returns the byte at the iterator's position. The result is
// undefined (and may panic) if IsEnd() is true — callers must check first.
func (it Iterator) Deref() byte {
	l := it.buf.lines[it.coord.Line]
	return l.content[it.coord.Column]
}

// IsEnd reports whether the iterator is the end-of-buffer sentinel.
func (it Iterator) IsEnd() bool {
	return it.coord == it.buf.End().coord
}

// IsBegin reports whether the iterator is at the first byte of the buffer.
func (it Iterator) IsBegin() bool {
	return it.coord.Line == 0 && it.coord.Column == 0
}

// IsValid reports whether the iterator's coord is addressable in the
// buffer's current state.
func (it Iterator) IsValid() bool {
	return it.buf.IsValid(it.coord)
}

// Next returns the iterator advanced by one byte.
func (it Iterator) Next() Iterator {
	c := it.coord
	if c.Column+1 < it.buf.LineLength(c.Line) {
		c.Column++
	} else if c.Line+1 < it.buf.LineCount() {
		c.Line++
		c.Column = 0
	} else {
		c.Column++ // advances onto the end sentinel
	}
	return Iterator{buf: it.buf, coord: c}
}

// Prev returns the iterator stepped back by one byte.
func (it Iterator) Prev() Iterator {
	c := it.coord
	if c.Column > 0 {
		c.Column--
	} else if c.Line > 0 {
		c.Line--
		c.Column = it.buf.LineLength(c.Line) - 1
	}
	return Iterator{buf: it.buf, coord: c}
}

// Add returns the iterator advanced by n bytes (n may be negative).
func (it Iterator) Add(n ByteCount) Iterator {
	offset := it.Offset() + n
	return Iterator{buf: it.buf, coord: it.buf.coordForOffset(offset)}
}

// Sub returns the iterator stepped back by n bytes.
func (it Iterator) Sub(n ByteCount) Iterator {
	return it.Add(-n)
}

// Distance returns the signed byte distance from other to it (it - other).
func (it Iterator) Distance(other Iterator) ByteCount {
	return it.Offset() - other.Offset()
}

// Compare orders two iterators by their coordinate (-1, 0, 1).
func (it Iterator) Compare(other Iterator) int {
	return it.coord.Compare(other.coord)
}

// Equal reports whether two iterators name the same position.
func (it Iterator) Equal(other Iterator) bool {
	return it.coord == other.coord
}
