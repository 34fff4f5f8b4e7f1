package buffer

import "strings"

// doInsert is the structural primitive behind Insert (§4.2). content must
// be non-empty. pos must be a valid coord (the end sentinel included).
func (b *Buffer) doInsert(pos Coord, content string) (begin, end Coord) {
	if content == "" {
		return pos, pos
	}
	b.timestamp++

	beginOffset := b.offset(pos)
	// pos.Column can equal the full length of its line only at the end
	// sentinel (every non-final line's valid columns are < length). In
	// that case the line is already complete; content supplies whole new
	// lines appended after it rather than being spliced into its content.
	atEnd := pos.Column == b.lines[pos.Line].length()

	for i := pos.Line + 1; i < len(b.lines); i++ {
		b.lines[i].start += len(content)
	}

	parts := strings.Split(content, "\n")
	var replacement []line
	var splitFrom int

	if atEnd {
		splitFrom = pos.Line + 1
		replacement = make([]line, 0, len(parts))
		for i := 0; i < len(parts)-1; i++ {
			replacement = append(replacement, line{content: parts[i] + "\n"})
		}
		if last := parts[len(parts)-1]; last != "" {
			replacement = append(replacement, line{content: last})
		}
	} else {
		splitFrom = pos.Line
		prefix := b.lines[pos.Line].content[:pos.Column]
		suffix := b.lines[pos.Line].content[pos.Column:]
		if len(parts) == 1 {
			replacement = []line{{content: prefix + parts[0] + suffix}}
		} else {
			replacement = make([]line, 0, len(parts))
			replacement = append(replacement, line{content: prefix + parts[0] + "\n"})
			for i := 1; i < len(parts)-1; i++ {
				replacement = append(replacement, line{content: parts[i] + "\n"})
			}
			if last := parts[len(parts)-1] + suffix; last != "" {
				replacement = append(replacement, line{content: last})
			}
		}
	}

	tail := append([]line{}, b.lines[pos.Line+1:]...)
	b.lines = append(b.lines[:splitFrom], replacement...)
	b.lines = append(b.lines, tail...)

	b.recomputeStarts(pos.Line)

	begin = pos
	end = b.coordForOffset(beginOffset + len(content))

	b.notifyInsert(b.IteratorAt(begin, false), b.IteratorAt(end, false))
	return begin, end
}

// doErase is the structural primitive behind Erase (§4.2). begin must
// precede end.
func (b *Buffer) doErase(begin, end Coord) {
	if begin == end {
		return
	}
	b.timestamp++

	replacement := b.lines[begin.Line].content[:begin.Column] + b.lines[end.Line].content[end.Column:]

	tail := append([]line{}, b.lines[end.Line+1:]...)
	if replacement != "" {
		b.lines = append(b.lines[:begin.Line], line{content: replacement})
		b.lines = append(b.lines, tail...)
	} else {
		b.lines = append(b.lines[:begin.Line], tail...)
	}
	if len(b.lines) == 0 {
		b.lines = []line{{content: "\n"}}
	}

	b.recomputeStarts(begin.Line)

	b.notifyErase(Iterator{buf: b, coord: begin}, Iterator{buf: b, coord: end})
}

// recomputeStarts recomputes cached start offsets for b.lines[from:],
// assuming b.lines[from-1] (if any) already has a correct start.
func (b *Buffer) recomputeStarts(from int) {
	start := 0
	if from > 0 {
		start = b.lines[from-1].start + b.lines[from-1].length()
	}
	for i := from; i < len(b.lines); i++ {
		b.lines[i].start = start
		start += b.lines[i].length()
	}
}
