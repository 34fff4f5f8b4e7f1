package buffer

import "github.com/kentfield/edcore/internal/invariant"

// invalidSaveIndex is the sentinel "no save point" value for lastSaveIndex.
const invalidSaveIndex = -1

// history holds the committed UndoGroups plus a cursor into them (§3, C7).
// Positions before cursor are applied; positions from cursor onward are
// redoable. current accumulates modifications between commits.
type history struct {
	committed     []UndoGroup
	cursor        int
	current       UndoGroup
	lastSaveIndex int
}

// newHistory returns an empty history whose save point is the construction
// state itself (cursor 0): a freshly built buffer is unmodified until its
// first edit, regardless of whether it represents a new or opened file.
func newHistory() history {
	return history{lastSaveIndex: 0}
}

// record appends a modification to the open group unless undo tracking is
// disabled.
func (b *Buffer) record(m Modification) {
	if b.flags.Has(FlagNoUndo) {
		return
	}
	b.hist.current = append(b.hist.current, m)
}

// CommitUndoGroup closes the open group, optimizes it, and appends it to
// history (§4.5). A group that optimizes to empty is discarded without
// being recorded.
func (b *Buffer) CommitUndoGroup() {
	if b.flags.Has(FlagNoUndo) {
		b.hist.current = nil
		return
	}
	group := optimize(b.hist.current)
	b.hist.current = nil
	if len(group) == 0 {
		return
	}
	b.hist.committed = b.hist.committed[:b.hist.cursor]
	b.hist.committed = append(b.hist.committed, group)
	b.hist.cursor = len(b.hist.committed)
	if b.hist.lastSaveIndex > len(b.hist.committed) {
		b.hist.lastSaveIndex = invalidSaveIndex
	}
}

// Undo commits any open group, then replays the inverse of the most
// recently committed group in reverse order. Returns false at the
// beginning of history.
func (b *Buffer) Undo() bool {
	b.CommitUndoGroup()
	if b.hist.cursor == 0 {
		return false
	}
	b.hist.cursor--
	group := b.hist.committed[b.hist.cursor]
	for i := len(group) - 1; i >= 0; i-- {
		b.applyModification(group[i].Inverse())
	}
	return true
}

// Redo replays the next committed group forward. Returns false at the end
// of history.
func (b *Buffer) Redo() bool {
	if b.hist.cursor == len(b.hist.committed) {
		return false
	}
	invariant.Check(len(b.hist.current) == 0, "buffer: redo called with a non-empty open group")
	group := b.hist.committed[b.hist.cursor]
	for _, m := range group {
		b.applyModification(m)
	}
	b.hist.cursor++
	return true
}

// applyModification is the shared replay primitive used by Undo and Redo.
// It bypasses recording — replay must not itself generate new history.
func (b *Buffer) applyModification(m Modification) {
	coord := m.Coord
	if coord.Column == b.lines[coord.Line].length() && coord.Line+1 < len(b.lines) {
		coord = Coord{Line: coord.Line + 1, Column: 0}
	}
	switch m.Kind {
	case ModInsert:
		b.doInsert(coord, m.Content)
	case ModErase:
		// Derived from the byte offset, not advance(), so an erase that
		// reaches the very end of the buffer lands on the end sentinel
		// (lastLine, length) instead of overshooting onto a line past it.
		end := b.coordForOffset(b.offset(coord) + len(m.Content))
		current := b.String(Iterator{buf: b, coord: coord}, Iterator{buf: b, coord: end})
		invariant.Check(current == m.Content, "buffer: apply_modification content mismatch")
		b.doErase(coord, end)
	}
}

// IsModified reports whether the buffer differs from its last save point.
func (b *Buffer) IsModified() bool {
	return b.hist.lastSaveIndex != b.hist.cursor || len(b.hist.current) > 0
}

// NotifySaved commits any open group, clears the New flag, and marks the
// current history position as the save point.
func (b *Buffer) NotifySaved() {
	b.CommitUndoGroup()
	shifted := b.hist.lastSaveIndex != b.hist.cursor
	b.flags = b.flags.Clear(FlagNew)
	b.hist.lastSaveIndex = b.hist.cursor
	if shifted {
		b.timestamp++
	}
}
