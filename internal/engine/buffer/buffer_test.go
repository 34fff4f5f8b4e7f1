package buffer

import "testing"

func linesOf(b *Buffer) []string {
	out := make([]string, b.LineCount())
	for i := range out {
		out[i] = b.Content(i)
	}
	return out
}

func newTestBuffer(t *testing.T, lines ...string) *Buffer {
	t.Helper()
	return New("test", FlagNew, lines, nil)
}

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := linesOf(b)
	if len(got) != len(want) {
		t.Fatalf("line count = %d, want %d (%q vs %q)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNew_DefaultsToSingleEmptyLine(t *testing.T) {
	b := New("scratch", FlagNew, nil, nil)
	assertLines(t, b, "\n")
	if b.ByteCount() != 1 {
		t.Errorf("ByteCount() = %d, want 1", b.ByteCount())
	}
}

func TestNew_PanicsOnMissingTrailingNewline(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a line without trailing newline")
		}
	}()
	New("bad", FlagNew, []string{"no newline"}, nil)
}

func TestSplitLine(t *testing.T) {
	b := newTestBuffer(t, "hello world\n")
	b.Insert(b.IteratorAt(Coord{0, 5}, false), "\nthere")
	assertLines(t, b, "hello\n", "there world\n")
	if b.ByteCount() != 18 {
		t.Errorf("ByteCount() = %d, want 18", b.ByteCount())
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
}

func TestEraseAcrossLines(t *testing.T) {
	b := newTestBuffer(t, "abc\n", "def\n", "ghi\n")
	begin := b.IteratorAt(Coord{0, 1}, false)
	end := b.IteratorAt(Coord{2, 1}, false)
	b.Erase(begin, end)
	assertLines(t, b, "ahi\n")
	if b.ByteCount() != 4 {
		t.Errorf("ByteCount() = %d, want 4", b.ByteCount())
	}
}

func TestInsertAtEndAppendsNewline(t *testing.T) {
	b := newTestBuffer(t, "hello\n")
	b.Insert(b.End(), "world")
	assertLines(t, b, "hello\n", "world\n")
}

func TestEraseWholeBufferLeavesOneEmptyLine(t *testing.T) {
	b := newTestBuffer(t, "abc\n", "def\n")
	b.Erase(b.Begin(), b.End())
	assertLines(t, b, "\n")
}

func TestUndoRestoresSplitLine(t *testing.T) {
	b := newTestBuffer(t, "hello world\n")
	before := linesOf(b)
	b.Insert(b.IteratorAt(Coord{0, 5}, false), "\nthere")
	b.CommitUndoGroup()
	if !b.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	assertLines(t, b, before...)

	if !b.Redo() {
		t.Fatal("Redo() = false, want true")
	}
	assertLines(t, b, "hello\n", "there world\n")
}

func TestUndoRedoInsertAtEnd(t *testing.T) {
	b := newTestBuffer(t, "hello\n")
	b.Insert(b.End(), "world")
	b.CommitUndoGroup()
	assertLines(t, b, "hello\n", "world\n")

	if !b.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	assertLines(t, b, "hello\n")

	if !b.Redo() {
		t.Fatal("Redo() = false, want true")
	}
	assertLines(t, b, "hello\n", "world\n")
}

func TestUndoAtBoundaryReturnsFalse(t *testing.T) {
	b := newTestBuffer(t, "abc\n")
	if b.Undo() {
		t.Fatal("Undo() at start of history = true, want false")
	}
}

func TestRedoAtBoundaryReturnsFalse(t *testing.T) {
	b := newTestBuffer(t, "abc\n")
	if b.Redo() {
		t.Fatal("Redo() at end of history = true, want false")
	}
}

func TestIsModifiedLifecycle(t *testing.T) {
	b := newTestBuffer(t, "abc\n")
	if b.IsModified() {
		t.Fatal("fresh buffer reports modified")
	}
	b.Insert(b.Begin(), "x")
	if !b.IsModified() {
		t.Fatal("buffer with a pending edit reports unmodified")
	}
	b.NotifySaved()
	if b.IsModified() {
		t.Fatal("buffer right after NotifySaved reports modified")
	}

	b.Insert(b.End(), "y")
	if !b.IsModified() {
		t.Fatal("buffer with a second pending edit reports unmodified")
	}
	if !b.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if b.IsModified() {
		t.Fatal("buffer back at its save point reports modified")
	}
}

func TestCoordForOffsetRoundTrip(t *testing.T) {
	b := newTestBuffer(t, "abc\n", "de\n", "f\n")
	for offset := 0; offset <= b.ByteCount(); offset++ {
		c := b.coordForOffset(offset)
		if !b.IsValid(c) && c != b.End().coord {
			t.Fatalf("coordForOffset(%d) = %v is not valid", offset, c)
		}
		if got := b.offset(c); got != offset {
			t.Errorf("offset(coordForOffset(%d)) = %d, want %d", offset, got, offset)
		}
	}
}

func TestOffsetMonotonic(t *testing.T) {
	b := newTestBuffer(t, "abc\n", "de\n")
	a := b.IteratorAt(Coord{0, 1}, false)
	c := b.IteratorAt(Coord{1, 1}, false)
	if a.Offset() > c.Offset() {
		t.Fatalf("offset(a) = %d should be <= offset(c) = %d", a.Offset(), c.Offset())
	}
	if b.End().Offset() != b.ByteCount() {
		t.Errorf("offset(end) = %d, want %d", b.End().Offset(), b.ByteCount())
	}
}

type recordingListener struct {
	inserts, erases int
}

func (r *recordingListener) OnInsert(begin, end Iterator) { r.inserts++ }
func (r *recordingListener) OnErase(begin, end Iterator)  { r.erases++ }

func TestListenerNotifiedOnEdits(t *testing.T) {
	b := newTestBuffer(t, "abc\n")
	l := &recordingListener{}
	token := b.AddListener(l)

	b.Insert(b.Begin(), "x")
	b.Erase(b.Begin(), b.IteratorAt(Coord{0, 1}, false))

	if l.inserts != 1 || l.erases != 1 {
		t.Fatalf("inserts=%d erases=%d, want 1,1", l.inserts, l.erases)
	}

	token.Cancel()
	b.Insert(b.Begin(), "y")
	if l.inserts != 1 {
		t.Fatalf("listener fired after Cancel: inserts=%d", l.inserts)
	}
}

func TestCloseWithLiveListenerPanics(t *testing.T) {
	b := newTestBuffer(t, "abc\n")
	b.AddListener(&recordingListener{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic closing a buffer with a live listener")
		}
	}()
	b.Close()
}

func TestFlagsRoundTrip(t *testing.T) {
	f := FlagFile.Set(FlagNoUndo)
	if !f.Has(FlagFile) || !f.Has(FlagNoUndo) {
		t.Fatal("Set did not set both bits")
	}
	f = f.Clear(FlagNoUndo)
	if f.Has(FlagNoUndo) {
		t.Fatal("Clear left FlagNoUndo set")
	}
	if !f.Has(FlagFile) {
		t.Fatal("Clear removed an unrelated bit")
	}
}

func TestNoUndoSuppressesHistory(t *testing.T) {
	b := New("scratch", FlagNoUndo, []string{"abc\n"}, nil)
	b.Insert(b.Begin(), "x")
	b.CommitUndoGroup()
	if b.Undo() {
		t.Fatal("Undo() succeeded despite NoUndo")
	}
}
