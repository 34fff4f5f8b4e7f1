package buffer

import (
	"strings"

	"github.com/kentfield/edcore/internal/invariant"
)

// Buffer owns the line store, flags, undo history, and listener set for a
// single editable text (§3, C8). It is not safe for concurrent use — see
// the package doc comment.
type Buffer struct {
	name      string
	flags     Flags
	lines     []line
	listeners []ChangeListener
	hooks     Hooks
	timestamp RevisionID
	hist      history
	normalize func(string) string
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithNormalizer overrides how DisplayName shortens a File-flagged buffer's
// name. The default is the identity function; callers with a real
// filesystem (path normalization is outside this package's scope) should
// supply one.
func WithNormalizer(f func(string) string) Option {
	return func(b *Buffer) { b.normalize = f }
}

// New constructs a Buffer. lines defaults to a single empty line ("\n")
// when nil or empty; each supplied line must end in '\n'. hooks defaults
// to NoopHooks when nil.
//
// NoUndo is forced on for the duration of construction regardless of
// flags, so that installing the initial content and running BufCreate/
// BufNew/BufOpen never produces a spurious undo group (§4.3); it is then
// cleared unless the caller passed FlagNoUndo explicitly.
func New(name string, flags Flags, lines []string, hooks Hooks, opts ...Option) *Buffer {
	if hooks == nil {
		hooks = NoopHooks{}
	}
	if len(lines) == 0 {
		lines = []string{"\n"}
	}

	b := &Buffer{
		name:  name,
		hooks: hooks,
		hist:  newHistory(),
		flags: flags.Set(FlagNoUndo),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.lines = make([]line, len(lines))
	start := 0
	for i, content := range lines {
		invariant.Check(content != "" && content[len(content)-1] == '\n', "buffer: initial line must end in '\\n'")
		b.lines[i] = line{start: start, content: content}
		start += len(content)
	}

	b.hooks.RunHook(HookBufCreate, b.name, b)
	if flags.Has(FlagFile) {
		b.hooks.RunHook(HookBufOpen, b.name, b)
	} else {
		b.hooks.RunHook(HookBufNew, b.name, b)
	}

	b.flags = flags
	return b
}

// Name returns the buffer's stored name.
func (b *Buffer) Name() string { return b.name }

// DisplayName shortens the name for File-flagged buffers via the
// configured normalizer; other buffers display their name unchanged.
func (b *Buffer) DisplayName() string {
	if b.flags.Has(FlagFile) && b.normalize != nil {
		return b.normalize(b.name)
	}
	return b.name
}

// SetName replaces the buffer's stored name. A bare Buffer cannot itself
// detect name collisions with sibling buffers — that uniqueness guarantee
// is the registry's responsibility (C9) — so SetName always succeeds here.
func (b *Buffer) SetName(name string) bool {
	b.name = name
	return true
}

// Flags returns the buffer's current flag set.
func (b *Buffer) Flags() Flags { return b.flags }

// Timestamp returns the monotonically increasing revision counter, bumped
// by every primitive insert or erase.
func (b *Buffer) Timestamp() RevisionID { return b.timestamp }

// String returns the text between two iterators on this buffer.
func (b *Buffer) String(begin, end Iterator) string {
	bc, ec := begin.coord, end.coord
	if bc == ec {
		return ""
	}
	if bc.Line == ec.Line {
		return b.lines[bc.Line].content[bc.Column:ec.Column]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[bc.Line].content[bc.Column:])
	for l := bc.Line + 1; l < ec.Line; l++ {
		sb.WriteString(b.lines[l].content)
	}
	sb.WriteString(b.lines[ec.Line].content[:ec.Column])
	return sb.String()
}

// Insert inserts content at pos (§4.3). A trailing '\n' is appended when
// inserting at the end sentinel with content that doesn't already end in
// one, to preserve the LineStore invariant.
func (b *Buffer) Insert(pos Iterator, content string) {
	if content == "" {
		return
	}
	if pos.IsEnd() && content[len(content)-1] != '\n' {
		content += "\n"
	}
	b.record(Modification{Kind: ModInsert, Coord: pos.coord, Content: content})
	b.doInsert(pos.coord, content)
}

// Erase removes the text in [begin, end) (§4.3). If end is the end
// sentinel, end is stepped back one byte first — unless begin sits at
// column 0 of a line other than the first — so a trailing-newline-inclusive
// erase at the buffer's end doesn't leave the last line without one.
func (b *Buffer) Erase(begin, end Iterator) {
	if end.IsEnd() && !(begin.coord.Column == 0 && !begin.IsBegin()) {
		end = end.Prev()
	}
	if begin.coord == end.coord {
		return
	}
	content := b.String(begin, end)
	b.record(Modification{Kind: ModErase, Coord: begin.coord, Content: content})
	b.doErase(begin.coord, end.coord)
}

// Close runs the BufClose hook. It panics if listeners are still
// registered — destroying a buffer with live listeners is a programming
// error (§5).
func (b *Buffer) Close() {
	b.hooks.RunHook(HookBufClose, b.name, b)
	invariant.Check(!b.hasListeners(), "buffer: closed with listeners still registered")
}
