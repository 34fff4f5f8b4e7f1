package registry

import (
	"testing"

	"github.com/kentfield/edcore/internal/engine/buffer"
)

func TestCreate(t *testing.T) {
	r := New()
	b, err := r.Create("scratch", buffer.FlagNew, nil, nil)
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if b.Name() != "scratch" {
		t.Errorf("Name() = %q, want %q", b.Name(), "scratch")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	r := New()
	if _, err := r.Create("scratch", buffer.FlagNew, nil, nil); err != nil {
		t.Fatalf("first Create() error = %v, want nil", err)
	}
	if _, err := r.Create("scratch", buffer.FlagNew, nil, nil); err != ErrNameTaken {
		t.Fatalf("second Create() error = %v, want ErrNameTaken", err)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1 (rejected create must not register)", r.Count())
	}
}

func TestGet(t *testing.T) {
	r := New()
	want, _ := r.Create("a", buffer.FlagNew, nil, nil)

	got, ok := r.Get("a")
	if !ok || got != want {
		t.Fatalf("Get(%q) = %v,%v, want %v,true", "a", got, ok, want)
	}

	if _, ok := r.Get("missing"); ok {
		t.Fatal("Get() on an unregistered name returned ok=true")
	}
}

func TestNames_PreservesRegistrationOrder(t *testing.T) {
	r := New()
	r.Create("one", buffer.FlagNew, nil, nil)
	r.Create("two", buffer.FlagNew, nil, nil)
	r.Create("three", buffer.FlagNew, nil, nil)

	got := r.Names()
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestEach_StopsEarly(t *testing.T) {
	r := New()
	r.Create("one", buffer.FlagNew, nil, nil)
	r.Create("two", buffer.FlagNew, nil, nil)
	r.Create("three", buffer.FlagNew, nil, nil)

	var seen []string
	r.Each(func(b *buffer.Buffer) bool {
		seen = append(seen, b.Name())
		return len(seen) < 2
	})
	if len(seen) != 2 {
		t.Fatalf("Each() visited %v, want 2 entries", seen)
	}
}

func TestRename(t *testing.T) {
	r := New()
	b, _ := r.Create("old", buffer.FlagNew, nil, nil)

	if err := r.Rename(b, "new"); err != nil {
		t.Fatalf("Rename() error = %v, want nil", err)
	}
	if b.Name() != "new" {
		t.Errorf("Name() = %q, want %q", b.Name(), "new")
	}
	if _, ok := r.Get("old"); ok {
		t.Error("old name still resolves after Rename()")
	}
	got, ok := r.Get("new")
	if !ok || got != b {
		t.Fatalf("Get(%q) = %v,%v, want %v,true", "new", got, ok, b)
	}
}

func TestRename_RejectsNameHeldBySiblingBuffer(t *testing.T) {
	r := New()
	a, _ := r.Create("a", buffer.FlagNew, nil, nil)
	r.Create("b", buffer.FlagNew, nil, nil)

	if err := r.Rename(a, "b"); err != ErrNameTaken {
		t.Fatalf("Rename() error = %v, want ErrNameTaken", err)
	}
	if a.Name() != "a" {
		t.Errorf("Name() = %q, want unchanged %q", a.Name(), "a")
	}
}

func TestRename_ToOwnNameIsNoop(t *testing.T) {
	r := New()
	b, _ := r.Create("a", buffer.FlagNew, nil, nil)

	if err := r.Rename(b, "a"); err != nil {
		t.Fatalf("Rename() error = %v, want nil", err)
	}
}

func TestDelete(t *testing.T) {
	r := New()
	r.Create("a", buffer.FlagNew, nil, nil)

	if err := r.Delete("a"); err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}
	if _, ok := r.Get("a"); ok {
		t.Error("Get() found a buffer after Delete()")
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}

func TestDelete_MissingNameReturnsErrNotFound(t *testing.T) {
	r := New()
	if err := r.Delete("missing"); err != ErrNotFound {
		t.Fatalf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDelete_PanicsWithLiveListener(t *testing.T) {
	r := New()
	b, _ := r.Create("a", buffer.FlagNew, nil, nil)
	b.AddListener(noopListener{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic deleting a buffer with a live listener")
		}
	}()
	r.Delete("a")
}

type noopListener struct{}

func (noopListener) OnInsert(begin, end buffer.Iterator) {}
func (noopListener) OnErase(begin, end buffer.Iterator)  {}
