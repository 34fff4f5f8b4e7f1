// Package registry provides the name-unique buffer registry (§4.6, C9): the
// owner of every live Buffer, keyed by name, handing out non-owning handles
// to the rest of the editor.
package registry

import (
	"errors"
	"sync"

	"github.com/kentfield/edcore/internal/engine/buffer"
)

// ErrNameTaken is returned by Create and Rename when another buffer already
// holds the requested name.
var ErrNameTaken = errors.New("registry: name already in use")

// ErrNotFound is returned when an operation references a name the registry
// does not hold.
var ErrNotFound = errors.New("registry: no buffer with that name")

// Registry owns a set of buffers and enforces name uniqueness across them.
// External code holds non-owning handles (*buffer.Buffer) that must not
// outlive the registry entry (§5).
type Registry struct {
	mu      sync.RWMutex
	buffers map[string]*buffer.Buffer
	order   []string // insertion order, for Names and Each
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{buffers: make(map[string]*buffer.Buffer)}
}

// Create constructs a new buffer under name and registers it. It fails with
// ErrNameTaken if a buffer with that name is already registered; the buffer
// is never constructed in that case, so no BufCreate/BufNew/BufOpen hooks
// fire on a rejected name.
func (r *Registry) Create(name string, flags buffer.Flags, lines []string, hooks buffer.Hooks, opts ...buffer.Option) (*buffer.Buffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.buffers[name]; exists {
		return nil, ErrNameTaken
	}

	b := buffer.New(name, flags, lines, hooks, opts...)
	r.buffers[name] = b
	r.order = append(r.order, name)
	return b, nil
}

// Get returns the buffer registered under name, if any.
func (r *Registry) Get(name string) (*buffer.Buffer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.buffers[name]
	return b, ok
}

// Names returns the registered buffer names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of registered buffers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.buffers)
}

// Each calls fn for every registered buffer in registration order, stopping
// early if fn returns false.
func (r *Registry) Each(fn func(b *buffer.Buffer) bool) {
	r.mu.RLock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	r.mu.RUnlock()

	for _, name := range names {
		r.mu.RLock()
		b, ok := r.buffers[name]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		if !fn(b) {
			return
		}
	}
}

// Rename moves b's registry entry to newName, calling b.SetName only once
// the new name is confirmed free. A bare Buffer.SetName always succeeds
// (§4.6) since it cannot itself see sibling buffers; the registry is where
// the "unless that buffer is self" uniqueness rule actually lives.
func (r *Registry) Rename(b *buffer.Buffer, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldName := b.Name()
	if newName == oldName {
		return nil
	}
	if existing, exists := r.buffers[newName]; exists && existing != b {
		return ErrNameTaken
	}
	if _, ok := r.buffers[oldName]; !ok {
		return ErrNotFound
	}

	b.SetName(newName)
	delete(r.buffers, oldName)
	r.buffers[newName] = b
	for i, n := range r.order {
		if n == oldName {
			r.order[i] = newName
			break
		}
	}
	return nil
}

// Delete closes and unregisters the buffer named name. Close panics if the
// buffer still has live listeners (§4.6 destruction contract); callers must
// deregister listeners first.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buffers[name]
	if !ok {
		return ErrNotFound
	}

	b.Close()
	delete(r.buffers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
