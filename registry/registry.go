// Package registry maps pointer identities to Go objects without keeping
// those objects alive.
//
// It is the weak counterpart of refcount: a callback that only has the
// pointer CEF handed back can find its Go owner here, and once the owner is
// garbage collected the lookup yields nil instead of a dangling value.
package registry

import (
	"reflect"
	"runtime"
	"sync"
	"weak"

	"github.com/obinnaokechukwu/cefgo/ptrid"
)

// Table is a weak map from identity to *T guarded by its own mutex.
type Table[T any] struct {
	mu sync.Mutex
	m  map[ptrid.Identity]weak.Pointer[T]
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{m: make(map[ptrid.Identity]weak.Pointer[T])}
}

// Register stores a weak reference to strong under id, replacing any
// previous entry. A nil strong is ignored.
//
// When strong is collected the entry is pruned, unless it has been replaced
// by a live object in the meantime.
func (t *Table[T]) Register(id ptrid.Identity, strong *T) {
	if strong == nil {
		return
	}
	wp := weak.Make(strong)

	t.mu.Lock()
	t.m[id] = wp
	t.mu.Unlock()

	runtime.AddCleanup(strong, t.prune, id)
}

func (t *Table[T]) prune(id ptrid.Identity) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if wp, ok := t.m[id]; ok && wp.Value() == nil {
		delete(t.m, id)
	}
}

// Unregister removes the entry for id, if any.
func (t *Table[T]) Unregister(id ptrid.Identity) {
	t.mu.Lock()
	delete(t.m, id)
	t.mu.Unlock()
}

// Get upgrades the entry for id. It returns nil if id was never registered,
// was unregistered, or its owner has been collected.
func (t *Table[T]) Get(id ptrid.Identity) *T {
	t.mu.Lock()
	defer t.mu.Unlock()

	wp, ok := t.m[id]
	if !ok {
		return nil
	}
	return wp.Value()
}

// Len returns the number of entries, including ones whose owner is dead but
// not yet pruned.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}

var (
	tablesMu sync.Mutex
	tables   = make(map[reflect.Type]any)
)

// For returns the process-wide table for T, creating it on first use.
func For[T any]() *Table[T] {
	typ := reflect.TypeFor[T]()

	tablesMu.Lock()
	defer tablesMu.Unlock()

	if v, ok := tables[typ]; ok {
		return v.(*Table[T])
	}
	t := NewTable[T]()
	tables[typ] = t
	return t
}

// Register stores strong in the process-wide table for T.
func Register[T any](id ptrid.Identity, strong *T) {
	For[T]().Register(id, strong)
}

// Unregister removes id from the process-wide table for T.
func Unregister[T any](id ptrid.Identity) {
	For[T]().Unregister(id)
}

// Get looks id up in the process-wide table for T.
func Get[T any](id ptrid.Identity) *T {
	return For[T]().Get(id)
}
