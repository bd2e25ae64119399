//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
	"github.com/obinnaokechukwu/cefgo/ptrid"
)

// entry is the live record for one wrapped object.
type entry struct {
	addr   uintptr
	count  int
	obj    any // keeps the pinned allocation reachable
	pinner *runtime.Pinner
	drop   func()
}

// table is the single authority on liveness of wrapped objects.
// Every operation holds mu only for the map access itself.
var table = struct {
	_  cpu.CacheLinePad
	mu sync.Mutex
	m  map[ptrid.Identity]*entry
	_  cpu.CacheLinePad
}{
	m: make(map[ptrid.Identity]*entry),
}

// lookupLocked returns the entry for p, or nil if p is not tracked.
// An identity hit whose address differs is treated as not tracked.
func lookupLocked(p unsafe.Pointer) *entry {
	e := table.m[ptrid.Of(p)]
	if e == nil || e.addr != uintptr(p) {
		return nil
	}
	return e
}

func insert(p unsafe.Pointer, e *entry) {
	id := ptrid.Of(p)

	table.mu.Lock()
	defer table.mu.Unlock()

	if prev, ok := table.m[id]; ok {
		panic(fmt.Sprintf("refcount: identity %s of %#x already held by live object %#x",
			id, uintptr(p), prev.addr))
	}
	table.m[id] = e
}

// AddRef increments the count of a wrapped object.
// Pointers the table does not know are ignored.
func AddRef(p unsafe.Pointer) {
	table.mu.Lock()
	defer table.mu.Unlock()

	if e := lookupLocked(p); e != nil {
		e.count++
	}
}

// Release decrements the count of a wrapped object and reports whether this
// call freed it. When the count reaches zero the entry is removed; the
// allocation is unpinned and the object's Drop runs after the table lock has
// been released.
func Release(p unsafe.Pointer) bool {
	table.mu.Lock()
	e := lookupLocked(p)
	if e == nil {
		table.mu.Unlock()
		return false
	}
	e.count--
	if e.count > 0 {
		table.mu.Unlock()
		return false
	}
	delete(table.m, ptrid.Of(p))
	table.mu.Unlock()

	logging.Named("refcount").Debug("freeing wrapped object",
		zap.Uintptr("addr", e.addr))

	e.pinner.Unpin()
	if e.drop != nil {
		e.drop()
	}
	e.obj = nil
	return true
}

// HasOneRef reports whether p is tracked with a count of exactly one.
func HasOneRef(p unsafe.Pointer) bool {
	table.mu.Lock()
	defer table.mu.Unlock()

	e := lookupLocked(p)
	return e != nil && e.count == 1
}

// HasAtLeastOneRef reports whether p is tracked with a count of one or more.
func HasAtLeastOneRef(p unsafe.Pointer) bool {
	table.mu.Lock()
	defer table.mu.Unlock()

	e := lookupLocked(p)
	return e != nil && e.count >= 1
}

// Count returns the current count of p and whether p is tracked.
func Count(p unsafe.Pointer) (int, bool) {
	table.mu.Lock()
	defer table.mu.Unlock()

	if e := lookupLocked(p); e != nil {
		return e.count, true
	}
	return 0, false
}

// Len returns the number of live wrapped objects.
func Len() int {
	table.mu.Lock()
	defer table.mu.Unlock()
	return len(table.m)
}
