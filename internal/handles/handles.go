// Package handles keeps Go-allocated memory alive and pinned while native
// code holds its address.
//
// Native code may keep a copy of a Go pointer only while the pointee is
// pinned. Pin records the pinner together with the value so that the memory
// stays reachable, and hands back the address. Unpin releases both once the
// native side signals (usually through a destructor callback) that it is done.
//
// This is used for string buffers handed to CEF, whose destructor receives
// only the buffer address.
package handles

import (
	"runtime"
	"sync"
	"unsafe"
)

type pinned struct {
	pinner runtime.Pinner
	value  any
}

var (
	mu      sync.RWMutex
	handles = make(map[uintptr]*pinned)
)

// Pin pins the first element of buf and returns its address.
// The buffer stays valid until Unpin is called with the same address.
// Empty buffers are not pinned and yield 0.
//
// Thread-safe.
func Pin[T any](buf []T) uintptr {
	if len(buf) == 0 {
		return 0
	}
	p := &pinned{value: buf}
	p.pinner.Pin(&buf[0])
	addr := uintptr(unsafe.Pointer(&buf[0]))

	mu.Lock()
	defer mu.Unlock()
	if prev, ok := handles[addr]; ok {
		// Same backing array pinned twice; keep the newest owner.
		prev.pinner.Unpin()
	}
	handles[addr] = p
	return addr
}

// Lookup reports whether addr is a pinned address owned by this package.
//
// Thread-safe.
func Lookup(addr uintptr) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := handles[addr]
	return ok
}

// Unpin releases the buffer at addr. It reports whether addr was pinned.
//
// Thread-safe.
func Unpin(addr uintptr) bool {
	mu.Lock()
	p, ok := handles[addr]
	if ok {
		delete(handles, addr)
	}
	mu.Unlock()

	if ok {
		p.pinner.Unpin()
		p.value = nil
	}
	return ok
}

// Count returns the number of currently pinned buffers.
// Useful for debugging and testing memory leaks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}
