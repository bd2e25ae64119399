//go:build !ios && !android && (amd64 || arm64)

// Package trampoline is the runtime half of the callback trampoline system.
//
// CEF calls into Go through function pointers stored in its callback structs.
// Each slot gets exactly one purego callback per process (purego has a hard
// limit on live callbacks), registered lazily under a slot key such as
// "cef_task_t.execute". The generated trampolines recover the Go
// implementation from the self pointer, marshal arguments, and wrap the call
// in Guard so that a Go panic never unwinds into native frames.
package trampoline

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	callbacksMu sync.Mutex
	callbacks   = make(map[string]uintptr)
)

// Callback returns the C function pointer for the slot key, creating it from
// fn with purego.NewCallback on first use. Later calls with the same key
// return the cached pointer and ignore fn.
//
// fn must be a func whose parameters and result are C-ABI compatible
// (integers, uintptr, unsafe.Pointer), optionally starting with purego.CDecl.
func Callback(key string, fn any) uintptr {
	callbacksMu.Lock()
	defer callbacksMu.Unlock()

	if ptr, ok := callbacks[key]; ok {
		return ptr
	}
	ptr := purego.NewCallback(fn)
	callbacks[key] = ptr
	return ptr
}

// Registered returns the C function pointer for key, or 0 if no callback has
// been created for it yet.
func Registered(key string) uintptr {
	callbacksMu.Lock()
	defer callbacksMu.Unlock()
	return callbacks[key]
}

// Invoke calls the native function pointer fn with the given arguments and
// returns its first result register.
//
// Arguments that are addresses must point to native memory or to pinned heap
// memory. The goroutine stack may move while native code runs, so the address
// of a stack variable is never a valid argument.
func Invoke(fn uintptr, args ...uintptr) uintptr {
	if fn == 0 {
		return 0
	}
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

// Bool converts a Go bool to the C int convention (0 or 1).
func Bool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// IsTrue converts a C int to bool. Any non-zero value is true.
func IsTrue(v int32) bool {
	return v != 0
}

// GoString copies the NUL-terminated C string at p. A nil p yields "".
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Slice views n elements starting at p as a Go slice without copying.
// A nil p or zero n yields nil.
func Slice[T any](p *T, n uintptr) []T {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
