//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/cefgo/trampoline"
)

// Slot keys of the header trampolines.
const (
	SlotAddRef           = "cef_base_ref_counted_t.add_ref"
	SlotRelease          = "cef_base_ref_counted_t.release"
	SlotHasOneRef        = "cef_base_ref_counted_t.has_one_ref"
	SlotHasAtLeastOneRef = "cef_base_ref_counted_t.has_at_least_one_ref"
)

type vtable struct {
	addRef           uintptr
	release          uintptr
	hasOneRef        uintptr
	hasAtLeastOneRef uintptr
}

// The header trampolines are shared by every wrapped type and registered once.
var (
	vtOnce sync.Once
	vt     vtable
)

func nativeVTable() vtable {
	vtOnce.Do(func() {
		vt = vtable{
			addRef:           trampoline.Callback(SlotAddRef, addRefTrampoline),
			release:          trampoline.Callback(SlotRelease, releaseTrampoline),
			hasOneRef:        trampoline.Callback(SlotHasOneRef, hasOneRefTrampoline),
			hasAtLeastOneRef: trampoline.Callback(SlotHasAtLeastOneRef, hasAtLeastOneRefTrampoline),
		}
	})
	return vt
}

// void add_ref(cef_base_ref_counted_t* self)
func addRefTrampoline(_ purego.CDecl, self unsafe.Pointer) {
	trampoline.Guard(SlotAddRef, func() {
		AddRef(self)
	})
}

// int release(cef_base_ref_counted_t* self)
func releaseTrampoline(_ purego.CDecl, self unsafe.Pointer) int32 {
	return trampoline.GuardValue(SlotRelease, func() int32 {
		return trampoline.Bool(Release(self))
	})
}

// int has_one_ref(cef_base_ref_counted_t* self)
func hasOneRefTrampoline(_ purego.CDecl, self unsafe.Pointer) int32 {
	return trampoline.GuardValue(SlotHasOneRef, func() int32 {
		return trampoline.Bool(HasOneRef(self))
	})
}

// int has_at_least_one_ref(cef_base_ref_counted_t* self)
func hasAtLeastOneRefTrampoline(_ purego.CDecl, self unsafe.Pointer) int32 {
	return trampoline.GuardValue(SlotHasAtLeastOneRef, func() int32 {
		return trampoline.Bool(HasAtLeastOneRef(self))
	})
}

// callBase invokes a header function pointer on p. Pointers that are this
// bridge's own trampolines are dispatched in Go without leaving the runtime.
func callBase(fn uintptr, p unsafe.Pointer) int32 {
	if fn == 0 {
		return 0
	}
	v := nativeVTable()
	switch fn {
	case v.addRef:
		AddRef(p)
		return 0
	case v.release:
		return trampoline.Bool(Release(p))
	case v.hasOneRef:
		return trampoline.Bool(HasOneRef(p))
	case v.hasAtLeastOneRef:
		return trampoline.Bool(HasAtLeastOneRef(p))
	}
	return int32(trampoline.Invoke(fn, uintptr(p)))
}
