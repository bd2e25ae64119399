//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
)

// object is the allocation behind a wrapped pointer. cef must stay the first
// field: the address of cef is the address of the object.
type object[C, T any] struct {
	cef  C
	impl T
}

// Wrap moves cef and impl into a pinned allocation, installs the bridge's
// add_ref/release/has_one_ref/has_at_least_one_ref trampolines into the
// header, registers the object with a count of one and returns the pointer to
// hand to CEF.
//
// C must be Base or a struct whose first field is Base. Wrap panics otherwise.
// The slot function pointers already set in cef are kept; only the header is
// overwritten.
func Wrap[C, T any](cef C, impl T) *C {
	checkLayout[C]()

	o := &object[C, T]{cef: cef, impl: impl}
	p := unsafe.Pointer(&o.cef)

	vt := nativeVTable()
	*(*Base)(p) = Base{
		Size:             unsafe.Sizeof(o.cef),
		AddRef:           vt.addRef,
		Release:          vt.release,
		HasOneRef:        vt.hasOneRef,
		HasAtLeastOneRef: vt.hasAtLeastOneRef,
	}

	pinner := new(runtime.Pinner)
	pinner.Pin(o)

	// A fresh allocation at a poisoned address means the poisoned object is gone.
	unpoison(p)

	e := &entry{
		addr:   uintptr(p),
		count:  1,
		obj:    o,
		pinner: pinner,
	}
	if d, ok := any(impl).(Dropper); ok {
		e.drop = d.Drop
	}
	insert(p, e)

	logging.Named("refcount").Debug("wrapped object",
		zap.Uintptr("addr", uintptr(p)),
		zap.Uintptr("size", unsafe.Sizeof(o.cef)))

	return &o.cef
}

// WrapRef is Wrap returning an owned Ref for the initial reference.
func WrapRef[C, T any](cef C, impl T) Ref[C] {
	return Ref[C]{ptr: Wrap(cef, impl)}
}

// Impl recovers the implementation of an object created by Wrap[C, T].
// self must be a pointer returned by Wrap with the same C and T, still live.
func Impl[C, T any](self unsafe.Pointer) T {
	return (*object[C, T])(self).impl
}
