//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
	"github.com/obinnaokechukwu/cefgo/trampoline"
)

// Ref is an owned reference to a ref-counted CEF struct. It holds exactly one
// count on the pointee, which is returned by Release (or handed off by
// IntoRaw). The zero Ref is nil.
//
// Ref works for both directions: structs CEF allocated (whose header points
// into libcef) and structs created by Wrap (whose header points at this
// package's trampolines).
type Ref[C any] struct {
	ptr *C
}

// FromPtr adopts a pointer whose reference the caller already owns, such as
// a struct returned by a CEF getter or passed into a callback as owned.
func FromPtr[C any](p *C) Ref[C] {
	if p != nil {
		checkLayout[C]()
	}
	return Ref[C]{ptr: p}
}

// FromPtrAddRef takes a new reference on a borrowed pointer.
func FromPtrAddRef[C any](p *C) Ref[C] {
	r := FromPtr(p)
	if p != nil {
		callBase(baseOf(p).AddRef, unsafe.Pointer(p))
	}
	return r
}

func (r Ref[C]) check() {
	if r.ptr != nil && IsPoisoned(unsafe.Pointer(r.ptr)) {
		panic(fmt.Sprintf("refcount: use of poisoned reference %p", r.ptr))
	}
}

// Ptr returns the underlying pointer without affecting the count.
// It panics if the reference was poisoned.
func (r Ref[C]) Ptr() *C {
	r.check()
	return r.ptr
}

// IsNil reports whether r holds no pointer.
func (r Ref[C]) IsNil() bool {
	return r.ptr == nil
}

// Clone takes an additional reference and returns it as a new Ref.
func (r Ref[C]) Clone() Ref[C] {
	r.check()
	return FromPtrAddRef(r.ptr)
}

// Release returns the held reference and reports whether it was the last
// one. Releasing a nil Ref is a no-op. Releasing a poisoned Ref logs and does
// nothing, since the count it held was already consumed.
func (r *Ref[C]) Release() bool {
	p := r.ptr
	if p == nil {
		return false
	}
	r.ptr = nil
	if IsPoisoned(unsafe.Pointer(p)) {
		logging.Named("refcount").Warn("release of poisoned reference ignored",
			zap.Uintptr("addr", uintptr(unsafe.Pointer(p))))
		return false
	}
	return trampoline.IsTrue(callBase(baseOf(p).Release, unsafe.Pointer(p)))
}

// IntoRaw gives up ownership without releasing: the reference is transferred
// to whoever receives the pointer, typically CEF itself.
func (r *Ref[C]) IntoRaw() *C {
	r.check()
	p := r.ptr
	r.ptr = nil
	return p
}

// Poison consumes the reference and marks the address so that any other Ref
// still pointing there panics on use. It is meant for objects CEF has
// declared dead while copies of the pointer may remain in Go.
func (r *Ref[C]) Poison() {
	p := r.ptr
	if p == nil {
		return
	}
	r.ptr = nil
	poison(unsafe.Pointer(p))
}
