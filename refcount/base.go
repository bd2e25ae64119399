//go:build !ios && !android && (amd64 || arm64)

// Package refcount bridges Go ownership and CEF's intrusive reference
// counting.
//
// Every CEF struct starts with a cef_base_ref_counted_t header holding the
// struct size and four function pointers. Wrap places a Go implementation
// behind such a header: the header is the first field of a pinned Go
// allocation, so the address handed to CEF is both a valid C struct pointer
// and the key that recovers the Go object in a trampoline.
//
// Liveness is tracked out of band in a process-wide table keyed by the
// pointer's identity. CEF's add_ref/release calls mutate the table; when the
// count reaches zero the entry is removed, the allocation is unpinned and the
// implementation's Drop method (if any) runs.
//
// Ref is the other direction: an owned handle to a ref-counted struct that
// CEF allocated, released through the struct's own header.
package refcount

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// Base mirrors cef_base_ref_counted_t.
//
//	typedef struct _cef_base_ref_counted_t {
//	  size_t size;
//	  void(CEF_CALLBACK* add_ref)(struct _cef_base_ref_counted_t* self);
//	  int(CEF_CALLBACK* release)(struct _cef_base_ref_counted_t* self);
//	  int(CEF_CALLBACK* has_one_ref)(struct _cef_base_ref_counted_t* self);
//	  int(CEF_CALLBACK* has_at_least_one_ref)(struct _cef_base_ref_counted_t* self);
//	} cef_base_ref_counted_t;
type Base struct {
	Size             uintptr
	AddRef           uintptr
	Release          uintptr
	HasOneRef        uintptr
	HasAtLeastOneRef uintptr
}

// Dropper is implemented by wrapped values that need to run code when CEF
// releases the last reference.
type Dropper interface {
	Drop()
}

var (
	baseType = reflect.TypeFor[Base]()
	layouts  sync.Map // reflect.Type -> error
)

// checkLayout panics unless C is Base or a struct whose first field is Base.
// The result is cached per type.
func checkLayout[C any]() {
	t := reflect.TypeFor[C]()
	if v, ok := layouts.Load(t); ok {
		if v != nil {
			panic(v)
		}
		return
	}

	var err error
	switch {
	case t == baseType:
	case t.Kind() == reflect.Struct && t.NumField() > 0 &&
		t.Field(0).Type == baseType && t.Field(0).Offset == 0:
	default:
		err = fmt.Errorf("refcount: %v does not start with refcount.Base", t)
	}

	if err != nil {
		layouts.Store(t, err)
		panic(err)
	}
	layouts.Store(t, nil)
}

func baseOf[C any](p *C) *Base {
	return (*Base)(unsafe.Pointer(p))
}
