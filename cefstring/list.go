//go:build !ios && !android && (amd64 || arm64)

package cefstring

import "github.com/obinnaokechukwu/cefgo/internal/bindings"

// List wraps a cef_string_list_t, an opaque vector of strings owned by
// libcef.
type List struct {
	h     uintptr
	owned bool
}

// NewList allocates a list holding values. The caller must Free it unless
// ownership passes to CEF.
func NewList(values ...string) (*List, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	l := &List{h: bindings.StringListAlloc(), owned: true}
	for _, v := range values {
		l.Append(v)
	}
	return l, nil
}

// ListFrom borrows a list handle received from CEF. Free is a no-op on it.
func ListFrom(h uintptr) *List {
	return &List{h: h}
}

// Handle returns the cef_string_list_t handle.
func (l *List) Handle() uintptr {
	return l.h
}

// Len returns the number of elements.
func (l *List) Len() int {
	return int(bindings.StringListSize(l.h))
}

// Get returns element i.
func (l *List) Get(i int) (string, bool) {
	if i < 0 {
		return "", false
	}
	v := NewArg("")
	defer v.Free()
	if !bindings.StringListValue(l.h, uintptr(i), v.Ptr()) {
		return "", false
	}
	return Read(v.s), true
}

// Append adds a copy of s.
func (l *List) Append(s string) {
	v := NewArg(s)
	defer v.Free()
	bindings.StringListAppend(l.h, v.Ptr())
}

// Values copies every element into a Go slice.
func (l *List) Values() []string {
	n := l.Len()
	out := make([]string, 0, n)
	for i := range n {
		if s, ok := l.Get(i); ok {
			out = append(out, s)
		}
	}
	return out
}

// Clear removes every element.
func (l *List) Clear() {
	bindings.StringListClear(l.h)
}

// Copy duplicates the list into a new owned list.
func (l *List) Copy() (*List, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	if h := bindings.StringListCopy(l.h); h != 0 {
		return &List{h: h, owned: true}, nil
	}
	return NewList(l.Values()...)
}

// Free releases an owned list.
func (l *List) Free() {
	if l.owned && l.h != 0 {
		bindings.StringListFree(l.h)
	}
	l.h = 0
}
