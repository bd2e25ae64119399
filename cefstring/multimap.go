//go:build !ios && !android && (amd64 || arm64)

package cefstring

import "github.com/obinnaokechukwu/cefgo/internal/bindings"

// MultiMap wraps a cef_string_multimap_t: ordered key/value pairs where a key
// may repeat, as used for HTTP headers.
type MultiMap struct {
	h     uintptr
	owned bool
}

// NewMultiMap allocates an empty map. The caller must Free it unless
// ownership passes to CEF.
func NewMultiMap() (*MultiMap, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	return &MultiMap{h: bindings.StringMultimapAlloc(), owned: true}, nil
}

// MultiMapFrom borrows a handle received from CEF.
func MultiMapFrom(h uintptr) *MultiMap {
	return &MultiMap{h: h}
}

// Handle returns the cef_string_multimap_t handle.
func (m *MultiMap) Handle() uintptr {
	return m.h
}

// Len returns the number of pairs.
func (m *MultiMap) Len() int {
	return int(bindings.StringMultimapSize(m.h))
}

// FindCount returns the number of values stored under key.
func (m *MultiMap) FindCount(key string) int {
	k := NewArg(key)
	defer k.Free()
	return int(bindings.StringMultimapFindCount(m.h, k.Ptr()))
}

// Find returns every value stored under key, in insertion order.
func (m *MultiMap) Find(key string) []string {
	k := NewArg(key)
	defer k.Free()

	n := bindings.StringMultimapFindCount(m.h, k.Ptr())
	out := make([]string, 0, n)
	for i := range n {
		v := NewArg("")
		if bindings.StringMultimapEnumerate(m.h, k.Ptr(), i, v.Ptr()) {
			out = append(out, Read(v.s))
		}
		v.Free()
	}
	return out
}

// Entry returns the key and value at index i.
func (m *MultiMap) Entry(i int) (key, value string, ok bool) {
	if i < 0 {
		return "", "", false
	}
	k, v := NewArg(""), NewArg("")
	defer k.Free()
	defer v.Free()
	if !bindings.StringMultimapKey(m.h, uintptr(i), k.Ptr()) ||
		!bindings.StringMultimapValue(m.h, uintptr(i), v.Ptr()) {
		return "", "", false
	}
	return Read(k.s), Read(v.s), true
}

// Append adds a key/value pair.
func (m *MultiMap) Append(key, value string) bool {
	k, v := NewArg(key), NewArg(value)
	defer k.Free()
	defer v.Free()
	return bindings.StringMultimapAppend(m.h, k.Ptr(), v.Ptr())
}

// ToMap groups the pairs by key.
func (m *MultiMap) ToMap() map[string][]string {
	n := m.Len()
	out := make(map[string][]string, n)
	for i := range n {
		if k, v, ok := m.Entry(i); ok {
			out[k] = append(out[k], v)
		}
	}
	return out
}

// Clear removes every pair.
func (m *MultiMap) Clear() {
	bindings.StringMultimapClear(m.h)
}

// Free releases an owned map.
func (m *MultiMap) Free() {
	if m.owned && m.h != 0 {
		bindings.StringMultimapFree(m.h)
	}
	m.h = 0
}
