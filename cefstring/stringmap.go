//go:build !ios && !android && (amd64 || arm64)

package cefstring

import "github.com/obinnaokechukwu/cefgo/internal/bindings"

// Map wraps a cef_string_map_t: key/value pairs with unique keys, kept in
// insertion order.
type Map struct {
	h     uintptr
	owned bool
}

// NewMap allocates an empty map. The caller must Free it unless ownership
// passes to CEF.
func NewMap() (*Map, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	return &Map{h: bindings.StringMapAlloc(), owned: true}, nil
}

// MapFrom borrows a handle received from CEF.
func MapFrom(h uintptr) *Map {
	return &Map{h: h}
}

// Handle returns the cef_string_map_t handle.
func (m *Map) Handle() uintptr {
	return m.h
}

// Len returns the number of pairs.
func (m *Map) Len() int {
	return int(bindings.StringMapSize(m.h))
}

// Find returns the value stored under key.
func (m *Map) Find(key string) (string, bool) {
	k, v := NewArg(key), NewArg("")
	defer k.Free()
	defer v.Free()
	if !bindings.StringMapFind(m.h, k.Ptr(), v.Ptr()) {
		return "", false
	}
	return Read(v.s), true
}

// Entry returns the key and value at index i.
func (m *Map) Entry(i int) (key, value string, ok bool) {
	if i < 0 {
		return "", "", false
	}
	k, v := NewArg(""), NewArg("")
	defer k.Free()
	defer v.Free()
	if !bindings.StringMapKey(m.h, uintptr(i), k.Ptr()) ||
		!bindings.StringMapValue(m.h, uintptr(i), v.Ptr()) {
		return "", "", false
	}
	return Read(k.s), Read(v.s), true
}

// Append adds a key/value pair.
func (m *Map) Append(key, value string) bool {
	k, v := NewArg(key), NewArg(value)
	defer k.Free()
	defer v.Free()
	return bindings.StringMapAppend(m.h, k.Ptr(), v.Ptr())
}

// ToMap copies the pairs into a Go map.
func (m *Map) ToMap() map[string]string {
	n := m.Len()
	out := make(map[string]string, n)
	for i := range n {
		if k, v, ok := m.Entry(i); ok {
			out[k] = v
		}
	}
	return out
}

// Clear removes every pair.
func (m *Map) Clear() {
	bindings.StringMapClear(m.h)
}

// Free releases an owned map.
func (m *Map) Free() {
	if m.owned && m.h != 0 {
		bindings.StringMapFree(m.h)
	}
	m.h = 0
}
