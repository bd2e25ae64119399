//go:build !ios && !android && (amd64 || arm64)

// Package cefstring converts between Go strings and CEF's string ABI.
//
// CEF is built with UTF-16 strings, so cef_string_t is cef_string_utf16_t: a
// buffer pointer, a length in code units and a destructor the receiver calls
// when it is done with the buffer. Strings created here live in pinned Go
// memory and carry a destructor that unpins them.
package cefstring

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/text/encoding/unicode"

	"github.com/obinnaokechukwu/cefgo/internal/bindings"
	"github.com/obinnaokechukwu/cefgo/internal/handles"
	"github.com/obinnaokechukwu/cefgo/trampoline"
)

// ErrNotLoaded is returned by List and MultiMap constructors before libcef
// has been loaded.
var ErrNotLoaded = bindings.ErrNotLoaded

// String mirrors cef_string_utf16_t.
//
//	typedef struct _cef_string_utf16_t {
//	  char16_t* str;
//	  size_t length;
//	  void (*dtor)(char16_t* str);
//	} cef_string_utf16_t;
type String struct {
	Str    *uint16
	Length uintptr
	Dtor   uintptr
}

// CEF strings are host byte order; every supported target is little-endian.
var codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

const dtorSlot = "cef_string_utf16_t.dtor"

func dtor() uintptr {
	return trampoline.Callback(dtorSlot, dtorTrampoline)
}

// void dtor(char16_t* str)
func dtorTrampoline(_ purego.CDecl, str uintptr) {
	trampoline.Guard(dtorSlot, func() {
		handles.Unpin(str)
	})
}

// Encode converts s to NUL-terminated UTF-16 code units. Invalid UTF-8 is
// replaced with U+FFFD.
func Encode(s string) []uint16 {
	// The encoder substitutes U+FFFD for invalid input and never fails.
	b, _ := codec.NewEncoder().Bytes([]byte(s))
	units := make([]uint16, len(b)/2+1)
	for i := range len(b) / 2 {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return units
}

// Decode converts UTF-16 code units to a Go string. Unpaired surrogates
// become U+FFFD.
func Decode(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	b := make([]byte, 2*len(units))
	for i, u := range units {
		b[2*i] = byte(u)
		b[2*i+1] = byte(u >> 8)
	}
	out, err := codec.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// New returns a String holding s in pinned Go memory. Its destructor unpins
// the buffer, so it may be handed to CEF as an owned value. The empty string
// yields the zero String.
func New(s string) String {
	if s == "" {
		return String{}
	}
	units := Encode(s)
	handles.Pin(units)
	return String{
		Str:    &units[0],
		Length: uintptr(len(units) - 1),
		Dtor:   dtor(),
	}
}

// Arg is a cef_string_t* argument, input or out-parameter, for a call into
// native code. The header lives on the heap and stays pinned until Free.
type Arg struct {
	s      *String
	pinner runtime.Pinner
}

// NewArg returns s as a pinned cef_string_t argument. Pass "" for an
// out-parameter. The caller must Free it once the native call returns.
func NewArg(s string) *Arg {
	a := &Arg{s: new(String)}
	*a.s = New(s)
	a.pinner.Pin(a.s)
	return a
}

// Addr returns the address to pass as the cef_string_t* argument.
func (a *Arg) Addr() uintptr {
	return uintptr(unsafe.Pointer(a.s))
}

// Ptr is Addr as an unsafe.Pointer.
func (a *Arg) Ptr() unsafe.Pointer {
	return unsafe.Pointer(a.s)
}

// Free releases the buffer and unpins the header.
func (a *Arg) Free() {
	if a == nil || a.s == nil {
		return
	}
	a.s.Clear()
	a.pinner.Unpin()
	a.s = nil
}

// Read returns the Go string held by s. A nil s reads as "".
func Read(s *String) string {
	if s == nil || s.Str == nil || s.Length == 0 {
		return ""
	}
	return Decode(trampoline.Slice(s.Str, s.Length))
}

// ReadPtr is Read for a const cef_string_t* received from native code.
func ReadPtr(p unsafe.Pointer) string {
	return Read((*String)(p))
}

// String implements fmt.Stringer.
func (s *String) String() string {
	return Read(s)
}

// Clear runs the destructor, if any, and resets s to the empty string.
func (s *String) Clear() {
	if s == nil {
		return
	}
	if s.Str != nil && s.Dtor != 0 {
		addr := uintptr(unsafe.Pointer(s.Str))
		if s.Dtor == dtor() {
			handles.Unpin(addr)
		} else {
			trampoline.Invoke(s.Dtor, addr)
		}
	}
	*s = String{}
}

// Set replaces the contents of dst with a new owned copy of v. It is how a
// callback fills a cef_string_t* out-parameter.
func Set(dst *String, v string) {
	if dst == nil {
		return
	}
	dst.Clear()
	*dst = New(v)
}

// SetPtr is Set for an out-parameter received as a raw pointer.
func SetPtr(dst unsafe.Pointer, v string) {
	Set((*String)(dst), v)
}

// TakeUserfree reads a cef_string_userfree_t returned by CEF and frees it.
// A nil p yields "".
func TakeUserfree(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	s := Read((*String)(p))
	bindings.StringUserfreeFree(p)
	return s
}
