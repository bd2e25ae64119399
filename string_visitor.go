//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/cefgo/protect"
)

// StringVisitor receives strings CEF produces asynchronously, such as a
// frame's source or text. CEF may call Visit from any of its threads.
type StringVisitor interface {
	Visit(s string)
}

// StringVisitorFunc adapts a function to StringVisitor.
type StringVisitorFunc func(s string)

// Visit calls f(s).
func (f StringVisitorFunc) Visit(s string) {
	f(s)
}

// stringVisitor shares v across the threads CEF calls it on.
type stringVisitor struct {
	v *protect.Shared[StringVisitor]
}

func (s stringVisitor) Visit(str string) {
	s.v.Do(func(v StringVisitor) {
		v.Visit(str)
	})
}

// NewStringVisitor wraps v in a cef_string_visitor_t and returns it holding
// one reference, ready to hand to a CEF function that takes ownership.
func NewStringVisitor(v StringVisitor) unsafe.Pointer {
	if v == nil {
		return nil
	}
	return unsafe.Pointer(newCefStringVisitor(stringVisitor{v: protect.NewShared(v)}))
}
