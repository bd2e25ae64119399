//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/cefgo/refcount"
)

// Callback is CEF's generic continuation (cef_callback_t), handed to
// handlers that may finish their work asynchronously. Exactly one of
// Continue or Cancel should be called; either one closes the callback.
type Callback struct {
	ref refcount.Ref[cefCallback]
}

// CallbackFrom takes a new reference on a cef_callback_t that CEF passed to
// a handler, so the callback can outlive the handler call.
func CallbackFrom(p unsafe.Pointer) *Callback {
	if p == nil {
		return nil
	}
	return &Callback{ref: refcount.FromPtrAddRef((*cefCallback)(p))}
}

// Continue resumes the operation and closes the callback.
func (c *Callback) Continue() {
	if c == nil || c.ref.IsNil() {
		return
	}
	c.ref.Ptr().Continue()
	c.Close()
}

// Cancel aborts the operation and closes the callback.
func (c *Callback) Cancel() {
	if c == nil || c.ref.IsNil() {
		return
	}
	c.ref.Ptr().Cancel()
	c.Close()
}

// Close releases the callback without resolving it.
func (c *Callback) Close() {
	if c != nil {
		c.ref.Release()
	}
}
