//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/cefgo/protect"
)

// CEF calls each of these callbacks once, when the cookie manager operation
// it was passed to finishes. The Go functions are taken on the first call so
// a stray second call is ignored.
type (
	CompletionCallback    func()
	SetCookieCallback     func(success bool)
	DeleteCookiesCallback func(numDeleted int)
)

type completionCallback struct {
	fn *protect.Exclusive[CompletionCallback]
}

func (c completionCallback) OnComplete() {
	if fn := c.fn.Take(); fn != nil {
		fn()
	}
}

// NewCompletionCallback wraps fn in a cef_completion_callback_t holding one
// reference. It is used by cookie manager flush_store and similar calls.
func NewCompletionCallback(fn CompletionCallback) unsafe.Pointer {
	if fn == nil {
		return nil
	}
	return unsafe.Pointer(newCefCompletionCallback(completionCallback{fn: protect.NewExclusive(fn)}))
}

type setCookieCallback struct {
	fn *protect.Exclusive[SetCookieCallback]
}

func (c setCookieCallback) OnComplete(success bool) {
	if fn := c.fn.Take(); fn != nil {
		fn(success)
	}
}

// NewSetCookieCallback wraps fn in a cef_set_cookie_callback_t holding one
// reference. fn receives whether the cookie was set.
func NewSetCookieCallback(fn SetCookieCallback) unsafe.Pointer {
	if fn == nil {
		return nil
	}
	return unsafe.Pointer(newCefSetCookieCallback(setCookieCallback{fn: protect.NewExclusive(fn)}))
}

type deleteCookiesCallback struct {
	fn *protect.Exclusive[DeleteCookiesCallback]
}

func (c deleteCookiesCallback) OnComplete(numDeleted int32) {
	if fn := c.fn.Take(); fn != nil {
		fn(int(numDeleted))
	}
}

// NewDeleteCookiesCallback wraps fn in a cef_delete_cookies_callback_t
// holding one reference. fn receives the number of cookies deleted.
func NewDeleteCookiesCallback(fn DeleteCookiesCallback) unsafe.Pointer {
	if fn == nil {
		return nil
	}
	return unsafe.Pointer(newCefDeleteCookiesCallback(deleteCookiesCallback{fn: protect.NewExclusive(fn)}))
}
