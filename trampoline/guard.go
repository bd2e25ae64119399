//go:build !ios && !android && (amd64 || arm64)

package trampoline

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
)

// exit ends the process. Tests swap it out.
var exit = os.Exit

// abort terminates the process after a panic inside a trampoline. The exit
// never goes through the logger. Tests swap it out.
var abort = func(slot string, recovered any, stack []byte) {
	logPanic(slot, recovered, stack)
	exit(2)
}

func logPanic(slot string, recovered any, stack []byte) {
	defer func() { _ = recover() }()
	l := logging.Named("trampoline")
	l.Error("panic in native callback",
		zap.String("slot", slot),
		zap.String("recover", fmt.Sprintf("%v", recovered)),
		zap.ByteString("stack", stack))
	_ = l.Sync()
}

// Guard runs fn on behalf of the named slot. Unwinding across a native frame
// is undefined behaviour, so a panic in fn is logged and the process exits.
func Guard(slot string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			abort(slot, r, debug.Stack())
		}
	}()
	fn()
}

// GuardValue is Guard for slots that return a value. If the process abort is
// intercepted (tests only), the zero value is returned.
func GuardValue[R any](slot string, fn func() R) (result R) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			result = zero
			abort(slot, r, debug.Stack())
		}
	}()
	return fn()
}
