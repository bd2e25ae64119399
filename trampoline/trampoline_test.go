//go:build !ios && !android && (amd64 || arm64)

package trampoline

import (
	"io"
	"runtime"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
)

func TestBoolConversions(t *testing.T) {
	assert.Equal(t, int32(1), Bool(true))
	assert.Equal(t, int32(0), Bool(false))
	assert.True(t, IsTrue(1))
	assert.True(t, IsTrue(-3))
	assert.False(t, IsTrue(0))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "", GoString(nil))

	buf := []byte("about:blank\x00trailing")
	assert.Equal(t, "about:blank", GoString(&buf[0]))

	empty := []byte{0}
	assert.Equal(t, "", GoString(&empty[0]))
}

func TestSlice(t *testing.T) {
	assert.Nil(t, Slice[int32](nil, 4))

	backing := []int32{1, 2, 3, 4}
	assert.Nil(t, Slice(&backing[0], 0))

	s := Slice(&backing[1], 2)
	assert.Equal(t, []int32{2, 3}, s)
	s[0] = 20
	assert.Equal(t, int32(20), backing[1], "Slice must not copy")
}

func TestInvokeNil(t *testing.T) {
	assert.Zero(t, Invoke(0, 1, 2))
}

func TestCallbackIsCachedPerKey(t *testing.T) {
	fn := func(_ purego.CDecl, a, b int32) int32 { return a + b }

	p1 := Callback("test.add", fn)
	p2 := Callback("test.add", func(_ purego.CDecl, a, b int32) int32 { return a - b })

	require.NotZero(t, p1)
	assert.Equal(t, p1, p2)
	assert.Equal(t, p1, Registered("test.add"))
	assert.Zero(t, Registered("test.unknown"))
}

func TestCallbackRoundTrip(t *testing.T) {
	ptr := Callback("test.mul", func(_ purego.CDecl, a, b int32) int32 { return a * b })

	got := int32(Invoke(ptr, 6, 7))
	assert.Equal(t, int32(42), got)
}

func TestCallbackPointerArgument(t *testing.T) {
	ptr := Callback("test.store", func(_ purego.CDecl, dst unsafe.Pointer, v int32) {
		*(*int32)(dst) = v
	})

	out := new(int32)
	var pinner runtime.Pinner
	pinner.Pin(out)
	defer pinner.Unpin()

	Invoke(ptr, uintptr(unsafe.Pointer(out)), 9)
	assert.Equal(t, int32(9), *out)
}

//go:noinline
func growStack(depth int) byte {
	var frame [1024]byte
	frame[depth%len(frame)] = byte(depth)
	if depth == 0 {
		return frame[0]
	}
	return frame[depth%len(frame)] + growStack(depth-1)
}

func TestCallbackPointerArgumentAcrossStackGrowth(t *testing.T) {
	ptr := Callback("test.store_after_grow", func(_ purego.CDecl, dst unsafe.Pointer, v int32) {
		growStack(256)
		*(*int32)(dst) = v
	})

	out := new(int32)
	var pinner runtime.Pinner
	pinner.Pin(out)
	defer pinner.Unpin()

	for i := int32(1); i <= 5; i++ {
		Invoke(ptr, uintptr(unsafe.Pointer(out)), uintptr(i))
		assert.Equal(t, i, *out)
	}
}

func interceptAbort(t *testing.T) *[]string {
	t.Helper()
	var slots []string
	prev := abort
	abort = func(slot string, recovered any, stack []byte) {
		slots = append(slots, slot)
	}
	t.Cleanup(func() { abort = prev })
	return &slots
}

func TestGuardPassesThrough(t *testing.T) {
	slots := interceptAbort(t)

	ran := false
	Guard("cef_task_t.execute", func() { ran = true })

	assert.True(t, ran)
	assert.Empty(t, *slots)
}

func TestGuardAbortsOnPanic(t *testing.T) {
	slots := interceptAbort(t)

	assert.NotPanics(t, func() {
		Guard("cef_task_t.execute", func() { panic("boom") })
	})
	assert.Equal(t, []string{"cef_task_t.execute"}, *slots)
}

func TestGuardValue(t *testing.T) {
	slots := interceptAbort(t)

	assert.Equal(t, int32(7), GuardValue("slot.ok", func() int32 { return 7 }))

	got := GuardValue("slot.bad", func() int32 { panic("nope") })
	assert.Zero(t, got)
	assert.Equal(t, []string{"slot.bad"}, *slots)
}

func interceptExit(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	prev := exit
	exit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exit = prev })
	return &codes
}

func useLogger(t *testing.T, l *zap.Logger) {
	t.Helper()
	prev := logging.L()
	logging.Set(l)
	t.Cleanup(func() { logging.Set(prev) })
}

func TestGuardLogsAndExits(t *testing.T) {
	codes := interceptExit(t)
	core, logs := observer.New(zapcore.DebugLevel)
	useLogger(t, zap.New(core))

	Guard("cef_task_t.execute", func() { panic("boom") })

	assert.Equal(t, []int{2}, *codes)
	entries := logs.FilterMessage("panic in native callback").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cef_task_t.execute", entries[0].ContextMap()["slot"])
	assert.Equal(t, "boom", entries[0].ContextMap()["recover"])
}

func TestGuardExitsWhateverTheLogger(t *testing.T) {
	loggers := map[string]*zap.Logger{
		"fatal hook panics": zap.NewNop().WithOptions(zap.WithFatalHook(zapcore.WriteThenPanic)),
		"entry hook panics": zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(io.Discard), zapcore.DebugLevel,
		), zap.Hooks(func(zapcore.Entry) error { panic("hook") })),
	}
	for name, l := range loggers {
		t.Run(name, func(t *testing.T) {
			codes := interceptExit(t)
			useLogger(t, l)

			assert.NotPanics(t, func() {
				Guard("cef_task_t.execute", func() { panic("boom") })
			})
			assert.NotPanics(t, func() {
				GuardValue("cef_task_t.execute", func() int32 { panic("boom") })
			})
			assert.Equal(t, []int{2, 2}, *codes)
		})
	}
}
