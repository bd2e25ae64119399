//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"runtime"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/obinnaokechukwu/cefgo/trampoline"
)

// testStruct stands in for a CEF callback struct: header plus one slot.
type testStruct struct {
	Base
	Slot uintptr
}

type counter struct {
	drops atomic.Int32
	value int
}

func (c *counter) Drop() { c.drops.Add(1) }

func wrapCounter(t *testing.T) (*testStruct, *counter) {
	t.Helper()
	c := &counter{value: 7}
	p := Wrap(testStruct{Slot: 0xdead}, c)
	require.NotNil(t, p)
	return p, c
}

func TestWrapInstallsHeader(t *testing.T) {
	p, c := wrapCounter(t)
	defer Release(unsafe.Pointer(p))

	assert.Equal(t, unsafe.Sizeof(testStruct{}), p.Size)
	assert.NotZero(t, p.AddRef)
	assert.NotZero(t, p.Release)
	assert.NotZero(t, p.HasOneRef)
	assert.NotZero(t, p.HasAtLeastOneRef)
	assert.Equal(t, uintptr(0xdead), p.Slot, "slots outside the header are kept")

	assert.Equal(t, trampoline.Registered(SlotAddRef), p.AddRef)
	assert.Equal(t, trampoline.Registered(SlotRelease), p.Release)

	n, ok := Count(unsafe.Pointer(p))
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.True(t, HasOneRef(unsafe.Pointer(p)))

	assert.Same(t, c, Impl[testStruct, *counter](unsafe.Pointer(p)))
}

func TestWrapSharesTrampolines(t *testing.T) {
	a, _ := wrapCounter(t)
	b := Wrap(Base{}, "plain")
	defer Release(unsafe.Pointer(a))
	defer Release(unsafe.Pointer(b))

	assert.Equal(t, a.AddRef, b.AddRef)
	assert.Equal(t, a.Release, b.Release)
	assert.Equal(t, unsafe.Sizeof(Base{}), b.Size)
	assert.Equal(t, "plain", Impl[Base, string](unsafe.Pointer(b)))
}

func TestLifecycleOneAddRefTwoReleases(t *testing.T) {
	p, c := wrapCounter(t)
	ptr := unsafe.Pointer(p)
	before := Len()

	AddRef(ptr)
	assert.False(t, Release(ptr))
	assert.Zero(t, c.drops.Load())
	assert.True(t, Release(ptr))

	_, ok := Count(ptr)
	assert.False(t, ok, "entry must be gone")
	assert.Equal(t, before-1, Len())
	assert.Equal(t, int32(1), c.drops.Load())

	// Further releases on the dead pointer are not tracked and drop nothing.
	assert.False(t, Release(ptr))
	assert.Equal(t, int32(1), c.drops.Load())
}

func TestNoPrematureFree(t *testing.T) {
	p, _ := wrapCounter(t)
	ptr := unsafe.Pointer(p)

	assert.True(t, HasAtLeastOneRef(ptr))
	assert.True(t, Release(ptr))
	assert.False(t, HasAtLeastOneRef(ptr))
	assert.False(t, HasOneRef(ptr))
}

func TestUnknownPointerIsNoop(t *testing.T) {
	var other testStruct
	ptr := unsafe.Pointer(&other)
	before := Len()

	AddRef(ptr)
	assert.False(t, Release(ptr))
	assert.False(t, HasOneRef(ptr))
	assert.False(t, HasAtLeastOneRef(ptr))
	_, ok := Count(ptr)
	assert.False(t, ok)
	assert.Equal(t, before, Len())
}

func TestTrampolinesThroughNativeCalls(t *testing.T) {
	p, c := wrapCounter(t)
	self := uintptr(unsafe.Pointer(p))

	trampoline.Invoke(p.AddRef, self)
	assert.Equal(t, uintptr(0), trampoline.Invoke(p.HasOneRef, self)&0xffffffff)
	assert.Equal(t, uintptr(1), trampoline.Invoke(p.HasAtLeastOneRef, self)&0xffffffff)

	first := int32(trampoline.Invoke(p.Release, self))
	assert.Equal(t, int32(0), first, "first release keeps the object alive")
	assert.Equal(t, uintptr(1), trampoline.Invoke(p.HasOneRef, self)&0xffffffff)

	second := int32(trampoline.Invoke(p.Release, self))
	assert.Equal(t, int32(1), second, "second release frees the object")
	assert.Equal(t, int32(1), c.drops.Load())
}

func TestConcurrentAddRefRelease(t *testing.T) {
	p, c := wrapCounter(t)
	defer Release(unsafe.Pointer(p))

	const iterations = 1000
	var g errgroup.Group
	for range 2 {
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			for range iterations {
				addRefTrampoline(purego.CDecl{}, unsafe.Pointer(p))
				releaseTrampoline(purego.CDecl{}, unsafe.Pointer(p))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	n, ok := Count(unsafe.Pointer(p))
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Zero(t, c.drops.Load())
}

func TestDropRunsOutsideTableLock(t *testing.T) {
	other, _ := wrapCounter(t)
	defer Release(unsafe.Pointer(other))

	var seen int
	p := Wrap(testStruct{}, dropFunc(func() {
		// Re-entering the table from a destructor must not deadlock.
		seen, _ = Count(unsafe.Pointer(other))
	}))

	assert.True(t, Release(unsafe.Pointer(p)))
	assert.Equal(t, 1, seen)
}

type dropFunc func()

func (f dropFunc) Drop() { f() }

type badLayout struct {
	Slot uintptr
	Base
}

func TestWrapRejectsBadLayout(t *testing.T) {
	assert.Panics(t, func() { Wrap(badLayout{}, 1) })
	assert.Panics(t, func() { Wrap(uintptr(0), 1) })
	// The cached verdict still panics.
	assert.Panics(t, func() { Wrap(badLayout{}, 2) })
}

func TestRefReleaseAndClone(t *testing.T) {
	r := WrapRef(testStruct{}, &counter{})
	require.False(t, r.IsNil())
	ptr := unsafe.Pointer(r.Ptr())

	c := r.Clone()
	n, _ := Count(ptr)
	assert.Equal(t, 2, n)

	assert.False(t, c.Release())
	assert.True(t, c.IsNil())
	assert.False(t, c.Release(), "second release of the same Ref is a no-op")

	assert.True(t, r.Release())
	_, ok := Count(ptr)
	assert.False(t, ok)
}

func TestRefIntoRaw(t *testing.T) {
	r := WrapRef(testStruct{}, &counter{})
	p := r.IntoRaw()
	assert.True(t, r.IsNil())

	owned := FromPtr(p)
	assert.True(t, owned.Release())
}

func TestRefNil(t *testing.T) {
	var r Ref[testStruct]
	assert.True(t, r.IsNil())
	assert.Nil(t, r.Ptr())
	assert.False(t, r.Release())
	assert.True(t, r.Clone().IsNil())
	assert.True(t, FromPtrAddRef[testStruct](nil).IsNil())
}

func TestRefPoison(t *testing.T) {
	r := WrapRef(testStruct{}, &counter{})
	ptr := unsafe.Pointer(r.Ptr())
	alias := FromPtrAddRef(r.Ptr())

	r.Poison()
	assert.True(t, r.IsNil())
	assert.True(t, IsPoisoned(ptr))

	assert.Panics(t, func() { alias.Ptr() })
	assert.Panics(t, func() { alias.Clone() })
	assert.False(t, alias.Release())

	// The table still holds the two counts; free the object directly.
	assert.False(t, Release(ptr))
	assert.True(t, Release(ptr))
	unpoison(ptr)
	assert.False(t, IsPoisoned(ptr))
}

func TestRefOnForeignHeader(t *testing.T) {
	var adds, releases int
	fake := &testStruct{}
	fake.AddRef = trampoline.Callback("test.foreign.add_ref", func(_ purego.CDecl, _ unsafe.Pointer) {
		adds++
	})
	fake.Release = trampoline.Callback("test.foreign.release", func(_ purego.CDecl, _ unsafe.Pointer) int32 {
		releases++
		return 0
	})

	r := FromPtrAddRef(fake)
	assert.Equal(t, 1, adds)
	assert.False(t, r.Release())
	assert.Equal(t, 1, releases)
}
