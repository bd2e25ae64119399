package ptrid

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfIsStable(t *testing.T) {
	v := new(int64)
	p := unsafe.Pointer(v)

	assert.Equal(t, Of(p), Of(p))
	assert.Equal(t, Of(p), OfAddr(uintptr(p)))
}

func TestNilPointer(t *testing.T) {
	assert.Equal(t, Nil, Of(nil))
	assert.Equal(t, Nil, OfAddr(0))
}

func TestDistinctLiveAddresses(t *testing.T) {
	a := new([16]byte)
	b := new([16]byte)

	assert.NotEqual(t, Of(unsafe.Pointer(a)), Of(unsafe.Pointer(b)))
}

func TestRandomAddressesRarelyCollide(t *testing.T) {
	const n = 100000
	rng := rand.New(rand.NewSource(7))

	seen := make(map[Identity]uintptr, n)
	collisions := 0
	for i := 0; i < n; i++ {
		// Aligned like real allocations.
		addr := uintptr(rng.Uint64()) &^ 7
		if addr == 0 {
			continue
		}
		id := OfAddr(addr)
		require.NotEqual(t, Nil, id, "non-nil address mapped to Nil")
		require.Equal(t, id, OfAddr(addr))

		if prev, ok := seen[id]; ok && prev != addr {
			collisions++
		}
		seen[id] = addr
	}
	// 64-bit digests over 1e5 keys: expected collisions are ~3e-10.
	assert.Zero(t, collisions)
}

func TestSequentialAddresses(t *testing.T) {
	seen := make(map[Identity]bool)
	for addr := uintptr(0x1000); addr < 0x1000+8*4096; addr += 8 {
		id := OfAddr(addr)
		assert.False(t, seen[id], "collision at %#x", addr)
		seen[id] = true
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "0000000000000000", Nil.String())
	assert.Equal(t, "00000000000000ff", Identity(0xff).String())
}
