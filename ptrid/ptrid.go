// Package ptrid derives comparable identity keys from raw pointer values.
//
// An Identity is a 64-bit digest of the address bits, never of the pointee.
// The bridge tables key on it so that one table can hold pointers to every
// native struct kind without caring about the pointee's Go type.
//
// Identities are not collision-free. Tables that key on them keep the raw
// address next to the entry and compare it on lookup.
package ptrid

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Identity is a hashed, type-erased key for a pointer.
type Identity uint64

// Nil is the identity of the nil pointer. No non-nil address maps to it.
const Nil Identity = 0

// Of returns the identity of p.
func Of(p unsafe.Pointer) Identity {
	return OfAddr(uintptr(p))
}

// OfAddr returns the identity of the address addr.
func OfAddr(addr uintptr) Identity {
	if addr == 0 {
		return Nil
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(addr))
	id := Identity(xxhash.Sum64(buf[:]))
	if id == Nil {
		// 0 is reserved for nil.
		id = 1
	}
	return id
}

// String returns the identity as 16 hex digits.
func (id Identity) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
