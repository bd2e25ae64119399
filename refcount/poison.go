//go:build !ios && !android && (amd64 || arm64)

package refcount

import (
	"unsafe"

	mapset "github.com/deckarep/golang-set/v2"
)

// poisoned holds addresses whose Ref was explicitly poisoned. Any further use
// of such a Ref panics until Wrap reuses the address.
var poisoned = mapset.NewSet[uintptr]()

func poison(p unsafe.Pointer) {
	poisoned.Add(uintptr(p))
}

func unpoison(p unsafe.Pointer) {
	poisoned.Remove(uintptr(p))
}

// IsPoisoned reports whether p was poisoned and not reused since.
func IsPoisoned(p unsafe.Pointer) bool {
	return p != nil && poisoned.Contains(uintptr(p))
}
