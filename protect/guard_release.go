//go:build !cefdebug

package protect

// Checks compile away in normal builds.

type exclusiveGuard struct{}

func (exclusiveGuard) enter() {}
func (exclusiveGuard) exit()  {}

type sharedGuard struct{}

func (sharedGuard) enter() {}
func (sharedGuard) exit()  {}

// Checked reports whether the cefdebug access checks are compiled in.
const Checked = false
