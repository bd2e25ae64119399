//go:build cefdebug

package protect

import (
	"fmt"
	"sync"
)

// Checked reports whether the cefdebug access checks are compiled in.
const Checked = true

type exclusiveGuard struct {
	mu sync.Mutex
}

func (g *exclusiveGuard) enter() {
	if !g.mu.TryLock() {
		panic("protect: concurrent or re-entrant access to Exclusive value")
	}
}

func (g *exclusiveGuard) exit() {
	g.mu.Unlock()
}

type sharedGuard struct {
	mu    sync.Mutex
	owner int
	depth int
}

func (g *sharedGuard) enter() {
	tid := threadID()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.depth > 0 && g.owner != tid {
		panic(fmt.Sprintf("protect: Shared value entered from thread %d while thread %d is inside", tid, g.owner))
	}
	g.owner = tid
	g.depth++
}

func (g *sharedGuard) exit() {
	g.mu.Lock()
	g.depth--
	g.mu.Unlock()
}
