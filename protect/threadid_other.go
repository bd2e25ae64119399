//go:build cefdebug && !linux && !windows

package protect

// No portable thread id: Shared only counts depth here.
func threadID() int { return 0 }
