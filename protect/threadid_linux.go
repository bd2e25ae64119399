//go:build cefdebug && linux

package protect

import "golang.org/x/sys/unix"

func threadID() int { return unix.Gettid() }
