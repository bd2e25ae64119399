//go:build cefdebug && windows

package protect

import "golang.org/x/sys/windows"

func threadID() int { return int(windows.GetCurrentThreadId()) }
