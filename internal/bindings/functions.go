//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Function bindings - registered by Load.
var (
	cefVersionInfo func(entry int32) int32

	cefPostTask        func(threadID int32, task unsafe.Pointer) int32
	cefPostDelayedTask func(threadID int32, task unsafe.Pointer, delayMs int64) int32
	cefCurrentlyOn     func(threadID int32) int32

	cefTaskRunnerGetForCurrentThread func() unsafe.Pointer
	cefTaskRunnerGetForThread        func(threadID int32) unsafe.Pointer

	cefStringUserfreeFree func(str unsafe.Pointer)

	cefCommandLineCreate    func() unsafe.Pointer
	cefCommandLineGetGlobal func() unsafe.Pointer

	cefStringListAlloc  func() uintptr
	cefStringListSize   func(list uintptr) uintptr
	cefStringListValue  func(list uintptr, index uintptr, value unsafe.Pointer) int32
	cefStringListAppend func(list uintptr, value unsafe.Pointer)
	cefStringListClear  func(list uintptr)
	cefStringListFree   func(list uintptr)
	cefStringListCopy   func(list uintptr) uintptr

	cefStringMapAlloc  func() uintptr
	cefStringMapSize   func(m uintptr) uintptr
	cefStringMapFind   func(m uintptr, key, value unsafe.Pointer) int32
	cefStringMapKey    func(m uintptr, index uintptr, key unsafe.Pointer) int32
	cefStringMapValue  func(m uintptr, index uintptr, value unsafe.Pointer) int32
	cefStringMapAppend func(m uintptr, key, value unsafe.Pointer) int32
	cefStringMapClear  func(m uintptr)
	cefStringMapFree   func(m uintptr)

	cefStringMultimapAlloc     func() uintptr
	cefStringMultimapSize      func(m uintptr) uintptr
	cefStringMultimapFindCount func(m uintptr, key unsafe.Pointer) uintptr
	cefStringMultimapEnumerate func(m uintptr, key unsafe.Pointer, index uintptr, value unsafe.Pointer) int32
	cefStringMultimapKey       func(m uintptr, index uintptr, key unsafe.Pointer) int32
	cefStringMultimapValue     func(m uintptr, index uintptr, value unsafe.Pointer) int32
	cefStringMultimapAppend    func(m uintptr, key, value unsafe.Pointer) int32
	cefStringMultimapClear     func(m uintptr)
	cefStringMultimapFree      func(m uintptr)
)

func registerFunctions(lib uintptr) {
	purego.RegisterLibFunc(&cefVersionInfo, lib, "cef_version_info")

	purego.RegisterLibFunc(&cefPostTask, lib, "cef_post_task")
	purego.RegisterLibFunc(&cefPostDelayedTask, lib, "cef_post_delayed_task")
	purego.RegisterLibFunc(&cefCurrentlyOn, lib, "cef_currently_on")
	purego.RegisterLibFunc(&cefTaskRunnerGetForCurrentThread, lib, "cef_task_runner_get_for_current_thread")
	purego.RegisterLibFunc(&cefTaskRunnerGetForThread, lib, "cef_task_runner_get_for_thread")

	purego.RegisterLibFunc(&cefStringUserfreeFree, lib, "cef_string_userfree_utf16_free")

	purego.RegisterLibFunc(&cefCommandLineCreate, lib, "cef_command_line_create")
	registerOptionalLibFunc(&cefCommandLineGetGlobal, lib, "cef_command_line_get_global")

	purego.RegisterLibFunc(&cefStringListAlloc, lib, "cef_string_list_alloc")
	purego.RegisterLibFunc(&cefStringListSize, lib, "cef_string_list_size")
	purego.RegisterLibFunc(&cefStringListValue, lib, "cef_string_list_value")
	purego.RegisterLibFunc(&cefStringListAppend, lib, "cef_string_list_append")
	purego.RegisterLibFunc(&cefStringListClear, lib, "cef_string_list_clear")
	purego.RegisterLibFunc(&cefStringListFree, lib, "cef_string_list_free")
	registerOptionalLibFunc(&cefStringListCopy, lib, "cef_string_list_copy")

	purego.RegisterLibFunc(&cefStringMapAlloc, lib, "cef_string_map_alloc")
	purego.RegisterLibFunc(&cefStringMapSize, lib, "cef_string_map_size")
	purego.RegisterLibFunc(&cefStringMapFind, lib, "cef_string_map_find")
	purego.RegisterLibFunc(&cefStringMapKey, lib, "cef_string_map_key")
	purego.RegisterLibFunc(&cefStringMapValue, lib, "cef_string_map_value")
	purego.RegisterLibFunc(&cefStringMapAppend, lib, "cef_string_map_append")
	purego.RegisterLibFunc(&cefStringMapClear, lib, "cef_string_map_clear")
	purego.RegisterLibFunc(&cefStringMapFree, lib, "cef_string_map_free")

	purego.RegisterLibFunc(&cefStringMultimapAlloc, lib, "cef_string_multimap_alloc")
	purego.RegisterLibFunc(&cefStringMultimapSize, lib, "cef_string_multimap_size")
	purego.RegisterLibFunc(&cefStringMultimapFindCount, lib, "cef_string_multimap_find_count")
	purego.RegisterLibFunc(&cefStringMultimapEnumerate, lib, "cef_string_multimap_enumerate")
	purego.RegisterLibFunc(&cefStringMultimapKey, lib, "cef_string_multimap_key")
	purego.RegisterLibFunc(&cefStringMultimapValue, lib, "cef_string_multimap_value")
	purego.RegisterLibFunc(&cefStringMultimapAppend, lib, "cef_string_multimap_append")
	purego.RegisterLibFunc(&cefStringMultimapClear, lib, "cef_string_multimap_clear")
	purego.RegisterLibFunc(&cefStringMultimapFree, lib, "cef_string_multimap_free")
}

func registerOptionalLibFunc(fptr any, handle uintptr, name string) {
	defer func() { _ = recover() }()
	purego.RegisterLibFunc(fptr, handle, name)
}

// VersionInfo returns entry of cef_version_info.
// Returns 0 if libcef is not loaded.
func VersionInfo(entry int32) int32 {
	if !loaded.Load() || cefVersionInfo == nil {
		return 0
	}
	return cefVersionInfo(entry)
}

// PostTask posts a cef_task_t to a CEF thread. Returns false if libcef is
// not loaded or CEF refused the task.
func PostTask(threadID int32, task unsafe.Pointer) bool {
	if !loaded.Load() || cefPostTask == nil {
		return false
	}
	return cefPostTask(threadID, task) != 0
}

// PostDelayedTask is PostTask with a delay in milliseconds.
func PostDelayedTask(threadID int32, task unsafe.Pointer, delayMs int64) bool {
	if !loaded.Load() || cefPostDelayedTask == nil {
		return false
	}
	return cefPostDelayedTask(threadID, task, delayMs) != 0
}

// CurrentlyOn reports whether the calling thread is the given CEF thread.
func CurrentlyOn(threadID int32) bool {
	if !loaded.Load() || cefCurrentlyOn == nil {
		return false
	}
	return cefCurrentlyOn(threadID) != 0
}

// TaskRunnerGetForCurrentThread returns the cef_task_runner_t of the calling
// thread with a reference added, or nil off CEF threads.
func TaskRunnerGetForCurrentThread() unsafe.Pointer {
	if !loaded.Load() || cefTaskRunnerGetForCurrentThread == nil {
		return nil
	}
	return cefTaskRunnerGetForCurrentThread()
}

// TaskRunnerGetForThread returns the cef_task_runner_t of a CEF thread with
// a reference added.
func TaskRunnerGetForThread(threadID int32) unsafe.Pointer {
	if !loaded.Load() || cefTaskRunnerGetForThread == nil {
		return nil
	}
	return cefTaskRunnerGetForThread(threadID)
}

// StringUserfreeFree frees a cef_string_userfree_t returned by CEF.
func StringUserfreeFree(str unsafe.Pointer) {
	if !loaded.Load() || cefStringUserfreeFree == nil || str == nil {
		return
	}
	cefStringUserfreeFree(str)
}

// CommandLineCreate returns a new cef_command_line_t holding one reference,
// or nil if libcef is not loaded.
func CommandLineCreate() unsafe.Pointer {
	if !loaded.Load() || cefCommandLineCreate == nil {
		return nil
	}
	return cefCommandLineCreate()
}

// CommandLineGetGlobal returns the process command line with a reference
// added. It is nil before CefInitialize.
func CommandLineGetGlobal() unsafe.Pointer {
	if !loaded.Load() || cefCommandLineGetGlobal == nil {
		return nil
	}
	return cefCommandLineGetGlobal()
}

// StringListAlloc allocates a cef_string_list_t.
func StringListAlloc() uintptr {
	if !loaded.Load() {
		return 0
	}
	return cefStringListAlloc()
}

// StringListSize returns the number of elements in list.
func StringListSize(list uintptr) uintptr {
	if !loaded.Load() || list == 0 {
		return 0
	}
	return cefStringListSize(list)
}

// StringListValue copies element index of list into value.
func StringListValue(list, index uintptr, value unsafe.Pointer) bool {
	if !loaded.Load() || list == 0 {
		return false
	}
	return cefStringListValue(list, index, value) != 0
}

// StringListAppend appends a copy of value to list.
func StringListAppend(list uintptr, value unsafe.Pointer) {
	if !loaded.Load() || list == 0 {
		return
	}
	cefStringListAppend(list, value)
}

// StringListClear removes every element of list.
func StringListClear(list uintptr) {
	if !loaded.Load() || list == 0 {
		return
	}
	cefStringListClear(list)
}

// StringListFree frees list.
func StringListFree(list uintptr) {
	if !loaded.Load() || list == 0 {
		return
	}
	cefStringListFree(list)
}

// StringListCopy duplicates list. Returns 0 when unsupported.
func StringListCopy(list uintptr) uintptr {
	if !loaded.Load() || list == 0 || cefStringListCopy == nil {
		return 0
	}
	return cefStringListCopy(list)
}

// StringMapAlloc allocates a cef_string_map_t.
func StringMapAlloc() uintptr {
	if !loaded.Load() {
		return 0
	}
	return cefStringMapAlloc()
}

// StringMapSize returns the number of pairs in m.
func StringMapSize(m uintptr) uintptr {
	if !loaded.Load() || m == 0 {
		return 0
	}
	return cefStringMapSize(m)
}

// StringMapFind copies the value stored under key into value.
func StringMapFind(m uintptr, key, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMapFind(m, key, value) != 0
}

// StringMapKey copies the key at index into key.
func StringMapKey(m, index uintptr, key unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMapKey(m, index, key) != 0
}

// StringMapValue copies the value at index into value.
func StringMapValue(m, index uintptr, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMapValue(m, index, value) != 0
}

// StringMapAppend adds a key/value pair to m.
func StringMapAppend(m uintptr, key, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMapAppend(m, key, value) != 0
}

// StringMapClear removes every pair of m.
func StringMapClear(m uintptr) {
	if !loaded.Load() || m == 0 {
		return
	}
	cefStringMapClear(m)
}

// StringMapFree frees m.
func StringMapFree(m uintptr) {
	if !loaded.Load() || m == 0 {
		return
	}
	cefStringMapFree(m)
}

// StringMultimapAlloc allocates a cef_string_multimap_t.
func StringMultimapAlloc() uintptr {
	if !loaded.Load() {
		return 0
	}
	return cefStringMultimapAlloc()
}

// StringMultimapSize returns the number of key/value pairs in m.
func StringMultimapSize(m uintptr) uintptr {
	if !loaded.Load() || m == 0 {
		return 0
	}
	return cefStringMultimapSize(m)
}

// StringMultimapFindCount returns how many values key has in m.
func StringMultimapFindCount(m uintptr, key unsafe.Pointer) uintptr {
	if !loaded.Load() || m == 0 {
		return 0
	}
	return cefStringMultimapFindCount(m, key)
}

// StringMultimapEnumerate copies the index-th value of key into value.
func StringMultimapEnumerate(m uintptr, key unsafe.Pointer, index uintptr, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMultimapEnumerate(m, key, index, value) != 0
}

// StringMultimapKey copies the key at index into key.
func StringMultimapKey(m, index uintptr, key unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMultimapKey(m, index, key) != 0
}

// StringMultimapValue copies the value at index into value.
func StringMultimapValue(m, index uintptr, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMultimapValue(m, index, value) != 0
}

// StringMultimapAppend adds a key/value pair to m.
func StringMultimapAppend(m uintptr, key, value unsafe.Pointer) bool {
	if !loaded.Load() || m == 0 {
		return false
	}
	return cefStringMultimapAppend(m, key, value) != 0
}

// StringMultimapClear removes every pair of m.
func StringMultimapClear(m uintptr) {
	if !loaded.Load() || m == 0 {
		return
	}
	cefStringMultimapClear(m)
}

// StringMultimapFree frees m.
func StringMultimapFree(m uintptr) {
	if !loaded.Load() || m == 0 {
		return
	}
	cefStringMultimapFree(m)
}
