//go:build !ios && !android && (amd64 || arm64)

// Package platform knows where each operating system keeps libcef.
package platform

import (
	"path/filepath"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// cefgo only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// FrameworkName is the macOS framework bundle that carries libcef.
const FrameworkName = "Chromium Embedded Framework.framework"

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension = libraryExtension(runtime.GOOS)

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix = libraryPrefix(runtime.GOOS)

func libraryExtension(goos string) string {
	switch goos {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default: // linux, freebsd, etc.
		return ".so"
	}
}

func libraryPrefix(goos string) string {
	if goos == "windows" {
		return ""
	}
	return "lib"
}

// FormatLibraryName returns the file name of a plain shared library.
//
// Examples:
//   - Linux:   FormatLibraryName("linux", "cef")   -> "libcef.so"
//   - Windows: FormatLibraryName("windows", "cef") -> "libcef.dll"
//
// CEF ships its Windows DLL with the lib prefix, so the prefix is kept for
// "cef" on every OS.
func FormatLibraryName(goos, name string) string {
	prefix := libraryPrefix(goos)
	if name == "cef" {
		prefix = "lib"
	}
	return prefix + name + libraryExtension(goos)
}

// CEFLibraryNames returns the relative paths libcef may have under a
// distribution or application directory, most specific first.
func CEFLibraryNames(goos string) []string {
	switch goos {
	case "darwin":
		binary := filepath.Join(FrameworkName, "Chromium Embedded Framework")
		return []string{
			binary,
			filepath.Join("Frameworks", binary),
			filepath.Join("Release", binary),
		}
	default:
		name := FormatLibraryName(goos, "cef")
		return []string{
			name,
			filepath.Join("Release", name),
		}
	}
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
