//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// We only support 64-bit platforms
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name string
		goos string
		want string
	}{
		{"cef", "linux", "libcef.so"},
		{"cef", "freebsd", "libcef.so"},
		{"cef", "darwin", "libcef.dylib"},
		{"cef", "windows", "libcef.dll"},
		{"cef_sandbox", "windows", "cef_sandbox.dll"},
		{"cef_sandbox", "linux", "libcef_sandbox.so"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			got := FormatLibraryName(tt.goos, tt.name)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %q) = %q, want %q", tt.goos, tt.name, got, tt.want)
			}
		})
	}
}

func TestCEFLibraryNames(t *testing.T) {
	linux := CEFLibraryNames("linux")
	if len(linux) == 0 || linux[0] != "libcef.so" {
		t.Errorf("linux names = %v", linux)
	}

	windows := CEFLibraryNames("windows")
	if windows[0] != "libcef.dll" {
		t.Errorf("windows names = %v", windows)
	}

	darwin := CEFLibraryNames("darwin")
	want := filepath.Join(FrameworkName, "Chromium Embedded Framework")
	if darwin[0] != want {
		t.Errorf("darwin first name = %q, want %q", darwin[0], want)
	}
	for _, n := range darwin {
		if filepath.Base(n) != "Chromium Embedded Framework" {
			t.Errorf("darwin name %q does not point at the framework binary", n)
		}
	}
}
