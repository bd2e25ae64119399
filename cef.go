//go:build !ios && !android && (amd64 || arm64)

// Package cefgo bridges Go and the Chromium Embedded Framework C API without
// CGO, using purego.
//
// The hard part of binding CEF is ownership. Every CEF object starts with a
// cef_base_ref_counted_t header, and objects implemented in Go must hand CEF
// function pointers that keep the Go value alive until CEF drops its last
// reference. This package builds on:
//
//   - refcount: wrapped objects, owned references (Ref) and the count table
//   - trampoline: the purego callbacks installed in CEF's structs
//   - registry: weak Go-side lookup of the owner of a native object
//   - protect: thread-boundary wrappers for CEF's threading rules
//   - cefstring: cef_string_t, string lists and multimaps
//
// The types in this package (Task, StringVisitor, the cookie callbacks,
// Callback, CommandLine and App) are the concrete bindings built on top.
package cefgo

//go:generate go run ./cmd/trampgen -i capi.yaml -o zz_generated_capi.go

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/bindings"
	"github.com/obinnaokechukwu/cefgo/internal/logging"
)

// Config controls how libcef is located and how the bridge logs.
type Config struct {
	// LibraryPath is the libcef file, or the directory of a CEF binary
	// distribution. Empty means CEF_PATH and the platform defaults.
	LibraryPath string

	// SearchPaths are extra directories tried after LibraryPath.
	SearchPaths []string

	// Logger replaces the default logger when non-nil.
	Logger *zap.Logger
}

// Init loads libcef from the default locations. It is safe to call multiple
// times.
func Init() error {
	return InitWith(Config{})
}

// InitWith loads libcef as configured by cfg. Only the first successful or
// failed load counts; later calls return the same result.
func InitWith(cfg Config) error {
	if cfg.Logger != nil {
		logging.Set(cfg.Logger)
	}
	return bindings.LoadWith(bindings.Options{
		LibraryPath: cfg.LibraryPath,
		SearchPaths: cfg.SearchPaths,
	})
}

// IsLoaded returns true if libcef has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// LibraryPath returns the file libcef was loaded from, or "" before Init.
func LibraryPath() string {
	return bindings.Path()
}

// VersionInfo is the CEF and Chromium version of the loaded libcef.
type VersionInfo struct {
	Major, Minor, Patch, Commit                        int
	ChromeMajor, ChromeMinor, ChromeBuild, ChromePatch int
}

// String formats v the way CEF names its builds, e.g.
// "120.1.10+chromium-120.0.6099.109".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d+chromium-%d.%d.%d.%d",
		v.Major, v.Minor, v.Patch,
		v.ChromeMajor, v.ChromeMinor, v.ChromeBuild, v.ChromePatch)
}

// Version returns the version of the loaded libcef. It is the zero value if
// libcef is not loaded.
func Version() VersionInfo {
	e := func(i int32) int { return int(bindings.VersionInfo(i)) }
	return VersionInfo{
		Major:       e(0),
		Minor:       e(1),
		Patch:       e(2),
		Commit:      e(3),
		ChromeMajor: e(4),
		ChromeMinor: e(5),
		ChromeBuild: e(6),
		ChromePatch: e(7),
	}
}
