//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles loading libcef and registering the C API
// functions the bridge calls directly, using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
	"github.com/obinnaokechukwu/cefgo/internal/platform"
)

// EnvPath names the environment variable holding the directory of a CEF
// binary distribution.
const EnvPath = "CEF_PATH"

// ErrNotLoaded is returned when libcef functions are called before Load().
var ErrNotLoaded = errors.New("cefgo: libcef not loaded; call cefgo.Init() first")

// ErrLibraryNotFound is returned when libcef cannot be found.
var ErrLibraryNotFound = errors.New("cefgo: libcef not found")

// Options selects where Load looks for libcef.
type Options struct {
	// LibraryPath is the libcef file itself, or a directory containing it.
	LibraryPath string
	// SearchPaths are tried after LibraryPath and CEF_PATH.
	SearchPaths []string
}

var (
	libCEF     uintptr
	libCEFPath string

	// loaded is stored after every binding is registered, so a true Load
	// publishes them to any thread.
	loaded   atomic.Bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if libcef has been successfully loaded.
func IsLoaded() bool {
	return loaded.Load()
}

// Lib returns the libcef handle, or 0 before Load.
func Lib() uintptr {
	return libCEF
}

// Path returns the file libcef was loaded from.
func Path() string {
	return libCEFPath
}

// Load loads libcef from the default locations.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	return LoadWith(Options{})
}

// LoadWith loads libcef using opts and registers all function bindings.
// Only the first call has any effect; later calls return its result.
func LoadWith(opts Options) error {
	loadOnce.Do(func() {
		loadErr = doLoad(opts)
		if loadErr == nil {
			loaded.Store(true)
		}
	})
	return loadErr
}

func doLoad(opts Options) error {
	log := logging.Named("bindings")

	var lastErr error
	for _, path := range candidates(opts, runtime.GOOS) {
		lib, err := tryOpen(path)
		if err != nil {
			lastErr = err
			continue
		}
		libCEF, libCEFPath = lib, path
		log.Info("loaded libcef", zap.String("path", path))
		registerFunctions(lib)
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrLibraryNotFound, lastErr)
	}
	return ErrLibraryNotFound
}

// candidates lists the paths Load tries, in order: the configured path,
// CEF_PATH, configured search paths, the executable's directory, the
// platform's standard directories and finally the bare names for the system
// loader.
func candidates(opts Options, goos string) []string {
	names := platform.CEFLibraryNames(goos)

	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	addDir := func(dir string) {
		if dir == "" {
			return
		}
		for _, n := range names {
			add(filepath.Join(dir, n))
		}
	}

	if p := opts.LibraryPath; p != "" {
		if fi, err := os.Stat(p); err == nil && fi.IsDir() {
			addDir(p)
		} else {
			add(p)
		}
	}
	addDir(os.Getenv(EnvPath))
	for _, dir := range opts.SearchPaths {
		addDir(dir)
	}
	if exe, err := os.Executable(); err == nil {
		addDir(filepath.Dir(exe))
	}
	for _, dir := range searchPaths(goos) {
		addDir(dir)
	}
	add(names[0])
	return out
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// libcef's helper libraries resolve symbols against it, so it must be global.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for libcef and returns its full path without loading
// it. This is useful for diagnostics.
func FindLibrary(opts Options) (string, error) {
	for _, path := range candidates(opts, runtime.GOOS) {
		if !filepath.IsAbs(path) {
			continue
		}
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, nil
		}
	}
	return "", ErrLibraryNotFound
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	return searchPaths(runtime.GOOS)
}

func searchPaths(goos string) []string {
	var paths []string

	switch goos {
	case "linux", "freebsd":
		// Check LD_LIBRARY_PATH first
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/opt/cef/Release",
			"/usr/local/lib",
			"/usr/lib",
		)

	case "darwin":
		// Check DYLD_FRAMEWORK_PATH first
		if fwPath := os.Getenv("DYLD_FRAMEWORK_PATH"); fwPath != "" {
			paths = append(paths, filepath.SplitList(fwPath)...)
		}
		if exe, err := os.Executable(); err == nil {
			// <App>.app/Contents/MacOS/<exe> -> <App>.app/Contents
			paths = append(paths, filepath.Dir(filepath.Dir(exe)))
		}
		paths = append(paths,
			"/Library/Frameworks",
			"/opt/cef/Release",
		)

	case "windows":
		// Check PATH
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		paths = append(paths,
			"C:\\cef\\Release",
		)
	}

	return paths
}
