//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"errors"

	"github.com/obinnaokechukwu/cefgo/internal/bindings"
)

// Common errors
var (
	// ErrNotLoaded indicates libcef is not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates Init could not find libcef.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrClosed indicates the object has been closed.
	ErrClosed = errors.New("cefgo: object is closed")

	// ErrPostTaskFailed indicates CEF refused a task, usually because the
	// target thread does not exist or is shutting down.
	ErrPostTaskFailed = errors.New("cefgo: task could not be posted")

	// ErrNoCommandLine indicates the global command line does not exist yet.
	ErrNoCommandLine = errors.New("cefgo: global command line not available")

	// ErrNilCallback indicates a nil function was passed where a callback
	// is required.
	ErrNilCallback = errors.New("cefgo: nil callback")
)
