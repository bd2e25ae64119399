//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/logging"
	"github.com/obinnaokechukwu/cefgo/ptrid"
	"github.com/obinnaokechukwu/cefgo/refcount"
	"github.com/obinnaokechukwu/cefgo/registry"
)

// AppHandler provides process-level handlers to CEF (cef_app_t). Embed
// BaseAppHandler to implement only the methods you need.
type AppHandler interface {
	// OnBeforeCommandLineProcessing may inspect or modify the command line
	// before CEF and Chromium process it. processType is empty in the
	// browser process. commandLine is only valid during the call.
	OnBeforeCommandLineProcessing(processType string, commandLine *CommandLine)

	// OnRegisterCustomSchemes receives the cef_scheme_registrar_t of the
	// process. It is only valid during the call.
	OnRegisterCustomSchemes(registrar unsafe.Pointer)

	// The getters return a borrowed pointer to a ref-counted handler struct
	// (usually created with refcount.Wrap), or nil. CEF receives its own
	// reference.
	ResourceBundleHandler() unsafe.Pointer
	BrowserProcessHandler() unsafe.Pointer
	RenderProcessHandler() unsafe.Pointer
}

// BaseAppHandler implements AppHandler with no-ops.
type BaseAppHandler struct{}

func (BaseAppHandler) OnBeforeCommandLineProcessing(string, *CommandLine) {}
func (BaseAppHandler) OnRegisterCustomSchemes(unsafe.Pointer) {}
func (BaseAppHandler) ResourceBundleHandler() unsafe.Pointer { return nil }
func (BaseAppHandler) BrowserProcessHandler() unsafe.Pointer { return nil }
func (BaseAppHandler) RenderProcessHandler() unsafe.Pointer { return nil }

// App owns a cef_app_t whose slots call handler.
//
// The native object does not keep the App alive. It finds the App through a
// weak registry entry on every call, so once the App is closed or garbage
// collected, callbacks CEF still makes are ignored. Keep the App reachable
// for as long as CEF should see the handler.
type App struct {
	id      ptrid.Identity
	ref     refcount.Ref[cefApp]
	handler AppHandler

	closeOnce sync.Once
	cleanup   runtime.Cleanup
}

// NewApp wraps handler in a cef_app_t.
func NewApp(handler AppHandler) *App {
	if handler == nil {
		handler = BaseAppHandler{}
	}

	d := &appDispatch{}
	p := newCefApp(d)
	d.id = ptrid.Of(unsafe.Pointer(p))

	a := &App{
		id:      d.id,
		ref:     refcount.FromPtr(p),
		handler: handler,
	}
	registry.Register(a.id, a)
	a.cleanup = runtime.AddCleanup(a, releaseApp, p)

	logging.Named("app").Debug("app created", zap.Stringer("id", a.id))
	return a
}

func releaseApp(p *cefApp) {
	r := refcount.FromPtr(p)
	r.Release()
}

// Retain returns the cef_app_t with a new reference for the callee, for
// passing to cef_execute_process or cef_initialize.
func (a *App) Retain() unsafe.Pointer {
	if a == nil || a.ref.IsNil() {
		return nil
	}
	r := a.ref.Clone()
	return unsafe.Pointer(r.IntoRaw())
}

// Close detaches the handler and releases the App's own reference. CEF may
// hold further references; their callbacks become no-ops.
func (a *App) Close() {
	if a == nil {
		return
	}
	a.closeOnce.Do(func() {
		registry.Unregister[App](a.id)
		a.cleanup.Stop()
		a.ref.Release()
	})
}

// appDispatch is the implementation behind the cef_app_t. It holds only the
// identity of its own native object.
type appDispatch struct {
	id ptrid.Identity
}

func (d *appDispatch) handler() AppHandler {
	a := registry.Get[App](d.id)
	if a == nil {
		logging.Named("app").Debug("callback on detached app ignored", zap.Stringer("id", d.id))
		return nil
	}
	return a.handler
}

func (d *appDispatch) OnBeforeCommandLineProcessing(processType string, commandLine refcount.Ref[cefCommandLine]) {
	h := d.handler()
	if h == nil {
		return
	}
	c := &CommandLine{ref: commandLine.Clone()}
	defer c.Close()
	h.OnBeforeCommandLineProcessing(processType, c)
}

func (d *appDispatch) OnRegisterCustomSchemes(registrar unsafe.Pointer) {
	if h := d.handler(); h != nil {
		h.OnRegisterCustomSchemes(registrar)
	}
}

func (d *appDispatch) GetResourceBundleHandler() unsafe.Pointer {
	return d.get(AppHandler.ResourceBundleHandler)
}

func (d *appDispatch) GetBrowserProcessHandler() unsafe.Pointer {
	return d.get(AppHandler.BrowserProcessHandler)
}

func (d *appDispatch) GetRenderProcessHandler() unsafe.Pointer {
	return d.get(AppHandler.RenderProcessHandler)
}

// get returns the handler's struct with a reference added for CEF.
func (d *appDispatch) get(getter func(AppHandler) unsafe.Pointer) unsafe.Pointer {
	h := d.handler()
	if h == nil {
		return nil
	}
	p := getter(h)
	if p == nil {
		return nil
	}
	r := refcount.FromPtrAddRef((*refcount.Base)(p))
	return unsafe.Pointer(r.IntoRaw())
}

func (d *appDispatch) Drop() {
	logging.Named("app").Debug("cef_app_t released", zap.Stringer("id", d.id))
}
