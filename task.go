//go:build !ios && !android && (amd64 || arm64)

package cefgo

import (
	"fmt"
	"time"
	"unsafe"

	"go.uber.org/zap"

	"github.com/obinnaokechukwu/cefgo/internal/bindings"
	"github.com/obinnaokechukwu/cefgo/internal/logging"
	"github.com/obinnaokechukwu/cefgo/protect"
	"github.com/obinnaokechukwu/cefgo/refcount"
)

// ThreadID identifies one of CEF's named threads (cef_thread_id_t).
type ThreadID int32

// Thread ID constants matching CEF's TID_* values.
const (
	ThreadUI               ThreadID = 0 // Browser process main thread
	ThreadFileBackground   ThreadID = 1
	ThreadFileUserVisible  ThreadID = 2
	ThreadFileUserBlocking ThreadID = 3
	ThreadProcessLauncher  ThreadID = 4
	ThreadIO               ThreadID = 5
	ThreadRenderer         ThreadID = 6 // Render process main thread
)

// String returns the string representation of the thread ID.
func (t ThreadID) String() string {
	switch t {
	case ThreadUI:
		return "UI"
	case ThreadFileBackground:
		return "FILE_BACKGROUND"
	case ThreadFileUserVisible:
		return "FILE_USER_VISIBLE"
	case ThreadFileUserBlocking:
		return "FILE_USER_BLOCKING"
	case ThreadProcessLauncher:
		return "PROCESS_LAUNCHER"
	case ThreadIO:
		return "IO"
	case ThreadRenderer:
		return "RENDERER"
	default:
		return fmt.Sprintf("ThreadID(%d)", int32(t))
	}
}

// taskFunc is the Go side of a cef_task_t. The closure is taken on the first
// execute, so it runs at most once however often CEF calls in.
type taskFunc struct {
	fn *protect.Exclusive[func()]
}

func (t taskFunc) Execute() {
	if fn := t.fn.Take(); fn != nil {
		fn()
	}
}

// Task is a closure packaged as a cef_task_t. Posting a task hands its
// reference to CEF; a task that is never posted must be closed.
//
// A Task is not safe for concurrent use.
type Task struct {
	ref refcount.Ref[cefTask]
}

// NewTask wraps fn in a cef_task_t. fn runs at most once.
func NewTask(fn func()) *Task {
	impl := taskFunc{fn: protect.NewExclusive(fn)}
	return &Task{ref: refcount.FromPtr(newCefTask(impl))}
}

// Post hands the task to CEF for execution on thread. The task is consumed
// whether or not CEF accepts it.
func (t *Task) Post(thread ThreadID) error {
	return t.post(thread, 0)
}

// PostDelayed is Post with a delay. Delays are truncated to milliseconds.
func (t *Task) PostDelayed(thread ThreadID, delay time.Duration) error {
	return t.post(thread, delay)
}

func (t *Task) post(thread ThreadID, delay time.Duration) error {
	if t.ref.IsNil() {
		return ErrClosed
	}
	if !bindings.IsLoaded() {
		return ErrNotLoaded
	}

	p := unsafe.Pointer(t.ref.IntoRaw())
	var ok bool
	if delay > 0 {
		ok = bindings.PostDelayedTask(int32(thread), p, delay.Milliseconds())
	} else {
		ok = bindings.PostTask(int32(thread), p)
	}
	if !ok {
		logging.Named("task").Warn("task refused",
			zap.Stringer("thread", thread),
			zap.Duration("delay", delay))
		return fmt.Errorf("%w: thread %s", ErrPostTaskFailed, thread)
	}
	return nil
}

// Close releases a task that was never posted. It is a no-op after Post.
func (t *Task) Close() {
	t.ref.Release()
}

// PostTask runs fn on the given CEF thread.
func PostTask(thread ThreadID, fn func()) error {
	return PostDelayedTask(thread, 0, fn)
}

// PostDelayedTask runs fn on the given CEF thread after delay.
func PostDelayedTask(thread ThreadID, delay time.Duration, fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}
	t := NewTask(fn)
	if err := t.PostDelayed(thread, delay); err != nil {
		t.Close()
		return err
	}
	return nil
}

// CurrentlyOn reports whether the calling OS thread is the given CEF thread.
func CurrentlyOn(thread ThreadID) bool {
	return bindings.CurrentlyOn(int32(thread))
}

// TaskRunner posts tasks to the thread it belongs to. It wraps a
// cef_task_runner_t and is safe to use from any thread.
type TaskRunner struct {
	ref refcount.Ref[cefTaskRunner]
}

// TaskRunnerForCurrentThread returns the task runner of the calling thread,
// or nil if it is not a CEF thread.
func TaskRunnerForCurrentThread() *TaskRunner {
	return newTaskRunner(bindings.TaskRunnerGetForCurrentThread())
}

// TaskRunnerForThread returns the task runner for a named CEF thread, or nil.
func TaskRunnerForThread(thread ThreadID) *TaskRunner {
	return newTaskRunner(bindings.TaskRunnerGetForThread(int32(thread)))
}

func newTaskRunner(p unsafe.Pointer) *TaskRunner {
	if p == nil {
		return nil
	}
	return &TaskRunner{ref: refcount.FromPtr((*cefTaskRunner)(p))}
}

// IsSame reports whether r and other refer to the same task runner.
func (r *TaskRunner) IsSame(other *TaskRunner) bool {
	if r == nil || other == nil || r.ref.IsNil() || other.ref.IsNil() {
		return false
	}
	return r.ref.Ptr().IsSame(other.ref)
}

// BelongsToCurrentThread reports whether the calling thread runs r's tasks.
func (r *TaskRunner) BelongsToCurrentThread() bool {
	if r == nil || r.ref.IsNil() {
		return false
	}
	return r.ref.Ptr().BelongsToCurrentThread()
}

// BelongsToThread reports whether r runs tasks for the given CEF thread.
func (r *TaskRunner) BelongsToThread(thread ThreadID) bool {
	if r == nil || r.ref.IsNil() {
		return false
	}
	return r.ref.Ptr().BelongsToThread(int32(thread))
}

// PostTask runs fn on r's thread.
func (r *TaskRunner) PostTask(fn func()) error {
	return r.PostDelayedTask(0, fn)
}

// PostDelayedTask runs fn on r's thread after delay.
func (r *TaskRunner) PostDelayedTask(delay time.Duration, fn func()) error {
	if r == nil || r.ref.IsNil() {
		return ErrClosed
	}
	if fn == nil {
		return ErrNilCallback
	}

	t := NewTask(fn)
	defer t.Close()

	var ok bool
	if delay > 0 {
		ok = r.ref.Ptr().PostDelayedTask(t.ref, delay.Milliseconds())
	} else {
		ok = r.ref.Ptr().PostTask(t.ref)
	}
	if !ok {
		return ErrPostTaskFailed
	}
	return nil
}

// Close releases the task runner.
func (r *TaskRunner) Close() {
	if r != nil {
		r.ref.Release()
	}
}
