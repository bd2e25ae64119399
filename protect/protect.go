// Package protect holds values that CEF callbacks touch from native threads.
//
// CEF invokes a given callback object from one thread at a time (usually a
// fixed named thread such as TID_UI), but Go cannot see that contract. The
// types here document it at the use site and give direct, unsynchronized
// access to the wrapped value. Building with the cefdebug tag turns the
// contract into runtime checks that panic on violation.
package protect

// Exclusive owns a value that is mutated by at most one caller at a time.
type Exclusive[T any] struct {
	guard exclusiveGuard
	value T
}

// NewExclusive wraps v.
func NewExclusive[T any](v T) *Exclusive[T] {
	return &Exclusive[T]{value: v}
}

// With calls fn with a pointer to the value. The pointer must not escape fn.
func (e *Exclusive[T]) With(fn func(*T)) {
	e.guard.enter()
	defer e.guard.exit()
	fn(&e.value)
}

// Replace stores v and returns the previous value.
func (e *Exclusive[T]) Replace(v T) T {
	e.guard.enter()
	defer e.guard.exit()
	old := e.value
	e.value = v
	return old
}

// Take returns the value and leaves the zero value behind. It is how a
// one-shot callback consumes its closure.
func (e *Exclusive[T]) Take() T {
	var zero T
	return e.Replace(zero)
}

// Shared owns a value that is read, never replaced, from whichever thread
// CEF calls in on.
type Shared[T any] struct {
	guard sharedGuard
	value T
}

// NewShared wraps v.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{value: v}
}

// Get returns the value.
func (s *Shared[T]) Get() T {
	s.guard.enter()
	defer s.guard.exit()
	return s.value
}

// Do calls fn with the value. Under cefdebug a second OS thread entering
// while fn runs panics; re-entry from the same thread is allowed.
func (s *Shared[T]) Do(fn func(T)) {
	s.guard.enter()
	defer s.guard.exit()
	fn(s.value)
}
