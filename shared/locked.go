package shared

import "sync"

// Locked is a copyable handle to mutex-guarded state. The zero Locked
// has no state; create one with NewLocked before use.
type Locked[T any] struct {
	s *lockedState[T]
}

type lockedState[T any] struct {
	mu    sync.Mutex
	value T
}

// NewLocked creates guarded state initialized to v.
func NewLocked[T any](v T) Locked[T] {
	return Locked[T]{s: &lockedState[T]{value: v}}
}

// IsNil reports whether the handle has no state behind it.
func (l Locked[T]) IsNil() bool {
	return l.s == nil
}

// With runs fn with exclusive access to the guarded value.
func (l Locked[T]) With(fn func(*T)) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	fn(&l.s.value)
}

// Swap replaces the guarded value and returns the previous one.
func (l Locked[T]) Swap(v T) T {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	prev := l.s.value
	l.s.value = v
	return prev
}

// RWLocked is a copyable handle to state guarded by a reader/writer
// lock. The zero RWLocked has no state; create one with NewRWLocked.
type RWLocked[T any] struct {
	s *rwLockedState[T]
}

type rwLockedState[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRWLocked creates guarded state initialized to v.
func NewRWLocked[T any](v T) RWLocked[T] {
	return RWLocked[T]{s: &rwLockedState[T]{value: v}}
}

// IsNil reports whether the handle has no state behind it.
func (l RWLocked[T]) IsNil() bool {
	return l.s == nil
}

// Read runs fn with shared access to the guarded value.
func (l RWLocked[T]) Read(fn func(T)) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	fn(l.s.value)
}

// Write runs fn with exclusive access to the guarded value.
func (l RWLocked[T]) Write(fn func(*T)) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	fn(&l.s.value)
}
