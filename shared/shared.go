package shared

import "sync/atomic"

// Shared is an atomically reference-counted cell holding a single
// value of type T. The zero Shared holds nothing and all operations on
// it are no-ops.
type Shared[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	refs  atomic.Int64
	value T
}

// New creates a cell holding v with a reference count of one.
func New[T any](v T) Shared[T] {
	c := &cell[T]{value: v}
	c.refs.Store(1)
	return Shared[T]{cell: c}
}

// IsNil reports whether the cell holds nothing.
func (s Shared[T]) IsNil() bool {
	return s.cell == nil
}

// Get returns a pointer to the held value, or nil for the zero Shared.
// The pointer is valid while at least one reference is held.
func (s Shared[T]) Get() *T {
	if s.cell == nil {
		return nil
	}
	return &s.cell.value
}

// Refs returns the current reference count, zero for the zero Shared.
func (s Shared[T]) Refs() int64 {
	if s.cell == nil {
		return 0
	}
	return s.cell.refs.Load()
}

// Retain increments the reference count. Every copy of a Shared value
// that takes ownership must be balanced by one Release.
func (s Shared[T]) Retain() {
	if s.cell != nil {
		s.cell.refs.Add(1)
	}
}

// Release decrements the reference count. When the count reaches zero
// and the held value itself has a Release method, the release cascades
// into it. Releasing the zero Shared does nothing.
func (s Shared[T]) Release() {
	if s.cell == nil {
		return
	}
	if s.cell.refs.Add(-1) == 0 {
		if r, ok := any(s.cell.value).(interface{ Release() }); ok {
			r.Release()
		}
	}
}
