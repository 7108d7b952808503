package shared

import (
	"sync"
	"testing"
)

func TestSharedLifecycle(t *testing.T) {
	s := New(42)
	if s.IsNil() {
		t.Fatal("fresh cell reports nil")
	}
	if got := s.Refs(); got != 1 {
		t.Fatalf("refs after New: got %d, want 1", got)
	}
	if got := *s.Get(); got != 42 {
		t.Errorf("value: got %d, want 42", got)
	}

	s.Retain()
	if got := s.Refs(); got != 2 {
		t.Errorf("refs after retain: got %d, want 2", got)
	}

	s.Release()
	s.Release()
	if got := s.Refs(); got != 0 {
		t.Errorf("refs after balanced releases: got %d, want 0", got)
	}
}

func TestSharedCopiesShareOneCount(t *testing.T) {
	a := New("payload")
	b := a // handle copy, not an ownership transfer

	b.Retain()
	if got := a.Refs(); got != 2 {
		t.Errorf("refs through copy: got %d, want 2", got)
	}

	*b.Get() = "rewritten"
	if got := *a.Get(); got != "rewritten" {
		t.Errorf("copies should alias one cell, got %q", got)
	}

	a.Release()
	b.Release()
}

type cascading struct {
	inner Shared[int32]
}

func (c cascading) Release() {
	c.inner.Release()
}

func TestSharedReleaseCascades(t *testing.T) {
	inner := New(int32(7))
	outer := New(cascading{inner: inner})

	outer.Release()
	if got := inner.Refs(); got != 0 {
		t.Errorf("inner refs after cascade: got %d, want 0", got)
	}
}

func TestSharedZeroValue(t *testing.T) {
	var s Shared[int]
	if !s.IsNil() {
		t.Error("zero Shared should report nil")
	}
	if s.Get() != nil {
		t.Error("zero Shared Get should return nil")
	}
	if s.Refs() != 0 {
		t.Error("zero Shared refs should be 0")
	}
	s.Retain() // all no-ops
	s.Release()
}

func TestSharedConcurrentRetainRelease(t *testing.T) {
	s := New(0)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.Retain()
				s.Release()
			}
		}()
	}
	wg.Wait()

	if got := s.Refs(); got != 1 {
		t.Errorf("refs after churn: got %d, want 1", got)
	}
	s.Release()
}

func TestLocked(t *testing.T) {
	l := NewLocked([]int{1, 2})
	if l.IsNil() {
		t.Fatal("fresh handle reports nil")
	}

	l.With(func(v *[]int) {
		*v = append(*v, 3)
	})

	var got []int
	l.With(func(v *[]int) { got = append(got, *v...) })
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("guarded value: got %v", got)
	}

	prev := l.Swap([]int{9})
	if len(prev) != 3 {
		t.Errorf("swap previous: got %v", prev)
	}
}

func TestLockedConcurrent(t *testing.T) {
	l := NewLocked(0)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.With(func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	var got int
	l.With(func(v *int) { got = *v })
	if got != workers*1000 {
		t.Errorf("counter: got %d, want %d", got, workers*1000)
	}
}

func TestRWLocked(t *testing.T) {
	l := NewRWLocked(map[string]int{"a": 1})
	if l.IsNil() {
		t.Fatal("fresh handle reports nil")
	}

	l.Write(func(m *map[string]int) {
		(*m)["b"] = 2
	})

	var got int
	l.Read(func(m map[string]int) { got = m["b"] })
	if got != 2 {
		t.Errorf("read after write: got %d, want 2", got)
	}
}

func TestRWLockedConcurrentReaders(t *testing.T) {
	l := NewRWLocked(41)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers + 1)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				l.Read(func(v int) { _ = v })
			}
		}()
	}
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			l.Write(func(v *int) { *v++ })
		}
	}()
	wg.Wait()

	var got int
	l.Read(func(v int) { got = v })
	if got != 141 {
		t.Errorf("value after writes: got %d, want 141", got)
	}
}
