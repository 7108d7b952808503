package dynrec

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/typeforge/dynrec/errors"
	"github.com/typeforge/dynrec/shared"
)

// tracked counts destructor invocations through a shared counter.
type tracked struct {
	released *int32
}

func (t tracked) Release() {
	if t.released != nil {
		(*t.released)++
	}
}

func TestRecordDefaults(t *testing.T) {
	s := NewSchema("defaults", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	if got := MustClone[uint8](rec, "o"); got != 0 {
		t.Errorf("o: got %d, want 0", got)
	}
	if got := MustClone[int32](rec, "a"); got != 0 {
		t.Errorf("a: got %d, want 0", got)
	}
	if got := MustClone[string](rec, "c"); got != "" {
		t.Errorf("c: got %q, want empty", got)
	}
	if got := MustClone[[]int32](rec, "d"); got != nil {
		t.Errorf("d: got %v, want nil", got)
	}
	if got := MustClone[shared.Shared[struct{ tag uint64 }]](rec, "e"); !got.IsNil() {
		t.Error("e: want nil shared cell")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	type cases struct {
		name string
		run  func(t *testing.T, rec *Record)
	}

	s := NewSchema("bench", benchFields())

	tests := []cases{
		{"uint8", func(t *testing.T, rec *Record) {
			MustSet(rec, "o", uint8(200))
			if got := MustClone[uint8](rec, "o"); got != 200 {
				t.Errorf("got %d, want 200", got)
			}
		}},
		{"int32", func(t *testing.T, rec *Record) {
			if err := Set(rec, "a", int32(1337)); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, err := Clone[int32](rec, "a")
			if err != nil {
				t.Fatalf("clone: %v", err)
			}
			if got != 1337 {
				t.Errorf("got %d, want 1337", got)
			}
		}},
		{"float32", func(t *testing.T, rec *Record) {
			MustSet(rec, "b", float32(5))
			if got := MustClone[float32](rec, "b"); got != 5 {
				t.Errorf("got %v, want 5", got)
			}
		}},
		{"string", func(t *testing.T, rec *Record) {
			MustSet(rec, "c", "Hello World")
			if got := MustClone[string](rec, "c"); got != "Hello World" {
				t.Errorf("got %q", got)
			}
		}},
		{"int32_slice", func(t *testing.T, rec *Record) {
			want := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
			MustSet(rec, "d", want)
			got := MustClone[[]int32](rec, "d")
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		}},
		{"shared", func(t *testing.T, rec *Record) {
			cell := shared.New(struct{ tag uint64 }{tag: 9})
			MustSet(rec, "e", cell)
			got := MustRef[shared.Shared[struct{ tag uint64 }]](rec, "e")
			if got.Get().tag != 9 {
				t.Errorf("got tag %d, want 9", got.Get().tag)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecord(s)
			defer rec.Destroy()
			tc.run(t, rec)
		})
	}
}

func TestRecordRefBorrowsStorage(t *testing.T) {
	s := NewSchema("borrow", []FieldSpec{{Name: "a", Desc: Describe[int32]()}})
	rec := NewRecord(s)
	defer rec.Destroy()

	p := MustRef[int32](rec, "a")
	*p = 99
	if got := MustClone[int32](rec, "a"); got != 99 {
		t.Errorf("write through ref: got %d, want 99", got)
	}
}

func TestRecordTypeMismatch(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	_, err := Ref[float32](rec, "a")
	if err == nil {
		t.Fatal("expected type mismatch")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindTypeMismatch}) {
		t.Errorf("got %v, want type_mismatch", err)
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("not a structured error")
	}
	if e.Requested != "float32" || e.Declared != "int32" || e.Field != "a" {
		t.Errorf("context: requested=%q declared=%q field=%q", e.Requested, e.Declared, e.Field)
	}
}

func TestRecordSetErrorsCarryValue(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	tests := []struct {
		name string
		err  error
		kind errors.Kind
	}{
		{"wrong_type", Set(rec, "a", "oops"), errors.KindTypeMismatch},
		{"unknown_name", Set(rec, "zz", "oops"), errors.KindFieldUnknown},
		{"bad_index", SetAt(rec, 42, "oops"), errors.KindOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil {
				t.Fatal("expected error")
			}
			var e *errors.Error
			if !stderrors.As(tc.err, &e) {
				t.Fatalf("not a structured error: %v", tc.err)
			}
			if e.Kind != tc.kind {
				t.Errorf("kind: got %s, want %s", e.Kind, tc.kind)
			}
			if e.Value != "oops" {
				t.Errorf("value not carried back: got %v", e.Value)
			}
		})
	}
}

func TestRecordFieldUnknown(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	if _, err := Clone[int32](rec, "missing"); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindFieldUnknown}) {
		t.Errorf("got %v, want field_unknown", err)
	}
}

func TestRecordIndexOutOfBounds(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	for _, index := range []int{-1, s.Len(), 100} {
		if _, err := RefAt[int32](rec, index); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindOutOfBounds}) {
			t.Errorf("index %d: got %v, want out_of_bounds", index, err)
		}
	}
}

func TestRecordMustPanics(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	defer rec.Destroy()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindTypeMismatch}) {
			t.Errorf("panic value: %v", r)
		}
	}()

	MustRef[float64](rec, "a")
}

func TestRecordCloneRetains(t *testing.T) {
	s := NewSchema("cell", []FieldSpec{{Name: "c", Desc: Describe[shared.Shared[int32]]()}})
	rec := NewRecord(s)

	cell := shared.New(int32(5))
	MustSet(rec, "c", cell)
	if got := cell.Refs(); got != 1 {
		t.Fatalf("refs after set: got %d, want 1", got)
	}

	clone := MustClone[shared.Shared[int32]](rec, "c")
	if got := cell.Refs(); got != 2 {
		t.Errorf("refs after clone: got %d, want 2", got)
	}

	clone.Release()
	rec.Destroy()
	if got := cell.Refs(); got != 0 {
		t.Errorf("refs after release+destroy: got %d, want 0", got)
	}
}

func TestRecordDestroyRunsDestructorsOnce(t *testing.T) {
	var released int32
	s := NewSchema("tracked", []FieldSpec{
		{Name: "t", Desc: Describe[tracked]()},
		{Name: "n", Desc: Describe[int32]()},
	})
	rec := NewRecord(s)
	MustSet(rec, "t", tracked{released: &released})

	rec.Destroy()
	if released != 1 {
		t.Fatalf("released: got %d, want 1", released)
	}

	rec.Destroy() // second destroy must not revisit the fields
	if released != 1 {
		t.Errorf("released after double destroy: got %d, want 1", released)
	}
}

func TestRecordOverwriteDoesNotRelease(t *testing.T) {
	// Overwriting a field does not release the prior value; that is
	// the documented placement-overwrite contract. The first cell keeps
	// the reference the record never gave back.
	s := NewSchema("cell", []FieldSpec{{Name: "c", Desc: Describe[shared.Shared[int32]]()}})
	rec := NewRecord(s)

	first := shared.New(int32(1))
	second := shared.New(int32(2))
	MustSet(rec, "c", first)
	MustSet(rec, "c", second)

	rec.Destroy()
	if got := first.Refs(); got != 1 {
		t.Errorf("first refs: got %d, want 1 (leaked by overwrite)", got)
	}
	if got := second.Refs(); got != 0 {
		t.Errorf("second refs: got %d, want 0", got)
	}
	first.Release()
}

func TestRecordAccessAfterDestroy(t *testing.T) {
	s := NewSchema("bench", benchFields())
	rec := NewRecord(s)
	rec.Destroy()

	if _, err := Ref[int32](rec, "a"); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindConsumed}) {
		t.Errorf("got %v, want consumed", err)
	}
	if rec.Bytes() != nil {
		t.Error("bytes after destroy: want nil")
	}
}
