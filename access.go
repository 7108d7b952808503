package dynrec

import (
	"reflect"
	"unsafe"

	"github.com/typeforge/dynrec/errors"
)

// fieldPtr validates the index and the requested type against the
// schema, returning the field's slot. This is the single checkpoint
// both the checked and unchecked tiers funnel through.
func fieldPtr[T any](r *Record, index int) (unsafe.Pointer, *errors.Error) {
	if r.base == nil {
		return nil, errors.Consumed(errors.PhaseAccess)
	}
	if index < 0 || index >= len(r.schema.fields) {
		return nil, errors.OutOfBounds(errors.PhaseAccess, index, len(r.schema.fields))
	}
	f := &r.schema.fields[index]
	if requested := reflect.TypeOf((*T)(nil)).Elem(); requested != f.desc.typ {
		return nil, errors.TypeMismatch(errors.PhaseAccess, f.name, requested.String(), f.desc.name)
	}
	return unsafe.Add(r.base, f.offset), nil
}

// Ref returns a pointer to the named field's value. The pointer borrows
// the record's storage and is valid no longer than the record.
func Ref[T any](r *Record, name string) (*T, error) {
	index, ok := r.schema.byName[name]
	if !ok {
		return nil, errors.FieldUnknown(errors.PhaseAccess, name)
	}
	return RefAt[T](r, index)
}

// RefAt is Ref by field index.
func RefAt[T any](r *Record, index int) (*T, error) {
	p, err := fieldPtr[T](r, index)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Clone returns an owned copy of the named field's value. Values
// implementing Retainer have their reference count bumped, so the copy
// must be balanced by its own Release.
func Clone[T any](r *Record, name string) (T, error) {
	index, ok := r.schema.byName[name]
	if !ok {
		var zero T
		return zero, errors.FieldUnknown(errors.PhaseAccess, name)
	}
	return CloneAt[T](r, index)
}

// CloneAt is Clone by field index.
func CloneAt[T any](r *Record, index int) (T, error) {
	p, err := fieldPtr[T](r, index)
	if err != nil {
		var zero T
		return zero, err
	}
	v := *(*T)(p)
	if ret, ok := any(v).(Retainer); ok {
		ret.Retain()
	}
	return v, nil
}

// Set stores val over the named field's slot. The previous value is
// overwritten without being released; callers replacing a
// destructor-carrying value must clone or release it first. On failure
// the returned error carries val back so it is not lost.
func Set[T any](r *Record, name string, val T) error {
	index, ok := r.schema.byName[name]
	if !ok {
		e := errors.FieldUnknown(errors.PhaseAccess, name)
		e.Value = val
		return e
	}
	return SetAt(r, index, val)
}

// SetAt is Set by field index.
func SetAt[T any](r *Record, index int, val T) error {
	p, err := fieldPtr[T](r, index)
	if err != nil {
		err.Value = val
		return err
	}
	*(*T)(p) = val
	return nil
}

// MustRef is Ref for callers that have established correctness by
// construction; any failure panics with the same structured error.
func MustRef[T any](r *Record, name string) *T {
	v, err := Ref[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustRefAt is RefAt, panicking on failure.
func MustRefAt[T any](r *Record, index int) *T {
	v, err := RefAt[T](r, index)
	if err != nil {
		panic(err)
	}
	return v
}

// MustClone is Clone, panicking on failure.
func MustClone[T any](r *Record, name string) T {
	v, err := Clone[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustCloneAt is CloneAt, panicking on failure.
func MustCloneAt[T any](r *Record, index int) T {
	v, err := CloneAt[T](r, index)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSet is Set, panicking on failure.
func MustSet[T any](r *Record, name string, val T) {
	if err := Set(r, name, val); err != nil {
		panic(err)
	}
}

// MustSetAt is SetAt, panicking on failure.
func MustSetAt[T any](r *Record, index int, val T) {
	if err := SetAt(r, index, val); err != nil {
		panic(err)
	}
}

// RefUnchecked returns a pointer to the field at index with no
// validation whatsoever. The caller must guarantee the index exists
// and that T has the declared field type's exact size, alignment, and
// bit representation; misuse is undefined behavior.
func RefUnchecked[T any](r *Record, index int) *T {
	return (*T)(unsafe.Add(r.base, r.schema.fields[index].offset))
}

// CloneUnchecked copies out the field at index with no validation,
// bumping the reference count of Retainer values. Same contract as
// RefUnchecked.
func CloneUnchecked[T any](r *Record, index int) T {
	v := *RefUnchecked[T](r, index)
	if ret, ok := any(v).(Retainer); ok {
		ret.Retain()
	}
	return v
}

// SetUnchecked stores val at index with no validation. Same contract
// as RefUnchecked.
func SetUnchecked[T any](r *Record, index int, val T) {
	*(*T)(unsafe.Add(r.base, r.schema.fields[index].offset)) = val
}
