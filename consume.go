package dynrec

import (
	"reflect"

	"github.com/typeforge/dynrec/errors"
)

// Consume reinterprets the record's entire storage as T and transfers
// ownership of the bytes to the returned value. The record is marked
// consumed: its Destroy performs no further field teardown, so
// resources now owned by the returned T are released exactly once, by
// T's owner.
//
// T's size must equal the schema's total size; a mismatch is a
// programming error and panics before any byte is read. Beyond the
// size check, the caller must guarantee T's field layout matches the
// schema's packing.
func Consume[T any](r *Record) T {
	if r.base == nil {
		panic(errors.Consumed(errors.PhaseConsume))
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Size() != r.schema.size {
		panic(errors.SizeMismatch(r.schema.size, typ.Size(), typ.String()))
	}

	v := *(*T)(r.base)
	r.base = nil
	r.store = reflect.Value{}
	return v
}
