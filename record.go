package dynrec

import (
	"reflect"
	"unsafe"
)

// Record is a live instance of a schema: an exclusively owned storage
// buffer plus a shared reference to the schema that shaped it. Records
// are not internally synchronized.
type Record struct {
	schema *Schema
	store  reflect.Value // pointer to the storage struct; keeps it reachable
	base   unsafe.Pointer
}

// NewRecord allocates zeroed storage for the schema and writes each
// field's default value at its offset.
func NewRecord(s *Schema) *Record {
	store := reflect.New(s.storage)
	base := store.UnsafePointer()

	for i := range s.fields {
		f := &s.fields[i]
		if f.desc.defaultFn != nil {
			f.desc.defaultFn(unsafe.Add(base, f.offset))
		}
	}

	return &Record{schema: s, store: store, base: base}
}

// Schema returns the schema this record was created from.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Size returns the storage size in bytes.
func (r *Record) Size() uintptr {
	return r.schema.size
}

// Bytes returns the raw storage image, or nil once the record has been
// consumed or destroyed. The slice borrows the record's storage.
func (r *Record) Bytes() []byte {
	if r.base == nil {
		return nil
	}
	return unsafe.Slice((*byte)(r.base), r.schema.size)
}

// Destroy runs the destructor of every destructor-carrying field and
// releases the storage. It does nothing when the storage has already
// been consumed by Consume, already destroyed, or has zero size; each
// field's destructor therefore runs at most once.
func (r *Record) Destroy() {
	if r.base == nil {
		return
	}
	if r.schema.size != 0 {
		for i := range r.schema.fields {
			f := &r.schema.fields[i]
			if f.desc.drop != nil {
				f.desc.drop(unsafe.Add(r.base, f.offset))
			}
		}
	}
	r.base = nil
	r.store = reflect.Value{}
}
