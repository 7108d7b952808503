package dynrec

import (
	"fmt"
	"reflect"

	"github.com/typeforge/dynrec/errors"
	"github.com/typeforge/dynrec/internal/layout"
)

// FieldSpec names one field of a schema under construction.
type FieldSpec struct {
	Name string
	Desc *Descriptor
}

// Field is one placed field of a built schema.
type Field struct {
	name   string
	desc   *Descriptor
	offset uintptr
}

// Name returns the field's name.
func (f Field) Name() string { return f.name }

// Offset returns the field's byte offset within record storage.
func (f Field) Offset() uintptr { return f.offset }

// Size returns the field's size in bytes.
func (f Field) Size() uintptr { return f.desc.size }

// Type returns the field's declared compile-time type.
func (f Field) Type() reflect.Type { return f.desc.typ }

// TypeName returns the display name of the field's declared type.
func (f Field) TypeName() string { return f.desc.name }

// HasDestructor reports whether the field's values require teardown.
func (f Field) HasDestructor() bool { return f.desc.drop != nil }

// Schema is a named, ordered composition of fields with computed byte
// offsets. Once built, a schema is immutable and shared by reference
// across every record created from it.
type Schema struct {
	name    string
	fields  []Field
	byName  map[string]int
	size    uintptr
	align   uintptr
	storage reflect.Type
}

// NewSchema packs the given fields in declaration order and returns the
// built schema. A repeated field name or a zero-size field type is a
// programming error and panics with a structured error; construction
// failures are not recoverable conditions.
func NewSchema(name string, fields []FieldSpec) *Schema {
	byName := make(map[string]int, len(fields))
	items := make([]layout.Item, len(fields))
	structFields := make([]reflect.StructField, len(fields))

	for i, f := range fields {
		if _, dup := byName[f.Name]; dup {
			panic(errors.DuplicateField(name, f.Name))
		}
		if f.Desc.size == 0 {
			panic(errors.New(errors.PhaseCompose, errors.KindUnsupported).
				Field(f.Name).
				Declared(f.Desc.name).
				Detail("zero-size field types are not supported").
				Build())
		}
		byName[f.Name] = i
		items[i] = layout.Item{Size: f.Desc.size, Align: f.Desc.align}
		structFields[i] = reflect.StructField{
			Name: fmt.Sprintf("F%d", i),
			Type: f.Desc.typ,
		}
	}

	placed := layout.Pack(items)

	// The storage struct type gives record buffers an accurate GC
	// pointer map. Go packs structs with the same greedy rule, so its
	// offsets must agree with ours; a disagreement means the packing
	// math is wrong and proceeding would corrupt memory.
	storage := reflect.StructOf(structFields)
	if storage.Size() != placed.Size {
		panic(fmt.Sprintf("dynrec: schema %q packed to %d bytes, storage struct is %d",
			name, placed.Size, storage.Size()))
	}

	placedFields := make([]Field, len(fields))
	for i, f := range fields {
		if got := storage.Field(i).Offset; got != placed.Offsets[i] {
			panic(fmt.Sprintf("dynrec: schema %q field %q packed at %d, storage struct has %d",
				name, f.Name, placed.Offsets[i], got))
		}
		placedFields[i] = Field{name: f.Name, desc: f.Desc, offset: placed.Offsets[i]}
	}

	return &Schema{
		name:    name,
		fields:  placedFields,
		byName:  byName,
		size:    placed.Size,
		align:   placed.Align,
		storage: storage,
	}
}

// Name returns the schema's registered name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Size returns the total storage size in bytes, including tail padding.
func (s *Schema) Size() uintptr { return s.size }

// Align returns the widest field alignment.
func (s *Schema) Align() uintptr { return s.align }

// Index returns the position of the named field.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// Field returns the field at index i. The index must be in range.
func (s *Schema) Field(i int) Field {
	return s.fields[i]
}
