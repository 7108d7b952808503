package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompose   Phase = "compose"   // schema construction
	PhaseAccess    Phase = "access"    // field reads and writes
	PhaseConsume   Phase = "consume"   // cast-out of a record's storage
	PhaseRegistry  Phase = "registry"  // catalog registration and lookup
	PhaseTranslate Phase = "translate" // foreign type-name translation
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindFieldUnknown   Kind = "field_unknown"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindDuplicateField Kind = "duplicate_field"
	KindSizeMismatch   Kind = "size_mismatch"
	KindSchemaUnknown  Kind = "schema_unknown"
	KindUnsupported    Kind = "unsupported"
	KindConsumed       Kind = "consumed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Field     string
	Requested string
	Declared  string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Requested != "" || e.Declared != "" {
		b.WriteString(": ")
		if e.Requested != "" && e.Declared != "" {
			b.WriteString("requested ")
			b.WriteString(e.Requested)
			b.WriteString(", declared ")
			b.WriteString(e.Declared)
		} else if e.Requested != "" {
			b.WriteString("requested ")
			b.WriteString(e.Requested)
		} else {
			b.WriteString("declared ")
			b.WriteString(e.Declared)
		}
	}

	if e.Detail != "" {
		if e.Requested != "" || e.Declared != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the field identifier
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Requested sets the type name the caller asked for
func (b *Builder) Requested(t string) *Builder {
	b.err.Requested = t
	return b
}

// Declared sets the type name the schema declares
func (b *Builder) Declared(t string) *Builder {
	b.err.Declared = t
	return b
}

// Value sets the value that could not be stored
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, field, requested, declared string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		Field:     field,
		Requested: requested,
		Declared:  declared,
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Field:  name,
		Detail: fmt.Sprintf("no field named %q", name),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("field index %d out of bounds (%d fields)", index, length),
		Value:  index,
	}
}

// DuplicateField creates a duplicate field name error
func DuplicateField(schema, field string) *Error {
	return &Error{
		Phase:  PhaseCompose,
		Kind:   KindDuplicateField,
		Field:  field,
		Detail: fmt.Sprintf("field %q declared more than once in schema %q", field, schema),
	}
}

// SizeMismatch creates a size mismatch error for cast-out operations
func SizeMismatch(have, want uintptr, target string) *Error {
	return &Error{
		Phase:    PhaseConsume,
		Kind:     KindSizeMismatch,
		Declared: target,
		Detail:   fmt.Sprintf("record is %d bytes, target type is %d bytes", have, want),
	}
}

// SchemaUnknown creates an unknown schema name error
func SchemaUnknown(name string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindSchemaUnknown,
		Detail: fmt.Sprintf("no schema registered under %q", name),
	}
}

// Unsupported creates an unsupported input error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Consumed creates an error for access to storage that is gone
func Consumed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConsumed,
		Detail: "record storage already consumed or destroyed",
	}
}
