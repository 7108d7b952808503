// Package errors provides structured error types for the dynrec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: the field
// involved, the requested and declared type names, and the value that
// failed to be stored, so a caller never silently loses data on a
// rejected write.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindTypeMismatch).
//		Field("age").
//		Requested("float32").
//		Declared("int32").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseAccess, "age", "float32", "int32")
//	err := errors.OutOfBounds(errors.PhaseAccess, 10, 5)
//
// All errors implement the standard error interface and support
// errors.Is/As; two *Error values match when Phase and Kind agree.
package errors
