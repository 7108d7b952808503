// Package dynrec implements record types whose field set, order, and
// types are chosen at run time, with field access performance close to
// a natively compiled struct.
//
// A Descriptor captures the layout metadata of one compile-time-known
// type: size, alignment, a default-value producer, and an optional
// destructor. Descriptors compose into a Schema, which packs named
// fields into a byte buffer with struct-compatible alignment. Records
// are live instances of a schema: an owned buffer plus typed accessors.
//
// # Architecture Overview
//
//	dynrec/              Descriptor, Schema, Record, access tiers, Consume
//	├── internal/layout/ Offset and alignment packing math
//	├── errors/          Structured error types for diagnostics
//	├── registry/        Process-wide catalog of descriptors and schemas
//	├── shared/          Refcounted and lock-guarded field value boxes
//	└── ctypes/          Foreign type-name adapter (C++-style descriptors)
//
// # Quick Start
//
//	desc := dynrec.Describe[int32]()
//	schema := dynrec.NewSchema("point", []dynrec.FieldSpec{
//	    {Name: "x", Desc: desc},
//	    {Name: "y", Desc: desc},
//	})
//
//	rec := dynrec.NewRecord(schema)
//	defer rec.Destroy()
//
//	if err := dynrec.Set(rec, "x", int32(42)); err != nil {
//	    log.Fatal(err)
//	}
//	x, _ := dynrec.Clone[int32](rec, "x")
//
// # Access Tiers
//
// Field operations come in three strictness levels:
//
//	Checked    Ref/Clone/Set (+At)         validate name, index, and type; return errors
//	Unchecked  MustRef/MustClone/MustSet   same checks, but failures panic
//	Raw        RefUnchecked/...            no validation at all; building block only
//
// The raw tier is defined only for callers who have proven index and
// type correctness by construction. Misuse corrupts memory.
//
// # Layout
//
// Fields are packed in declaration order:
//
//	Type            Size    Alignment
//	──────────────────────────────────
//	uint8/int8      1       1
//	uint16/int16    2       2
//	uint32/float32  4       4
//	uint64/float64  8       8
//	string          16      8 (ptr + len)
//	[]T             24      8 (ptr + len + cap)
//	shared.Shared   8       8 (one pointer)
//
// Each offset is the running cursor rounded up to the field alignment,
// and the total is padded to the widest field alignment. Storage is
// allocated through a mirror struct type so the garbage collector sees
// an accurate pointer map for pointer-bearing fields.
//
// # Lifecycle
//
// A record owns its buffer. Destroy runs each destructor-carrying
// field's destructor exactly once. Consume transfers the whole buffer
// into a concrete struct type and suppresses the record's own teardown,
// so resources are released by the surviving value instead.
//
// Writes overwrite a field's slot without releasing whatever was there
// before. A caller replacing a destructor-carrying value must clone or
// release the prior value first, or it leaks.
//
// # Thread Safety
//
// Descriptors and Schemas are immutable once built and safe to share.
// Records are not internally synchronized; a record mutated from
// multiple goroutines needs external locking.
package dynrec
