// Package layout computes byte offsets for runtime-composed records.
//
// Fields are placed in declaration order: each offset is the running
// cursor rounded up to the field's alignment, and the total size is the
// end of the last field rounded up to the widest field alignment (tail
// padding). This is the same greedy rule the Go compiler applies to
// struct types, which is what lets record storage be mirrored by a
// reflect.StructOf type with identical offsets.
//
// This package is internal to dynrec.
package layout
