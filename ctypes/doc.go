// Package ctypes translates foreign, C++-style type descriptor strings
// into layout descriptors.
//
// Three lexical forms are recognized:
//
//	"class SharedPointer<int>"   shared-ownership wrapper -> shared.Shared[int32]
//	"int*"                       raw pointer              -> *int32
//	"int"                        bare value               -> int32
//
// The inner vocabulary is fixed: the unsigned/signed integer widths,
// float and double, narrow and wide strings, and a small set of
// geometry and color value structs. An unrecognized inner name is a
// reported translation error; the core engine never sees these strings
// and only consumes the resulting descriptors.
package ctypes
