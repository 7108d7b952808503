// Package shared provides reference-counted and lock-guarded value
// boxes for use as record field types.
//
// Shared[T] is an atomically reference-counted cell. Copying a Shared
// value aliases the cell without changing the count; Retain and Release
// adjust it explicitly. A field declared as Shared[T] carries a
// destructor in its layout descriptor, so destroying a record releases
// the cell exactly once.
//
// Locked[T] and RWLocked[T] are one-word handles to mutex-guarded
// state. The handle form keeps record storage free of lock copies: the
// mutex lives behind the handle and is never moved once created.
package shared
