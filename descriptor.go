package dynrec

import (
	"reflect"
	"unsafe"
)

// Releaser is implemented by field values that own a resource needing
// explicit teardown. A descriptor for a Releaser type carries a
// destructor; plain data types carry none.
type Releaser interface {
	Release()
}

// Retainer is implemented by field values that must bump a reference
// count when an owned copy is taken. Clone calls Retain on the copy it
// hands back.
type Retainer interface {
	Retain()
}

// Descriptor captures the layout metadata of one compile-time-known
// type: size, alignment, default producer, and optional destructor.
// Descriptors are immutable and shared by reference.
type Descriptor struct {
	typ       reflect.Type
	size      uintptr
	align     uintptr
	name      string
	defaultFn func(unsafe.Pointer)
	drop      func(unsafe.Pointer)
}

// Describe builds the descriptor for T. Size and alignment come from
// T's native representation; the default value is T's zero value. A
// destructor is captured only when T implements Releaser.
func Describe[T any]() *Descriptor {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	d := &Descriptor{
		typ:   typ,
		size:  typ.Size(),
		align: uintptr(typ.Align()),
		name:  typ.String(),
	}

	var zero T
	if _, ok := any(zero).(Releaser); ok {
		d.drop = func(p unsafe.Pointer) {
			any(*(*T)(p)).(Releaser).Release()
		}
	}

	return d
}

// DescribeWith builds the descriptor for T with a custom default
// producer. The produced value is written directly into the receiving
// buffer; ownership transfers with it, and nothing else ever releases
// the produced value, so destructor accounting stays single-owner.
func DescribeWith[T any](def func() T) *Descriptor {
	d := Describe[T]()
	d.defaultFn = func(p unsafe.Pointer) {
		*(*T)(p) = def()
	}
	return d
}

// Type returns the described compile-time type.
func (d *Descriptor) Type() reflect.Type {
	return d.typ
}

// Size returns the type's size in bytes.
func (d *Descriptor) Size() uintptr {
	return d.size
}

// Align returns the type's alignment in bytes.
func (d *Descriptor) Align() uintptr {
	return d.align
}

// TypeName returns the display name of the described type.
func (d *Descriptor) TypeName() string {
	return d.name
}

// HasDestructor reports whether field values of this type require
// teardown when their record is destroyed.
func (d *Descriptor) HasDestructor() bool {
	return d.drop != nil
}
