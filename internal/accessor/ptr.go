package accessor

import "unsafe"

// Element is a constraint for the scalar types accessors can view.
// It matches the data types supported by the tensor package.
type Element interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Ptr selects the representation of an accessor's data pointer. It is the
// pointer-qualification policy: implementations differ only in how the
// pointer is represented, never in addressing arithmetic. All offsets are
// in element units.
//
// P is the implementing type itself, so that Offset can return a pointer
// of the same representation.
type Ptr[T Element, P any] interface {
	// Elem returns the address of the element i positions past the pointer.
	Elem(i int64) *T
	// Offset returns a pointer advanced by n elements.
	Offset(n int64) P
}

// DefaultPtr is the default pointer representation: a Go slice plus an
// element offset. Safe in every execution context the slice is reachable
// from.
type DefaultPtr[T Element] struct {
	data []T
	off  int64
}

// Default wraps a slice as a DefaultPtr positioned at its first element.
func Default[T Element](data []T) DefaultPtr[T] {
	return DefaultPtr[T]{data: data}
}

// Elem returns the address of data[off+i].
func (p DefaultPtr[T]) Elem(i int64) *T {
	return &p.data[p.off+i]
}

// Offset returns a DefaultPtr advanced by n elements.
func (p DefaultPtr[T]) Offset(n int64) DefaultPtr[T] {
	return DefaultPtr[T]{data: p.data, off: p.off + n}
}

// RestrictPtr is the no-alias pointer representation: raw address
// arithmetic with no slice header and no runtime checks. It is the opt-in
// analogue of a restrict-qualified pointer for hot kernel paths.
//
// The stored pointer keeps the backing allocation reachable for the
// garbage collector, but the caller must guarantee that nothing else
// writes the buffer while an accessor derived from it is live.
type RestrictPtr[T Element] struct {
	p unsafe.Pointer
}

// Restrict wraps a slice's backing array as a RestrictPtr.
func Restrict[T Element](data []T) RestrictPtr[T] {
	return RestrictPtr[T]{p: unsafe.Pointer(unsafe.SliceData(data))}
}

// Elem returns the address i elements past the pointer.
func (p RestrictPtr[T]) Elem(i int64) *T {
	var zero T
	return (*T)(unsafe.Add(p.p, int(i)*int(unsafe.Sizeof(zero))))
}

// Offset returns a RestrictPtr advanced by n elements.
func (p RestrictPtr[T]) Offset(n int64) RestrictPtr[T] {
	var zero T
	return RestrictPtr[T]{p: unsafe.Add(p.p, int(n)*int(unsafe.Sizeof(zero)))}
}
