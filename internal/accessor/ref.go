package accessor

// Ref is a reference accessor: a strided N-dimensional view whose size and
// stride slices are borrowed from an external owner. The owner's metadata
// must remain valid and unchanged for the lifetime of the Ref and of every
// sub-accessor derived from it.
//
// Ref is a plain value: indexing returns a new Ref and never mutates the
// receiver. No operation allocates or checks bounds.
type Ref[T Element, P Ptr[T, P]] struct {
	ptr     P
	sizes   []int64
	strides []int64
}

// NewRef builds a reference accessor from a data pointer and borrowed
// size/stride slices. len(sizes) and len(strides) must both equal the
// view's dimensionality, which must be at least 1.
func NewRef[T Element, P Ptr[T, P]](ptr P, sizes, strides []int64) Ref[T, P] {
	return Ref[T, P]{ptr: ptr, sizes: sizes, strides: strides}
}

// Of builds a default-pointer reference accessor over a slice.
func Of[T Element](data []T, sizes, strides []int64) View[T] {
	return NewRef[T](Default(data), sizes, strides)
}

// Dims returns the view's dimensionality.
func (a Ref[T, P]) Dims() int {
	return len(a.sizes)
}

// Size returns the extent along dimension i.
func (a Ref[T, P]) Size(i int) int64 {
	return a.sizes[i]
}

// Stride returns the element step along dimension i.
func (a Ref[T, P]) Stride(i int) int64 {
	return a.strides[i]
}

// Sizes returns the borrowed size slice. Callers must treat it as
// read-only; it is only usable while the owner's metadata is alive.
func (a Ref[T, P]) Sizes() []int64 {
	return a.sizes
}

// Strides returns the borrowed stride slice, read-only.
func (a Ref[T, P]) Strides() []int64 {
	return a.strides
}

// Data returns the view's data pointer.
func (a Ref[T, P]) Data() P {
	return a.ptr
}

// Index drops the leading dimension: it returns a Ref of dimensionality
// Dims()-1 whose data pointer is advanced by Stride(0)*i and whose
// metadata slices are the receiver's shifted by one. The receiver must
// have at least two dimensions; i is not range-checked.
func (a Ref[T, P]) Index(i int64) Ref[T, P] {
	return Ref[T, P]{
		ptr:     a.ptr.Offset(a.strides[0] * i),
		sizes:   a.sizes[1:],
		strides: a.strides[1:],
	}
}

// Elem returns the address of element i of a 1-D view. This is the
// terminal case of the indexing recursion: writing through the returned
// pointer mutates the underlying buffer.
func (a Ref[T, P]) Elem(i int64) *T {
	return a.ptr.Elem(a.strides[0] * i)
}

// Get reads element i of a 1-D view.
func (a Ref[T, P]) Get(i int64) T {
	return *a.Elem(i)
}

// Set writes element i of a 1-D view.
func (a Ref[T, P]) Set(i int64, v T) {
	*a.Elem(i) = v
}

// View is a Ref with the default pointer representation.
type View[T Element] = Ref[T, DefaultPtr[T]]

// RestrictView is a Ref with the no-alias pointer representation.
type RestrictView[T Element] = Ref[T, RestrictPtr[T]]
