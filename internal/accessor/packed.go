package accessor

import "fmt"

// MaxDims is the dimension cap for packed accessors. The embedded metadata
// arrays have this fixed length so the whole accessor stays a flat,
// byte-copyable value.
const MaxDims = 8

// Packed is a packed accessor: a strided view whose sizes and strides are
// copied by value into the accessor itself at construction. Once built it
// depends on nothing it was built from; copying the struct copies all
// metadata along with the data pointer, so the value can be handed to a
// detached execution context as-is.
//
// Construction performs the metadata copy and therefore belongs on the
// controlling (host) side. Indexing and the scalar queries are valid in
// any context.
type Packed[T Element, P Ptr[T, P]] struct {
	ptr     P
	dims    int
	sizes   [MaxDims]int64
	strides [MaxDims]int64
}

// NewPacked builds a packed accessor, copying sizes and strides into the
// returned value. Panics if len(sizes) != len(strides) or if len(sizes)
// exceeds MaxDims.
func NewPacked[T Element, P Ptr[T, P]](ptr P, sizes, strides []int64) Packed[T, P] {
	if len(sizes) != len(strides) {
		panic(fmt.Sprintf("accessor: %d sizes but %d strides", len(sizes), len(strides)))
	}
	if len(sizes) > MaxDims {
		panic(fmt.Sprintf("accessor: cannot pack a %d-D view, limit is %d", len(sizes), MaxDims))
	}
	var p Packed[T, P]
	p.ptr = ptr
	p.dims = len(sizes)
	copy(p.sizes[:], sizes)
	copy(p.strides[:], strides)
	return p
}

// PackOf builds a default-pointer packed accessor over a slice.
func PackOf[T Element](data []T, sizes, strides []int64) PackedView[T] {
	return NewPacked[T](Default(data), sizes, strides)
}

// Dims returns the view's dimensionality.
func (p Packed[T, P]) Dims() int {
	return p.dims
}

// Size returns the extent along dimension i.
func (p Packed[T, P]) Size(i int) int64 {
	return p.sizes[i]
}

// Stride returns the element step along dimension i.
func (p Packed[T, P]) Stride(i int) int64 {
	return p.strides[i]
}

// Sizes returns the embedded size array, read-only, length Dims().
// The returned slice aliases the receiver's storage.
func (p *Packed[T, P]) Sizes() []int64 {
	return p.sizes[:p.dims]
}

// Strides returns the embedded stride array, read-only, length Dims().
func (p *Packed[T, P]) Strides() []int64 {
	return p.strides[:p.dims]
}

// Data returns the view's data pointer.
func (p Packed[T, P]) Data() P {
	return p.ptr
}

// Index drops the leading dimension and crosses into the reference
// family: the returned Ref borrows the remaining sizes and strides
// directly from this packed accessor's embedded arrays instead of copying
// them again. The receiver must therefore outlive the returned Ref and
// every accessor derived from it; holding the Ref keeps the receiver
// reachable, so within one dispatch this is always satisfied.
//
// The receiver must have at least two dimensions; i is not range-checked.
func (p *Packed[T, P]) Index(i int64) Ref[T, P] {
	return Ref[T, P]{
		ptr:     p.ptr.Offset(p.strides[0] * i),
		sizes:   p.sizes[1:p.dims],
		strides: p.strides[1:p.dims],
	}
}

// Elem returns the address of element i of a 1-D packed view, the
// terminal case of the indexing recursion.
func (p Packed[T, P]) Elem(i int64) *T {
	return p.ptr.Elem(p.strides[0] * i)
}

// Get reads element i of a 1-D packed view.
func (p Packed[T, P]) Get(i int64) T {
	return *p.Elem(i)
}

// Set writes element i of a 1-D packed view.
func (p Packed[T, P]) Set(i int64, v T) {
	*p.Elem(i) = v
}

// PackedView is a Packed accessor with the default pointer representation.
type PackedView[T Element] = Packed[T, DefaultPtr[T]]

// PackedRestrictView is a Packed accessor with the no-alias pointer
// representation.
type PackedRestrictView[T Element] = Packed[T, RestrictPtr[T]]
