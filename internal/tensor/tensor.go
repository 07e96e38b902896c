package tensor

import (
	"fmt"

	"github.com/gradkit/strided/internal/accessor"
)

// Tensor is a generic tensor with element type T dispatching through
// backend B. It wraps a RawTensor with compile-time type safety and is
// the usual entry point for building accessors:
//
//	backend := cpu.New()
//	t, _ := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
//	acc := t.Access()          // reference accessor, host side
//	p := t.Pack()              // packed accessor, transferable
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend.
// Panics if T does not match the raw tensor's dtype.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	if want := dtypeOf[T](); want != raw.DType() {
		panic(fmt.Sprintf("tensor type %s does not match raw dtype %s", want, raw.DType()))
	}
	return &Tensor[T, B]{raw: raw, backend: b}
}

// Zeros creates a zero-filled tensor with the given shape.
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := NewRaw(shape, dtypeOf[T](), b.Device())
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: b}, nil
}

// FromSlice creates a tensor from a Go slice, copying the data.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := Zeros[T](shape, b)
	if err != nil {
		return nil, err
	}
	copy(t.Data(), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's execution context.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns a typed slice view of the tensor's memory (zero-copy).
// Writes through the slice modify the tensor.
func (t *Tensor[T, B]) Data() []T {
	return dataOf[T](t.raw)
}

// Access returns an unchecked reference accessor over the tensor.
func (t *Tensor[T, B]) Access() accessor.View[T] {
	return Access[T](t.raw)
}

// AccessChecked returns a bounds-checked accessor for debugging.
func (t *Tensor[T, B]) AccessChecked() accessor.Checked[T, accessor.DefaultPtr[T]] {
	return accessor.NewChecked(Access[T](t.raw))
}

// Pack returns a packed accessor, self-contained and transferable to a
// detached execution context.
func (t *Tensor[T, B]) Pack() accessor.PackedView[T] {
	return Pack[T](t.raw)
}

// At returns the element at the given indices, walking the index chain of
// an accessor one dimension at a time. Panics on rank mismatch or
// out-of-bounds indices.
func (t *Tensor[T, B]) At(indices ...int64) T {
	return *t.elem(indices)
}

// Set writes the element at the given indices.
func (t *Tensor[T, B]) Set(value T, indices ...int64) {
	*t.elem(indices) = value
}

func (t *Tensor[T, B]) elem(indices []int64) *T {
	if len(indices) != len(t.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.Shape()), len(indices)))
	}
	c := t.AccessChecked()
	for len(indices) > 1 {
		c = c.Index(indices[0])
		indices = indices[1:]
	}
	return c.Elem(indices[0])
}

// Narrow returns a view restricted along one dimension.
func (t *Tensor[T, B]) Narrow(dim, start, length int) (*Tensor[T, B], error) {
	raw, err := t.raw.Narrow(dim, start, length)
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: t.backend}, nil
}

// Transpose returns a view with permuted dimensions.
func (t *Tensor[T, B]) Transpose(axes ...int) (*Tensor[T, B], error) {
	raw, err := t.raw.Transpose(axes...)
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: t.backend}, nil
}

// Add dispatches element-wise addition through the backend.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.backend.Add(t.raw, other.raw), backend: t.backend}
}

// Scale dispatches element-wise scaling through the backend.
func (t *Tensor[T, B]) Scale(alpha float64) *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.backend.Scale(t.raw, alpha), backend: t.backend}
}

// MatMul dispatches 2-D matrix multiplication through the backend.
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return &Tensor[T, B]{raw: t.backend.MatMul(t.raw, other.raw), backend: t.backend}
}

// Contiguous materializes a strided view into a dense tensor through the
// backend. Returns the receiver unchanged if it is already contiguous.
func (t *Tensor[T, B]) Contiguous() *Tensor[T, B] {
	if t.raw.IsContiguous() {
		return t
	}
	return &Tensor[T, B]{raw: t.backend.Materialize(t.raw), backend: t.backend}
}

// Sum reduces all elements through the backend.
func (t *Tensor[T, B]) Sum() float64 {
	return t.backend.Sum(t.raw)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}
