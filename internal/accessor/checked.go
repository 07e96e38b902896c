package accessor

import "fmt"

// Checked wraps a reference accessor with bounds and dimensionality
// assertions. It exists for debugging and tests; the wrapped unchecked
// accessor remains the fast path and can be recovered with Unwrap.
type Checked[T Element, P Ptr[T, P]] struct {
	ref Ref[T, P]
}

// NewChecked wraps a reference accessor in a validating view.
func NewChecked[T Element, P Ptr[T, P]](ref Ref[T, P]) Checked[T, P] {
	return Checked[T, P]{ref: ref}
}

// Unwrap returns the underlying unchecked accessor.
func (c Checked[T, P]) Unwrap() Ref[T, P] {
	return c.ref
}

// Dims returns the view's dimensionality.
func (c Checked[T, P]) Dims() int {
	return c.ref.Dims()
}

// Size returns the extent along dimension i. Panics if i is out of range.
func (c Checked[T, P]) Size(i int) int64 {
	c.checkDim(i)
	return c.ref.Size(i)
}

// Stride returns the step along dimension i. Panics if i is out of range.
func (c Checked[T, P]) Stride(i int) int64 {
	c.checkDim(i)
	return c.ref.Stride(i)
}

// Index drops the leading dimension. Panics if the view is 1-D or i is
// out of range.
func (c Checked[T, P]) Index(i int64) Checked[T, P] {
	if c.ref.Dims() < 2 {
		panic(fmt.Sprintf("accessor: Index on %d-D view, want Elem/Get/Set", c.ref.Dims()))
	}
	c.checkIndex(i)
	return Checked[T, P]{ref: c.ref.Index(i)}
}

// Elem returns the address of element i of a 1-D view. Panics if the view
// is not 1-D or i is out of range.
func (c Checked[T, P]) Elem(i int64) *T {
	if c.ref.Dims() != 1 {
		panic(fmt.Sprintf("accessor: Elem on %d-D view, want Index", c.ref.Dims()))
	}
	c.checkIndex(i)
	return c.ref.Elem(i)
}

// Get reads element i of a 1-D view with bounds checking.
func (c Checked[T, P]) Get(i int64) T {
	return *c.Elem(i)
}

// Set writes element i of a 1-D view with bounds checking.
func (c Checked[T, P]) Set(i int64, v T) {
	*c.Elem(i) = v
}

func (c Checked[T, P]) checkDim(i int) {
	if i < 0 || i >= c.ref.Dims() {
		panic(fmt.Sprintf("accessor: dimension %d out of range for %d-D view", i, c.ref.Dims()))
	}
}

func (c Checked[T, P]) checkIndex(i int64) {
	if i < 0 || i >= c.ref.Size(0) {
		panic(fmt.Sprintf("accessor: index %d out of bounds for dimension 0 (size %d)", i, c.ref.Size(0)))
	}
}
