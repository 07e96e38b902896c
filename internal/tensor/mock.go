package tensor

import (
	"fmt"

	"github.com/gradkit/strided/internal/accessor"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple sequential backend for tests. Every kernel is
// written as a plain recursive walk over reference accessors, serving as
// the correctness reference for the optimized backends.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the execution context.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition of same-shaped tensors.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}
	out := m.newDense(a)
	switch a.DType() {
	case Float32:
		zipWalk(Access[float32](a), Access[float32](b), Access[float32](out), func(x, y float32) float32 { return x + y })
	case Float64:
		zipWalk(Access[float64](a), Access[float64](b), Access[float64](out), func(x, y float64) float64 { return x + y })
	case Int32:
		zipWalk(Access[int32](a), Access[int32](b), Access[int32](out), func(x, y int32) int32 { return x + y })
	case Int64:
		zipWalk(Access[int64](a), Access[int64](b), Access[int64](out), func(x, y int64) int64 { return x + y })
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}
	return out
}

// Scale multiplies every element by alpha.
func (m *MockBackend) Scale(x *RawTensor, alpha float64) *RawTensor {
	out := m.newDense(x)
	switch x.DType() {
	case Float32:
		zipWalk(Access[float32](x), Access[float32](x), Access[float32](out), func(v, _ float32) float32 { return v * float32(alpha) })
	case Float64:
		zipWalk(Access[float64](x), Access[float64](x), Access[float64](out), func(v, _ float64) float64 { return v * alpha })
	default:
		panic(fmt.Sprintf("scale: unsupported dtype %s", x.DType()))
	}
	return out
}

// MatMul performs naive 2-D matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	if len(a.Shape()) != 2 || len(b.Shape()) != 2 || a.Shape()[1] != b.Shape()[0] {
		panic(fmt.Sprintf("matmul: incompatible shapes %v @ %v", a.Shape(), b.Shape()))
	}
	out, err := NewRaw(Shape{a.Shape()[0], b.Shape()[1]}, a.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}
	switch a.DType() {
	case Float32:
		mockMatMul(Access[float32](a), Access[float32](b), Access[float32](out))
	case Float64:
		mockMatMul(Access[float64](a), Access[float64](b), Access[float64](out))
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
	return out
}

// Materialize gathers a strided view into a contiguous tensor.
func (m *MockBackend) Materialize(x *RawTensor) *RawTensor {
	out := m.newDense(x)
	switch x.DType() {
	case Float32:
		zipWalk(Access[float32](x), Access[float32](x), Access[float32](out), func(v, _ float32) float32 { return v })
	case Float64:
		zipWalk(Access[float64](x), Access[float64](x), Access[float64](out), func(v, _ float64) float64 { return v })
	case Int32:
		zipWalk(Access[int32](x), Access[int32](x), Access[int32](out), func(v, _ int32) int32 { return v })
	case Int64:
		zipWalk(Access[int64](x), Access[int64](x), Access[int64](out), func(v, _ int64) int64 { return v })
	case Uint8:
		zipWalk(Access[uint8](x), Access[uint8](x), Access[uint8](out), func(v, _ uint8) uint8 { return v })
	default:
		panic(fmt.Sprintf("materialize: unsupported dtype %s", x.DType()))
	}
	return out
}

// Sum reduces all elements to a float64.
func (m *MockBackend) Sum(x *RawTensor) float64 {
	var total float64
	switch x.DType() {
	case Float32:
		walk(Access[float32](x), func(p *float32) { total += float64(*p) })
	case Float64:
		walk(Access[float64](x), func(p *float64) { total += *p })
	case Int32:
		walk(Access[int32](x), func(p *int32) { total += float64(*p) })
	case Int64:
		walk(Access[int64](x), func(p *int64) { total += float64(*p) })
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return total
}

// newDense allocates a contiguous result tensor matching x's shape/dtype.
func (m *MockBackend) newDense(x *RawTensor) *RawTensor {
	out, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("mock: failed to create result tensor: %v", err))
	}
	return out
}

// walk visits every element of a view through the dimensionality-reducing
// index recursion.
func walk[T DType](v accessor.View[T], f func(*T)) {
	if v.Dims() == 1 {
		for i := int64(0); i < v.Size(0); i++ {
			f(v.Elem(i))
		}
		return
	}
	for i := int64(0); i < v.Size(0); i++ {
		walk(v.Index(i), f)
	}
}

// zipWalk visits a, b, and out in lockstep, writing f(a, b) into out.
// All three views must have identical sizes.
func zipWalk[T DType](a, b, out accessor.View[T], f func(x, y T) T) {
	if a.Dims() == 1 {
		for i := int64(0); i < a.Size(0); i++ {
			out.Set(i, f(a.Get(i), b.Get(i)))
		}
		return
	}
	for i := int64(0); i < a.Size(0); i++ {
		zipWalk(a.Index(i), b.Index(i), out.Index(i), f)
	}
}

// mockMatMul computes out[i,j] = sum_k a[i,k]*b[k,j] via accessors.
func mockMatMul[T interface{ ~float32 | ~float64 }](a, b, out accessor.View[T]) {
	m, k, n := a.Size(0), a.Size(1), b.Size(1)
	for i := int64(0); i < m; i++ {
		arow := a.Index(i)
		orow := out.Index(i)
		for j := int64(0); j < n; j++ {
			var sum T
			for kk := int64(0); kk < k; kk++ {
				sum += arow.Get(kk) * b.Index(kk).Get(j)
			}
			orow.Set(j, sum)
		}
	}
}
