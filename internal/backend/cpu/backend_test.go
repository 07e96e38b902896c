package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradkit/strided/internal/parallel"
	"github.com/gradkit/strided/internal/tensor"
)

func rawFromFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), data)
	return raw
}

func rawFromFloat64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), data)
	return raw
}

func TestBackendMetadata(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestAdd(t *testing.T) {
	backend := NewWithConfig(parallel.Sequential())
	a := rawFromFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := rawFromFloat32(t, []float32{10, 20, 30, 40, 50, 60}, tensor.Shape{2, 3})

	out := backend.Add(a, b)
	assert.Equal(t, []float32{11, 22, 33, 44, 55, 66}, out.AsFloat32()[:6])
}

func TestAddShapeMismatchPanics(t *testing.T) {
	backend := New()
	a := rawFromFloat32(t, make([]float32, 6), tensor.Shape{2, 3})
	b := rawFromFloat32(t, make([]float32, 6), tensor.Shape{3, 2})
	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestScaleStridedView(t *testing.T) {
	backend := New()
	a := rawFromFloat32(t, []float32{10, 11, 12, 13, 14, 15}, tensor.Shape{2, 3})
	tr, err := a.Transpose()
	require.NoError(t, err)

	// Scaling the transposed view must produce a dense [3,2] result in
	// view order, proving the kernel follows strides rather than memory.
	out := backend.Scale(tr, 2)
	assert.Equal(t, tensor.Shape{3, 2}, out.Shape())
	assert.True(t, out.IsContiguous())
	assert.Equal(t, []float32{20, 26, 22, 28, 24, 30}, out.AsFloat32()[:6])
}

func TestMaterialize(t *testing.T) {
	backend := New()
	a := rawFromFloat32(t, []float32{10, 11, 12, 13, 14, 15}, tensor.Shape{2, 3})
	tr, err := a.Transpose()
	require.NoError(t, err)

	dense := backend.Materialize(tr)
	assert.True(t, dense.IsContiguous())
	assert.Equal(t, []float32{10, 13, 11, 14, 12, 15}, dense.AsFloat32()[:6])
}

func TestMaterializeNarrowedView(t *testing.T) {
	backend := New()
	a := rawFromFloat32(t, []float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
	mid, err := a.Narrow(1, 1, 2)
	require.NoError(t, err)

	dense := backend.Materialize(mid)
	assert.Equal(t, []float32{1, 2, 4, 5, 7, 8}, dense.AsFloat32()[:6])
}

func TestSumMatchesGonumFastPath(t *testing.T) {
	backend := New()
	data := []float64{1, 2, 3, 4, 5, 6}
	a := rawFromFloat64(t, data, tensor.Shape{2, 3})

	// Contiguous float64 goes through floats.Sum.
	assert.InDelta(t, 21, backend.Sum(a), 1e-12)

	// The strided path must agree.
	tr, err := a.Transpose()
	require.NoError(t, err)
	assert.InDelta(t, 21, backend.Sum(tr), 1e-12)
}

func TestKernelsAgreeWithMockBackend(t *testing.T) {
	backend := New()
	mock := tensor.NewMockBackend()

	a := rawFromFloat32(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 4})
	b := rawFromFloat32(t, []float32{8, 7, 6, 5, 4, 3, 2, 1}, tensor.Shape{2, 4})

	assert.Equal(t, mock.Add(a, b).AsFloat32()[:8], backend.Add(a, b).AsFloat32()[:8])
	assert.Equal(t, mock.Scale(a, 0.5).AsFloat32()[:8], backend.Scale(a, 0.5).AsFloat32()[:8])
	assert.InDelta(t, mock.Sum(a), backend.Sum(a), 1e-6)
}
