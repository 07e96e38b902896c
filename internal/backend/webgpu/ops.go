package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/gradkit/strided/internal/accessor"
	"github.com/gradkit/strided/internal/tensor"
)

// metaBytes serializes a packed accessor's embedded sizes and strides for
// the device: sizes[0..dims) followed by strides[0..dims), as u32. This is
// the transfer step the packed family exists for. After it, the kernel
// needs nothing from the host.
func metaBytes(p *accessor.PackedView[float32]) []byte {
	dims := p.Dims()
	buf := make([]byte, 8*dims)
	for d := 0; d < dims; d++ {
		binary.LittleEndian.PutUint32(buf[4*d:], uint32(p.Size(d)))
		binary.LittleEndian.PutUint32(buf[4*(dims+d):], uint32(p.Stride(d)))
	}
	return buf
}

// runStrided executes a kernel that walks a strided view using transferred
// packed metadata and writes a dense row-major result.
func (b *Backend) runStrided(x *tensor.RawTensor, shaderName, shaderCode string, alpha float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: only float32 is supported, got %s", x.DType()))
	}

	// Pack on the host, then hand the self-contained metadata to the
	// device.
	packed := tensor.Pack[float32](x)
	count := x.NumElements()

	shader := b.compileShader(shaderName, shaderCode)
	pipeline := b.getOrCreatePipeline(shaderName, shader)

	bufferInput := b.createStorageBuffer(x.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	resultSize := uint64(count * x.DType().Size())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	meta := metaBytes(&packed)
	bufferMeta := b.createStorageBuffer(meta, wgpu.BufferUsageStorage)
	defer bufferMeta.Release()

	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(count))
	binary.LittleEndian.PutUint32(params[4:8], uint32(packed.Dims()))
	binary.LittleEndian.PutUint32(params[8:12], math.Float32bits(alpha))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	b.dispatch(pipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, uint64(len(x.Data()))),
		wgpu.BufferBindingEntry(1, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferMeta, 0, uint64(len(meta))),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	}, workgroupsFor(count))

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		panic(fmt.Sprintf("webgpu: %s readback failed: %v", shaderName, err))
	}

	out := b.newDense(x.Shape())
	copy(out.Data(), resultData)
	return out
}

// Materialize gathers a (possibly strided) view into a dense tensor on
// the device.
func (b *Backend) Materialize(x *tensor.RawTensor) *tensor.RawTensor {
	return b.runStrided(x, "gather", gatherShader, 0)
}

// Scale multiplies every visible element by alpha on the device, walking
// the view through transferred packed metadata.
func (b *Backend) Scale(x *tensor.RawTensor, alpha float64) *tensor.RawTensor {
	return b.runStrided(x, "scale", scaleShader, float32(alpha))
}

// Add performs element-wise addition on the device. Strided operands are
// gathered to dense form first.
func (b *Backend) Add(a, other *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != tensor.Float32 || other.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: only float32 is supported, got %s and %s", a.DType(), other.DType()))
	}
	if !a.Shape().Equal(other.Shape()) {
		panic(fmt.Sprintf("webgpu: add: shape mismatch %v vs %v", a.Shape(), other.Shape()))
	}
	a = b.dense(a)
	other = b.dense(other)

	count := a.NumElements()
	shader := b.compileShader("add", addShader)
	pipeline := b.getOrCreatePipeline("add", shader)

	size := uint64(a.ByteSize())
	bufferA := b.createStorageBuffer(a.Data()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferB := b.createStorageBuffer(other.Data()[:size], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()

	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer bufferResult.Release()

	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(count))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	b.dispatch(pipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, size),
		wgpu.BufferBindingEntry(1, bufferB, 0, size),
		wgpu.BufferBindingEntry(2, bufferResult, 0, size),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	}, workgroupsFor(count))

	resultData, err := b.readBuffer(bufferResult, size)
	if err != nil {
		panic(fmt.Sprintf("webgpu: add readback failed: %v", err))
	}

	out := b.newDense(a.Shape())
	copy(out.Data(), resultData)
	return out
}

// MatMul performs 2-D matrix multiplication on the device. Strided
// operands are gathered to dense form first.
func (b *Backend) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	if x.DType() != tensor.Float32 || y.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: only float32 is supported, got %s and %s", x.DType(), y.DType()))
	}
	xs, ys := x.Shape(), y.Shape()
	if len(xs) != 2 || len(ys) != 2 || xs[1] != ys[0] {
		panic(fmt.Sprintf("webgpu: matmul: incompatible shapes %v @ %v", xs, ys))
	}
	x = b.dense(x)
	y = b.dense(y)

	m, k, n := xs[0], xs[1], ys[1]
	shader := b.compileShader("matmul", matmulShader)
	pipeline := b.getOrCreatePipeline("matmul", shader)

	bufferA := b.createStorageBuffer(x.Data()[:x.ByteSize()], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferB := b.createStorageBuffer(y.Data()[:y.ByteSize()], wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()

	resultSize := uint64(m * n * tensor.Float32.Size())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(m))
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))
	binary.LittleEndian.PutUint32(params[8:12], uint32(n))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	b.dispatch(pipeline, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(x.ByteSize())),
		wgpu.BufferBindingEntry(1, bufferB, 0, uint64(y.ByteSize())),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	}, workgroupsFor(m*n))

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		panic(fmt.Sprintf("webgpu: matmul readback failed: %v", err))
	}

	out := b.newDense(tensor.Shape{m, n})
	copy(out.Data(), resultData)
	return out
}

// Sum gathers the view to dense form on the device, then reduces the
// readback on the host.
func (b *Backend) Sum(x *tensor.RawTensor) float64 {
	dense := b.Materialize(x)
	var total float64
	for _, v := range dense.AsFloat32()[:dense.NumElements()] {
		total += float64(v)
	}
	return total
}

// dense returns x itself when contiguous, or a gathered copy otherwise.
func (b *Backend) dense(x *tensor.RawTensor) *tensor.RawTensor {
	if x.IsContiguous() {
		return x
	}
	return b.Materialize(x)
}

// newDense allocates a contiguous float32 result tensor.
func (b *Backend) newDense(shape tensor.Shape) *tensor.RawTensor {
	out, err := tensor.NewRaw(shape, tensor.Float32, tensor.WebGPU)
	if err != nil {
		panic(fmt.Sprintf("webgpu: failed to create result tensor: %v", err))
	}
	return out
}
