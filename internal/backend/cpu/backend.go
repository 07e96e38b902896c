// Package cpu implements the host backend. Kernels are written against
// reference accessors and split their outermost dimension across workers.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gradkit/strided/internal/parallel"
	"github.com/gradkit/strided/internal/tensor"
)

// Verify that CPUBackend implements tensor.Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor operations on the host.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{device: tensor.CPU, par: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the execution context.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition of same-shaped tensors.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}

	out := cpu.newDense(a)
	switch a.DType() {
	case tensor.Float32:
		zipRows(tensor.Access[float32](a), tensor.Access[float32](b), tensor.Access[float32](out), cpu.par,
			func(x, y float32) float32 { return x + y })
	case tensor.Float64:
		zipRows(tensor.Access[float64](a), tensor.Access[float64](b), tensor.Access[float64](out), cpu.par,
			func(x, y float64) float64 { return x + y })
	case tensor.Int32:
		zipRows(tensor.Access[int32](a), tensor.Access[int32](b), tensor.Access[int32](out), cpu.par,
			func(x, y int32) int32 { return x + y })
	case tensor.Int64:
		zipRows(tensor.Access[int64](a), tensor.Access[int64](b), tensor.Access[int64](out), cpu.par,
			func(x, y int64) int64 { return x + y })
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}
	return out
}

// Scale multiplies every visible element by alpha.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, alpha float64) *tensor.RawTensor {
	out := cpu.newDense(x)
	switch x.DType() {
	case tensor.Float32:
		f := float32(alpha)
		mapRows(tensor.Access[float32](x), tensor.Access[float32](out), cpu.par,
			func(v float32) float32 { return v * f })
	case tensor.Float64:
		mapRows(tensor.Access[float64](x), tensor.Access[float64](out), cpu.par,
			func(v float64) float64 { return v * alpha })
	default:
		panic(fmt.Sprintf("scale: unsupported dtype %s", x.DType()))
	}
	return out
}

// Materialize gathers a strided view into a fresh contiguous tensor.
func (cpu *CPUBackend) Materialize(x *tensor.RawTensor) *tensor.RawTensor {
	out := cpu.newDense(x)
	switch x.DType() {
	case tensor.Float32:
		mapRows(tensor.Access[float32](x), tensor.Access[float32](out), cpu.par, func(v float32) float32 { return v })
	case tensor.Float64:
		mapRows(tensor.Access[float64](x), tensor.Access[float64](out), cpu.par, func(v float64) float64 { return v })
	case tensor.Int32:
		mapRows(tensor.Access[int32](x), tensor.Access[int32](out), cpu.par, func(v int32) int32 { return v })
	case tensor.Int64:
		mapRows(tensor.Access[int64](x), tensor.Access[int64](out), cpu.par, func(v int64) int64 { return v })
	case tensor.Uint8:
		mapRows(tensor.Access[uint8](x), tensor.Access[uint8](out), cpu.par, func(v uint8) uint8 { return v })
	default:
		panic(fmt.Sprintf("materialize: unsupported dtype %s", x.DType()))
	}
	return out
}

// Sum reduces all visible elements to a float64. Contiguous float64
// tensors take the gonum fast path; everything else walks the view.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) float64 {
	if x.DType() == tensor.Float64 && x.IsContiguous() {
		return floats.Sum(x.AsFloat64()[:x.NumElements()])
	}

	var total float64
	switch x.DType() {
	case tensor.Float32:
		reduceAll(tensor.Access[float32](x), func(v float32) { total += float64(v) })
	case tensor.Float64:
		reduceAll(tensor.Access[float64](x), func(v float64) { total += v })
	case tensor.Int32:
		reduceAll(tensor.Access[int32](x), func(v int32) { total += float64(v) })
	case tensor.Int64:
		reduceAll(tensor.Access[int64](x), func(v int64) { total += float64(v) })
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return total
}

// newDense allocates a contiguous result tensor matching x's shape/dtype.
func (cpu *CPUBackend) newDense(x *tensor.RawTensor) *tensor.RawTensor {
	out, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to create result tensor: %v", err))
	}
	return out
}
