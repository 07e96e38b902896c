// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for strided tensors.
//
// A RawTensor owns a linear buffer plus shape and stride metadata; views
// made with Narrow and Transpose share the buffer and only change the
// metadata. Typed element access goes through the accessor package:
// Access borrows metadata from the tensor, Pack copies it into a
// self-contained value for transfer to another execution context.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{10, 11, 12, 13, 14, 15}, tensor.Shape{2, 3}, backend)
//	tr, _ := x.Transpose()
//	y := tr.Contiguous() // materialized on the backend
package tensor

import (
	"github.com/gradkit/strided/internal/tensor"
)

// DType is the constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType identifies the element type of a tensor at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device identifies the execution context that owns a tensor's data.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor bound to a backend.
//
// T is the element type and B the backend that executes its operations.
// Element access goes through the accessor package via Access, Pack and
// AccessChecked.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// MockBackend is a sequential reference backend. It exists so backend
// implementations have a correctness oracle to compare against.
type MockBackend = tensor.MockBackend

// NewMockBackend creates the sequential reference backend.
func NewMockBackend() *MockBackend {
	return tensor.NewMockBackend()
}

// New creates a tensor from a raw tensor.
// Panics if the raw tensor's dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T, B](shape, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use FromSlice or Zeros.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Dump renders a raw tensor's metadata and elements for debugging.
func Dump(r *RawTensor) string {
	return tensor.Dump(r)
}
