// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU tensor operations.
//
// Strided views cross to the device as packed accessor metadata: sizes
// and strides travel in a storage buffer alongside the data, and the
// kernels reconstruct element offsets on the GPU.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	x, _ := tensor.FromSlice(data, tensor.Shape{2, 3}, gpu)
//	y := x.Scale(2)
package webgpu

import (
	internalwebgpu "github.com/gradkit/strided/internal/backend/webgpu"
	"github.com/gradkit/strided/tensor"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This initializes the WebGPU device and returns a backend ready for
// tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// ListAdapters enumerates the WebGPU adapters present on the system.
func ListAdapters() ([]*wgpu.AdapterInfoGo, error) {
	return internalwebgpu.ListAdapters()
}
