// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// Kernels walk strided views through reference accessors and
// parallelize over the outer dimension. Contiguous float64 operands
// take a gonum fast path for matrix multiplication and reduction.
package cpu

import (
	internalcpu "github.com/gradkit/strided/internal/backend/cpu"
	"github.com/gradkit/strided/internal/parallel"
	"github.com/gradkit/strided/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with default parallelism.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that runs every kernel on the
// calling goroutine. Useful as a deterministic baseline in tests.
func NewSequential() *Backend {
	return internalcpu.NewWithConfig(parallel.Sequential())
}
