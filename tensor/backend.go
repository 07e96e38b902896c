// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/gradkit/strided/internal/tensor"

// Backend defines the interface that all compute backends implement.
// Backends receive raw tensors and walk them through accessors; strided
// views are honored, not flattened.
//
// Implementations:
//   - backend/cpu: pure Go with optional parallelism
//   - backend/webgpu: cross-platform GPU compute via WebGPU
//
// Example:
//
//	import (
//	    "github.com/gradkit/strided/backend/cpu"
//	    "github.com/gradkit/strided/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	y := x.Scale(2) // uses backend.Scale under the hood
type Backend = tensor.Backend
