// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gradkit/strided/internal/tensor"

	"github.com/gradkit/strided/internal/accessor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, stride and type information
//   - View constructors (Narrow, Transpose) that share the buffer
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Reference counting with copy-on-write via Clone()
//
// Most users should use the high-level Tensor[T, B] type instead.
type RawTensor = tensor.RawTensor

// Access builds a reference accessor over r. The accessor borrows r's
// metadata and stays valid only while r is alive and unreleased.
func Access[T DType](r *RawTensor) accessor.View[T] {
	return tensor.Access[T](r)
}

// AccessRestrict is Access with no-alias element addressing. The caller
// must guarantee exclusive access to r's buffer for the accessor's
// lifetime.
func AccessRestrict[T DType](r *RawTensor) accessor.RestrictView[T] {
	return tensor.AccessRestrict[T](r)
}

// Pack builds a self-contained accessor over r: sizes and strides are
// copied in, so the value survives r's metadata going away. Panics if
// r has more than accessor.MaxDims dimensions.
func Pack[T DType](r *RawTensor) accessor.PackedView[T] {
	return tensor.Pack[T](r)
}

// PackRestrict is Pack with no-alias element addressing.
func PackRestrict[T DType](r *RawTensor) accessor.PackedRestrictView[T] {
	return tensor.PackRestrict[T](r)
}
