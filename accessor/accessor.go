// Copyright 2025 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package accessor provides the public API for strided element access.
//
// The package exposes two accessor families over a linear buffer plus
// sizes and strides:
//   - View / RestrictView: reference accessors that borrow their
//     metadata from an owner (host-side hot loops)
//   - PackedView / PackedRestrictView: self-contained accessors that
//     copy metadata by value (transfer to another execution context)
//
// Indexing with Index drops the leading dimension; on a 1-D accessor,
// Elem, Get and Set reach individual elements. No accessor performs
// bounds checking; wrap one in Checked while debugging.
//
// Example:
//
//	data := []float32{10, 11, 12, 13, 14, 15}
//	v := accessor.Of(data, []int64{2, 3}, []int64{3, 1})
//	x := v.Index(1).Get(2) // 15
package accessor

import (
	"github.com/gradkit/strided/internal/accessor"
)

// MaxDims is the largest number of dimensions a packed accessor can carry.
const MaxDims = accessor.MaxDims

// Element is the constraint for element types an accessor can address.
type Element = accessor.Element

// Ptr is the constraint for element-addressing strategies. The two
// implementations are DefaultPtr and RestrictPtr.
type Ptr[T Element, P any] = accessor.Ptr[T, P]

// DefaultPtr addresses elements through an ordinary slice.
type DefaultPtr[T Element] = accessor.DefaultPtr[T]

// RestrictPtr addresses elements through raw pointer arithmetic and
// asserts that no other pointer aliases the buffer.
type RestrictPtr[T Element] = accessor.RestrictPtr[T]

// Ref is a reference accessor: it borrows sizes and strides from the
// owner that produced it and stays valid only while the owner does.
type Ref[T Element, P Ptr[T, P]] = accessor.Ref[T, P]

// Packed is a self-contained accessor: sizes and strides are copied
// into embedded arrays so a plain value copy carries everything.
type Packed[T Element, P Ptr[T, P]] = accessor.Packed[T, P]

// Checked wraps a reference accessor with bounds and dimensionality
// checks that panic with a descriptive message.
type Checked[T Element, P Ptr[T, P]] = accessor.Checked[T, P]

// View is a reference accessor with ordinary element addressing.
type View[T Element] = accessor.View[T]

// RestrictView is a reference accessor with no-alias element addressing.
type RestrictView[T Element] = accessor.RestrictView[T]

// PackedView is a self-contained accessor with ordinary element addressing.
type PackedView[T Element] = accessor.PackedView[T]

// PackedRestrictView is a self-contained accessor with no-alias element
// addressing.
type PackedRestrictView[T Element] = accessor.PackedRestrictView[T]

// Of builds a reference accessor over data with the given sizes and
// strides. The slices are borrowed, not copied.
func Of[T Element](data []T, sizes, strides []int64) View[T] {
	return accessor.Of(data, sizes, strides)
}

// PackOf builds a self-contained accessor over data, copying sizes and
// strides into the returned value. Panics if len(sizes) > MaxDims.
func PackOf[T Element](data []T, sizes, strides []int64) PackedView[T] {
	return accessor.PackOf(data, sizes, strides)
}

// NewRef builds a reference accessor from an element pointer and
// borrowed sizes and strides.
func NewRef[T Element, P Ptr[T, P]](ptr P, sizes, strides []int64) Ref[T, P] {
	return accessor.NewRef(ptr, sizes, strides)
}

// NewPacked builds a self-contained accessor from an element pointer,
// copying sizes and strides. Panics if len(sizes) > MaxDims.
func NewPacked[T Element, P Ptr[T, P]](ptr P, sizes, strides []int64) Packed[T, P] {
	return accessor.NewPacked[T](ptr, sizes, strides)
}

// Default wraps a slice for ordinary element addressing.
func Default[T Element](data []T) DefaultPtr[T] {
	return accessor.Default(data)
}

// Restrict wraps a slice for no-alias element addressing. The caller
// must guarantee that nothing else writes the buffer while the
// accessor is live.
func Restrict[T Element](data []T) RestrictPtr[T] {
	return accessor.Restrict(data)
}

// NewChecked wraps a reference accessor with bounds checking.
func NewChecked[T Element, P Ptr[T, P]](ref Ref[T, P]) Checked[T, P] {
	return accessor.NewChecked(ref)
}
