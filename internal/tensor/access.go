package tensor

import (
	"fmt"

	"github.com/gradkit/strided/internal/accessor"
)

// dataOf returns a typed slice over the tensor's memory, starting at the
// view's offset. Zero-copy; writes through it modify the tensor.
func dataOf[T DType](r *RawTensor) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case bool:
		return any(r.AsBool()).([]T)
	default:
		panic("unsupported element type")
	}
}

// checkAccess validates the T/dims contract shared by all vending
// functions. Accessor construction itself is unchecked; the one checked
// boundary is here, where the owner hands out views.
func checkAccess[T DType](r *RawTensor) {
	if want := dtypeOf[T](); want != r.dtype {
		panic(fmt.Sprintf("accessor element type %s does not match tensor dtype %s", want, r.dtype))
	}
	if len(r.shape) < 1 {
		panic("cannot build an accessor over a 0-D tensor")
	}
}

// Access returns a reference accessor over the tensor. The accessor
// borrows the tensor's metadata arrays and is valid while the tensor is
// alive and its shape unchanged.
func Access[T DType](r *RawTensor) accessor.View[T] {
	checkAccess[T](r)
	return accessor.Of(dataOf[T](r), r.sizes64, r.strides64)
}

// AccessRestrict is Access with the no-alias pointer representation for
// hot kernel loops. The caller must keep the tensor alive for the
// accessor's lifetime; the restrict pointer does not.
func AccessRestrict[T DType](r *RawTensor) accessor.RestrictView[T] {
	checkAccess[T](r)
	return accessor.NewRef[T](accessor.Restrict(dataOf[T](r)), r.sizes64, r.strides64)
}

// Pack returns a packed accessor over the tensor: a self-contained value
// carrying copies of the sizes and strides, suitable for handing to a
// detached execution context. Packing runs on the host side; the
// returned value no longer depends on the tensor's metadata.
func Pack[T DType](r *RawTensor) accessor.PackedView[T] {
	checkAccess[T](r)
	if len(r.shape) > accessor.MaxDims {
		panic(fmt.Sprintf("cannot pack a %d-D tensor, limit is %d", len(r.shape), accessor.MaxDims))
	}
	return accessor.PackOf(dataOf[T](r), r.sizes64, r.strides64)
}

// PackRestrict is Pack with the no-alias pointer representation.
func PackRestrict[T DType](r *RawTensor) accessor.PackedRestrictView[T] {
	checkAccess[T](r)
	if len(r.shape) > accessor.MaxDims {
		panic(fmt.Sprintf("cannot pack a %d-D tensor, limit is %d", len(r.shape), accessor.MaxDims))
	}
	return accessor.NewPacked[T](accessor.Restrict(dataOf[T](r)), r.sizes64, r.strides64)
}
