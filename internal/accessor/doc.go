// Package accessor provides non-owning, strided N-dimensional views over
// numeric buffers for the Strided library.
//
// An accessor pairs a data pointer with per-dimension size and stride
// metadata so kernels can index into raw memory without manual offset
// arithmetic. Indexing reduces dimensionality by one until a single element
// remains:
//
//	v := accessor.Of(data, []int64{2, 3}, []int64{3, 1})
//	row := v.Index(1)      // 1-D view of the second row
//	x := row.Get(2)        // element at data[1*3+2]
//
// Two families exist:
//
//   - Ref borrows its size/stride slices from an external owner (typically
//     a RawTensor). It is valid only while the owner's metadata stays alive
//     and unchanged.
//   - Packed copies sizes and strides by value into itself, making it a
//     self-contained value that can be handed to a detached execution
//     context (such as a GPU dispatch path) that cannot reach back into the
//     owner's memory. Indexing a Packed accessor yields a Ref that borrows
//     into the packed value's own embedded arrays.
//
// Accessors never own the memory they view, never allocate, and perform no
// bounds checking: an out-of-range index is a caller bug, not a runtime
// condition. Use Checked when a validating wrapper is wanted.
package accessor
