package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// tensorBuffer is a reference-counted shared byte buffer. Views created by
// Narrow and Transpose share the buffer of the tensor they were derived
// from; the buffer is dropped when the last reference is released.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level owning tensor: a shared byte buffer plus
// shape, stride, and element-type metadata. It is the external owner that
// accessors are constructed from.
//
// Each RawTensor materializes its sizes and strides once as int64 arrays
// (see Sizes64/Strides64). Reference accessors borrow exactly these
// arrays, so they stay valid as long as the tensor itself is reachable.
type RawTensor struct {
	buffer *tensorBuffer
	shape  Shape
	stride []int
	dtype  DataType
	device Device
	offset int // byte offset into buffer, non-zero for views

	sizes64   []int64 // accessor metadata, owned by this view
	strides64 []int64
}

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	r := &RawTensor{
		buffer: newTensorBuffer(shape.NumElements() * dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}
	r.rebuildMetadata()
	return r, nil
}

// rebuildMetadata refreshes the int64 accessor metadata from shape/stride.
func (r *RawTensor) rebuildMetadata() {
	r.sizes64 = make([]int64, len(r.shape))
	r.strides64 = make([]int64, len(r.stride))
	for i, dim := range r.shape {
		r.sizes64[i] = int64(dim)
	}
	for i, st := range r.stride {
		r.strides64[i] = int64(st)
	}
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides in element units.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Sizes64 returns the owned int64 size array that reference accessors
// borrow. Callers must treat it as read-only.
func (r *RawTensor) Sizes64() []int64 {
	return r.sizes64
}

// Strides64 returns the owned int64 stride array that reference accessors
// borrow, read-only.
func (r *RawTensor) Strides64() []int64 {
	return r.strides64
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's execution context.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the number of elements visible through this view.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the size of the visible elements in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsContiguous reports whether the view is dense row-major.
func (r *RawTensor) IsContiguous() bool {
	return isContiguous(r.shape, r.stride)
}

// Data returns the raw bytes from this view's offset to the end of the
// shared buffer. Strided views may reach past ByteSize() within it.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset:]
}

// elems returns the number of elements addressable from the view's offset.
func (r *RawTensor) elems() int {
	return (len(r.buffer.data) - r.offset) / r.dtype.Size()
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.elems())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.elems())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), r.elems())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), r.elems())
}

// AsUint8 interprets the data as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.buffer.data[r.offset:]
}

// AsBool interprets the data as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	data := r.buffer.data[r.offset:]
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), r.elems())
}

// Narrow returns a view of this tensor restricted to [start, start+length)
// along the given dimension. The view shares the buffer; only metadata and
// the byte offset change.
func (r *RawTensor) Narrow(dim, start, length int) (*RawTensor, error) {
	if dim < 0 || dim >= len(r.shape) {
		return nil, fmt.Errorf("narrow: dimension %d out of range for %d-D tensor", dim, len(r.shape))
	}
	if start < 0 || length <= 0 || start+length > r.shape[dim] {
		return nil, fmt.Errorf("narrow: range [%d, %d) invalid for dimension of size %d", start, start+length, r.shape[dim])
	}

	r.buffer.addRef()
	view := &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset + start*r.stride[dim]*r.dtype.Size(),
	}
	view.shape[dim] = length
	view.rebuildMetadata()
	return view, nil
}

// Transpose returns a view with dimensions permuted by axes. With no
// arguments it reverses the dimension order. The view shares the buffer
// and becomes non-contiguous for rank >= 2.
func (r *RawTensor) Transpose(axes ...int) (*RawTensor, error) {
	n := len(r.shape)
	if len(axes) == 0 {
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	if len(axes) != n {
		return nil, fmt.Errorf("transpose: got %d axes for %d-D tensor", len(axes), n)
	}
	seen := make([]bool, n)
	for _, a := range axes {
		if a < 0 || a >= n || seen[a] {
			return nil, fmt.Errorf("transpose: invalid axes %v", axes)
		}
		seen[a] = true
	}

	r.buffer.addRef()
	view := &RawTensor{
		buffer: r.buffer,
		shape:  make(Shape, n),
		stride: make([]int, n),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
	for i, a := range axes {
		view.shape[i] = r.shape[a]
		view.stride[i] = r.stride[a]
	}
	view.rebuildMetadata()
	return view, nil
}

// Clone creates a shallow copy sharing the buffer (reference counted).
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	view := &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
	view.rebuildMetadata()
	return view
}

// Release decrements the buffer's reference count, deallocating when it
// reaches zero.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to its buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// String returns a short description of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v on %s", r.dtype, r.shape, r.device)
}
