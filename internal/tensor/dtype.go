// Package tensor provides the owning tensor and buffer types that strided
// accessors are constructed from.
package tensor

// DType is a constraint for supported tensor element types.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType is the runtime tag for a tensor's element type.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

var dtypes = [...]struct {
	name string
	size int
}{
	Float32: {"float32", 4},
	Float64: {"float64", 8},
	Int32:   {"int32", 4},
	Int64:   {"int64", 8},
	Uint8:   {"uint8", 1},
	Bool:    {"bool", 1},
}

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	if dt < 0 || int(dt) >= len(dtypes) {
		panic("unknown data type")
	}
	return dtypes[dt].size
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dtypes) {
		return "unknown"
	}
	return dtypes[dt].name
}

// dtypeOf maps a generic element type to its runtime tag.
func dtypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported element type")
	}
}
