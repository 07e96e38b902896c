package tensor

import (
	"fmt"
	"strings"

	"github.com/gradkit/strided/internal/accessor"
)

// Dump renders a tensor's metadata and contents for debugging and golden
// tests. Values are gathered through the accessor index recursion, so the
// output reflects the strided view, not the underlying buffer order.
func Dump(r *RawTensor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", r)
	fmt.Fprintf(&sb, "strides: %v, contiguous: %v\n", r.Strides(), r.IsContiguous())

	switch r.DType() {
	case Float32:
		formatValues(&sb, Access[float32](r), 0)
	case Float64:
		formatValues(&sb, Access[float64](r), 0)
	case Int32:
		formatValues(&sb, Access[int32](r), 0)
	case Int64:
		formatValues(&sb, Access[int64](r), 0)
	case Uint8:
		formatValues(&sb, Access[uint8](r), 0)
	case Bool:
		formatValues(&sb, Access[bool](r), 0)
	default:
		sb.WriteString("<?>")
	}
	sb.WriteString("\n")
	return sb.String()
}

func formatValues[T DType](sb *strings.Builder, v accessor.View[T], depth int) {
	if v.Dims() == 1 {
		sb.WriteString("[")
		for i := int64(0); i < v.Size(0); i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(sb, "%v", v.Get(i))
		}
		sb.WriteString("]")
		return
	}

	sb.WriteString("[")
	for i := int64(0); i < v.Size(0); i++ {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", depth+1))
		}
		formatValues(sb, v.Index(i), depth+1)
	}
	sb.WriteString("]")
}
