package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gradkit/strided/internal/accessor"
	"github.com/gradkit/strided/internal/parallel"
	"github.com/gradkit/strided/internal/tensor"
)

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Contiguous float64 operands go through gonum; everything else runs the
// accessor kernel, which handles transposed and narrowed views without
// materializing them.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}
	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}

	out, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float64:
		if a.IsContiguous() && b.IsContiguous() {
			cpu.matmulGonum(out, a, b, m, k, n)
			return out
		}
		matmulAccessor(tensor.AccessRestrict[float64](a), tensor.AccessRestrict[float64](b),
			tensor.AccessRestrict[float64](out), cpu.par)
	case tensor.Float32:
		matmulAccessor(tensor.AccessRestrict[float32](a), tensor.AccessRestrict[float32](b),
			tensor.AccessRestrict[float32](out), cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
	return out
}

// matmulGonum multiplies contiguous float64 matrices through gonum's BLAS
// dispatch.
func (cpu *CPUBackend) matmulGonum(out, a, b *tensor.RawTensor, m, k, n int) {
	av := mat.NewDense(m, k, a.AsFloat64()[:m*k])
	bv := mat.NewDense(k, n, b.AsFloat64()[:k*n])
	ov := mat.NewDense(m, n, out.AsFloat64()[:m*n])
	ov.Mul(av, bv)
}

// matmulAccessor computes out[i,j] = sum_k a[i,k]*b[k,j] over restrict
// views, parallelized across output rows.
func matmulAccessor[T interface{ ~float32 | ~float64 }](a, b, out accessor.RestrictView[T], cfg parallel.Config) {
	m, k, n := a.Size(0), a.Size(1), b.Size(1)
	parallel.For(int(m), func(row int) {
		i := int64(row)
		arow := a.Index(i)
		orow := out.Index(i)
		for j := int64(0); j < n; j++ {
			var sum T
			for kk := int64(0); kk < k; kk++ {
				sum += arow.Get(kk) * b.Index(kk).Get(j)
			}
			orow.Set(j, sum)
		}
	}, cfg)
}
