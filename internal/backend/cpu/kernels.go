package cpu

import (
	"github.com/gradkit/strided/internal/accessor"
	"github.com/gradkit/strided/internal/parallel"
	"github.com/gradkit/strided/internal/tensor"
)

// The kernel helpers below all follow the same plan: split the outermost
// dimension across workers, then walk the remaining dimensions through the
// accessor index recursion on each worker's goroutine.

// mapRows writes f(in) into out element by element. Both views must have
// identical sizes; out is typically a fresh dense tensor.
func mapRows[T tensor.DType](in, out accessor.View[T], cfg parallel.Config, f func(T) T) {
	if in.Dims() == 1 {
		n := in.Size(0)
		for i := int64(0); i < n; i++ {
			out.Set(i, f(in.Get(i)))
		}
		return
	}
	parallel.For(int(in.Size(0)), func(i int) {
		mapSeq(in.Index(int64(i)), out.Index(int64(i)), f)
	}, cfg)
}

func mapSeq[T tensor.DType](in, out accessor.View[T], f func(T) T) {
	if in.Dims() == 1 {
		for i := int64(0); i < in.Size(0); i++ {
			out.Set(i, f(in.Get(i)))
		}
		return
	}
	for i := int64(0); i < in.Size(0); i++ {
		mapSeq(in.Index(i), out.Index(i), f)
	}
}

// zipRows writes f(a, b) into out element by element across three views of
// identical sizes.
func zipRows[T tensor.DType](a, b, out accessor.View[T], cfg parallel.Config, f func(x, y T) T) {
	if a.Dims() == 1 {
		for i := int64(0); i < a.Size(0); i++ {
			out.Set(i, f(a.Get(i), b.Get(i)))
		}
		return
	}
	parallel.For(int(a.Size(0)), func(i int) {
		zipSeq(a.Index(int64(i)), b.Index(int64(i)), out.Index(int64(i)), f)
	}, cfg)
}

func zipSeq[T tensor.DType](a, b, out accessor.View[T], f func(x, y T) T) {
	if a.Dims() == 1 {
		for i := int64(0); i < a.Size(0); i++ {
			out.Set(i, f(a.Get(i), b.Get(i)))
		}
		return
	}
	for i := int64(0); i < a.Size(0); i++ {
		zipSeq(a.Index(i), b.Index(i), out.Index(i), f)
	}
}

// reduceAll feeds every element of the view to f, sequentially. Reductions
// stay single-goroutine so the accumulator needs no synchronization.
func reduceAll[T tensor.DType](v accessor.View[T], f func(T)) {
	if v.Dims() == 1 {
		for i := int64(0); i < v.Size(0); i++ {
			f(v.Get(i))
		}
		return
	}
	for i := int64(0); i < v.Size(0); i++ {
		reduceAll(v.Index(i), f)
	}
}
