package tensor

import (
	"math"
	"testing"
)

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func fromSlice32(t *testing.T, data []float32, shape Shape) *Tensor[float32, *MockBackend] {
	t.Helper()
	tt, err := FromSlice(data, shape, NewMockBackend())
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return tt
}

func TestFromSlice(t *testing.T) {
	tt := fromSlice32(t, []float32{10, 11, 12, 13, 14, 15}, Shape{2, 3})
	assertEqualShape(t, Shape{2, 3}, tt.Shape(), "shape")
	if tt.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", tt.DType())
	}

	if _, err := FromSlice([]float32{1, 2}, Shape{2, 3}, NewMockBackend()); err == nil {
		t.Error("FromSlice accepted mismatched length")
	}
}

func TestTensorAtSet(t *testing.T) {
	tt := fromSlice32(t, []float32{10, 11, 12, 13, 14, 15}, Shape{2, 3})

	if got := tt.At(1, 2); got != 15 {
		t.Errorf("At(1, 2) = %v, want 15", got)
	}
	tt.Set(99, 0, 1)
	if got := tt.At(0, 1); got != 99 {
		t.Errorf("At(0, 1) after Set = %v, want 99", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("At with wrong arity should panic")
		}
	}()
	tt.At(1)
}

func TestTensorAddAndScale(t *testing.T) {
	a := fromSlice32(t, []float32{1, 2, 3, 4}, Shape{2, 2})
	b := fromSlice32(t, []float32{10, 20, 30, 40}, Shape{2, 2})

	sum := a.Add(b)
	want := []float32{11, 22, 33, 44}
	for i, w := range want {
		if sum.Data()[i] != w {
			t.Errorf("Add result[%d] = %v, want %v", i, sum.Data()[i], w)
		}
	}

	scaled := a.Scale(2)
	if scaled.At(1, 1) != 8 {
		t.Errorf("Scale(2) at [1][1] = %v, want 8", scaled.At(1, 1))
	}
}

func TestTensorContiguous(t *testing.T) {
	tt := fromSlice32(t, []float32{10, 11, 12, 13, 14, 15}, Shape{2, 3})
	tr, err := tt.Transpose()
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}

	dense := tr.Contiguous()
	if !dense.Raw().IsContiguous() {
		t.Fatal("Contiguous() returned a strided tensor")
	}
	want := []float32{10, 13, 11, 14, 12, 15}
	for i, w := range want {
		if dense.Data()[i] != w {
			t.Errorf("materialized[%d] = %v, want %v", i, dense.Data()[i], w)
		}
	}

	// Already-dense tensors come back unchanged.
	if tt.Contiguous() != tt {
		t.Error("Contiguous() copied an already-contiguous tensor")
	}
}

func TestTensorMatMul(t *testing.T) {
	a := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	b := fromSlice32(t, []float32{7, 8, 9, 10, 11, 12}, Shape{3, 2})

	c := a.MatMul(b)
	assertEqualShape(t, Shape{2, 2}, c.Shape(), "matmul shape")
	want := []float32{58, 64, 139, 154}
	for i, w := range want {
		if c.Data()[i] != w {
			t.Errorf("matmul[%d] = %v, want %v", i, c.Data()[i], w)
		}
	}
}

func TestTensorSum(t *testing.T) {
	tt := fromSlice32(t, []float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	assertEqualFloat64(t, 21, tt.Sum(), "Sum")

	// Sum over a narrowed view counts only visible elements.
	row, err := tt.Narrow(0, 1, 1)
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	assertEqualFloat64(t, 15, row.Sum(), "narrowed Sum")
}

func TestTensorString(t *testing.T) {
	tt := fromSlice32(t, make([]float32, 6), Shape{2, 3})
	want := "Tensor[float32][2 3] on CPU"
	if got := tt.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
