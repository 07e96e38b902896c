package tensor

import "testing"

func newRawFloat32(t *testing.T, shape Shape, values []float32) *RawTensor {
	t.Helper()
	raw, err := NewRaw(shape, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat32(), values)
	return raw
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, raw.Shape(), "shape")
	if raw.NumElements() != 6 || raw.ByteSize() != 24 {
		t.Errorf("NumElements/ByteSize = %d/%d, want 6/24", raw.NumElements(), raw.ByteSize())
	}
	if !raw.IsContiguous() {
		t.Error("fresh tensor should be contiguous")
	}
	if raw.Device() != CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}

	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw accepted invalid shape")
	}
}

func TestRawMetadataArrays(t *testing.T) {
	raw := newRawFloat32(t, Shape{2, 3, 4}, make([]float32, 24))

	sizes, strides := raw.Sizes64(), raw.Strides64()
	wantSizes := []int64{2, 3, 4}
	wantStrides := []int64{12, 4, 1}
	for i := range wantSizes {
		if sizes[i] != wantSizes[i] || strides[i] != wantStrides[i] {
			t.Fatalf("metadata = %v/%v, want %v/%v", sizes, strides, wantSizes, wantStrides)
		}
	}

	// The arrays must be stable: vending twice returns the same backing.
	if &raw.Sizes64()[0] != &sizes[0] {
		t.Error("Sizes64 is not a stable array")
	}
}

func TestRawAsTyped(t *testing.T) {
	raw := newRawFloat32(t, Shape{2, 3}, []float32{10, 11, 12, 13, 14, 15})

	data := raw.AsFloat32()
	if data[5] != 15 {
		t.Errorf("AsFloat32()[5] = %v, want 15", data[5])
	}
	data[0] = 1
	if raw.AsFloat32()[0] != 1 {
		t.Error("AsFloat32 is not a zero-copy view")
	}

	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on float32 tensor should panic")
		}
	}()
	raw.AsFloat64()
}

func TestRawNarrow(t *testing.T) {
	raw := newRawFloat32(t, Shape{4, 3}, []float32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
	})

	view, err := raw.Narrow(0, 1, 2)
	if err != nil {
		t.Fatalf("Narrow: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, view.Shape(), "narrowed shape")
	if view.AsFloat32()[0] != 3 {
		t.Errorf("narrowed view starts at %v, want 3", view.AsFloat32()[0])
	}
	if !view.IsContiguous() {
		t.Error("row narrow of a dense tensor should stay contiguous")
	}

	// Writes through the view hit the shared buffer.
	view.AsFloat32()[0] = -1
	if raw.AsFloat32()[3] != -1 {
		t.Error("narrowed view does not share the buffer")
	}

	if _, err := raw.Narrow(0, 3, 2); err == nil {
		t.Error("Narrow accepted out-of-range window")
	}
	if _, err := raw.Narrow(2, 0, 1); err == nil {
		t.Error("Narrow accepted bad dimension")
	}
}

func TestRawTranspose(t *testing.T) {
	raw := newRawFloat32(t, Shape{2, 3}, []float32{10, 11, 12, 13, 14, 15})

	tr, err := raw.Transpose()
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, tr.Shape(), "transposed shape")
	if tr.IsContiguous() {
		t.Error("transposed view should be non-contiguous")
	}
	if tr.Strides()[0] != 1 || tr.Strides()[1] != 3 {
		t.Errorf("transposed strides = %v, want [1 3]", tr.Strides())
	}

	if _, err := raw.Transpose(0, 0); err == nil {
		t.Error("Transpose accepted duplicate axes")
	}
}

func TestRawBufferRefCounting(t *testing.T) {
	raw := newRawFloat32(t, Shape{2, 2}, []float32{1, 2, 3, 4})
	if !raw.IsUnique() {
		t.Fatal("fresh tensor should own its buffer uniquely")
	}

	clone := raw.Clone()
	if raw.IsUnique() {
		t.Error("clone should share the buffer")
	}
	clone.Release()
	if !raw.IsUnique() {
		t.Error("releasing the clone should restore uniqueness")
	}
}
