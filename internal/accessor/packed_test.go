package accessor

import "testing"

func TestPackedCopiesMetadata(t *testing.T) {
	data := seq(6)
	sizes := []int64{2, 3}
	strides := []int64{3, 1}
	p := PackOf(data, sizes, strides)

	if p.Dims() != 2 {
		t.Fatalf("Dims() = %d, want 2", p.Dims())
	}
	for k := 0; k < 2; k++ {
		assertEqualInt64(t, sizes[k], p.Size(k), "packed size")
		assertEqualInt64(t, strides[k], p.Stride(k), "packed stride")
	}

	// The packed accessor must not alias the source arrays.
	sizes[0] = -42
	strides[1] = -42
	assertEqualInt64(t, 2, p.Size(0), "size after source mutation")
	assertEqualInt64(t, 1, p.Stride(1), "stride after source mutation")
}

// A byte-for-byte copy of a packed accessor is as good as the original,
// even once the arrays it was built from are gone.
func TestPackedCopyIsSelfContained(t *testing.T) {
	data := seq(24)
	p := PackOf(data, []int64{2, 3, 4}, []int64{12, 4, 1})

	cp := p
	for k := 0; k < 3; k++ {
		assertEqualInt64(t, p.Size(k), cp.Size(k), "copied size")
		assertEqualInt64(t, p.Stride(k), cp.Stride(k), "copied stride")
	}
	if cp.Data().Elem(0) != &data[0] {
		t.Error("copied packed accessor lost its data pointer")
	}
}

// Indexing a packed accessor crosses into the reference family: the result
// borrows into the packed value's own embedded arrays.
func TestPackedIndexYieldsRef(t *testing.T) {
	data := seq(6)
	p := PackOf(data, []int64{2, 3}, []int64{3, 1})

	row := p.Index(0)
	if row.Dims() != 1 {
		t.Fatalf("row.Dims() = %d, want 1", row.Dims())
	}
	assertEqualInt64(t, 3, row.Size(0), "row size")
	assertEqualInt64(t, 1, row.Stride(0), "row stride")
	if row.Elem(0) != &data[0] {
		t.Error("p.Index(0) data pointer moved, want original")
	}
	if &row.Sizes()[0] != &p.sizes[1] {
		t.Error("row sizes do not borrow into the packed accessor's arrays")
	}

	if got := p.Index(1).Get(2); got != 15 {
		t.Errorf("p[1][2] = %v, want 15", got)
	}
}

func TestPackedTerminalElem(t *testing.T) {
	data := seq(8)
	p := PackOf(data, []int64{4}, []int64{2})

	for i := int64(0); i < 4; i++ {
		if p.Elem(i) != &data[2*i] {
			t.Errorf("Elem(%d) = %p, want %p", i, p.Elem(i), &data[2*i])
		}
	}
	p.Set(1, 5)
	if data[2] != 5 {
		t.Errorf("write through packed terminal did not reach buffer: got %v", data[2])
	}
}

// A packed accessor built from a reference accessor's borrowed slices
// must round-trip the metadata exactly.
func TestPackedRoundTripFromRef(t *testing.T) {
	data := seq(24)
	v := Of(data, []int64{2, 3, 4}, []int64{12, 4, 1})

	p := NewPacked[float32](v.Data(), v.Sizes(), v.Strides())
	for k := 0; k < v.Dims(); k++ {
		assertEqualInt64(t, v.Size(k), p.Size(k), "round-trip size")
		assertEqualInt64(t, v.Stride(k), p.Stride(k), "round-trip stride")
	}
}

func TestPackedRestrictPointer(t *testing.T) {
	data := seq(6)
	p := NewPacked[float32](Restrict(data), []int64{2, 3}, []int64{3, 1})

	if got := p.Index(1).Get(2); got != 15 {
		t.Errorf("restrict p[1][2] = %v, want 15", got)
	}
	*p.Index(0).Elem(0) = 1
	if data[0] != 1 {
		t.Errorf("write through restrict packed view did not reach buffer: got %v", data[0])
	}
}

// Metadata longer than the embedded arrays cannot be packed; silently
// truncating it would leave Size and Index reading past the arrays.
func TestPackedRejectsTooManyDims(t *testing.T) {
	data := seq(512)
	sizes := []int64{2, 2, 2, 2, 2, 2, 2, 2, 2}
	strides := []int64{256, 128, 64, 32, 16, 8, 4, 2, 1}

	mustPanic(t, "PackOf beyond MaxDims", func() {
		PackOf(data, sizes, strides)
	})

	// Exactly MaxDims still packs.
	p := PackOf(data, sizes[1:], strides[1:])
	if got := p.Dims(); got != MaxDims {
		t.Errorf("Dims() = %d, want %d", got, MaxDims)
	}
	if got := p.Size(MaxDims - 1); got != 2 {
		t.Errorf("Size(%d) = %d, want 2", MaxDims-1, got)
	}
}

func TestPackedRejectsMismatchedMetadata(t *testing.T) {
	data := seq(6)
	mustPanic(t, "sizes/strides length mismatch", func() {
		PackOf(data, []int64{2, 3}, []int64{3})
	})
}
