package accessor

import "testing"

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestCheckedPassesThroughValidAccess(t *testing.T) {
	data := []float32{10, 11, 12, 13, 14, 15}
	c := NewChecked(Of(data, []int64{2, 3}, []int64{3, 1}))

	if c.Dims() != 2 {
		t.Fatalf("Dims() = %d, want 2", c.Dims())
	}
	assertEqualInt64(t, 3, c.Size(1), "Size(1)")
	assertEqualInt64(t, 3, c.Stride(0), "Stride(0)")

	if got := c.Index(1).Get(2); got != 15 {
		t.Errorf("c[1][2] = %v, want 15", got)
	}
	c.Index(0).Set(0, 42)
	if data[0] != 42 {
		t.Errorf("write through checked view did not reach buffer: got %v", data[0])
	}
}

func TestCheckedRejectsContractViolations(t *testing.T) {
	data := seq(6)
	c := NewChecked(Of(data, []int64{2, 3}, []int64{3, 1}))

	mustPanic(t, "index out of range", func() { c.Index(2) })
	mustPanic(t, "negative index", func() { c.Index(-1) })
	mustPanic(t, "Elem on 2-D view", func() { c.Elem(0) })
	mustPanic(t, "Index on 1-D view", func() { c.Index(0).Index(0) })
	mustPanic(t, "terminal out of range", func() { c.Index(0).Get(3) })
	mustPanic(t, "dimension out of range", func() { c.Size(2) })
}

func TestCheckedUnwrapIsFastPath(t *testing.T) {
	data := seq(6)
	v := Of(data, []int64{2, 3}, []int64{3, 1})
	c := NewChecked(v)

	u := c.Unwrap()
	if u.Index(1).Elem(2) != v.Index(1).Elem(2) {
		t.Error("Unwrap() does not address the same elements as the original")
	}
}
