package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	var hits [n]int32

	cfg := DefaultConfig()
	cfg.MinChunkSize = 1
	For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want once", i, h)
		}
	}
}

func TestForSequentialFallback(t *testing.T) {
	order := make([]int, 0, 10)
	For(10, func(i int) {
		order = append(order, i)
	}, Sequential())

	for i, got := range order {
		if got != i {
			t.Fatalf("sequential order broken at %d: got %d", i, got)
		}
	}
}

func TestForSmallWorkloadStaysSequential(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 100}
	// n below MinChunkSize: runs inline, so unsynchronized append is safe.
	var seen []int
	For(5, func(i int) { seen = append(seen, i) }, cfg)
	if len(seen) != 5 {
		t.Fatalf("visited %d indices, want 5", len(seen))
	}
}

func TestForZeroIterations(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	if called {
		t.Error("For(0) invoked the body")
	}
}
