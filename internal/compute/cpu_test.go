package compute

import "testing"

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	n := 500
	seen := make([]int, n)
	b := NewCPUBackend()
	b.ParallelFor(n, func(i int) {
		seen[i]++
	})
	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestParallelForSmallRangeRunsInline(t *testing.T) {
	b := NewCPUBackend()
	var sum int
	b.ParallelFor(3, func(i int) {
		sum += i
	})
	if sum != 0+1+2 {
		t.Errorf("expected sum 3, got %d", sum)
	}
}

func TestGetBackendDefaultsToCPU(t *testing.T) {
	if GetBackend().Name() != "cpu" {
		t.Errorf("expected default backend cpu, got %s", GetBackend().Name())
	}
}
