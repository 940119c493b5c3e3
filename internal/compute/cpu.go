package compute

import (
	"runtime"
	"sync"
)

// CPUBackend splits an index range into one contiguous chunk per worker
// goroutine. Small ranges run inline to avoid paying goroutine overhead
// on a handful of particles.
type CPUBackend struct {
	workers   int
	minChunks int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{workers: runtime.NumCPU(), minChunks: 64}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

// ParallelFor calls fn(i) for every i in [0, n). fn must only touch state
// owned by index i.
func (c *CPUBackend) ParallelFor(n int, fn func(i int)) {
	if n < c.minChunks || c.workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}

	wg.Wait()
}
