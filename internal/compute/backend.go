package compute

// Backend runs an index-parallel computation. Every call with the same n
// must be safe to split across goroutines that each own a disjoint range
// of indices — the solver's density, pressure, and force passes are
// embarrassingly parallel in this sense, since each particle only writes
// its own slot.
type Backend interface {
	Name() string
	Available() bool
	ParallelFor(n int, fn func(i int))
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = NewCPUBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}
