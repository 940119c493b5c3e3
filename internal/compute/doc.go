// Package compute provides an index-parallel execution backend for the
// solver's per-particle passes.
//
// Density/pressure accumulation and force computation are both
// independent per-index maps over the live particle range: particle i's
// output depends only on its own neighbors, never on another particle's
// writes in the same pass. GetBackend().ParallelFor splits that range
// across a worker pool sized to runtime.NumCPU(), falling inline for small
// particle counts where goroutine setup would dominate the work.
package compute
