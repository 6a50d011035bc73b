package mdpdf

import "runtime"

// Worker count bounds for batch conversion.
const (
	MinWorkers = 1
	MaxWorkers = 8

	// cpuDivisor leaves headroom for file I/O and the rest of the host.
	cpuDivisor = 2
)

// ResolveWorkers determines how many documents to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS reflects container CPU quotas once automaxprocs has run.
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinWorkers), MaxWorkers)
}
