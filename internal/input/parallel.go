package input

import (
	"runtime"
	"sync"

	"github.com/kolkov/uwc"
)

// PoolConfig holds configuration for parallel operand counting.
type PoolConfig struct {
	// Workers is the number of concurrent counting goroutines.
	// 0 means all CPUs; negative means the default of min(4, NumCPU).
	Workers int
}

// DefaultPoolConfig returns the default worker count, min(4, NumCPU).
// Counting saturates memory bandwidth well before it saturates many cores,
// so the default stays modest.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{Workers: -1}
}

func (pc PoolConfig) workers() int {
	switch {
	case pc.Workers > 0:
		return pc.Workers
	case pc.Workers == 0:
		return runtime.NumCPU()
	}
	n := runtime.NumCPU()
	if n > 4 {
		n = 4
	}
	return n
}

// Result is the outcome of counting one operand. Index preserves command
// line order so output can be printed in order regardless of completion
// order.
type Result struct {
	Index  int
	Path   string
	Counts uwc.Counts
	Err    error
}

// CountAll counts every operand with a pool of workers, each operand with
// its own carry-free Counter, and returns results in operand order. Each
// file is counted sequentially; parallelism is across files only.
func CountAll(paths []string, locale uwc.Locale, cfg *uwc.Config, pc PoolConfig) []Result {
	results := make([]Result, len(paths))
	n := pc.workers()
	if n > len(paths) {
		n = len(paths)
	}
	if n <= 1 {
		for i, p := range paths {
			counts, err := CountPath(p, locale, cfg)
			results[i] = Result{Index: i, Path: p, Counts: counts, Err: err}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				counts, err := CountPath(paths[i], locale, cfg)
				results[i] = Result{Index: i, Path: paths[i], Counts: counts, Err: err}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
