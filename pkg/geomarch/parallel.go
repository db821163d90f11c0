package geomarch

import (
	"runtime"
	"sync"

	"github.com/beetlebugorg/geomarch/internal/marching"
)

// ParallelOptions controls concurrent band/level computation.
type ParallelOptions struct {
	// Workers is the number of concurrent goroutines. If 0, defaults to
	// runtime.NumCPU().
	Workers int

	// Progress is an optional callback invoked after each band or level
	// finishes. Parameters: (done, total).
	Progress func(done, total int)
}

// DefaultParallelOptions returns options sized to the host's CPU count.
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{Workers: runtime.NumCPU()}
}

// IsobandsParallel computes the same result as Engine.Isobands, but
// dispatches each [lower, upper) band to its own worker: bands are
// independent, each reading the grid and tracing its own cell store, so
// they parallelize cleanly across CPU cores.
func (e *Engine) IsobandsParallel(thresholds []float64, opts ParallelOptions) ([]Band, error) {
	if err := marching.ValidateThresholds(thresholds); err != nil {
		return nil, err
	}

	n := len(thresholds) - 1
	results := make([]marching.BandResult, n)
	run(n, opts, func(i int) {
		results[i] = marching.BandAt(e.grid.inner, thresholds[i], thresholds[i+1])
	})

	bands := make([]Band, n)
	for i, r := range results {
		bands[i] = Band{Lower: r.Lower, Upper: r.Upper, Polygons: convertPolygons(r.Polygons)}
	}
	return bands, nil
}

// IsolinesParallel computes the same result as Engine.IsolinesOf, but
// dispatches each level to its own worker.
func (e *Engine) IsolinesParallel(levels []float64, opts ParallelOptions) ([]Isoline, error) {
	if len(levels) == 0 {
		return nil, &marching.ErrNoLevels{}
	}

	n := len(levels)
	results := make([]marching.IsolineResult, n)
	run(n, opts, func(i int) {
		results[i] = marching.LineAt(e.grid.inner, levels[i])
	})

	lines := make([]Isoline, n)
	for i, r := range results {
		lines[i] = Isoline{Level: r.Level, Polygons: convertPolygons(r.Polygons)}
	}
	return lines, nil
}

// run fans n independent jobs out across a worker pool and waits for all of
// them to finish before returning.
func run(n int, opts ParallelOptions, job func(i int)) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int, n)
	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				job(i)
				if opts.Progress != nil {
					mu.Lock()
					done++
					opts.Progress(done, n)
					mu.Unlock()
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}
