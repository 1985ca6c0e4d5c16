package workflow

import (
	"sync"

	"github.com/rigtools/polyline"
)

// BatchResult holds the outcome for one curve of a batch.
type BatchResult struct {
	// Index is the curve's position in the input slice.
	Index  int
	Result polyline.OptimizationResult
	Err    error
}

// BatchOptimize optimizes independent curves concurrently with a bounded
// worker pool and returns one result per input curve, in input order. A
// failed curve carries its error and does not affect the others.
func BatchOptimize(curves []polyline.Curve, cfg polyline.OptimizeConfig, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	if workers > len(curves) {
		workers = len(curves)
	}

	results := make([]BatchResult, len(curves))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := polyline.Optimize(curves[i], cfg)
				results[i] = BatchResult{Index: i, Result: res, Err: err}
			}
		}()
	}
	for i := range curves {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
