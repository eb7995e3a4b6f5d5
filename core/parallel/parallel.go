// Package parallel provides chunked CPU parallelism for the dense numeric
// loops in the Gramian engine.
package parallel

import (
	"math"
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn on each
// half-open range [start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below the
// threshold, and in parallel otherwise. Small kernel matrices are cheaper to
// fill on one core than to fan out.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}

// ParallelizeTriangular partitions the rows of an n×n upper-triangular
// workload (j >= i for each row i) into row ranges of roughly equal element
// count and runs fn on each range. Plain row chunking leaves the first worker
// with nearly twice the work of the last; the cut points here follow the
// quadratic area of the triangle instead.
func ParallelizeTriangular(n int, fn func(startRow, endRow int)) {
	if n == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers == 1 {
		fn(0, n)
		return
	}

	total := float64(n) * float64(n+1) / 2

	var wg sync.WaitGroup
	prev := 0
	for i := 1; i <= numWorkers; i++ {
		var end int
		if i == numWorkers {
			end = n
		} else {
			// Solve for the row where the cumulative triangle area reaches
			// the i-th share: area(r) = r*n - r*(r-1)/2
			target := total * float64(i) / float64(numWorkers)
			nf := float64(n)
			r := (2*nf + 1 - math.Sqrt((2*nf+1)*(2*nf+1)-8*target)) / 2
			end = int(r)
			if end <= prev {
				end = prev + 1
			}
			if end > n {
				end = n
			}
		}

		if prev >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(prev, end)
		prev = end
	}

	wg.Wait()
}
