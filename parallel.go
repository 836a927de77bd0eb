package histmatch

import (
	"runtime"
	"sync"
	"sync/atomic"
)

var (
	maxParallelWorkers atomic.Int32
	workerSemOnce      sync.Once
	workerSem          chan struct{}
)

// SetMaxWorkers limits the number of goroutines used by per-pixel loops.
// Zero means runtime.GOMAXPROCS, one makes every loop sequential.
func SetMaxWorkers(n int) {
	if n < 0 {
		n = 0
	}
	maxParallelWorkers.Store(int32(n))
}

// parallelFor splits [0, total) into contiguous chunks and runs fn on them concurrently.
// A process-wide semaphore bounds the number of running chunks across concurrent callers.
func parallelFor(total int, fn func(start, end int)) {
	if total <= 0 {
		return
	}
	capacity := runtime.GOMAXPROCS(0)
	if capacity < 1 {
		capacity = 1
	}
	workerSemOnce.Do(func() {
		workerSem = make(chan struct{}, capacity)
	})
	workers := min(capacity, cap(workerSem), total)
	if limit := int(maxParallelWorkers.Load()); limit > 0 && workers > limit {
		workers = limit
	}
	if workers <= 1 {
		fn(0, total)
		return
	}
	step := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += step {
		end := min(start+step, total)
		workerSem <- struct{}{}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() { <-workerSem }()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
