package octree

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// task splits [0, count) into one contiguous chunk per worker and runs fn on every index.
func task(workersCount int, count int, fn func(i int)) {
	workersCount = max(1, workersCount)
	var wg sync.WaitGroup
	chunkSize := (count + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, count))
	}
	wg.Wait()
}

// ElementsAtAll runs ElementsAt for every point over workers goroutines. Result i holds the matches
// of points[i], nil when there were none.
//
// The queries only read the tree: no mutation may run while ElementsAtAll is in progress.
func (t *Octree[T]) ElementsAtAll(points []mgl64.Vec3, workers int) [][]T {
	results := make([][]T, len(points))

	task(workers, len(points), func(i int) {
		results[i] = t.root.collectAt(points[i], nil)
	})

	return results
}
