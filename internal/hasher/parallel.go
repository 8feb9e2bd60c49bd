package hasher

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParallelHash hashes every path in paths using up to workers concurrent
// hashers that share an atomic next-index cursor. workers is clamped to
// [1, runtime.NumCPU()]. Results are returned in input order; a failure
// hashing any single file stores 0 for that slot and does not abort the
// rest of the batch. Each worker owns no shared mutable state beyond the
// cursor itself.
func ParallelHash(paths []string, workers int) []uint64 {
	if workers < 1 {
		workers = 1
	}
	if max := runtime.NumCPU(); workers > max {
		workers = max
	}
	if len(paths) == 0 {
		return nil
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]uint64, len(paths))
	var cursor atomic.Int64

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1)) - 1
				if i >= len(paths) {
					return nil
				}
				h, err := HashFile(paths[i])
				if err != nil {
					results[i] = 0
					continue
				}
				results[i] = h
			}
		})
	}
	_ = g.Wait()
	return results
}
