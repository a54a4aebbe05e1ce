// File: forblocked.go
package kdpar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BlockFunc processes the contiguous half-open range [begin, end) of a
// query array sequentially, one element at a time.
type BlockFunc func(begin, end int) error

// ForBlocked partitions [0, n) into contiguous blocks of at most blockSize
// elements and runs blockFn on each block concurrently, one goroutine per
// block, with at most maxConcurrency blocks in flight at once (0 means
// unlimited). A fixed blockSize of 1024 reproduces the original harness's
// default; within a single block, blockFn is expected to run one query at
// a time, matching the "thread runs one query at a time, sequentially"
// scheduling model.
//
// If ctx is canceled, every block that has not started yet returns
// ctx.Err() without calling blockFn; ForBlocked returns the first error
// once all blocks finish.
func ForBlocked(ctx context.Context, n, blockSize, maxConcurrency int, blockFn BlockFunc) error {
	if blockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if n <= 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	for begin := 0; begin < n; begin += blockSize {
		begin := begin
		end := begin + blockSize
		if end > n {
			end = n
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return blockFn(begin, end)
		})
	}

	return g.Wait()
}
