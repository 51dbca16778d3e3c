package fixedset

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// buildBucketsParallel builds second-level tables with cfg.workers
// goroutines. Bucket indexes are handed out over a channel; each worker
// writes only the buckets it was handed, so no synchronization is needed
// on the result slice. Every bucket uses its own generator derived from
// the build seed, so the resulting table is identical to a serial build
// of the same seed.
func buildBucketsParallel(partitions [][]int32, cfg *buildConfig) ([]bucket, int, error) {
	buckets := make([]bucket, len(partitions))
	var attempts atomic.Int64

	workers := cfg.workers
	if workers > len(partitions) {
		workers = len(partitions)
	}

	work := make(chan int)
	g, ctx := errgroup.WithContext(context.Background())
	for range workers {
		g.Go(func() error {
			for i := range work {
				part := partitions[i]
				if len(part) == 0 {
					continue
				}
				gen, err := newGenerator(cfg.family, deriveSeed(cfg.seed, uint64(i)))
				if err != nil {
					return err
				}
				b, a, err := buildBucket(part, gen, cfg.maxAttempts)
				attempts.Add(int64(a))
				if err != nil {
					return fmt.Errorf("bucket %d (%d keys): %w", i, len(part), err)
				}
				buckets[i] = b
			}
			return nil
		})
	}

	// Feed indexes until done or a worker fails. The ctx branch prevents a
	// deadlock when workers have stopped receiving after an error.
feed:
	for i := range partitions {
		select {
		case work <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)

	if err := g.Wait(); err != nil {
		return nil, int(attempts.Load()), err
	}
	return buckets, int(attempts.Load()), nil
}
