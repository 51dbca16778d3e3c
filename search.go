package fixedset

import (
	"fmt"

	fseterrors "github.com/tamirms/fixedset/errors"
)

// spaceFactor bounds the top-level sum of squared bucket occupancies as a
// multiple of the bucket count. With bucket count equal to the key count,
// a uniformly random affine draw satisfies the bound with probability at
// least 1/2, and the bound caps total second-level space at 2N slots.
const spaceFactor = 2

// findHash repeatedly draws candidate hash functions from gen until the
// occupancy distribution they induce over numBuckets buckets satisfies
// accept, or maxAttempts draws have been rejected.
//
// Returns the accepted function and the number of draws spent. Exhausting
// the ceiling returns ErrBadHashFunction; this is a construction-time
// failure and the caller must abort the whole build rather than keep a
// partially built table.
//
// Callers guarantee numBuckets > 0; the empty key set is special-cased
// before any search so that zero never reaches the modulo below.
func findHash(gen generator, numBuckets int, keys []int32, accept func(occupancy []int) bool, maxAttempts int) (hashFunc, int, error) {
	if numBuckets <= 0 {
		panic("fixedset: findHash requires at least one bucket")
	}
	occupancy := make([]int, numBuckets)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		h := gen.Generate()
		clear(occupancy)
		for _, k := range keys {
			occupancy[bucketIndex(h, k, numBuckets)]++
		}
		if accept(occupancy) {
			return h, attempt, nil
		}
	}
	return nil, maxAttempts, fmt.Errorf("%w: %d draws rejected placing %d keys into %d buckets",
		fseterrors.ErrBadHashFunction, maxAttempts, len(keys), numBuckets)
}

// bucketIndex maps a key to an index in [0, numBuckets) under h.
// Evaluate never returns a negative residue, so the modulo is safe.
func bucketIndex(h hashFunc, key int32, numBuckets int) int {
	return int(h.Evaluate(key) % uint64(numBuckets))
}

// acceptQuadraticSum is the top-level acceptance predicate: the sum of
// squared occupancies must stay within spaceFactor times the bucket count.
// This is the classical FKS tail bound that keeps the total size of the
// second-level tables linear in the key count.
func acceptQuadraticSum(occupancy []int) bool {
	sum := 0
	for _, n := range occupancy {
		sum += n * n
	}
	return sum <= spaceFactor*len(occupancy)
}

// acceptCollisionFree is the second-level acceptance predicate: every slot
// receives at most one key, i.e. the draw is injective on the bucket.
func acceptCollisionFree(occupancy []int) bool {
	for _, n := range occupancy {
		if n > 1 {
			return false
		}
	}
	return true
}
