// Bench is a benchmarking tool for measuring fixedset build performance,
// query throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -workers 4 -family affine
//
// Flags:
//
//	-keys      Number of keys to index (default: 1,000,000)
//	-workers   Number of parallel workers for bucket construction (default: 1)
//	-family    Hash family: affine or murmur3 (default: affine)
//	-seed      Build seed, 0 for a random seed (default: 0)
//	-queries   Number of membership queries to run (default: 10,000,000)
package main

import (
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/tamirms/fixedset"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, Maxrss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of keys")
	workersFlag := flag.Int("workers", 1, "parallel workers for bucket construction")
	familyFlag := flag.String("family", "affine", "hash family: affine or murmur3")
	seedFlag := flag.Uint64("seed", 0, "build seed (0 = random)")
	queriesFlag := flag.Int("queries", 10_000_000, "number of queries")
	flag.Parse()

	var family fixedset.HashFamilyID
	switch *familyFlag {
	case "affine":
		family = fixedset.FamilyAffine
	case "murmur3":
		family = fixedset.FamilyMurmur3
	default:
		fmt.Fprintf(os.Stderr, "unknown family %q\n", *familyFlag)
		os.Exit(1)
	}

	fmt.Println("Generating keys...")
	rng := mrand.New(mrand.NewPCG(42, 43))
	seen := make(map[int32]struct{}, *keysFlag)
	keys := make([]int32, 0, *keysFlag)
	for len(keys) < *keysFlag {
		k := int32(rng.Uint32())
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	opts := []fixedset.BuildOption{
		fixedset.WithWorkers(*workersFlag),
		fixedset.WithHashFamily(family),
	}
	if *seedFlag != 0 {
		opts = append(opts, fixedset.WithSeed(*seedFlag))
	}

	fmt.Printf("Building (%s, %d workers)...\n", family, *workersFlag)
	start := time.Now()
	set, err := fixedset.Build(keys, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	buildDur := time.Since(start)

	st := set.Stats()
	fmt.Printf("Build: %v (%.0f keys/s)\n", buildDur, float64(len(keys))/buildDur.Seconds())
	fmt.Printf("Buckets: %d  Slots: %d (%.2f per key)  MaxBucketKeys: %d  HashAttempts: %d\n",
		st.Buckets, st.Slots, float64(st.Slots)/float64(st.Keys), st.MaxBucketKeys, st.HashAttempts)

	// Query workload: half known keys, half uniform random (mostly misses).
	queries := make([]int32, *queriesFlag)
	for i := range queries {
		if i%2 == 0 {
			queries[i] = keys[rng.IntN(len(keys))]
		} else {
			queries[i] = int32(rng.Uint32())
		}
	}

	fmt.Println("Querying...")
	start = time.Now()
	hits := 0
	for _, q := range queries {
		if set.Contains(q) {
			hits++
		}
	}
	queryDur := time.Since(start)
	fmt.Printf("Queries: %v (%.0f queries/s, %d hits)\n",
		queryDur, float64(len(queries))/queryDur.Seconds(), hits)
	fmt.Printf("Peak RSS: %.1f MiB\n", float64(getMaxRSS())/(1024*1024))
}
