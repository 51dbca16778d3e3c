package fixedset

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	fseterrors "github.com/tamirms/fixedset/errors"
)

// Stats describes the shape and construction cost of a built set.
type Stats struct {
	Keys          int // number of keys indexed
	Buckets       int // top-level bucket count (equal to Keys)
	Slots         int // total second-level slots across all buckets (at most 2*Keys)
	MaxBucketKeys int // size of the largest top-level partition
	HashAttempts  int // total hash draws spent at both levels
}

// FixedSet is a static perfect hash set over 32-bit integer keys.
//
// A FixedSet is built once from a fixed key collection by Build and is
// immutable afterwards; Contains is safe for concurrent use. Membership
// queries cost one top-level hash evaluation, one second-level hash
// evaluation, and one stored-key comparison, with no false positives or
// negatives for any int32 input.
type FixedSet struct {
	hash     hashFunc
	buckets  []bucket
	numKeys  int
	checksum uint64
	stats    Stats
}

// Build constructs a FixedSet from the given keys using the two-level FKS
// scheme: a first-level hash partitions the keys into len(keys) buckets,
// retried until the sum of squared bucket sizes is at most twice the key
// count, then each non-empty bucket is re-hashed into its own
// collision-free quadratically sized table.
//
// Keys must be distinct; a duplicate can never be placed collision-free,
// so it is rejected up front with ErrDuplicateKey instead of burning
// through the retry ceiling. An empty key slice yields a set whose
// Contains always reports false.
//
// Construction is randomized. If the retry search at either level
// exhausts its attempt ceiling, Build fails with ErrBadHashFunction and
// no table is returned; queries never fail on a successfully built set.
func Build(keys []int32, opts ...BuildOption) (*FixedSet, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: got %d", fseterrors.ErrInvalidMaxAttempts, cfg.maxAttempts)
	}
	if !cfg.seeded {
		seed, err := randomSeed()
		if err != nil {
			return nil, err
		}
		cfg.seed = seed
	}
	if err := checkDistinct(keys); err != nil {
		return nil, err
	}

	s := &FixedSet{numKeys: len(keys)}
	if len(keys) == 0 {
		return s, nil
	}

	gen, err := newGenerator(cfg.family, cfg.seed)
	if err != nil {
		return nil, err
	}

	numBuckets := len(keys)
	topHash, topAttempts, err := findHash(gen, numBuckets, keys, acceptQuadraticSum, cfg.maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("top-level partition: %w", err)
	}

	partitions := partition(keys, topHash, numBuckets)

	var buckets []bucket
	var bucketAttempts int
	if cfg.workers > 1 {
		buckets, bucketAttempts, err = buildBucketsParallel(partitions, cfg)
	} else {
		buckets, bucketAttempts, err = buildBucketsSerial(partitions, cfg)
	}
	if err != nil {
		return nil, err
	}

	s.hash = topHash
	s.buckets = buckets
	s.checksum = keySetChecksum(keys)
	s.stats = Stats{
		Keys:         len(keys),
		Buckets:      numBuckets,
		HashAttempts: topAttempts + bucketAttempts,
	}
	for _, p := range partitions {
		s.stats.Slots += len(p) * len(p)
		if len(p) > s.stats.MaxBucketKeys {
			s.stats.MaxBucketKeys = len(p)
		}
	}
	return s, nil
}

// Contains reports whether key was part of the collection Build was given.
// It never returns a false positive: a key from outside the original set
// that collides into an occupied slot is rejected by the stored-key
// comparison. Safe to call concurrently once Build has returned.
func (s *FixedSet) Contains(key int32) bool {
	if s.numKeys == 0 {
		return false
	}
	b := &s.buckets[bucketIndex(s.hash, key, len(s.buckets))]
	return b.contains(key)
}

// Len returns the number of keys indexed.
func (s *FixedSet) Len() int {
	return s.numKeys
}

// Checksum returns an order-independent xxHash64 digest of the key set,
// computed once at build time over the sorted keys. Two sets built from
// the same keys report equal checksums even though their internal hash
// functions differ from draw to draw.
func (s *FixedSet) Checksum() uint64 {
	return s.checksum
}

// Stats returns shape and construction-cost statistics for the set.
func (s *FixedSet) Stats() Stats {
	return s.stats
}

// buildBucketsSerial builds second-level tables one at a time. Each
// non-empty bucket gets its own generator derived from the build seed, so
// the result is identical to a parallel build of the same seed.
func buildBucketsSerial(partitions [][]int32, cfg *buildConfig) ([]bucket, int, error) {
	buckets := make([]bucket, len(partitions))
	attempts := 0
	for i, part := range partitions {
		if len(part) == 0 {
			continue
		}
		gen, err := newGenerator(cfg.family, deriveSeed(cfg.seed, uint64(i)))
		if err != nil {
			return nil, attempts, err
		}
		b, a, err := buildBucket(part, gen, cfg.maxAttempts)
		attempts += a
		if err != nil {
			return nil, attempts, fmt.Errorf("bucket %d (%d keys): %w", i, len(part), err)
		}
		buckets[i] = b
	}
	return buckets, attempts, nil
}

// partition splits keys into per-bucket lists under h.
func partition(keys []int32, h hashFunc, numBuckets int) [][]int32 {
	parts := make([][]int32, numBuckets)
	for _, k := range keys {
		i := bucketIndex(h, k, numBuckets)
		parts[i] = append(parts[i], k)
	}
	return parts
}

// checkDistinct rejects inputs containing the same key twice.
func checkDistinct(keys []int32) error {
	seen := make(map[int32]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %d", fseterrors.ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// randomSeed draws a build seed from the operating system's entropy pool.
func randomSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read build seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// keySetChecksum digests the keys in sorted order so the result depends
// only on the set, not on input order or on the hash functions drawn.
func keySetChecksum(keys []int32) uint64 {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	d := xxhash.New()
	var buf [4]byte
	for _, k := range sorted {
		binary.LittleEndian.PutUint32(buf[:], uint32(k))
		_, _ = d.Write(buf[:]) // xxhash.Digest.Write never fails
	}
	return d.Sum64()
}

// deriveSeed produces an independent stream seed for bucket i from the
// build seed, using the splitmix64 finalizer. Per-bucket generators let
// buckets be built in any order, or in parallel, without sharing random
// state, while keeping seeded builds fully deterministic.
func deriveSeed(seed, i uint64) uint64 {
	z := seed + (i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
