// Package fixedset implements a static perfect hash set for 32-bit integer
// keys using the classic two-level FKS construction.
//
// A FixedSet is built once from a fixed key collection and then answers
// exact membership queries in constant time: one first-level hash selects
// a bucket, one second-level hash selects a slot, and a stored-key
// comparison confirms or refutes membership. There are no false positives
// or negatives, for any int32 query.
//
// # Basic Usage
//
// Building and querying a set:
//
//	set, err := fixedset.Build(keys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if set.Contains(42) {
//	    fmt.Println("present")
//	}
//
// Construction is randomized: the builder retries random hash functions
// until the two-level invariants hold (total second-level space at most
// twice the key count, zero collisions within each bucket). Queries never
// fail; a build that cannot find acceptable hash functions within the
// attempt ceiling fails with errors.ErrBadHashFunction.
//
// For reproducible builds, fix the seed:
//
//	set, err := fixedset.Build(keys, fixedset.WithSeed(1))
//
// A built set is immutable and safe for concurrent queries. Insertions,
// deletions, and resizing are out of scope; build a new set instead.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: set.go (Build, Contains, Len, Checksum, Stats)
//   - Configuration: options.go (BuildOption, With* functions)
//   - Retry search: search.go (findHash, acceptance predicates)
//   - Second level: bucket.go (collision-free quadratic tables)
//   - Hash families: family.go (dispatch), internal/affine/, internal/seeded/
//   - Parallel construction: parallel.go
//   - Key derivation: prehash.go (PreHash for byte-string keys)
package fixedset
