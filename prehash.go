package fixedset

import (
	"github.com/zeebo/xxh3"
)

// PreHash derives a 32-bit key from an arbitrary byte key using xxHash3.
//
// Use this when the data to index is not already 32-bit integers (strings,
// URLs, UUIDs). Derive a key for every element before Build, and apply the
// same derivation to the query before Contains:
//
//	keys := make([]int32, len(words))
//	for i, w := range words {
//	    keys[i] = fixedset.PreHash([]byte(w))
//	}
//	set, err := fixedset.Build(keys)
//	...
//	found := set.Contains(fixedset.PreHash([]byte("query")))
//
// Folding arbitrary input onto 32 bits loses information: two distinct
// inputs can map to the same key, in which case Build reports
// ErrDuplicateKey and the caller must fall back to a wider key scheme.
// A positive Contains likewise certifies membership of the derived key,
// not of the original byte string.
func PreHash(key []byte) int32 {
	return int32(uint32(xxh3.Hash(key)))
}
