package fixedset

// slot holds one key of a second-level table. occupied distinguishes a
// stored zero key from an empty slot.
type slot struct {
	key      int32
	occupied bool
}

// bucket is a second-level table: one hash function over keyCount² slots,
// retried at build time until the placement is collision-free. The key
// itself is stored in the slot so that lookups can reject keys from
// outside the bucket's original set that happen to land on an occupied
// slot; that stored-key comparison is what makes queries exact.
//
// The zero value is the empty bucket: no hash function, no slots.
type bucket struct {
	hash  hashFunc
	slots []slot
}

// buildBucket constructs a collision-free table for keys. An empty key
// slice yields a zero-size bucket whose contains always reports false
// without evaluating any hash. Returns the number of hash draws spent.
//
// The quadratic table size keeps the expected number of colliding pairs
// below 1/2 under a uniformly random draw, so the retry search accepts
// within O(1) expected attempts.
func buildBucket(keys []int32, gen generator, maxAttempts int) (bucket, int, error) {
	if len(keys) == 0 {
		return bucket{}, 0, nil
	}
	size := len(keys) * len(keys)
	h, attempts, err := findHash(gen, size, keys, acceptCollisionFree, maxAttempts)
	if err != nil {
		return bucket{}, attempts, err
	}
	b := bucket{hash: h, slots: make([]slot, size)}
	for _, k := range keys {
		b.slots[bucketIndex(h, k, size)] = slot{key: k, occupied: true}
	}
	return b, attempts, nil
}

// contains reports whether key is stored in this bucket. Zero-size buckets
// return false immediately, which also keeps a zero table size away from
// the modulo in bucketIndex.
func (b *bucket) contains(key int32) bool {
	if len(b.slots) == 0 {
		return false
	}
	s := b.slots[bucketIndex(b.hash, key, len(b.slots))]
	return s.occupied && s.key == key
}
