package fixedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBucketEmpty(t *testing.T) {
	gen := testGenerator(t, testSeed1)
	b, attempts, err := buildBucket(nil, gen, defaultMaxAttempts)
	require.NoError(t, err)

	assert.Equal(t, 0, attempts, "no hash draws for an empty bucket")
	assert.Nil(t, b.hash)
	assert.Empty(t, b.slots)
	assert.False(t, b.contains(0))
	assert.False(t, b.contains(-123))
}

func TestBuildBucketSingleKey(t *testing.T) {
	gen := testGenerator(t, testSeed1)
	b, _, err := buildBucket([]int32{-42}, gen, defaultMaxAttempts)
	require.NoError(t, err)

	assert.Len(t, b.slots, 1)
	assert.True(t, b.contains(-42))
	assert.False(t, b.contains(42))
}

func TestBuildBucketCollisionFree(t *testing.T) {
	rng := newTestRNG(t)
	gen := testGenerator(t, testSeed2)

	for _, n := range []int{2, 3, 5, 8, 13} {
		keys := distinctKeys(rng, n)
		b, _, err := buildBucket(keys, gen, defaultMaxAttempts)
		require.NoError(t, err, "n=%d", n)

		// Quadratic table size and exactly one occupied slot per key.
		require.Len(t, b.slots, n*n, "n=%d", n)
		occupied := 0
		for _, s := range b.slots {
			if s.occupied {
				occupied++
			}
		}
		assert.Equal(t, n, occupied, "n=%d: zero collisions means n occupied slots", n)

		for _, k := range keys {
			assert.True(t, b.contains(k), "n=%d key=%d", n, k)
		}
	}
}

func TestBucketRejectsOutsideKeys(t *testing.T) {
	rng := newTestRNG(t)
	gen := testGenerator(t, testSeed1)
	keys := distinctKeys(rng, 10)
	b, _, err := buildBucket(keys, gen, defaultMaxAttempts)
	require.NoError(t, err)

	inBucket := make(map[int32]struct{}, len(keys))
	for _, k := range keys {
		inBucket[k] = struct{}{}
	}
	for range 10000 {
		q := int32(rng.Uint32())
		if _, ok := inBucket[q]; ok {
			continue
		}
		// Outside keys may collide into occupied slots; the stored-key
		// comparison must reject them.
		require.False(t, b.contains(q), "query=%d", q)
	}
}
