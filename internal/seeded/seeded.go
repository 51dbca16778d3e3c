// Package seeded implements a murmur3-based hash family as an alternative
// to the affine family.
//
// Each family member is murmur3 with an independent random 32-bit seed.
// Unlike the affine family there is no universality proof backing the
// retry bounds, but the distribution is good enough in practice that
// constructions converge in a comparable number of attempts.
package seeded

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/spaolacci/murmur3"
)

const seedMix = 0x9e3779b97f4a7c15

// Hash is one member of the murmur3 family, identified by its seed.
type Hash struct {
	seed uint32
}

// New returns the family member with the given seed.
func New(seed uint32) Hash {
	return Hash{seed: seed}
}

// Seed returns the member's murmur3 seed.
func (h Hash) Seed() uint32 { return h.seed }

// Evaluate hashes the key's little-endian byte representation.
func (h Hash) Evaluate(key int32) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(key))
	return uint64(murmur3.Sum32WithSeed(buf[:], h.seed))
}

// Generator draws random members of the murmur3 family. Not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with the given value.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^seedMix))}
}

// Generate draws one family member with a fresh random seed.
func (g *Generator) Generate() Hash {
	return Hash{seed: g.rng.Uint32()}
}
