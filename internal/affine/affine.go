// Package affine implements the affine hash family h(x) = (a*x + b) mod p
// over a fixed prime field, together with a seedable generator of random
// family members.
//
// The affine family is 2-universal, which is what the two-level perfect
// hash construction's retry bounds rely on: a uniformly random draw keeps
// the expected sum of squared bucket occupancies close to the key count,
// and keeps the per-bucket collision probability below 1/2 for a table
// sized quadratically in the bucket's key count.
//
// The modulus is the smallest prime above 2^32, so the 32-bit key domain
// embeds injectively into the field. Every family member is therefore
// injective on the key domain: two distinct keys can only collide after
// the reduction modulo a table size, never in the field itself. A smaller
// prime would admit key pairs congruent mod p that no draw from the family
// can distinguish, and such a pair in one bucket makes the collision-free
// search at the second level impossible.
package affine

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// Prime is the field modulus shared by every family member in the process:
// the smallest prime greater than 2^32.
const Prime = 4294967311

// seedMix decorrelates the two PCG seed words derived from one build seed.
const seedMix = 0x9e3779b97f4a7c15

// Hash is one member of the affine family. The zero value is not a valid
// member; obtain instances from a Generator or New.
type Hash struct {
	a uint64 // coefficient, in [1, Prime-1]
	b uint64 // bias, in [0, Prime-1]
}

// New returns the family member with the given coefficient and bias.
// It panics if the parameters fall outside the family's ranges; parameters
// come either from a Generator (always in range) or from test vectors.
func New(coefficient, bias uint64) Hash {
	if coefficient < 1 || coefficient >= Prime {
		panic(fmt.Sprintf("affine: coefficient %d outside [1, %d]", coefficient, Prime-1))
	}
	if bias >= Prime {
		panic(fmt.Sprintf("affine: bias %d outside [0, %d]", bias, Prime-1))
	}
	return Hash{a: coefficient, b: bias}
}

// Coefficient returns the multiplicative parameter a.
func (h Hash) Coefficient() uint64 { return h.a }

// Bias returns the additive parameter b.
func (h Hash) Bias() uint64 { return h.b }

// Evaluate returns (a*x + b) mod Prime, where x is the key reinterpreted
// as an unsigned 32-bit value. The embedding int32 -> uint32 is a
// bijection, so distinct keys stay distinct in the field.
//
// The product a*x does not fit in 64 bits (both factors approach 2^32),
// so it is formed as a 128-bit value and reduced with bits.Rem64. All
// arithmetic is unsigned; no intermediate can go negative. The final
// range check guards the modulus invariant and panics rather than
// returning a wrong-but-plausible slot index.
func (h Hash) Evaluate(key int32) uint64 {
	x := uint64(uint32(key))
	hi, lo := bits.Mul64(h.a, x)
	v := bits.Rem64(hi, lo, Prime)
	v += h.b
	if v >= Prime {
		v -= Prime
	}
	if v >= Prime {
		panic("affine: residue exceeds modulus after reduction")
	}
	return v
}

// Generator draws uniformly random members of the affine family.
//
// A Generator owns mutable pseudo-random state and is not safe for
// concurrent use. Callers that build buckets in parallel must give each
// goroutine its own Generator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with the given value. The same
// seed yields the same draw sequence, which is what makes seeded builds
// reproducible.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^seedMix))}
}

// Generate draws one family member: coefficient uniform in [1, Prime-1],
// bias uniform in [0, Prime-1].
func (g *Generator) Generate() Hash {
	return Hash{
		a: g.rng.Uint64N(Prime-1) + 1,
		b: g.rng.Uint64N(Prime),
	}
}
