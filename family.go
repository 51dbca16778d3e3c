package fixedset

import (
	"fmt"

	fseterrors "github.com/tamirms/fixedset/errors"
	"github.com/tamirms/fixedset/internal/affine"
	"github.com/tamirms/fixedset/internal/seeded"
)

// HashFamilyID identifies the hash family used for construction.
type HashFamilyID uint16

const (
	// FamilyAffine uses h(x) = (a*x + b) mod p over a fixed prime field.
	// This is the default, and the only family whose 2-universality
	// guarantee formally backs the construction's retry bounds.
	FamilyAffine HashFamilyID = 0

	// FamilyMurmur3 uses murmur3 with an independent random seed per draw.
	// No universality proof, but well distributed in practice.
	FamilyMurmur3 HashFamilyID = 1
)

// String returns the family name.
func (f HashFamilyID) String() string {
	switch f {
	case FamilyAffine:
		return "affine"
	case FamilyMurmur3:
		return "murmur3"
	default:
		return "unknown"
	}
}

// hashFunc is a single member of a hash family: a pure function from a
// 32-bit key to a non-negative value. Implementations must be immutable
// values so that a built table can be queried concurrently.
type hashFunc interface {
	Evaluate(key int32) uint64
}

// generator draws random members of one hash family.
//
// A generator owns mutable pseudo-random state and is NOT safe for
// concurrent use. Parallel bucket construction gives every bucket its own
// generator, derived from the build seed (see deriveSeed), rather than
// sharing one behind a lock.
type generator interface {
	Generate() hashFunc
}

// affineGenerator and murmurGenerator adapt the concrete internal
// generators to the hashFunc-returning generator interface.
type affineGenerator struct {
	gen *affine.Generator
}

func (g affineGenerator) Generate() hashFunc { return g.gen.Generate() }

type murmurGenerator struct {
	gen *seeded.Generator
}

func (g murmurGenerator) Generate() hashFunc { return g.gen.Generate() }

// newGenerator creates a seeded generator for the given family.
// Returns an error if the family ID is unknown.
func newGenerator(id HashFamilyID, seed uint64) (generator, error) {
	switch id {
	case FamilyAffine:
		return affineGenerator{gen: affine.NewGenerator(seed)}, nil
	case FamilyMurmur3:
		return murmurGenerator{gen: seeded.NewGenerator(seed)}, nil
	}
	return nil, fmt.Errorf("%w: %d", fseterrors.ErrUnknownFamily, id)
}
