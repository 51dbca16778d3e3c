package fixedset

// defaultMaxAttempts bounds the retry search at each level. Acceptable
// draws occur with probability at least 1/2 per attempt, so reaching the
// ceiling indicates a broken random source, not bad luck.
const defaultMaxAttempts = 1000

// BuildOption is a functional option for configuring builds.
type BuildOption func(*buildConfig)

type buildConfig struct {
	seed        uint64
	seeded      bool // true when WithSeed was given; otherwise seed comes from crypto/rand
	workers     int
	maxAttempts int
	family      HashFamilyID
}

func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		maxAttempts: defaultMaxAttempts,
		family:      FamilyAffine,
	}
}

// WithSeed fixes the build seed, making construction deterministic: the
// same keys, seed, and family always produce an identical table. Without
// this option each build draws a fresh seed from the operating system's
// entropy pool.
func WithSeed(seed uint64) BuildOption {
	return func(c *buildConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWorkers sets the number of goroutines used for second-level bucket
// construction. Values below 2 keep the build single-threaded. Each bucket
// uses its own derived generator, so the resulting table is identical to a
// single-threaded build of the same seed.
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithMaxAttempts sets the retry ceiling for the hash function search at
// both levels. Build fails with ErrInvalidMaxAttempts if n is not positive.
func WithMaxAttempts(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxAttempts = n
	}
}

// WithHashFamily sets the hash family used for construction.
// Default is FamilyAffine.
func WithHashFamily(id HashFamilyID) BuildOption {
	return func(c *buildConfig) {
		c.family = id
	}
}
