package casegen

import "math/rand"

// Source is the injected randomness abstraction. Every selection and shuffle
// the engine performs flows through one Source, passed explicitly down each
// layer; there is no ambient global randomness. *math/rand.Rand satisfies it.
//
// A Source is not safe for concurrent use. Concurrent Generate calls must
// each be given their own instance.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly drawn element of pool. The caller guarantees the
// pool is non-empty.
func pick(rng Source, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
