package core

import "math/rand"

// Random is the uniform random source used by level generation.
// Implementations must be deterministic for a given seed.
type Random interface {
	// Float returns a uniform value in [0, max).
	Float(max float64) float64
	// FloatRange returns a uniform value in [min, max).
	FloatRange(min, max float64) float64
	// IntRange returns a uniform value in [min, max], both inclusive.
	IntRange(min, max int) int
}

// SeededRandom is a Random backed by math/rand with a fixed seed.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a seeded random source.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the sequence from the given seed.
func (r *SeededRandom) Reseed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

// Float returns a uniform value in [0, max).
func (r *SeededRandom) Float(max float64) float64 {
	return r.rng.Float64() * max
}

// FloatRange returns a uniform value in [min, max).
func (r *SeededRandom) FloatRange(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// IntRange returns a uniform value in [min, max], both inclusive.
// If max < min the bounds are swapped.
func (r *SeededRandom) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}
