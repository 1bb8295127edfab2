package world

import "math/rand/v2"

// Rand is a deterministic random number generator. The same seed always
// produces the same numbers, which is what allows a playthrough to be
// replayed from its seed and inputs alone.
// Rand is a value type: copying it produces an independent generator that
// will produce the same numbers as the original.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), 0)
	return
}

// RInt returns a random number in the interval [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	Assert(max >= min)
	n := uint64(max-min) + 1
	return min + int64(r.pcg.Uint64()%n)
}

// The global generator is for tests and tools, never for the World.
var globalRand = NewRand(0)

func RSeed(seed int64) {
	globalRand = NewRand(seed)
}

func RInt(min int64, max int64) int64 {
	return globalRand.RInt(min, max)
}
