package hyperloglog

import "math/rand/v2"

// pcgIncrement is the second PCG word derived from a seed.
const pcgIncrement = 0xda3e39cb94b95bdb

// RandomSource yields uniform values in [0, 1). Weighted sketches draw from it
// during the rejection-sampling rank update. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a deterministic stream for the given seed.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^pcgIncrement))
}

func newUnseededSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
