package bricker

import "math/rand/v2"

// Rand is the random source behind strategy selection and spawn directions.
// *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source. Equal seeds give equal games.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
