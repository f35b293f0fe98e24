package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG state words are derived from the seed so equal seeds always give
// equal sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the n-th independent stream of a seed. The engine draws one
// stream per deal so that a game can be replayed from its seed and move log
// without carrying generator state around.
func Derive(seed int64, n int) *rand.Rand {
	u := mix(uint64(seed) ^ mix(uint64(n)*goldenRatio64))
	return rand.New(rand.NewPCG(u, mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
