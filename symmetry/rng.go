package symmetry

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// transliterated in style from the teacher's tsp/rng.go: deterministic by
// default, no time-based source hidden anywhere.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 uses defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

