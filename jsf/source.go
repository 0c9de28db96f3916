package jsf

import "math/rand"

// source adapts State to math/rand.Source.
type source struct {
	s *State
}

// NewSource returns a math/rand Source backed by a generator seeded with seed.
func NewSource(seed uint32) rand.Source {
	return &source{s: New(seed)}
}

// NewRand returns a *rand.Rand drawing from this generator, so callers get
// Shuffle, Perm and the rest of math/rand on top of the raw 32-bit stream.
func NewRand(seed uint32) *rand.Rand {
	return rand.New(NewSource(seed))
}

func (src *source) Int63() int64 {
	return int64(src.s.Next())<<31 | int64(src.s.Next())
}

// Seed reinitializes the underlying generator from the low 32 bits of seed.
func (src *source) Seed(seed int64) {
	*src.s = *New(uint32(seed))
}
