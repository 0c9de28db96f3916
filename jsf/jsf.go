// Implements Bob Jenkins' small fast ("jsf") 32-bit generator
// Derived from the public domain code at burtleburtle.net/bob/rand/smallprng.html

package jsf

// State is the four words of generator state. It is a plain value owned by
// the caller; sharing one instance across goroutines needs external locking.
// The zero value is not a seeded generator; use New.
type State struct {
	a, b, c, d uint32
}

// New returns a generator seeded with seed. The raw (0xf1ea5eed, seed, seed,
// seed) state is mixed by 20 discarded draws before first use, so two
// generators agree only if their seeds do.
func New(seed uint32) *State {
	s := &State{a: 0xf1ea5eed, b: seed, c: seed, d: seed}
	for i := 0; i < 20; i++ {
		s.Next()
	}
	return s
}

// Next advances the state in place and returns the next 32-bit output.
// All arithmetic wraps at 32 bits, including the initial subtraction.
func (s *State) Next() uint32 {
	e := s.a - rotl32(s.b, 27)
	s.a = s.b ^ rotl32(s.c, 17)
	s.b = s.c + s.d
	s.c = s.d + e
	s.d = e + s.a
	return s.d
}

// rotl32 rotates x left by k bits. Callers must keep 0 < k < 32.
func rotl32(x uint32, k uint) uint32 {
	return (x << k) | (x >> (32 - k))
}
