package jsf

import "encoding/binary"

// Uint32n returns a draw in [0, n). n must be > 0.
func (s *State) Uint32n(n uint32) uint32 {
	return s.Next() % n
}

// Intn returns a draw in [0, n). It panics if n <= 0.
func (s *State) Intn(n int) int {
	if n <= 0 {
		panic("jsf: Intn with n <= 0")
	}
	return int(s.Uint32n(uint32(n)))
}

// Float32 returns a draw in [0, 1) with 26 bits of precision.
func (s *State) Float32() float32 {
	return float32(s.Uint32n(1<<26)) / (1 << 26)
}

// Fill overwrites p with generator output, one draw per 4 bytes in
// little-endian order. A final chunk shorter than 4 bytes still consumes a
// whole draw and keeps its low-order bytes.
func (s *State) Fill(p []byte) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, s.Next())
		p = p[4:]
	}
	if len(p) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], s.Next())
		copy(p, tail[:])
	}
}

// Read implements io.Reader. It always fills p entirely and never fails.
func (s *State) Read(p []byte) (int, error) {
	s.Fill(p)
	return len(p), nil
}
