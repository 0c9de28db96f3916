package jsf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceInt63(t *testing.T) {
	src := NewSource(0)
	// seedZeroOutputs[0]<<31 | seedZeroOutputs[1]
	assert.Equal(t, int64(0x0d4db6039a550895), src.Int63())

	for i := 0; i < 1000; i++ {
		if v := src.Int63(); v < 0 {
			t.Fatalf("Int63 returned negative value %v", v)
		}
	}
}

func TestSourceSeed(t *testing.T) {
	src := NewSource(7)
	src.Int63()
	src.Int63()
	src.Seed(7)
	assert.Equal(t, NewSource(7).Int63(), src.Int63())
}

func TestNewRandDeterministic(t *testing.T) {
	r1 := NewRand(0x20131224)
	r2 := NewRand(0x20131224)
	assert.Equal(t, r1.Perm(32), r2.Perm(32))

	d1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	d2 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r1.Shuffle(len(d1), func(i, j int) { d1[i], d1[j] = d1[j], d1[i] })
	r2.Shuffle(len(d2), func(i, j int) { d2[i], d2[j] = d2[j], d2[i] })
	assert.Equal(t, d1, d2)
}
