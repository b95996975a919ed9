package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random on a PCG generator. Not safe for concurrent use;
// each game session owns its own Source.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a Source seeded from crypto/rand
func New() *Source {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return NewSeeded(binary.LittleEndian.Uint64(buf[:]))
}

// NewSeeded creates a Source whose sequence is fully determined by seed
func NewSeeded(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with
func (r *Source) Seed() uint64 {
	return r.seed
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *Source) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
