package crypto

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Rand is the random source used for every draw. *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded generator.
type Rand interface {
	IntN(n int) int
}

// cryptoSource is a math/rand/v2 Source backed by crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewSecureRand returns a Rand reading from the operating system CSPRNG.
// It holds no state and is safe for concurrent use.
func NewSecureRand() *rand.Rand {
	return rand.New(cryptoSource{})
}
