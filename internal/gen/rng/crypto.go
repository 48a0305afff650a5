package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: all values produced are uniformly distributed and safe to draw
// from any number of goroutines concurrently.
type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand.
//
// Postcondition: every value returned by Intn is in [0, n) and every value
// returned by Float64 is in [0.0, 1.0).
func NewCrypto() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "rng: Intn called with n <= 0" if n <= 0.
// Panics with "rng: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// RandomSeed returns a crypto-random master seed. Configuration treats seed
// zero as "roll a fresh seed at startup", and this is the roll.
//
// Panics with "rng: crypto/rand failure: <err>" if crypto/rand fails.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Float64 returns a cryptographically secure random float64 in [0.0, 1.0).
//
// Panics with "rng: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Float64() float64 {
	// 53 bits is the full precision of a float64 mantissa.
	val, err := rand.Int(rand.Reader, big.NewInt(1<<53))
	if err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return float64(val.Int64()) / (1 << 53)
}
