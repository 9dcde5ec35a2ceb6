// Package random wraps math/rand for the one place the CPU core needs
// randomness: populating registers with an undefined power-on state when
// preferences.RandomPowerOnState is enabled. A thin wrapper is all this
// needs; there is no case here for a third-party RNG.
package random

import (
	"math/rand"
	"time"
)

// Random is a seeded random number generator. The zero value is not
// usable; construct with NewRandom.
type Random struct {
	rnd *rand.Rand

	// ZeroSeed makes Uint8 always return zero, useful for tests that need
	// deterministic randomized power-on state.
	ZeroSeed bool
}

// NewRandom returns a Random seeded from the current time.
func NewRandom() *Random {
	return &Random{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Uint8 returns a random byte.
func (r *Random) Uint8() uint8 {
	if r.ZeroSeed {
		return 0
	}
	return uint8(r.rnd.Intn(256))
}
