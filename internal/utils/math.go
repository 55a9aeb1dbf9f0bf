package utils

import (
	"math/rand"
)

// Intn is the randomness capability injected into engines that pick at random.
// It returns a value in [0, n).
type Intn func(n int) int

// RandomIntn returns a random integer in [0, n)
func RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// SeededIntn returns a deterministic Intn for tests and replays
func SeededIntn(seed int64) Intn {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic on purpose
	return func(n int) int {
		if n <= 0 {
			return 0
		}
		return r.Intn(n)
	}
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
