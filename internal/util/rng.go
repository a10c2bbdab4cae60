package util

import (
	"math/rand"
	"time"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// NewUnseeded is for interactive play, where outcomes are not meant to repeat.
func NewUnseeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Jitter returns a value in [0, max). max <= 0 yields 0.
func Jitter(rng *rand.Rand, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return rng.Float64() * max
}

// IntBetween returns a value in [lo, hi].
func IntBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func Pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.Intn(len(xs))]
}
