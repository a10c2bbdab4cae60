package util

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewID derives a v4 uuid from rng so ids repeat under a fixed seed.
func NewID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// *rand.Rand never fails to read
		return uuid.NewString()
	}
	return id.String()
}
