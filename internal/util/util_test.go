package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroSeedIsUsable(t *testing.T) {
	a, b := New(0), New(1)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestNewID_ReproducibleUnderSeed(t *testing.T) {
	a, b := New(42), New(42)
	idA, idB := NewID(a), NewID(b)
	assert.Equal(t, idA, idB)

	parsed, err := uuid.Parse(idA)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.NotEqual(t, idA, NewID(a))
}

func TestJitter(t *testing.T) {
	rng := New(7)
	assert.Zero(t, Jitter(rng, 0))
	for i := 0; i < 100; i++ {
		v := Jitter(rng, 40)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 40.0)
	}
}

func TestIntBetween(t *testing.T) {
	rng := New(9)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := IntBetween(rng, -2, 5)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, 3, IntBetween(rng, 3, 3))
}

func TestNewLogger(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := NewLogger(json, false)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(-1), "debug is off by default")
		_ = log.Sync()
	}
	log, err := NewLogger(false, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))
}
