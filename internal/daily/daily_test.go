package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasrobino/mastermind/internal/game"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2026, 10, 16, 22, 30, 0, 0, loc)
	assert.Equal(t, "2026-10-17", DateKey(ts))
}

func TestSeed_SameDaySameSeed(t *testing.T) {
	morning := time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)
	next := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Seed(morning, "salt"), Seed(evening, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(next, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(morning, "pepper"))
}

func TestSeed_SameSecret(t *testing.T) {
	p, err := game.NewPalette("R", "V", "A", "M", "N", "L")
	require.NoError(t, err)
	day := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	a, err := game.NewSeededGenerator(Seed(day, "s")).Generate(p, 4)
	require.NoError(t, err)
	b, err := game.NewSeededGenerator(Seed(day.Add(time.Hour), "s")).Generate(p, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
