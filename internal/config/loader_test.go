package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadAll_EmptyDirUsesDefaults(t *testing.T) {
	gc, cc, err := LoadAll("")
	require.NoError(t, err)
	assert.Equal(t, DefaultGame(), gc)
	assert.Len(t, cc.Items, len(DefaultCatalog().Items))
}

func TestLoadAll_PartialGameFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "game.yaml", `
grid:
  width: 6
lane:
  length: 800
content:
  timeout: 2s
`)
	writeFile(t, dir, "catalog.yaml", `
items:
  - id: pebble
    name: Pebble
    category: SUMMONER
    rarity: COMMON
    cost: 1
    width: 1
    height: 1
    cooldown: 1
    unit: {hp: 5, attack: 1, speed: 10, range: 5, attacks_per_second: 1}
`)

	gc, cc, err := LoadAll(dir)
	require.NoError(t, err)
	assert.Equal(t, 6, gc.Grid.Width)
	assert.Equal(t, 7, gc.Grid.Height)
	assert.Equal(t, 800.0, gc.Lane.Length)
	assert.Equal(t, 50.0, gc.Lane.HeroMaxHP)
	assert.Equal(t, 2*time.Second, gc.Content.Timeout)
	assert.Equal(t, -2, gc.Opponent.BudgetJitterMin)
	require.Len(t, cc.Items, 1)
	assert.Equal(t, "pebble", cc.Items[0].ID)
	assert.Equal(t, 1.0, cc.Items[0].Unit.AttacksPerSecond)
}

func TestLoadAll_MissingFile(t *testing.T) {
	_, _, err := LoadAll(t.TempDir())
	require.Error(t, err)
}

func TestLoadAll_InvalidGame(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "game.yaml", "lane:\n  hero_max_hp: -1\n")
	writeFile(t, dir, "catalog.yaml", "items: []\n")

	_, _, err := LoadAll(dir)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadAll_ShippedAssets(t *testing.T) {
	gc, cc, err := LoadAll(filepath.Join("..", "..", "assets"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGame().Grid, gc.Grid)
	assert.Len(t, cc.Items, len(DefaultCatalog().Items))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
		ok     bool
	}{
		{"defaults", func(*GameConfig) {}, true},
		{"zero width", func(c *GameConfig) { c.Grid.Width = 0 }, false},
		{"zero lane", func(c *GameConfig) { c.Lane.Length = 0 }, false},
		{"negative jitter", func(c *GameConfig) { c.Lane.SpawnJitter = -1 }, false},
		{"no lives", func(c *GameConfig) { c.Economy.MaxLives = 0 }, false},
		{"inverted budget jitter", func(c *GameConfig) { c.Opponent.BudgetJitterMin = 3; c.Opponent.BudgetJitterMax = 1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultGame()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
