package item

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyrumble/internal/config"
)

func TestNewCatalog_Default(t *testing.T) {
	c, err := NewCatalog(config.DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, 3, c.Cheapest())

	tank, ok := c.Get("toy_tank")
	require.True(t, ok)
	assert.True(t, tank.IsSummoner())
	assert.Equal(t, 2, tank.Width)
	assert.Equal(t, 1, tank.Height)
	assert.Equal(t, 0.8, tank.Unit.AttacksPerSecond)

	remote, ok := c.Get("boost_remote")
	require.True(t, ok)
	assert.True(t, remote.IsBooster())
	assert.Equal(t, BoostSpeed, remote.Boost)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestCatalog_Affordable(t *testing.T) {
	c := MustCatalog(config.DefaultCatalog())

	got := c.Affordable(4)
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"toy_soldier", "toy_robot", "boost_battery", "boost_glue"}, ids)
	assert.Empty(t, c.Affordable(2))

	summ := Summoners(got)
	require.Len(t, summ, 2)
	assert.Equal(t, "toy_soldier", summ[0].ID)
}

func TestCatalog_EmptyCheapest(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, c.Cheapest())
	assert.Empty(t, c.All())
}

func TestNewCatalog_Invalid(t *testing.T) {
	summoner := func() config.ItemDef {
		return config.ItemDef{
			ID: "x", Category: "SUMMONER", Cost: 1, Width: 1, Height: 1, Cooldown: 1,
			Unit: &config.UnitDef{HP: 1, Attack: 1, Speed: 1, Range: 1, AttacksPerSecond: 1},
		}
	}
	tests := []struct {
		name string
		def  func() config.ItemDef
	}{
		{"empty id", func() config.ItemDef { d := summoner(); d.ID = ""; return d }},
		{"zero width", func() config.ItemDef { d := summoner(); d.Width = 0; return d }},
		{"negative cost", func() config.ItemDef { d := summoner(); d.Cost = -1; return d }},
		{"no cooldown", func() config.ItemDef { d := summoner(); d.Cooldown = 0; return d }},
		{"no unit", func() config.ItemDef { d := summoner(); d.Unit = nil; return d }},
		{"unknown category", func() config.ItemDef { d := summoner(); d.Category = "TRAP"; return d }},
		{"unknown boost", func() config.ItemDef {
			return config.ItemDef{ID: "b", Category: "BOOSTER", Width: 1, Height: 1, Boost: "LUCK"}
		}},
		{"speed boost too large", func() config.ItemDef {
			return config.ItemDef{ID: "b", Category: "BOOSTER", Width: 1, Height: 1, Boost: "SPEED", BoostValue: 1}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(&config.CatalogConfig{Items: []config.ItemDef{tt.def()}})
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewCatalog(&config.CatalogConfig{Items: []config.ItemDef{summoner(), summoner()}})
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}
