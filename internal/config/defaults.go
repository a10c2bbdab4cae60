package config

import "time"

func DefaultGame() *GameConfig {
	return &GameConfig{
		Grid: GridConfig{Width: 5, Height: 7},
		Economy: EconomyConfig{
			StartingGold:    12,
			MaxLives:        5,
			WinRewardBase:   8,
			WinRewardPerWin: 2,
		},
		Lane: LaneConfig{
			Length:             600,
			HeroMaxHP:          50,
			SpawnJitter:        40,
			InitialCooldownMax: 0.5,
			SpeedScale:         1,
		},
		Opponent: OpponentConfig{
			BaseBudget:      12,
			BudgetPerRound:  8,
			BudgetJitterMin: -2,
			BudgetJitterMax: 5,
			MaxAttempts:     200,
			PlacementTrials: 20,
		},
		Content: ContentConfig{
			Endpoint:  "https://generativelanguage.googleapis.com/v1beta",
			Model:     "gemini-3-flash-preview",
			APIKeyEnv: "API_KEY",
			Timeout:   5 * time.Second,
		},
	}
}

// DefaultCatalog is the shipped toy box.
func DefaultCatalog() *CatalogConfig {
	return &CatalogConfig{Items: []ItemDef{
		{
			ID: "toy_soldier", Name: "Green Army Man", Glyph: "🔫", Category: "SUMMONER", Rarity: "COMMON",
			Cost: 3, Width: 1, Height: 1, Cooldown: 2.0,
			Unit:        &UnitDef{HP: 15, Attack: 5, Speed: 40, Range: 40, AttacksPerSecond: 1.5},
			Description: "Spawns a Green Soldier every 2s.",
		},
		{
			ID: "toy_robot", Name: "Beep Boop Bot", Glyph: "🤖", Category: "SUMMONER", Rarity: "COMMON",
			Cost: 4, Width: 1, Height: 1, Cooldown: 3.5,
			Unit:        &UnitDef{HP: 40, Attack: 12, Speed: 25, Range: 20, AttacksPerSecond: 1.0},
			Description: "Spawns a sturdy Robot every 3.5s.",
		},
		{
			ID: "toy_duck", Name: "Rubber Ducky", Glyph: "🦆", Category: "SUMMONER", Rarity: "RARE",
			Cost: 6, Width: 1, Height: 1, Cooldown: 1.2,
			Unit:        &UnitDef{HP: 8, Attack: 4, Speed: 80, Range: 10, AttacksPerSecond: 3.0},
			Description: "Spawns a fast Ducky every 1.2s.",
		},
		{
			ID: "toy_tank", Name: "Battle Tank", Glyph: "🚜", Category: "SUMMONER", Rarity: "RARE",
			Cost: 7, Width: 2, Height: 1, Cooldown: 5.0,
			Unit:        &UnitDef{HP: 120, Attack: 25, Speed: 15, Range: 60, AttacksPerSecond: 0.8},
			Description: "Spawns a Tank every 5s.",
		},
		{
			ID: "toy_ufo", Name: "Alien UFO", Glyph: "🛸", Category: "SUMMONER", Rarity: "EPIC",
			Cost: 9, Width: 2, Height: 2, Cooldown: 4.5,
			Unit:        &UnitDef{HP: 60, Attack: 35, Speed: 35, Range: 100, AttacksPerSecond: 1.2},
			Description: "Spawns an Alien Invader every 4.5s.",
		},
		{
			ID: "toy_dino", Name: "T-Rex", Glyph: "🦖", Category: "SUMMONER", Rarity: "LEGENDARY",
			Cost: 12, Width: 2, Height: 2, Cooldown: 8.0,
			Unit:        &UnitDef{HP: 300, Attack: 80, Speed: 20, Range: 30, AttacksPerSecond: 1.0},
			Description: "Spawns a massive T-Rex every 8s.",
		},
		{
			ID: "boost_battery", Name: "AA Battery", Glyph: "🔋", Category: "BOOSTER", Rarity: "COMMON",
			Cost: 3, Width: 1, Height: 1, Boost: "SPEED", BoostValue: 0.2,
			Description: "Adjacent toys spawn 20% faster.",
		},
		{
			ID: "boost_drum", Name: "War Drum", Glyph: "🥁", Category: "BOOSTER", Rarity: "RARE",
			Cost: 5, Width: 1, Height: 1, Boost: "ATTACK", BoostValue: 10,
			Description: "Adjacent toys have +10 Attack.",
		},
		{
			ID: "boost_glue", Name: "Super Glue", Glyph: "🧴", Category: "BOOSTER", Rarity: "RARE",
			Cost: 4, Width: 1, Height: 1, Boost: "HEALTH", BoostValue: 50,
			Description: "Adjacent toys have +50 HP.",
		},
		{
			ID: "boost_remote", Name: "Remote Control", Glyph: "🎮", Category: "BOOSTER", Rarity: "EPIC",
			Cost: 8, Width: 2, Height: 1, Boost: "SPEED", BoostValue: 0.4,
			Description: "Adjacent toys spawn 40% faster.",
		},
	}}
}
