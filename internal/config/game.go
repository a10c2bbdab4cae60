package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

type GameConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Economy  EconomyConfig  `yaml:"economy"`
	Lane     LaneConfig     `yaml:"lane"`
	Opponent OpponentConfig `yaml:"opponent"`
	Content  ContentConfig  `yaml:"content"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type EconomyConfig struct {
	StartingGold    int `yaml:"starting_gold"`
	MaxLives        int `yaml:"max_lives"`
	WinRewardBase   int `yaml:"win_reward_base"`
	WinRewardPerWin int `yaml:"win_reward_per_win"`
}

type LaneConfig struct {
	Length             float64 `yaml:"length"`
	HeroMaxHP          float64 `yaml:"hero_max_hp"`
	SpawnJitter        float64 `yaml:"spawn_jitter"`
	InitialCooldownMax float64 `yaml:"initial_cooldown_max"`
	// SpeedScale multiplies unit speed when walking. 1 keeps catalog speeds as lane units per second.
	SpeedScale float64 `yaml:"speed_scale"`
}

type OpponentConfig struct {
	BaseBudget      int `yaml:"base_budget"`
	BudgetPerRound  int `yaml:"budget_per_round"`
	BudgetJitterMin int `yaml:"budget_jitter_min"`
	BudgetJitterMax int `yaml:"budget_jitter_max"`
	MaxAttempts     int `yaml:"max_attempts"`
	PlacementTrials int `yaml:"placement_trials"`
}

type ContentConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`
}

func (c *GameConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Lane.Length <= 0:
		return fmt.Errorf("%w: lane length %.1f", ErrInvalidConfig, c.Lane.Length)
	case c.Lane.HeroMaxHP <= 0:
		return fmt.Errorf("%w: hero max hp %.1f", ErrInvalidConfig, c.Lane.HeroMaxHP)
	case c.Lane.SpawnJitter < 0 || c.Lane.InitialCooldownMax < 0:
		return fmt.Errorf("%w: negative jitter", ErrInvalidConfig)
	case c.Economy.MaxLives <= 0:
		return fmt.Errorf("%w: max lives %d", ErrInvalidConfig, c.Economy.MaxLives)
	case c.Opponent.BudgetJitterMax < c.Opponent.BudgetJitterMin:
		return fmt.Errorf("%w: budget jitter [%d,%d]", ErrInvalidConfig,
			c.Opponent.BudgetJitterMin, c.Opponent.BudgetJitterMax)
	}
	return nil
}

// fillDefaults replaces zero values left by a partial YAML file.
func (c *GameConfig) fillDefaults() {
	d := DefaultGame()
	if c.Grid.Width == 0 {
		c.Grid.Width = d.Grid.Width
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = d.Grid.Height
	}
	if c.Economy.StartingGold == 0 {
		c.Economy.StartingGold = d.Economy.StartingGold
	}
	if c.Economy.MaxLives == 0 {
		c.Economy.MaxLives = d.Economy.MaxLives
	}
	if c.Economy.WinRewardBase == 0 {
		c.Economy.WinRewardBase = d.Economy.WinRewardBase
	}
	if c.Economy.WinRewardPerWin == 0 {
		c.Economy.WinRewardPerWin = d.Economy.WinRewardPerWin
	}
	if c.Lane.Length == 0 {
		c.Lane.Length = d.Lane.Length
	}
	if c.Lane.HeroMaxHP == 0 {
		c.Lane.HeroMaxHP = d.Lane.HeroMaxHP
	}
	if c.Lane.SpawnJitter == 0 {
		c.Lane.SpawnJitter = d.Lane.SpawnJitter
	}
	if c.Lane.InitialCooldownMax == 0 {
		c.Lane.InitialCooldownMax = d.Lane.InitialCooldownMax
	}
	if c.Lane.SpeedScale == 0 {
		c.Lane.SpeedScale = d.Lane.SpeedScale
	}
	if c.Opponent.BaseBudget == 0 {
		c.Opponent.BaseBudget = d.Opponent.BaseBudget
	}
	if c.Opponent.BudgetPerRound == 0 {
		c.Opponent.BudgetPerRound = d.Opponent.BudgetPerRound
	}
	if c.Opponent.BudgetJitterMin == 0 && c.Opponent.BudgetJitterMax == 0 {
		c.Opponent.BudgetJitterMin = d.Opponent.BudgetJitterMin
		c.Opponent.BudgetJitterMax = d.Opponent.BudgetJitterMax
	}
	if c.Opponent.MaxAttempts == 0 {
		c.Opponent.MaxAttempts = d.Opponent.MaxAttempts
	}
	if c.Opponent.PlacementTrials == 0 {
		c.Opponent.PlacementTrials = d.Opponent.PlacementTrials
	}
	if c.Content.Endpoint == "" {
		c.Content.Endpoint = d.Content.Endpoint
	}
	if c.Content.Model == "" {
		c.Content.Model = d.Content.Model
	}
	if c.Content.APIKeyEnv == "" {
		c.Content.APIKeyEnv = d.Content.APIKeyEnv
	}
	if c.Content.Timeout == 0 {
		c.Content.Timeout = d.Content.Timeout
	}
}
