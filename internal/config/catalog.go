package config

type CatalogConfig struct {
	Items []ItemDef `yaml:"items"`
}

type ItemDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Glyph       string   `yaml:"glyph"`
	Category    string   `yaml:"category"` // SUMMONER | BOOSTER
	Rarity      string   `yaml:"rarity"`
	Cost        int      `yaml:"cost"`
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Cooldown    float64  `yaml:"cooldown"`
	Unit        *UnitDef `yaml:"unit"`
	Boost       string   `yaml:"boost"` // ATTACK | HEALTH | SPEED
	BoostValue  float64  `yaml:"boost_value"`
	Description string   `yaml:"description"`
}

type UnitDef struct {
	HP               float64 `yaml:"hp"`
	Attack           float64 `yaml:"attack"`
	Speed            float64 `yaml:"speed"`
	Range            float64 `yaml:"range"`
	AttacksPerSecond float64 `yaml:"attacks_per_second"`
}
