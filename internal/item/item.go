package item

type Category string

const (
	Summoner Category = "SUMMONER"
	Booster  Category = "BOOSTER"
)

type Rarity string

const (
	Common    Rarity = "COMMON"
	Rare      Rarity = "RARE"
	Epic      Rarity = "EPIC"
	Legendary Rarity = "LEGENDARY"
)

type BoostKind string

const (
	BoostNone   BoostKind = ""
	BoostAttack BoostKind = "ATTACK"
	BoostHealth BoostKind = "HEALTH"
	BoostSpeed  BoostKind = "SPEED"
)

type UnitStats struct {
	HP               float64
	Attack           float64
	Speed            float64
	Range            float64
	AttacksPerSecond float64
}

// Item is an immutable catalog entry. Width/Height are the unrotated footprint in cells.
type Item struct {
	ID          string
	Name        string
	Glyph       string
	Description string
	Category    Category
	Rarity      Rarity
	Cost        int
	Width       int
	Height      int

	// summoners
	Cooldown float64
	Unit     UnitStats

	// boosters
	Boost      BoostKind
	BoostValue float64
}

func (it Item) IsSummoner() bool { return it.Category == Summoner }
func (it Item) IsBooster() bool  { return it.Category == Booster }
