package combat

import "toyrumble/internal/grid"

type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventSpawn   = "Spawn"
	EventHit     = "Hit"
	EventDeath   = "Death"
	EventHeroHit = "HeroHit"
	EventEnd     = "End"
)

type Team string

const (
	Player Team = "PLAYER"
	Enemy  Team = "ENEMY"
)

func (t Team) Opponent() Team {
	if t == Player {
		return Enemy
	}
	return Player
}

type UnitState string

const (
	Walk   UnitState = "WALK"
	Attack UnitState = "ATTACK"
)

type Phase string

const (
	Prep      Phase = "PREP"
	Running   Phase = "RUNNING"
	PlayerWin Phase = "PLAYER_WIN"
	EnemyWin  Phase = "ENEMY_WIN"
)

func (p Phase) Terminal() bool { return p == PlayerWin || p == EnemyWin }

// Stats are fixed at spawn time; later bonus changes never reach a living unit.
type Stats struct {
	HP               float64 `json:"hp"`
	MaxHP            float64 `json:"max_hp"`
	Attack           float64 `json:"attack"`
	Speed            float64 `json:"speed"`
	Range            float64 `json:"range"`
	AttacksPerSecond float64 `json:"attacks_per_second"`
}

type Unit struct {
	ID               string    `json:"id"`
	Team             Team      `json:"team"`
	SourceItemID     string    `json:"source_item_id"`
	SourceInstanceID string    `json:"source_instance_id"`
	Glyph            string    `json:"glyph,omitempty"`
	Stats            Stats     `json:"stats"`
	X                float64   `json:"x"`
	HP               float64   `json:"hp"`
	SinceAttack      float64   `json:"since_attack"`
	State            UnitState `json:"state"`
}

type Hero struct {
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"max_hp"`
}

// Slot is the battle-time copy of a placed item. Cooldown counts down to the next spawn.
type Slot struct {
	Placed   grid.PlacedItem
	Cooldown float64
}

type Side struct {
	Team  Team
	Slots []Slot
	Hero  Hero
}

func (s Side) Summoners() int {
	n := 0
	for _, sl := range s.Slots {
		if sl.Placed.Item.IsSummoner() {
			n++
		}
	}
	return n
}
