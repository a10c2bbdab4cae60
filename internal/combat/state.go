package combat

import (
	"math/rand"

	"toyrumble/internal/bonus"
	"toyrumble/internal/config"
	"toyrumble/internal/grid"
	"toyrumble/internal/util"
)

// State is the whole battle. Step takes one by value and returns the next one,
// so a State held by the caller is never changed behind its back.
type State struct {
	Phase  Phase
	Time   float64
	Player Side
	Enemy  Side
	Units  []Unit
}

// NewState builds private working copies of both loadouts. Summoner cooldowns are
// staggered so the two sides do not spawn in lockstep.
func NewState(lane config.LaneConfig, player, enemy []grid.PlacedItem, rng *rand.Rand) State {
	return State{
		Phase:  Prep,
		Player: newSide(Player, lane, player, rng),
		Enemy:  newSide(Enemy, lane, enemy, rng),
	}
}

func newSide(team Team, lane config.LaneConfig, items []grid.PlacedItem, rng *rand.Rand) Side {
	items = bonus.Apply(items)
	slots := make([]Slot, len(items))
	for i, p := range items {
		slots[i] = Slot{Placed: p, Cooldown: util.Jitter(rng, lane.InitialCooldownMax)}
	}
	return Side{
		Team:  team,
		Slots: slots,
		Hero:  Hero{HP: lane.HeroMaxHP, MaxHP: lane.HeroMaxHP},
	}
}

func Start(s State) State {
	if s.Phase == Prep {
		s.Phase = Running
	}
	return s
}

func (s State) Clone() State {
	out := s
	out.Player.Slots = append([]Slot(nil), s.Player.Slots...)
	out.Enemy.Slots = append([]Slot(nil), s.Enemy.Slots...)
	out.Units = append([]Unit(nil), s.Units...)
	return out
}

func (s *State) side(t Team) *Side {
	if t == Player {
		return &s.Player
	}
	return &s.Enemy
}

func (s State) Living(t Team) int {
	n := 0
	for _, u := range s.Units {
		if u.Team == t {
			n++
		}
	}
	return n
}

func (s State) FindUnit(id string) (Unit, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}
