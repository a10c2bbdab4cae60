package combat

import (
	"math/rand"
	"sort"

	"toyrumble/internal/config"
	"toyrumble/internal/util"
)

const heroTarget = -1

type Simulator struct {
	Lane config.LaneConfig
	Rng  *rand.Rand
	Emit func(Event)
}

func NewSimulator(lane config.LaneConfig, rng *rand.Rand, emit func(Event)) *Simulator {
	if rng == nil {
		rng = util.NewUnseeded()
	}
	if lane.SpeedScale == 0 {
		lane.SpeedScale = 1
	}
	return &Simulator{Lane: lane, Rng: rng, Emit: emit}
}

func (sim *Simulator) emit(ev Event) {
	if sim.Emit != nil {
		sim.Emit(ev)
	}
}

// Step advances a running battle by dt seconds and returns the next state.
// Anything but a RUNNING state comes back unchanged.
func (sim *Simulator) Step(s State, dt float64) State {
	if s.Phase != Running || dt <= 0 {
		return s
	}
	next := s.Clone()
	next.Time += dt

	sim.spawn(&next, &next.Player, dt)
	sim.spawn(&next, &next.Enemy, dt)

	// targeting reads start-of-step positions
	start := make([]float64, len(next.Units))
	for i, u := range next.Units {
		start[i] = u.X
	}
	dead := make([]bool, len(next.Units))

	for i := range next.Units {
		if dead[i] {
			continue
		}
		u := &next.Units[i]
		target, dist := sim.acquire(next.Units, start, dead, i)
		if dist > u.Stats.Range {
			u.State = Walk
			u.SinceAttack = 0
			step := u.Stats.Speed * sim.Lane.SpeedScale * dt
			if u.Team == Player {
				u.X += step
			} else {
				u.X -= step
			}
			continue
		}

		u.State = Attack
		u.SinceAttack += dt
		if u.SinceAttack < 1/u.Stats.AttacksPerSecond {
			continue
		}
		u.SinceAttack = 0
		if target == heroTarget {
			hero := &next.side(u.Team.Opponent()).Hero
			hero.HP -= u.Stats.Attack
			sim.emit(Event{T: next.Time, Type: EventHeroHit, Payload: map[string]any{
				"caster": u.ID, "team": string(u.Team), "dmg": u.Stats.Attack, "hp": hero.HP,
			}})
			continue
		}
		victim := &next.Units[target]
		victim.HP -= u.Stats.Attack
		sim.emit(Event{T: next.Time, Type: EventHit, Payload: map[string]any{
			"caster": u.ID, "team": string(u.Team), "target": victim.ID, "dmg": u.Stats.Attack, "hp": victim.HP,
		}})
		if victim.HP <= 0 {
			dead[target] = true
			sim.emit(Event{T: next.Time, Type: EventDeath, Payload: map[string]any{
				"id": victim.ID, "team": string(victim.Team), "killer": u.ID, "killer_team": string(u.Team),
			}})
		}
	}

	alive := next.Units[:0]
	for i, u := range next.Units {
		if !dead[i] {
			alive = append(alive, u)
		}
	}
	next.Units = alive

	switch {
	case next.Enemy.Hero.HP <= 0:
		next.Phase = PlayerWin
	case next.Player.Hero.HP <= 0:
		next.Phase = EnemyWin
	}
	if next.Phase.Terminal() {
		sim.emit(Event{T: next.Time, Type: EventEnd, Payload: map[string]any{
			"outcome": string(next.Phase), "player_hp": next.Player.Hero.HP, "enemy_hp": next.Enemy.Hero.HP,
		}})
	}
	return next
}

func (sim *Simulator) spawn(s *State, side *Side, dt float64) {
	for i := range side.Slots {
		slot := &side.Slots[i]
		it := slot.Placed.Item
		if !it.IsSummoner() {
			continue
		}
		slot.Cooldown -= dt
		if slot.Cooldown > 0 {
			continue
		}
		b := slot.Placed.Bonus
		slot.Cooldown = it.Cooldown * b.CooldownMultiplier

		jitter := util.Jitter(sim.Rng, sim.Lane.SpawnJitter)
		x := jitter
		if side.Team == Enemy {
			x = sim.Lane.Length - jitter
		}
		hp := it.Unit.HP + b.HP
		u := Unit{
			ID:               util.NewID(sim.Rng),
			Team:             side.Team,
			SourceItemID:     it.ID,
			SourceInstanceID: slot.Placed.ID,
			Glyph:            it.Glyph,
			Stats: Stats{
				HP:               hp,
				MaxHP:            hp,
				Attack:           it.Unit.Attack + b.Attack,
				Speed:            it.Unit.Speed,
				Range:            it.Unit.Range,
				AttacksPerSecond: it.Unit.AttacksPerSecond,
			},
			X:     x,
			HP:    hp,
			State: Walk,
		}
		s.Units = append(s.Units, u)
		sim.emit(Event{T: s.Time, Type: EventSpawn, Payload: map[string]any{
			"id": u.ID, "team": string(u.Team), "source": it.ID, "x": u.X, "hp": u.HP, "attack": u.Stats.Attack,
		}})
	}
}

// acquire picks the nearest living opposing unit at or ahead of unit i, falling
// back to the opposing hero. Candidates are sorted stably so equal positions keep
// slice order. Quadratic in live units per step.
func (sim *Simulator) acquire(units []Unit, start []float64, dead []bool, i int) (int, float64) {
	self := units[i]
	x := start[i]
	var cands []int
	for j := range units {
		if j == i || dead[j] || units[j].Team == self.Team {
			continue
		}
		if (self.Team == Player && start[j] >= x) || (self.Team == Enemy && start[j] <= x) {
			cands = append(cands, j)
		}
	}
	if len(cands) == 0 {
		if self.Team == Player {
			return heroTarget, sim.Lane.Length - x
		}
		return heroTarget, x
	}
	sort.SliceStable(cands, func(a, b int) bool {
		if self.Team == Player {
			return start[cands[a]] < start[cands[b]]
		}
		return start[cands[a]] > start[cands[b]]
	})
	j := cands[0]
	if self.Team == Player {
		return j, start[j] - x
	}
	return j, x - start[j]
}
