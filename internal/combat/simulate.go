package combat

import (
	"context"
	"encoding/json"
)

const (
	DefaultDelta       = 1.0 / 60
	DefaultMaxDuration = 180.0
)

type Result struct {
	Outcome      Phase            `json:"outcome"`
	Duration     float64          `json:"duration"`
	TimedOut     bool             `json:"timed_out,omitempty"`
	Aborted      bool             `json:"aborted,omitempty"`
	PlayerHeroHP float64          `json:"player_hero_hp"`
	EnemyHeroHP  float64          `json:"enemy_hero_hp"`
	Spawned      map[Team]int     `json:"spawned"`
	Kills        map[Team]int     `json:"kills"`
	HeroDamage   map[Team]float64 `json:"hero_damage"`
	Events       []Event          `json:"events,omitempty"`
}

// Run steps s with a fixed dt until a hero falls, maxDuration elapses or ctx is
// done. A PREP state is started first. The final state is returned alongside the result.
func Run(ctx context.Context, sim *Simulator, s State, dt, maxDuration float64, record bool) (Result, State) {
	if dt <= 0 {
		dt = DefaultDelta
	}
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	res := Result{
		Spawned:    map[Team]int{},
		Kills:      map[Team]int{},
		HeroDamage: map[Team]float64{},
	}

	local := *sim
	local.Emit = func(ev Event) {
		team := Team(str(ev.Payload["team"]))
		switch ev.Type {
		case EventSpawn:
			res.Spawned[team]++
		case EventDeath:
			res.Kills[Team(str(ev.Payload["killer_team"]))]++
		case EventHeroHit:
			if dmg, ok := ev.Payload["dmg"].(float64); ok {
				res.HeroDamage[team] += dmg
			}
		}
		if record {
			res.Events = append(res.Events, ev)
		}
		if sim.Emit != nil {
			sim.Emit(ev)
		}
	}

	s = Start(s)
	for s.Phase == Running {
		if ctx.Err() != nil {
			res.Aborted = true
			break
		}
		if s.Time >= maxDuration {
			res.TimedOut = true
			break
		}
		s = local.Step(s, dt)
	}

	res.Outcome = s.Phase
	res.Duration = s.Time
	res.PlayerHeroHP = s.Player.Hero.HP
	res.EnemyHeroHP = s.Enemy.Hero.HP
	return res, s
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
