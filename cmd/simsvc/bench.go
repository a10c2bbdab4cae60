package main

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"toyrumble/internal/combat"
	"toyrumble/internal/config"
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
	"toyrumble/internal/loadout"
	"toyrumble/internal/util"
)

// Bench pits two random loadouts against each other.
type Bench struct {
	Game        *config.GameConfig
	Catalog     *item.Catalog
	Round       int
	Budget      int
	Delta       float64
	MaxDuration float64
}

type Matchup struct {
	Seed        int64         `json:"seed"`
	PlayerItems []string      `json:"player_items"`
	EnemyItems  []string      `json:"enemy_items"`
	PlayerSpent int           `json:"player_spent"`
	EnemySpent  int           `json:"enemy_spent"`
	Result      combat.Result `json:"result"`
}

func (b *Bench) Run(ctx context.Context, seed int64, record bool) Matchup {
	rng := util.New(seed)
	g := grid.New(b.Game.Grid.Width, b.Game.Grid.Height)
	builder := loadout.NewBuilder(g, b.Catalog, b.Game.Opponent, rng)

	sideBudget := func() int {
		if b.Budget > 0 {
			return b.Budget
		}
		return loadout.OpponentBudget(b.Game.Opponent, b.Round, rng)
	}
	player := builder.Build(sideBudget())
	enemy := builder.Build(sideBudget())

	sim := combat.NewSimulator(b.Game.Lane, rng, nil)
	state := combat.NewState(b.Game.Lane, player.Items, enemy.Items, rng)
	res, _ := combat.Run(ctx, sim, state, b.Delta, b.MaxDuration, record)

	return Matchup{
		Seed:        seed,
		PlayerItems: itemIDs(player.Items),
		EnemyItems:  itemIDs(enemy.Items),
		PlayerSpent: player.Spent,
		EnemySpent:  enemy.Spent,
		Result:      res,
	}
}

func itemIDs(items []grid.PlacedItem) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Item.ID
	}
	return out
}

type ItemStat struct {
	Picks   int     `json:"picks"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

type Summary struct {
	Runs          int                 `json:"runs"`
	PlayerWins    int                 `json:"player_wins"`
	EnemyWins     int                 `json:"enemy_wins"`
	TimedOut      int                 `json:"timed_out"`
	PlayerWinRate float64             `json:"player_win_rate"`
	AvgDuration   float64             `json:"avg_duration"`
	AvgSpawned    map[string]float64  `json:"avg_spawned"`
	ByItem        map[string]ItemStat `json:"by_item"`
	Strongest     []string            `json:"strongest"`
}

// Batch runs n matchups with seeds seed..seed+n-1 across a bounded worker pool.
// The summary does not depend on worker count or scheduling.
func (b *Bench) Batch(ctx context.Context, seed int64, n, workers int) (Summary, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]Matchup, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = b.Run(ctx, seed+int64(i), false)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, fmt.Errorf("batch: %w", err)
	}
	return summarize(results), nil
}

func summarize(ms []Matchup) Summary {
	st := Summary{
		Runs:       len(ms),
		AvgSpawned: map[string]float64{},
		ByItem:     map[string]ItemStat{},
	}
	if len(ms) == 0 {
		return st
	}
	sumT := 0.0
	for _, m := range ms {
		r := m.Result
		switch {
		case r.Outcome == combat.PlayerWin:
			st.PlayerWins++
		case r.Outcome == combat.EnemyWin:
			st.EnemyWins++
		case r.TimedOut:
			st.TimedOut++
		}
		sumT += r.Duration
		for team, c := range r.Spawned {
			st.AvgSpawned[string(team)] += float64(c)
		}

		won := map[combat.Team]bool{combat.Player: r.Outcome == combat.PlayerWin, combat.Enemy: r.Outcome == combat.EnemyWin}
		for team, ids := range map[combat.Team][]string{combat.Player: m.PlayerItems, combat.Enemy: m.EnemyItems} {
			seen := map[string]bool{}
			for _, id := range ids {
				if seen[id] {
					continue
				}
				seen[id] = true
				is := st.ByItem[id]
				is.Picks++
				if won[team] {
					is.Wins++
				}
				st.ByItem[id] = is
			}
		}
	}

	runs := float64(len(ms))
	st.PlayerWinRate = float64(st.PlayerWins) / runs
	st.AvgDuration = sumT / runs
	for k, v := range st.AvgSpawned {
		st.AvgSpawned[k] = v / runs
	}
	for id, is := range st.ByItem {
		is.WinRate = float64(is.Wins) / float64(is.Picks)
		st.ByItem[id] = is
		st.Strongest = append(st.Strongest, id)
	}
	sort.Slice(st.Strongest, func(i, j int) bool {
		a, b := st.ByItem[st.Strongest[i]], st.ByItem[st.Strongest[j]]
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return st.Strongest[i] < st.Strongest[j]
	})
	return st
}

func encode(v any, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return combat.MarshalPretty(v), nil
	case "msgpack":
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
