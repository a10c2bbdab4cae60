package loadout

import (
	"math/rand"

	"toyrumble/internal/bonus"
	"toyrumble/internal/config"
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
	"toyrumble/internal/util"
)

const (
	DefaultMaxAttempts = 200
	DefaultTrials      = 20
)

// Builder packs a gold budget of random catalog items onto a grid. It is a greedy
// random heuristic: the layout is always valid, the budget is not necessarily used up.
type Builder struct {
	Grid        grid.Grid
	Catalog     *item.Catalog
	Rng         *rand.Rand
	MaxAttempts int
	Trials      int
}

type Result struct {
	Items     []grid.PlacedItem
	Spent     int
	Remaining int
}

func NewBuilder(g grid.Grid, cat *item.Catalog, cfg config.OpponentConfig, rng *rand.Rand) *Builder {
	b := &Builder{Grid: g, Catalog: cat, Rng: rng, MaxAttempts: cfg.MaxAttempts, Trials: cfg.PlacementTrials}
	if b.MaxAttempts <= 0 {
		b.MaxAttempts = DefaultMaxAttempts
	}
	if b.Trials <= 0 {
		b.Trials = DefaultTrials
	}
	return b
}

func (b *Builder) Build(budget int) Result {
	remaining := budget
	var items []grid.PlacedItem
	hasSummoner := false
	cheapest := b.Catalog.Cheapest()

	for attempts := 0; remaining >= cheapest && attempts < b.MaxAttempts; attempts++ {
		pool := b.Catalog.Affordable(remaining)
		if len(pool) == 0 {
			break
		}
		if !hasSummoner {
			if summ := item.Summoners(pool); len(summ) > 0 {
				pool = summ
			}
		}
		choice := util.Pick(b.Rng, pool)

		p, ok := b.tryPlace(items, choice)
		if !ok {
			continue
		}
		items = append(items, p)
		remaining -= choice.Cost
		if choice.IsSummoner() {
			hasSummoner = true
		}
	}

	return Result{Items: bonus.Apply(items), Spent: budget - remaining, Remaining: remaining}
}

func (b *Builder) tryPlace(items []grid.PlacedItem, it item.Item) (grid.PlacedItem, bool) {
	for t := 0; t < b.Trials; t++ {
		rot := grid.Rot0
		if b.Rng.Float64() > 0.5 {
			rot = grid.Rot90
		}
		w, h := grid.EffectiveSize(it, rot)
		if w > b.Grid.W || h > b.Grid.H {
			continue
		}
		x := b.Rng.Intn(b.Grid.W - w + 1)
		y := b.Rng.Intn(b.Grid.H - h + 1)
		if b.Grid.CanPlace(items, "", x, y, w, h) {
			return grid.PlacedItem{
				ID:       util.NewID(b.Rng),
				Item:     it,
				X:        x,
				Y:        y,
				Rotation: rot,
				Bonus:    grid.NoBonus,
			}, true
		}
	}
	return grid.PlacedItem{}, false
}

// OpponentBudget grows with the round and carries a little noise.
func OpponentBudget(cfg config.OpponentConfig, round int, rng *rand.Rand) int {
	if round < 1 {
		round = 1
	}
	budget := cfg.BaseBudget + (round-1)*cfg.BudgetPerRound
	return budget + util.IntBetween(rng, cfg.BudgetJitterMin, cfg.BudgetJitterMax)
}
