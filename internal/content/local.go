package content

import (
	"context"
	"fmt"
	"math/rand"

	"toyrumble/internal/config"
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
	"toyrumble/internal/loadout"
	"toyrumble/internal/util"
)

var (
	opponentNames = []string{
		"Toy Master", "Kid Commander", "Block Builder", "Action Figure Fan",
		"Puzzle Pro", "Collector Carl", "Robot Ruler",
	}
	opponentAvatars = []string{"😈", "🤖", "🤡", "👽", "🤠", "👻"}
	cannedLines     = []string{
		"What a match!", "Toys are flying everywhere!", "A close victory!",
		"Total domination!", "The playroom is safe!",
	}
)

// Local generates everything offline from the injected rng. It never fails and
// is not safe for concurrent use.
type Local struct {
	Grid     grid.Grid
	Catalog  *item.Catalog
	Opponent config.OpponentConfig
	Rng      *rand.Rand
}

func NewLocal(game *config.GameConfig, cat *item.Catalog, rng *rand.Rand) *Local {
	if rng == nil {
		rng = util.NewUnseeded()
	}
	return &Local{
		Grid:     grid.New(game.Grid.Width, game.Grid.Height),
		Catalog:  cat,
		Opponent: game.Opponent,
		Rng:      rng,
	}
}

func (l *Local) GenerateOpponent(_ context.Context, round, _ int) (Opponent, error) {
	return Opponent{
		Name:        util.Pick(l.Rng, opponentNames),
		Description: levelDescription(round),
		Avatar:      util.Pick(l.Rng, opponentAvatars),
		Items:       l.Items(round),
	}, nil
}

// Items builds a random loadout sized by the round's budget.
func (l *Local) Items(round int) []grid.PlacedItem {
	budget := loadout.OpponentBudget(l.Opponent, round, l.Rng)
	return loadout.NewBuilder(l.Grid, l.Catalog, l.Opponent, l.Rng).Build(budget).Items
}

func (l *Local) GenerateCommentary(context.Context, string, float64) (string, error) {
	return util.Pick(l.Rng, cannedLines), nil
}

func levelDescription(round int) string {
	return fmt.Sprintf("Level %d Player", round)
}
