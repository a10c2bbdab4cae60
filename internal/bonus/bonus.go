// Package bonus recomputes adjacency buffs for one side's grid.
//
// Boosters buff every distinct SUMMONER that touches any cell of their perimeter
// ring (edges only, no diagonals). ATTACK and HEALTH add up; SPEED multiplies the
// cooldown by (1 - value) per booster. Boosters never buff boosters and summoners
// never buff anything.
package bonus

import (
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
)

// Compute returns the bonus of every item keyed by instance id. It is a pure
// function of the layout.
func Compute(items []grid.PlacedItem) map[string]grid.Bonus {
	out := make(map[string]grid.Bonus, len(items))
	occ := make(map[grid.Cell]string)
	byID := make(map[string]item.Item, len(items))
	for _, p := range items {
		out[p.ID] = grid.NoBonus
		byID[p.ID] = p.Item
		for _, c := range p.Rect().Cells() {
			occ[c] = p.ID
		}
	}

	for _, booster := range items {
		if !booster.Item.IsBooster() {
			continue
		}
		seen := map[string]bool{}
		for _, c := range booster.Rect().Ring() {
			nid, ok := occ[c]
			if !ok || nid == booster.ID || seen[nid] {
				continue
			}
			seen[nid] = true
			if !byID[nid].IsSummoner() {
				continue
			}
			out[nid] = applyBoost(out[nid], booster.Item)
		}
	}
	return out
}

func applyBoost(b grid.Bonus, booster item.Item) grid.Bonus {
	switch booster.Boost {
	case item.BoostAttack:
		b.Attack += booster.BoostValue
	case item.BoostHealth:
		b.HP += booster.BoostValue
	case item.BoostSpeed:
		b.CooldownMultiplier *= 1 - booster.BoostValue
	}
	return b
}

// Apply returns a copy of items with every Bonus recomputed from scratch.
func Apply(items []grid.PlacedItem) []grid.PlacedItem {
	bonuses := Compute(items)
	out := grid.Clone(items)
	for i := range out {
		out[i].Bonus = bonuses[out[i].ID]
	}
	return out
}
