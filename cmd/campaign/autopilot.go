package main

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"toyrumble/internal/campaign"
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
	"toyrumble/internal/util"
)

type autopilot struct {
	s           *campaign.Session
	cat         *item.Catalog
	rng         *rand.Rand
	log         *zap.Logger
	dt          float64
	maxDuration float64
}

func (p *autopilot) play(ctx context.Context, rounds int) error {
	if err := p.s.Begin(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch p.s.Phase() {
		case campaign.Shop:
			p.shop()
			if err := p.s.StartBattle(ctx); err != nil {
				return err
			}
		case campaign.Battle:
			if err := p.fight(ctx); err != nil {
				return err
			}
		case campaign.Victory:
			p.log.Info("victory", zap.Int("round", p.s.Round()), zap.String("commentary", p.s.Commentary()))
			if p.s.Round() >= rounds {
				return nil
			}
			if err := p.s.NextRound(); err != nil {
				return err
			}
		case campaign.Defeat:
			if p.s.Round() >= rounds {
				return nil
			}
			if err := p.s.Retreat(); err != nil {
				return err
			}
		case campaign.GameOver:
			return nil
		default:
			return errors.New("autopilot: stuck in " + string(p.s.Phase()))
		}
	}
}

// shop equips anything in storage, then keeps buying random affordable toys
// until the money runs out or purchases start landing in storage.
func (p *autopilot) shop() {
	for _, st := range p.s.Storage() {
		if err := p.s.Equip(st.ID); err != nil && !errors.Is(err, grid.ErrNoFit) {
			p.log.Warn("equip failed", zap.String("id", st.ID), zap.Error(err))
		}
	}
	for {
		pool := p.cat.Affordable(p.s.Gold())
		if len(pool) == 0 {
			return
		}
		if summ := item.Summoners(pool); len(summ) > 0 && p.summoners() == 0 {
			pool = summ
		}
		buy, err := p.s.Buy(util.Pick(p.rng, pool).ID)
		if err != nil {
			p.log.Warn("buy failed", zap.Error(err))
			return
		}
		if buy.Stored {
			if _, err := p.s.SellStorage(buy.Item.ID); err != nil {
				p.log.Warn("sell failed", zap.Error(err))
			}
			return
		}
	}
}

func (p *autopilot) summoners() int {
	n := 0
	for _, it := range p.s.Items() {
		if it.Item.IsSummoner() {
			n++
		}
	}
	return n
}

func (p *autopilot) fight(ctx context.Context) error {
	for p.s.Phase() == campaign.Battle {
		if p.s.BattleDuration() >= p.maxDuration {
			p.log.Info("forfeit", zap.Float64("duration", p.s.BattleDuration()))
			return p.s.Abort(ctx)
		}
		if _, err := p.s.Advance(ctx, p.dt); err != nil {
			return err
		}
	}
	return nil
}
