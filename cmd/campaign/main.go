// Command campaign plays a whole run headlessly: it shops with a simple greedy
// policy, fights each round and stops at game over or the round limit.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"toyrumble/internal/campaign"
	"toyrumble/internal/combat"
	"toyrumble/internal/config"
	"toyrumble/internal/content"
	"toyrumble/internal/item"
	"toyrumble/internal/util"
)

func main() {
	var cfgDir string
	var seed int64
	var rounds int
	var dt, maxDur float64
	var remote, jsonLog, debug bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&rounds, "rounds", 10, "stop after this many rounds")
	flag.Float64Var(&dt, "dt", combat.DefaultDelta, "step size in seconds")
	flag.Float64Var(&maxDur, "max", combat.DefaultMaxDuration, "forfeit battles that run longer than this")
	flag.BoolVar(&remote, "remote", false, "ask the remote generator for names and commentary")
	flag.BoolVar(&jsonLog, "json-log", false, "structured JSON logs")
	flag.BoolVar(&debug, "v", false, "debug logging, including every battle event")
	flag.Parse()

	log, err := util.NewLogger(jsonLog, debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	game, catCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		log.Fatal("load config", zap.String("dir", cfgDir), zap.Error(err))
	}
	cat, err := item.NewCatalog(catCfg)
	if err != nil {
		log.Fatal("build catalog", zap.Error(err))
	}

	rng := util.New(seed)
	var primary content.Service
	if remote {
		primary = content.NewClient(game.Content, content.NewLocal(game, cat, rng))
	}
	s := campaign.New(campaign.Deps{
		Game:    game,
		Catalog: cat,
		Content: primary,
		Rng:     rng,
		Logger:  log,
		Emit: func(ev combat.Event) {
			log.Debug("event", zap.Float64("t", ev.T), zap.String("type", ev.Type), zap.Any("payload", ev.Payload))
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := &autopilot{s: s, cat: cat, rng: rng, log: log, dt: dt, maxDuration: maxDur}
	if err := p.play(ctx, rounds); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("campaign", zap.Error(err))
	}
	log.Info("campaign over",
		zap.String("phase", string(s.Phase())),
		zap.Int("round", s.Round()),
		zap.Int("wins", s.Wins()),
		zap.Int("lives", s.Lives()),
		zap.Int("gold", s.Gold()))
}
