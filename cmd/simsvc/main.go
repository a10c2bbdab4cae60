package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"toyrumble/internal/combat"
	"toyrumble/internal/config"
	"toyrumble/internal/item"
	"toyrumble/internal/util"
)

func main() {
	var cfgDir, out, format string
	var seed int64
	var n, round, budget, workers int
	var dt, maxDur float64
	var saveLog, jsonLog, debug bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&format, "format", "json", "output format: json or msgpack")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&round, "round", 1, "round used to size both loadouts")
	flag.IntVar(&budget, "budget", 0, "fixed gold per side; 0 uses the round budget")
	flag.IntVar(&workers, "workers", 8, "parallel simulations in batch mode")
	flag.Float64Var(&dt, "dt", combat.DefaultDelta, "step size in seconds")
	flag.Float64Var(&maxDur, "max", combat.DefaultMaxDuration, "battle time cap in seconds")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&jsonLog, "json-log", false, "structured JSON logs")
	flag.BoolVar(&debug, "v", false, "debug logging")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bench := &Bench{
		Game:        game,
		Catalog:     cat,
		Round:       round,
		Budget:      budget,
		Delta:       dt,
		MaxDuration: maxDur,
	}

	var payload any
	if n <= 1 {
		m := bench.Run(ctx, seed, saveLog)
		payload = m
		log.Info("single simulation finished",
			zap.String("outcome", string(m.Result.Outcome)),
			zap.Float64("duration", m.Result.Duration),
			zap.Bool("timed_out", m.Result.TimedOut),
			zap.Int("player_items", len(m.PlayerItems)),
			zap.Int("enemy_items", len(m.EnemyItems)))
	} else {
		summary, err := bench.Batch(ctx, seed, n, workers)
		if err != nil {
			log.Fatal("batch", zap.Error(err))
		}
		payload = summary
		log.Info("batch finished",
			zap.Int("runs", summary.Runs),
			zap.Float64("player_win_rate", summary.PlayerWinRate),
			zap.Float64("avg_duration", summary.AvgDuration))
	}

	data, err := encode(payload, format)
	if err != nil {
		log.Fatal("encode", zap.String("format", format), zap.Error(err))
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		log.Fatal("write", zap.String("out", out), zap.Error(err))
	}
	log.Info("wrote results", zap.String("out", filepath.Base(out)), zap.Int("bytes", len(data)))
}
