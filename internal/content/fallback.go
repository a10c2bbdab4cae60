package content

import (
	"context"

	"go.uber.org/zap"
)

// Fallback tries Primary once and answers from Local whenever it fails, so
// callers never see an error. An opponent loadout that does not fit Local's
// grid counts as a failure.
type Fallback struct {
	Primary Service
	Local   *Local
	Logger  *zap.Logger
}

func NewFallback(primary Service, local *Local, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{Primary: primary, Local: local, Logger: logger}
}

func (f *Fallback) GenerateOpponent(ctx context.Context, round, wins int) (Opponent, error) {
	if f.Primary != nil {
		opp, err := f.Primary.GenerateOpponent(ctx, round, wins)
		if err == nil {
			err = f.Local.Grid.Validate(opp.Items)
		}
		if err == nil {
			return opp, nil
		}
		f.Logger.Warn("opponent generation failed, using local",
			zap.Int("round", round), zap.Int("wins", wins), zap.Error(err))
	}
	return f.Local.GenerateOpponent(ctx, round, wins)
}

func (f *Fallback) GenerateCommentary(ctx context.Context, winner string, seconds float64) (string, error) {
	if f.Primary != nil {
		line, err := f.Primary.GenerateCommentary(ctx, winner, seconds)
		if err == nil {
			return line, nil
		}
		f.Logger.Warn("commentary generation failed, using canned line",
			zap.String("winner", winner), zap.Error(err))
	}
	return f.Local.GenerateCommentary(ctx, winner, seconds)
}
