// Package content produces the flavour around a battle: opponent loadouts with a
// name and avatar, and a line of commentary once a winner is known.
package content

import (
	"context"
	"errors"

	"toyrumble/internal/grid"
)

//go:generate go tool mockgen -destination=./mocks/service_mock.go -package=mocks . Service

var (
	// ErrUnconfigured means no API key was found for the remote generator.
	ErrUnconfigured = errors.New("content: remote generator not configured")
	ErrBadResponse  = errors.New("content: bad response")
)

type Opponent struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Avatar      string            `json:"avatar"`
	Items       []grid.PlacedItem `json:"items"`
}

type Service interface {
	GenerateOpponent(ctx context.Context, round, wins int) (Opponent, error)
	GenerateCommentary(ctx context.Context, winner string, seconds float64) (string, error)
}
