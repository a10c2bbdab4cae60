// Package campaign holds one player's run: gold, lives, the inventory grid and
// storage, and the phase machine that moves between shopping and battles.
//
// A Session is not safe for concurrent use. Battles run on private copies of
// both loadouts, so shop state is never touched while a battle is in progress.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"toyrumble/internal/bonus"
	"toyrumble/internal/combat"
	"toyrumble/internal/config"
	"toyrumble/internal/content"
	"toyrumble/internal/grid"
	"toyrumble/internal/item"
	"toyrumble/internal/util"
)

type Phase string

const (
	Menu       Phase = "MENU"
	Shop       Phase = "SHOP"
	BattlePrep Phase = "BATTLE_PREP"
	Battle     Phase = "BATTLE"
	Victory    Phase = "VICTORY"
	Defeat     Phase = "DEFEAT"
	GameOver   Phase = "GAME_OVER"
)

var (
	ErrInsufficientFunds = errors.New("campaign: insufficient funds")
	ErrWrongPhase        = errors.New("campaign: wrong phase")
)

// PlayerLabel is the winner name handed to commentary.
const PlayerLabel = "Player"

type Deps struct {
	Game    *config.GameConfig
	Catalog *item.Catalog
	// Content is the preferred generator. It may be nil; failures always fall
	// back to the local generator.
	Content content.Service
	Rng     *rand.Rand
	Logger  *zap.Logger
	Emit    func(combat.Event)
}

type Session struct {
	cfg     *config.GameConfig
	grid    grid.Grid
	catalog *item.Catalog
	content content.Service
	rng     *rand.Rand
	log     *zap.Logger
	sim     *combat.Simulator

	phase      Phase
	round      int
	gold       int
	lives      int
	wins       int
	items      []grid.PlacedItem
	storage    []grid.PlacedItem
	opponent   *content.Opponent
	battle     combat.State
	commentary string
}

func New(d Deps) *Session {
	if d.Game == nil {
		d.Game = config.DefaultGame()
	}
	if d.Catalog == nil {
		d.Catalog = item.MustCatalog(config.DefaultCatalog())
	}
	if d.Rng == nil {
		d.Rng = util.NewUnseeded()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	local := content.NewLocal(d.Game, d.Catalog, d.Rng)
	s := &Session{
		cfg:     d.Game,
		grid:    grid.New(d.Game.Grid.Width, d.Game.Grid.Height),
		catalog: d.Catalog,
		content: content.NewFallback(d.Content, local, d.Logger),
		rng:     d.Rng,
		log:     d.Logger,
		sim:     combat.NewSimulator(d.Game.Lane, d.Rng, d.Emit),
	}
	s.Reset()
	return s
}

// Reset throws the current run away and returns to the menu.
func (s *Session) Reset() {
	s.phase = Menu
	s.round = 1
	s.gold = s.cfg.Economy.StartingGold
	s.lives = s.cfg.Economy.MaxLives
	s.wins = 0
	s.items = nil
	s.storage = nil
	s.opponent = nil
	s.battle = combat.State{}
	s.commentary = ""
}

// Begin enters the shop from the menu.
func (s *Session) Begin() error {
	return s.transition(Menu, Shop)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Round() int { return s.round }
func (s *Session) Gold() int { return s.gold }
func (s *Session) Lives() int { return s.lives }
func (s *Session) Wins() int { return s.wins }
func (s *Session) Commentary() string { return s.commentary }
func (s *Session) Grid() grid.Grid { return s.grid }
func (s *Session) Items() []grid.PlacedItem { return grid.Clone(s.items) }
func (s *Session) Storage() []grid.PlacedItem { return grid.Clone(s.storage) }
func (s *Session) BattleState() combat.State { return s.battle.Clone() }
func (s *Session) BattleDuration() float64 { return s.battle.Time }
func (s *Session) Opponent() (content.Opponent, bool) {
	if s.opponent == nil {
		return content.Opponent{}, false
	}
	return *s.opponent, true
}

func (s *Session) require(p Phase) error {
	if s.phase != p {
		return fmt.Errorf("%w: %s, want %s", ErrWrongPhase, s.phase, p)
	}
	return nil
}

func (s *Session) transition(from, to Phase) error {
	if err := s.require(from); err != nil {
		return err
	}
	s.phase = to
	return nil
}

func (s *Session) setItems(items []grid.PlacedItem) {
	s.items = bonus.Apply(items)
}

func refund(p grid.PlacedItem) int { return p.Item.Cost / 2 }

type Purchase struct {
	Item   grid.PlacedItem
	Stored bool
}

// Buy spends gold on a catalog item and drops it at the first free spot. With
// no room left the item goes to storage instead.
func (s *Session) Buy(itemID string) (Purchase, error) {
	if err := s.require(Shop); err != nil {
		return Purchase{}, err
	}
	it, ok := s.catalog.Get(itemID)
	if !ok {
		return Purchase{}, fmt.Errorf("%w: %s", grid.ErrUnknownItem, itemID)
	}
	if it.Cost > s.gold {
		return Purchase{}, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, it.ID, it.Cost, s.gold)
	}

	p := grid.PlacedItem{ID: util.NewID(s.rng), Item: it, Rotation: grid.Rot0, Bonus: grid.NoBonus}
	s.gold -= it.Cost
	items, placed, err := s.grid.PlaceFirstFit(s.items, p)
	if err != nil {
		s.storage = append(s.storage, p)
		s.log.Debug("bought into storage", zap.String("item", it.ID), zap.Int("gold", s.gold))
		return Purchase{Item: p, Stored: true}, nil
	}
	s.setItems(items)
	s.log.Debug("bought", zap.String("item", it.ID), zap.Int("x", placed.X), zap.Int("y", placed.Y),
		zap.Int("gold", s.gold))
	return Purchase{Item: placed}, nil
}

func (s *Session) Move(id string, x, y int) error {
	if err := s.require(Shop); err != nil {
		return err
	}
	items, err := s.grid.Move(s.items, id, x, y)
	if err != nil {
		return err
	}
	s.setItems(items)
	return nil
}

func (s *Session) Rotate(id string) error {
	if err := s.require(Shop); err != nil {
		return err
	}
	items, err := s.grid.Rotate(s.items, id)
	if err != nil {
		return err
	}
	s.setItems(items)
	return nil
}

// Sell removes a placed item and refunds half its cost, rounded down.
func (s *Session) Sell(id string) (int, error) {
	if err := s.require(Shop); err != nil {
		return 0, err
	}
	items, sold, ok := grid.Remove(s.items, id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", grid.ErrUnknownItem, id)
	}
	gain := refund(sold)
	s.gold += gain
	s.setItems(items)
	return gain, nil
}

// Store moves a placed item into storage.
func (s *Session) Store(id string) error {
	if err := s.require(Shop); err != nil {
		return err
	}
	items, p, ok := grid.Remove(s.items, id)
	if !ok {
		return fmt.Errorf("%w: %s", grid.ErrUnknownItem, id)
	}
	p.Bonus = grid.NoBonus
	s.storage = append(s.storage, p)
	s.setItems(items)
	return nil
}

// Equip moves a stored item onto the grid, unrotated, at the first spot that
// fits. ErrNoFit leaves it in storage.
func (s *Session) Equip(id string) error {
	if err := s.require(Shop); err != nil {
		return err
	}
	i, ok := grid.Find(s.storage, id)
	if !ok {
		return fmt.Errorf("%w: %s", grid.ErrUnknownItem, id)
	}
	p := s.storage[i]
	p.Rotation = grid.Rot0
	items, _, err := s.grid.PlaceFirstFit(s.items, p)
	if err != nil {
		return err
	}
	s.storage, _, _ = grid.Remove(s.storage, id)
	s.setItems(items)
	return nil
}

func (s *Session) SellStorage(id string) (int, error) {
	if err := s.require(Shop); err != nil {
		return 0, err
	}
	storage, sold, ok := grid.Remove(s.storage, id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", grid.ErrUnknownItem, id)
	}
	gain := refund(sold)
	s.gold += gain
	s.storage = storage
	return gain, nil
}

// StartBattle summons an opponent for the current round and starts the fight.
// Opponent generation never fails; a remote generator that errors or returns a
// loadout that does not fit the grid is replaced by the local one.
func (s *Session) StartBattle(ctx context.Context) error {
	if err := s.transition(Shop, BattlePrep); err != nil {
		return err
	}
	opp, err := s.content.GenerateOpponent(ctx, s.round, s.wins)
	if err != nil {
		// the fallback wrapper never errors; keep the session usable regardless
		s.phase = Shop
		return err
	}
	s.opponent = &opp
	s.commentary = ""
	s.battle = combat.Start(combat.NewState(s.cfg.Lane, s.items, opp.Items, s.rng))
	s.phase = Battle
	s.log.Info("battle started",
		zap.Int("round", s.round),
		zap.String("opponent", opp.Name),
		zap.Int("player_items", len(s.items)),
		zap.Int("enemy_items", len(opp.Items)))
	return nil
}

// Advance steps the running battle by dt and settles it once a hero falls.
func (s *Session) Advance(ctx context.Context, dt float64) (combat.Phase, error) {
	if err := s.require(Battle); err != nil {
		return "", err
	}
	s.battle = s.sim.Step(s.battle, dt)
	if s.battle.Phase.Terminal() {
		s.finish(ctx, s.battle.Phase == combat.PlayerWin)
	}
	return s.battle.Phase, nil
}

// Abort stops the running battle. The player forfeits and loses a life, and
// the battle state is settled as an enemy win.
func (s *Session) Abort(ctx context.Context) error {
	if err := s.require(Battle); err != nil {
		return err
	}
	s.battle.Phase = combat.EnemyWin
	s.finish(ctx, false)
	return nil
}

func (s *Session) finish(ctx context.Context, won bool) {
	duration := s.battle.Time
	if won {
		reward := s.cfg.Economy.WinRewardBase + s.cfg.Economy.WinRewardPerWin*s.wins
		s.wins++
		s.gold += reward
		s.commentary, _ = s.content.GenerateCommentary(ctx, PlayerLabel, duration)
		s.phase = Victory
		s.log.Info("battle won", zap.Int("round", s.round), zap.Float64("duration", duration),
			zap.Int("reward", reward), zap.Int("gold", s.gold))
		return
	}
	s.lives--
	if s.lives <= 0 {
		s.phase = GameOver
	} else {
		s.phase = Defeat
	}
	s.log.Info("battle lost", zap.Int("round", s.round), zap.Float64("duration", duration),
		zap.Int("lives", s.lives), zap.String("phase", string(s.phase)))
}

// NextRound leaves a victory for the next round's shop.
func (s *Session) NextRound() error {
	if err := s.transition(Victory, Shop); err != nil {
		return err
	}
	s.round++
	return nil
}

// Retreat leaves a defeat for the shop. The round does not advance.
func (s *Session) Retreat() error {
	return s.transition(Defeat, Shop)
}
