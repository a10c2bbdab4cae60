package item

import (
	"errors"
	"fmt"
	"math"

	"toyrumble/internal/config"
)

var ErrInvalidItem = errors.New("invalid catalog item")

type Catalog struct {
	items []Item
	byID  map[string]int
}

func NewCatalog(cfg *config.CatalogConfig) (*Catalog, error) {
	c := &Catalog{byID: map[string]int{}}
	if cfg == nil {
		return c, nil
	}
	for _, d := range cfg.Items {
		it := Item{
			ID:          d.ID,
			Name:        d.Name,
			Glyph:       d.Glyph,
			Description: d.Description,
			Category:    Category(d.Category),
			Rarity:      Rarity(d.Rarity),
			Cost:        d.Cost,
			Width:       d.Width,
			Height:      d.Height,
			Cooldown:    d.Cooldown,
			Boost:       BoostKind(d.Boost),
			BoostValue:  d.BoostValue,
		}
		if d.Unit != nil {
			it.Unit = UnitStats{
				HP:               d.Unit.HP,
				Attack:           d.Unit.Attack,
				Speed:            d.Unit.Speed,
				Range:            d.Unit.Range,
				AttacksPerSecond: d.Unit.AttacksPerSecond,
			}
		}
		if err := validate(it); err != nil {
			return nil, err
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// MustCatalog is for the built-in catalog and tests.
func MustCatalog(cfg *config.CatalogConfig) *Catalog {
	c, err := NewCatalog(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func validate(it Item) error {
	if it.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if it.Width <= 0 || it.Height <= 0 {
		return fmt.Errorf("%w: %s footprint %dx%d", ErrInvalidItem, it.ID, it.Width, it.Height)
	}
	if it.Cost < 0 {
		return fmt.Errorf("%w: %s negative cost", ErrInvalidItem, it.ID)
	}
	switch it.Category {
	case Summoner:
		if it.Cooldown <= 0 || it.Unit.AttacksPerSecond <= 0 || it.Unit.HP <= 0 {
			return fmt.Errorf("%w: %s summoner needs cooldown, hp and attack rate", ErrInvalidItem, it.ID)
		}
	case Booster:
		switch it.Boost {
		case BoostAttack, BoostHealth:
		case BoostSpeed:
			if it.BoostValue < 0 || it.BoostValue >= 1 {
				return fmt.Errorf("%w: %s speed boost %.2f outside [0,1)", ErrInvalidItem, it.ID, it.BoostValue)
			}
		default:
			return fmt.Errorf("%w: %s unknown boost %q", ErrInvalidItem, it.ID, it.Boost)
		}
	default:
		return fmt.Errorf("%w: %s unknown category %q", ErrInvalidItem, it.ID, it.Category)
	}
	return nil
}

func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

func (c *Catalog) All() []Item { return append([]Item(nil), c.items...) }

func (c *Catalog) Len() int { return len(c.items) }

// Affordable keeps catalog order.
func (c *Catalog) Affordable(budget int) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Cost <= budget {
			out = append(out, it)
		}
	}
	return out
}

// Cheapest returns math.MaxInt for an empty catalog.
func (c *Catalog) Cheapest() int {
	min := math.MaxInt
	for _, it := range c.items {
		if it.Cost < min {
			min = it.Cost
		}
	}
	return min
}

func Summoners(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.IsSummoner() {
			out = append(out, it)
		}
	}
	return out
}
