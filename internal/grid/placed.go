package grid

import "toyrumble/internal/item"

type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

func (r Rotation) Next() Rotation { return (r + 90) % 360 }

// Swaps reports whether width and height trade places.
func (r Rotation) Swaps() bool { return r == Rot90 || r == Rot270 }

func (r Rotation) Valid() bool {
	return r == Rot0 || r == Rot90 || r == Rot180 || r == Rot270
}

// Bonus holds adjacency-derived buffs. Only the bonus package computes it.
type Bonus struct {
	Attack             float64
	HP                 float64
	CooldownMultiplier float64
}

var NoBonus = Bonus{CooldownMultiplier: 1}

type PlacedItem struct {
	ID       string
	Item     item.Item
	X, Y     int
	Rotation Rotation
	Bonus    Bonus
}

func EffectiveSize(it item.Item, rot Rotation) (w, h int) {
	if rot.Swaps() {
		return it.Height, it.Width
	}
	return it.Width, it.Height
}

func (p PlacedItem) Size() (w, h int) { return EffectiveSize(p.Item, p.Rotation) }

func (p PlacedItem) Rect() Rect {
	w, h := p.Size()
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

func Find(items []PlacedItem, id string) (int, bool) {
	for i := range items {
		if items[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func Clone(items []PlacedItem) []PlacedItem {
	if items == nil {
		return nil
	}
	return append(make([]PlacedItem, 0, len(items)), items...)
}

func Remove(items []PlacedItem, id string) ([]PlacedItem, PlacedItem, bool) {
	i, ok := Find(items, id)
	if !ok {
		return items, PlacedItem{}, false
	}
	removed := items[i]
	out := make([]PlacedItem, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, removed, true
}
