package grid

import (
	"errors"
	"fmt"
)

var (
	ErrPlacementRejected = errors.New("placement rejected")
	ErrNoFit             = errors.New("no fit available")
	ErrUnknownItem       = errors.New("unknown placed item")
)

// Grid is a fixed W×H cell area. Every method treats the item slice as read-only
// and returns a fresh slice on success.
type Grid struct {
	W, H int
}

func New(w, h int) Grid { return Grid{W: w, H: h} }

func (g Grid) InBounds(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= g.W && r.Bottom() <= g.H
}

// CanPlace reports whether a w×h rectangle at (x, y) is inside the grid and clear
// of every item except excludeID.
func (g Grid) CanPlace(items []PlacedItem, excludeID string, x, y, w, h int) bool {
	cand := Rect{X: x, Y: y, W: w, H: h}
	if !g.InBounds(cand) {
		return false
	}
	for _, other := range items {
		if other.ID == excludeID {
			continue
		}
		if cand.Overlaps(other.Rect()) {
			return false
		}
	}
	return true
}

// FindFirstFit scans origins row-major (y outer, x inner) and returns the first free one.
func (g Grid) FindFirstFit(items []PlacedItem, w, h int) (x, y int, ok bool) {
	for y = 0; y+h <= g.H; y++ {
		for x = 0; x+w <= g.W; x++ {
			if g.CanPlace(items, "", x, y, w, h) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func (g Grid) Place(items []PlacedItem, p PlacedItem) ([]PlacedItem, error) {
	if _, dup := Find(items, p.ID); dup {
		return items, fmt.Errorf("%w: duplicate id %s", ErrPlacementRejected, p.ID)
	}
	w, h := p.Size()
	if !g.CanPlace(items, "", p.X, p.Y, w, h) {
		return items, fmt.Errorf("%w: %s at (%d,%d)", ErrPlacementRejected, p.Item.ID, p.X, p.Y)
	}
	out := append(Clone(items), p)
	return out, nil
}

// PlaceFirstFit drops p at the first free origin with its current rotation.
func (g Grid) PlaceFirstFit(items []PlacedItem, p PlacedItem) ([]PlacedItem, PlacedItem, error) {
	w, h := p.Size()
	x, y, ok := g.FindFirstFit(items, w, h)
	if !ok {
		return items, p, fmt.Errorf("%w: %s (%dx%d)", ErrNoFit, p.Item.ID, w, h)
	}
	p.X, p.Y = x, y
	out, err := g.Place(items, p)
	return out, p, err
}

func (g Grid) Move(items []PlacedItem, id string, x, y int) ([]PlacedItem, error) {
	i, ok := Find(items, id)
	if !ok {
		return items, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	w, h := items[i].Size()
	if !g.CanPlace(items, id, x, y, w, h) {
		return items, fmt.Errorf("%w: move %s to (%d,%d)", ErrPlacementRejected, id, x, y)
	}
	out := Clone(items)
	out[i].X, out[i].Y = x, y
	return out, nil
}

// Rotate turns the item by 90°, clamping its origin back inside the grid. A
// colliding result is rejected and items are returned untouched.
func (g Grid) Rotate(items []PlacedItem, id string) ([]PlacedItem, error) {
	i, ok := Find(items, id)
	if !ok {
		return items, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	cur := items[i]
	next := cur.Rotation.Next()
	w, h := EffectiveSize(cur.Item, next)
	x, y := min(cur.X, g.W-w), min(cur.Y, g.H-h)
	if !g.CanPlace(items, id, x, y, w, h) {
		return items, fmt.Errorf("%w: rotate %s to %d", ErrPlacementRejected, id, next)
	}
	out := Clone(items)
	out[i].Rotation, out[i].X, out[i].Y = next, x, y
	return out, nil
}

// Validate checks bounds and pairwise non-overlap.
func (g Grid) Validate(items []PlacedItem) error {
	for i, a := range items {
		if !a.Rotation.Valid() {
			return fmt.Errorf("%w: %s rotation %d", ErrPlacementRejected, a.ID, a.Rotation)
		}
		ra := a.Rect()
		if !g.InBounds(ra) {
			return fmt.Errorf("%w: %s out of bounds %+v", ErrPlacementRejected, a.ID, ra)
		}
		for _, b := range items[i+1:] {
			if ra.Overlaps(b.Rect()) {
				return fmt.Errorf("%w: %s overlaps %s", ErrPlacementRejected, a.ID, b.ID)
			}
		}
	}
	return nil
}

// Occupancy maps each covered cell to the id of the item on it.
func (g Grid) Occupancy(items []PlacedItem) map[Cell]string {
	occ := make(map[Cell]string, g.W*g.H)
	for _, p := range items {
		for _, c := range p.Rect().Cells() {
			occ[c] = p.ID
		}
	}
	return occ
}
