package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"toyrumble/internal/item"
)

func box(id string, w, h int) item.Item {
	return item.Item{ID: id, Category: item.Summoner, Width: w, Height: h, Cost: 1}
}

func placed(id string, it item.Item, x, y int, rot Rotation) PlacedItem {
	return PlacedItem{ID: id, Item: it, X: x, Y: y, Rotation: rot, Bonus: NoBonus}
}

func TestEffectiveSize(t *testing.T) {
	tank := box("tank", 2, 1)
	tests := []struct {
		rot  Rotation
		w, h int
	}{
		{Rot0, 2, 1},
		{Rot90, 1, 2},
		{Rot180, 2, 1},
		{Rot270, 1, 2},
	}
	for _, tt := range tests {
		w, h := EffectiveSize(tank, tt.rot)
		assert.Equal(t, tt.w, w, "rot %d", tt.rot)
		assert.Equal(t, tt.h, h, "rot %d", tt.rot)
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	assert.True(t, a.Overlaps(Rect{X: 1, Y: 1, W: 2, H: 2}))
	assert.False(t, a.Overlaps(Rect{X: 2, Y: 0, W: 1, H: 1}), "touching right edge")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 2, W: 1, H: 1}), "touching bottom edge")
	assert.False(t, a.Overlaps(Rect{X: 2, Y: 2, W: 1, H: 1}), "diagonal")
}

func TestRect_Ring(t *testing.T) {
	ring := Rect{X: 1, Y: 1, W: 2, H: 1}.Ring()
	assert.ElementsMatch(t, []Cell{
		{1, 0}, {2, 0}, // above
		{1, 2}, {2, 2}, // below
		{0, 1}, {3, 1}, // sides
	}, ring)
}

func TestGrid_CanPlace(t *testing.T) {
	g := New(5, 7)
	items := []PlacedItem{placed("a", box("a", 2, 2), 1, 1, Rot0)}

	tests := []struct {
		name       string
		exclude    string
		x, y, w, h int
		want       bool
	}{
		{"free corner", "", 0, 0, 1, 1, true},
		{"overlap", "", 2, 2, 1, 1, false},
		{"adjacent", "", 3, 1, 2, 2, true},
		{"negative x", "", -1, 0, 1, 1, false},
		{"past right", "", 4, 0, 2, 1, false},
		{"past bottom", "", 0, 6, 1, 2, false},
		{"exact fit", "", 0, 3, 5, 4, true},
		{"excluded self", "a", 1, 1, 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.CanPlace(items, tt.exclude, tt.x, tt.y, tt.w, tt.h))
		})
	}
}

func TestGrid_FindFirstFit_RowMajor(t *testing.T) {
	g := New(3, 3)
	items := []PlacedItem{
		placed("a", box("a", 1, 1), 0, 0, Rot0),
		placed("b", box("b", 1, 1), 2, 0, Rot0),
	}

	x, y, ok := g.FindFirstFit(items, 1, 1)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})

	x, y, ok = g.FindFirstFit(items, 2, 1)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{x, y})

	_, _, ok = g.FindFirstFit(items, 4, 1)
	assert.False(t, ok)
}

func TestGrid_PlaceFirstFit_Full(t *testing.T) {
	g := New(2, 1)
	items := []PlacedItem{placed("a", box("a", 2, 1), 0, 0, Rot0)}

	out, _, err := g.PlaceFirstFit(items, placed("b", box("b", 1, 1), 0, 0, Rot0))
	require.ErrorIs(t, err, ErrNoFit)
	assert.Len(t, out, 1)
}

func TestGrid_Place_Rejects(t *testing.T) {
	g := New(5, 7)
	items := []PlacedItem{placed("a", box("a", 1, 1), 0, 0, Rot0)}

	_, err := g.Place(items, placed("b", box("b", 1, 1), 0, 0, Rot0))
	require.ErrorIs(t, err, ErrPlacementRejected)

	_, err = g.Place(items, placed("a", box("a", 1, 1), 3, 3, Rot0))
	require.ErrorIs(t, err, ErrPlacementRejected)

	out, err := g.Place(items, placed("b", box("b", 1, 1), 1, 0, Rot0))
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Len(t, items, 1, "input must not grow")
}

func TestGrid_Move(t *testing.T) {
	g := New(5, 7)
	items := []PlacedItem{
		placed("a", box("a", 1, 1), 0, 0, Rot0),
		placed("b", box("b", 2, 1), 2, 0, Rot0),
	}

	out, err := g.Move(items, "a", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out[0].Y)
	assert.Equal(t, 0, items[0].Y, "input untouched")

	_, err = g.Move(items, "a", 3, 0)
	assert.ErrorIs(t, err, ErrPlacementRejected)

	// overlapping its own old footprint is fine
	out, err = g.Move(items, "b", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, out[1].X)

	_, err = g.Move(items, "zzz", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestGrid_Rotate_ClampsToBounds(t *testing.T) {
	g := New(5, 7)
	// 1x2 at the right edge: rotating to 2x1 must clamp x from 4 to 3
	items := []PlacedItem{placed("a", box("a", 1, 2), 4, 0, Rot0)}

	out, err := g.Rotate(items, "a")
	require.NoError(t, err)
	assert.Equal(t, Rot90, out[0].Rotation)
	assert.Equal(t, Rect{X: 3, Y: 0, W: 2, H: 1}, out[0].Rect())
}

func TestGrid_Rotate_RejectedOnCollision(t *testing.T) {
	g := New(5, 7)
	items := []PlacedItem{
		placed("a", box("a", 2, 1), 0, 0, Rot0),
		placed("b", box("b", 1, 1), 0, 1, Rot0),
	}

	out, err := g.Rotate(items, "a")
	require.ErrorIs(t, err, ErrPlacementRejected)
	assert.Equal(t, items, out)
	assert.Equal(t, Rot0, out[0].Rotation)
}

func TestGrid_Rotate_FullCycle(t *testing.T) {
	g := New(5, 7)
	items := []PlacedItem{placed("a", box("a", 2, 1), 1, 1, Rot0)}

	var err error
	for i := 0; i < 4; i++ {
		items, err = g.Rotate(items, "a")
		require.NoError(t, err)
	}
	assert.Equal(t, Rot0, items[0].Rotation)
	assert.Equal(t, Rect{X: 1, Y: 1, W: 2, H: 1}, items[0].Rect())
}

func TestGrid_Validate(t *testing.T) {
	g := New(5, 7)
	ok := []PlacedItem{
		placed("a", box("a", 2, 2), 0, 0, Rot0),
		placed("b", box("b", 2, 1), 2, 0, Rot90),
	}
	require.NoError(t, g.Validate(ok))

	bad := append(Clone(ok), placed("c", box("c", 1, 1), 1, 1, Rot0))
	assert.ErrorIs(t, g.Validate(bad), ErrPlacementRejected)

	out := []PlacedItem{placed("d", box("d", 2, 1), 4, 0, Rot0)}
	assert.ErrorIs(t, g.Validate(out), ErrPlacementRejected)
}

func TestGrid_Occupancy(t *testing.T) {
	g := New(5, 7)
	occ := g.Occupancy([]PlacedItem{placed("a", box("a", 2, 1), 1, 2, Rot90)})
	assert.Equal(t, map[Cell]string{{1, 2}: "a", {1, 3}: "a"}, occ)
}

func TestRemove(t *testing.T) {
	items := []PlacedItem{
		placed("a", box("a", 1, 1), 0, 0, Rot0),
		placed("b", box("b", 1, 1), 1, 0, Rot0),
	}
	out, removed, ok := Remove(items, "a")
	require.True(t, ok)
	assert.Equal(t, "a", removed.ID)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
	assert.Len(t, items, 2)

	_, _, ok = Remove(items, "zzz")
	assert.False(t, ok)
}

// Random sequences of placements, moves and rotations never break the layout invariant.
func TestGrid_NeverOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(rapid.IntRange(1, 8).Draw(t, "w"), rapid.IntRange(1, 8).Draw(t, "h"))
		var items []PlacedItem
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch op := rapid.IntRange(0, 2).Draw(t, "op"); {
			case op == 0 || len(items) == 0:
				it := box("x", rapid.IntRange(1, 3).Draw(t, "iw"), rapid.IntRange(1, 3).Draw(t, "ih"))
				p := placed(fmt.Sprintf("p%d", i), it,
					rapid.IntRange(-1, g.W).Draw(t, "x"), rapid.IntRange(-1, g.H).Draw(t, "y"),
					rapid.SampledFrom([]Rotation{Rot0, Rot90, Rot180, Rot270}).Draw(t, "rot"))
				if out, err := g.Place(items, p); err == nil {
					items = out
				}
			case op == 1:
				target := rapid.SampledFrom(items).Draw(t, "moved")
				if out, err := g.Move(items, target.ID,
					rapid.IntRange(-1, g.W).Draw(t, "mx"), rapid.IntRange(-1, g.H).Draw(t, "my")); err == nil {
					items = out
				}
			default:
				target := rapid.SampledFrom(items).Draw(t, "rotated")
				if out, err := g.Rotate(items, target.ID); err == nil {
					items = out
				}
			}
			if err := g.Validate(items); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	})
}

// Two quarter turns cover the same cells as one half turn whenever no clamping kicks in.
func TestGrid_RotationComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(8, 8)
		it := box("x", rapid.IntRange(1, 4).Draw(t, "iw"), rapid.IntRange(1, 4).Draw(t, "ih"))
		start := rapid.SampledFrom([]Rotation{Rot0, Rot90, Rot180, Rot270}).Draw(t, "rot")
		side := max(it.Width, it.Height)
		x := rapid.IntRange(0, g.W-side).Draw(t, "x")
		y := rapid.IntRange(0, g.H-side).Draw(t, "y")
		items := []PlacedItem{placed("p", it, x, y, start)}

		twice, err := g.Rotate(items, "p")
		if err != nil {
			t.Fatalf("first rotate: %v", err)
		}
		twice, err = g.Rotate(twice, "p")
		if err != nil {
			t.Fatalf("second rotate: %v", err)
		}

		half := placed("p", it, x, y, (start+Rot180)%360)
		if twice[0].Rect() != half.Rect() {
			t.Fatalf("two quarter turns %+v != half turn %+v", twice[0].Rect(), half.Rect())
		}
		if twice[0].Rotation != half.Rotation {
			t.Fatalf("rotation %d != %d", twice[0].Rotation, half.Rotation)
		}
	})
}
