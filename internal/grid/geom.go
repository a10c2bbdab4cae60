package grid

// Rect is a cell rectangle; it covers [X, X+W) × [Y, Y+H).
type Rect struct{ X, Y, W, H int }

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Overlaps uses half-open intervals: touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Cells() []Cell {
	out := make([]Cell, 0, r.W*r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

// Ring lists the cells one step outside each edge, without diagonals.
func (r Rect) Ring() []Cell {
	out := make([]Cell, 0, 2*(r.W+r.H))
	for x := r.X; x < r.Right(); x++ {
		out = append(out, Cell{X: x, Y: r.Y - 1}, Cell{X: x, Y: r.Bottom()})
	}
	for y := r.Y; y < r.Bottom(); y++ {
		out = append(out, Cell{X: r.X - 1, Y: y}, Cell{X: r.Right(), Y: y})
	}
	return out
}

type Cell struct{ X, Y int }
