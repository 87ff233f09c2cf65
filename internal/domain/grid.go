package domain

// MinGridSide and MaxGridSide bound grid dimensions accepted for storage.
// The drawing UI is far tighter (two fixed widths, height 1–13), but the
// submission contract allows anything inside these bounds.
const (
	MinGridSide = 1
	MaxGridSide = 100
)

// Dimensions is the bounding rectangle of a drawing grid.
type Dimensions struct {
	Width  int
	Height int
}

// Valid reports whether both sides are within the storage bounds.
func (d Dimensions) Valid() bool {
	return d.Width >= MinGridSide && d.Width <= MaxGridSide &&
		d.Height >= MinGridSide && d.Height <= MaxGridSide
}

// Cell addresses a single grid cell. Two cells are equal iff both
// row and column match.
type Cell struct {
	Row int
	Col int
}

// Grid is the sparse set of filled cells of a drawing. It carries no
// bounds of its own; the owning session keeps it consistent with the
// current Dimensions via Resize. Pure data, no I/O, no errors.
type Grid struct {
	cells map[Cell]struct{}
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Cell]struct{})}
}

// Toggle flips membership of the cell. Callers are responsible for not
// toggling coordinates outside the current dimensions.
func (g *Grid) Toggle(c Cell) {
	if _, ok := g.cells[c]; ok {
		delete(g.cells, c)
		return
	}
	g.cells[c] = struct{}{}
}

// Filled reports whether the cell is currently filled.
func (g *Grid) Filled(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Resize drops every cell that falls outside the new dimensions and keeps
// the rest untouched. Growing preserves all existing art; shrinking clips
// anything beyond the new bounds. No interpolation or scaling.
func (g *Grid) Resize(dims Dimensions) {
	for c := range g.cells {
		if c.Row >= dims.Height || c.Col >= dims.Width {
			delete(g.cells, c)
		}
	}
}

// Clear empties the grid unconditionally.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	return len(g.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := make(map[Cell]struct{}, len(g.cells))
	for c := range g.cells {
		cp[c] = struct{}{}
	}
	return &Grid{cells: cp}
}
