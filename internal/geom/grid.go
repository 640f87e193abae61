package geom

import (
	"math"
	"slices"
)

// Grid is a uniform grid for broad-phase collision detection over the play field.
// Items are inserted by bounding box and identified by index; queries return
// every index whose box shares a cell with the query box.
//
// Coordinates outside the field are clamped into the edge cells, so shapes
// that drift past an edge are still found by queries near that edge.
type Grid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that overlap a grid cell.
// The slice is reused between ticks (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewGrid creates a grid covering a field of the given dimensions.
func NewGrid(fieldW, fieldH, cellSize float64) *Grid {
	g := &Grid{}
	g.Resize(fieldW, fieldH, cellSize)
	return g
}

// Resize rebuilds the cell layout when the field changes. Contents are cleared.
func (g *Grid) Resize(fieldW, fieldH, cellSize float64) {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(fieldW / cellSize))
	rows := int(math.Ceil(fieldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.cellSize = cellSize
	g.invCellSize = 1.0 / cellSize
	if cols != g.cols || rows != g.rows {
		g.cols = cols
		g.rows = rows
		g.cells = make([]gridCell, cols*rows)
		return
	}
	g.Clear()
}

// Dimensions returns the number of columns and rows.
func (g *Grid) Dimensions() (cols, rows int) {
	return g.cols, g.rows
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) to every cell its box covers.
func (g *Grid) Insert(r Rect, index int) {
	c0, r0 := g.posToCell(r.MinX, r.MinY)
	c1, r1 := g.posToCell(r.MaxX, r.MaxY)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
}

// Candidates appends to buf the distinct indices sharing a cell with r,
// in ascending order, and returns the extended slice.
func (g *Grid) Candidates(r Rect, buf []int) []int {
	start := len(buf)
	c0, r0 := g.posToCell(r.MinX, r.MinY)
	c1, r1 := g.posToCell(r.MaxX, r.MaxY)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			buf = append(buf, g.cells[row*g.cols+col].items...)
		}
	}
	found := buf[start:]
	slices.Sort(found)
	found = slices.Compact(found)
	return buf[:start+len(found)]
}

// posToCell converts field coordinates to grid cell coordinates.
// Clamps to valid range to handle off-field shapes and floating point edges.
func (g *Grid) posToCell(x, y float64) (col, row int) {
	col = clampIndex(int(math.Floor(x*g.invCellSize)), g.cols)
	row = clampIndex(int(math.Floor(y*g.invCellSize)), g.rows)
	return col, row
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
