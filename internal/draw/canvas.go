// Package draw rasterizes field geometry onto a terminal using half-block
// characters, giving every cell two vertical sub-pixels.
package draw

import (
	"math"
	"slices"

	"github.com/tomz197/polyroids/internal/geom"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Canvas maps field units onto terminal sub-pixels. One terminal column is
// unitsPerCell field units wide and one sub-pixel (half a row) is
// unitsPerCell units tall. Render only writes cells that changed since the
// previous render.
type Canvas struct {
	cols, rows int
	units      float64
	pixels     []bool // [y*cols + x], y in sub-pixels
	shown      []rune // last rendered rune per cell, 0 if unknown

	intersectionBuf []float64
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int, unitsPerCell float64) *Canvas {
	c := &Canvas{units: unitsPerCell}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal dimensions and forces a full redraw.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]bool, cols*rows*2)
	c.shown = make([]rune, cols*rows)
}

// Size returns the terminal dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// FieldSize returns the field extent the canvas covers.
func (c *Canvas) FieldSize() (w, h float64) {
	return float64(c.cols) * c.units, float64(c.rows*2) * c.units
}

// Clear resets all pixels. What is on screen is untouched until Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p geom.Point) (int, int) {
	return int(math.Floor(p.X / c.units)), int(math.Floor(p.Y / c.units))
}

// Plot sets the sub-pixel containing p.
func (c *Canvas) Plot(p geom.Point) {
	c.setPixel(c.toPixel(p))
}

// Line draws a segment using Bresenham's algorithm.
func (c *Canvas) Line(p1, p2 geom.Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed outline, optionally filling the interior.
func (c *Canvas) Polygon(poly geom.Polygon, filled bool) {
	if len(poly) < 2 {
		if len(poly) == 1 {
			c.Plot(poly[0])
		}
		return
	}
	if filled {
		c.fill(poly)
	}
	for i := range poly {
		c.Line(poly[i], poly[(i+1)%len(poly)])
	}
}

// fill is a scanline fill evaluated at sub-pixel centres.
func (c *Canvas) fill(poly geom.Polygon) {
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for y := int(math.Floor(minY / c.units)); y <= int(math.Ceil(maxY/c.units)); y++ {
		scanY := (float64(y) + 0.5) * c.units
		xs := c.intersectionBuf[:0]
		for i := range poly {
			p1, p2 := poly[i], poly[(i+1)%len(poly)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i]/c.units - 0.5))
			to := int(math.Floor(xs[i+1]/c.units - 0.5))
			for x := from; x <= to; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

func (c *Canvas) cell(col, row int) rune {
	top := c.pixels[(row*2)*c.cols+col]
	bottom := c.pixels[(row*2+1)*c.cols+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	}
	return BlockEmpty
}

// Render writes the changed cells to w as cursor moves and block runes.
// Consecutive changed cells on a row share one cursor move.
func (c *Canvas) Render(w *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		cursorAt := -1
		for col := 0; col < c.cols; col++ {
			ch := c.cell(col, row)
			i := row*c.cols + col
			if c.shown[i] == ch {
				continue
			}
			c.shown[i] = ch
			if cursorAt != col {
				w.MoveCursor(col+1, row+1)
			}
			w.WriteRune(ch)
			cursorAt = col + 1
		}
	}
}

// MarkTextDirty marks a run of cells as overwritten by text so the next Render
// repaints them.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	if row < 1 || row > c.rows {
		return
	}
	for x := max(col, 1); x < col+width && x <= c.cols; x++ {
		c.shown[(row-1)*c.cols+x-1] = 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
