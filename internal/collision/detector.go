// Package collision answers the two questions the simulation asks every
// frame: did the ship hit an asteroid, and which asteroids did its
// projectiles strike.
package collision

import (
	"slices"

	"github.com/tomz197/polyroids/internal/geom"
	"github.com/tomz197/polyroids/internal/object"
)

// defaultCellSize covers the largest asteroid box in one or two cells.
const defaultCellSize = 80.0

// Detector performs exact shape intersection tests, pruned by a broad-phase
// grid. It keeps scratch buffers between calls and is not safe for
// concurrent use; each game owns its own detector.
type Detector struct {
	grid     *geom.Grid
	cellSize float64
	origin   geom.Point
	outlines []geom.Polygon
	scratch  []int
}

// NewDetector creates a detector. A non-positive cellSize selects the default.
func NewDetector(cellSize float64) *Detector {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &Detector{
		grid:     geom.NewGrid(1, 1, cellSize),
		cellSize: cellSize,
	}
}

// ShipShape returns the ship's collision triangle.
func ShipShape(s *object.Ship) geom.Shape { return s.Outline() }

// AsteroidShape returns the asteroid's heptagon.
func AsteroidShape(a *object.Asteroid) geom.Shape { return a.Outline() }

// ProjectileShape returns the disc of a projectile.
func ProjectileShape(p *object.Projectile) geom.Shape { return p.Outline() }

// CheckCollision reports whether the ship's shape overlaps any asteroid.
func (d *Detector) CheckCollision(ship *object.Ship, asteroids []*object.Asteroid) bool {
	hull := ShipShape(ship)
	for _, a := range asteroids {
		if geom.Intersects(hull, AsteroidShape(a)) {
			return true
		}
	}
	return false
}

// CheckProjectileCollisions finds the asteroids struck by the ship's
// projectiles. Each projectile strikes at most the first asteroid (in slice
// order) it overlaps and is removed from the ship. An asteroid struck by
// several projectiles is reported once; results are in first-strike order.
func (d *Detector) CheckProjectileCollisions(ship *object.Ship, asteroids []*object.Asteroid) []*object.Asteroid {
	if len(ship.Projectiles) == 0 || len(asteroids) == 0 {
		return nil
	}

	d.index(asteroids)

	var struck []*object.Asteroid
	kept := ship.Projectiles[:0]
	for _, p := range ship.Projectiles {
		hit := d.firstHit(ProjectileShape(p))
		if hit < 0 {
			kept = append(kept, p)
			continue
		}
		a := asteroids[hit]
		if !slices.Contains(struck, a) {
			struck = append(struck, a)
		}
	}
	clear(ship.Projectiles[len(kept):])
	ship.Projectiles = kept

	return struck
}

// index rebuilds the grid from the current asteroid outlines. The grid
// covers the span of the asteroids themselves so it needs no field bounds.
func (d *Detector) index(asteroids []*object.Asteroid) {
	d.outlines = d.outlines[:0]
	var span geom.Rect
	for i, a := range asteroids {
		o := a.Outline()
		d.outlines = append(d.outlines, o)
		b := o.Bounds()
		if i == 0 {
			span = b
			continue
		}
		span.MinX = min(span.MinX, b.MinX)
		span.MinY = min(span.MinY, b.MinY)
		span.MaxX = max(span.MaxX, b.MaxX)
		span.MaxY = max(span.MaxY, b.MaxY)
	}

	d.grid.Resize(span.MaxX-span.MinX, span.MaxY-span.MinY, d.cellSize)
	origin := geom.Point{X: span.MinX, Y: span.MinY}
	for i, o := range d.outlines {
		d.grid.Insert(shift(o.Bounds(), origin), i)
	}
	d.origin = origin
}

// firstHit returns the lowest asteroid index whose outline overlaps s, or -1.
func (d *Detector) firstHit(s geom.Shape) int {
	d.scratch = d.grid.Candidates(shift(s.Bounds(), d.origin), d.scratch[:0])
	for _, i := range d.scratch {
		if geom.Intersects(s, d.outlines[i]) {
			return i
		}
	}
	return -1
}

func shift(r geom.Rect, origin geom.Point) geom.Rect {
	return geom.Rect{
		MinX: r.MinX - origin.X,
		MinY: r.MinY - origin.Y,
		MaxX: r.MaxX - origin.X,
		MaxY: r.MaxY - origin.Y,
	}
}
