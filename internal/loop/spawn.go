package loop

import "github.com/tomz197/polyroids/internal/object"

// Spawn edges, in the order they are drawn.
const (
	edgeTop = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// spawnIfRequired adds one asteroid at a random field edge, unless the field
// is full or the skip chance withholds it this tick.
func (g *Game) spawnIfRequired() {
	if len(g.asteroids) >= g.cfg.MaxAsteroids || g.rng.Float64() < g.cfg.SpawnSkipChance {
		return
	}

	w, h := g.field.Width, g.field.Height
	var x, y float64
	switch g.rng.Intn(4) {
	case edgeTop:
		x, y = g.along(w), -g.cfg.SpawnOffset
	case edgeBottom:
		x, y = g.along(w), h
	case edgeLeft:
		x, y = -g.cfg.SpawnOffset, g.along(h)
	case edgeRight:
		x, y = w, g.along(h)
	}

	class := object.AsteroidClass(g.rng.Intn(3))
	lo, hi := class.SizeRange()
	width := float64(lo + g.rng.Intn(hi-lo))
	height := float64(lo + g.rng.Intn(hi-lo))

	a := object.NewAsteroid(x, y, width, height, object.RandomHeading(g.rng), class)
	g.asteroids = append(g.asteroids, a)
	g.logger.Debug("asteroid spawned", "class", class, "x", x, "y", y)
}

// along draws an integer position in [0, extent).
func (g *Game) along(extent float64) float64 {
	return float64(g.rng.Intn(max(int(extent), 1)))
}
