package loop

import (
	"slices"

	"github.com/tomz197/polyroids/internal/object"
)

// Points awarded per split event.
const (
	ScoreLargeAsteroid  = 25
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// fragmentsPerSplit is the number of smaller asteroids a split produces.
const fragmentsPerSplit = 2

// splitAsteroid removes a struck asteroid, awards its points and replaces it
// with two fragments of the next smaller class at the same position, each
// half its size and with its own heading. Small asteroids leave nothing.
func (g *Game) splitAsteroid(a *object.Asteroid) {
	i := slices.Index(g.asteroids, a)
	if i < 0 {
		return
	}
	g.asteroids = slices.Delete(g.asteroids, i, i+1)

	var next object.AsteroidClass
	switch a.Class {
	case object.AsteroidLarge:
		g.score += ScoreLargeAsteroid
		next = object.AsteroidMedium
	case object.AsteroidMedium:
		g.score += ScoreMediumAsteroid
		next = object.AsteroidSmall
	case object.AsteroidSmall:
		g.score += ScoreSmallAsteroid
		return
	default:
		return
	}

	for iter := 0; iter < fragmentsPerSplit; iter++ {
		g.asteroids = append(g.asteroids, object.NewAsteroid(
			a.X, a.Y, a.Width/2, a.Height/2, object.RandomHeading(g.rng), next,
		))
	}
}
