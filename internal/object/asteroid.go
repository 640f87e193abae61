package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/geom"
)

// AsteroidClass represents the size category of an asteroid.
type AsteroidClass int

// Class values follow the order in which the spawner draws them.
const (
	AsteroidSmall AsteroidClass = iota
	AsteroidMedium
	AsteroidLarge
)

func (c AsteroidClass) String() string {
	switch c {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	}
	return "unknown"
}

// SizeRange returns the half-open interval [lo, hi) from which width and
// height of a freshly spawned asteroid of this class are drawn.
func (c AsteroidClass) SizeRange() (lo, hi int) {
	switch c {
	case AsteroidMedium:
		return 40, 60
	case AsteroidLarge:
		return 60, 80
	}
	return 20, 40
}

// Asteroid is a drifting rock. Position is the top-left corner of its
// bounding box.
type Asteroid struct {
	X, Y          float64
	Width, Height float64
	Heading       float64 // Radians, 0 = +X, growing towards +Y
	Class         AsteroidClass
}

// NewAsteroid creates an asteroid of the given class and box.
func NewAsteroid(x, y, w, h, heading float64, class AsteroidClass) *Asteroid {
	return &Asteroid{
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Heading: heading,
		Class:   class,
	}
}

// RandomHeading draws a direction uniformly from [0, 2π).
func RandomHeading(rng Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// Move advances the asteroid and wraps it. An asteroid only reappears on the
// far side once its whole box has left through the left or top edge, but as
// soon as its corner crosses the right or bottom edge.
func (a *Asteroid) Move(speed float64, field Field) {
	d := geom.DirectionDelta(a.Heading, speed)
	a.X += d.X
	a.Y += d.Y

	if a.X < -a.Width {
		a.X = field.Width
	} else if a.X > field.Width {
		a.X = 0
	}
	if a.Y < -a.Height {
		a.Y = field.Height
	} else if a.Y > field.Height {
		a.Y = 0
	}
}

// Outline returns the heptagon used both for drawing and hit-testing.
func (a *Asteroid) Outline() geom.Polygon {
	x, y, w, h := a.X, a.Y, a.Width, a.Height
	return geom.Polygon{
		{X: x, Y: y + h/2},
		{X: x + w/3, Y: y},
		{X: x + w, Y: y + h/3},
		{X: x + w, Y: y + 2*h/3},
		{X: x + 2*w/3, Y: y + h},
		{X: x + w/2, Y: y + h},
		{X: x, Y: y + h},
	}
}
