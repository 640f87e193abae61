package object

import "github.com/tomz197/polyroids/internal/geom"

// ProjectileSize is the side of the box a projectile occupies.
const ProjectileSize = 5.0

// Projectile is a shot fired by the ship. It travels in a straight line at
// a fixed speed along the heading it was launched with.
type Projectile struct {
	X, Y    float64 // Top-left of the projectile box
	Speed   float64
	Heading float64 // Degrees, 0 = up, clockwise
}

// NewProjectile creates a projectile at (x, y) travelling along heading.
func NewProjectile(x, y, heading, speed float64) *Projectile {
	return &Projectile{
		X:       x,
		Y:       y,
		Speed:   speed,
		Heading: heading,
	}
}

// Move advances the projectile by one tick. Projectiles never decay.
func (p *Projectile) Move() {
	d := geom.HeadingDelta(p.Heading, p.Speed)
	p.X += d.X
	p.Y += d.Y
}

// Outside reports whether the projectile has left the field on either axis.
func (p *Projectile) Outside(field Field) bool {
	return !field.Contains(p.X, p.Y)
}

// Outline returns the disc inscribed in the projectile box.
func (p *Projectile) Outline() geom.Circle {
	const r = ProjectileSize / 2
	return geom.Circle{
		Center: geom.Point{X: p.X + r, Y: p.Y + r},
		Radius: r,
	}
}
