package object

import "github.com/tomz197/polyroids/internal/geom"

// ShipParams are the tunable handling characteristics of a ship.
type ShipParams struct {
	MaxSpeed        float64
	AccelRate       float64
	RotationStep    float64 // Degrees per rotation request
	Drag            float64 // Speed multiplier applied after every move
	ProjectileSpeed float64
	SpriteWidth     float64
	SpriteHeight    float64
}

// DefaultShipParams returns the stock handling of the ship.
func DefaultShipParams() ShipParams {
	return ShipParams{
		MaxSpeed:        8,
		AccelRate:       1,
		RotationStep:    6,
		Drag:            0.99,
		ProjectileSpeed: 20,
		SpriteWidth:     480,
		SpriteHeight:    416,
	}
}

// Ship is the player-controlled craft. Heading is a compass bearing in
// degrees: 0 points up and angles grow clockwise. The ship owns its
// projectiles exclusively.
type Ship struct {
	X, Y        float64 // Centre of the ship
	Heading     float64 // Always in [0, 360)
	Speed       float64 // Always in [0, MaxSpeed]
	Projectiles []*Projectile

	ShipParams
}

// NewShip creates a ship resting at the centre of the field.
func NewShip(params ShipParams, field Field) *Ship {
	s := &Ship{ShipParams: params}
	s.Reset(field)
	return s
}

// Reset puts the ship back at its spawn state: centre of the field, at rest,
// pointing up, with no projectiles in flight.
func (s *Ship) Reset(field Field) {
	c := field.Center()
	s.X, s.Y = c.X, c.Y
	s.Heading = 0
	s.Speed = 0
	s.Projectiles = nil
}

// Move advances the ship along its heading, wraps it around the field and
// then applies drag.
func (s *Ship) Move(field Field) {
	d := geom.HeadingDelta(s.Heading, s.Speed)
	s.X += d.X
	s.Y += d.Y

	if s.X < 0 {
		s.X = field.Width
	} else if s.X > field.Width {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = field.Height
	} else if s.Y > field.Height {
		s.Y = 0
	}

	s.Speed *= s.Drag
}

// Accelerate increases speed by the acceleration rate, up to MaxSpeed.
func (s *Ship) Accelerate() {
	s.Speed = min(s.Speed+s.AccelRate, s.MaxSpeed)
}

// Decelerate reduces speed by a tenth of the acceleration rate, down to zero.
func (s *Ship) Decelerate() {
	s.Speed = max(s.Speed-s.AccelRate/10, 0)
}

// RotateLeft turns the ship counter-clockwise by one rotation step.
func (s *Ship) RotateLeft() {
	s.Heading = geom.WrapDegrees(s.Heading - s.RotationStep)
}

// RotateRight turns the ship clockwise by one rotation step.
func (s *Ship) RotateRight() {
	s.Heading = geom.WrapDegrees(s.Heading + s.RotationStep)
}

// Hyperspace relocates the ship to a uniformly random point of the field.
// Speed and heading are kept.
func (s *Ship) Hyperspace(field Field, rng Rand) {
	s.X = rng.Float64() * field.Width
	s.Y = rng.Float64() * field.Height
}

// Shoot launches a projectile from the ship centre along the current heading.
func (s *Ship) Shoot() *Projectile {
	p := NewProjectile(s.X, s.Y, s.Heading, s.ProjectileSpeed)
	s.Projectiles = append(s.Projectiles, p)
	return p
}

// MoveProjectiles advances every projectile and drops those that left the field.
func (s *Ship) MoveProjectiles(field Field) {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		p.Move()
		if p.Outside(field) {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
}

// RemoveProjectile drops p from the ship. It reports whether p was found.
func (s *Ship) RemoveProjectile(p *Projectile) bool {
	for i, q := range s.Projectiles {
		if q == p {
			s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
			return true
		}
	}
	return false
}

// Outline returns the collision triangle of the ship. The triangle is sized
// from the sprite and does not turn with the heading.
func (s *Ship) Outline() geom.Polygon {
	dx := s.SpriteWidth / 24
	dy := s.SpriteHeight / 20
	return geom.Polygon{
		{X: s.X, Y: s.Y - dy},
		{X: s.X - dx, Y: s.Y + dy},
		{X: s.X + dx, Y: s.Y + dy},
	}
}
