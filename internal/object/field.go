// Package object holds the entity models of the simulation: the ship, its
// projectiles and the asteroids, together with the field they move in.
package object

import "github.com/tomz197/polyroids/internal/geom"

// Field is the rectangular play area. Every entity wraps or exits against
// the bounds current at the time it moves.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the midpoint of the field.
func (f Field) Center() geom.Point {
	return geom.Point{X: f.Width / 2, Y: f.Height / 2}
}

// Contains reports whether (x, y) lies within [0,W]x[0,H].
func (f Field) Contains(x, y float64) bool {
	return x >= 0 && x <= f.Width && y >= 0 && y <= f.Height
}

// Rand is the source of every stochastic choice in the simulation.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
