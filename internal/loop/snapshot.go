package loop

import (
	"github.com/tomz197/polyroids/internal/geom"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/scores"
)

// ShipView is what a renderer needs to draw the ship.
type ShipView struct {
	X, Y         float64
	Heading      float64
	Visible      bool
	SpriteWidth  float64
	SpriteHeight float64
}

// Snapshot is a read-only copy of everything drawn in one frame.
type Snapshot struct {
	Field        object.Field
	Ship         ShipView
	Asteroids    []geom.Polygon
	Projectiles  []geom.Point
	Score        int
	Lives        int
	TopScores    []scores.Record
	Phase        Phase
	Dialog       Dialog
	Invulnerable bool
	Notice       string
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Field: g.field,
		Ship: ShipView{
			X:            g.ship.X,
			Y:            g.ship.Y,
			Heading:      g.ship.Heading,
			Visible:      g.shipVisible,
			SpriteWidth:  g.ship.SpriteWidth,
			SpriteHeight: g.ship.SpriteHeight,
		},
		Asteroids:    make([]geom.Polygon, len(g.asteroids)),
		Projectiles:  make([]geom.Point, len(g.ship.Projectiles)),
		Score:        g.score,
		Lives:        g.lives,
		Phase:        g.phase,
		Dialog:       g.dialog,
		Invulnerable: g.invulnerable,
		Notice:       g.notice,
	}
	for i, a := range g.asteroids {
		s.Asteroids[i] = a.Outline()
	}
	for i, p := range g.ship.Projectiles {
		s.Projectiles[i] = geom.Point{X: p.X, Y: p.Y}
	}
	if g.ledger != nil {
		s.TopScores = g.ledger.Top(g.topShown)
	}
	return s
}
