// Package loop runs the asteroid simulation: three ordered ticks per frame
// (obstacles, ship, collisions), the spawn and split policies and the
// life/acknowledgement state machine.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/collision"
	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/scores"
)

// Tick handler names, in dispatch order.
const (
	TickObstacles  = "obstacles"
	TickShip       = "ship"
	TickCollisions = "collisions"
)

// Deps are the collaborators of a Game. Zero values select defaults: a
// time-seeded source, the wall clock, no ledger and a discarding logger.
type Deps struct {
	Field  object.Field
	Rand   object.Rand
	Clock  Clock
	Ledger *scores.Ledger
	Player string
	Logger *log.Logger
}

// Game is one running simulation. It is not safe for concurrent use: input,
// Step and Snapshot must all be called from the goroutine driving the game.
type Game struct {
	cfg      config.Simulation
	sched    *Scheduler
	detector *collision.Detector
	rng      object.Rand
	logger   *log.Logger

	field     object.Field
	ship      *object.Ship
	asteroids []*object.Asteroid
	controls  Controls

	score  int
	lives  int
	phase  Phase
	dialog Dialog

	invulnerable bool
	shipVisible  bool
	invTimer     *Timer

	ledger   *scores.Ledger
	player   string
	topShown int
	notice   string
}

// NewGame creates a game with a centred ship, no asteroids and full lives.
func NewGame(cfg config.Settings, deps Deps) *Game {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Clock == nil {
		deps.Clock = RealClock{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:         cfg.Simulation,
		sched:       NewScheduler(deps.Clock, cfg.Simulation.TickInterval, cfg.Simulation.CatchUpFrames),
		detector:    collision.NewDetector(cfg.Simulation.GridCellSize),
		rng:         deps.Rand,
		logger:      deps.Logger,
		field:       deps.Field,
		controls:    newControls(),
		lives:       cfg.Simulation.Lives,
		phase:       PhaseRunning,
		shipVisible: true,
		ledger:      deps.Ledger,
		player:      deps.Player,
		topShown:    cfg.Ledger.TopShown,
	}
	g.ship = object.NewShip(shipParams(cfg.Ship), g.field)

	g.sched.Register(TickObstacles, g.tickObstacles)
	g.sched.Register(TickShip, g.tickShip)
	g.sched.Register(TickCollisions, g.tickCollisions)
	return g
}

func shipParams(s config.Ship) object.ShipParams {
	return object.ShipParams{
		MaxSpeed:        s.MaxSpeed,
		AccelRate:       s.Acceleration,
		RotationStep:    s.RotationStep,
		Drag:            s.Drag,
		ProjectileSpeed: s.ProjectileSpeed,
		SpriteWidth:     s.SpriteWidth,
		SpriteHeight:    s.SpriteHeight,
	}
}

// Step runs every due frame and timer. It returns the number of frames run.
func (g *Game) Step() int {
	return g.sched.Step()
}

// SetField changes the play area. Entities keep their positions; the new
// bounds apply from the next tick.
func (g *Game) SetField(w, h float64) {
	if g.field.Width == w && g.field.Height == h {
		return
	}
	g.field = object.Field{Width: w, Height: h}
	g.logger.Debug("field resized", "width", w, "height", h)
}

// Field returns the current play area.
func (g *Game) Field() object.Field {
	return g.field
}

// KeyDown applies a key press. Presses are ignored while a dialog is
// pending.
func (g *Game) KeyDown(k Key) {
	if g.phase != PhaseRunning {
		return
	}
	if g.controls.KeyDown(k) {
		g.ship.Shoot()
	}
}

// KeyUp applies a key release.
func (g *Game) KeyUp(k Key) {
	g.controls.KeyUp(k)
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Pending returns the dialog awaiting acknowledgement, if any.
func (g *Game) Pending() Dialog { return g.dialog }

// Invulnerable reports whether ship hit-testing is suppressed.
func (g *Game) Invulnerable() bool { return g.invulnerable }

// Ship returns the player ship.
func (g *Game) Ship() *object.Ship { return g.ship }

// tickObstacles moves every asteroid, then maybe spawns one.
func (g *Game) tickObstacles() {
	for _, a := range g.asteroids {
		a.Move(g.cfg.AsteroidSpeed, g.field)
	}
	g.spawnIfRequired()
}

// tickShip applies held controls, then moves the ship and its projectiles.
func (g *Game) tickShip() {
	s := g.ship
	if g.controls.Left {
		s.RotateLeft()
	}
	if g.controls.Right {
		s.RotateRight()
	}
	if g.controls.Thrust {
		s.Accelerate()
	}
	if g.controls.Decelerating() && s.Speed > 0 {
		s.Decelerate()
	}
	if g.controls.Hyperspace {
		s.Hyperspace(g.field, g.rng)
	}
	s.Move(g.field)
	s.MoveProjectiles(g.field)
}

// tickCollisions tests the ship, then the projectiles. A ship hit pauses the
// game and skips projectile handling for this tick.
func (g *Game) tickCollisions() {
	if !g.invulnerable && g.detector.CheckCollision(g.ship, g.asteroids) {
		g.shipHit()
		return
	}
	for _, a := range g.detector.CheckProjectileCollisions(g.ship, g.asteroids) {
		g.splitAsteroid(a)
	}
}
