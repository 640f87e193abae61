package collision

import (
	"slices"
	"testing"

	"github.com/tomz197/polyroids/internal/geom"
	"github.com/tomz197/polyroids/internal/object"
)

var field = object.Field{Width: 800, Height: 600}

func newShip() *object.Ship {
	// Collision triangle spans (380..420, 279.2..320.8).
	return object.NewShip(object.DefaultShipParams(), field)
}

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name      string
		asteroids []*object.Asteroid
		expected  bool
	}{
		{"no asteroids", nil, false},
		{"far away", []*object.Asteroid{object.NewAsteroid(10, 10, 40, 40, 0, object.AsteroidMedium)}, false},
		{"covering the ship", []*object.Asteroid{object.NewAsteroid(370, 270, 60, 60, 0, object.AsteroidLarge)}, true},
		{"second of two", []*object.Asteroid{
			object.NewAsteroid(10, 10, 40, 40, 0, object.AsteroidMedium),
			object.NewAsteroid(410, 310, 30, 30, 0, object.AsteroidSmall),
		}, true},
		// Box overlaps the triangle's box but the heptagon's cut top-left
		// corner keeps clear of the right wing.
		{"bounding boxes only", []*object.Asteroid{object.NewAsteroid(415, 316, 30, 30, 0, object.AsteroidSmall)}, false},
	}

	d := NewDetector(0)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.CheckCollision(newShip(), tc.asteroids); got != tc.expected {
				t.Errorf("CheckCollision = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShipAsteroidIntersectionIsSymmetric(t *testing.T) {
	ship := newShip()
	for x := 300.0; x <= 460; x += 7 {
		for y := 220.0; y <= 360; y += 7 {
			a := object.NewAsteroid(x, y, 35, 25, 0, object.AsteroidSmall)
			ab := geom.Intersects(ShipShape(ship), AsteroidShape(a))
			ba := geom.Intersects(AsteroidShape(a), ShipShape(ship))
			if ab != ba {
				t.Fatalf("asymmetric result at (%v, %v): %v vs %v", x, y, ab, ba)
			}
		}
	}
}

func TestCheckProjectileCollisions(t *testing.T) {
	d := NewDetector(0)
	ship := newShip()

	first := object.NewAsteroid(100, 100, 60, 60, 0, object.AsteroidLarge)
	// Overlaps first; a shot in the overlap strikes only the earlier one.
	second := object.NewAsteroid(120, 120, 60, 60, 0, object.AsteroidLarge)
	third := object.NewAsteroid(600, 400, 30, 30, 0, object.AsteroidSmall)
	asteroids := []*object.Asteroid{first, second, third}

	overlap := object.NewProjectile(140, 140, 0, 20)
	onThird := object.NewProjectile(610, 410, 0, 20)
	twiceFirst := object.NewProjectile(110, 140, 0, 20)
	miss := object.NewProjectile(500, 50, 0, 20)
	ship.Projectiles = []*object.Projectile{overlap, onThird, twiceFirst, miss}

	struck := d.CheckProjectileCollisions(ship, asteroids)

	if !slices.Equal(struck, []*object.Asteroid{first, third}) {
		t.Errorf("struck = %v, expected [first third]", struck)
	}
	if !slices.Equal(ship.Projectiles, []*object.Projectile{miss}) {
		t.Errorf("remaining projectiles = %v, expected only the miss", ship.Projectiles)
	}
	if len(asteroids) != 3 {
		t.Errorf("detector must not modify the asteroid list")
	}
}

func TestCheckProjectileCollisionsOffField(t *testing.T) {
	d := NewDetector(0)
	ship := newShip()

	// Asteroid drifting in from the left edge.
	a := object.NewAsteroid(-50, 200, 40, 40, 0, object.AsteroidMedium)
	p := object.NewProjectile(-40, 215, 0, 20)
	ship.Projectiles = []*object.Projectile{p}

	struck := d.CheckProjectileCollisions(ship, []*object.Asteroid{a})
	if len(struck) != 1 || struck[0] != a {
		t.Errorf("struck = %v, expected the off-field asteroid", struck)
	}
}

func TestCheckProjectileCollisionsEmpty(t *testing.T) {
	d := NewDetector(0)
	ship := newShip()
	ship.Shoot()

	if struck := d.CheckProjectileCollisions(ship, nil); struck != nil {
		t.Errorf("struck = %v with no asteroids", struck)
	}
	if len(ship.Projectiles) != 1 {
		t.Errorf("projectile removed without a hit")
	}
}
