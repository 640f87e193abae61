package object

import (
	"math"
	"testing"
)

func TestAsteroidWrapIsAsymmetric(t *testing.T) {
	field := Field{Width: 800, Height: 600}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		// Still partly visible on the left: no wrap yet.
		{"partly off left", -30, 100, -30, 100},
		{"fully off left", -41, 100, 800, 100},
		{"corner past right", 801, 100, 0, 100},
		{"partly off top", 100, -40, 100, -40},
		{"fully off top", 100, -41, 100, 600},
		{"corner past bottom", 100, 601, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAsteroid(tc.x, tc.y, 40, 40, 0, AsteroidMedium)
			a.Move(0, field)
			if a.X != tc.wantX || a.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", a.X, a.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestAsteroidMove(t *testing.T) {
	field := Field{Width: 800, Height: 600}
	a := NewAsteroid(100, 100, 30, 30, math.Pi/2, AsteroidSmall)

	a.Move(7, field)

	if math.Abs(a.X-100) > 1e-9 || math.Abs(a.Y-107) > 1e-9 {
		t.Errorf("position = (%v, %v), expected (100, 107)", a.X, a.Y)
	}
}

func TestAsteroidOutline(t *testing.T) {
	a := NewAsteroid(10, 20, 30, 60, 0, AsteroidSmall)
	got := a.Outline()

	expected := []struct{ x, y float64 }{
		{10, 50}, {20, 20}, {40, 40}, {40, 60}, {30, 80}, {25, 80}, {10, 80},
	}
	if len(got) != len(expected) {
		t.Fatalf("outline has %d vertices, expected %d", len(got), len(expected))
	}
	for i, e := range expected {
		if math.Abs(got[i].X-e.x) > 1e-9 || math.Abs(got[i].Y-e.y) > 1e-9 {
			t.Errorf("vertex %d = %v, expected (%v, %v)", i, got[i], e.x, e.y)
		}
	}
}

func TestAsteroidClassSizeRange(t *testing.T) {
	tests := map[AsteroidClass][2]int{
		AsteroidSmall:  {20, 40},
		AsteroidMedium: {40, 60},
		AsteroidLarge:  {60, 80},
	}
	for class, want := range tests {
		lo, hi := class.SizeRange()
		if lo != want[0] || hi != want[1] {
			t.Errorf("%s.SizeRange() = [%d, %d), expected [%d, %d)", class, lo, hi, want[0], want[1])
		}
	}
}

func TestProjectileOutline(t *testing.T) {
	p := NewProjectile(10, 20, 0, 20)
	c := p.Outline()
	if c.Center.X != 12.5 || c.Center.Y != 22.5 || c.Radius != 2.5 {
		t.Errorf("outline = %+v", c)
	}
}
