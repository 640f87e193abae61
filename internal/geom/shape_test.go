package geom

import (
	"math"
	"testing"
)

func square(x, y, size float64) Polygon {
	return Polygon{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
}

func TestIntersects(t *testing.T) {
	// Concave "L" shape: the notch at (5..10, 5..10) is outside.
	ell := Polygon{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}

	tests := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{"overlapping squares", square(0, 0, 10), square(5, 5, 10), true},
		{"separate squares", square(0, 0, 10), square(20, 0, 10), false},
		{"touching edges", square(0, 0, 10), square(10, 0, 10), true},
		{"contained square", square(0, 0, 20), square(5, 5, 2), true},
		{"container square", square(5, 5, 2), square(0, 0, 20), true},
		{"square in concave notch", ell, square(6, 6, 3), false},
		{"square across concave arm", ell, square(3, 6, 3), true},
		{"bounding boxes overlap only", Polygon{{0, 0}, {10, 0}, {0, 10}}, square(7, 7, 3), false},
		{"circle inside polygon", square(0, 0, 10), Circle{Center: Point{5, 5}, Radius: 1}, true},
		{"circle crossing edge", square(0, 0, 10), Circle{Center: Point{11, 5}, Radius: 2}, true},
		{"circle near corner", square(0, 0, 10), Circle{Center: Point{12, 12}, Radius: 2}, false},
		{"circle containing polygon", square(0, 0, 1), Circle{Center: Point{0.5, 0.5}, Radius: 5}, true},
		{"circles overlapping", Circle{Center: Point{0, 0}, Radius: 2}, Circle{Center: Point{3, 0}, Radius: 2}, true},
		{"circles apart", Circle{Center: Point{0, 0}, Radius: 1}, Circle{Center: Point{3, 0}, Radius: 1}, false},
		{"degenerate polygon", Polygon{{0, 0}, {10, 10}}, square(0, 0, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(tc.a, tc.b); got != tc.expected {
				t.Errorf("Intersects(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Intersects(tc.b, tc.a); got != tc.expected {
				t.Errorf("Intersects(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPolygonContains(t *testing.T) {
	tri := Polygon{{0, 0}, {10, 0}, {0, 10}}

	if !tri.Contains(Point{2, 2}) {
		t.Error("interior point should be contained")
	}
	if !tri.Contains(Point{5, 0}) {
		t.Error("boundary point should be contained")
	}
	if tri.Contains(Point{6, 6}) {
		t.Error("point beyond hypotenuse should not be contained")
	}
}

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		heading float64
		dx, dy  float64
	}{
		{0, 0, -1},
		{90, 1, 0},
		{180, 0, 1},
		{270, -1, 0},
	}

	for _, tc := range tests {
		d := HeadingDelta(tc.heading, 1)
		if math.Abs(d.X-tc.dx) > 1e-9 || math.Abs(d.Y-tc.dy) > 1e-9 {
			t.Errorf("HeadingDelta(%v) = %+v, expected (%v, %v)", tc.heading, d, tc.dx, tc.dy)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	d := DirectionDelta(math.Pi/2, 7)
	if math.Abs(d.X) > 1e-9 || math.Abs(d.Y-7) > 1e-9 {
		t.Errorf("DirectionDelta(pi/2, 7) = %+v, expected (0, 7)", d)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := map[float64]float64{
		0:      0,
		359:    359,
		360:    0,
		-6:     354,
		726:    6,
		-1e-15: 0,
	}
	for in, expected := range tests {
		got := WrapDegrees(in)
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v, outside [0, 360)", in, got)
		}
		if math.Abs(got-expected) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", in, got, expected)
		}
	}
}
