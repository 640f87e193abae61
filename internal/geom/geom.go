// Package geom provides vector math, shapes and exact intersection tests.
package geom

import "math"

// Point represents a 2D coordinate or displacement.
type Point struct {
	X, Y float64
}

// HeadingDelta returns the displacement for a compass heading in degrees
// (0 points up, angles grow clockwise) at the given speed.
func HeadingDelta(degrees, speed float64) Point {
	rad := math.Pi * degrees / 180
	return Point{
		X: math.Sin(rad) * speed,
		Y: -math.Cos(rad) * speed,
	}
}

// DirectionDelta returns the displacement for a direction in radians
// (0 points right, angles grow towards +Y) at the given speed.
func DirectionDelta(radians, speed float64) Point {
	return Point{
		X: math.Cos(radians) * speed,
		Y: math.Sin(radians) * speed,
	}
}

// WrapDegrees normalizes an angle into [0, 360).
func WrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	// -tiny + 360 rounds to 360
	if d >= 360 {
		d -= 360
	}
	return d
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap or touch.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) <= minDist*minDist
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Overlaps returns true if the two boxes share at least one point.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}
