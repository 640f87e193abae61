package geom

import "math"

// epsilon absorbs rounding in orientation tests.
const epsilon = 1e-9

// Shape is a closed region in the plane.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the region.
	Bounds() Rect
	isShape()
}

// Polygon is a simple polygon given by its vertices in order.
// Concave polygons are supported; the closing edge is implicit.
type Polygon []Point

// Bounds returns the bounding box of the polygon.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, v := range p[1:] {
		r.MinX = math.Min(r.MinX, v.X)
		r.MinY = math.Min(r.MinY, v.Y)
		r.MaxX = math.Max(r.MaxX, v.X)
		r.MaxY = math.Max(r.MaxY, v.Y)
	}
	return r
}

// Contains reports whether pt lies inside the polygon or on its boundary.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[j], p[i]
		if onSegment(a, b, pt) {
			return true
		}
		// Even-odd ray cast towards +X
		if (b.Y > pt.Y) != (a.Y > pt.Y) {
			x := (a.X-b.X)*(pt.Y-b.Y)/(a.Y-b.Y) + b.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func (Polygon) isShape() {}

// Circle is a disc with the given centre and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius,
		MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius,
		MaxY: c.Center.Y + c.Radius,
	}
}

func (Circle) isShape() {}

// Intersects reports whether the regions of a and b overlap (including
// touching boundaries). The test is exact and symmetric.
func Intersects(a, b Shape) bool {
	if !a.Bounds().Overlaps(b.Bounds()) {
		return false
	}
	switch sa := a.(type) {
	case Polygon:
		switch sb := b.(type) {
		case Polygon:
			return polygonsIntersect(sa, sb)
		case Circle:
			return polygonCircleIntersect(sa, sb)
		}
	case Circle:
		switch sb := b.(type) {
		case Polygon:
			return polygonCircleIntersect(sb, sa)
		case Circle:
			return CirclesOverlap(sa.Center.X, sa.Center.Y, sa.Radius, sb.Center.X, sb.Center.Y, sb.Radius)
		}
	}
	return false
}

// polygonsIntersect checks edge crossings first, then full containment.
func polygonsIntersect(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if segmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return b.Contains(a[0]) || a.Contains(b[0])
}

func polygonCircleIntersect(p Polygon, c Circle) bool {
	if len(p) < 3 {
		return false
	}
	if p.Contains(c.Center) {
		return true
	}
	for i := range p {
		if segmentCircleIntersect(p[i], p[(i+1)%len(p)], c) {
			return true
		}
	}
	return false
}

// cross returns the 2D cross product of (b-a) and (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func orientation(a, b, c Point) int {
	v := cross(a, b, c)
	switch {
	case v > epsilon:
		return 1
	case v < -epsilon:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p lies on segment ab.
func onSegment(a, b, p Point) bool {
	if orientation(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-epsilon && p.X <= math.Max(a.X, b.X)+epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-epsilon && p.Y <= math.Max(a.Y, b.Y)+epsilon
}

func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == 0 && onSegment(p1, p2, q1)) ||
		(o2 == 0 && onSegment(p1, p2, q2)) ||
		(o3 == 0 && onSegment(q1, q2, p1)) ||
		(o4 == 0 && onSegment(q1, q2, p2))
}

// segmentCircleIntersect checks whether the closest point of segment ab to
// the circle centre lies within the radius.
func segmentCircleIntersect(a, b Point, c Circle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((c.Center.X-a.X)*dx + (c.Center.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	return PointInCircle(a.X+t*dx, a.Y+t*dy, c.Center.X, c.Center.Y, c.Radius)
}
