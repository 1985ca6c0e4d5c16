package polyline

import "math"

// Shared three-point primitives. All of them are failure-free: degenerate
// input (zero-length segments) degrades to 0 instead of producing NaNs.

// vertexAngle returns the angle at p2 between the rays towards p1 and p3, in
// [0, π]. A collinear vertex yields π; a sharp spike yields an angle near 0.
// Returns 0 if either adjacent segment has zero length.
func vertexAngle(p1, p2, p3 Point) float64 {
	v1 := p1.Sub(p2)
	v2 := p3.Sub(p2)
	m1 := v1.Hypot()
	m2 := v2.Hypot()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := clamp(v1.Dot(v2)/(m1*m2), -1, 1)
	return math.Acos(cos)
}

// turningAngle returns the change of direction at p2 between the segments
// p1→p2 and p2→p3, in [0, π]. A collinear vertex yields 0. Returns 0 if
// either segment has zero length.
func turningAngle(p1, p2, p3 Point) float64 {
	v1 := p2.Sub(p1)
	v2 := p3.Sub(p2)
	m1 := v1.Hypot()
	m2 := v2.Hypot()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := clamp(v1.Dot(v2)/(m1*m2), -1, 1)
	return math.Acos(cos)
}

// curvatureAt estimates local bend strength at p2 from the area of the
// triangle (p1, p2, p3) divided by the product of the adjacent segment
// lengths, clamped to [0, 1]. This approximates curvature without requiring a
// continuous parametrization. Degenerate segments yield 0.
func curvatureAt(p1, p2, p3 Point) float64 {
	area := math.Abs(p2.Sub(p1).Cross(p3.Sub(p1))) / 2
	l1 := p1.Distance(p2)
	l2 := p2.Distance(p3)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	return min(1, area/(l1*l2))
}

// pointSegmentDistance returns the distance from p to the segment (a, b),
// falling back to the point-to-point distance when a == b.
func pointSegmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	l2 := d.Hypot2()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := clamp(p.Sub(a).Dot(d)/l2, 0, 1)
	return p.Distance(a.Translate(d.Mul(t)))
}

// quadBezPoint evaluates the quadratic Bézier through control points p1, p2,
// p3 at parameter t.
func quadBezPoint(p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p1.X + 2*mt*t*p2.X + t*t*p3.X,
		Y: mt*mt*p1.Y + 2*mt*t*p2.Y + t*t*p3.Y,
	}
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
